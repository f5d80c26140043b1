package repositories

import (
	"sort"

	domainRepos "github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// ManifestRegistry manages all registered manifest scanner implementations.
type ManifestRegistry struct {
	scanners map[string]domainRepos.ManifestRepository
}

// NewManifestRegistry creates an empty manifest registry.
func NewManifestRegistry() *ManifestRegistry {
	return &ManifestRegistry{
		scanners: make(map[string]domainRepos.ManifestRepository),
	}
}

// Register adds a scanner under its name.
func (r *ManifestRegistry) Register(s domainRepos.ManifestRepository) {
	r.scanners[s.Name()] = s
}

// Get returns the scanner with the given name, or nil if not registered.
func (r *ManifestRegistry) Get(name string) domainRepos.ManifestRepository {
	return r.scanners[name]
}

// All returns every registered scanner, ordered by name so builds are reproducible.
func (r *ManifestRegistry) All() []domainRepos.ManifestRepository {
	names := r.Names()
	result := make([]domainRepos.ManifestRepository, 0, len(names))
	for _, name := range names {
		result = append(result, r.scanners[name])
	}
	return result
}

// Names returns the sorted list of registered scanner names.
func (r *ManifestRegistry) Names() []string {
	names := make([]string, 0, len(r.scanners))
	for name := range r.scanners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
