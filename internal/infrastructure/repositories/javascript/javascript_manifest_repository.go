package javascript

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

const (
	manifestName    = "npm"
	packageJSONFile = "package.json"
)

type packageJSON struct {
	Name                 string            `json:"name"`
	Version              string            `json:"version"`
	Dependencies         map[string]string `json:"dependencies"`
	DevDependencies      map[string]string `json:"devDependencies"`
	PeerDependencies     map[string]string `json:"peerDependencies"`
	OptionalDependencies map[string]string `json:"optionalDependencies"`
}

// NpmManifestRepository reads package.json dependency sections.
type NpmManifestRepository struct{}

// NewManifestRepository creates a new npm manifest scanner.
func NewManifestRepository() repositories.ManifestRepository {
	return &NpmManifestRepository{}
}

// Name returns the package manager tag.
func (r *NpmManifestRepository) Name() string { return manifestName }

// Detect returns true if the directory has a package.json file.
func (r *NpmManifestRepository) Detect(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, packageJSONFile))
	return err == nil
}

// Scan parses package.json.
func (r *NpmManifestRepository) Scan(_ context.Context, dir string) (entities.Manifest, error) {
	path := filepath.Join(dir, packageJSONFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Manifest{}, fmt.Errorf("%w: %s", repositories.ErrNoManifest, path)
	}
	return ParsePackageJSON(data, packageJSONFile)
}

// ParsePackageJSON converts package.json content into a manifest. Sections are read in
// a fixed order (dependencies, optional, peer, dev) and names sorted inside each, so
// the output does not depend on map iteration.
func ParsePackageJSON(data []byte, filePath string) (entities.Manifest, error) {
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return entities.Manifest{}, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	manifest := entities.Manifest{
		PackageManager: manifestName,
		Name:           pkg.Name,
		Version:        pkg.Version,
		FilePath:       filePath,
	}
	sections := []struct {
		deps    map[string]string
		depType entities.EdgeType
	}{
		{pkg.Dependencies, entities.EdgeDirect},
		{pkg.OptionalDependencies, entities.EdgeDirect},
		{pkg.PeerDependencies, entities.EdgePeer},
		{pkg.DevDependencies, entities.EdgeDev},
	}
	for _, section := range sections {
		for _, name := range sortedKeys(section.deps) {
			manifest.Dependencies = append(manifest.Dependencies, entities.Dependency{
				Name:     name,
				Version:  section.deps[name],
				Type:     section.depType,
				FilePath: filePath,
			})
		}
	}
	return manifest, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
