package cargo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

const (
	manifestName = "cargo"
	cargoFile    = "Cargo.toml"
)

type cargoManifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version any    `toml:"version"` // string, or {workspace = true}
	} `toml:"package"`
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}

// CargoManifestRepository reads Rust crate dependencies from Cargo.toml.
type CargoManifestRepository struct{}

// NewManifestRepository creates a new Cargo manifest scanner.
func NewManifestRepository() repositories.ManifestRepository {
	return &CargoManifestRepository{}
}

// Name returns the package manager tag.
func (r *CargoManifestRepository) Name() string { return manifestName }

// Detect returns true if the directory has a Cargo.toml file.
func (r *CargoManifestRepository) Detect(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, cargoFile))
	return err == nil
}

// Scan parses Cargo.toml.
func (r *CargoManifestRepository) Scan(_ context.Context, dir string) (entities.Manifest, error) {
	path := filepath.Join(dir, cargoFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Manifest{}, fmt.Errorf("%w: %s", repositories.ErrNoManifest, path)
	}
	return ParseCargoToml(data, cargoFile)
}

// ParseCargoToml converts Cargo.toml content into a manifest. Build dependencies are
// reported as dev dependencies since they never ship with the crate.
func ParseCargoToml(data []byte, filePath string) (entities.Manifest, error) {
	var doc cargoManifest
	if err := toml.Unmarshal(data, &doc); err != nil {
		return entities.Manifest{}, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	manifest := entities.Manifest{
		PackageManager: manifestName,
		Name:           doc.Package.Name,
		Version:        stringValue(doc.Package.Version),
		FilePath:       filePath,
	}
	sections := []struct {
		deps    map[string]any
		depType entities.EdgeType
	}{
		{doc.Dependencies, entities.EdgeDirect},
		{doc.DevDependencies, entities.EdgeDev},
		{doc.BuildDependencies, entities.EdgeDev},
	}
	for _, section := range sections {
		names := make([]string, 0, len(section.deps))
		for name := range section.deps {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			manifest.Dependencies = append(manifest.Dependencies, toDependency(name, section.deps[name], section.depType, filePath))
		}
	}
	return manifest, nil
}

// toDependency handles both `name = "1.0"` and `name = { version = "1.0", package = "real" }`.
func toDependency(name string, raw any, depType entities.EdgeType, filePath string) entities.Dependency {
	dep := entities.Dependency{Name: name, Type: depType, FilePath: filePath}
	switch value := raw.(type) {
	case string:
		dep.Version = value
	case map[string]any:
		dep.Version = stringValue(value["version"])
		if renamed := stringValue(value["package"]); renamed != "" {
			dep.Name = renamed
		}
	}
	return dep
}

func stringValue(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return ""
}
