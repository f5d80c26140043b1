package golang

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

const (
	manifestName = "go"
	goModFile    = "go.mod"
)

// GoManifestRepository reads Go module requirements from go.mod.
type GoManifestRepository struct{}

// NewManifestRepository creates a new Go manifest scanner.
func NewManifestRepository() repositories.ManifestRepository {
	return &GoManifestRepository{}
}

// Name returns the package manager tag.
func (r *GoManifestRepository) Name() string { return manifestName }

// Detect returns true if the directory has a go.mod file.
func (r *GoManifestRepository) Detect(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, goModFile))
	return err == nil
}

// Scan parses go.mod. Requirements marked "// indirect" become transitive dependencies.
func (r *GoManifestRepository) Scan(_ context.Context, dir string) (entities.Manifest, error) {
	path := filepath.Join(dir, goModFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Manifest{}, fmt.Errorf("%w: %s", repositories.ErrNoManifest, path)
	}
	return ParseGoMod(data, goModFile)
}

// ParseGoMod converts go.mod content into a manifest.
func ParseGoMod(data []byte, filePath string) (entities.Manifest, error) {
	file, err := modfile.ParseLax(filePath, data, nil)
	if err != nil {
		return entities.Manifest{}, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	manifest := entities.Manifest{
		PackageManager: manifestName,
		FilePath:       filePath,
	}
	if file.Module != nil {
		manifest.Name = file.Module.Mod.Path
	}

	for _, req := range file.Require {
		depType := entities.EdgeDirect
		if req.Indirect {
			depType = entities.EdgeTransitive
		}
		line := 0
		if req.Syntax != nil {
			line = req.Syntax.Start.Line
		}
		manifest.Dependencies = append(manifest.Dependencies, entities.Dependency{
			Name:     req.Mod.Path,
			Version:  req.Mod.Version,
			Type:     depType,
			FilePath: filePath,
			Line:     line,
		})
	}
	return manifest, nil
}
