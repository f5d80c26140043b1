package python

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

const (
	manifestName     = "pip"
	pyprojectFile    = "pyproject.toml"
	requirementsFile = "requirements.txt"
)

// requirementPattern splits "name[extras] <op> version ; marker" into name and version specifier.
var requirementPattern = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9._-]*)(\[[^\]]*\])?\s*(.*)$`)

// devGroups are optional-dependency groups treated as dev dependencies.
var devGroups = map[string]bool{"dev": true, "test": true, "tests": true, "lint": true, "docs": true}

type pyproject struct {
	Project struct {
		Name                 string              `toml:"name"`
		Version              string              `toml:"version"`
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
}

// PipManifestRepository reads pyproject.toml, falling back to requirements.txt.
type PipManifestRepository struct{}

// NewManifestRepository creates a new pip manifest scanner.
func NewManifestRepository() repositories.ManifestRepository {
	return &PipManifestRepository{}
}

// Name returns the package manager tag.
func (r *PipManifestRepository) Name() string { return manifestName }

// Detect returns true if the directory has pyproject.toml or requirements.txt.
func (r *PipManifestRepository) Detect(dir string) bool {
	for _, name := range []string{pyprojectFile, requirementsFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// Scan parses the first manifest present. A pyproject.toml without a [project] table
// (e.g. Poetry-only) falls through to requirements.txt when that exists.
func (r *PipManifestRepository) Scan(_ context.Context, dir string) (entities.Manifest, error) {
	if data, err := os.ReadFile(filepath.Join(dir, pyprojectFile)); err == nil {
		manifest, parseErr := ParsePyproject(data, pyprojectFile)
		if parseErr != nil {
			return entities.Manifest{}, parseErr
		}
		if manifest.Name != "" || len(manifest.Dependencies) > 0 {
			return manifest, nil
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, requirementsFile))
	if err != nil {
		return entities.Manifest{}, fmt.Errorf("%w: %s", repositories.ErrNoManifest, dir)
	}
	return ParseRequirements(string(data), requirementsFile), nil
}

// ParsePyproject converts a PEP 621 pyproject.toml into a manifest.
func ParsePyproject(data []byte, filePath string) (entities.Manifest, error) {
	var doc pyproject
	if err := toml.Unmarshal(data, &doc); err != nil {
		return entities.Manifest{}, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	manifest := entities.Manifest{
		PackageManager: manifestName,
		Name:           normalizeName(doc.Project.Name),
		Version:        doc.Project.Version,
		FilePath:       filePath,
	}
	for _, requirement := range doc.Project.Dependencies {
		if dep, ok := parseRequirement(requirement, filePath, 0, entities.EdgeDirect); ok {
			manifest.Dependencies = append(manifest.Dependencies, dep)
		}
	}

	groups := make([]string, 0, len(doc.Project.OptionalDependencies))
	for group := range doc.Project.OptionalDependencies {
		groups = append(groups, group)
	}
	sort.Strings(groups)
	for _, group := range groups {
		depType := entities.EdgeDirect
		if devGroups[strings.ToLower(group)] {
			depType = entities.EdgeDev
		}
		for _, requirement := range doc.Project.OptionalDependencies[group] {
			if dep, ok := parseRequirement(requirement, filePath, 0, depType); ok {
				manifest.Dependencies = append(manifest.Dependencies, dep)
			}
		}
	}
	return manifest, nil
}

// ParseRequirements reads a requirements.txt. Comments, blank lines, options such as
// "-r other.txt" and editable/URL installs are skipped.
func ParseRequirements(content, filePath string) entities.Manifest {
	manifest := entities.Manifest{
		PackageManager: manifestName,
		FilePath:       filePath,
	}
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if idx := strings.Index(line, " #"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") || strings.Contains(line, "://") {
			continue
		}
		if dep, ok := parseRequirement(line, filePath, i+1, entities.EdgeDirect); ok {
			manifest.Dependencies = append(manifest.Dependencies, dep)
		}
	}
	return manifest
}

func parseRequirement(requirement, filePath string, line int, depType entities.EdgeType) (entities.Dependency, bool) {
	if idx := strings.Index(requirement, ";"); idx >= 0 {
		requirement = requirement[:idx] // drop environment markers
	}
	matches := requirementPattern.FindStringSubmatch(strings.TrimSpace(requirement))
	if matches == nil {
		return entities.Dependency{}, false
	}
	version := strings.TrimSpace(matches[3])
	version = strings.TrimPrefix(version, "==")
	return entities.Dependency{
		Name:     normalizeName(matches[1]),
		Version:  strings.TrimSpace(version),
		Type:     depType,
		FilePath: filePath,
		Line:     line,
	}, true
}

// normalizeName applies PEP 503 normalization so "Foo_Bar" and "foo-bar" group together.
func normalizeName(name string) string {
	name = strings.ToLower(name)
	return strings.NewReplacer("_", "-", ".", "-").Replace(name)
}
