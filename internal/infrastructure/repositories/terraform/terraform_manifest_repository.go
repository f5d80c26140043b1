package terraform

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

const manifestName = "terraform"

var (
	modulePattern = regexp.MustCompile(`(?s)module\s+"([^"]+)"\s*\{[^}]*source\s*=\s*"([^"]+)"`)
	refPattern    = regexp.MustCompile(`[?&]ref=([^&\s"]+)`)
)

// TerraformManifestRepository reads git-sourced module blocks from *.tf files.
type TerraformManifestRepository struct{}

// NewManifestRepository creates a new Terraform manifest scanner.
func NewManifestRepository() repositories.ManifestRepository {
	return &TerraformManifestRepository{}
}

// Name returns the package manager tag.
func (r *TerraformManifestRepository) Name() string { return manifestName }

// Detect returns true if the directory tree holds at least one .tf file.
func (r *TerraformManifestRepository) Detect(dir string) bool {
	return len(findTerraformFiles(dir)) > 0
}

// Scan parses every .tf file under dir. Each git module becomes a dependency named
// after the owner/repo of its source, so modules published by other scanned
// repositories turn into cross-repository links.
func (r *TerraformManifestRepository) Scan(_ context.Context, dir string) (entities.Manifest, error) {
	files := findTerraformFiles(dir)
	if len(files) == 0 {
		return entities.Manifest{}, fmt.Errorf("%w: no .tf files in %s", repositories.ErrNoManifest, dir)
	}

	manifest := entities.Manifest{PackageManager: manifestName, FilePath: "."}
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return entities.Manifest{}, fmt.Errorf("failed to read %q: %w", path, err)
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		deps, err := ScanTerraformFile(string(content), rel)
		if err != nil {
			return entities.Manifest{}, err
		}
		manifest.Dependencies = append(manifest.Dependencies, deps...)
	}
	return manifest, nil
}

// ScanTerraformFile parses a Terraform file and extracts git module dependencies.
func ScanTerraformFile(content, filePath string) ([]entities.Dependency, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL([]byte(content), filePath)
	if diags.HasErrors() {
		logger.Debugf("[terraform] HCL parse failed for %s, falling back to regex", filePath)
		return scanWithRegex(content, filePath), nil
	}

	bodyContent, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "module", LabelNames: []string{"name"}},
		},
	})
	if diags.HasErrors() {
		return scanWithRegex(content, filePath), nil
	}

	var deps []entities.Dependency
	for _, block := range bodyContent.Blocks {
		attrs, _ := block.Body.JustAttributes()
		sourceAttr, hasSource := attrs["source"]
		if !hasSource {
			continue
		}

		sourceVal, valDiags := sourceAttr.Expr.Value(&hcl.EvalContext{})
		if valDiags.HasErrors() || sourceVal.Type() != cty.String {
			continue
		}

		if dep, ok := toDependency(sourceVal.AsString(), filePath, block.DefRange.Start.Line); ok {
			deps = append(deps, dep)
		}
	}
	return deps, nil
}

// scanWithRegex is a fallback parser for files HCL cannot read.
func scanWithRegex(content, filePath string) []entities.Dependency {
	var deps []entities.Dependency
	for _, match := range modulePattern.FindAllStringSubmatchIndex(content, -1) {
		source := content[match[4]:match[5]]
		line := strings.Count(content[:match[0]], "\n") + 1
		if dep, ok := toDependency(source, filePath, line); ok {
			deps = append(deps, dep)
		}
	}
	return deps
}

func toDependency(source, filePath string, line int) (entities.Dependency, bool) {
	if !IsGitModule(source) {
		return entities.Dependency{}, false
	}
	name, ok := RepositoryFromSource(source)
	if !ok {
		return entities.Dependency{}, false
	}
	return entities.Dependency{
		Name:     name,
		Version:  extractVersion(source),
		Type:     entities.EdgeDirect,
		FilePath: filePath,
		Line:     line,
	}, true
}

// IsGitModule checks if the source URL is a Git-based module.
func IsGitModule(source string) bool {
	return strings.HasPrefix(source, "git::") ||
		strings.HasPrefix(source, "git@") ||
		strings.Contains(source, "github.com") ||
		strings.Contains(source, "gitlab.com") ||
		strings.Contains(source, "bitbucket.org") ||
		strings.Contains(source, "dev.azure.com") ||
		strings.Contains(source, "_git/")
}

// RepositoryFromSource extracts "owner/repo" from a git module source such as
// "git::https://github.com/acme/vpc.git//modules/x?ref=v1.0.0".
func RepositoryFromSource(source string) (string, bool) {
	base := strings.TrimPrefix(source, "git::")
	if idx := strings.Index(base, "?"); idx != -1 {
		base = base[:idx]
	}
	if idx := strings.Index(base, "://"); idx != -1 {
		base = base[idx+3:]
	}
	if idx := strings.Index(base, "//"); idx != -1 {
		base = base[:idx]
	}
	base = strings.TrimSuffix(base, ".git")

	if _, after, found := strings.Cut(base, ":"); found && strings.HasPrefix(base, "git@") {
		base = after
	} else if _, after, found = strings.Cut(base, "/"); found {
		base = after // drop host
	} else {
		return "", false
	}
	base = strings.TrimPrefix(base, "v3/")

	segments := strings.Split(strings.Trim(base, "/"), "/")
	for i, segment := range segments {
		if segment == "_git" && i+1 < len(segments) && i >= 1 {
			return segments[0] + "/" + segments[i+1], true
		}
	}
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return "", false
	}
	if len(segments) >= 3 && strings.Contains(source, "ssh.dev.azure.com") {
		return segments[0] + "/" + segments[2], true // org/project/repo
	}
	return segments[0] + "/" + segments[1], true
}

func extractVersion(source string) string {
	if matches := refPattern.FindStringSubmatch(source); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

func findTerraformFiles(dir string) []string {
	var files []string
	_ = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are skipped
		}
		if entry.IsDir() {
			name := entry.Name()
			if path != dir && (strings.HasPrefix(name, ".") || name == "node_modules" || name == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(entry.Name(), ".tf") {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files
}
