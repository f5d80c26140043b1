package maven

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

const (
	manifestName = "maven"
	pomFile      = "pom.xml"
)

// propertyPattern matches ${property.name} references inside pom values.
var propertyPattern = regexp.MustCompile(`\$\{([^}]+)}`)

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Scope      string `xml:"scope"`
}

type pomProperties struct {
	Entries []struct {
		XMLName xml.Name
		Value   string `xml:",chardata"`
	} `xml:",any"`
}

type pomProject struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Parent     struct {
		GroupID string `xml:"groupId"`
		Version string `xml:"version"`
	} `xml:"parent"`
	Properties   pomProperties   `xml:"properties"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}

// MavenManifestRepository reads dependencies declared in pom.xml.
type MavenManifestRepository struct{}

// NewManifestRepository creates a new Maven manifest scanner.
func NewManifestRepository() repositories.ManifestRepository {
	return &MavenManifestRepository{}
}

// Name returns the package manager tag.
func (r *MavenManifestRepository) Name() string { return manifestName }

// Detect returns true if the directory has a pom.xml file.
func (r *MavenManifestRepository) Detect(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, pomFile))
	return err == nil
}

// Scan parses pom.xml.
func (r *MavenManifestRepository) Scan(_ context.Context, dir string) (entities.Manifest, error) {
	path := filepath.Join(dir, pomFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Manifest{}, fmt.Errorf("%w: %s", repositories.ErrNoManifest, path)
	}
	return ParsePom(data, pomFile)
}

// ParsePom converts pom.xml content into a manifest. Packages are named
// "groupId:artifactId"; "test" scope maps to dev and "provided" to peer. Property
// references resolve against <properties> and the project coordinates.
func ParsePom(data []byte, filePath string) (entities.Manifest, error) {
	var project pomProject
	if err := xml.Unmarshal(data, &project); err != nil {
		return entities.Manifest{}, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	groupID := project.GroupID
	if groupID == "" {
		groupID = project.Parent.GroupID
	}
	version := project.Version
	if version == "" {
		version = project.Parent.Version
	}

	properties := map[string]string{
		"project.groupId":    groupID,
		"project.artifactId": project.ArtifactID,
		"project.version":    version,
	}
	for _, entry := range project.Properties.Entries {
		properties[entry.XMLName.Local] = strings.TrimSpace(entry.Value)
	}

	manifest := entities.Manifest{
		PackageManager: manifestName,
		Version:        resolveProperties(version, properties),
		FilePath:       filePath,
	}
	if project.ArtifactID != "" {
		manifest.Name = groupID + ":" + project.ArtifactID
	}

	for _, dep := range project.Dependencies {
		manifest.Dependencies = append(manifest.Dependencies, entities.Dependency{
			Name:     resolveProperties(dep.GroupID, properties) + ":" + resolveProperties(dep.ArtifactID, properties),
			Version:  resolveProperties(dep.Version, properties),
			Type:     scopeType(dep.Scope),
			FilePath: filePath,
		})
	}
	return manifest, nil
}

func scopeType(scope string) entities.EdgeType {
	switch strings.TrimSpace(scope) {
	case "test":
		return entities.EdgeDev
	case "provided":
		return entities.EdgePeer
	default:
		return entities.EdgeDirect
	}
}

func resolveProperties(value string, properties map[string]string) string {
	return propertyPattern.ReplaceAllStringFunc(strings.TrimSpace(value), func(match string) string {
		name := propertyPattern.FindStringSubmatch(match)[1]
		if resolved, ok := properties[name]; ok {
			return resolved
		}
		return match
	})
}
