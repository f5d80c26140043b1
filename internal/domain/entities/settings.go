package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultGraphPath = "crossgraph.graph.yaml"
	DefaultMaxDepth  = 10
	DefaultTop       = 10

	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Settings is the top-level configuration for crossgraph.
type Settings struct {
	Graph      string                     `yaml:"graph"`
	Strict     bool                       `yaml:"strict"`
	Workspace  WorkspaceConfig            `yaml:"workspace"`
	Ecosystems map[string]EcosystemConfig `yaml:"ecosystems"`
	Analysis   AnalysisConfig             `yaml:"analysis"`
	Output     OutputConfig               `yaml:"output"`
}

// WorkspaceConfig lists the local repository checkouts a build scans.
type WorkspaceConfig struct {
	Repositories []RepositoryConfig `yaml:"repositories"`
}

// RepositoryConfig points at one checkout. Name overrides the owner/repo detected
// from the git remote.
type RepositoryConfig struct {
	Path string `yaml:"path"`
	Name string `yaml:"name"`
}

// EcosystemConfig toggles a manifest scanner.
type EcosystemConfig struct {
	Enabled bool `yaml:"enabled"`
}

// AnalysisConfig holds query defaults.
type AnalysisConfig struct {
	MaxDepth int `yaml:"max_depth"`
	Top      int `yaml:"top"`
}

// OutputConfig selects the result rendering.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	return &Settings{
		Graph:    DefaultGraphPath,
		Analysis: AnalysisConfig{MaxDepth: DefaultMaxDepth, Top: DefaultTop},
		Output:   OutputConfig{Format: FormatTable},
	}
}

// NewSettings reads and parses a configuration file, expanding environment variables
// in paths and filling defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := NewDefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Graph = ExpandEnv(settings.Graph)
	for i := range settings.Workspace.Repositories {
		settings.Workspace.Repositories[i].Path = ExpandEnv(settings.Workspace.Repositories[i].Path)
	}
	settings.applyDefaults()

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".crossgraph.yaml",
		".crossgraph.yml",
		"crossgraph.yaml",
		"crossgraph.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// EcosystemEnabled reports whether a scanner may run. Ecosystems absent from the
// config are enabled.
func (s *Settings) EcosystemEnabled(name string) bool {
	cfg, ok := s.Ecosystems[name]
	if !ok {
		return true
	}
	return cfg.Enabled
}

// Validate checks for out-of-range values.
func (s *Settings) Validate() error {
	switch s.Output.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.format must be one of table, json, yaml (got %q)", s.Output.Format)
	}
	if s.Analysis.MaxDepth < 1 {
		return fmt.Errorf("analysis.max_depth must be positive (got %d)", s.Analysis.MaxDepth)
	}
	if s.Analysis.Top < 1 {
		return fmt.Errorf("analysis.top must be positive (got %d)", s.Analysis.Top)
	}
	for i, repo := range s.Workspace.Repositories {
		if repo.Path == "" {
			return fmt.Errorf("workspace.repositories[%d].path is required", i)
		}
	}
	return nil
}

func (s *Settings) applyDefaults() {
	if s.Graph == "" {
		s.Graph = DefaultGraphPath
	}
	if s.Output.Format == "" {
		s.Output.Format = FormatTable
	}
	if s.Analysis.MaxDepth == 0 {
		s.Analysis.MaxDepth = DefaultMaxDepth
	}
	if s.Analysis.Top == 0 {
		s.Analysis.Top = DefaultTop
	}
}

// ExpandEnv replaces ${VAR} references with their environment values.
func ExpandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
