package graphfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

const filePermissions = 0o644

// snapshot is the on-disk shape of a graph. Metadata is informational: it is recomputed
// on load.
type snapshot struct {
	Nodes    []entities.DependencyNode `json:"nodes"    yaml:"nodes"`
	Edges    []entities.DependencyEdge `json:"edges"    yaml:"edges"`
	Metadata entities.GraphMetadata    `json:"metadata" yaml:"metadata"`
}

// GraphFileRepository stores graph snapshots as YAML or JSON files, chosen by extension.
type GraphFileRepository struct{}

// NewGraphFileRepository creates a file-backed graph store.
func NewGraphFileRepository() repositories.GraphRepository {
	return &GraphFileRepository{}
}

// Load reads and validates a snapshot.
func (r *GraphFileRepository) Load(
	_ context.Context,
	location string,
	mode entities.AdjacencyMode,
) (*entities.DependencyGraph, error) {
	data, err := os.ReadFile(location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", repositories.ErrGraphNotFound, location)
		}
		return nil, fmt.Errorf("failed to read graph file %q: %w", location, err)
	}

	var snap snapshot
	switch formatOf(location) {
	case entities.FormatJSON:
		err = json.Unmarshal(data, &snap)
	case entities.FormatYAML:
		err = yaml.Unmarshal(data, &snap)
	default:
		return nil, fmt.Errorf("%w: %s", repositories.ErrUnsupportedFormat, location)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse graph file %q: %w", location, err)
	}

	for i, edge := range snap.Edges {
		if edge.Type == "" {
			snap.Edges[i].Type = entities.EdgeDirect
			continue
		}
		if !edge.Type.IsValid() {
			return nil, fmt.Errorf("edges[%d]: unknown edge type %q", i, edge.Type)
		}
	}

	graph, err := entities.NewDependencyGraph(snap.Nodes, snap.Edges, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph %q: %w", location, err)
	}
	logger.Debugf(
		"Loaded graph %q: %d nodes, %d edges, %d repositories",
		location, graph.Metadata().TotalNodes, graph.Metadata().TotalEdges, graph.Metadata().TotalRepositories,
	)
	return graph, nil
}

// Save writes the snapshot, creating parent directories as needed.
func (r *GraphFileRepository) Save(_ context.Context, location string, graph *entities.DependencyGraph) error {
	snap := snapshot{
		Nodes:    graph.Nodes(),
		Edges:    graph.Edges(),
		Metadata: graph.Metadata(),
	}

	var (
		data []byte
		err  error
	)
	switch formatOf(location) {
	case entities.FormatJSON:
		data, err = json.MarshalIndent(snap, "", "  ")
	case entities.FormatYAML:
		data, err = yaml.Marshal(snap)
	default:
		return fmt.Errorf("%w: %s", repositories.ErrUnsupportedFormat, location)
	}
	if err != nil {
		return fmt.Errorf("failed to encode graph: %w", err)
	}

	if dir := filepath.Dir(location); dir != "." {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return fmt.Errorf("failed to create %q: %w", dir, mkErr)
		}
	}
	if writeErr := os.WriteFile(location, data, filePermissions); writeErr != nil {
		return fmt.Errorf("failed to write graph file %q: %w", location, writeErr)
	}
	return nil
}

func formatOf(location string) string {
	switch strings.ToLower(filepath.Ext(location)) {
	case ".json":
		return entities.FormatJSON
	case ".yaml", ".yml":
		return entities.FormatYAML
	default:
		return ""
	}
}
