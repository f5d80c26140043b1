package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/crossgraph/internal/domain/analysis"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// Path is the interface for the path query command.
type Path interface {
	Shortest(ctx context.Context, opts PathOptions) ([]string, error)
	All(ctx context.Context, opts PathOptions) ([][]string, error)
}

// PathOptions describes a path query. To is ignored by All; MaxDepth by Shortest.
type PathOptions struct {
	GraphOptions
	From     string
	To       string
	MaxDepth int
}

// PathCommand answers shortest-path and path-enumeration queries.
type PathCommand struct {
	graphRepository repositories.GraphRepository
}

// NewPathCommand creates a new PathCommand.
func NewPathCommand(graphRepository repositories.GraphRepository) *PathCommand {
	return &PathCommand{graphRepository: graphRepository}
}

// Shortest returns the fewest-hop dependency chain, or nil when there is none.
func (it *PathCommand) Shortest(ctx context.Context, opts PathOptions) ([]string, error) {
	graph, err := loadGraph(ctx, it.graphRepository, opts.GraphOptions)
	if err != nil {
		return nil, err
	}

	path := analysis.FindShortestPath(graph, opts.From, opts.To)
	if path == nil {
		logger.Infof("No dependency path from %q to %q", opts.From, opts.To)
	}
	return path, nil
}

// All enumerates dependency chains from From, bounded by MaxDepth.
func (it *PathCommand) All(ctx context.Context, opts PathOptions) ([][]string, error) {
	graph, err := loadGraph(ctx, it.graphRepository, opts.GraphOptions)
	if err != nil {
		return nil, err
	}

	paths := analysis.GetAllPaths(graph, opts.From, opts.MaxDepth)
	logger.Debugf("Enumerated %d path(s) from %q", len(paths), opts.From)
	return paths, nil
}
