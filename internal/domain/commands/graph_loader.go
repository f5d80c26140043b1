package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// GraphOptions locates the snapshot a query command analyzes.
type GraphOptions struct {
	GraphPath string
	Strict    bool // reject inconsistent adjacency instead of repairing it
}

func loadGraph(
	ctx context.Context,
	graphRepository repositories.GraphRepository,
	opts GraphOptions,
) (*entities.DependencyGraph, error) {
	mode := entities.AdjacencyRepair
	if opts.Strict {
		mode = entities.AdjacencyStrict
	}

	graph, err := graphRepository.Load(ctx, opts.GraphPath, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}

	meta := graph.Metadata()
	logger.Debugf(
		"Graph ready: %d nodes, %d edges across %d repositories",
		meta.TotalNodes, meta.TotalEdges, meta.TotalRepositories,
	)
	return graph, nil
}
