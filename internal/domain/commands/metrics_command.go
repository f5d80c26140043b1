package commands

import (
	"context"

	"github.com/rios0rios0/crossgraph/internal/domain/analysis"
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// Metrics is the interface for the repository metrics command.
type Metrics interface {
	Execute(ctx context.Context, opts GraphOptions) ([]entities.RepositoryMetrics, error)
}

// MetricsCommand computes per-repository health figures.
type MetricsCommand struct {
	graphRepository repositories.GraphRepository
}

// NewMetricsCommand creates a new MetricsCommand.
func NewMetricsCommand(graphRepository repositories.GraphRepository) *MetricsCommand {
	return &MetricsCommand{graphRepository: graphRepository}
}

// Execute loads the graph and calculates repository metrics.
func (it *MetricsCommand) Execute(ctx context.Context, opts GraphOptions) ([]entities.RepositoryMetrics, error) {
	graph, err := loadGraph(ctx, it.graphRepository, opts)
	if err != nil {
		return nil, err
	}
	return analysis.CalculateRepositoryMetrics(graph), nil
}
