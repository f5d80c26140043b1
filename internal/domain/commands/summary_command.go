package commands

import (
	"context"

	"github.com/rios0rios0/crossgraph/internal/domain/analysis"
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// Summary is the interface for the reporting projections.
type Summary interface {
	Execute(ctx context.Context, opts SummaryOptions) (entities.GraphSummary, error)
	Visualize(ctx context.Context, opts GraphOptions) (entities.VisualizationData, error)
}

// SummaryOptions bounds the ranked lists of a summary.
type SummaryOptions struct {
	GraphOptions
	Top int
}

// SummaryCommand projects analysis results into reporting shapes.
type SummaryCommand struct {
	graphRepository repositories.GraphRepository
}

// NewSummaryCommand creates a new SummaryCommand.
func NewSummaryCommand(graphRepository repositories.GraphRepository) *SummaryCommand {
	return &SummaryCommand{graphRepository: graphRepository}
}

// Execute builds the aggregate summary.
func (it *SummaryCommand) Execute(ctx context.Context, opts SummaryOptions) (entities.GraphSummary, error) {
	graph, err := loadGraph(ctx, it.graphRepository, opts.GraphOptions)
	if err != nil {
		return entities.GraphSummary{}, err
	}
	return analysis.GenerateSummary(graph, opts.Top), nil
}

// Visualize builds the renderable {nodes, edges} projection.
func (it *SummaryCommand) Visualize(ctx context.Context, opts GraphOptions) (entities.VisualizationData, error) {
	graph, err := loadGraph(ctx, it.graphRepository, opts)
	if err != nil {
		return entities.VisualizationData{}, err
	}
	return analysis.GenerateVisualizationData(graph), nil
}
