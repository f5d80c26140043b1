package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/crossgraph/internal/domain/analysis"
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// Impact is the interface for the change-impact command.
type Impact interface {
	Execute(ctx context.Context, opts ImpactOptions) (*entities.ImpactAnalysis, error)
}

// ImpactOptions selects the node whose change is simulated.
type ImpactOptions struct {
	GraphOptions
	NodeID string
}

// ImpactCommand reports who would break if a node changed.
type ImpactCommand struct {
	graphRepository repositories.GraphRepository
}

// NewImpactCommand creates a new ImpactCommand.
func NewImpactCommand(graphRepository repositories.GraphRepository) *ImpactCommand {
	return &ImpactCommand{graphRepository: graphRepository}
}

// Execute loads the graph and analyzes the impact of NodeID. An unknown node yields a
// nil analysis and no error.
func (it *ImpactCommand) Execute(ctx context.Context, opts ImpactOptions) (*entities.ImpactAnalysis, error) {
	graph, err := loadGraph(ctx, it.graphRepository, opts.GraphOptions)
	if err != nil {
		return nil, err
	}

	result := analysis.AnalyzeImpact(graph, opts.NodeID)
	if result == nil {
		logger.Infof("Node %q not found in graph", opts.NodeID)
		return nil, nil
	}
	logger.Infof(
		"%s impacts %d node(s) in %d repositories (score %d)",
		opts.NodeID, len(result.DirectImpact)+len(result.TransitiveImpact),
		len(result.AffectedRepositories), result.ImpactScore,
	)
	return result, nil
}
