package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/crossgraph/internal/domain/analysis"
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// Cycles is the interface for the cycle detection command.
type Cycles interface {
	Execute(ctx context.Context, opts GraphOptions) ([]entities.DependencyCycle, error)
}

// CyclesCommand reports circular dependencies.
type CyclesCommand struct {
	graphRepository repositories.GraphRepository
}

// NewCyclesCommand creates a new CyclesCommand.
func NewCyclesCommand(graphRepository repositories.GraphRepository) *CyclesCommand {
	return &CyclesCommand{graphRepository: graphRepository}
}

// Execute loads the graph and detects cycles.
func (it *CyclesCommand) Execute(ctx context.Context, opts GraphOptions) ([]entities.DependencyCycle, error) {
	graph, err := loadGraph(ctx, it.graphRepository, opts)
	if err != nil {
		return nil, err
	}

	cycles := analysis.DetectCycles(graph)
	high := 0
	for _, cycle := range cycles {
		if cycle.Severity == entities.SeverityHigh {
			high++
		}
	}
	logger.Infof("Found %d cycle(s), %d crossing repositories", len(cycles), high)
	return cycles, nil
}
