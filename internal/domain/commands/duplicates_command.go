package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/crossgraph/internal/domain/analysis"
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// Duplicates is the interface for the duplicate version command.
type Duplicates interface {
	Execute(ctx context.Context, opts GraphOptions) (map[string][]entities.DuplicateEntry, error)
}

// DuplicatesCommand finds packages pinned at more than one version.
type DuplicatesCommand struct {
	graphRepository repositories.GraphRepository
}

// NewDuplicatesCommand creates a new DuplicatesCommand.
func NewDuplicatesCommand(graphRepository repositories.GraphRepository) *DuplicatesCommand {
	return &DuplicatesCommand{graphRepository: graphRepository}
}

// Execute loads the graph and groups duplicated packages.
func (it *DuplicatesCommand) Execute(
	ctx context.Context,
	opts GraphOptions,
) (map[string][]entities.DuplicateEntry, error) {
	graph, err := loadGraph(ctx, it.graphRepository, opts)
	if err != nil {
		return nil, err
	}

	duplicates := analysis.FindDuplicateDependencies(graph)
	logger.Infof("Found %d package(s) with diverging versions", len(duplicates))
	return duplicates, nil
}
