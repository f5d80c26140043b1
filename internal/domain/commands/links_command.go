package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/crossgraph/internal/domain/analysis"
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// Links is the interface for the cross-repository link command.
type Links interface {
	Execute(ctx context.Context, opts GraphOptions) ([]entities.CrossRepoLink, error)
}

// LinksCommand lists dependencies that cross repository boundaries.
type LinksCommand struct {
	graphRepository repositories.GraphRepository
}

// NewLinksCommand creates a new LinksCommand.
func NewLinksCommand(graphRepository repositories.GraphRepository) *LinksCommand {
	return &LinksCommand{graphRepository: graphRepository}
}

// Execute loads the graph and extracts cross-repository links.
func (it *LinksCommand) Execute(ctx context.Context, opts GraphOptions) ([]entities.CrossRepoLink, error) {
	graph, err := loadGraph(ctx, it.graphRepository, opts)
	if err != nil {
		return nil, err
	}

	links := analysis.FindCrossRepoLinks(graph)
	logger.Infof("Found %d repository pair(s) linked by dependencies", len(links))
	return links, nil
}
