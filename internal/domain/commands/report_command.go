package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/crossgraph/internal/domain/analysis"
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// Report is the interface for the full analysis report command.
type Report interface {
	Execute(ctx context.Context, opts SummaryOptions) (*entities.AnalysisReport, error)
}

// ReportCommand runs every whole-graph analysis in parallel.
type ReportCommand struct {
	graphRepository repositories.GraphRepository
}

// NewReportCommand creates a new ReportCommand.
func NewReportCommand(graphRepository repositories.GraphRepository) *ReportCommand {
	return &ReportCommand{graphRepository: graphRepository}
}

// Execute loads the graph once and produces the bundled report.
func (it *ReportCommand) Execute(ctx context.Context, opts SummaryOptions) (*entities.AnalysisReport, error) {
	graph, err := loadGraph(ctx, it.graphRepository, opts.GraphOptions)
	if err != nil {
		return nil, err
	}

	report, err := analysis.RunAll(ctx, graph, opts.Top)
	if err != nil {
		return nil, fmt.Errorf("analysis interrupted: %w", err)
	}
	logger.Infof(
		"Report %s: %d cycles, %d cross-repo links, %d duplicated packages",
		report.ID, len(report.Cycles), len(report.Links), len(report.Duplicates),
	)
	return report, nil
}
