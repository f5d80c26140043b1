package controllers

import (
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	constructors := []any{
		NewBuildController,
		NewCyclesController,
		NewLinksController,
		NewMetricsController,
		NewImpactController,
		NewDuplicatesController,
		NewPathController,
		NewPathsController,
		NewSummaryController,
		NewVisualizeController,
		NewReportController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	buildController *BuildController,
	cyclesController *CyclesController,
	linksController *LinksController,
	metricsController *MetricsController,
	impactController *ImpactController,
	duplicatesController *DuplicatesController,
	pathController *PathController,
	pathsController *PathsController,
	summaryController *SummaryController,
	visualizeController *VisualizeController,
	reportController *ReportController,
) *[]entities.Controller {
	return &[]entities.Controller{
		buildController,
		cyclesController,
		linksController,
		metricsController,
		impactController,
		duplicatesController,
		pathController,
		pathsController,
		summaryController,
		visualizeController,
		reportController,
	}
}
