package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/crossgraph/internal/domain/commands"
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// CyclesController handles the "cycles" subcommand.
type CyclesController struct {
	noFlags
	command commands.Cycles
	output  repositories.OutputRepository
}

// NewCyclesController creates a new CyclesController.
func NewCyclesController(command commands.Cycles, output repositories.OutputRepository) *CyclesController {
	return &CyclesController{command: command, output: output}
}

// GetBind returns the Cobra command metadata for the cycles controller.
func (it *CyclesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "cycles",
		Short: "Detect circular dependencies",
		Long: `Detect dependency cycles in the graph. Cycles spanning more than one
repository are high severity; same-repository cycles longer than five
nodes are medium; the rest are low.`,
	}
}

// Execute runs cycle detection.
func (it *CyclesController) Execute(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	cycles, err := it.command.Execute(context.Background(), graphOptions(settings))
	if err != nil {
		logger.Errorf("Cycle detection failed: %v", err)
		return
	}
	render(it.output, settings, cycles)
}

// LinksController handles the "links" subcommand.
type LinksController struct {
	noFlags
	command commands.Links
	output  repositories.OutputRepository
}

// NewLinksController creates a new LinksController.
func NewLinksController(command commands.Links, output repositories.OutputRepository) *LinksController {
	return &LinksController{command: command, output: output}
}

// GetBind returns the Cobra command metadata for the links controller.
func (it *LinksController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "links",
		Short: "List cross-repository dependencies",
		Long:  `List every repository pair connected by at least one package dependency.`,
	}
}

// Execute runs link extraction.
func (it *LinksController) Execute(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	links, err := it.command.Execute(context.Background(), graphOptions(settings))
	if err != nil {
		logger.Errorf("Link extraction failed: %v", err)
		return
	}
	render(it.output, settings, links)
}

// MetricsController handles the "metrics" subcommand.
type MetricsController struct {
	noFlags
	command commands.Metrics
	output  repositories.OutputRepository
}

// NewMetricsController creates a new MetricsController.
func NewMetricsController(command commands.Metrics, output repositories.OutputRepository) *MetricsController {
	return &MetricsController{command: command, output: output}
}

// GetBind returns the Cobra command metadata for the metrics controller.
func (it *MetricsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "metrics",
		Short: "Show per-repository dependency health",
		Long: `Show dependency and dependent counts, cross-repository dependencies,
average and maximum dependency depth, and a simplified cyclomatic
complexity for each repository.`,
	}
}

// Execute runs the metrics calculation.
func (it *MetricsController) Execute(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	metrics, err := it.command.Execute(context.Background(), graphOptions(settings))
	if err != nil {
		logger.Errorf("Metrics calculation failed: %v", err)
		return
	}
	render(it.output, settings, metrics)
}

// DuplicatesController handles the "duplicates" subcommand.
type DuplicatesController struct {
	noFlags
	command commands.Duplicates
	output  repositories.OutputRepository
}

// NewDuplicatesController creates a new DuplicatesController.
func NewDuplicatesController(
	command commands.Duplicates,
	output repositories.OutputRepository,
) *DuplicatesController {
	return &DuplicatesController{command: command, output: output}
}

// GetBind returns the Cobra command metadata for the duplicates controller.
func (it *DuplicatesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "duplicates",
		Short: "Find packages used at more than one version",
		Long:  `Group packages by name and list those pinned at two or more distinct versions.`,
	}
}

// Execute runs duplicate detection.
func (it *DuplicatesController) Execute(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	duplicates, err := it.command.Execute(context.Background(), graphOptions(settings))
	if err != nil {
		logger.Errorf("Duplicate detection failed: %v", err)
		return
	}
	render(it.output, settings, duplicates)
}
