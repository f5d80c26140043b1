package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/crossgraph/internal/domain/commands"
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

func summaryOptions(cmd *cobra.Command, settings *entities.Settings) commands.SummaryOptions {
	top, _ := cmd.Flags().GetInt("top")
	if top <= 0 {
		top = settings.Analysis.Top
	}
	return commands.SummaryOptions{GraphOptions: graphOptions(settings), Top: top}
}

func addTopFlag(cmd *cobra.Command) {
	cmd.Flags().Int("top", 0, "Length of ranked lists (default: analysis.top)")
}

// SummaryController handles the "summary" subcommand.
type SummaryController struct {
	command commands.Summary
	output  repositories.OutputRepository
}

// NewSummaryController creates a new SummaryController.
func NewSummaryController(command commands.Summary, output repositories.OutputRepository) *SummaryController {
	return &SummaryController{command: command, output: output}
}

// GetBind returns the Cobra command metadata for the summary controller.
func (it *SummaryController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "summary",
		Short: "Summarize the graph",
		Long:  `Aggregate counts plus the most depended-on nodes, largest repositories and strongest couplings.`,
	}
}

// Execute builds the summary.
func (it *SummaryController) Execute(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	summary, err := it.command.Execute(context.Background(), summaryOptions(cmd, settings))
	if err != nil {
		logger.Errorf("Summary failed: %v", err)
		return
	}
	render(it.output, settings, summary)
}

// AddFlags adds the summary-specific flags to the given Cobra command.
func (it *SummaryController) AddFlags(cmd *cobra.Command) { addTopFlag(cmd) }

// VisualizeController handles the "visualize" subcommand.
type VisualizeController struct {
	noFlags
	command commands.Summary
	output  repositories.OutputRepository
}

// NewVisualizeController creates a new VisualizeController.
func NewVisualizeController(command commands.Summary, output repositories.OutputRepository) *VisualizeController {
	return &VisualizeController{command: command, output: output}
}

// GetBind returns the Cobra command metadata for the visualize controller.
func (it *VisualizeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "visualize",
		Short: "Export the graph as renderable nodes and edges",
		Long:  `Export {nodes, edges} for graph renderers. Use --format json for web front ends.`,
	}
}

// Execute exports the visualization data.
func (it *VisualizeController) Execute(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	data, err := it.command.Visualize(context.Background(), graphOptions(settings))
	if err != nil {
		logger.Errorf("Visualization export failed: %v", err)
		return
	}
	render(it.output, settings, data)
}

// ReportController handles the "report" subcommand.
type ReportController struct {
	command commands.Report
	output  repositories.OutputRepository
}

// NewReportController creates a new ReportController.
func NewReportController(command commands.Report, output repositories.OutputRepository) *ReportController {
	return &ReportController{command: command, output: output}
}

// GetBind returns the Cobra command metadata for the report controller.
func (it *ReportController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "report",
		Short: "Run every analysis and emit one report",
		Long: `Run cycle detection, link extraction, metrics and duplicate detection
in parallel over the same snapshot and emit a single report with an ID,
suitable for storing as an analysis record.`,
	}
}

// Execute runs the full report.
func (it *ReportController) Execute(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	report, err := it.command.Execute(context.Background(), summaryOptions(cmd, settings))
	if err != nil {
		logger.Errorf("Report failed: %v", err)
		return
	}
	render(it.output, settings, report)
}

// AddFlags adds the report-specific flags to the given Cobra command.
func (it *ReportController) AddFlags(cmd *cobra.Command) { addTopFlag(cmd) }
