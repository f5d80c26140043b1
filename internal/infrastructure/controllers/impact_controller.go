package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/crossgraph/internal/domain/commands"
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// ImpactController handles the "impact" subcommand.
type ImpactController struct {
	noFlags
	command commands.Impact
	output  repositories.OutputRepository
}

// NewImpactController creates a new ImpactController.
func NewImpactController(command commands.Impact, output repositories.OutputRepository) *ImpactController {
	return &ImpactController{command: command, output: output}
}

// GetBind returns the Cobra command metadata for the impact controller.
func (it *ImpactController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "impact <node-id>",
		Short: "Show what breaks if a node changes",
		Long: `Walk the dependents of a node breadth-first and report direct and
transitive impact, affected repositories and cross-repository critical
paths.

The impact score is the share of all graph nodes that are reached,
scaled to 0-100. It does not weight by severity or criticality.`,
	}
}

// Execute runs the impact analysis.
func (it *ImpactController) Execute(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		logger.Error("impact requires exactly one node ID")
		return
	}
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	result, err := it.command.Execute(context.Background(), commands.ImpactOptions{
		GraphOptions: graphOptions(settings),
		NodeID:       args[0],
	})
	if err != nil {
		logger.Errorf("Impact analysis failed: %v", err)
		return
	}
	if result == nil {
		return
	}
	render(it.output, settings, result)
}
