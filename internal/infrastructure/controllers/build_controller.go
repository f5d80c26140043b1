package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/crossgraph/internal/domain/commands"
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
)

// BuildController handles the "build" subcommand.
type BuildController struct {
	command commands.Build
}

// NewBuildController creates a new BuildController.
func NewBuildController(command commands.Build) *BuildController {
	return &BuildController{command: command}
}

// GetBind returns the Cobra command metadata for the build controller.
func (it *BuildController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "build [dir...]",
		Short: "Build the cross-repository dependency graph",
		Long: `Scan local repository checkouts for manifests (go.mod, package.json,
pyproject.toml/requirements.txt, Cargo.toml, pom.xml, Terraform modules)
and write a graph snapshot every other command analyzes.

Without arguments the repositories listed under workspace.repositories
in the config file are scanned.`,
	}
}

// Execute builds and saves the graph.
func (it *BuildController) Execute(cmd *cobra.Command, args []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	output, _ := cmd.Flags().GetString("output")
	ecosystem, _ := cmd.Flags().GetString("ecosystem")

	if _, buildErr := it.command.Execute(context.Background(), settings, commands.BuildOptions{
		Dirs:      args,
		Output:    output,
		DryRun:    dryRun,
		Ecosystem: ecosystem,
	}); buildErr != nil {
		logger.Errorf("Build failed: %v", buildErr)
	}
}

// AddFlags adds the build-specific flags to the given Cobra command.
func (it *BuildController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Where to write the graph snapshot (default: --graph)")
	cmd.Flags().Bool("dry-run", false, "Build the graph without writing it")
	cmd.Flags().String("ecosystem", "", "Only run this scanner (go, npm, pip, cargo, maven, terraform)")
}
