package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/crossgraph/internal/domain/commands"
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// PathController handles the "path" subcommand (shortest path).
type PathController struct {
	noFlags
	command commands.Path
	output  repositories.OutputRepository
}

// NewPathController creates a new PathController.
func NewPathController(command commands.Path, output repositories.OutputRepository) *PathController {
	return &PathController{command: command, output: output}
}

// GetBind returns the Cobra command metadata for the path controller.
func (it *PathController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "path <from> <to>",
		Short: "Find the shortest dependency chain between two nodes",
		Long:  `Find the dependency chain with the fewest hops from one node to another.`,
	}
}

// Execute runs the shortest path query.
func (it *PathController) Execute(cmd *cobra.Command, args []string) {
	if len(args) != 2 { //nolint:mnd // from + to
		logger.Error("path requires a source and a target node ID")
		return
	}
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	path, err := it.command.Shortest(context.Background(), commands.PathOptions{
		GraphOptions: graphOptions(settings),
		From:         args[0],
		To:           args[1],
	})
	if err != nil {
		logger.Errorf("Path query failed: %v", err)
		return
	}
	if path == nil {
		return
	}
	render(it.output, settings, path)
}

// PathsController handles the "paths" subcommand (path enumeration).
type PathsController struct {
	command commands.Path
	output  repositories.OutputRepository
}

// NewPathsController creates a new PathsController.
func NewPathsController(command commands.Path, output repositories.OutputRepository) *PathsController {
	return &PathsController{command: command, output: output}
}

// GetBind returns the Cobra command metadata for the paths controller.
func (it *PathsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "paths <from>",
		Short: "Enumerate dependency chains from a node",
		Long: `Enumerate every dependency chain starting at a node, down to leaves
or until --max-depth hops. Cycles end a chain at the repeated node.`,
	}
}

// Execute runs the path enumeration.
func (it *PathsController) Execute(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		logger.Error("paths requires exactly one node ID")
		return
	}
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	maxDepth, _ := cmd.Flags().GetInt("max-depth")
	if maxDepth <= 0 {
		maxDepth = settings.Analysis.MaxDepth
	}
	paths, err := it.command.All(context.Background(), commands.PathOptions{
		GraphOptions: graphOptions(settings),
		From:         args[0],
		MaxDepth:     maxDepth,
	})
	if err != nil {
		logger.Errorf("Path enumeration failed: %v", err)
		return
	}
	render(it.output, settings, paths)
}

// AddFlags adds the paths-specific flags to the given Cobra command.
func (it *PathsController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Int("max-depth", 0, "Maximum hops per chain (default: analysis.max_depth)")
}
