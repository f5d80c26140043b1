package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/crossgraph/internal"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "crossgraph",
		Short: "Cross-repository dependency graph analysis",
		Long: `Build a dependency graph spanning many repositories and analyze it:
cycles, cross-repository links, per-repository health, impact of a change,
duplicate versions and dependency chains.

Usage:
  crossgraph build ./svc-a ./svc-b   Scan checkouts and write the graph snapshot
  crossgraph cycles                  Detect circular dependencies
  crossgraph impact <node-id>        Show what a change to a node affects
  crossgraph report -f json          Run every analysis at once`,
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP("graph", "g", "",
		"Path to the graph snapshot (.yaml, .yml or .json)")
	cmd.PersistentFlags().StringP("format", "f", "",
		"Output format: table, json or yaml")
	cmd.PersistentFlags().Bool("strict", false,
		"Reject snapshots whose adjacency lists disagree with the edge list")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		ctrl.AddFlags(subCmd)

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'crossgraph': %s", err)
	}
}
