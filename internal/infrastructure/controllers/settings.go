package controllers

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/crossgraph/internal/domain/commands"
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// loadSettings reads the config given by --config, the first auto-detected config
// file, or falls back to defaults. Global flags override file values.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		if found, err := entities.FindConfigFile(); err == nil {
			configPath = found
		}
	}

	settings := entities.NewDefaultSettings()
	if configPath != "" {
		logger.Debugf("Using config file: %s", configPath)
		loaded, err := entities.NewSettings(configPath)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	if graphPath, _ := cmd.Flags().GetString("graph"); graphPath != "" {
		settings.Graph = graphPath
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		settings.Output.Format = format
	}
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		settings.Strict = true
	}
	return settings, settings.Validate()
}

func graphOptions(settings *entities.Settings) commands.GraphOptions {
	return commands.GraphOptions{GraphPath: settings.Graph, Strict: settings.Strict}
}

// render writes value to stdout in the configured format.
func render(output repositories.OutputRepository, settings *entities.Settings, value any) {
	if err := output.Write(os.Stdout, settings.Output.Format, value); err != nil {
		logger.Errorf("Failed to render output: %v", err)
	}
}

// noFlags is embedded by controllers without command-specific flags.
type noFlags struct{}

// AddFlags adds nothing.
func (noFlags) AddFlags(*cobra.Command) {}
