package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// RunFunc starts the shell with a validated configuration.
type RunFunc func(ctx context.Context, config *Config) error

// NewRootCommand builds the csh entry point. Environment defaults are read
// before flags are registered so an explicit flag always wins.
func NewRootCommand(run RunFunc) *cobra.Command {
	config := DefaultConfig()
	LoadEnvironmentConfig(config)

	cmd := &cobra.Command{
		Use:           Name,
		Short:         "A small interactive shell over the local filesystem",
		Long:          "csh reads commands from the terminal and runs them against the current working directory.\nType 'help' at the prompt for the list of commands.",
		Args:          cobra.NoArgs,
		Version:       VersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), config)
		},
	}

	cmd.Flags().StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&config.LogFile, "log-file", config.LogFile, "Append logs to this file (default: discard)")

	return cmd
}
