// The root command for the CLI.
// This root 'composes' your subcommands and provides global config flags like --debug.
package cmd

import (
	"os"

	"github.com/redjax/platinfo/internal/commands/showCommand"
	"github.com/redjax/platinfo/internal/config"
	platformservice "github.com/redjax/platinfo/internal/services/platformService"
	"github.com/redjax/platinfo/internal/utils/logging"
	"github.com/redjax/platinfo/internal/version"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree around facade. Flag values live on the
// returned command, so separate trees never share state.
func NewRootCmd(facade platformservice.Facade) *cobra.Command {
	// A path to a file to load configuration from
	var cfgFile string

	rootCmd := &cobra.Command{
		// The command you run to call the compiled binary
		Use: "platinfo",
		// A short description of what the command does
		Short: "Show host and runtime metadata.",
		// A longer description for the command
		Long: `Read-only view of host and runtime metadata: OS identity, CPU and process
architecture, machine and user identity, logical drives, runtime version and
memory page size. Every value is read from the host when the command runs.`,
		SilenceUsage: true,
		// Load config and set up logging before any subcommand runs
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}

			if err := logging.Configure(logrus.StandardLogger(), os.Stderr, cfg.Log.Level, cfg.Debug); err != nil {
				return err
			}
			logrus.WithField("format", cfg.Output.Format).Debug("configuration loaded")

			cmd.SetContext(config.WithConfig(cmd.Context(), cfg))
			return nil
		},
		// Adds a help menu you can display with --help/-h
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	// Add flags to the CLI's root command, making them 'global'
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json, toml or .env)")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringP("format", "o", "text", "Output format: text, table, json or yaml")

	// Add other CLI subcommands
	rootCmd.AddCommand(showCommand.NewShowCmd(facade))
	rootCmd.AddCommand(version.NewVersionCommand(facade))
	rootCmd.AddCommand(version.NewSelfCommand(facade))

	return rootCmd
}

// Execute the root Cobra command
func Execute() {
	// Import this into a main.go and call with cmd.Execute()
	cobra.CheckErr(NewRootCmd(platformservice.New()).Execute())
}
