package main

import (
	"github.com/spf13/cobra"

	"github.com/edgebench/go-device-profiler/internal/app"
)

// NewCLI builds the root command with all subcommands attached.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "devprof",
		Short:         "On-device benchmarking of TorchScript models",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the YAML config file")
	rootCmd.PersistentFlags().String("serial", "", "Device serial number, overrides the config")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(
		newRunCmd(),
		newBatchCmd(),
		newParseCmd(),
		newDevicesCmd(),
		newCheckCmd(),
		newReportCmd(),
	)

	return rootCmd
}

// newApp wires the application from the persistent flags.
func newApp(cmd *cobra.Command) (*app.Application, error) {
	configPath, _ := cmd.Flags().GetString("config")
	serial, _ := cmd.Flags().GetString("serial")
	verbose, _ := cmd.Flags().GetBool("verbose")
	return app.New(configPath, serial, verbose)
}
