// Package cmd implements the tabula command line interface.
package cmd

import (
	"github.com/spf13/cobra"

	"tabula/pkg/logging"
)

var (
	storeDir string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "tabula",
	Short: "An in-memory relational table kernel",
	Long: "tabula is a teaching-oriented embedded query engine: typed tuples,\n" +
		"primary-key indexes and composable relational algebra operators.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Init(logging.Config{
			Level: logging.LogLevel(logLevel),
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeDir, "store", "store",
		"directory holding table snapshots")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO",
		"log level (DEBUG, INFO, WARN, ERROR)")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
