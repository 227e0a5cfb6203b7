// SPDX-License-Identifier: MIT

// Command lvtopo runs persistent-homology jobs described in YAML.
//
// Usage:
//
//	lvtopo run job.yaml [--format text|json] [-v]
//	lvtopo validate job.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Flags
	verbose bool
	format  string

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lvtopo",
	Short: "Persistent homology of filtered complexes and point clouds",
	Long: `lvtopo computes persistence intervals over a prime field GF(p).

Input is a YAML job naming either an explicit filtered complex or a
Vietoris–Rips point cloud. Logs go to stderr, results to stdout.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run [job.yaml]",
	Short: "Run a job and print its persistence intervals",
	Args:  cobra.ExactArgs(1),
	RunE:  runJob,
}

var validateCmd = &cobra.Command{
	Use:   "validate [job.yaml]",
	Short: "Parse and check a job without running it",
	Args:  cobra.ExactArgs(1),
	RunE:  validateJob,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	runCmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")

	rootCmd.AddCommand(runCmd, validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
