// Package main provides the CLI entrypoint for csv-rewriter.
//
// csv-rewriter is a one-shot batch tool that:
//   - Loads a declarative column configuration (YAML or legacy config.json)
//   - Reads every *.csv file from the input directory
//   - Reorders, coerces, transforms, and replicates rows per configuration
//   - Packages each result into a ZIP archive in the output directory
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"csv-rewriter/internal/batch"
	"csv-rewriter/internal/config"
	"csv-rewriter/internal/transform"
)

// Environment variable overrides, loaded from .env when present.
const (
	envConfig = "CSV_REWRITER_CONFIG"
	envInput  = "CSV_REWRITER_INPUT"
	envOutput = "CSV_REWRITER_OUTPUT"
)

var (
	flagConfig  string
	flagInput   string
	flagOutput  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "csv-rewriter",
	Short:         "Rewrite CSV exports into reformatted, ZIP-packaged CSV files",
	Long:          "csv-rewriter batch-transforms delimited text files according to a declarative column configuration:\ncolumn selection and ordering, type coercion, derivation transforms, and installment row replication.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "config.yaml", "configuration file (.yaml or .json)")
	rootCmd.Flags().StringVarP(&flagInput, "input", "i", "input", "input directory holding *.csv files")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "output", "output directory for ZIP archives")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "dump the normalized configuration before running")
}

func run(cmd *cobra.Command, _ []string) error {
	// .env is optional; flags set explicitly always win.
	_ = godotenv.Load()

	applyEnvOverride(cmd, "config", envConfig, &flagConfig)
	applyEnvOverride(cmd, "input", envInput, &flagInput)
	applyEnvOverride(cmd, "output", envOutput, &flagOutput)

	cfg, err := config.LoadFile(flagConfig)
	if err != nil {
		return err
	}

	if flagVerbose {
		spew.Fdump(os.Stderr, cfg)
	}

	runner := &batch.Runner{
		Config:    cfg,
		Registry:  transform.NewRegistry(cfg.TipoDovutoMapping),
		InputDir:  flagInput,
		OutputDir: flagOutput,
		Logger:    log.New(os.Stderr, "", log.LstdFlags),
	}

	report, err := runner.Run()
	if err != nil {
		return err
	}

	fmt.Println(report.Summary())

	return nil
}

// applyEnvOverride substitutes an environment value for a flag the user
// did not set on the command line.
func applyEnvOverride(cmd *cobra.Command, flag, env string, dst *string) {
	if cmd.Flags().Changed(flag) {
		return
	}

	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
