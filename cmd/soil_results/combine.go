package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smaefr/soil-prediction-code/internal/config"
	"github.com/smaefr/soil-prediction-code/internal/pipeline"
)

var combineCommand = &cobra.Command{
	Use:   "combine",
	Short: "Run the full combine-and-report pipeline end-to-end",
	Long: `Loads the full-spectrum and derivative-spectra result files, tags the
derivative methods, merges and ranks every soil property, writes the combined
JSON snapshot and the LaTeX tables document, and prints the statistics report.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	Args: cobra.NoArgs,
	RunE: runCombine,
}

var (
	combineConfigPath  string
	combineFullrun     string
	combineDerivatives string
	combineOutDir      string
	combineSuffix      string
	combineVerbose     bool
	combineDatabaseURL string
)

func init() {
	// The root command carries the same flag set so a bare invocation runs
	// the pipeline with defaults
	registerCombineFlags(combineCommand)
	registerCombineFlags(rootCmd)

	rootCmd.AddCommand(combineCommand)
}

func registerCombineFlags(cmd *cobra.Command) {
	// Config file flag (processed first)
	cmd.Flags().StringVar(&combineConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	cmd.Flags().StringVarP(&combineFullrun, "fullrun", "f", "", "Path to full-spectrum results JSON (default "+config.DefaultFullrunFile+")")
	cmd.Flags().StringVarP(&combineDerivatives, "derivatives", "d", "", "Path to derivative-spectra results JSON (default "+config.DefaultDerivativesFile+")")
	cmd.Flags().StringVarP(&combineOutDir, "out-dir", "o", "", "Directory for combined JSON and LaTeX output (default "+config.DefaultOutputDir+")")
	cmd.Flags().StringVar(&combineSuffix, "suffix", "", "Suffix appended to derivative method names (default "+config.DefaultMethodSuffix+")")
	cmd.Flags().BoolVarP(&combineVerbose, "verbose", "v", false, "Print detailed progress information")

	// Database URL for artifact persistence
	cmd.Flags().StringVar(&combineDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
}

func runCombine(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if combineConfigPath != "" {
		loadedCfg, err := config.LoadConfig(combineConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if combineVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", combineConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("fullrun") {
		cfg.Fullrun = combineFullrun
	}
	if cmd.Flags().Changed("derivatives") {
		cfg.Derivatives = combineDerivatives
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutDir = combineOutDir
	}
	if cmd.Flags().Changed("suffix") {
		cfg.MethodSuffix = combineSuffix
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = combineVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = combineDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Defaults())

	// Step 4: Database URL is optional; fall back to the environment
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	opts := pipeline.RunOptions{
		FullrunPath:     cfg.Fullrun,
		DerivativesPath: cfg.Derivatives,
		OutputDir:       cfg.OutDir,
		MethodSuffix:    cfg.MethodSuffix,
		Verbose:         cfg.Verbose,
		DatabaseURL:     cfg.DatabaseURL,
	}
	if cfg.Verbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stdout, "[VERBOSE] %s/%s: %s\n", event.Category, event.Step, event.Message)
		}
	}

	return pipeline.RunPipeline(ctx, opts)
}
