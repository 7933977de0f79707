// Package main provides the soil_results CLI for combining soil property
// prediction results.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "soil_results",
	Short: "Combine and report soil property prediction results",
	Long: `soil_results merges full-spectrum and derivative-spectra R² result files,
ranks the methods for every soil property, and emits the combined JSON
snapshot, publication-ready LaTeX tables, and a console statistics report.

Invoked without a subcommand it runs the full combine pipeline against the
default file names in the current directory.`,
	Args: cobra.NoArgs,
	RunE: runCombine,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
