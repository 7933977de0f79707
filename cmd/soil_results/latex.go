package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/smaefr/soil-prediction-code/internal/loading"
	"github.com/smaefr/soil-prediction-code/internal/observability"
	"github.com/smaefr/soil-prediction-code/internal/ranking"
	"github.com/smaefr/soil-prediction-code/internal/rendering"
)

var latexCommand = &cobra.Command{
	Use:   "latex",
	Short: "Generate the LaTeX tables document from combined results",
	Long: `Loads a combined results JSON file and writes the LaTeX tables document:
a summary table of the best method per target constituent followed by a
top-10 detail table for every soil property. Ranking is applied before
rendering, so an unranked combined file works too.`,
	RunE: runLatex,
}

var (
	latexInput  string
	latexOutput string
)

func init() {
	latexCommand.Flags().StringVarP(&latexInput, "in", "i", "", "Path to combined results JSON file (required)")
	latexCommand.Flags().StringVarP(&latexOutput, "out", "o", "", "Path to output LaTeX tables file (required)")

	if err := latexCommand.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := latexCommand.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(latexCommand)
}

func runLatex(_ *cobra.Command, _ []string) error {
	rs, err := loading.ReadResultSet(latexInput)
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}

	ranked := ranking.RankResultSet(rs)

	// Ensure output directory exists
	outputDir := filepath.Dir(latexOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	printer := observability.NewPrinter(os.Stdout)
	if err := rendering.WriteDocument(ranked, latexOutput, printer); err != nil {
		return fmt.Errorf("failed to generate LaTeX tables: %w", err)
	}
	return nil
}
