package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/smaefr/soil-prediction-code/internal/loading"
	"github.com/smaefr/soil-prediction-code/internal/ranking"
)

var rankCommand = &cobra.Command{
	Use:   "rank",
	Short: "Sort every property's methods by descending R²",
	Long:  "Loads a combined results JSON file, sorts each soil property's methods by descending R² with unscored methods kept last, and writes the ranked snapshot.",
	RunE:  runRank,
}

var (
	rankInput  string
	rankOutput string
)

func init() {
	rankCommand.Flags().StringVarP(&rankInput, "in", "i", "", "Path to combined results JSON file (required)")
	rankCommand.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output ranked JSON file (required)")

	if err := rankCommand.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := rankCommand.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCommand)
}

func runRank(_ *cobra.Command, _ []string) error {
	rs, err := loading.ReadResultSet(rankInput)
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}

	ranked := ranking.RankResultSet(rs)

	payload, err := ranked.MarshalIndent()
	if err != nil {
		return fmt.Errorf("failed to marshal ranked results: %w", err)
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(rankOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(rankOutput, payload, 0644); err != nil {
		return fmt.Errorf("failed to write ranked results: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Ranked %d properties (%d methods)\n", ranked.Len(), ranked.TotalMethods())
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", rankOutput)
	return nil
}
