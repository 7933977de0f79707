package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/smaefr/soil-prediction-code/internal/config"
	"github.com/smaefr/soil-prediction-code/internal/db"
	"github.com/smaefr/soil-prediction-code/internal/loading"
	"github.com/smaefr/soil-prediction-code/internal/observability"
	"github.com/smaefr/soil-prediction-code/internal/statistics"
	"github.com/smaefr/soil-prediction-code/internal/types"
)

var reportCommand = &cobra.Command{
	Use:   "report",
	Short: "Print the statistics report for a combined result set",
	Long: `Prints the console statistics report for a ranked combined results file,
or for the combined results stored in the artifact database for a previous
pipeline run (--run).`,
	RunE: runReport,
}

var (
	reportInput       string
	reportRunID       string
	reportSuffix      string
	reportDatabaseURL string
)

func init() {
	reportCommand.Flags().StringVarP(&reportInput, "in", "i", "", "Path to combined results JSON file (mutually exclusive with --run)")
	reportCommand.Flags().StringVar(&reportRunID, "run", "", "Pipeline run ID to report on from the artifact database (mutually exclusive with --in)")
	reportCommand.Flags().StringVar(&reportSuffix, "suffix", config.DefaultMethodSuffix, "Suffix that marks derivative methods")
	reportCommand.Flags().StringVar(&reportDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(reportCommand)
}

func runReport(_ *cobra.Command, _ []string) error {
	if (reportInput == "") == (reportRunID == "") {
		return fmt.Errorf("exactly one of --in or --run must be provided")
	}

	var rs *types.ResultSet
	if reportInput != "" {
		loaded, err := loading.ReadResultSet(reportInput)
		if err != nil {
			return fmt.Errorf("failed to load results: %w", err)
		}
		rs = loaded
	} else {
		loaded, err := loadStoredResults(reportRunID)
		if err != nil {
			return err
		}
		rs = loaded
	}

	summary := statistics.Compute(rs, reportSuffix)
	observability.NewPrinter(os.Stdout).PrintSummaryReport(summary)
	return nil
}

// loadStoredResults fetches the combined results artifact a pipeline run
// saved to the database.
func loadStoredResults(rawID string) (*types.ResultSet, error) {
	ctx := context.Background()

	databaseURL := reportDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required for --run")
	}

	runID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("invalid run id format: %w", err)
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	payload, err := database.GetArtifact(ctx, runID, db.StepCombinedResults)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch combined results artifact: %w", err)
	}
	if payload == nil {
		return nil, fmt.Errorf("no combined results stored for run %s", runID)
	}

	var rs types.ResultSet
	if err := json.Unmarshal(payload, &rs); err != nil {
		return nil, fmt.Errorf("failed to decode stored combined results: %w", err)
	}
	return &rs, nil
}
