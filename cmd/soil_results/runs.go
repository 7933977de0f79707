package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/smaefr/soil-prediction-code/internal/db"
	"github.com/smaefr/soil-prediction-code/internal/pipeline/steps"
)

var runsCommand = &cobra.Command{
	Use:   "runs",
	Short: "Inspect pipeline runs recorded in the artifact database",
	Long: `Lists recent pipeline runs stored in the artifact database. With
--artifacts it shows which artifacts a single run persisted; with --latex it
prints a run's stored LaTeX tables document to stdout.`,
	RunE: runRuns,
}

var (
	runsLimit       int
	runsArtifactsID string
	runsLatexID     string
	runsDatabaseURL string
)

func init() {
	runsCommand.Flags().IntVarP(&runsLimit, "limit", "n", 10, "Maximum number of runs to list")
	runsCommand.Flags().StringVar(&runsArtifactsID, "artifacts", "", "Show stored artifacts for the given run ID")
	runsCommand.Flags().StringVar(&runsLatexID, "latex", "", "Print the stored LaTeX tables document for the given run ID")
	runsCommand.Flags().StringVar(&runsDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runsCommand)
}

func runRuns(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := runsDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if runsLatexID != "" {
		return printStoredLatex(ctx, database, runsLatexID)
	}
	if runsArtifactsID != "" {
		return printRunArtifacts(ctx, database, runsArtifactsID)
	}
	return listRuns(ctx, database, runsLimit)
}

func listRuns(ctx context.Context, database *db.DB, limit int) error {
	runs, err := database.ListRuns(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No pipeline runs recorded")
		return nil
	}

	for _, run := range runs {
		completed := "-"
		if run.CompletedAt != nil {
			completed = run.CompletedAt.Format(time.RFC3339)
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s  %-9s  created %s  completed %s\n",
			run.ID, run.Status, run.CreatedAt.Format(time.RFC3339), completed)
		_, _ = fmt.Fprintf(os.Stdout, "    fullrun: %s\n", run.FullrunPath)
		_, _ = fmt.Fprintf(os.Stdout, "    derivatives: %s\n", run.DerivativesPath)
	}
	return nil
}

func printRunArtifacts(ctx context.Context, database *db.DB, rawID string) error {
	runID, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid run id format: %w", err)
	}

	run, err := database.GetRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to fetch run: %w", err)
	}
	if run == nil {
		return fmt.Errorf("run %s not found", runID)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Run %s (%s)\n", run.ID, run.Status)
	for _, def := range steps.Ordered() {
		size, err := artifactSize(ctx, database, runID, def)
		if err != nil {
			return err
		}
		if size == 0 {
			_, _ = fmt.Fprintf(os.Stdout, "  %-17s %-11s missing\n", def.Name, def.Category)
			continue
		}
		_, _ = fmt.Fprintf(os.Stdout, "  %-17s %-11s %d bytes\n", def.Name, def.Category, size)
	}
	return nil
}

// artifactSize reports the stored size of one artifact, zero when absent.
func artifactSize(ctx context.Context, database *db.DB, runID uuid.UUID, def steps.Definition) (int, error) {
	if def.Text {
		text, err := database.GetTextArtifact(ctx, runID, def.Name)
		if err != nil {
			return 0, fmt.Errorf("failed to fetch %s artifact: %w", def.Name, err)
		}
		return len(text), nil
	}

	payload, err := database.GetArtifact(ctx, runID, def.Name)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch %s artifact: %w", def.Name, err)
	}
	return len(payload), nil
}

func printStoredLatex(ctx context.Context, database *db.DB, rawID string) error {
	runID, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid run id format: %w", err)
	}

	doc, err := database.GetTextArtifact(ctx, runID, db.StepLatexTables)
	if err != nil {
		return fmt.Errorf("failed to fetch LaTeX artifact: %w", err)
	}
	if doc == "" {
		return fmt.Errorf("no LaTeX tables stored for run %s", runID)
	}

	_, _ = fmt.Fprint(os.Stdout, doc)
	return nil
}
