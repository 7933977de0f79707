// Package pipeline provides the high-level orchestration for combining soil
// property prediction results into the published artifacts.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/smaefr/soil-prediction-code/internal/config"
	"github.com/smaefr/soil-prediction-code/internal/db"
	"github.com/smaefr/soil-prediction-code/internal/loading"
	"github.com/smaefr/soil-prediction-code/internal/merging"
	"github.com/smaefr/soil-prediction-code/internal/observability"
	"github.com/smaefr/soil-prediction-code/internal/ranking"
	"github.com/smaefr/soil-prediction-code/internal/rendering"
	"github.com/smaefr/soil-prediction-code/internal/statistics"
	"github.com/smaefr/soil-prediction-code/internal/types"
	"github.com/smaefr/soil-prediction-code/internal/validation"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	FullrunPath     string `validate:"required"` // Full-spectrum results JSON
	DerivativesPath string `validate:"required"` // Derivative-spectra results JSON
	OutputDir       string `validate:"required"` // Directory receiving combined JSON and LaTeX output
	MethodSuffix    string // Appended to derivative method names; empty disables tagging
	Verbose         bool
	DatabaseURL     string
	Out             io.Writer // Defaults to os.Stdout
	OnProgress      ProgressCallback
}

// Validate checks the options using the validator.
func (o *RunOptions) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			Content:  content,
		})
	}
}

// RunPipeline orchestrates the full combine-sort-render-report pipeline.
// Missing or unreadable inputs degrade to empty result sets; the run only
// fails outright when both inputs are empty or the output directory cannot
// be created.
func RunPipeline(ctx context.Context, opts RunOptions) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid pipeline options: %w", err)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)

	printer.PrintRunHeader("COMBINING SOIL PROPERTY PREDICTION RESULTS")

	// Initialize database connection if configured
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			printer.Printf("Warning: Failed to connect to database: %v\n", err)
			printer.Printf("Continuing without database persistence...\n")
		} else {
			defer database.Close()
			if opts.Verbose {
				printer.Printf("[VERBOSE] Connected to database\n")
			}
			runID, err = database.CreateRun(ctx, opts.FullrunPath, opts.DerivativesPath)
			if err != nil {
				printer.Printf("Warning: Failed to create database run: %v\n", err)
				runID = uuid.Nil
			} else if opts.Verbose {
				printer.Printf("[VERBOSE] Created database run: %s\n", runID)
			}
		}
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		failRun(ctx, database, runID)
		return fmt.Errorf("creating output directory %s failed: %w", opts.OutputDir, err)
	}

	printer.Printf("1. Loading JSON files...\n")
	fullrun := loading.LoadOrEmpty(opts.FullrunPath, printer)
	derivatives := loading.LoadOrEmpty(opts.DerivativesPath, printer)

	if fullrun.IsEmpty() && derivatives.IsEmpty() {
		printer.Errorf("No data loaded from either file. Exiting.")
		failRun(ctx, database, runID)
		return fmt.Errorf("no data loaded from %q or %q", opts.FullrunPath, opts.DerivativesPath)
	}

	printer.Printf("\n2. Combining results...\n")
	combined := merging.Combine(fullrun, merging.TagMethods(derivatives, opts.MethodSuffix))
	printer.Successf("Combined results for %d soil properties", combined.Len())
	printer.Successf("Total methods: %d", combined.TotalMethods())
	emitProgress(&opts, db.StepCombinedResults, db.CategoryResults,
		fmt.Sprintf("Combined results for %d soil properties", combined.Len()), nil)

	printer.Printf("\n3. Sorting methods by R² values...\n")
	sorted := ranking.RankResultSet(combined)
	ranking.AnnounceTopMethods(sorted, printer)

	printer.Printf("\n4. Saving combined results...\n")
	combinedPath := filepath.Join(opts.OutputDir, config.DefaultCombinedFile)
	saveCombinedResults(sorted, combinedPath, printer)
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepCombinedResults, db.CategoryResults, sorted)
	}

	printer.Printf("\n5. Generating LaTeX tables...\n")
	tablesPath := filepath.Join(opts.OutputDir, config.DefaultTablesFile)
	if err := rendering.WriteDocument(sorted, tablesPath, printer); err == nil {
		violations := checkTables(tablesPath, printer)
		if database != nil && runID != uuid.Nil {
			if doc, readErr := os.ReadFile(tablesPath); readErr == nil {
				_ = database.SaveTextArtifact(ctx, runID, db.StepLatexTables, db.CategoryRendering, string(doc))
			}
			if violations != nil && !violations.IsEmpty() {
				_ = database.SaveArtifact(ctx, runID, db.StepViolations, db.CategoryValidation, violations)
			}
		}
		emitProgress(&opts, db.StepLatexTables, db.CategoryRendering, "Generated LaTeX tables document", nil)
	}

	printer.Printf("\n6. Generating summary report...\n")
	summary := statistics.Compute(sorted, opts.MethodSuffix)
	printer.PrintSummaryReport(summary)
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepSummaryReport, db.CategoryReport, summary)
	}
	emitProgress(&opts, db.StepSummaryReport, db.CategoryReport,
		fmt.Sprintf("Summarized %d soil properties", summary.TotalProperties), summary)

	// Mark run as completed
	if database != nil && runID != uuid.Nil {
		_ = database.CompleteRun(ctx, runID, "completed")
	}

	printer.Printf("\nPROCESS COMPLETED SUCCESSFULLY!\n")
	printer.Printf("Combined results saved to: %s\n", combinedPath)
	printer.Printf("LaTeX tables (including summary table) saved to: %s\n", tablesPath)
	printer.Printf("Ready for analysis and visualization.\n")
	return nil
}

// saveCombinedResults writes the result set as pretty-printed JSON. A failure
// is reported but does not abort the run; the remaining steps still operate
// on the in-memory data.
func saveCombinedResults(rs *types.ResultSet, path string, printer *observability.Printer) {
	payload, err := rs.MarshalIndent()
	if err != nil {
		printer.Errorf("Error saving combined results: %v", err)
		return
	}
	if err := os.WriteFile(path, payload, 0644); err != nil {
		printer.Errorf("Error saving combined results: %v", err)
		return
	}
	printer.Printf("\n")
	printer.Successf("Successfully saved combined results to '%s'", path)
}

// checkTables runs the structural checks over the document that was actually
// written to disk and reports anything they flag.
func checkTables(path string, printer *observability.Printer) *types.Violations {
	violations, err := validation.CheckFile(path)
	if err != nil {
		printer.Warnf("Could not check LaTeX tables: %v", err)
		return nil
	}
	printer.PrintViolations(violations)
	return violations
}

// failRun marks the database run as failed when one exists.
func failRun(ctx context.Context, database *db.DB, runID uuid.UUID) {
	if database != nil && runID != uuid.Nil {
		_ = database.CompleteRun(ctx, runID, "failed")
	}
}
