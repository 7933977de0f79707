package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a pipeline run record
type Run struct {
	ID              uuid.UUID  `json:"id"`
	FullrunPath     string     `json:"fullrun_path"`
	DerivativesPath string     `json:"derivatives_path"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// Artifact step constants for known artifact types
const (
	StepCombinedResults = "combined_results"
	StepLatexTables     = "latex_tables"
	StepSummaryReport   = "summary_report"
	StepViolations      = "violations"
)

// Category constants for grouping artifacts by pipeline phase
const (
	CategoryResults    = "results"
	CategoryRendering  = "rendering"
	CategoryReport     = "report"
	CategoryValidation = "validation"
)
