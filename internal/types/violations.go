// Package types provides type definitions for structured data used throughout the soil-prediction results system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Violation represents a single structural check failure in the generated
// LaTeX tables document
type Violation struct {
	Type       string `json:"type"`
	Severity   string `json:"severity"`
	Details    string `json:"details"`
	Table      string `json:"table,omitempty"`
	LineNumber *int   `json:"line_number,omitempty"`
}

// Violations represents a collection of structural check failures
type Violations struct {
	Violations []Violation `json:"violations"`
}

// IsEmpty reports whether no violations were recorded.
func (v *Violations) IsEmpty() bool {
	return v == nil || len(v.Violations) == 0
}
