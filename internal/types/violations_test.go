// Package types provides type definitions for structured data used throughout the soil-prediction results system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolation_JSONMarshaling(t *testing.T) {
	lineNum := 10
	violation := Violation{
		Type:       "environment_unclosed",
		Severity:   "error",
		Details:    `environment "tabular" is never closed`,
		Table:      "tab:ph",
		LineNumber: &lineNum,
	}

	jsonBytes, err := json.MarshalIndent(violation, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"type": "environment_unclosed"`)
	assert.Contains(t, string(jsonBytes), `"severity": "error"`)
	assert.Contains(t, string(jsonBytes), `"table": "tab:ph"`)
	assert.Contains(t, string(jsonBytes), `"line_number": 10`)

	var unmarshaled Violation
	err = json.Unmarshal(jsonBytes, &unmarshaled)
	require.NoError(t, err)
	assert.Equal(t, violation.Type, unmarshaled.Type)
	assert.Equal(t, violation.Severity, unmarshaled.Severity)
	assert.Equal(t, violation.Details, unmarshaled.Details)
	assert.Equal(t, lineNum, *unmarshaled.LineNumber)
}

func TestViolation_OptionalFields(t *testing.T) {
	violation := Violation{
		Type:     "row_column_mismatch",
		Severity: "warning",
		Details:  "row has 3 cells, expected 4",
	}

	jsonBytes, err := json.Marshal(violation)
	require.NoError(t, err)
	assert.NotContains(t, string(jsonBytes), "table")
	assert.NotContains(t, string(jsonBytes), "line_number")

	var unmarshaled Violation
	err = json.Unmarshal(jsonBytes, &unmarshaled)
	require.NoError(t, err)
	assert.Nil(t, unmarshaled.LineNumber)
	assert.Empty(t, unmarshaled.Table)
}

func TestViolations_JSONMarshaling(t *testing.T) {
	lineNum := 5
	violations := Violations{
		Violations: []Violation{
			{
				Type:     "environment_unclosed",
				Severity: "error",
				Details:  `environment "table" is never closed`,
			},
			{
				Type:       "row_column_mismatch",
				Severity:   "warning",
				Details:    "row has 2 cells, expected 4",
				LineNumber: &lineNum,
			},
		},
	}

	jsonBytes, err := json.MarshalIndent(violations, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"violations": [`)
	assert.Contains(t, string(jsonBytes), `"environment_unclosed"`)
	assert.Contains(t, string(jsonBytes), `"row_column_mismatch"`)

	var unmarshaled Violations
	err = json.Unmarshal(jsonBytes, &unmarshaled)
	require.NoError(t, err)
	assert.Len(t, unmarshaled.Violations, 2)
}

func TestViolations_IsEmpty(t *testing.T) {
	var nilViolations *Violations
	assert.True(t, nilViolations.IsEmpty())
	assert.True(t, (&Violations{}).IsEmpty())
	assert.False(t, (&Violations{Violations: []Violation{{Type: "environment_unclosed"}}}).IsEmpty())
}
