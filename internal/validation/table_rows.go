// Package validation provides functionality to validate generated LaTeX tables against structural constraints.
package validation

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/smaefr/soil-prediction-code/internal/rendering"
	"github.com/smaefr/soil-prediction-code/internal/types"
)

// CheckTableRows verifies per-table data row counts. Data rows are the lines
// ending in \\ between a \midrule and the following \bottomrule. The summary
// table, identified by its \label, must hold exactly summaryRows rows; every
// other table is capped at maxRows.
func CheckTableRows(doc string, maxRows, summaryRows int) []types.Violation {
	var violations []types.Violation

	var (
		label    string
		counting bool
		rows     int
	)

	scanner := bufio.NewScanner(strings.NewReader(doc))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		trimmed := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(trimmed, `\label{`):
			label = strings.TrimSuffix(strings.TrimPrefix(trimmed, `\label{`), "}")
		case trimmed == `\midrule`:
			counting = true
			rows = 0
		case trimmed == `\bottomrule`:
			if !counting {
				continue
			}
			counting = false
			if v := checkRowCount(label, rows, lineNum, maxRows, summaryRows); v != nil {
				violations = append(violations, *v)
			}
		case counting && strings.HasSuffix(trimmed, `\\`):
			rows++
		case trimmed == `\end{table}`:
			label = ""
		}
	}

	return violations
}

// checkRowCount applies the row limit for one closed table body.
func checkRowCount(label string, rows, lineNum, maxRows, summaryRows int) *types.Violation {
	if label == rendering.SummaryTableLabel {
		if rows != summaryRows {
			return &types.Violation{
				Type:       "summary_row_count",
				Severity:   "warning",
				Details:    fmt.Sprintf("Summary table has %d data rows, expected exactly %d", rows, summaryRows),
				Table:      label,
				LineNumber: intPtr(lineNum),
			}
		}
		return nil
	}

	if rows > maxRows {
		return &types.Violation{
			Type:       "table_too_long",
			Severity:   "warning",
			Details:    fmt.Sprintf("Table %s has %d data rows, maximum is %d", tableName(label), rows, maxRows),
			Table:      label,
			LineNumber: intPtr(lineNum),
		}
	}
	return nil
}

// tableName formats a table label for violation messages.
func tableName(label string) string {
	if label == "" {
		return "(unlabeled)"
	}
	return label
}
