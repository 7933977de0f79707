// Package validation provides functionality to validate generated LaTeX tables against structural constraints.
package validation

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/smaefr/soil-prediction-code/internal/rendering"
	"github.com/smaefr/soil-prediction-code/internal/types"
)

// CheckDocument runs all structural checks over a tables document: the file
// must contain content outside comments, every environment must balance, and
// table row counts must match the generator's limits. Checks only ever
// produce warnings; an empty result means the document is sound.
func CheckDocument(doc string) *types.Violations {
	var all []types.Violation

	if !hasContent(doc) {
		all = append(all, types.Violation{
			Type:     "empty_document",
			Severity: "warning",
			Details:  "Document contains no table content outside comments",
		})
	}

	all = append(all, CheckEnvironments(doc)...)
	all = append(all, CheckTableRows(doc, rendering.DetailTopN, rendering.SummaryRowCount)...)

	return &types.Violations{Violations: all}
}

// CheckFile reads a tables document from disk and runs CheckDocument on it.
func CheckFile(path string) (*types.Violations, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{
			Message: fmt.Sprintf("failed to read LaTeX file: %s", path),
			Cause:   err,
		}
	}
	return CheckDocument(string(content)), nil
}

// hasContent reports whether the document has any non-comment, non-blank line.
func hasContent(doc string) bool {
	scanner := bufio.NewScanner(strings.NewReader(doc))
	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "%") {
			continue
		}
		return true
	}
	return false
}

// intPtr returns a pointer to an integer
func intPtr(i int) *int {
	return &i
}
