// Package rendering generates the LaTeX tables document for combined results.
package rendering

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/smaefr/soil-prediction-code/internal/observability"
	"github.com/smaefr/soil-prediction-code/internal/types"
)

// GenerateDocument assembles the complete LaTeX tables file: a header
// comment, the summary table, then one detailed table per property. Detailed
// tables are ordered by each property's best score, descending, so the
// strongest predictions come first. Progress is reported through printer.
func GenerateDocument(rs *types.ResultSet, printer *observability.Printer) (string, error) {
	if rs == nil {
		rs = types.NewResultSet()
	}

	printer.Printf("\nGenerating LaTeX tables for all soil properties...\n")

	type propertyBest struct {
		property string
		best     float64
	}
	order := make([]propertyBest, 0, rs.Len())
	for _, prop := range rs.Properties {
		order = append(order, propertyBest{property: prop.Property, best: bestScore(prop.Methods)})
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].best > order[j].best
	})

	blocks := []string{
		"% LaTeX Tables for Soil Property Prediction Results",
		"% Generated automatically from combined results",
		"% Summary table followed by detailed tables for each property",
		"",
	}

	summary, err := SummaryTable(rs)
	if err != nil {
		return "", err
	}
	blocks = append(blocks, summary, "")
	blocks = append(blocks, "% Detailed tables for each soil property (top 10 methods)", "")

	for _, item := range order {
		printer.Printf("  Creating detailed table for %s (best R² = %.3f)\n", item.property, item.best)
		methods, _ := rs.Lookup(item.property)
		table, err := DetailedTable(item.property, methods, DetailTopN)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, table)
	}

	return strings.Join(blocks, "\n"), nil
}

// WriteDocument renders the tables document and saves it to path. Rendering
// and save failures are reported through printer and returned; callers decide
// whether the run continues.
func WriteDocument(rs *types.ResultSet, path string, printer *observability.Printer) error {
	doc, err := GenerateDocument(rs, printer)
	if err != nil {
		printer.Errorf("Failed to save LaTeX tables: %v", err)
		return err
	}

	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		printer.Errorf("Failed to save LaTeX tables: %v", err)
		return &RenderError{
			Message: fmt.Sprintf("failed to save LaTeX tables to %s", path),
			Cause:   err,
		}
	}

	printer.Successf("LaTeX tables saved to '%s'", path)

	validCount := 0
	for _, prop := range rs.Properties {
		if bestScore(prop.Methods) > missingBestScore {
			validCount++
		}
	}
	printer.Successf("Generated summary table + %d detailed LaTeX tables", validCount)
	printer.Printf("File contains complete LaTeX code ready for inclusion in documents\n")
	return nil
}
