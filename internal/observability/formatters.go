// Package observability provides formatted console output for the results pipeline.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/smaefr/soil-prediction-code/internal/types"
)

const (
	// headerWidth is the rule width under pipeline banners
	headerWidth = 60
	// reportWidth is the rule width around the summary report header
	reportWidth = 80
	// sectionWidth is the rule width around report sections
	sectionWidth = 40
	// topPredictionsShown caps the overall leaderboard length
	topPredictionsShown = 10
)

// Printer writes human-readable progress and report output.
// It is not a stable machine interface; tests capture it through a buffer.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Printf writes a plain formatted line fragment.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Successf writes a line with a SUCCESS: prefix.
func (p *Printer) Successf(format string, args ...any) {
	p.Printf("SUCCESS: "+format+"\n", args...)
}

// Warnf writes a line with a WARNING: prefix.
func (p *Printer) Warnf(format string, args ...any) {
	p.Printf("WARNING: "+format+"\n", args...)
}

// Errorf writes a line with an ERROR: prefix.
func (p *Printer) Errorf(format string, args ...any) {
	p.Printf("ERROR: "+format+"\n", args...)
}

// rule writes a horizontal rule of the given character.
func (p *Printer) rule(ch string, width int) {
	p.Printf("%s\n", strings.Repeat(ch, width))
}

// PrintRunHeader writes the banner shown at the start of a pipeline run.
func (p *Printer) PrintRunHeader(title string) {
	p.Printf("%s\n", title)
	p.rule("=", headerWidth)
}

// PrintTopMethods lists the leading methods for one property after ranking.
// An empty slice means the property produced no scored methods at all.
func (p *Printer) PrintTopMethods(property string, top []types.MethodScore) {
	if len(top) == 0 {
		p.Printf("\n")
		p.Warnf("No valid results found for %s", property)
		return
	}

	p.Printf("\nTop 3 methods for %s:\n", property)
	for i, entry := range top {
		if entry.Score == nil {
			continue
		}
		p.Printf("  %d. %s: R² = %.4f\n", i+1, entry.Method, *entry.Score)
	}
}

// PrintViolations lists structural problems found in the generated tables
// document. Nothing is printed when the document is clean.
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || violations.IsEmpty() {
		return
	}

	p.Printf("\nFound %d issue(s) in generated LaTeX tables:\n", len(violations.Violations))
	for _, v := range violations.Violations {
		if v.LineNumber != nil {
			p.Warnf("[%s] %s (line %d)", v.Type, v.Details, *v.LineNumber)
		} else {
			p.Warnf("[%s] %s", v.Type, v.Details)
		}
	}
}

// PrintSummaryReport writes the full statistics report for a combined result set.
func (p *Printer) PrintSummaryReport(summary *types.Summary) {
	if summary == nil {
		return
	}

	p.Printf("\n")
	p.rule("=", reportWidth)
	p.Printf("COMBINED RESULTS SUMMARY REPORT\n")
	p.rule("=", reportWidth)
	p.Printf("Total soil properties analyzed: %d\n", summary.TotalProperties)

	for _, stats := range summary.Properties {
		if !stats.HasResults {
			p.Printf("\n%s: No valid results\n", stats.Property)
			continue
		}
		p.Printf("\n%s:\n", stats.Property)
		p.Printf("  Methods: %d total (%d fullrun, %d derivatives)\n",
			stats.MethodCount, stats.FullrunCount, stats.DerivCount)
		p.Printf("  Valid results: %d/%d (%.1f%%)\n",
			stats.ValidCount, stats.MethodCount,
			float64(stats.ValidCount)/float64(stats.MethodCount)*100)
		p.Printf("  R² range: %.4f - %.4f (avg: %.4f)\n",
			stats.MinScore, stats.MaxScore, stats.AvgScore)
		p.Printf("  Best method: %s (R² = %.4f)\n", stats.BestMethod, stats.BestScore)
	}

	p.Printf("\n")
	p.rule("=", sectionWidth)
	p.Printf("OVERALL STATISTICS:\n")
	p.rule("=", sectionWidth)
	p.Printf("Total methods tested: %d\n", summary.TotalMethods)
	p.Printf("  Fullrun methods: %d\n", summary.FullrunMethods)
	p.Printf("  Derivatives methods: %d\n", summary.DerivMethods)
	p.Printf("Properties with results: %d\n", summary.PropertiesWithResults)

	if len(summary.TopPredictions) > 0 {
		p.Printf("\nTOP 10 BEST PREDICTIONS OVERALL:\n")
		p.rule("-", headerWidth)
		for i, row := range summary.TopPredictions {
			if i >= topPredictionsShown {
				break
			}
			methodType := "fullrun"
			if row.Derivative {
				methodType = "derivatives"
			}
			p.Printf("%2d. %-15s | %-35s | R² = %.4f (%s)\n",
				i+1, row.Property, row.Method, row.Score, methodType)
		}
	}

	if summary.Comparison != nil {
		c := summary.Comparison
		p.Printf("\nPERFORMANCE COMPARISON:\n")
		p.Printf("Average R² - Fullrun methods: %.4f\n", c.FullrunAvg)
		p.Printf("Average R² - Derivatives methods: %.4f\n", c.DerivAvg)
		if c.DerivAvg > c.FullrunAvg {
			improvement := (c.DerivAvg - c.FullrunAvg) / c.FullrunAvg * 100
			p.Printf("RESULT: Derivatives show %.1f%% improvement over fullrun methods\n", improvement)
		} else {
			decline := (c.FullrunAvg - c.DerivAvg) / c.FullrunAvg * 100
			p.Printf("RESULT: Derivatives show %.1f%% decline compared to fullrun methods\n", decline)
		}
	}
}
