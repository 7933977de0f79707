// Package rendering generates the LaTeX tables document for combined results.
package rendering

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/smaefr/soil-prediction-code/internal/types"
)

const (
	// ScoreFloor is the lowest score a method may have and still appear in a
	// table. Failed runs are recorded far below it.
	ScoreFloor = -1000.0

	// missingBestScore stands in for properties without a single score above
	// ScoreFloor when ordering and counting detailed tables.
	missingBestScore = -999.0

	// DetailTopN caps the number of rows in a per-property table.
	DetailTopN = 10

	// SummaryRowCount is the number of rows in the summary table, one per
	// target constituent.
	SummaryRowCount = 8

	// SummaryTableLabel is the \label target of the summary table.
	SummaryTableLabel = "tab:best_methods_summary"
)

// Placeholder labels for summary rows without a usable best method.
const (
	noResultsLabel    = "No valid results"
	notAvailableLabel = "Not available"
)

// targetConstituents are the soil constituents reported in the summary table,
// in their fixed presentation order.
var targetConstituents = [SummaryRowCount]string{
	"Clay_Content", "pH", "Organic_Carbon", "Organic_Nitrogen",
	"Potassium", "Magnesium", "Calcium", "Sodium",
}

// tableFuncs exposes LaTeX escaping to the table templates.
var tableFuncs = template.FuncMap{
	"escape": EscapeLaTeX,
}

const detailedTableSrc = `\begin{table}[htbp]
\centering
\caption{Top models for predicting {{escape .Property}}}
\label{tab:{{.Slug}}}
\begin{tabular}{@{}ll@{}}
\toprule
\textbf{Model} & \textbf{R\textsuperscript{2}} \\
\midrule
{{range .Rows}}{{escape .Method}} & {{.Score}} \\
{{end}}\bottomrule
\end{tabular}
\end{table}
`

const summaryTableSrc = `% Best Methods Summary Table
% Shows the top-performing method for each of the 8 main soil constituents

\begin{table}[htbp]
\centering
\caption{Best performing models for each soil constituent}
\label{tab:best_methods_summary}
\begin{tabular}{@{}lll@{}}
\toprule
\textbf{Soil Constituent} & \textbf{Best Model} & \textbf{R\textsuperscript{2}} \\
\midrule
{{range .Rows}}{{escape .Constituent}} & {{escape .Method}} & {{.Score}} \\
{{end}}\bottomrule
\end{tabular}
\end{table}`

var (
	detailedTableTmpl = template.Must(template.New("detailed_table").Funcs(tableFuncs).Parse(detailedTableSrc))
	summaryTableTmpl  = template.Must(template.New("summary_table").Funcs(tableFuncs).Parse(summaryTableSrc))
)

// detailedTableData is the data passed to the detailed table template
type detailedTableData struct {
	Property string
	Slug     string
	Rows     []scoreRow
}

// scoreRow is a single method line in a detailed table
type scoreRow struct {
	Method string
	Score  string
}

// summaryTableData is the data passed to the summary table template
type summaryTableData struct {
	Rows []summaryRow
}

// summaryRow is a single constituent line in the summary table
type summaryRow struct {
	Constituent string
	Method      string
	Score       string
}

// DetailedTable renders the table listing the best topN methods for one
// property. Methods must already be ranked best-first; entries without a
// score or at or below ScoreFloor are skipped. A property with no usable
// entries renders as a placeholder comment instead of a table.
func DetailedTable(property string, methods types.MethodScores, topN int) (string, error) {
	if topN < 0 {
		topN = 0
	}

	var rows []scoreRow
	for _, entry := range methods {
		if entry.Score == nil || *entry.Score <= ScoreFloor {
			continue
		}
		rows = append(rows, scoreRow{
			Method: CleanMethodLabel(entry.Method),
			Score:  fmt.Sprintf("%.3f", *entry.Score),
		})
	}
	if len(rows) > topN {
		rows = rows[:topN]
	}

	if len(rows) == 0 {
		return fmt.Sprintf("%% No valid methods found for %s\n\n", property), nil
	}

	data := detailedTableData{
		Property: TitleProperty(property),
		Slug:     labelSlug(property),
		Rows:     rows,
	}

	var out strings.Builder
	if err := detailedTableTmpl.Execute(&out, data); err != nil {
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to render detailed table for %s", property),
			Cause:   err,
		}
	}
	return out.String(), nil
}

// SummaryTable renders the fixed-size table of the best method per target
// constituent. Constituents missing from rs get a "Not available" row and
// constituents without a score above ScoreFloor get a "No valid results"
// row; both show an em dash instead of a score. Rows are ordered by score,
// descending.
func SummaryTable(rs *types.ResultSet) (string, error) {
	type bestPick struct {
		constituent string
		method      string
		score       float64
		placeholder bool
	}

	picks := make([]bestPick, 0, len(targetConstituents))
	for _, constituent := range targetConstituents {
		var methods types.MethodScores
		found := false
		if rs != nil {
			methods, found = rs.Lookup(constituent)
		}
		if !found {
			picks = append(picks, bestPick{constituent: constituent, method: notAvailableLabel, placeholder: true})
			continue
		}

		method, score, ok := bestMethod(methods)
		if !ok {
			picks = append(picks, bestPick{constituent: constituent, method: noResultsLabel, placeholder: true})
			continue
		}
		picks = append(picks, bestPick{constituent: constituent, method: method, score: score})
	}

	// Sort by score (descending); placeholder rows carry zero and sink
	// below every positive result.
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].score > picks[j].score
	})

	rows := make([]summaryRow, 0, len(picks))
	for _, pick := range picks {
		method := pick.method
		if !pick.placeholder {
			method = CleanMethodLabel(pick.method)
		}
		score := fmt.Sprintf("%.3f", pick.score)
		if pick.placeholder && pick.score == 0.0 {
			score = "—"
		}
		rows = append(rows, summaryRow{
			Constituent: TitleProperty(pick.constituent),
			Method:      method,
			Score:       score,
		})
	}

	var out strings.Builder
	if err := summaryTableTmpl.Execute(&out, summaryTableData{Rows: rows}); err != nil {
		return "", &TemplateError{
			Message: "failed to render summary table",
			Cause:   err,
		}
	}
	return out.String(), nil
}

// bestMethod returns the first method holding the highest score above
// ScoreFloor, or false when none qualifies.
func bestMethod(methods types.MethodScores) (string, float64, bool) {
	var (
		name  string
		score float64
		found bool
	)
	for _, entry := range methods {
		if entry.Score == nil || *entry.Score <= ScoreFloor {
			continue
		}
		if !found || *entry.Score > score {
			found = true
			name = entry.Method
			score = *entry.Score
		}
	}
	return name, score, found
}

// bestScore returns the highest score above ScoreFloor, or missingBestScore
// when the property has none.
func bestScore(methods types.MethodScores) float64 {
	if _, score, ok := bestMethod(methods); ok {
		return score
	}
	return missingBestScore
}
