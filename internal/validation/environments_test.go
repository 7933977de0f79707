// Package validation provides functionality to validate generated LaTeX tables against structural constraints.
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEnvironments_Balanced(t *testing.T) {
	doc := `\begin{table}[htbp]
\centering
\begin{tabular}{@{}ll@{}}
\toprule
\midrule
\bottomrule
\end{tabular}
\end{table}`

	violations := CheckEnvironments(doc)
	assert.Empty(t, violations)
}

func TestCheckEnvironments_Unclosed(t *testing.T) {
	doc := `\begin{table}[htbp]
\begin{tabular}{@{}ll@{}}
\end{tabular}`

	violations := CheckEnvironments(doc)
	require.Len(t, violations, 1)
	assert.Equal(t, "environment_unclosed", violations[0].Type)
	assert.Equal(t, "warning", violations[0].Severity)
	require.NotNil(t, violations[0].LineNumber)
	assert.Equal(t, 1, *violations[0].LineNumber)
	assert.Contains(t, violations[0].Details, `"table"`)
}

func TestCheckEnvironments_StrayEnd(t *testing.T) {
	doc := `\centering
\end{table}`

	violations := CheckEnvironments(doc)
	require.Len(t, violations, 1)
	assert.Equal(t, "environment_stray_end", violations[0].Type)
	require.NotNil(t, violations[0].LineNumber)
	assert.Equal(t, 2, *violations[0].LineNumber)
}

func TestCheckEnvironments_Mismatch(t *testing.T) {
	doc := `\begin{table}
\end{tabular}`

	violations := CheckEnvironments(doc)
	require.Len(t, violations, 1)
	assert.Equal(t, "environment_mismatch", violations[0].Type)
	assert.Contains(t, violations[0].Details, `"tabular"`)
	assert.Contains(t, violations[0].Details, `"table"`)
}

func TestCheckEnvironments_SkipsComments(t *testing.T) {
	doc := `% \begin{table}
\begin{tabular}{@{}ll@{}}
\end{tabular}`

	violations := CheckEnvironments(doc)
	assert.Empty(t, violations)
}

func TestCheckEnvironments_MultipleMarkersOnOneLine(t *testing.T) {
	doc := `\begin{table}\begin{tabular}{@{}ll@{}}\end{tabular}\end{table}`

	violations := CheckEnvironments(doc)
	assert.Empty(t, violations)
}
