// Package rendering generates the LaTeX tables document for combined results.
package rendering

import "strings"

// latexEscapes maps characters with special meaning in LaTeX text mode to
// their escape sequences.
var latexEscapes = map[rune]string{
	'\\': `\textbackslash{}`,
	'{':  `\{`,
	'}':  `\}`,
	'$':  `\$`,
	'&':  `\&`,
	'%':  `\%`,
	'#':  `\#`,
	'^':  `\textasciicircum{}`,
	'_':  `\_`,
	'~':  `\textasciitilde{}`,
}

// EscapeLaTeX escapes special LaTeX characters in text
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		if escape, ok := latexEscapes[r]; ok {
			result.WriteString(escape)
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}
