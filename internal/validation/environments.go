// Package validation provides functionality to validate generated LaTeX tables against structural constraints.
package validation

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"github.com/smaefr/soil-prediction-code/internal/types"
)

// environmentPattern matches \begin{name} and \end{name} markers
var environmentPattern = regexp.MustCompile(`\\(begin|end)\{([^}]*)\}`)

// openEnvironment tracks an unmatched \begin marker
type openEnvironment struct {
	name string
	line int
}

// CheckEnvironments verifies that every \begin{...} in the document is
// closed by a matching \end{...} in LIFO order. Comment-only lines are
// skipped.
func CheckEnvironments(doc string) []types.Violation {
	var violations []types.Violation
	var stack []openEnvironment

	scanner := bufio.NewScanner(strings.NewReader(doc))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "%") {
			continue
		}

		for _, match := range environmentPattern.FindAllStringSubmatch(line, -1) {
			marker, name := match[1], match[2]
			if marker == "begin" {
				stack = append(stack, openEnvironment{name: name, line: lineNum})
				continue
			}

			if len(stack) == 0 {
				violations = append(violations, types.Violation{
					Type:       "environment_stray_end",
					Severity:   "warning",
					Details:    fmt.Sprintf("Line %d closes environment %q that was never opened", lineNum, name),
					LineNumber: intPtr(lineNum),
				})
				continue
			}

			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.name != name {
				violations = append(violations, types.Violation{
					Type:       "environment_mismatch",
					Severity:   "warning",
					Details:    fmt.Sprintf("Line %d closes environment %q but %q opened on line %d is still open", lineNum, name, top.name, top.line),
					LineNumber: intPtr(lineNum),
				})
			}
		}
	}

	for _, open := range stack {
		violations = append(violations, types.Violation{
			Type:       "environment_unclosed",
			Severity:   "warning",
			Details:    fmt.Sprintf("Environment %q opened on line %d is never closed", open.name, open.line),
			LineNumber: intPtr(open.line),
		})
	}

	return violations
}
