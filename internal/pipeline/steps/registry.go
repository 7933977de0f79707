// Package steps catalogs the artifacts a pipeline run persists, in the order
// the pipeline produces them.
package steps

import (
	dbpkg "github.com/smaefr/soil-prediction-code/internal/db"
)

// Definition describes one persisted pipeline artifact.
type Definition struct {
	Name     string
	Category string
	// Text marks artifacts stored as plain text rather than JSON.
	Text bool
}

// ordered lists the artifact steps in pipeline execution order.
var ordered = []Definition{
	{Name: dbpkg.StepCombinedResults, Category: dbpkg.CategoryResults},
	{Name: dbpkg.StepLatexTables, Category: dbpkg.CategoryRendering, Text: true},
	{Name: dbpkg.StepViolations, Category: dbpkg.CategoryValidation},
	{Name: dbpkg.StepSummaryReport, Category: dbpkg.CategoryReport},
}

// Ordered returns a copy of the artifact steps in the order the pipeline
// writes them.
func Ordered() []Definition {
	out := make([]Definition, len(ordered))
	copy(out, ordered)
	return out
}

// Lookup returns the definition for a step name.
func Lookup(name string) (Definition, bool) {
	for _, def := range ordered {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}
