// Package merging combines result sets from separate prediction runs into one.
package merging

import (
	"github.com/smaefr/soil-prediction-code/internal/types"
)

// TagMethods returns a copy of rs with suffix appended to every method name.
// Property order, method order, and scores are unchanged; the input is not
// modified. An empty suffix yields an identical copy.
func TagMethods(rs *types.ResultSet, suffix string) *types.ResultSet {
	tagged := types.NewResultSet()
	for _, prop := range rs.Properties {
		var methods types.MethodScores
		for _, entry := range prop.Methods {
			methods = append(methods, types.MethodScore{
				Method: entry.Method + suffix,
				Score:  entry.Score,
			})
		}
		tagged.SetProperty(prop.Property, methods)
	}
	return tagged
}

// Combine unions two result sets without modifying either. Where a property
// and method name appear in both, the secondary score wins, including a null
// overwriting a real score. Property order is the primary's order followed by
// secondary-only properties in their own order; methods within a shared
// property follow the same rule, with overwritten methods keeping the
// position they had in the primary.
func Combine(primary, secondary *types.ResultSet) *types.ResultSet {
	combined := types.NewResultSet()
	for _, prop := range primary.Properties {
		combined.SetProperty(prop.Property, prop.Methods.Clone())
	}

	for _, prop := range secondary.Properties {
		merged, ok := combined.Lookup(prop.Property)
		if !ok {
			combined.SetProperty(prop.Property, prop.Methods.Clone())
			continue
		}
		for _, entry := range prop.Methods {
			merged.Set(entry.Method, entry.Score)
		}
		combined.SetProperty(prop.Property, merged)
	}
	return combined
}
