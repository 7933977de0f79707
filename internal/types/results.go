// Package types provides type definitions for structured data used throughout the soil-prediction results system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MethodScore pairs a modeling method name with its cross-validated R² score.
// A nil Score means the method ran but produced no usable score (JSON null).
type MethodScore struct {
	Method string
	Score  *float64
}

// MethodScores is an ordered collection of method scores for one soil property.
// Order reflects insertion order and is preserved through JSON round trips.
type MethodScores []MethodScore

// Lookup returns the score recorded for the named method.
// The second return value reports whether the method is present at all,
// which is distinct from a present method with a nil score.
func (ms MethodScores) Lookup(method string) (*float64, bool) {
	for _, entry := range ms {
		if entry.Method == method {
			return entry.Score, true
		}
	}
	return nil, false
}

// Set records a score for a method. An existing entry keeps its position and
// gets the new score; a new method is appended at the end.
func (ms *MethodScores) Set(method string, score *float64) {
	for i := range *ms {
		if (*ms)[i].Method == method {
			(*ms)[i].Score = score
			return
		}
	}
	*ms = append(*ms, MethodScore{Method: method, Score: score})
}

// Clone returns a copy whose entries can be mutated without touching the original.
func (ms MethodScores) Clone() MethodScores {
	if ms == nil {
		return nil
	}
	out := make(MethodScores, len(ms))
	copy(out, ms)
	return out
}

// PresentCount returns the number of methods with a non-nil score.
func (ms MethodScores) PresentCount() int {
	count := 0
	for _, entry := range ms {
		if entry.Score != nil {
			count++
		}
	}
	return count
}

// PropertyScores holds all method scores recorded for one soil property.
type PropertyScores struct {
	Property string
	Methods  MethodScores
}

// ResultSet is an ordered mapping from soil property to its method scores.
// It mirrors a two-level JSON object while keeping key order stable.
type ResultSet struct {
	Properties []PropertyScores
}

// NewResultSet returns an empty result set.
func NewResultSet() *ResultSet {
	return &ResultSet{}
}

// Lookup returns the method scores for a property and whether it exists.
func (rs *ResultSet) Lookup(property string) (MethodScores, bool) {
	for _, entry := range rs.Properties {
		if entry.Property == property {
			return entry.Methods, true
		}
	}
	return nil, false
}

// SetProperty records the method scores for a property. An existing property
// keeps its position; a new one is appended at the end.
func (rs *ResultSet) SetProperty(property string, methods MethodScores) {
	for i := range rs.Properties {
		if rs.Properties[i].Property == property {
			rs.Properties[i].Methods = methods
			return
		}
	}
	rs.Properties = append(rs.Properties, PropertyScores{Property: property, Methods: methods})
}

// Len returns the number of soil properties.
func (rs *ResultSet) Len() int {
	return len(rs.Properties)
}

// IsEmpty reports whether the result set holds no properties at all.
func (rs *ResultSet) IsEmpty() bool {
	return rs.Len() == 0
}

// TotalMethods returns the number of method entries across all properties.
func (rs *ResultSet) TotalMethods() int {
	total := 0
	for _, entry := range rs.Properties {
		total += len(entry.Methods)
	}
	return total
}

// FloatPtr returns a pointer to v, for building score literals.
func FloatPtr(v float64) *float64 {
	return &v
}
