// Package ranking orders prediction methods by their cross-validated scores.
package ranking

import (
	"sort"

	"github.com/smaefr/soil-prediction-code/internal/observability"
	"github.com/smaefr/soil-prediction-code/internal/types"
)

// topMethodsShown is how many leading methods are announced per property.
const topMethodsShown = 3

// RankMethods returns the methods ordered by descending score. Methods with a
// null score sink to the back while keeping their relative order, and ties
// between real scores keep their original order too. The input is not modified.
func RankMethods(ms types.MethodScores) types.MethodScores {
	present := make(types.MethodScores, 0, len(ms))
	var absent types.MethodScores
	for _, entry := range ms {
		if entry.Score != nil {
			present = append(present, entry)
		} else {
			absent = append(absent, entry)
		}
	}

	// Sort by score (descending)
	sort.SliceStable(present, func(i, j int) bool {
		return *present[i].Score > *present[j].Score
	})

	return append(present, absent...)
}

// RankResultSet returns a new result set with every property's methods ranked.
// Property order is unchanged.
func RankResultSet(rs *types.ResultSet) *types.ResultSet {
	ranked := types.NewResultSet()
	for _, prop := range rs.Properties {
		ranked.SetProperty(prop.Property, RankMethods(prop.Methods))
	}
	return ranked
}

// TopPresent returns up to n leading methods that actually carry a score.
// It expects ms to be ranked already.
func TopPresent(ms types.MethodScores, n int) []types.MethodScore {
	var top []types.MethodScore
	for _, entry := range ms {
		if entry.Score == nil {
			continue
		}
		top = append(top, entry)
		if len(top) == n {
			break
		}
	}
	return top
}

// AnnounceTopMethods prints the leading methods of every property in a ranked
// result set, including a warning line for properties with no scores at all.
func AnnounceTopMethods(rs *types.ResultSet, printer *observability.Printer) {
	for _, prop := range rs.Properties {
		printer.PrintTopMethods(prop.Property, TopPresent(prop.Methods, topMethodsShown))
	}
}
