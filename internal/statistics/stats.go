// Package statistics derives aggregate summaries from combined result sets.
package statistics

import (
	"sort"
	"strings"

	"github.com/smaefr/soil-prediction-code/internal/types"
)

// TopPredictionLimit caps the cross-property leaderboard in a Summary.
const TopPredictionLimit = 10

// Compute builds the Summary for a combined result set. Methods whose name
// ends in suffix count toward the derivatives group, everything else toward
// the fullrun group; an empty suffix puts every method in the fullrun group.
// Property blocks keep rs order. The leaderboard is sorted by score
// descending, ties kept in rs order, then capped at TopPredictionLimit.
func Compute(rs *types.ResultSet, suffix string) *types.Summary {
	summary := &types.Summary{}
	if rs == nil {
		return summary
	}
	summary.TotalProperties = rs.Len()

	var fullrunScores, derivScores []float64

	for _, prop := range rs.Properties {
		stats := types.PropertyStats{
			Property:    prop.Property,
			MethodCount: len(prop.Methods),
		}

		var present []float64
		for _, entry := range prop.Methods {
			derivative := suffix != "" && strings.HasSuffix(entry.Method, suffix)
			if derivative {
				stats.DerivCount++
			} else {
				stats.FullrunCount++
			}

			if entry.Score == nil {
				continue
			}
			present = append(present, *entry.Score)

			// First method holding the highest score wins; entries without
			// a score never qualify.
			if !stats.HasResults || *entry.Score > stats.BestScore {
				stats.HasResults = true
				stats.BestMethod = entry.Method
				stats.BestScore = *entry.Score
			}

			if derivative {
				derivScores = append(derivScores, *entry.Score)
			} else {
				fullrunScores = append(fullrunScores, *entry.Score)
			}
			summary.TopPredictions = append(summary.TopPredictions, types.TopPrediction{
				Property:   prop.Property,
				Method:     entry.Method,
				Score:      *entry.Score,
				Derivative: derivative,
			})
		}

		stats.ValidCount = len(present)
		if stats.HasResults {
			stats.MinScore = Min(present)
			stats.MaxScore = Max(present)
			stats.AvgScore = Mean(present)
			summary.PropertiesWithResults++
		}

		summary.TotalMethods += stats.MethodCount
		summary.FullrunMethods += stats.FullrunCount
		summary.DerivMethods += stats.DerivCount
		summary.Properties = append(summary.Properties, stats)
	}

	sort.SliceStable(summary.TopPredictions, func(i, j int) bool {
		return summary.TopPredictions[i].Score > summary.TopPredictions[j].Score
	})
	if len(summary.TopPredictions) > TopPredictionLimit {
		summary.TopPredictions = summary.TopPredictions[:TopPredictionLimit]
	}

	// The group comparison needs both groups to have at least one score.
	if len(fullrunScores) > 0 && len(derivScores) > 0 {
		summary.Comparison = &types.GroupComparison{
			FullrunAvg: Mean(fullrunScores),
			DerivAvg:   Mean(derivScores),
		}
	}

	return summary
}

// Mean computes the arithmetic mean of a float64 slice.
// Returns 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Min returns the smallest value in a float64 slice.
// Returns 0 for empty input.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest value in a float64 slice.
// Returns 0 for empty input.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
