// Package types provides type definitions for structured data used throughout the soil-prediction results system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PropertyStats summarizes the scores recorded for one soil property.
type PropertyStats struct {
	Property     string  `json:"property"`
	MethodCount  int     `json:"method_count"`
	FullrunCount int     `json:"fullrun_count"`
	DerivCount   int     `json:"deriv_count"`
	ValidCount   int     `json:"valid_count"`
	MinScore     float64 `json:"min_score"`
	MaxScore     float64 `json:"max_score"`
	AvgScore     float64 `json:"avg_score"`
	BestMethod   string  `json:"best_method"`
	BestScore    float64 `json:"best_score"`
	// HasResults is false when every method for the property scored null.
	HasResults bool `json:"has_results"`
}

// TopPrediction is one row of the overall best-predictions leaderboard.
type TopPrediction struct {
	Property   string  `json:"property"`
	Method     string  `json:"method"`
	Score      float64 `json:"score"`
	Derivative bool    `json:"derivative"`
}

// GroupComparison holds the average scores of the fullrun and derivatives
// method groups. It is only produced when both groups have scored methods.
type GroupComparison struct {
	FullrunAvg float64 `json:"fullrun_avg"`
	DerivAvg   float64 `json:"deriv_avg"`
}

// Summary aggregates statistics over a combined result set.
type Summary struct {
	TotalProperties       int              `json:"total_properties"`
	Properties            []PropertyStats  `json:"properties"`
	TotalMethods          int              `json:"total_methods"`
	FullrunMethods        int              `json:"fullrun_methods"`
	DerivMethods          int              `json:"deriv_methods"`
	PropertiesWithResults int              `json:"properties_with_results"`
	TopPredictions        []TopPrediction  `json:"top_predictions"`
	Comparison            *GroupComparison `json:"comparison,omitempty"`
}
