package ranking

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smaefr/soil-prediction-code/internal/observability"
	"github.com/smaefr/soil-prediction-code/internal/types"
)

func methodNames(ms types.MethodScores) []string {
	names := make([]string, 0, len(ms))
	for _, entry := range ms {
		names = append(names, entry.Method)
	}
	return names
}

func TestRankMethods_DescendingByScore(t *testing.T) {
	ms := types.MethodScores{
		{Method: "SVR", Score: types.FloatPtr(0.45)},
		{Method: "Random_Forest", Score: types.FloatPtr(0.91)},
		{Method: "PLS", Score: types.FloatPtr(0.73)},
	}

	ranked := RankMethods(ms)

	assert.Equal(t, []string{"Random_Forest", "PLS", "SVR"}, methodNames(ranked))
}

func TestRankMethods_NullsSinkToBack(t *testing.T) {
	ms := types.MethodScores{
		{Method: "a", Score: nil},
		{Method: "b", Score: types.FloatPtr(0.2)},
		{Method: "c", Score: nil},
		{Method: "d", Score: types.FloatPtr(0.8)},
	}

	ranked := RankMethods(ms)

	assert.Equal(t, []string{"d", "b", "a", "c"}, methodNames(ranked),
		"null-scored methods keep their relative order at the back")
}

func TestRankMethods_NegativeScoresStayAheadOfNulls(t *testing.T) {
	ms := types.MethodScores{
		{Method: "null_method", Score: nil},
		{Method: "bad", Score: types.FloatPtr(-0.9)},
		{Method: "worse", Score: types.FloatPtr(-5.0)},
	}

	ranked := RankMethods(ms)

	assert.Equal(t, []string{"bad", "worse", "null_method"}, methodNames(ranked))
}

func TestRankMethods_StableOnTies(t *testing.T) {
	ms := types.MethodScores{
		{Method: "first", Score: types.FloatPtr(0.5)},
		{Method: "second", Score: types.FloatPtr(0.5)},
		{Method: "third", Score: types.FloatPtr(0.5)},
	}

	ranked := RankMethods(ms)

	assert.Equal(t, []string{"first", "second", "third"}, methodNames(ranked))
}

func TestRankMethods_Idempotent(t *testing.T) {
	ms := types.MethodScores{
		{Method: "a", Score: types.FloatPtr(0.1)},
		{Method: "b", Score: nil},
		{Method: "c", Score: types.FloatPtr(0.9)},
	}

	once := RankMethods(ms)
	twice := RankMethods(once)

	assert.Equal(t, once, twice)
}

func TestRankMethods_DoesNotMutateInput(t *testing.T) {
	ms := types.MethodScores{
		{Method: "low", Score: types.FloatPtr(0.1)},
		{Method: "high", Score: types.FloatPtr(0.9)},
	}

	_ = RankMethods(ms)

	assert.Equal(t, []string{"low", "high"}, methodNames(ms))
}

func TestRankResultSet_PreservesPropertyOrder(t *testing.T) {
	rs := types.NewResultSet()
	rs.SetProperty("pH", types.MethodScores{
		{Method: "SVR", Score: types.FloatPtr(0.4)},
		{Method: "RF", Score: types.FloatPtr(0.9)},
	})
	rs.SetProperty("Clay_Content", types.MethodScores{
		{Method: "PLS", Score: nil},
		{Method: "RF", Score: types.FloatPtr(0.6)},
	})

	ranked := RankResultSet(rs)

	require.Equal(t, 2, ranked.Len())
	assert.Equal(t, "pH", ranked.Properties[0].Property)
	assert.Equal(t, "Clay_Content", ranked.Properties[1].Property)
	assert.Equal(t, []string{"RF", "SVR"}, methodNames(ranked.Properties[0].Methods))
	assert.Equal(t, []string{"RF", "PLS"}, methodNames(ranked.Properties[1].Methods))
}

func TestTopPresent_CapsAndSkipsNulls(t *testing.T) {
	ms := types.MethodScores{
		{Method: "a", Score: types.FloatPtr(0.9)},
		{Method: "b", Score: types.FloatPtr(0.8)},
		{Method: "c", Score: types.FloatPtr(0.7)},
		{Method: "d", Score: types.FloatPtr(0.6)},
		{Method: "e", Score: nil},
	}

	top := TopPresent(ms, 3)

	require.Len(t, top, 3)
	assert.Equal(t, "a", top[0].Method)
	assert.Equal(t, "c", top[2].Method)
}

func TestTopPresent_FewerThanRequested(t *testing.T) {
	ms := types.MethodScores{
		{Method: "only", Score: types.FloatPtr(0.2)},
		{Method: "unscored", Score: nil},
	}

	top := TopPresent(ms, 3)

	require.Len(t, top, 1)
	assert.Equal(t, "only", top[0].Method)
}

func TestAnnounceTopMethods(t *testing.T) {
	rs := types.NewResultSet()
	rs.SetProperty("pH", types.MethodScores{
		{Method: "Random_Forest", Score: types.FloatPtr(0.9123)},
	})
	rs.SetProperty("Sodium", types.MethodScores{
		{Method: "SVR", Score: nil},
	})

	var buf bytes.Buffer
	AnnounceTopMethods(rs, observability.NewPrinter(&buf))
	output := buf.String()

	assert.Contains(t, output, "Top 3 methods for pH:")
	assert.Contains(t, output, "  1. Random_Forest: R² = 0.9123")
	assert.Contains(t, output, "WARNING: No valid results found for Sodium")
}
