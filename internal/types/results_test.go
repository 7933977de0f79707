// Package types provides type definitions for structured data used throughout the soil-prediction results system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodScores_SetUpsertsInPlace(t *testing.T) {
	var ms MethodScores
	ms.Set("Random_Forest", FloatPtr(0.85))
	ms.Set("SVR", FloatPtr(0.72))
	ms.Set("Random_Forest", FloatPtr(0.91))

	require.Len(t, ms, 2)
	assert.Equal(t, "Random_Forest", ms[0].Method, "updated method should keep its position")
	assert.Equal(t, 0.91, *ms[0].Score)
	assert.Equal(t, "SVR", ms[1].Method)
}

func TestMethodScores_LookupDistinguishesNullFromMissing(t *testing.T) {
	var ms MethodScores
	ms.Set("PLS", nil)

	score, ok := ms.Lookup("PLS")
	assert.True(t, ok, "method with a null score is still present")
	assert.Nil(t, score)

	_, ok = ms.Lookup("XGBRegressor")
	assert.False(t, ok)
}

func TestMethodScores_PresentCount(t *testing.T) {
	var ms MethodScores
	ms.Set("a", FloatPtr(0.5))
	ms.Set("b", nil)
	ms.Set("c", FloatPtr(-0.2))

	assert.Equal(t, 2, ms.PresentCount())
}

func TestMethodScores_CloneIsIndependent(t *testing.T) {
	var ms MethodScores
	ms.Set("Random_Forest", FloatPtr(0.85))

	clone := ms.Clone()
	clone.Set("Random_Forest", FloatPtr(0.10))
	clone.Set("SVR", nil)

	assert.Equal(t, 0.85, *ms[0].Score)
	assert.Len(t, ms, 1)
	assert.Len(t, clone, 2)
}

func TestResultSet_SetPropertyUpserts(t *testing.T) {
	rs := NewResultSet()
	rs.SetProperty("pH", MethodScores{{Method: "RF", Score: FloatPtr(0.8)}})
	rs.SetProperty("Clay_Content", MethodScores{{Method: "RF", Score: FloatPtr(0.6)}})
	rs.SetProperty("pH", MethodScores{{Method: "SVR", Score: FloatPtr(0.7)}})

	require.Equal(t, 2, rs.Len())
	assert.Equal(t, "pH", rs.Properties[0].Property, "updated property should keep its position")
	assert.Equal(t, "SVR", rs.Properties[0].Methods[0].Method)
}

func TestResultSet_TotalMethods(t *testing.T) {
	rs := NewResultSet()
	assert.True(t, rs.IsEmpty())
	assert.Equal(t, 0, rs.TotalMethods())

	rs.SetProperty("pH", MethodScores{{Method: "RF", Score: FloatPtr(0.8)}, {Method: "SVR", Score: nil}})
	rs.SetProperty("Clay_Content", MethodScores{{Method: "RF", Score: FloatPtr(0.6)}})

	assert.False(t, rs.IsEmpty())
	assert.Equal(t, 3, rs.TotalMethods())
}

func TestResultSet_MarshalPreservesOrder(t *testing.T) {
	rs := NewResultSet()
	rs.SetProperty("pH", MethodScores{
		{Method: "Random_Forest", Score: FloatPtr(0.91)},
		{Method: "SVR_deriv", Score: nil},
	})
	rs.SetProperty("Clay_Content", nil)

	data, err := json.Marshal(rs)
	require.NoError(t, err)
	assert.Equal(t, `{"pH":{"Random_Forest":0.91,"SVR_deriv":null},"Clay_Content":{}}`, string(data))
}

func TestResultSet_MarshalIndentFourSpaces(t *testing.T) {
	rs := NewResultSet()
	rs.SetProperty("pH", MethodScores{
		{Method: "Random_Forest", Score: FloatPtr(0.91)},
		{Method: "SVR_deriv", Score: nil},
	})
	rs.SetProperty("Clay_Content", nil)

	data, err := rs.MarshalIndent()
	require.NoError(t, err)

	expected := `{
    "pH": {
        "Random_Forest": 0.91,
        "SVR_deriv": null
    },
    "Clay_Content": {}
}`
	assert.Equal(t, expected, string(data))
}

func TestResultSet_MarshalNonASCIIPassthrough(t *testing.T) {
	rs := NewResultSet()
	rs.SetProperty("Magnésium", MethodScores{{Method: "Enhanced_NN", Score: FloatPtr(0.5)}})

	data, err := rs.MarshalIndent()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Magnésium"`)
	assert.NotContains(t, string(data), `\u`)
}

func TestResultSet_UnmarshalPreservesOrder(t *testing.T) {
	input := `{
		"pH": {"Random_Forest": 0.91, "SVR": null},
		"Clay_Content": {"Random_Forest": 0.62}
	}`

	var rs ResultSet
	err := json.Unmarshal([]byte(input), &rs)
	require.NoError(t, err)

	require.Equal(t, 2, rs.Len())
	assert.Equal(t, "pH", rs.Properties[0].Property)
	assert.Equal(t, "Clay_Content", rs.Properties[1].Property)

	methods := rs.Properties[0].Methods
	require.Len(t, methods, 2)
	assert.Equal(t, "Random_Forest", methods[0].Method)
	assert.Equal(t, 0.91, *methods[0].Score)
	assert.Equal(t, "SVR", methods[1].Method)
	assert.Nil(t, methods[1].Score)
}

func TestResultSet_UnmarshalIntegerScore(t *testing.T) {
	var rs ResultSet
	err := json.Unmarshal([]byte(`{"pH": {"RF": 1}}`), &rs)
	require.NoError(t, err)

	score, ok := rs.Properties[0].Methods.Lookup("RF")
	require.True(t, ok)
	assert.Equal(t, 1.0, *score)
}

func TestResultSet_RoundTrip(t *testing.T) {
	rs := NewResultSet()
	rs.SetProperty("pH", MethodScores{
		{Method: "Random_Forest", Score: FloatPtr(0.91)},
		{Method: "SVR", Score: nil},
		{Method: "Enhanced_NN", Score: FloatPtr(-0.05)},
	})
	rs.SetProperty("Organic_Carbon", nil)

	data, err := rs.MarshalIndent()
	require.NoError(t, err)

	var decoded ResultSet
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, *rs, decoded)
}

func TestResultSet_UnmarshalDuplicateMethodKeepsFirstPosition(t *testing.T) {
	var rs ResultSet
	err := json.Unmarshal([]byte(`{"pH": {"a": 1, "b": 2, "a": 3}}`), &rs)
	require.NoError(t, err)

	methods := rs.Properties[0].Methods
	require.Len(t, methods, 2)
	assert.Equal(t, "a", methods[0].Method)
	assert.Equal(t, 3.0, *methods[0].Score, "later duplicate value should win")
	assert.Equal(t, "b", methods[1].Method)
}

func TestResultSet_UnmarshalDuplicateProperty(t *testing.T) {
	var rs ResultSet
	err := json.Unmarshal([]byte(`{"pH": {"a": 1}, "pH": {"b": 2}}`), &rs)
	require.NoError(t, err)

	require.Equal(t, 1, rs.Len())
	methods := rs.Properties[0].Methods
	require.Len(t, methods, 1)
	assert.Equal(t, "b", methods[0].Method)
}

func TestResultSet_UnmarshalRejectsTopLevelArray(t *testing.T) {
	var rs ResultSet
	err := json.Unmarshal([]byte(`[1, 2]`), &rs)
	require.Error(t, err)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Contains(t, shapeErr.Error(), "array")
}

func TestResultSet_UnmarshalRejectsScalarProperty(t *testing.T) {
	var rs ResultSet
	err := json.Unmarshal([]byte(`{"pH": 3}`), &rs)
	require.Error(t, err)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "pH", shapeErr.Property)
	assert.Contains(t, shapeErr.Error(), "number")
}

func TestResultSet_UnmarshalRejectsStringScore(t *testing.T) {
	var rs ResultSet
	err := json.Unmarshal([]byte(`{"pH": {"RF": "high"}}`), &rs)
	require.Error(t, err)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "pH", shapeErr.Property)
	assert.Equal(t, "RF", shapeErr.Method)
	assert.Contains(t, shapeErr.Error(), "string")
}

func TestMethodScores_UnmarshalStandalone(t *testing.T) {
	var ms MethodScores
	err := json.Unmarshal([]byte(`{"RF": 0.5, "SVR": null}`), &ms)
	require.NoError(t, err)
	require.Len(t, ms, 2)
	assert.Equal(t, 0.5, *ms[0].Score)
	assert.Nil(t, ms[1].Score)
}
