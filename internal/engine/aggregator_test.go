package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withExtreme(r Record, events float64) Record {
	r.Extreme = events
	return r
}

func TestRankByExtremeEvents(t *testing.T) {
	q := NewQueryEngine(storeOf(
		withExtreme(rec("Germany", 2000, 1), 4),
		withExtreme(rec("France", 2000, 1), 10),
		withExtreme(rec("Germany", 2001, 1), 3),
		withExtreme(rec("Chad", 2000, 1), nan),
		withExtreme(rec("France", 2001, 1), nan),
	))

	all := q.RankByExtremeEvents(0, true)
	assert.Equal(t, []CountryValue{
		{Country: "France", Value: 10},
		{Country: "Germany", Value: 7},
		{Country: "Chad", Value: 0},
	}, all, "missing events add 0")

	assert.Equal(t, all, q.RankByExtremeEvents(3, true), "k == #countries is the full list")
	assert.Equal(t, all, q.RankByExtremeEvents(-1, true))

	assert.Equal(t, []CountryValue{{Country: "Chad", Value: 0}, {Country: "Germany", Value: 7}},
		q.RankByExtremeEvents(2, false))
}

func TestRankByExtremeEventsEveryCountryOnce(t *testing.T) {
	q := NewQueryEngine(storeOf(randomRecords(200, 11)...))
	for i := range q.store.records {
		q.store.records[i].Country = "k" + string(rune('a'+i%13))
		q.store.records[i].Extreme = float64(i % 5)
	}

	ranked := q.RankByExtremeEvents(0, true)
	require.Len(t, ranked, len(q.Countries()))

	seen := make(map[string]bool)
	for i, cv := range ranked {
		assert.False(t, seen[cv.Country], "duplicate %s", cv.Country)
		seen[cv.Country] = true
		if i > 0 {
			assert.GreaterOrEqual(t, ranked[i-1].Value, cv.Value)
		}
	}
}

func TestAverageMetrics(t *testing.T) {
	a1 := rec("Peru", 2000, 10)
	a1.TempAnomaly, a1.GDP = 1, nan
	a2 := rec("Peru", 2001, nan)
	a2.TempAnomaly, a2.GDP = 3, nan
	a3 := rec("peru", 2002, 20)
	a3.TempAnomaly, a3.GDP = nan, nan
	q := NewQueryEngine(storeOf(a1, rec("Chile", 2000, 99), a2, a3))

	avg, err := q.AverageMetrics("PERU")
	require.NoError(t, err)

	assert.Equal(t, 3, avg.Records)
	assert.Equal(t, MetricSummary{Mean: 15, Count: 2}, avg.CO2, "divisor counts only present values")
	assert.Equal(t, MetricSummary{Mean: 2, Count: 2}, avg.TemperatureAnomaly)
	assert.True(t, math.IsNaN(avg.GDP.Mean), "no observations gives NaN")
	assert.Zero(t, avg.GDP.Count)
	assert.False(t, avg.GDP.Present())
}

func TestAverageMetricsNotFound(t *testing.T) {
	_, err := scenarioEngine().AverageMetrics("Atlantis")
	assert.ErrorIs(t, err, ErrCountryNotFound)
}

func TestUrbanizationDeforestation(t *testing.T) {
	r1 := rec("Kenya", 2000, 1)
	r1.Urban, r1.Deforest = 0.25, nan
	r2 := rec("Kenya", 2001, 1)
	r2.Urban, r2.Deforest = 0.75, nan
	q := NewQueryEngine(storeOf(r1, r2))

	lu, err := q.UrbanizationDeforestation("kenya")
	require.NoError(t, err)

	assert.Equal(t, 2, lu.Records)
	assert.True(t, lu.Urbanization.Present())
	assert.Equal(t, 0.5, lu.Urbanization.Mean)
	assert.False(t, lu.Deforestation.Present(), "column entirely missing")
	assert.True(t, math.IsNaN(lu.Deforestation.Mean))

	_, err = q.UrbanizationDeforestation("Oz")
	assert.ErrorIs(t, err, ErrCountryNotFound)
}
