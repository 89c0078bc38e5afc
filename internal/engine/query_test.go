package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenario: (A,2000,5), (B,2000,9), (A,2001,3)
func scenarioEngine() *QueryEngine {
	return NewQueryEngine(storeOf(
		rec("A", 2000, 5),
		rec("B", 2000, 9),
		rec("A", 2001, 3),
	))
}

func TestScenario(t *testing.T) {
	q := scenarioEngine()

	assert.Equal(t, []CountryValue{{Country: "B", Value: 9}}, q.TopNCO2(2000, 1))

	inYear := q.SearchByYearRange(2000, 2000)
	require.Len(t, inYear, 2)
	assert.Equal(t, []string{"A", "B"}, countries(inYear))

	avg, err := q.AverageMetrics("A")
	require.NoError(t, err)
	assert.Equal(t, 4.0, avg.CO2.Mean)
	assert.Equal(t, 2, avg.CO2.Count)
}

func TestSearchByCountry(t *testing.T) {
	q := NewQueryEngine(storeOf(
		rec("Norway", 2001, 1),
		rec("Chile", 2000, 2),
		rec("Norway", 1999, 3),
		rec("NORWAY", 2002, 4),
	))

	tests := []struct {
		name  string
		query string
		want  []float64
	}{
		{name: "exact", query: "Norway", want: []float64{1, 3, 4}},
		{name: "case and space", query: "  norway ", want: []float64{1, 3, 4}},
		{name: "no prefix match", query: "Nor"},
		{name: "unknown", query: "Peru"},
		{name: "blank", query: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := q.SearchByCountry(tt.query)
			require.NotNil(t, got)

			var co2 []float64
			for _, r := range got {
				co2 = append(co2, r.CO2)
			}
			assert.Equal(t, tt.want, co2, "matches in load order")
		})
	}
}

func TestTopNCO2(t *testing.T) {
	q := NewQueryEngine(storeOf(
		rec("A", 2010, 2),
		rec("B", 2010, nan),
		rec("C", 2011, 50),
		rec("D", 2010, 7),
		rec("E", 2010, 4),
	))

	full := q.TopNCO2(2010, 10)
	assert.Equal(t, []string{"D", "E", "A", "B"}, pairCountries(full), "n beyond matches returns the whole year")

	assert.Equal(t, []string{"D", "E"}, pairCountries(q.TopNCO2(2010, 2)))
	assert.Empty(t, q.TopNCO2(2010, 0))
	assert.Empty(t, q.TopNCO2(2010, -3))
	assert.Empty(t, q.TopNCO2(1850, 5))
}

func TestSortByTemperature(t *testing.T) {
	records := []Record{rec("A", 2000, 1), rec("B", 2001, 1), rec("C", 2002, 1)}
	records[0].TempAnomaly = 1.5
	records[1].TempAnomaly = -0.2
	records[2].TempAnomaly = 1.5
	q := NewQueryEngine(storeOf(records...))

	assert.Equal(t, []string{"B", "A", "C"}, countries(q.SortByTemperature(true)))
	assert.Equal(t, []string{"A", "C", "B"}, countries(q.SortByTemperature(false)))

	assert.Equal(t, []string{"A", "B", "C"}, countries(q.store.All()), "store order is untouched")
}

func TestSortByGDPInYear(t *testing.T) {
	records := []Record{rec("A", 2000, 1), rec("B", 2000, 1), rec("C", 2001, 1), rec("D", 2000, 1)}
	records[0].GDP = 300
	records[1].GDP = 100
	records[2].GDP = 1
	records[3].GDP = nan
	q := NewQueryEngine(storeOf(records...))

	assert.Equal(t, []string{"D", "B", "A"}, countries(q.SortByGDPInYear(2000, true)))
	assert.Equal(t, []string{"A", "B", "D"}, countries(q.SortByGDPInYear(2000, false)))
	assert.Empty(t, q.SortByGDPInYear(1990, true))
}

func TestCountriesAndSpan(t *testing.T) {
	q := scenarioEngine()

	assert.Equal(t, []string{"A", "B"}, q.Countries())
	assert.Equal(t, 3, q.Size())

	first, last, ok := q.YearSpan()
	require.True(t, ok)
	assert.Equal(t, 2000, first)
	assert.Equal(t, 2001, last)
}

func pairCountries(pairs []CountryValue) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.Country
	}
	return out
}
