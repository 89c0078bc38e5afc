package engine

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// CountryValue pairs a country with a ranked value.
type CountryValue struct {
	Country string
	Value   float64
}

// MetricSummary is the mean of one metric over its non-missing observations.
// Mean is NaN when Count is zero.
type MetricSummary struct {
	Mean  float64
	Count int
}

// Present reports whether at least one valid observation existed.
func (m MetricSummary) Present() bool {
	return m.Count > 0
}

// Averages holds per-country means of the headline metrics.
type Averages struct {
	Records            int
	CO2                MetricSummary
	TemperatureAnomaly MetricSummary
	GDP                MetricSummary
}

// LandUse holds per-country urbanization and deforestation means.
type LandUse struct {
	Records       int
	Urbanization  MetricSummary
	Deforestation MetricSummary
}

// aggStats accumulates a mean, skipping NaN in both sum and divisor.
type aggStats struct {
	sum float64
	n   int
}

func (a *aggStats) add(x float64) {
	if math.IsNaN(x) {
		return
	}
	a.sum += x
	a.n++
}

func (a aggStats) summary() MetricSummary {
	if a.n == 0 {
		return MetricSummary{Mean: math.NaN()}
	}
	return MetricSummary{Mean: a.sum / float64(a.n), Count: a.n}
}

// RankByExtremeEvents sums extreme-weather events per country (missing counts
// as 0) and ranks the totals. k <= 0 or k >= #countries returns the full list.
// Equal totals keep first-seen country order.
func (q *QueryEngine) RankByExtremeEvents(k int, highest bool) []CountryValue {
	idx := make(map[string]int)
	totals := make([]CountryValue, 0)

	for i := range q.store.records {
		r := &q.store.records[i]
		pos, ok := idx[r.Country]
		if !ok {
			pos = len(totals)
			idx[r.Country] = pos
			totals = append(totals, CountryValue{Country: r.Country})
		}
		if !math.IsNaN(r.Extreme) {
			totals[pos].Value += r.Extreme
		}
	}

	slices.SortStableFunc(totals, func(a, b CountryValue) int {
		if highest {
			return cmp.Compare(b.Value, a.Value)
		}
		return cmp.Compare(a.Value, b.Value)
	})

	if k <= 0 || k >= len(totals) {
		return totals
	}
	return totals[:k]
}

// AverageMetrics averages CO2, temperature anomaly and GDP for country.
// Each metric is divided by its own count of non-missing values.
func (q *QueryEngine) AverageMetrics(country string) (Averages, error) {
	recs := q.SearchByCountry(country)
	if len(recs) == 0 {
		return Averages{}, fmt.Errorf("%w: %q", ErrCountryNotFound, country)
	}

	var co2, temp, gdp aggStats
	for i := range recs {
		co2.add(recs[i].CO2)
		temp.add(recs[i].TempAnomaly)
		gdp.add(recs[i].GDP)
	}

	return Averages{
		Records:            len(recs),
		CO2:                co2.summary(),
		TemperatureAnomaly: temp.summary(),
		GDP:                gdp.summary(),
	}, nil
}

// UrbanizationDeforestation averages the land-use metrics for country.
// MetricSummary.Present tells a column with no data apart from a mean near zero.
func (q *QueryEngine) UrbanizationDeforestation(country string) (LandUse, error) {
	recs := q.SearchByCountry(country)
	if len(recs) == 0 {
		return LandUse{}, fmt.Errorf("%w: %q", ErrCountryNotFound, country)
	}

	var urban, deforest aggStats
	for i := range recs {
		urban.add(recs[i].Urban)
		deforest.add(recs[i].Deforest)
	}

	return LandUse{
		Records:       len(recs),
		Urbanization:  urban.summary(),
		Deforestation: deforest.summary(),
	}, nil
}
