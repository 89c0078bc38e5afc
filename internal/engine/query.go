package engine

import "strings"

// QueryEngine answers read-only queries over a loaded RecordStore.
// The year index is built once in NewQueryEngine; after that nothing is
// mutated, so one engine can be shared by concurrent readers.
type QueryEngine struct {
	store *RecordStore
	years *YearIndex
}

func NewQueryEngine(store *RecordStore) *QueryEngine {
	return &QueryEngine{store: store, years: BuildYearIndex(store)}
}

// Size is the number of loaded records.
func (q *QueryEngine) Size() int {
	return q.store.Size()
}

// YearSpan reports the first and last year present.
func (q *QueryEngine) YearSpan() (first, last int, ok bool) {
	return q.years.Span()
}

// Countries lists distinct country names in first-seen order.
func (q *QueryEngine) Countries() []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range q.store.records {
		c := q.store.records[i].Country
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// SearchByCountry returns the records whose country equals name, ignoring
// case and surrounding whitespace, in load order.
func (q *QueryEngine) SearchByCountry(name string) []Record {
	name = strings.TrimSpace(name)
	out := make([]Record, 0)
	for i := range q.store.records {
		if strings.EqualFold(q.store.records[i].Country, name) {
			out = append(out, q.store.records[i])
		}
	}
	return out
}

// SearchByYearRange returns records with start <= year <= end; see YearIndex.RangeQuery.
func (q *QueryEngine) SearchByYearRange(start, end int) []Record {
	return q.years.RangeQuery(start, end)
}

// recordsInYear filters to one year, keeping load order.
func (q *QueryEngine) recordsInYear(year int) []Record {
	out := make([]Record, 0)
	for i := range q.store.records {
		if q.store.records[i].Year == year {
			out = append(out, q.store.records[i])
		}
	}
	return out
}

// TopNCO2 returns up to n (country, co2) pairs for year, largest CO2 first.
// n <= 0 or an absent year gives an empty result.
func (q *QueryEngine) TopNCO2(year, n int) []CountryValue {
	subset := q.recordsInYear(year)
	QuickSortCO2(subset)

	n = min(max(n, 0), len(subset))
	out := make([]CountryValue, n)
	for i := range out {
		out[i] = CountryValue{Country: subset[i].Country, Value: subset[i].CO2}
	}
	return out
}

// SortByTemperature returns every record ordered by temperature anomaly.
func (q *QueryEngine) SortByTemperature(ascending bool) []Record {
	return MergeSortBy(q.store.records, ascending, ByTemperatureAnomaly)
}

// SortByGDPInYear returns one year's records ordered by GDP.
// An empty result means the year has no records.
func (q *QueryEngine) SortByGDPInYear(year int, ascending bool) []Record {
	return MergeSortBy(q.recordsInYear(year), ascending, ByGDP)
}
