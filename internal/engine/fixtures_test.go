package engine

import (
	"math"
	"math/rand"
	"strconv"
)

var nan = math.NaN()

// rec builds a record with every measure missing except CO2.
func rec(country string, year int, co2 float64) Record {
	return Record{
		Country:     country,
		Year:        year,
		TempAnomaly: nan,
		CO2:         co2,
		GDP:         nan,
		Extreme:     nan,
		Urban:       nan,
		Deforest:    nan,
	}
}

func storeOf(records ...Record) *RecordStore {
	s := NewRecordStore(len(records))
	for _, r := range records {
		s.Append(r)
	}
	return s
}

// randomRecords gives each record a unique country tag so order can be traced.
func randomRecords(n int, seed uint64) []Record {
	rng := rand.New(rand.NewSource(int64(seed ^ 0x9e3779b97f4a7c15)))
	out := make([]Record, n)
	for i := range out {
		r := rec("c"+strconv.Itoa(i), 1990+rng.Intn(20), float64(rng.Intn(10)))
		r.TempAnomaly = float64(rng.Intn(5)) / 2
		r.GDP = float64(rng.Intn(4)) * 1000
		if rng.Intn(7) == 0 {
			r.TempAnomaly = nan
		}
		if rng.Intn(9) == 0 {
			r.CO2 = nan
		}
		out[i] = r
	}
	return out
}

func countries(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Country
	}
	return out
}
