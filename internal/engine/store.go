package engine

import "math"

// Record is one country/year observation.
// Numeric fields hold NaN when the source cell was blank or unparsable.
type Record struct {
	Country     string
	Year        int
	TempAnomaly float64
	CO2         float64
	GDP         float64
	Extreme     float64
	Urban       float64
	Deforest    float64
}

// RecordStore holds records in load order.
// It is appended to by a loader and only read after that.
type RecordStore struct {
	records []Record
}

func NewRecordStore(capacity int) *RecordStore {
	return &RecordStore{records: make([]Record, 0, capacity)}
}

func (s *RecordStore) Append(r Record) {
	s.records = append(s.records, r)
}

// All returns a copy of the records in load order.
func (s *RecordStore) All() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *RecordStore) Size() int {
	return len(s.records)
}

func (s *RecordStore) At(i int) Record {
	return s.records[i]
}

// nanAsNegInf maps the missing-value marker to -Inf for ordering.
func nanAsNegInf(x float64) float64 {
	if math.IsNaN(x) {
		return math.Inf(-1)
	}
	return x
}
