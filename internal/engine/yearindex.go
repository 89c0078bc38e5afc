package engine

import "sort"

// YearIndex is a permutation of store positions ordered by year.
// Equal years keep load order.
type YearIndex struct {
	store *RecordStore
	pos   []int
}

// BuildYearIndex sorts positions 0..n-1 by year with a stable merge sort.
func BuildYearIndex(store *RecordStore) *YearIndex {
	pos := make([]int, store.Size())
	for i := range pos {
		pos[i] = i
	}

	recs := store.records
	mergeSort(pos, make([]int, len(pos)), func(a, b int) bool {
		return recs[a].Year <= recs[b].Year
	})

	return &YearIndex{store: store, pos: pos}
}

func (x *YearIndex) Len() int {
	return len(x.pos)
}

func (x *YearIndex) yearAt(p int) int {
	return x.store.records[x.pos[p]].Year
}

// LowerBound returns the first position whose year is >= year.
func (x *YearIndex) LowerBound(year int) int {
	return sort.Search(len(x.pos), func(p int) bool { return x.yearAt(p) >= year })
}

// UpperBound returns the first position whose year is > year.
func (x *YearIndex) UpperBound(year int) int {
	return sort.Search(len(x.pos), func(p int) bool { return x.yearAt(p) > year })
}

// RangeQuery returns every record with start <= year <= end in ascending year
// order. Reversed bounds are swapped.
func (x *YearIndex) RangeQuery(start, end int) []Record {
	if end < start {
		start, end = end, start
	}
	lo, hi := x.LowerBound(start), x.UpperBound(end)

	out := make([]Record, 0, hi-lo)
	for p := lo; p < hi; p++ {
		out = append(out, x.store.records[x.pos[p]])
	}
	return out
}

// Span reports the smallest and largest indexed year.
func (x *YearIndex) Span() (first, last int, ok bool) {
	if len(x.pos) == 0 {
		return 0, 0, false
	}
	return x.yearAt(0), x.yearAt(len(x.pos) - 1), true
}
