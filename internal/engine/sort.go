package engine

import "fmt"

// SortKey selects the numeric field MergeSortBy orders on.
type SortKey int

const (
	ByTemperatureAnomaly SortKey = iota
	ByGDP
)

func (k SortKey) String() string {
	switch k {
	case ByTemperatureAnomaly:
		return "temperature_anomaly"
	case ByGDP:
		return "gdp"
	default:
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
}

func (k SortKey) value(r *Record) float64 {
	if k == ByGDP {
		return r.GDP
	}
	return r.TempAnomaly
}

// mergeSort sorts s using buf (len(buf) >= len(s)) as scratch space.
// takeLeft(l, r) reports whether the left candidate goes first; returning
// true on ties keeps the sort stable.
func mergeSort[T any](s, buf []T, takeLeft func(l, r T) bool) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid], takeLeft)
	mergeSort(s[mid:], buf[mid:], takeLeft)

	copy(buf, s)
	left, right := buf[:mid], buf[mid:len(s)]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if takeLeft(left[i], right[j]) {
			s[k] = left[i]
			i++
		} else {
			s[k] = right[j]
			j++
		}
		k++
	}
	k += copy(s[k:], left[i:])
	copy(s[k:], right[j:])
}

// MergeSortBy returns a stably sorted copy of records ordered by key.
// NaN keys compare as -Inf; the stored values are left untouched.
func MergeSortBy(records []Record, ascending bool, key SortKey) []Record {
	out := make([]Record, len(records))
	copy(out, records)

	takeLeft := func(l, r Record) bool {
		x, y := nanAsNegInf(key.value(&l)), nanAsNegInf(key.value(&r))
		if ascending {
			return x <= y
		}
		return x >= y
	}
	mergeSort(out, make([]Record, len(out)), takeLeft)
	return out
}

// QuickSortCO2 orders records in place by CO2, largest first, NaN last.
// Lomuto partition with the last element as pivot. Not stable.
func QuickSortCO2(records []Record) {
	for len(records) > 1 {
		p := partitionCO2(records)
		left, right := records[:p], records[p+1:]
		// recurse into the shorter side so stack depth stays logarithmic
		if len(left) < len(right) {
			QuickSortCO2(left)
			records = right
		} else {
			QuickSortCO2(right)
			records = left
		}
	}
}

func partitionCO2(a []Record) int {
	last := len(a) - 1
	pivot := nanAsNegInf(a[last].CO2)
	i := 0
	for j := 0; j < last; j++ {
		if nanAsNegInf(a[j].CO2) > pivot {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[last] = a[last], a[i]
	return i
}
