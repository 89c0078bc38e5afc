package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/engine"
)

func records(n int) []engine.Record {
	out := make([]engine.Record, n)
	for i := range out {
		out[i] = engine.Record{Country: "Country_" + string(rune('A'+i)), Year: 2000 + i, TempAnomaly: 0.1, CO2: 1, GDP: 2, Extreme: math.NaN()}
	}
	return out
}

func TestRecordsTruncates(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, 2).Records("Year Range", records(5))

	out := buf.String()
	assert.Contains(t, out, "=== Year Range ===")
	assert.Contains(t, out, "Country_A")
	assert.Contains(t, out, "Country_B")
	assert.NotContains(t, out, "Country_C")
	assert.Contains(t, out, "... (3 more)")
	assert.Contains(t, out, "NaN")
}

func TestRecordsUnlimited(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, 0).Records("All", records(3))

	assert.Contains(t, buf.String(), "Country_C")
	assert.NotContains(t, buf.String(), "more)")
}

func TestPairs(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 10)

	r.Pairs("Top 2 CO2 in 2000", []engine.CountryValue{{Country: "B", Value: 9}, {Country: "A", Value: 5}})
	out := buf.String()
	assert.Contains(t, out, "9.0000")
	assert.Less(t, strings.Index(out, "B"), strings.Index(out, "5.0000"))

	buf.Reset()
	r.Pairs("Empty", nil)
	assert.Contains(t, buf.String(), "(no results)")
}

func TestAveragesAndLandUse(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 10)

	r.Averages("A", engine.Averages{
		Records:            2,
		CO2:                engine.MetricSummary{Mean: 4, Count: 2},
		TemperatureAnomaly: engine.MetricSummary{Mean: math.NaN()},
		GDP:                engine.MetricSummary{Mean: 1234.5, Count: 1},
	})
	out := buf.String()
	assert.Contains(t, out, "4.0000")
	assert.Contains(t, out, "1234.50")
	assert.Contains(t, out, "NaN")

	buf.Reset()
	r.LandUse("A", engine.LandUse{
		Urbanization:  engine.MetricSummary{Mean: 0.5, Count: 2},
		Deforestation: engine.MetricSummary{Mean: math.NaN()},
	})
	out = buf.String()
	assert.Contains(t, out, "Average Urbanization: 0.5000")
	assert.Contains(t, out, "Deforestation: no observations.")
}
