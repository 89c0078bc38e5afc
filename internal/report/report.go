// Package report renders query results as plain-text tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/engine"
)

// Renderer writes results to out. Record listings longer than limit are
// truncated with a "... (N more)" line; limit <= 0 prints everything.
type Renderer struct {
	out   io.Writer
	limit int
}

func New(out io.Writer, limit int) *Renderer {
	return &Renderer{out: out, limit: limit}
}

func (r *Renderer) newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return table
}

func (r *Renderer) title(s string) {
	fmt.Fprintf(r.out, "\n=== %s ===\n", s)
}

func num(f float64, prec int) string {
	return strconv.FormatFloat(f, 'f', prec, 64)
}

// Records prints a record table.
func (r *Renderer) Records(title string, recs []engine.Record) {
	r.title(title)

	n := len(recs)
	if r.limit > 0 && n > r.limit {
		n = r.limit
	}

	table := r.newTable("Country", "Year", "TempAnom", "CO2", "GDP", "Extreme")
	for _, rec := range recs[:n] {
		table.Append([]string{
			rec.Country,
			strconv.Itoa(rec.Year),
			num(rec.TempAnomaly, 4),
			num(rec.CO2, 4),
			num(rec.GDP, 2),
			num(rec.Extreme, 2),
		})
	}
	table.Render()

	if n < len(recs) {
		fmt.Fprintf(r.out, "... (%d more)\n", len(recs)-n)
	}
}

// Pairs prints a ranked (country, value) list.
func (r *Renderer) Pairs(title string, pairs []engine.CountryValue) {
	r.title(title)
	if len(pairs) == 0 {
		fmt.Fprintln(r.out, "(no results)")
		return
	}

	table := r.newTable("#", "Country", "Value")
	for i, p := range pairs {
		table.Append([]string{strconv.Itoa(i + 1), p.Country, num(p.Value, 4)})
	}
	table.Render()
}

// Averages prints the per-country metric means.
func (r *Renderer) Averages(country string, avg engine.Averages) {
	r.title("Averages for " + country)

	table := r.newTable("Metric", "Average", "Observations")
	table.Append(summaryRow("CO2 Emissions", avg.CO2, 4))
	table.Append(summaryRow("Temperature Anomaly", avg.TemperatureAnomaly, 4))
	table.Append(summaryRow("GDP", avg.GDP, 2))
	table.Render()
}

// LandUse prints urbanization and deforestation means, or a note when a
// column had no observations for the country.
func (r *Renderer) LandUse(country string, lu engine.LandUse) {
	r.title("Urbanization & Deforestation for " + country)

	for _, m := range []struct {
		name string
		s    engine.MetricSummary
	}{
		{"Urbanization", lu.Urbanization},
		{"Deforestation", lu.Deforestation},
	} {
		if m.s.Present() {
			fmt.Fprintf(r.out, "Average %s: %s\n", m.name, num(m.s.Mean, 4))
		} else {
			fmt.Fprintf(r.out, "%s: no observations.\n", m.name)
		}
	}
}

func summaryRow(name string, s engine.MetricSummary, prec int) []string {
	return []string{name, num(s.Mean, prec), strconv.Itoa(s.Count)}
}

// Printf writes a free-form line.
func (r *Renderer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}
