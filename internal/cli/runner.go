package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/engine"
	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/metrics"
	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/report"
)

// Runner executes one query, renders the result and prints its timing.
type Runner struct {
	q *engine.QueryEngine
	r *report.Renderer
}

func NewRunner(q *engine.QueryEngine, r *report.Renderer) *Runner {
	return &Runner{q: q, r: r}
}

func (x *Runner) timed(op string, fn func()) {
	elapsed := metrics.Time(op, fn)
	x.r.Printf("Time: %.3f ms\n", float64(elapsed)/float64(time.Millisecond))
}

func (x *Runner) Country(name string) {
	var recs []engine.Record
	x.timed(metrics.OpSearchCountry, func() { recs = x.q.SearchByCountry(name) })
	if len(recs) == 0 {
		x.r.Printf("No records for %s\n", name)
		return
	}
	x.r.Records("Records for "+name, recs)
}

func (x *Runner) YearRange(start, end int) {
	var recs []engine.Record
	x.timed(metrics.OpSearchYearRange, func() { recs = x.q.SearchByYearRange(start, end) })
	if len(recs) == 0 {
		x.r.Printf("No records in range %d - %d\n", start, end)
		return
	}
	x.r.Records(fmt.Sprintf("Year Range %d - %d", start, end), recs)
}

func (x *Runner) ExtremeEvents(k int, highest bool) {
	var ranked []engine.CountryValue
	x.timed(metrics.OpRankExtreme, func() { ranked = x.q.RankByExtremeEvents(k, highest) })

	side := "Bottom"
	if highest {
		side = "Top"
	}
	x.r.Pairs(fmt.Sprintf("%s %d by Extreme Events", side, k), ranked)
}

func (x *Runner) TopCO2(year, n int) {
	var top []engine.CountryValue
	x.timed(metrics.OpTopCO2, func() { top = x.q.TopNCO2(year, n) })
	if len(top) == 0 {
		x.r.Printf("No records for year %d\n", year)
		return
	}
	x.r.Pairs(fmt.Sprintf("Top %d CO2 in %d", n, year), top)
}

func (x *Runner) SortByTemperature(ascending bool) {
	var recs []engine.Record
	x.timed(metrics.OpSortTemperature, func() { recs = x.q.SortByTemperature(ascending) })
	x.r.Records(fmt.Sprintf("Temperature Anomaly (%s)", direction(ascending)), recs)
}

func (x *Runner) SortByGDP(year int, ascending bool) {
	var recs []engine.Record
	x.timed(metrics.OpSortGDP, func() { recs = x.q.SortByGDPInYear(year, ascending) })
	if len(recs) == 0 {
		x.r.Printf("No records for year %d\n", year)
		return
	}
	x.r.Records(fmt.Sprintf("GDP %d (%s)", year, direction(ascending)), recs)
}

func (x *Runner) Averages(country string) error {
	var (
		avg engine.Averages
		err error
	)
	x.timed(metrics.OpAverages, func() { avg, err = x.q.AverageMetrics(country) })
	if errors.Is(err, engine.ErrCountryNotFound) {
		x.r.Printf("No records for %s\n", country)
		return nil
	}
	if err != nil {
		return err
	}
	x.r.Averages(country, avg)
	return nil
}

func (x *Runner) LandUse(country string) error {
	var (
		lu  engine.LandUse
		err error
	)
	x.timed(metrics.OpLandUse, func() { lu, err = x.q.UrbanizationDeforestation(country) })
	if errors.Is(err, engine.ErrCountryNotFound) {
		x.r.Printf("No records for %s\n", country)
		return nil
	}
	if err != nil {
		return err
	}
	x.r.LandUse(country, lu)
	return nil
}

func direction(ascending bool) string {
	if ascending {
		return "ASC"
	}
	return "DESC"
}
