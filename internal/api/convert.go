package api

import (
	"math"

	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/engine"
	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/models"
)

// optional maps NaN and infinities, which JSON cannot carry, to null.
func optional(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func toRecord(r engine.Record) models.Record {
	return models.Record{
		Country:            r.Country,
		Year:               r.Year,
		TemperatureAnomaly: optional(r.TempAnomaly),
		CO2Emissions:       optional(r.CO2),
		GDP:                optional(r.GDP),
		ExtremeEvents:      optional(r.Extreme),
		Urbanization:       optional(r.Urban),
		Deforestation:      optional(r.Deforest),
	}
}

func toRecords(recs []engine.Record) []models.Record {
	out := make([]models.Record, len(recs))
	for i, r := range recs {
		out[i] = toRecord(r)
	}
	return out
}

func toCountryValues(pairs []engine.CountryValue) []models.CountryValue {
	out := make([]models.CountryValue, len(pairs))
	for i, p := range pairs {
		out[i] = models.CountryValue{Rank: i + 1, Country: p.Country, Value: optional(p.Value)}
	}
	return out
}

func toSummary(m engine.MetricSummary) models.MetricSummary {
	return models.MetricSummary{
		Mean:         optional(m.Mean),
		Observations: m.Count,
		Present:      m.Present(),
	}
}
