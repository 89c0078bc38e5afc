package models

// Numeric fields are pointers: a missing value (NaN in the engine) is null.

type Record struct {
	Country            string   `json:"country"`
	Year               int      `json:"year"`
	TemperatureAnomaly *float64 `json:"temperature_anomaly"`
	CO2Emissions       *float64 `json:"co2_emissions"`
	GDP                *float64 `json:"gdp"`
	ExtremeEvents      *float64 `json:"extreme_weather_events"`
	Urbanization       *float64 `json:"urbanization"`
	Deforestation      *float64 `json:"deforestation"`
}

type RecordPage struct {
	Data   []Record `json:"data"`
	Total  int      `json:"total"`
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
}

type CountryValue struct {
	Rank    int      `json:"rank"`
	Country string   `json:"country"`
	Value   *float64 `json:"value"`
}

type MetricSummary struct {
	Mean         *float64 `json:"mean"`
	Observations int      `json:"observations"`
	Present      bool     `json:"present"`
}

type Averages struct {
	Country            string        `json:"country"`
	Records            int           `json:"records"`
	CO2Emissions       MetricSummary `json:"co2_emissions"`
	TemperatureAnomaly MetricSummary `json:"temperature_anomaly"`
	GDP                MetricSummary `json:"gdp"`
}

type LandUse struct {
	Country       string        `json:"country"`
	Records       int           `json:"records"`
	Urbanization  MetricSummary `json:"urbanization"`
	Deforestation MetricSummary `json:"deforestation"`
}

type DatasetStats struct {
	Records   int  `json:"records"`
	Rejected  int  `json:"rejected"`
	Countries int  `json:"countries"`
	FirstYear *int `json:"first_year"`
	LastYear  *int `json:"last_year"`
}
