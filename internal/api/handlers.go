package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/engine"
	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/metrics"
	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/models"
)

type dataset struct {
	engine   *engine.QueryEngine
	rejected int
}

// Handler serves queries over a dataset that may still be loading.
// Until SetData is called every endpoint answers 503.
type Handler struct {
	data atomic.Pointer[dataset]
}

func NewHandler(q *engine.QueryEngine, rejected int) *Handler {
	h := &Handler{}
	if q != nil {
		h.SetData(q, rejected)
	}
	return h
}

// SetData publishes a loaded engine to the handlers.
func (h *Handler) SetData(q *engine.QueryEngine, rejected int) {
	h.data.Store(&dataset{engine: q, rejected: rejected})
}

func (h *Handler) current() (*dataset, error) {
	d := h.data.Load()
	if d == nil {
		return nil, Unavailable("dataset is still loading")
	}
	return d, nil
}

// Setup installs the JSON serializer, error handler, API routes and /metrics on e.
func Setup(e *echo.Echo, h *Handler) {
	e.JSONSerializer = JSONSerializer{}
	e.HTTPErrorHandler = ErrorHandler
	h.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/stats", h.GetStats)
	api.GET("/records", h.GetRecordsByYearRange)
	api.GET("/records/by-temperature", h.GetRecordsByTemperature)
	api.GET("/records/by-gdp", h.GetRecordsByGDP)
	api.GET("/countries/:name/records", h.GetCountryRecords)
	api.GET("/countries/:name/averages", h.GetCountryAverages)
	api.GET("/countries/:name/land-use", h.GetCountryLandUse)
	api.GET("/extreme-events", h.GetExtremeEventsRanking)
	api.GET("/co2/top", h.GetTopCO2)
}

// --- PARAMS ---

func getPaginationParams(c echo.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func requiredInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, BadRequest("missing query parameter " + name)
	}
	return parseInt(name, raw)
}

func optionalInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	return parseInt(name, raw)
}

func parseInt(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, BadRequest("query parameter " + name + " must be an integer")
	}
	return v, nil
}

// ascending reads ?order=; "asc"/"lowest" and "desc"/"highest" are accepted.
func ascending(c echo.Context, def bool) (bool, error) {
	switch strings.ToLower(c.QueryParam("order")) {
	case "":
		return def, nil
	case "asc", "lowest":
		return true, nil
	case "desc", "highest":
		return false, nil
	default:
		return false, BadRequest("order must be asc|desc or highest|lowest")
	}
}

func page(c echo.Context, recs []engine.Record) models.RecordPage {
	total := len(recs)
	limit, offset := getPaginationParams(c, total)

	out := models.RecordPage{Data: []models.Record{}, Total: total, Limit: limit, Offset: offset}
	if offset >= total {
		return out
	}
	// clamp before adding so a huge limit cannot overflow
	end := offset + min(limit, total-offset)
	out.Data = toRecords(recs[offset:end])
	return out
}

// --- HANDLERS ---

func (h *Handler) GetStats(c echo.Context) error {
	d, err := h.current()
	if err != nil {
		return err
	}

	stats := models.DatasetStats{
		Records:   d.engine.Size(),
		Rejected:  d.rejected,
		Countries: len(d.engine.Countries()),
	}
	if first, last, ok := d.engine.YearSpan(); ok {
		stats.FirstYear, stats.LastYear = &first, &last
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetCountryRecords(c echo.Context) error {
	d, err := h.current()
	if err != nil {
		return err
	}

	var recs []engine.Record
	metrics.Time(metrics.OpSearchCountry, func() {
		recs = d.engine.SearchByCountry(c.Param("name"))
	})
	return c.JSON(http.StatusOK, page(c, recs))
}

// GetRecordsByYearRange serves ?from=&to=; reversed bounds are swapped.
func (h *Handler) GetRecordsByYearRange(c echo.Context) error {
	d, err := h.current()
	if err != nil {
		return err
	}
	from, err := requiredInt(c, "from")
	if err != nil {
		return err
	}
	to, err := optionalInt(c, "to", from)
	if err != nil {
		return err
	}

	var recs []engine.Record
	metrics.Time(metrics.OpSearchYearRange, func() {
		recs = d.engine.SearchByYearRange(from, to)
	})
	return c.JSON(http.StatusOK, page(c, recs))
}

// GetExtremeEventsRanking serves ?k=&order=highest|lowest; k=0 returns every country.
func (h *Handler) GetExtremeEventsRanking(c echo.Context) error {
	d, err := h.current()
	if err != nil {
		return err
	}
	k, err := optionalInt(c, "k", 0)
	if err != nil {
		return err
	}
	asc, err := ascending(c, false)
	if err != nil {
		return err
	}

	var ranked []engine.CountryValue
	metrics.Time(metrics.OpRankExtreme, func() {
		ranked = d.engine.RankByExtremeEvents(k, !asc)
	})
	return c.JSON(http.StatusOK, toCountryValues(ranked))
}

// GetTopCO2 serves ?year=&n= (n defaults to 10).
func (h *Handler) GetTopCO2(c echo.Context) error {
	d, err := h.current()
	if err != nil {
		return err
	}
	year, err := requiredInt(c, "year")
	if err != nil {
		return err
	}
	n, err := optionalInt(c, "n", 10)
	if err != nil {
		return err
	}

	var top []engine.CountryValue
	metrics.Time(metrics.OpTopCO2, func() {
		top = d.engine.TopNCO2(year, n)
	})
	return c.JSON(http.StatusOK, toCountryValues(top))
}

func (h *Handler) GetRecordsByTemperature(c echo.Context) error {
	d, err := h.current()
	if err != nil {
		return err
	}
	asc, err := ascending(c, true)
	if err != nil {
		return err
	}

	var recs []engine.Record
	metrics.Time(metrics.OpSortTemperature, func() {
		recs = d.engine.SortByTemperature(asc)
	})
	return c.JSON(http.StatusOK, page(c, recs))
}

func (h *Handler) GetRecordsByGDP(c echo.Context) error {
	d, err := h.current()
	if err != nil {
		return err
	}
	year, err := requiredInt(c, "year")
	if err != nil {
		return err
	}
	asc, err := ascending(c, true)
	if err != nil {
		return err
	}

	var recs []engine.Record
	metrics.Time(metrics.OpSortGDP, func() {
		recs = d.engine.SortByGDPInYear(year, asc)
	})
	return c.JSON(http.StatusOK, page(c, recs))
}

func (h *Handler) GetCountryAverages(c echo.Context) error {
	d, err := h.current()
	if err != nil {
		return err
	}
	country := strings.TrimSpace(c.Param("name"))

	var avg engine.Averages
	metrics.Time(metrics.OpAverages, func() {
		avg, err = d.engine.AverageMetrics(country)
	})
	if errors.Is(err, engine.ErrCountryNotFound) {
		return NotFound("no records for "+country, err)
	}
	if err != nil {
		return Internal(err)
	}

	return c.JSON(http.StatusOK, models.Averages{
		Country:            country,
		Records:            avg.Records,
		CO2Emissions:       toSummary(avg.CO2),
		TemperatureAnomaly: toSummary(avg.TemperatureAnomaly),
		GDP:                toSummary(avg.GDP),
	})
}

func (h *Handler) GetCountryLandUse(c echo.Context) error {
	d, err := h.current()
	if err != nil {
		return err
	}
	country := strings.TrimSpace(c.Param("name"))

	var lu engine.LandUse
	metrics.Time(metrics.OpLandUse, func() {
		lu, err = d.engine.UrbanizationDeforestation(country)
	})
	if errors.Is(err, engine.ErrCountryNotFound) {
		return NotFound("no records for "+country, err)
	}
	if err != nil {
		return Internal(err)
	}

	return c.JSON(http.StatusOK, models.LandUse{
		Country:       country,
		Records:       lu.Records,
		Urbanization:  toSummary(lu.Urbanization),
		Deforestation: toSummary(lu.Deforestation),
	})
}
