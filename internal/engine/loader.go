package engine

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/logger"
)

// LoadResult is the output of a loader: the valid records plus how many data
// rows were dropped for an empty country or an unparsable year.
type LoadResult struct {
	Store    *RecordStore
	Rejected int
}

// --- 1. CELL PARSERS ---

// parseYear returns 0 for anything that is not a plain integer.
func parseYear(s string) int {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return y
}

// parseMeasure returns NaN for blank, "nan" or unparsable cells. Never 0.
func parseMeasure(s string) float64 {
	t := strings.TrimSpace(s)
	if t == "" || strings.EqualFold(t, "nan") {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// --- 2. COLUMN RESOLUTION ---

// normHeader lower-cases and drops spaces, underscores and dashes.
func normHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(s, "\ufeff")))
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '_' || r == '-' {
			return -1
		}
		return r
	}, s)
}

var columnAliases = struct {
	country, year, temp, co2, gdp, extreme, urban, deforest []string
}{
	country:  []string{"country"},
	year:     []string{"year"},
	temp:     []string{"temperature_anomaly", "temperature anomaly", "temp_anomaly"},
	co2:      []string{"co2_emissions", "co2 emissions", "co2"},
	gdp:      []string{"gdp"},
	extreme:  []string{"extreme_weather_events", "extreme weather events", "extremeevents"},
	urban:    []string{"urbanization", "urbanisation"},
	deforest: []string{"deforestation"},
}

// columns maps each field to its position in a row, -1 when absent.
type columns struct {
	country, year, temp, co2, gdp, extreme, urban, deforest int
}

func resolveColumns(header []string) (columns, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[normHeader(h)] = i
	}
	find := func(aliases []string) int {
		for _, a := range aliases {
			if i, ok := byName[normHeader(a)]; ok {
				return i
			}
		}
		return -1
	}

	cols := columns{
		country:  find(columnAliases.country),
		year:     find(columnAliases.year),
		temp:     find(columnAliases.temp),
		co2:      find(columnAliases.co2),
		gdp:      find(columnAliases.gdp),
		extreme:  find(columnAliases.extreme),
		urban:    find(columnAliases.urban),
		deforest: find(columnAliases.deforest),
	}
	if cols.country < 0 || cols.year < 0 {
		return columns{}, ErrMissingColumns
	}
	return cols, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// record builds a Record from row; ok is false when the row must be rejected.
func (c columns) record(row []string) (Record, bool) {
	r := Record{
		Country:     cell(row, c.country),
		Year:        parseYear(cell(row, c.year)),
		TempAnomaly: parseMeasure(cell(row, c.temp)),
		CO2:         parseMeasure(cell(row, c.co2)),
		GDP:         parseMeasure(cell(row, c.gdp)),
		Extreme:     parseMeasure(cell(row, c.extreme)),
		Urban:       parseMeasure(cell(row, c.urban)),
		Deforest:    parseMeasure(cell(row, c.deforest)),
	}
	if r.Country == "" || r.Year == 0 {
		return Record{}, false
	}
	return r, true
}

// rowSink appends accepted rows and counts rejected ones.
type rowSink struct {
	cols   columns
	result LoadResult
}

func newRowSink(header []string, capacity int) (*rowSink, error) {
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}
	return &rowSink{cols: cols, result: LoadResult{Store: NewRecordStore(capacity)}}, nil
}

func (s *rowSink) add(row []string) {
	if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
		return
	}
	if r, ok := s.cols.record(row); ok {
		s.result.Store.Append(r)
	} else {
		s.result.Rejected++
	}
}

// --- 3. LOADERS ---

// Load reads a dataset file, choosing the reader from the extension.
func Load(path string) (LoadResult, error) {
	start := time.Now()
	logger.Info("loading dataset", "path", path)

	var (
		res LoadResult
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		res, err = LoadCSV(path)
	case ".parquet":
		res, err = LoadParquet(path)
	default:
		return LoadResult{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return LoadResult{}, err
	}

	logger.Info("load complete",
		"rows", res.Store.Size(),
		"rejected", res.Rejected,
		"elapsed", time.Since(start))
	return res, nil
}

// LoadCSV reads a CSV file with a header row.
func LoadCSV(path string) (LoadResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	// one record per line is a good upper bound for the allocation
	return readCSV(bytes.NewReader(content), bytes.Count(content, []byte{'\n'}))
}

// ReadCSV reads CSV data with a header row from r.
func ReadCSV(r io.Reader) (LoadResult, error) {
	return readCSV(r, 0)
}

func readCSV(r io.Reader, capacity int) (LoadResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return LoadResult{}, ErrEmptyInput
	}
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to read header: %w", err)
	}

	sink, err := newRowSink(header, capacity)
	if err != nil {
		return LoadResult{}, err
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			logger.Debug("skipping malformed row", "line", perr.Line, "err", perr.Err)
			sink.result.Rejected++
			continue
		}
		if err != nil {
			return LoadResult{}, fmt.Errorf("failed to read row: %w", err)
		}
		sink.add(row)
	}

	return sink.result, nil
}
