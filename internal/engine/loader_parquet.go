package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"
)

// LoadParquet reads a Parquet file. Columns are matched by name with the same
// aliases as the CSV loader, and every cell goes through the same parsers.
func LoadParquet(path string) (LoadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to open parquet file: %w", err)
	}

	fields := pqFile.Schema().Fields()
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.Name()
	}

	sink, err := newRowSink(header, int(pqFile.NumRows()))
	if err != nil {
		return LoadResult{}, err
	}

	reader := parquet.NewReader(pqFile)
	defer func() { _ = reader.Close() }()

	cells := make([]string, len(header))
	for {
		row := make(map[string]interface{})
		if err := reader.Read(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return LoadResult{}, fmt.Errorf("failed to read row: %w", err)
		}
		for i, name := range header {
			cells[i] = cellText(row[name])
		}
		sink.add(cells)
	}

	return sink.result, nil
}

// cellText renders a decoded parquet value as the text a CSV cell would hold.
func cellText(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
