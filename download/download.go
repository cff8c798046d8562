package download

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/ONSdigital/dp-sdmx-api/table"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

// Format is a table download format
type Format string

// Supported formats
const (
	FormatJSON    Format = "json"
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

var contentTypes = map[Format]string{
	FormatJSON:    "application/json",
	FormatCSV:     "text/csv",
	FormatParquet: "application/vnd.apache.parquet",
}

// ParseFormat returns the format named by s. An empty string is json.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatJSON, nil
	}
	f := Format(strings.ToLower(s))
	if _, ok := contentTypes[f]; !ok {
		return "", ErrUnsupportedFormat
	}
	return f, nil
}

// ContentType returns the media type of the format
func (f Format) ContentType() string {
	return contentTypes[f]
}

// Extension returns the file extension of the format
func (f Format) Extension() string {
	return "." + string(f)
}

// Write encodes t to w in format f
func Write(w io.Writer, t *table.Table, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, t)
	case FormatCSV:
		return writeCSV(w, t)
	case FormatParquet:
		return writeParquet(w, t)
	}
	return ErrUnsupportedFormat
}

func writeJSON(w io.Writer, t *table.Table) error {
	if err := json.NewEncoder(w).Encode(t); err != nil {
		return newEncodeError(err, "failed to encode table as json")
	}
	return nil
}

// writeCSV writes a header row then one record per row. Null cells are empty.
func writeCSV(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, t.ColumnCount())
	for i, c := range t.Columns() {
		header[i] = c.Name
	}
	if err := cw.Write(header); err != nil {
		return newEncodeError(err, "failed to write csv header")
	}

	record := make([]string, t.ColumnCount())
	for r := 0; r < t.RowCount(); r++ {
		row, err := t.Row(r)
		if err != nil {
			return err
		}
		for i, v := range row {
			record[i] = csvCell(v)
		}
		if err := cw.Write(record); err != nil {
			return newEncodeError(err, "failed to write csv row %d", r)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return newEncodeError(err, "failed to flush csv")
	}
	return nil
}

func csvCell(v table.Value) string {
	if s, ok := v.String(); ok {
		return s
	}
	if f, ok := v.Float(); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}

func writeParquet(w io.Writer, t *table.Table) error {
	if t.ColumnCount() == 0 {
		return ErrNoColumns
	}

	rec, err := table.ToArrow(t, memory.NewGoAllocator())
	if err != nil {
		return newEncodeError(err, "failed to build arrow record")
	}
	defer rec.Release()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())

	writer, err := pqarrow.NewFileWriter(rec.Schema(), w, props, arrowProps)
	if err != nil {
		return newEncodeError(err, "failed to create parquet writer")
	}
	if err := writer.Write(rec); err != nil {
		writer.Close()
		return newEncodeError(err, "failed to write parquet record")
	}
	if err := writer.Close(); err != nil {
		return newEncodeError(err, "failed to close parquet writer")
	}
	return nil
}
