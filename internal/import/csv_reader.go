// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package movieimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// requiredColumns lists the header names every movie list must carry.
var requiredColumns = []string{"year", "title", "studios", "producers", "winner"}

// RowError reports a data row that could not be read.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// CSVReader reads movie rows from a delimited file. Columns are located by
// header name, so their order in the file does not matter.
type CSVReader struct {
	closer    io.Closer
	reader    *csv.Reader
	columns   map[string]int
	minFields int
}

// NewCSVReader opens path and reads its header row. A missing file is
// reported with an error wrapping os.ErrNotExist.
func NewCSVReader(path string, delimiter rune) (*CSVReader, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}

	r, err := newCSVReader(f, delimiter)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

func newCSVReader(src io.Reader, delimiter rune) (*CSVReader, error) {
	reader := csv.NewReader(src)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv file is empty")
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := columns[key]; !dup {
			columns[key] = i
		}
	}

	var missing []string
	minFields := 0
	for _, name := range requiredColumns {
		idx, ok := columns[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		minFields = max(minFields, idx+1)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("csv header missing columns: %s", strings.Join(missing, ", "))
	}

	return &CSVReader{reader: reader, columns: columns, minFields: minFields}, nil
}

// Next returns the next data row. It returns io.EOF after the last row and a
// *RowError for a row that cannot be read; reading may continue after a RowError.
func (r *CSVReader) Next() (*CSVRecord, error) {
	fields, err := r.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, &RowError{Line: parseErr.StartLine, Err: parseErr.Err}
		}
		return nil, fmt.Errorf("read csv: %w", err)
	}

	line, _ := r.reader.FieldPos(0)
	if len(fields) < r.minFields {
		return nil, &RowError{Line: line, Err: fmt.Errorf("expected at least %d fields, got %d", r.minFields, len(fields))}
	}

	return &CSVRecord{
		Line:      line,
		Year:      fields[r.columns["year"]],
		Title:     fields[r.columns["title"]],
		Studios:   fields[r.columns["studios"]],
		Producers: fields[r.columns["producers"]],
		Winner:    fields[r.columns["winner"]],
	}, nil
}

// Close releases the underlying file.
func (r *CSVReader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
