// Package tabular reads CSV datasets into in-memory tables with strict schema
// checking. It is the lowest layer of the analysis pipeline: every dataset is
// opened, decoded, read fully, and closed in a single pass with no retries.
//
// Source files are encoded Latin-1, and numeric columns may carry thousands
// separators ("1,234,567"), so parsing goes through a charmap decoder and a
// separator-tolerant number parser rather than raw strconv.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// NotFoundError indicates a dataset file does not exist on disk.
// It wraps os.ErrNotExist so callers can test with errors.Is.
type NotFoundError struct {
	File string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dataset file not found: %s", e.File)
}

func (e *NotFoundError) Unwrap() error {
	return os.ErrNotExist
}

// SchemaError indicates a dataset file is present but its contents do not
// match the expected schema: a required column is missing, or a value cannot
// be parsed as the column's type. Row is 1-based over data rows (header
// excluded) and is zero for header-level problems.
type SchemaError struct {
	File   string
	Column string
	Row    int
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s: column %q, row %d: %s", e.File, e.Column, e.Row, e.Reason)
	}
	return fmt.Sprintf("%s: column %q: %s", e.File, e.Column, e.Reason)
}

// Table is an eagerly loaded CSV file: a header and all data rows.
// Column lookup is case-insensitive on the normalised header name.
type Table struct {
	File    string
	Columns []string
	Rows    [][]string

	index map[string]int
}

// ReadFile loads a CSV file into a Table, verifying that every column in
// required is present. The file is decoded as Latin-1, matching the encoding
// of the source datasets. Returns *NotFoundError if the file does not exist
// and *SchemaError naming the first missing required column.
func ReadFile(path string, required ...string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{File: path}
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(f))
	reader.FieldsPerRecord = -1 // ragged rows are tolerated; lookups bounds-check

	header, err := reader.Read()
	if err == io.EOF {
		column := ""
		if len(required) > 0 {
			column = required[0]
		}
		return nil, &SchemaError{File: path, Column: column, Reason: "file is empty"}
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	t := &Table{
		File:    path,
		Columns: make([]string, len(header)),
		index:   make(map[string]int, len(header)),
	}
	for i, h := range header {
		name := normalise(h)
		t.Columns[i] = name
		if _, dup := t.index[name]; !dup {
			t.index[name] = i
		}
	}

	for _, col := range required {
		if _, ok := t.index[normalise(col)]; !ok {
			return nil, &SchemaError{File: path, Column: col, Reason: "required column missing"}
		}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if isBlank(row) {
			continue
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// Len returns the number of data rows (header excluded).
func (t *Table) Len() int {
	return len(t.Rows)
}

// String returns the trimmed cell value for the named column at row i,
// or "" when the row is too short to hold the column.
func (t *Table) String(i int, column string) string {
	col, ok := t.index[normalise(column)]
	if !ok || i < 0 || i >= len(t.Rows) {
		return ""
	}
	row := t.Rows[i]
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// Int parses the named column at row i as an integer, accepting thousands
// separators. An empty cell parses as zero. A non-numeric cell is a
// *SchemaError naming the column and the 1-based data row.
func (t *Table) Int(i int, column string) (int64, error) {
	raw := t.String(i, column)
	if raw == "" {
		return 0, nil
	}
	v, err := ParseNumber(raw)
	if err != nil {
		return 0, &SchemaError{
			File:   t.File,
			Column: column,
			Row:    i + 1,
			Reason: fmt.Sprintf("not a number: %q", raw),
		}
	}
	return v, nil
}

// Bool parses the named column at row i as a boolean. Accepts true/false,
// 1/0 and yes/no in any case. An empty cell parses as false.
func (t *Table) Bool(i int, column string) (bool, error) {
	raw := strings.ToLower(t.String(i, column))
	switch raw {
	case "", "false", "0", "no":
		return false, nil
	case "true", "1", "yes":
		return true, nil
	}
	return false, &SchemaError{
		File:   t.File,
		Column: column,
		Row:    i + 1,
		Reason: fmt.Sprintf("not a boolean: %q", raw),
	}
}

// ParseNumber parses an integer that may carry comma thousands separators.
func ParseNumber(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	return strconv.ParseInt(s, 10, 64)
}

// normalise lower-cases and trims a header name so lookups are tolerant of
// "Artist", "artist " and "ARTIST".
func normalise(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
