package frame

import (
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrColumnNotFound is returned when no column matches the requested name.
	ErrColumnNotFound = errors.New("column not found")

	// ErrAmbiguousColumn is returned when more than one column matches the
	// requested name.
	ErrAmbiguousColumn = errors.New("ambiguous column")

	// ErrNonNumeric is returned when a non-NULL value cannot be read as a number.
	ErrNonNumeric = errors.New("non-numeric value")
)

// Frame is a fully materialized, read-only result set.
type Frame struct {
	columns []string
	rows    [][]any
}

// New builds a Frame from column names and row values.
// Every row must have exactly one value per column.
func New(columns []string, rows [][]any) (*Frame, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(columns))
		}
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	if rows == nil {
		rows = [][]any{}
	}

	return &Frame{columns: cols, rows: rows}, nil
}

// FromRows drains rows into a Frame. The caller still owns rows and must
// close it.
func FromRows(rows *sql.Rows) (*Frame, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var data [][]any
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(data), err)
		}
		data = append(data, values)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return New(columns, data)
}

// Columns returns the column names in result order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.columns))
	copy(out, f.columns)
	return out
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.rows)
}

// Column returns the values of the named column, one per row.
func (f *Frame) Column(name string) ([]any, error) {
	idx, err := f.index(name)
	if err != nil {
		return nil, err
	}

	values := make([]any, len(f.rows))
	for i, row := range f.rows {
		values[i] = row[idx]
	}
	return values, nil
}

// index resolves a column name to its position. Names are compared in NFC
// so composed and decomposed spellings of the same field resolve alike.
func (f *Frame) index(name string) (int, error) {
	want := norm.NFC.String(name)
	found := -1
	for i, col := range f.columns {
		if norm.NFC.String(col) != want {
			continue
		}
		if found >= 0 {
			return -1, fmt.Errorf("%w: %q", ErrAmbiguousColumn, name)
		}
		found = i
	}
	if found < 0 {
		return -1, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return found, nil
}
