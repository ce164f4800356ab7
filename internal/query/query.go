// Package query prepares the caller-supplied SQL text and column key.
package query

import (
	"errors"
	"strings"
)

// DefaultPrefix is the table qualifier prepended to the field name.
const DefaultPrefix = "participant"

// trimSet lists the characters stripped from both ends of the SQL text.
const trimSet = ";\n"

// ErrEmptyField is returned when no field name is given.
var ErrEmptyField = errors.New("field name is empty")

// ErrEmptyPrefix is returned when the column prefix is blank.
var ErrEmptyPrefix = errors.New("column prefix is empty")

// Trim strips any run of semicolons and newlines from both ends of sql.
// Characters in the middle of the statement are left alone.
func Trim(sql string) string {
	return strings.Trim(sql, trimSet)
}

// ColumnKey builds the "<prefix>.<field>" name of the aggregated column.
func ColumnKey(prefix, field string) (string, error) {
	if prefix == "" {
		return "", ErrEmptyPrefix
	}
	if field == "" {
		return "", ErrEmptyField
	}
	return prefix + "." + field, nil
}
