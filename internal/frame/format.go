package frame

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders v in its shortest round-trip form with the same
// layout as Python's float repr: integral values keep a trailing ".0",
// exponents are used below 1e-4 and from 1e16 up, and the special values
// are "nan", "inf" and "-inf".
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.LastIndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
