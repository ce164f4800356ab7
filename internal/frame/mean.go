package frame

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Stats summarizes a numeric column.
type Stats struct {
	Count int     // non-NULL values
	Nulls int     // skipped NULL (or NaN) values
	Sum   float64 // sum of non-NULL values
	Mean  float64 // Sum / Count, NaN when Count is 0
}

// Mean computes the arithmetic mean of the named column, skipping NULLs.
//
// Values are summed pairwise in row order with NULLs held as zeros, so the
// result rounds exactly like a NaN-skipping mean over a float64 array.
func (f *Frame) Mean(name string) (Stats, error) {
	col, err := f.Column(name)
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	values := make([]float64, len(col))
	for i, raw := range col {
		v, ok, err := toFloat(raw)
		if err != nil {
			return Stats{}, fmt.Errorf("column %q row %d: %w", name, i, err)
		}
		if !ok {
			st.Nulls++
			continue
		}
		st.Count++
		values[i] = v
	}

	if st.Count == 0 {
		st.Mean = math.NaN()
		return st, nil
	}
	st.Sum = pairwiseSum(values)
	st.Mean = st.Sum / float64(st.Count)
	return st, nil
}

// pairwiseBlock is the largest slice summed without splitting.
const pairwiseBlock = 128

// pairwiseSum adds a in eight interleaved partial sums per block of at most
// pairwiseBlock values and splits longer slices in halves on a multiple of
// eight. Short slices are summed left to right.
func pairwiseSum(a []float64) float64 {
	n := len(a)
	switch {
	case n < 8:
		res := math.Copysign(0, -1)
		for _, v := range a {
			res += v
		}
		return res
	case n <= pairwiseBlock:
		var r [8]float64
		copy(r[:], a[:8])
		i := 8
		for ; i < n-n%8; i += 8 {
			for j := range r {
				r[j] += a[i+j]
			}
		}
		res := ((r[0] + r[1]) + (r[2] + r[3])) + ((r[4] + r[5]) + (r[6] + r[7]))
		for ; i < n; i++ {
			res += a[i]
		}
		return res
	default:
		half := n / 2
		half -= half % 8
		return pairwiseSum(a[:half]) + pairwiseSum(a[half:])
	}
}

// toFloat reads a driver value as a float. ok is false for missing values.
func toFloat(v any) (f float64, ok bool, err error) {
	switch x := v.(type) {
	case nil:
		return 0, false, nil
	case int64:
		return float64(x), true, nil
	case int:
		return float64(x), true, nil
	case int32:
		return float64(x), true, nil
	case float32:
		return missingIfNaN(float64(x))
	case float64:
		return missingIfNaN(x)
	case bool:
		if x {
			return 1, true, nil
		}
		return 0, true, nil
	case []byte:
		return parseNumeric(string(x))
	case string:
		return parseNumeric(x)
	default:
		return 0, false, fmt.Errorf("%w: %T", ErrNonNumeric, v)
	}
}

func missingIfNaN(f float64) (float64, bool, error) {
	if math.IsNaN(f) {
		return 0, false, nil
	}
	return f, true, nil
}

func parseNumeric(s string) (float64, bool, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrNonNumeric, s)
	}
	return missingIfNaN(f)
}
