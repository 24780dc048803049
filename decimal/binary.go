package decimal

import "math"

// The binary fallback reinterprets each decimal format as the IEEE
// binary float of the same width: decimal32 bit patterns hold a
// float32, decimal64 a float64, and decimal128 carries a float64 in
// its low word. Arithmetic is the host's, so results are not decimal
// rounded, but every special-value and comparison contract still
// holds.

func binF32(x D32) float32 { return math.Float32frombits(uint32(x)) }
func binD32(f float32) D32 { return D32(math.Float32bits(f)) }

func binF64(x D64) float64 { return math.Float64frombits(uint64(x)) }
func binD64(f float64) D64 { return D64(math.Float64bits(f)) }

func binF128(x D128) float64 { return math.Float64frombits(x.Lo) }
func binD128(f float64) D128 { return D128{Lo: math.Float64bits(f)} }

func binMin64(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	case a < b:
		return a
	case b < a:
		return b
	case math.Signbit(a):
		return a
	}
	return b
}

func binMax64(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	case a > b:
		return a
	case b > a:
		return b
	case math.Signbit(b):
		return a
	}
	return b
}

func binCmp64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// binToInt64 truncates toward zero with int64 saturation; NaN becomes
// zero. A plain Go conversion would make out-of-range results
// implementation defined.
func binToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64: // 2^63 is exact in float64
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

func binToInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}
