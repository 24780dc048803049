package float16

import (
	"math"
	"strconv"
)

const fnParse = "float16.Parse"

// Parse converts the string s to a Float16. It accepts the same syntax
// as strconv.ParseFloat: decimal and hexadecimal floating point,
// optionally signed, plus "inf", "infinity" and "nan" in any case.
//
// The value is rounded to the nearest Float16 using ties-to-even. If s
// is well formed but overflows the range of the type, Parse returns
// ±Inf and an error with Err set to strconv.ErrRange.
func Parse(s string) (Float16, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok {
			numErr.Func = fnParse
			if numErr.Err == strconv.ErrRange {
				// the binary64 overflow value carries the sign
				return FromFloat64(f), numErr
			}
			return 0, numErr
		}
		return 0, err
	}

	x := FromFloat64(f)
	if x.IsInf(0) && !math.IsInf(f, 0) {
		return x, &strconv.NumError{Func: fnParse, Num: s, Err: strconv.ErrRange}
	}
	return x, nil
}
