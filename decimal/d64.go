package decimal

import (
	"math"
	"strconv"
)

// D64NaN returns a quiet NaN.
func D64NaN() D64 {
	if binary() {
		return binD64(math.NaN())
	}
	return encode64(nanParts)
}

// D64Inf returns positive infinity if sign >= 0, negative infinity
// otherwise.
func D64Inf(sign int) D64 {
	if binary() {
		return binD64(math.Inf(sign))
	}
	return encode64(parts{cls: clInf, neg: sign < 0})
}

// D64Max returns the largest finite decimal64, 9999999999999999e369.
func D64Max() D64 {
	if binary() {
		return binD64(math.MaxFloat64)
	}
	return encode64(parts{coef: pow10tab[16].Sub(uint128One), exp: fmt64.emax})
}

// D64MinPositive returns the smallest positive value, 1e-398.
func D64MinPositive() D64 {
	if binary() {
		return binD64(math.SmallestNonzeroFloat64)
	}
	return encode64(parts{coef: uint128One, exp: fmt64.emin})
}

// D64Epsilon returns the difference between 1 and the next larger
// representable value, 1e-15.
func D64Epsilon() D64 {
	if binary() {
		return binD64(0x1p-52)
	}
	return encode64(parts{coef: uint128One, exp: 1 - fmt64.digits})
}

func D64FromFloat32(f float32) D64 {
	if binary() {
		return binD64(float64(f))
	}
	return encode64(fromFloat(float64(f), fmt64))
}

func D64FromFloat64(f float64) D64 {
	if binary() {
		return binD64(f)
	}
	return encode64(fromFloat(f, fmt64))
}

func D64FromInt32(v int32) D64 {
	if binary() {
		return binD64(float64(v))
	}
	return encode64(fromInt64(int64(v), fmt64))
}

func D64FromInt64(v int64) D64 {
	if binary() {
		return binD64(float64(v))
	}
	return encode64(fromInt64(v, fmt64))
}

func D64FromUint32(v uint32) D64 {
	if binary() {
		return binD64(float64(v))
	}
	return encode64(fromUint64(uint64(v), fmt64))
}

func D64FromUint64(v uint64) D64 {
	if binary() {
		return binD64(float64(v))
	}
	return encode64(fromUint64(v, fmt64))
}

// D64FromString parses s. Malformed input yields NaN on the software
// tier and +0 on the binary tier.
func D64FromString(s string) D64 {
	if binary() {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && f == 0 {
			return D64(0)
		}
		return binD64(f)
	}
	p, ok := parseParts(s, fmt64)
	if !ok {
		return encode64(nanParts)
	}
	return encode64(p)
}

func (x D64) Add(y D64) D64 {
	if binary() {
		return binD64(binF64(x) + binF64(y))
	}
	return encode64(softAdd(decode64(x), decode64(y), fmt64))
}

func (x D64) Sub(y D64) D64 {
	if binary() {
		return binD64(binF64(x) - binF64(y))
	}
	return encode64(softSub(decode64(x), decode64(y), fmt64))
}

func (x D64) Mul(y D64) D64 {
	if binary() {
		return binD64(binF64(x) * binF64(y))
	}
	return encode64(softMul(decode64(x), decode64(y), fmt64))
}

func (x D64) Div(y D64) D64 {
	if binary() {
		return binD64(binF64(x) / binF64(y))
	}
	return encode64(softDiv(decode64(x), decode64(y), fmt64))
}

func (x D64) Sqrt() D64 {
	if binary() {
		return binD64(math.Sqrt(binF64(x)))
	}
	return encode64(softSqrt(decode64(x), fmt64))
}

// FMA returns x*y + z with a single rounding.
func (x D64) FMA(y, z D64) D64 {
	if binary() {
		return binD64(math.FMA(binF64(x), binF64(y), binF64(z)))
	}
	return encode64(softFMA(decode64(x), decode64(y), decode64(z), fmt64))
}

// Mod returns the truncated-division remainder, exact and with the
// sign of x.
func (x D64) Mod(y D64) D64 {
	if binary() {
		return binD64(math.Mod(binF64(x), binF64(y)))
	}
	return encode64(softFmod(decode64(x), decode64(y), fmt64))
}

func (x D64) Neg() D64 { return x ^ d64SignMask }

func (x D64) Abs() D64 { return x &^ d64SignMask }

func (x D64) CopySign(y D64) D64 {
	return x&^d64SignMask | y&d64SignMask
}

func (x D64) Min(y D64) D64 {
	if binary() {
		return binD64(binMin64(binF64(x), binF64(y)))
	}
	return encode64(softMin(decode64(x), decode64(y)))
}

func (x D64) Max(y D64) D64 {
	if binary() {
		return binD64(binMax64(binF64(x), binF64(y)))
	}
	return encode64(softMax(decode64(x), decode64(y)))
}

func (x D64) Ceil() D64 {
	if binary() {
		return binD64(math.Ceil(binF64(x)))
	}
	return encode64(softCeil(decode64(x)))
}

func (x D64) Floor() D64 {
	if binary() {
		return binD64(math.Floor(binF64(x)))
	}
	return encode64(softFloor(decode64(x)))
}

func (x D64) Trunc() D64 {
	if binary() {
		return binD64(math.Trunc(binF64(x)))
	}
	return encode64(softTrunc(decode64(x)))
}

// Round rounds half away from zero.
func (x D64) Round() D64 {
	if binary() {
		return binD64(math.Round(binF64(x)))
	}
	return encode64(softRound(decode64(x)))
}

func (x D64) Eq(y D64) bool {
	if binary() {
		return binF64(x) == binF64(y)
	}
	c, ordered := softCmp(decode64(x), decode64(y))
	return ordered && c == 0
}

func (x D64) Ne(y D64) bool { return !x.Eq(y) }

func (x D64) Lt(y D64) bool {
	if binary() {
		return binF64(x) < binF64(y)
	}
	c, ordered := softCmp(decode64(x), decode64(y))
	return ordered && c < 0
}

func (x D64) Le(y D64) bool {
	if binary() {
		return binF64(x) <= binF64(y)
	}
	c, ordered := softCmp(decode64(x), decode64(y))
	return ordered && c <= 0
}

func (x D64) Gt(y D64) bool { return y.Lt(x) }

func (x D64) Ge(y D64) bool { return y.Le(x) }

// Cmp returns -1, 0 or +1; NaN operands compare as 0.
func (x D64) Cmp(y D64) int {
	if binary() {
		return binCmp64(binF64(x), binF64(y))
	}
	c, _ := softCmp(decode64(x), decode64(y))
	return c
}

func (x D64) IsNaN() bool {
	if binary() {
		f := binF64(x)
		return f != f
	}
	return uint64(x)&d64NaNMask == d64NaNMask
}

func (x D64) IsInf(sign int) bool {
	if binary() {
		return math.IsInf(binF64(x), sign)
	}
	p := decode64(x)
	return p.cls == clInf && (sign == 0 || sign < 0 == p.neg)
}

func (x D64) IsZero() bool {
	if binary() {
		return binF64(x) == 0
	}
	p := decode64(x)
	return p.cls == clFinite && p.coef == uint128Zero
}

func (x D64) IsFinite() bool {
	if binary() {
		f := binF64(x)
		return f == f && !math.IsInf(f, 0)
	}
	return decode64(x).cls == clFinite
}

func (x D64) IsNormal() bool {
	if binary() {
		abs := math.Abs(binF64(x))
		return abs >= 0x1p-1022 && !math.IsInf(abs, 0)
	}
	return isNormalParts(decode64(x), fmt64)
}

func (x D64) Signbit() bool { return x&d64SignMask != 0 }

func (x D64) ToD32() D32 {
	if binary() {
		return binD32(float32(binF64(x)))
	}
	return encode32(narrowTo(decode64(x), fmt32))
}

func (x D64) ToD128() D128 {
	if binary() {
		return binD128(binF64(x))
	}
	return encode128(decode64(x))
}

func (x D64) Float32() float32 {
	if binary() {
		return float32(binF64(x))
	}
	return toFloat32(decode64(x))
}

func (x D64) Float64() float64 {
	if binary() {
		return binF64(x)
	}
	return toFloat64(decode64(x))
}

// Int32 truncates toward zero, saturating at the int32 range; NaN
// converts to 0.
func (x D64) Int32() int32 {
	if binary() {
		return binToInt32(binF64(x))
	}
	return toInt32(decode64(x))
}

func (x D64) Int64() int64 {
	if binary() {
		return binToInt64(binF64(x))
	}
	return toInt64(decode64(x))
}

func (x D64) String() string {
	return string(x.Append(nil))
}

func (x D64) Append(buf []byte) []byte {
	if binary() {
		return strconv.AppendFloat(buf, binF64(x), 'g', -1, 64)
	}
	return formatParts(buf, decode64(x), fmt64)
}
