package decimal

import (
	"math"
	"strconv"
)

// D128NaN returns a quiet NaN.
func D128NaN() D128 {
	if binary() {
		return binD128(math.NaN())
	}
	return encode128(nanParts)
}

// D128Inf returns positive infinity if sign >= 0, negative infinity
// otherwise.
func D128Inf(sign int) D128 {
	if binary() {
		return binD128(math.Inf(sign))
	}
	return encode128(parts{cls: clInf, neg: sign < 0})
}

// D128Max returns the largest finite decimal128, (10^34-1)e6111.
func D128Max() D128 {
	if binary() {
		return binD128(math.MaxFloat64)
	}
	return encode128(parts{coef: pow10tab[34].Sub(uint128One), exp: fmt128.emax})
}

// D128MinPositive returns the smallest positive value, 1e-6176.
func D128MinPositive() D128 {
	if binary() {
		return binD128(math.SmallestNonzeroFloat64)
	}
	return encode128(parts{coef: uint128One, exp: fmt128.emin})
}

// D128Epsilon returns the difference between 1 and the next larger
// representable value, 1e-33.
func D128Epsilon() D128 {
	if binary() {
		return binD128(0x1p-52)
	}
	return encode128(parts{coef: uint128One, exp: 1 - fmt128.digits})
}

func D128FromFloat32(f float32) D128 {
	if binary() {
		return binD128(float64(f))
	}
	return encode128(fromFloat(float64(f), fmt128))
}

func D128FromFloat64(f float64) D128 {
	if binary() {
		return binD128(f)
	}
	return encode128(fromFloat(f, fmt128))
}

func D128FromInt32(v int32) D128 {
	if binary() {
		return binD128(float64(v))
	}
	return encode128(fromInt64(int64(v), fmt128))
}

func D128FromInt64(v int64) D128 {
	if binary() {
		return binD128(float64(v))
	}
	return encode128(fromInt64(v, fmt128))
}

func D128FromUint32(v uint32) D128 {
	if binary() {
		return binD128(float64(v))
	}
	return encode128(fromUint64(uint64(v), fmt128))
}

func D128FromUint64(v uint64) D128 {
	if binary() {
		return binD128(float64(v))
	}
	return encode128(fromUint64(v, fmt128))
}

// D128FromString parses s. Malformed input yields NaN on the software
// tier and +0 on the binary tier.
func D128FromString(s string) D128 {
	if binary() {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && f == 0 {
			return D128{}
		}
		return binD128(f)
	}
	p, ok := parseParts(s, fmt128)
	if !ok {
		return encode128(nanParts)
	}
	return encode128(p)
}

func (x D128) Add(y D128) D128 {
	if binary() {
		return binD128(binF128(x) + binF128(y))
	}
	return encode128(softAdd(decode128(x), decode128(y), fmt128))
}

func (x D128) Sub(y D128) D128 {
	if binary() {
		return binD128(binF128(x) - binF128(y))
	}
	return encode128(softSub(decode128(x), decode128(y), fmt128))
}

func (x D128) Mul(y D128) D128 {
	if binary() {
		return binD128(binF128(x) * binF128(y))
	}
	return encode128(softMul(decode128(x), decode128(y), fmt128))
}

func (x D128) Div(y D128) D128 {
	if binary() {
		return binD128(binF128(x) / binF128(y))
	}
	return encode128(softDiv(decode128(x), decode128(y), fmt128))
}

func (x D128) Sqrt() D128 {
	if binary() {
		return binD128(math.Sqrt(binF128(x)))
	}
	return encode128(softSqrt(decode128(x), fmt128))
}

// FMA returns x*y + z with a single rounding.
func (x D128) FMA(y, z D128) D128 {
	if binary() {
		return binD128(math.FMA(binF128(x), binF128(y), binF128(z)))
	}
	return encode128(softFMA(decode128(x), decode128(y), decode128(z), fmt128))
}

// Mod returns the truncated-division remainder, exact and with the
// sign of x.
func (x D128) Mod(y D128) D128 {
	if binary() {
		return binD128(math.Mod(binF128(x), binF128(y)))
	}
	return encode128(softFmod(decode128(x), decode128(y), fmt128))
}

// Sign manipulation depends on the tier: the binary fallback keeps its
// float64 payload, and with it the sign bit, in the low word.

func (x D128) Neg() D128 {
	if binary() {
		return D128{Lo: x.Lo ^ d64SignMask, Hi: x.Hi}
	}
	return D128{Lo: x.Lo, Hi: x.Hi ^ d64SignMask}
}

func (x D128) Abs() D128 {
	if binary() {
		return D128{Lo: x.Lo &^ d64SignMask, Hi: x.Hi}
	}
	return D128{Lo: x.Lo, Hi: x.Hi &^ d64SignMask}
}

func (x D128) CopySign(y D128) D128 {
	if binary() {
		return D128{Lo: x.Lo&^d64SignMask | y.Lo&d64SignMask, Hi: x.Hi}
	}
	return D128{Lo: x.Lo, Hi: x.Hi&^d64SignMask | y.Hi&d64SignMask}
}

func (x D128) Signbit() bool {
	if binary() {
		return x.Lo&d64SignMask != 0
	}
	return x.Hi&d64SignMask != 0
}

func (x D128) Min(y D128) D128 {
	if binary() {
		return binD128(binMin64(binF128(x), binF128(y)))
	}
	return encode128(softMin(decode128(x), decode128(y)))
}

func (x D128) Max(y D128) D128 {
	if binary() {
		return binD128(binMax64(binF128(x), binF128(y)))
	}
	return encode128(softMax(decode128(x), decode128(y)))
}

func (x D128) Ceil() D128 {
	if binary() {
		return binD128(math.Ceil(binF128(x)))
	}
	return encode128(softCeil(decode128(x)))
}

func (x D128) Floor() D128 {
	if binary() {
		return binD128(math.Floor(binF128(x)))
	}
	return encode128(softFloor(decode128(x)))
}

func (x D128) Trunc() D128 {
	if binary() {
		return binD128(math.Trunc(binF128(x)))
	}
	return encode128(softTrunc(decode128(x)))
}

// Round rounds half away from zero.
func (x D128) Round() D128 {
	if binary() {
		return binD128(math.Round(binF128(x)))
	}
	return encode128(softRound(decode128(x)))
}

func (x D128) Eq(y D128) bool {
	if binary() {
		return binF128(x) == binF128(y)
	}
	c, ordered := softCmp(decode128(x), decode128(y))
	return ordered && c == 0
}

func (x D128) Ne(y D128) bool { return !x.Eq(y) }

func (x D128) Lt(y D128) bool {
	if binary() {
		return binF128(x) < binF128(y)
	}
	c, ordered := softCmp(decode128(x), decode128(y))
	return ordered && c < 0
}

func (x D128) Le(y D128) bool {
	if binary() {
		return binF128(x) <= binF128(y)
	}
	c, ordered := softCmp(decode128(x), decode128(y))
	return ordered && c <= 0
}

func (x D128) Gt(y D128) bool { return y.Lt(x) }

func (x D128) Ge(y D128) bool { return y.Le(x) }

// Cmp returns -1, 0 or +1; NaN operands compare as 0.
func (x D128) Cmp(y D128) int {
	if binary() {
		return binCmp64(binF128(x), binF128(y))
	}
	c, _ := softCmp(decode128(x), decode128(y))
	return c
}

func (x D128) IsNaN() bool {
	if binary() {
		f := binF128(x)
		return f != f
	}
	return x.Hi&d64NaNMask == d64NaNMask
}

func (x D128) IsInf(sign int) bool {
	if binary() {
		return math.IsInf(binF128(x), sign)
	}
	p := decode128(x)
	return p.cls == clInf && (sign == 0 || sign < 0 == p.neg)
}

func (x D128) IsZero() bool {
	if binary() {
		return binF128(x) == 0
	}
	p := decode128(x)
	return p.cls == clFinite && p.coef == uint128Zero
}

func (x D128) IsFinite() bool {
	if binary() {
		f := binF128(x)
		return f == f && !math.IsInf(f, 0)
	}
	return decode128(x).cls == clFinite
}

func (x D128) IsNormal() bool {
	if binary() {
		abs := math.Abs(binF128(x))
		return abs >= 0x1p-1022 && !math.IsInf(abs, 0)
	}
	return isNormalParts(decode128(x), fmt128)
}

func (x D128) ToD32() D32 {
	if binary() {
		return binD32(float32(binF128(x)))
	}
	return encode32(narrowTo(decode128(x), fmt32))
}

func (x D128) ToD64() D64 {
	if binary() {
		return binD64(binF128(x))
	}
	return encode64(narrowTo(decode128(x), fmt64))
}

func (x D128) Float32() float32 {
	if binary() {
		return float32(binF128(x))
	}
	return toFloat32(decode128(x))
}

func (x D128) Float64() float64 {
	if binary() {
		return binF128(x)
	}
	return toFloat64(decode128(x))
}

// Int32 truncates toward zero, saturating at the int32 range; NaN
// converts to 0.
func (x D128) Int32() int32 {
	if binary() {
		return binToInt32(binF128(x))
	}
	return toInt32(decode128(x))
}

func (x D128) Int64() int64 {
	if binary() {
		return binToInt64(binF128(x))
	}
	return toInt64(decode128(x))
}

func (x D128) String() string {
	return string(x.Append(nil))
}

func (x D128) Append(buf []byte) []byte {
	if binary() {
		return strconv.AppendFloat(buf, binF128(x), 'g', -1, 64)
	}
	return formatParts(buf, decode128(x), fmt128)
}
