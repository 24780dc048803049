package decimal

import (
	"math"
	"strconv"
)

// The zero value of each type is +0 under both tiers, so no
// constructor is needed for it.

// D32NaN returns a quiet NaN.
func D32NaN() D32 {
	if binary() {
		return binD32(float32(math.NaN()))
	}
	return encode32(nanParts)
}

// D32Inf returns positive infinity if sign >= 0, negative infinity
// otherwise.
func D32Inf(sign int) D32 {
	if binary() {
		return binD32(float32(math.Inf(sign)))
	}
	return encode32(parts{cls: clInf, neg: sign < 0})
}

// D32Max returns the largest finite decimal32, 9999999e90.
func D32Max() D32 {
	if binary() {
		return binD32(math.MaxFloat32)
	}
	return encode32(parts{coef: pow10tab[7].Sub(uint128One), exp: fmt32.emax})
}

// D32MinPositive returns the smallest positive value, 1e-101.
func D32MinPositive() D32 {
	if binary() {
		return binD32(math.SmallestNonzeroFloat32)
	}
	return encode32(parts{coef: uint128One, exp: fmt32.emin})
}

// D32Epsilon returns the difference between 1 and the next larger
// representable value, 1e-6.
func D32Epsilon() D32 {
	if binary() {
		return binD32(0x1p-23)
	}
	return encode32(parts{coef: uint128One, exp: 1 - fmt32.digits})
}

func D32FromFloat32(f float32) D32 {
	if binary() {
		return binD32(f)
	}
	return encode32(fromFloat(float64(f), fmt32))
}

func D32FromFloat64(f float64) D32 {
	if binary() {
		return binD32(float32(f))
	}
	return encode32(fromFloat(f, fmt32))
}

func D32FromInt32(v int32) D32 {
	if binary() {
		return binD32(float32(v))
	}
	return encode32(fromInt64(int64(v), fmt32))
}

func D32FromInt64(v int64) D32 {
	if binary() {
		return binD32(float32(v))
	}
	return encode32(fromInt64(v, fmt32))
}

func D32FromUint32(v uint32) D32 {
	if binary() {
		return binD32(float32(v))
	}
	return encode32(fromUint64(uint64(v), fmt32))
}

func D32FromUint64(v uint64) D32 {
	if binary() {
		return binD32(float32(v))
	}
	return encode32(fromUint64(v, fmt32))
}

// D32FromString parses s. Malformed input yields NaN on the software
// tier and +0 on the binary tier, matching what each engine's parser
// reports.
func D32FromString(s string) D32 {
	if binary() {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil && f == 0 {
			return D32(0)
		}
		return binD32(float32(f))
	}
	p, ok := parseParts(s, fmt32)
	if !ok {
		return encode32(nanParts)
	}
	return encode32(p)
}

func (x D32) Add(y D32) D32 {
	if binary() {
		return binD32(binF32(x) + binF32(y))
	}
	return encode32(softAdd(decode32(x), decode32(y), fmt32))
}

func (x D32) Sub(y D32) D32 {
	if binary() {
		return binD32(binF32(x) - binF32(y))
	}
	return encode32(softSub(decode32(x), decode32(y), fmt32))
}

func (x D32) Mul(y D32) D32 {
	if binary() {
		return binD32(binF32(x) * binF32(y))
	}
	return encode32(softMul(decode32(x), decode32(y), fmt32))
}

func (x D32) Div(y D32) D32 {
	if binary() {
		return binD32(binF32(x) / binF32(y))
	}
	return encode32(softDiv(decode32(x), decode32(y), fmt32))
}

func (x D32) Sqrt() D32 {
	if binary() {
		return binD32(float32(math.Sqrt(float64(binF32(x)))))
	}
	return encode32(softSqrt(decode32(x), fmt32))
}

// FMA returns x*y + z with a single rounding.
func (x D32) FMA(y, z D32) D32 {
	if binary() {
		return binD32(float32(math.FMA(float64(binF32(x)), float64(binF32(y)), float64(binF32(z)))))
	}
	return encode32(softFMA(decode32(x), decode32(y), decode32(z), fmt32))
}

// Mod returns the truncated-division remainder, exact and with the
// sign of x.
func (x D32) Mod(y D32) D32 {
	if binary() {
		return binD32(float32(math.Mod(float64(binF32(x)), float64(binF32(y)))))
	}
	return encode32(softFmod(decode32(x), decode32(y), fmt32))
}

func (x D32) Neg() D32 { return x ^ d32SignMask }

func (x D32) Abs() D32 { return x &^ d32SignMask }

func (x D32) CopySign(y D32) D32 {
	return x&^d32SignMask | y&d32SignMask
}

func (x D32) Min(y D32) D32 {
	if binary() {
		return binD32(float32(binMin64(float64(binF32(x)), float64(binF32(y)))))
	}
	return encode32(softMin(decode32(x), decode32(y)))
}

func (x D32) Max(y D32) D32 {
	if binary() {
		return binD32(float32(binMax64(float64(binF32(x)), float64(binF32(y)))))
	}
	return encode32(softMax(decode32(x), decode32(y)))
}

func (x D32) Ceil() D32 {
	if binary() {
		return binD32(float32(math.Ceil(float64(binF32(x)))))
	}
	return encode32(softCeil(decode32(x)))
}

func (x D32) Floor() D32 {
	if binary() {
		return binD32(float32(math.Floor(float64(binF32(x)))))
	}
	return encode32(softFloor(decode32(x)))
}

func (x D32) Trunc() D32 {
	if binary() {
		return binD32(float32(math.Trunc(float64(binF32(x)))))
	}
	return encode32(softTrunc(decode32(x)))
}

// Round rounds half away from zero.
func (x D32) Round() D32 {
	if binary() {
		return binD32(float32(math.Round(float64(binF32(x)))))
	}
	return encode32(softRound(decode32(x)))
}

func (x D32) Eq(y D32) bool {
	if binary() {
		return binF32(x) == binF32(y)
	}
	c, ordered := softCmp(decode32(x), decode32(y))
	return ordered && c == 0
}

func (x D32) Ne(y D32) bool { return !x.Eq(y) }

func (x D32) Lt(y D32) bool {
	if binary() {
		return binF32(x) < binF32(y)
	}
	c, ordered := softCmp(decode32(x), decode32(y))
	return ordered && c < 0
}

func (x D32) Le(y D32) bool {
	if binary() {
		return binF32(x) <= binF32(y)
	}
	c, ordered := softCmp(decode32(x), decode32(y))
	return ordered && c <= 0
}

func (x D32) Gt(y D32) bool { return y.Lt(x) }

func (x D32) Ge(y D32) bool { return y.Le(x) }

// Cmp returns -1, 0 or +1; NaN operands compare as 0.
func (x D32) Cmp(y D32) int {
	if binary() {
		return binCmp64(float64(binF32(x)), float64(binF32(y)))
	}
	c, _ := softCmp(decode32(x), decode32(y))
	return c
}

func (x D32) IsNaN() bool {
	if binary() {
		f := binF32(x)
		return f != f
	}
	return uint32(x)&d32NaNMask == d32NaNMask
}

func (x D32) IsInf(sign int) bool {
	if binary() {
		return math.IsInf(float64(binF32(x)), sign)
	}
	p := decode32(x)
	return p.cls == clInf && (sign == 0 || sign < 0 == p.neg)
}

func (x D32) IsZero() bool {
	if binary() {
		return binF32(x) == 0
	}
	p := decode32(x)
	return p.cls == clFinite && p.coef == uint128Zero
}

func (x D32) IsFinite() bool {
	if binary() {
		f := binF32(x)
		return f == f && !math.IsInf(float64(f), 0)
	}
	return decode32(x).cls == clFinite
}

func (x D32) IsNormal() bool {
	if binary() {
		abs := math.Abs(float64(binF32(x)))
		return abs >= 0x1p-126 && !math.IsInf(abs, 0)
	}
	return isNormalParts(decode32(x), fmt32)
}

func (x D32) Signbit() bool { return x&d32SignMask != 0 }

func (x D32) ToD64() D64 {
	if binary() {
		return binD64(float64(binF32(x)))
	}
	return encode64(decode32(x))
}

func (x D32) ToD128() D128 {
	if binary() {
		return binD128(float64(binF32(x)))
	}
	return encode128(decode32(x))
}

func (x D32) Float32() float32 {
	if binary() {
		return binF32(x)
	}
	return toFloat32(decode32(x))
}

func (x D32) Float64() float64 {
	if binary() {
		return float64(binF32(x))
	}
	return toFloat64(decode32(x))
}

// Int32 truncates toward zero, saturating at the int32 range; NaN
// converts to 0.
func (x D32) Int32() int32 {
	if binary() {
		return binToInt32(float64(binF32(x)))
	}
	return toInt32(decode32(x))
}

func (x D32) Int64() int64 {
	if binary() {
		return binToInt64(float64(binF32(x)))
	}
	return toInt64(decode32(x))
}

func (x D32) String() string {
	return string(x.Append(nil))
}

func (x D32) Append(buf []byte) []byte {
	if binary() {
		return strconv.AppendFloat(buf, float64(binF32(x)), 'g', -1, 32)
	}
	return formatParts(buf, decode32(x), fmt32)
}
