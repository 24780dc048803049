package numrt

import (
	"errors"
	"strconv"

	"github.com/cinderlang/numrt/float16"
)

// Half-precision operations on raw binary16 bit patterns.

const (
	F16MaxValue       uint16 = 0x7bff // 65504
	F16SmallestNormal uint16 = 0x0400 // 2^-14
	F16Epsilon        uint16 = 0x1400 // 2^-10
)

func F16NaN() uint16         { return float16.NaN().Bits() }
func F16Inf(sign int) uint16 { return float16.Inf(sign).Bits() }

func f16(b uint16) float16.Float16 { return float16.Frombits(b) }

func F16Add(a, b uint16) uint16 { return f16(a).Add(f16(b)).Bits() }
func F16Sub(a, b uint16) uint16 { return f16(a).Sub(f16(b)).Bits() }
func F16Mul(a, b uint16) uint16 { return f16(a).Mul(f16(b)).Bits() }
func F16Div(a, b uint16) uint16 { return f16(a).Div(f16(b)).Bits() }

func F16Sqrt(a uint16) uint16      { return f16(a).Sqrt().Bits() }
func F16FMA(a, b, c uint16) uint16 { return f16(a).FMA(f16(b), f16(c)).Bits() }
func F16Mod(a, b uint16) uint16    { return f16(a).Mod(f16(b)).Bits() }
func F16Remainder(a, b uint16) uint16 {
	return f16(a).Remainder(f16(b)).Bits()
}

func F16Neg(a uint16) uint16         { return f16(a).Neg().Bits() }
func F16Abs(a uint16) uint16         { return f16(a).Abs().Bits() }
func F16CopySign(a, b uint16) uint16 { return f16(a).CopySign(f16(b)).Bits() }

func F16Min(a, b uint16) uint16 { return f16(a).Min(f16(b)).Bits() }
func F16Max(a, b uint16) uint16 { return f16(a).Max(f16(b)).Bits() }

func F16Ceil(a uint16) uint16  { return f16(a).Ceil().Bits() }
func F16Floor(a uint16) uint16 { return f16(a).Floor().Bits() }
func F16Trunc(a uint16) uint16 { return f16(a).Trunc().Bits() }
func F16Round(a uint16) uint16 { return f16(a).Round().Bits() }

func F16Eq(a, b uint16) bool { return f16(a).Eq(f16(b)) }
func F16Ne(a, b uint16) bool { return f16(a).Ne(f16(b)) }
func F16Lt(a, b uint16) bool { return f16(a).Lt(f16(b)) }
func F16Le(a, b uint16) bool { return f16(a).Le(f16(b)) }
func F16Gt(a, b uint16) bool { return f16(a).Gt(f16(b)) }
func F16Ge(a, b uint16) bool { return f16(a).Ge(f16(b)) }

// F16Cmp returns -1, 0 or +1; NaN operands compare as 0.
func F16Cmp(a, b uint16) int { return f16(a).Cmp(f16(b)) }

func F16IsNaN(a uint16) bool    { return f16(a).IsNaN() }
func F16IsInf(a uint16) bool    { return f16(a).IsInf(0) }
func F16IsFinite(a uint16) bool { return f16(a).IsFinite() }
func F16IsNormal(a uint16) bool { return f16(a).IsNormal() }
func F16IsZero(a uint16) bool   { return f16(a).IsZero() }
func F16Signbit(a uint16) bool  { return f16(a).Signbit() }

func F16Sin(a uint16) uint16   { return f16(a).Sin().Bits() }
func F16Cos(a uint16) uint16   { return f16(a).Cos().Bits() }
func F16Tan(a uint16) uint16   { return f16(a).Tan().Bits() }
func F16Asin(a uint16) uint16  { return f16(a).Asin().Bits() }
func F16Acos(a uint16) uint16  { return f16(a).Acos().Bits() }
func F16Atan(a uint16) uint16  { return f16(a).Atan().Bits() }
func F16Sinh(a uint16) uint16  { return f16(a).Sinh().Bits() }
func F16Cosh(a uint16) uint16  { return f16(a).Cosh().Bits() }
func F16Tanh(a uint16) uint16  { return f16(a).Tanh().Bits() }
func F16Asinh(a uint16) uint16 { return f16(a).Asinh().Bits() }
func F16Acosh(a uint16) uint16 { return f16(a).Acosh().Bits() }
func F16Atanh(a uint16) uint16 { return f16(a).Atanh().Bits() }

func F16Exp(a uint16) uint16   { return f16(a).Exp().Bits() }
func F16Exp2(a uint16) uint16  { return f16(a).Exp2().Bits() }
func F16Expm1(a uint16) uint16 { return f16(a).Expm1().Bits() }
func F16Log(a uint16) uint16   { return f16(a).Log().Bits() }
func F16Log2(a uint16) uint16  { return f16(a).Log2().Bits() }
func F16Log10(a uint16) uint16 { return f16(a).Log10().Bits() }
func F16Log1p(a uint16) uint16 { return f16(a).Log1p().Bits() }

func F16Atan2(a, b uint16) uint16 { return f16(a).Atan2(f16(b)).Bits() }
func F16Pow(a, b uint16) uint16   { return f16(a).Pow(f16(b)).Bits() }
func F16Cbrt(a uint16) uint16     { return f16(a).Cbrt().Bits() }
func F16Hypot(a, b uint16) uint16 { return f16(a).Hypot(f16(b)).Bits() }

// F16FromString parses s, rounding to nearest. Malformed input yields
// NaN; overflow yields an infinity and underflow a zero.
func F16FromString(s string) uint16 {
	x, err := float16.Parse(s)
	if errors.Is(err, strconv.ErrSyntax) {
		return float16.NaN().Bits()
	}
	return x.Bits()
}

func F16ToString(a uint16) string { return f16(a).String() }
