package float16

import "math"

// Arithmetic promotes both operands to float32, performs the native
// operation and demotes through FromFloat32. binary32 keeps more than
// twice the binary16 precision, so the result is still correctly
// rounded.

// Add returns the sum f+g.
func (f Float16) Add(g Float16) Float16 {
	return FromFloat32(f.Float32() + g.Float32())
}

// Sub returns the difference f-g.
func (f Float16) Sub(g Float16) Float16 {
	return FromFloat32(f.Float32() - g.Float32())
}

// Mul returns the product f*g.
func (f Float16) Mul(g Float16) Float16 {
	return FromFloat32(f.Float32() * g.Float32())
}

// Div returns the quotient f/g. Division by zero yields signed
// infinity, 0/0 yields NaN.
func (f Float16) Div(g Float16) Float16 {
	return FromFloat32(f.Float32() / g.Float32())
}

// Sqrt returns the square root of f.
func (f Float16) Sqrt() Float16 {
	return FromFloat64(math.Sqrt(f.Float64()))
}

// FMA returns f*g + h, with the intermediate product unrounded.
func (f Float16) FMA(g, h Float16) Float16 {
	return FromFloat64(math.FMA(f.Float64(), g.Float64(), h.Float64()))
}

// Mod returns the floating-point remainder of f/g with the sign of f.
func (f Float16) Mod(g Float16) Float16 {
	return FromFloat64(math.Mod(f.Float64(), g.Float64()))
}

// Remainder returns the IEEE 754 remainder of f/g.
func (f Float16) Remainder(g Float16) Float16 {
	return FromFloat64(math.Remainder(f.Float64(), g.Float64()))
}

// Ceil returns the least integer value greater than or equal to f.
func (f Float16) Ceil() Float16 { return FromFloat64(math.Ceil(f.Float64())) }

// Floor returns the greatest integer value less than or equal to f.
func (f Float16) Floor() Float16 { return FromFloat64(math.Floor(f.Float64())) }

// Trunc returns the integer value of f rounded toward zero.
func (f Float16) Trunc() Float16 { return FromFloat64(math.Trunc(f.Float64())) }

// Round returns the nearest integer value, rounding half away from zero.
func (f Float16) Round() Float16 { return FromFloat64(math.Round(f.Float64())) }

// Min returns the smaller of f and g. If one operand is NaN the other
// is returned.
func (f Float16) Min(g Float16) Float16 {
	if f.IsNaN() {
		return g
	}
	if g.IsNaN() {
		return f
	}
	if f.Lt(g) {
		return f
	}
	return g
}

// Max returns the larger of f and g. If one operand is NaN the other
// is returned.
func (f Float16) Max(g Float16) Float16 {
	if f.IsNaN() {
		return g
	}
	if g.IsNaN() {
		return f
	}
	if f.Gt(g) {
		return f
	}
	return g
}

// Eq reports whether f == g. +0 and -0 compare equal; a NaN operand
// makes the result false.
func (f Float16) Eq(g Float16) bool {
	if f.IsNaN() || g.IsNaN() {
		return false
	}
	return f == g || (f|g)&^signMask16 == 0
}

// Ne reports whether f != g. A NaN operand makes the result true.
func (f Float16) Ne(g Float16) bool { return !f.Eq(g) }

func (f Float16) Lt(g Float16) bool {
	if f.IsNaN() || g.IsNaN() {
		return false
	}
	return f.Float32() < g.Float32()
}

func (f Float16) Le(g Float16) bool {
	if f.IsNaN() || g.IsNaN() {
		return false
	}
	return f.Float32() <= g.Float32()
}

func (f Float16) Gt(g Float16) bool {
	if f.IsNaN() || g.IsNaN() {
		return false
	}
	return f.Float32() > g.Float32()
}

func (f Float16) Ge(g Float16) bool {
	if f.IsNaN() || g.IsNaN() {
		return false
	}
	return f.Float32() >= g.Float32()
}

// Cmp compares f and g and returns:
//
//	-1 if f <  g
//	 0 if f == g (incl. -0 == 0)
//	+1 if f >  g
//
// The comparison is quiet: if either operand is NaN, Cmp returns 0.
func (f Float16) Cmp(g Float16) int {
	if f.IsNaN() || g.IsNaN() {
		return 0
	}
	a, b := f.Float32(), g.Float32()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Transcendental functions promote, compute with the math package and
// demote the result.

func (f Float16) Sin() Float16   { return FromFloat64(math.Sin(f.Float64())) }
func (f Float16) Cos() Float16   { return FromFloat64(math.Cos(f.Float64())) }
func (f Float16) Tan() Float16   { return FromFloat64(math.Tan(f.Float64())) }
func (f Float16) Asin() Float16  { return FromFloat64(math.Asin(f.Float64())) }
func (f Float16) Acos() Float16  { return FromFloat64(math.Acos(f.Float64())) }
func (f Float16) Atan() Float16  { return FromFloat64(math.Atan(f.Float64())) }
func (f Float16) Sinh() Float16  { return FromFloat64(math.Sinh(f.Float64())) }
func (f Float16) Cosh() Float16  { return FromFloat64(math.Cosh(f.Float64())) }
func (f Float16) Tanh() Float16  { return FromFloat64(math.Tanh(f.Float64())) }
func (f Float16) Asinh() Float16 { return FromFloat64(math.Asinh(f.Float64())) }
func (f Float16) Acosh() Float16 { return FromFloat64(math.Acosh(f.Float64())) }
func (f Float16) Atanh() Float16 { return FromFloat64(math.Atanh(f.Float64())) }
func (f Float16) Exp() Float16   { return FromFloat64(math.Exp(f.Float64())) }
func (f Float16) Exp2() Float16  { return FromFloat64(math.Exp2(f.Float64())) }
func (f Float16) Expm1() Float16 { return FromFloat64(math.Expm1(f.Float64())) }
func (f Float16) Log() Float16   { return FromFloat64(math.Log(f.Float64())) }
func (f Float16) Log2() Float16  { return FromFloat64(math.Log2(f.Float64())) }
func (f Float16) Log10() Float16 { return FromFloat64(math.Log10(f.Float64())) }
func (f Float16) Log1p() Float16 { return FromFloat64(math.Log1p(f.Float64())) }
func (f Float16) Cbrt() Float16  { return FromFloat64(math.Cbrt(f.Float64())) }

func (f Float16) Atan2(g Float16) Float16 {
	return FromFloat64(math.Atan2(f.Float64(), g.Float64()))
}

func (f Float16) Pow(g Float16) Float16 {
	return FromFloat64(math.Pow(f.Float64(), g.Float64()))
}

func (f Float16) Hypot(g Float16) Float16 {
	return FromFloat64(math.Hypot(f.Float64(), g.Float64()))
}
