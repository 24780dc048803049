// Package float16 implements the IEEE 754 binary16 floating point type
// used by the runtime for half-precision values.
//
// Values are plain 16-bit patterns. Arithmetic promotes to binary32,
// computes with the native operation, and demotes the result; binary32
// carries enough precision that +, -, *, / and square root remain
// correctly rounded for binary16 operands. Classification works on the
// bit pattern directly.
package float16

import (
	"math"
	"math/bits"
)

type Float16 uint16

const (
	signMask16 = 0x8000
	expMask16  = 0x7c00
	fracMask16 = 0x03ff
	shift16    = 10
	bias16     = 15
	mask16     = 0x1f

	uvnan    = 0x7e00
	uvinf    = 0x7c00
	uvneginf = 0xfc00
)

// Limits of the binary16 format.
const (
	MaxValue       Float16 = 0x7bff // 65504, largest finite value
	SmallestNormal Float16 = 0x0400 // 2^-14
	Epsilon        Float16 = 0x1400 // 2^-10, smallest x with 1+x != 1
)

// NaN returns the canonical quiet NaN.
func NaN() Float16 { return uvnan }

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Float16 {
	if sign >= 0 {
		return uvinf
	}
	return uvneginf
}

// Frombits returns the floating point number corresponding
// to the IEEE 754 binary representation b.
func Frombits(b uint16) Float16 { return Float16(b) }

// Bits returns the IEEE 754 binary representation of f.
func (f Float16) Bits() uint16 { return uint16(f) }

// FromFloat32 converts x to binary16, rounding to nearest even.
// Values below 2^-24 in magnitude flush to signed zero; values beyond
// the finite range become signed infinity. A NaN stays NaN with the
// sign and the top payload bits preserved.
func FromFloat32(x float32) Float16 {
	b := math.Float32bits(x)
	sign := uint16(b>>16) & signMask16
	exp := int(b>>23&0xff) - 127 + bias16
	frac := uint16(b>>13) & fracMask16

	if b&^uint32(1<<31) == 0 {
		return Float16(sign)
	}

	if exp >= mask16 {
		if b&^uint32(1<<31) > 0x7f800000 {
			// NaN; keep a fragment of the payload
			return Float16(sign | uvnan | frac>>3)
		}
		return Float16(sign | uvinf)
	}

	if exp <= 0 {
		if exp < -shift16 {
			// too small even to round up to a subnormal
			return Float16(sign)
		}
		// subnormal; round the full 24-bit significand to nearest even
		m := b&0x7fffff | 1<<23
		s := uint(14 - exp)
		frac = uint16(m >> s)
		if m>>(s-1)&1 != 0 && (m&(1<<(s-1)-1) != 0 || frac&1 != 0) {
			frac++ // may carry into the smallest normal
		}
		return Float16(sign | frac)
	}

	// round to nearest even
	round := b >> 12 & 1
	sticky := b&0x0fff != 0
	if round != 0 && (sticky || frac&1 != 0) {
		frac++
		if frac > fracMask16 {
			frac = 0
			exp++
			if exp >= mask16 {
				return Float16(sign | uvinf)
			}
		}
	}
	return Float16(sign | uint16(exp)<<shift16 | frac)
}

// FromFloat64 converts x to binary16 with a single rounding step.
func FromFloat64(x float64) Float16 {
	b := math.Float64bits(x)
	sign := uint16(b>>48) & signMask16
	exp := int(b>>52&0x7ff) - 1023 + bias16
	frac := uint16(b>>42) & fracMask16

	if b&^uint64(1<<63) == 0 {
		return Float16(sign)
	}

	if exp >= mask16 {
		if b&^uint64(1<<63) > 0x7ff0000000000000 {
			return Float16(sign | uvnan | frac>>3)
		}
		return Float16(sign | uvinf)
	}

	if exp <= 0 {
		if exp < -shift16 {
			return Float16(sign)
		}
		m := b&(1<<52-1) | 1<<52
		s := uint(43 - exp)
		frac = uint16(m >> s)
		if m>>(s-1)&1 != 0 && (m&(1<<(s-1)-1) != 0 || frac&1 != 0) {
			frac++
		}
		return Float16(sign | frac)
	}

	round := b >> 41 & 1
	sticky := b&(1<<41-1) != 0
	if round != 0 && (sticky || frac&1 != 0) {
		frac++
		if frac > fracMask16 {
			frac = 0
			exp++
			if exp >= mask16 {
				return Float16(sign | uvinf)
			}
		}
	}
	return Float16(sign | uint16(exp)<<shift16 | frac)
}

// Float32 returns the float32 representation of f. The conversion is exact.
func (f Float16) Float32() float32 {
	sign := uint32(f&signMask16) << 16
	exp := uint32(f>>shift16) & mask16
	frac := uint32(f & fracMask16)

	if exp == 0 {
		// subnormal number
		if frac == 0 {
			return math.Float32frombits(sign)
		}
		l := bits.Len32(frac)
		frac = (frac << (shift16 - l + 1)) & fracMask16
		exp = 127 - bias16 - uint32(shift16-l+1) + 1
	} else if exp == mask16 {
		// infinity or NaN
		exp = 255
	} else {
		// normal number
		exp += 127 - bias16
	}
	return math.Float32frombits(sign | exp<<23 | frac<<(23-shift16))
}

// Float64 returns the float64 representation of f. The conversion is exact.
func (f Float16) Float64() float64 {
	sign := uint64(f&signMask16) << 48
	exp := uint64(f>>shift16) & mask16
	frac := uint64(f & fracMask16)

	if exp == 0 {
		// subnormal number
		if frac == 0 {
			return math.Float64frombits(sign)
		}
		l := bits.Len64(frac)
		frac = (frac << (shift16 - uint64(l) + 1)) & fracMask16
		exp = 1023 - bias16 - (shift16 - uint64(l) + 1) + 1
	} else if exp == mask16 {
		// infinity or NaN
		exp = 2047
	} else {
		// normal number
		exp += 1023 - bias16
	}
	return math.Float64frombits(sign | exp<<52 | frac<<(52-shift16))
}

// IsNaN reports whether f is a "not-a-number" value.
func (f Float16) IsNaN() bool {
	return f&expMask16 == expMask16 && f&fracMask16 != 0
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func (f Float16) IsInf(sign int) bool {
	return sign >= 0 && f == uvinf || sign <= 0 && f == uvneginf
}

// IsFinite reports whether f is neither an infinity nor NaN.
func (f Float16) IsFinite() bool { return f&expMask16 != expMask16 }

// IsNormal reports whether f is a normal number: finite, nonzero and
// not subnormal.
func (f Float16) IsNormal() bool {
	exp := f & expMask16
	return exp != 0 && exp != expMask16
}

// IsZero reports whether f is +0 or -0.
func (f Float16) IsZero() bool { return f&^signMask16 == 0 }

// Signbit reports whether f is negative or negative zero.
func (f Float16) Signbit() bool { return f&signMask16 != 0 }

// Neg returns -f. The sign of a NaN or zero is flipped like any other.
func (f Float16) Neg() Float16 { return f ^ signMask16 }

// Abs returns the absolute value of f.
func (f Float16) Abs() Float16 { return f &^ signMask16 }

// CopySign returns a value with the magnitude of f and the sign of g.
func (f Float16) CopySign(g Float16) Float16 {
	return f&^signMask16 | g&signMask16
}
