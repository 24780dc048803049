package numrt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestF16Arithmetic(t *testing.T) {
	a := F16FromString("1.5")
	b := F16FromString("2.25")
	assert.Equal(t, uint16(0x3e00), a)
	assert.Equal(t, uint16(0x4080), b)
	sum := F16Add(a, b)
	assert.Equal(t, uint16(0x4380), sum) // 3.75
	assert.Equal(t, "3.75", F16ToString(sum))

	assert.True(t, F16IsNaN(F16Add(F16Inf(1), F16Inf(-1))))
	assert.True(t, F16IsNaN(F16Div(0, 0)))
	assert.Equal(t, F16Inf(1), F16Div(F16FromString("1"), 0))
}

func TestF16Saturation(t *testing.T) {
	assert.Equal(t, uint16(0x7bff), F16FromString("65504"))
	assert.Equal(t, uint16(0x7c00), F16FromString("65520"))
	assert.Equal(t, uint16(0x7bff), F32ToF16(65504))
	assert.Equal(t, uint16(0x7c00), F32ToF16(65520))
	assert.Equal(t, uint16(0xfc00), F64ToF16(-65520))
}

func TestF16FloatRoundTrip(t *testing.T) {
	for _, b := range []uint16{0x0000, 0x8000, 0x0001, 0x03ff, 0x0400, 0x3c00, 0x3e00, 0x7bff, 0x7c00, 0xfc00} {
		assert.Equal(t, b, F32ToF16(F16ToF32(b)), "bits %#04x", b)
		assert.Equal(t, b, F64ToF16(F16ToF64(b)), "bits %#04x", b)
	}
}

func TestF16Transcendentals(t *testing.T) {
	one := F16FromString("1")
	two := F16FromString("2")

	assert.Equal(t, uint16(0), F16Sin(0))
	assert.Equal(t, one, F16Cos(0))
	assert.Equal(t, uint16(0), F16Tan(0))
	assert.Equal(t, uint16(0), F16Asin(0))
	assert.Equal(t, uint16(0), F16Atan(0))
	assert.Equal(t, uint16(0), F16Sinh(0))
	assert.Equal(t, one, F16Cosh(0))
	assert.Equal(t, uint16(0), F16Tanh(0))
	assert.Equal(t, uint16(0), F16Asinh(0))
	assert.Equal(t, uint16(0), F16Acosh(one))
	assert.Equal(t, uint16(0), F16Atanh(0))

	assert.Equal(t, one, F16Exp(0))
	assert.Equal(t, two, F16Exp2(one))
	assert.Equal(t, uint16(0), F16Expm1(0))
	assert.Equal(t, uint16(0), F16Log(one))
	assert.Equal(t, one, F16Log2(two))
	assert.Equal(t, one, F16Log10(F16FromString("10")))
	assert.Equal(t, uint16(0), F16Log1p(0))

	assert.Equal(t, uint16(0), F16Atan2(0, one))
	assert.Equal(t, F16Div(F16FromString("3.14159"), F16FromString("4")),
		F16Atan2(one, one))

	halfPi := F16Acos(0)
	assert.Equal(t, halfPi, F16Asin(one))
}

func TestF16IsZero(t *testing.T) {
	assert.True(t, F16IsZero(0x0000))
	assert.True(t, F16IsZero(0x8000))
	assert.False(t, F16IsZero(0x0001))
	assert.False(t, F16IsZero(F16NaN()))
}

func TestD64Arithmetic(t *testing.T) {
	sum := D64Add(D64FromString("1.5"), D64FromString("2.25"))
	assert.Equal(t, "3.75", D64ToString(sum))

	// Decimal tier: exact where binary floats are not.
	s := D64Add(D64FromString("0.1"), D64FromString("0.2"))
	assert.Equal(t, "0.3", D64ToString(s))
	assert.True(t, D64Eq(s, D64FromString("0.3")))

	assert.True(t, D64IsNaN(D64Sub(D64Inf(1), D64Inf(1))))
	assert.True(t, D64IsInf(D64Div(D64FromI32(1), 0)))
}

func TestD32D128Arithmetic(t *testing.T) {
	assert.Equal(t, "0.3", D32ToString(D32Add(D32FromString("0.1"), D32FromString("0.2"))))

	third := D128Div(D128FromI32(1), D128FromI32(3))
	assert.Equal(t, "0.3333333333333333333333333333333333", D128ToString(third))
	assert.Equal(t, int64(-42), D128ToI64(D128FromI64(-42)))
}

func TestBinaryToDecimal(t *testing.T) {
	// The decimal result is the rounded value of the binary input.
	assert.Equal(t, "0.5", D64ToString(F64ToD64(0.5)))
	assert.Equal(t, "0.1", D64ToString(F64ToD64(0.1)))
	assert.Equal(t, "0.1000000001490116", D64ToString(F32ToD64(0.1)))
	assert.Equal(t, "0.1000000000000000055511151231257827", D128ToString(F64ToD128(0.1)))

	// 0x3555 is 1365/4096 exactly.
	assert.Equal(t, "0.333251953125", D64ToString(F16ToD64(0x3555)))
	assert.Equal(t, "0.333252", D32ToString(F16ToD32(0x3555)))

	assert.True(t, D32IsNaN(F32ToD32(float32(math.NaN()))))
	assert.True(t, D64IsInf(F64ToD64(math.Inf(-1))))
	assert.True(t, D64Signbit(F64ToD64(math.Inf(-1))))
}

func TestDecimalToBinary(t *testing.T) {
	assert.Equal(t, 0.5, D64ToF64(D64FromString("0.5")))
	assert.Equal(t, float32(0.1), D32ToF32(D32FromString("0.1")))
	assert.Equal(t, 0.1, D128ToF64(D128FromString("0.1")))

	assert.Equal(t, uint16(0x3555), D64ToF16(D64FromString("0.3333")))
	assert.Equal(t, uint16(0x7c00), D64ToF16(D64FromString("1e10")))
	assert.True(t, F16IsNaN(D128ToF16(D128NaN())))
}

func TestDecimalWidths(t *testing.T) {
	// Widening preserves the cohort member exactly.
	assert.Equal(t, "1.50", D64ToString(D32ToD64(D32FromString("1.50"))))
	assert.Equal(t, "1.50", D128ToString(D32ToD128(D32FromString("1.50"))))
	assert.Equal(t, "1.50", D128ToString(D64ToD128(D64FromString("1.50"))))

	// Narrowing rounds to nearest, ties to even.
	assert.Equal(t, "1.234568", D32ToString(D64ToD32(D64FromString("1.23456789"))))
	assert.Equal(t, "3.141592653589793",
		D64ToString(D128ToD64(D128FromString("3.141592653589793238462643383279503"))))
	assert.True(t, D32IsInf(D128ToD32(D128FromString("1e200"))))

	// ordering survives widening for every pair of a mixed sample, and
	// narrow-then-widen is the identity
	sample := []uint32{
		D32FromString("0"), D32FromString("-0"),
		D32FromString("1"), D32FromString("-1"),
		D32FromString("2.5"), D32FromString("1e-101"),
		D32FromString("9999999e90"),
		D32Inf(1), D32Inf(-1), D32NaN(),
	}
	for _, x := range sample {
		for _, y := range sample {
			want := D32Cmp(x, y)
			assert.Equal(t, want, D64Cmp(D32ToD64(x), D32ToD64(y)), "%#08x vs %#08x", x, y)
			assert.Equal(t, want, D128Cmp(D32ToD128(x), D32ToD128(y)), "%#08x vs %#08x", x, y)
		}
		if !D32IsNaN(x) {
			assert.Equal(t, x, D64ToD32(D32ToD64(x)), "%#08x", x)
			assert.Equal(t, x, D128ToD32(D32ToD128(x)), "%#08x", x)
		}
	}
}

func TestDecimalTierSelection(t *testing.T) {
	prev := DecimalTier()
	defer SelectDecimalTier(prev)

	require.Equal(t, TierSoftware, SelectDecimalTier(TierNative))
	require.Equal(t, TierSoftware, DecimalTier())

	require.Equal(t, TierBinary, SelectDecimalTier(TierBinary))
	b := D64Add(D64FromString("0.1"), D64FromString("0.2"))
	assert.Equal(t, math.Float64bits(0.1+0.2), uint64(b))
}
