package numrt

import (
	"github.com/cinderlang/numrt/decimal"
	"github.com/cinderlang/numrt/float16"
)

// Conversion matrix between the binary16 bit pattern, the native binary
// floats and the three decimal widths. Widening binary conversions are
// exact; narrowing conversions round to nearest, ties to even. The
// f16 decimal legs bridge through binary64, so they round in two
// nearest-even steps.

// Binary float widths.

func F16ToF32(b uint16) float32 { return f16(b).Float32() }
func F16ToF64(b uint16) float64 { return f16(b).Float64() }

func F32ToF16(f float32) uint16 { return float16.FromFloat32(f).Bits() }
func F64ToF16(f float64) uint16 { return float16.FromFloat64(f).Bits() }

// Binary to decimal. The decimal result is the correctly rounded value
// of the binary input, not a shortest-digit reading of it.

func F32ToD32(f float32) uint32 { return uint32(decimal.D32FromFloat32(f)) }
func F32ToD64(f float32) uint64 { return uint64(decimal.D64FromFloat32(f)) }
func F32ToD128(f float32) D128  { return decimal.D128FromFloat32(f) }
func F64ToD32(f float64) uint32 { return uint32(decimal.D32FromFloat64(f)) }
func F64ToD64(f float64) uint64 { return uint64(decimal.D64FromFloat64(f)) }
func F64ToD128(f float64) D128  { return decimal.D128FromFloat64(f) }
func F16ToD32(b uint16) uint32  { return uint32(decimal.D32FromFloat32(f16(b).Float32())) }
func F16ToD64(b uint16) uint64  { return uint64(decimal.D64FromFloat32(f16(b).Float32())) }
func F16ToD128(b uint16) D128   { return decimal.D128FromFloat32(f16(b).Float32()) }

// Decimal to binary.

func D32ToF32(a uint32) float32 { return d32(a).Float32() }
func D32ToF64(a uint32) float64 { return d32(a).Float64() }
func D64ToF32(a uint64) float32 { return d64(a).Float32() }
func D64ToF64(a uint64) float64 { return d64(a).Float64() }
func D128ToF32(a D128) float32  { return a.Float32() }
func D128ToF64(a D128) float64  { return a.Float64() }

func D32ToF16(a uint32) uint16 { return float16.FromFloat64(d32(a).Float64()).Bits() }
func D64ToF16(a uint64) uint16 { return float16.FromFloat64(d64(a).Float64()).Bits() }
func D128ToF16(a D128) uint16  { return float16.FromFloat64(a.Float64()).Bits() }

// Decimal widths. Widening re-encodes the same cohort member exactly.

func D32ToD64(a uint32) uint64 { return uint64(d32(a).ToD64()) }
func D32ToD128(a uint32) D128  { return d32(a).ToD128() }
func D64ToD128(a uint64) D128  { return d64(a).ToD128() }

func D64ToD32(a uint64) uint32 { return uint32(d64(a).ToD32()) }
func D128ToD32(a D128) uint32  { return uint32(a.ToD32()) }
func D128ToD64(a D128) uint64  { return uint64(a.ToD64()) }
