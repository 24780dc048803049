package numrt

import "github.com/cinderlang/numrt/decimal"

// Decimal32 operations on raw bit patterns.

func d32(b uint32) decimal.D32 { return decimal.D32(b) }

func D32NaN() uint32         { return uint32(decimal.D32NaN()) }
func D32Inf(sign int) uint32 { return uint32(decimal.D32Inf(sign)) }

func D32MaxValue() uint32    { return uint32(decimal.D32Max()) }
func D32MinPositive() uint32 { return uint32(decimal.D32MinPositive()) }
func D32Epsilon() uint32     { return uint32(decimal.D32Epsilon()) }

func D32Add(a, b uint32) uint32 { return uint32(d32(a).Add(d32(b))) }
func D32Sub(a, b uint32) uint32 { return uint32(d32(a).Sub(d32(b))) }
func D32Mul(a, b uint32) uint32 { return uint32(d32(a).Mul(d32(b))) }
func D32Div(a, b uint32) uint32 { return uint32(d32(a).Div(d32(b))) }

func D32Sqrt(a uint32) uint32      { return uint32(d32(a).Sqrt()) }
func D32FMA(a, b, c uint32) uint32 { return uint32(d32(a).FMA(d32(b), d32(c))) }
func D32Mod(a, b uint32) uint32    { return uint32(d32(a).Mod(d32(b))) }

func D32Neg(a uint32) uint32         { return uint32(d32(a).Neg()) }
func D32Abs(a uint32) uint32         { return uint32(d32(a).Abs()) }
func D32CopySign(a, b uint32) uint32 { return uint32(d32(a).CopySign(d32(b))) }

func D32Min(a, b uint32) uint32 { return uint32(d32(a).Min(d32(b))) }
func D32Max(a, b uint32) uint32 { return uint32(d32(a).Max(d32(b))) }

func D32Ceil(a uint32) uint32  { return uint32(d32(a).Ceil()) }
func D32Floor(a uint32) uint32 { return uint32(d32(a).Floor()) }
func D32Trunc(a uint32) uint32 { return uint32(d32(a).Trunc()) }
func D32Round(a uint32) uint32 { return uint32(d32(a).Round()) }

func D32Eq(a, b uint32) bool { return d32(a).Eq(d32(b)) }
func D32Ne(a, b uint32) bool { return d32(a).Ne(d32(b)) }
func D32Lt(a, b uint32) bool { return d32(a).Lt(d32(b)) }
func D32Le(a, b uint32) bool { return d32(a).Le(d32(b)) }
func D32Gt(a, b uint32) bool { return d32(a).Gt(d32(b)) }
func D32Ge(a, b uint32) bool { return d32(a).Ge(d32(b)) }

// D32Cmp returns -1, 0 or +1; NaN operands compare as 0.
func D32Cmp(a, b uint32) int { return d32(a).Cmp(d32(b)) }

func D32IsNaN(a uint32) bool    { return d32(a).IsNaN() }
func D32IsInf(a uint32) bool    { return d32(a).IsInf(0) }
func D32IsFinite(a uint32) bool { return d32(a).IsFinite() }
func D32IsNormal(a uint32) bool { return d32(a).IsNormal() }
func D32IsZero(a uint32) bool   { return d32(a).IsZero() }
func D32Signbit(a uint32) bool  { return d32(a).Signbit() }

func D32FromI32(v int32) uint32  { return uint32(decimal.D32FromInt32(v)) }
func D32FromI64(v int64) uint32  { return uint32(decimal.D32FromInt64(v)) }
func D32FromU32(v uint32) uint32 { return uint32(decimal.D32FromUint32(v)) }
func D32FromU64(v uint64) uint32 { return uint32(decimal.D32FromUint64(v)) }

// D32ToI32 truncates toward zero and saturates; NaN converts to 0.
func D32ToI32(a uint32) int32 { return d32(a).Int32() }
func D32ToI64(a uint32) int64 { return d32(a).Int64() }

func D32FromString(s string) uint32 { return uint32(decimal.D32FromString(s)) }
func D32ToString(a uint32) string   { return d32(a).String() }
