package numrt

import "github.com/cinderlang/numrt/decimal"

// Decimal64 operations on raw bit patterns.

func d64(b uint64) decimal.D64 { return decimal.D64(b) }

func D64NaN() uint64         { return uint64(decimal.D64NaN()) }
func D64Inf(sign int) uint64 { return uint64(decimal.D64Inf(sign)) }

func D64MaxValue() uint64    { return uint64(decimal.D64Max()) }
func D64MinPositive() uint64 { return uint64(decimal.D64MinPositive()) }
func D64Epsilon() uint64     { return uint64(decimal.D64Epsilon()) }

func D64Add(a, b uint64) uint64 { return uint64(d64(a).Add(d64(b))) }
func D64Sub(a, b uint64) uint64 { return uint64(d64(a).Sub(d64(b))) }
func D64Mul(a, b uint64) uint64 { return uint64(d64(a).Mul(d64(b))) }
func D64Div(a, b uint64) uint64 { return uint64(d64(a).Div(d64(b))) }

func D64Sqrt(a uint64) uint64      { return uint64(d64(a).Sqrt()) }
func D64FMA(a, b, c uint64) uint64 { return uint64(d64(a).FMA(d64(b), d64(c))) }
func D64Mod(a, b uint64) uint64    { return uint64(d64(a).Mod(d64(b))) }

func D64Neg(a uint64) uint64         { return uint64(d64(a).Neg()) }
func D64Abs(a uint64) uint64         { return uint64(d64(a).Abs()) }
func D64CopySign(a, b uint64) uint64 { return uint64(d64(a).CopySign(d64(b))) }

func D64Min(a, b uint64) uint64 { return uint64(d64(a).Min(d64(b))) }
func D64Max(a, b uint64) uint64 { return uint64(d64(a).Max(d64(b))) }

func D64Ceil(a uint64) uint64  { return uint64(d64(a).Ceil()) }
func D64Floor(a uint64) uint64 { return uint64(d64(a).Floor()) }
func D64Trunc(a uint64) uint64 { return uint64(d64(a).Trunc()) }
func D64Round(a uint64) uint64 { return uint64(d64(a).Round()) }

func D64Eq(a, b uint64) bool { return d64(a).Eq(d64(b)) }
func D64Ne(a, b uint64) bool { return d64(a).Ne(d64(b)) }
func D64Lt(a, b uint64) bool { return d64(a).Lt(d64(b)) }
func D64Le(a, b uint64) bool { return d64(a).Le(d64(b)) }
func D64Gt(a, b uint64) bool { return d64(a).Gt(d64(b)) }
func D64Ge(a, b uint64) bool { return d64(a).Ge(d64(b)) }

// D64Cmp returns -1, 0 or +1; NaN operands compare as 0.
func D64Cmp(a, b uint64) int { return d64(a).Cmp(d64(b)) }

func D64IsNaN(a uint64) bool    { return d64(a).IsNaN() }
func D64IsInf(a uint64) bool    { return d64(a).IsInf(0) }
func D64IsFinite(a uint64) bool { return d64(a).IsFinite() }
func D64IsNormal(a uint64) bool { return d64(a).IsNormal() }
func D64IsZero(a uint64) bool   { return d64(a).IsZero() }
func D64Signbit(a uint64) bool  { return d64(a).Signbit() }

func D64FromI32(v int32) uint64  { return uint64(decimal.D64FromInt32(v)) }
func D64FromI64(v int64) uint64  { return uint64(decimal.D64FromInt64(v)) }
func D64FromU32(v uint32) uint64 { return uint64(decimal.D64FromUint32(v)) }
func D64FromU64(v uint64) uint64 { return uint64(decimal.D64FromUint64(v)) }

// D64ToI32 truncates toward zero and saturates; NaN converts to 0.
func D64ToI32(a uint64) int32 { return d64(a).Int32() }
func D64ToI64(a uint64) int64 { return d64(a).Int64() }

func D64FromString(s string) uint64 { return uint64(decimal.D64FromString(s)) }
func D64ToString(a uint64) string   { return d64(a).String() }
