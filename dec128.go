package numrt

import "github.com/cinderlang/numrt/decimal"

// Decimal128 operations. The D128 bit pattern does not fit a machine
// word, so these take and return the two-word D128 value directly.

func D128NaN() D128         { return decimal.D128NaN() }
func D128Inf(sign int) D128 { return decimal.D128Inf(sign) }

func D128MaxValue() D128    { return decimal.D128Max() }
func D128MinPositive() D128 { return decimal.D128MinPositive() }
func D128Epsilon() D128     { return decimal.D128Epsilon() }

func D128Add(a, b D128) D128 { return a.Add(b) }
func D128Sub(a, b D128) D128 { return a.Sub(b) }
func D128Mul(a, b D128) D128 { return a.Mul(b) }
func D128Div(a, b D128) D128 { return a.Div(b) }

func D128Sqrt(a D128) D128      { return a.Sqrt() }
func D128FMA(a, b, c D128) D128 { return a.FMA(b, c) }
func D128Mod(a, b D128) D128    { return a.Mod(b) }

func D128Neg(a D128) D128         { return a.Neg() }
func D128Abs(a D128) D128         { return a.Abs() }
func D128CopySign(a, b D128) D128 { return a.CopySign(b) }

func D128Min(a, b D128) D128 { return a.Min(b) }
func D128Max(a, b D128) D128 { return a.Max(b) }

func D128Ceil(a D128) D128  { return a.Ceil() }
func D128Floor(a D128) D128 { return a.Floor() }
func D128Trunc(a D128) D128 { return a.Trunc() }
func D128Round(a D128) D128 { return a.Round() }

func D128Eq(a, b D128) bool { return a.Eq(b) }
func D128Ne(a, b D128) bool { return a.Ne(b) }
func D128Lt(a, b D128) bool { return a.Lt(b) }
func D128Le(a, b D128) bool { return a.Le(b) }
func D128Gt(a, b D128) bool { return a.Gt(b) }
func D128Ge(a, b D128) bool { return a.Ge(b) }

// D128Cmp returns -1, 0 or +1; NaN operands compare as 0.
func D128Cmp(a, b D128) int { return a.Cmp(b) }

func D128IsNaN(a D128) bool    { return a.IsNaN() }
func D128IsInf(a D128) bool    { return a.IsInf(0) }
func D128IsFinite(a D128) bool { return a.IsFinite() }
func D128IsNormal(a D128) bool { return a.IsNormal() }
func D128IsZero(a D128) bool   { return a.IsZero() }
func D128Signbit(a D128) bool  { return a.Signbit() }

func D128FromI32(v int32) D128  { return decimal.D128FromInt32(v) }
func D128FromI64(v int64) D128  { return decimal.D128FromInt64(v) }
func D128FromU32(v uint32) D128 { return decimal.D128FromUint32(v) }
func D128FromU64(v uint64) D128 { return decimal.D128FromUint64(v) }

// D128ToI32 truncates toward zero and saturates; NaN converts to 0.
func D128ToI32(a D128) int32 { return a.Int32() }
func D128ToI64(a D128) int64 { return a.Int64() }

func D128FromString(s string) D128 { return decimal.D128FromString(s) }
func D128ToString(a D128) string   { return a.String() }
