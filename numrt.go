// Package numrt is the numeric runtime: a flat, by-value ABI over the
// IEEE 754 half-precision binary format and the decimal32/64/128
// interchange formats, plus the conversion matrix between them.
//
// Every function is stateless and safe for concurrent use. Values
// travel as raw bit patterns (uint16, uint32, uint64 and D128) so they
// can cross language boundaries without marshalling; the only process
// state is the decimal arithmetic tier, chosen once at startup.
//
// Errors surface as IEEE values: operations yield NaN, infinities or
// saturated integers instead of Go errors.
package numrt

import "github.com/cinderlang/numrt/decimal"

// D128 is a decimal128 bit pattern.
type D128 = decimal.D128

// Decimal arithmetic tiers, re-exported for SelectDecimalTier.
const (
	TierNative   = decimal.TierNative
	TierSoftware = decimal.TierSoftware
	TierBinary   = decimal.TierBinary
)

// DecimalTier reports which decimal engine is active.
func DecimalTier() decimal.Tier {
	return decimal.ActiveTier()
}

// SelectDecimalTier switches the decimal engine and returns the tier
// actually in effect. Call it before producing any decimal values:
// bit patterns from different tiers are not interchangeable.
func SelectDecimalTier(t decimal.Tier) decimal.Tier {
	return decimal.SelectTier(t)
}
