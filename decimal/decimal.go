// Package decimal implements the IEEE 754-2008 decimal interchange
// formats decimal32, decimal64 and decimal128 in their binary integer
// (BID) encoding.
//
// Values are plain bit patterns that can be stored, copied and passed
// by value; all operations are stateless and safe for concurrent use.
// Arithmetic runs on one of two engines selected at startup: a
// software engine that is correctly rounded in decimal, or a binary
// fallback that reinterprets each format as an IEEE binary float of
// the same width and trades decimal exactness for speed. The fallback
// changes the meaning of the bit patterns, so values must not cross an
// engine switch.
package decimal

import "sync/atomic"

// D32 is a decimal32 value in BID encoding.
type D32 uint32

// D64 is a decimal64 value in BID encoding.
type D64 uint64

// D128 is a decimal128 value in BID encoding. Lo holds the low 64 bits
// of the coefficient; Hi holds the sign, the combination field and the
// upper coefficient bits.
type D128 struct {
	Lo, Hi uint64
}

// Tier identifies an arithmetic engine.
type Tier int32

const (
	// TierNative selects hardware decimal arithmetic. No supported
	// target has it, so selecting TierNative falls back to
	// TierSoftware.
	TierNative Tier = iota

	// TierSoftware selects the correctly rounded software engine.
	TierSoftware

	// TierBinary selects the binary float fallback.
	TierBinary
)

func (t Tier) String() string {
	switch t {
	case TierNative:
		return "native"
	case TierSoftware:
		return "software"
	case TierBinary:
		return "binary"
	}
	return "unknown"
}

var activeTier atomic.Int32

func init() {
	activeTier.Store(int32(defaultTier.effective()))
}

func (t Tier) effective() Tier {
	if t == TierNative {
		return TierSoftware
	}
	return t
}

// SelectTier switches the arithmetic engine and returns the tier that
// is actually in effect. It is meant to be called once at startup,
// before any decimal values exist: bit patterns produced under one
// tier are not meaningful under another.
func SelectTier(t Tier) Tier {
	e := t.effective()
	activeTier.Store(int32(e))
	return e
}

// ActiveTier reports the engine operations currently run on.
func ActiveTier() Tier {
	return Tier(activeTier.Load())
}

func binary() bool {
	return Tier(activeTier.Load()) == TierBinary
}
