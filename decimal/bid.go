package decimal

import (
	stdbinary "encoding/binary"
	"math/big"

	"github.com/shogo82148/int128"
)

// Decoded form of a BID value. The coefficient is always unsigned; the
// sign lives in neg so that zero keeps its sign too.
type parts struct {
	cls  class
	neg  bool
	coef int128.Uint128
	exp  int32
}

type class uint8

const (
	clFinite class = iota
	clInf
	clNaN
)

// Format parameters per IEEE 754-2008 §3.4: coefficient precision in
// decimal digits and the exponent range of the least significant
// coefficient digit.
type fmtSpec struct {
	digits int32
	emin   int32
	emax   int32
}

var (
	fmt32  = fmtSpec{digits: 7, emin: -101, emax: 90}
	fmt64  = fmtSpec{digits: 16, emin: -398, emax: 369}
	fmt128 = fmtSpec{digits: 34, emin: -6176, emax: 6111}
)

var (
	uint128Zero = int128.Uint128{}
	uint128One  = int128.Uint128{L: 1}
	uint128Ten  = int128.Uint128{L: 10}
)

var pow10tab [39]int128.Uint128

func init() {
	pow10tab[0] = uint128One
	for i := 1; i < len(pow10tab); i++ {
		pow10tab[i] = pow10tab[i-1].Mul(uint128Ten)
	}
}

// ndigits returns the decimal digit count of c; zero counts as one
// digit.
func ndigits(c int128.Uint128) int32 {
	for i := 1; i < len(pow10tab); i++ {
		if c.Cmp(pow10tab[i]) < 0 {
			return int32(i)
		}
	}
	return int32(len(pow10tab))
}

type roundMode uint8

const (
	roundHalfEven roundMode = iota
	roundHalfAway
	roundDown // toward zero
	roundUp   // away from zero
)

// divRound divides c by 10^drop, 0 < drop < 39, rounding per mode.
func divRound(c int128.Uint128, drop int32, mode roundMode) int128.Uint128 {
	m := pow10tab[drop]
	div, mod := c.DivMod(m)
	if mod == uint128Zero {
		return div
	}
	switch mode {
	case roundDown:
		return div
	case roundUp:
		return div.Add(uint128One)
	case roundHalfAway:
		if mod.Cmp(m.Rsh(1)) >= 0 {
			return div.Add(uint128One)
		}
		return div
	default:
		half := m.Rsh(1)
		if r := mod.Cmp(half); r > 0 || r == 0 && div.L&1 != 0 {
			return div.Add(uint128One)
		}
		return div
	}
}

func uint128ToBig(c int128.Uint128, z *big.Int) *big.Int {
	var buf [16]byte
	stdbinary.BigEndian.PutUint64(buf[:8], c.H)
	stdbinary.BigEndian.PutUint64(buf[8:], c.L)
	return z.SetBytes(buf[:])
}

func bigToUint128(z *big.Int) int128.Uint128 {
	var buf [16]byte
	z.FillBytes(buf[:])
	return int128.Uint128{
		H: stdbinary.BigEndian.Uint64(buf[:8]),
		L: stdbinary.BigEndian.Uint64(buf[8:]),
	}
}

// BID field masks. The d64 and d128 sets are the d32 ones widened to
// the top of their word.
const (
	d32SignMask  = 1 << 31
	d32NaNMask   = 0x7c000000
	d32InfMask   = 0x78000000
	d32SteerMask = 0x60000000
	d32Bias      = 101
	d32MaxCoef   = 1e7 - 1

	d64SignMask  = 1 << 63
	d64NaNMask   = 0x7c00000000000000
	d64InfMask   = 0x7800000000000000
	d64SteerMask = 0x6000000000000000
	d64Bias      = 398
	d64MaxCoef   = 1e16 - 1

	d128Bias = 6176
)

func decode32(x D32) parts {
	b := uint32(x)
	p := parts{neg: b&d32SignMask != 0}
	switch {
	case b&d32NaNMask == d32NaNMask:
		p.cls = clNaN
		return p
	case b&d32InfMask == d32InfMask:
		p.cls = clInf
		return p
	}
	var exp, coef uint32
	if b&d32SteerMask == d32SteerMask {
		// high coefficient range, implicit 0b100 prefix
		exp = b >> 21 & 0xff
		coef = 1<<23 | b&(1<<21-1)
	} else {
		exp = b >> 23 & 0xff
		coef = b & (1<<23 - 1)
	}
	if coef > d32MaxCoef {
		coef = 0 // non-canonical encodings are read as zero
	}
	p.coef = int128.Uint128{L: uint64(coef)}
	p.exp = int32(exp) - d32Bias
	return p
}

// encode32 packs p, which must already fit the decimal32 ranges.
func encode32(p parts) D32 {
	var sign uint32
	if p.neg {
		sign = d32SignMask
	}
	switch p.cls {
	case clNaN:
		return D32(sign | d32NaNMask)
	case clInf:
		return D32(sign | d32InfMask)
	}
	coef := uint32(p.coef.L)
	exp := uint32(p.exp + d32Bias)
	if coef < 1<<23 {
		return D32(sign | exp<<23 | coef)
	}
	return D32(sign | d32SteerMask | exp<<21 | coef&(1<<21-1))
}

func decode64(x D64) parts {
	b := uint64(x)
	p := parts{neg: b&d64SignMask != 0}
	switch {
	case b&d64NaNMask == d64NaNMask:
		p.cls = clNaN
		return p
	case b&d64InfMask == d64InfMask:
		p.cls = clInf
		return p
	}
	var exp, coef uint64
	if b&d64SteerMask == d64SteerMask {
		exp = b >> 51 & 0x3ff
		coef = 1<<53 | b&(1<<51-1)
	} else {
		exp = b >> 53 & 0x3ff
		coef = b & (1<<53 - 1)
	}
	if coef > d64MaxCoef {
		coef = 0
	}
	p.coef = int128.Uint128{L: coef}
	p.exp = int32(exp) - d64Bias
	return p
}

func encode64(p parts) D64 {
	var sign uint64
	if p.neg {
		sign = d64SignMask
	}
	switch p.cls {
	case clNaN:
		return D64(sign | d64NaNMask)
	case clInf:
		return D64(sign | d64InfMask)
	}
	coef := p.coef.L
	exp := uint64(p.exp + d64Bias)
	if coef < 1<<53 {
		return D64(sign | exp<<53 | coef)
	}
	return D64(sign | d64SteerMask | exp<<51 | coef&(1<<51-1))
}

func decode128(x D128) parts {
	p := parts{neg: x.Hi&d64SignMask != 0}
	switch {
	case x.Hi&d64NaNMask == d64NaNMask:
		p.cls = clNaN
		return p
	case x.Hi&d64InfMask == d64InfMask:
		p.cls = clInf
		return p
	}
	if x.Hi&d64SteerMask == d64SteerMask {
		// the implicit 0b100 prefix puts the coefficient above
		// 10^34-1, so the value is zero with the shifted exponent
		p.exp = int32(x.Hi>>47&0x3fff) - d128Bias
		return p
	}
	p.exp = int32(x.Hi>>49&0x3fff) - d128Bias
	p.coef = int128.Uint128{H: x.Hi & (1<<49 - 1), L: x.Lo}
	if p.coef.Cmp(pow10tab[34]) >= 0 {
		p.coef = uint128Zero
	}
	return p
}

// encode128 packs p. Canonical decimal128 coefficients stay below
// 2^113, so the low encoding form always suffices.
func encode128(p parts) D128 {
	var sign uint64
	if p.neg {
		sign = d64SignMask
	}
	switch p.cls {
	case clNaN:
		return D128{Hi: sign | d64NaNMask}
	case clInf:
		return D128{Hi: sign | d64InfMask}
	}
	exp := uint64(p.exp + d128Bias)
	return D128{
		Hi: sign | exp<<49 | p.coef.H,
		Lo: p.coef.L,
	}
}
