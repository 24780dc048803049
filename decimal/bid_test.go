package decimal

import (
	"testing"

	"github.com/shogo82148/int128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodingVectors(t *testing.T) {
	// canonical encodings of 1 in each width
	assert.Equal(t, D32(0x32800001), encode32(parts{coef: uint128One}))
	assert.Equal(t, D64(0x31C0000000000001), encode64(parts{coef: uint128One}))
	assert.Equal(t, D128{Hi: 0x3040000000000000, Lo: 1}, encode128(parts{coef: uint128One}))

	// 1.5 is coefficient 15 at exponent -1
	p := decode32(encode32(parts{coef: int128.Uint128{L: 15}, exp: -1}))
	assert.Equal(t, int128.Uint128{L: 15}, p.coef)
	assert.Equal(t, int32(-1), p.exp)

	// a coefficient above 2^23 needs the high encoding form
	x := encode32(parts{coef: int128.Uint128{L: 9999999}})
	assert.Equal(t, D32(0x6CB8967F), x)
	p = decode32(x)
	assert.Equal(t, uint64(9999999), p.coef.L)
	assert.Equal(t, int32(0), p.exp)
}

func TestDecodeRoundTrip(t *testing.T) {
	cases := []parts{
		{},
		{neg: true},
		{coef: uint128One, exp: fmt32.emin},
		{coef: int128.Uint128{L: 9999999}, exp: fmt32.emax},
		{neg: true, coef: int128.Uint128{L: 1234567}, exp: -7},
		{cls: clInf},
		{cls: clInf, neg: true},
		{cls: clNaN},
	}
	for _, p := range cases {
		got := decode32(encode32(p))
		if p.cls != clFinite {
			assert.Equal(t, p.cls, got.cls)
			continue
		}
		assert.Equal(t, p, got, "decimal32 %+v", p)
	}

	big := []parts{
		{coef: int128.Uint128{L: 9999999999999999}, exp: fmt64.emax},
		{neg: true, coef: int128.Uint128{L: 1}, exp: fmt64.emin},
	}
	for _, p := range big {
		assert.Equal(t, p, decode64(encode64(p)))
	}

	huge := pow10tab[34].Sub(uint128One)
	p := parts{coef: huge, exp: fmt128.emax}
	assert.Equal(t, p, decode128(encode128(p)))
	p = parts{neg: true, coef: huge, exp: fmt128.emin}
	assert.Equal(t, p, decode128(encode128(p)))
}

func TestDecodeNonCanonical(t *testing.T) {
	// coefficient 10^7 does not fit decimal32: reads as zero
	b := uint32(0x60000000) | 101<<21 | (10000000 & 0x1FFFFF)
	p := decode32(D32(b))
	require.Equal(t, clFinite, p.cls)
	assert.Equal(t, uint128Zero, p.coef)

	// decimal128 high-form encodings are all non-canonical
	p = decode128(D128{Hi: 0x6000000000000000 | 6176<<47, Lo: 42})
	require.Equal(t, clFinite, p.cls)
	assert.Equal(t, uint128Zero, p.coef)
	assert.Equal(t, int32(0), p.exp)
}

func TestNdigits(t *testing.T) {
	assert.Equal(t, int32(1), ndigits(uint128Zero))
	assert.Equal(t, int32(1), ndigits(int128.Uint128{L: 9}))
	assert.Equal(t, int32(2), ndigits(int128.Uint128{L: 10}))
	assert.Equal(t, int32(7), ndigits(int128.Uint128{L: 9999999}))
	assert.Equal(t, int32(8), ndigits(int128.Uint128{L: 10000000}))
	assert.Equal(t, int32(34), ndigits(pow10tab[34].Sub(uint128One)))
	assert.Equal(t, int32(35), ndigits(pow10tab[34]))
}

func TestDivRound(t *testing.T) {
	c := func(v uint64) int128.Uint128 { return int128.Uint128{L: v} }
	assert.Equal(t, c(13), divRound(c(125), 1, roundHalfEven)) // tie to even
	assert.Equal(t, c(12), divRound(c(115), 1, roundHalfEven))
	assert.Equal(t, c(12), divRound(c(1151), 2, roundHalfEven)) // above the tie
	assert.Equal(t, c(12), divRound(c(115), 1, roundHalfAway))
	assert.Equal(t, c(11), divRound(c(119), 1, roundDown))
	assert.Equal(t, c(12), divRound(c(111), 1, roundUp))
	assert.Equal(t, c(11), divRound(c(110), 1, roundUp)) // exact, no bump
}
