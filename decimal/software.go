package decimal

import (
	"math"
	"math/big"

	dec "github.com/db47h/decimal"
	"github.com/shogo82148/int128"
)

// The software engine decodes BID operands into parts, runs the
// arithmetic on db47h/decimal at the format's precision (correctly
// rounded, ties to even), and re-encodes. Exact results are moved
// toward the IEEE preferred exponent so quanta behave the way the
// standard prescribes.

var nanParts = parts{cls: clNaN}

// prefNone disables preferred-exponent adjustment.
const prefNone = int32(math.MinInt32)

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func clampExp(e int32, f fmtSpec) int32 {
	if e < f.emin {
		return f.emin
	}
	if e > f.emax {
		return f.emax
	}
	return e
}

// toDec converts p to a db47h decimal. The caller must arrange prec to
// cover the coefficient so the conversion is exact.
func toDec(p parts, prec uint) *dec.Decimal {
	d := new(dec.Decimal).SetPrec(prec)
	if p.coef == uint128Zero {
		return d
	}
	var c big.Int
	d.SetInt(uint128ToBig(p.coef, &c))
	d.SetMantExp(d, d.MantExp(nil)+int(p.exp))
	if p.neg {
		d.Neg(d)
	}
	return d
}

// fromDec extracts the coefficient and exponent of d with trailing
// zeros stripped.
func fromDec(d *dec.Decimal) parts {
	p := parts{neg: d.Signbit()}
	if d.IsInf() {
		p.cls = clInf
		return p
	}
	if d.Sign() == 0 {
		return p
	}
	prec := int(d.MinPrec())
	var mant dec.Decimal
	exp := d.MantExp(&mant)
	mant.SetMantExp(&mant, prec)
	z, _ := mant.Int(nil)
	p.coef = bigToUint128(z.Abs(z))
	p.exp = int32(exp - prec)
	return p
}

// fit pads p toward the preferred exponent where that is exact, then
// forces the result into the format's exponent range: padding or
// overflowing to infinity above emax, rounding coefficient digits away
// below emin.
func fit(p parts, f fmtSpec, pref int32, mode roundMode) parts {
	if p.cls != clFinite {
		return p
	}
	if p.coef == uint128Zero {
		e := p.exp
		if pref != prefNone {
			e = pref
		}
		p.exp = clampExp(e, f)
		return p
	}
	if pref != prefNone {
		for p.exp > pref && ndigits(p.coef) < f.digits {
			p.coef = p.coef.Mul(uint128Ten)
			p.exp--
		}
	}
	for p.exp > f.emax {
		if ndigits(p.coef) >= f.digits {
			return parts{cls: clInf, neg: p.neg}
		}
		p.coef = p.coef.Mul(uint128Ten)
		p.exp--
	}
	if p.exp < f.emin {
		drop := f.emin - p.exp
		if drop >= int32(len(pow10tab)) {
			p.coef = uint128Zero
			if mode == roundUp {
				p.coef = uint128One
			}
		} else {
			p.coef = divRound(p.coef, drop, mode)
		}
		p.exp = f.emin
	}
	return p
}

func finish(d *dec.Decimal, f fmtSpec, pref int32) parts {
	return fit(fromDec(d), f, pref, roundHalfEven)
}

func addSpecials(x, y parts) (parts, bool) {
	switch {
	case x.cls == clNaN || y.cls == clNaN:
		return nanParts, true
	case x.cls == clInf:
		if y.cls == clInf && x.neg != y.neg {
			return nanParts, true
		}
		return x, true
	case y.cls == clInf:
		return y, true
	}
	return parts{}, false
}

func softAdd(x, y parts, f fmtSpec) parts {
	if p, ok := addSpecials(x, y); ok {
		return p
	}
	pref := min32(x.exp, y.exp)
	if x.coef == uint128Zero && y.coef == uint128Zero {
		// both zero: negative only when both are
		return parts{neg: x.neg && y.neg, exp: clampExp(pref, f)}
	}
	d := toDec(x, uint(f.digits))
	d.Add(d, toDec(y, uint(f.digits)))
	return finish(d, f, pref)
}

func softSub(x, y parts, f fmtSpec) parts {
	y.neg = !y.neg
	return softAdd(x, y, f)
}

func softMul(x, y parts, f fmtSpec) parts {
	neg := x.neg != y.neg
	switch {
	case x.cls == clNaN || y.cls == clNaN:
		return nanParts
	case x.cls == clInf || y.cls == clInf:
		if x.cls == clFinite && x.coef == uint128Zero ||
			y.cls == clFinite && y.coef == uint128Zero {
			return nanParts
		}
		return parts{cls: clInf, neg: neg}
	}
	pref := x.exp + y.exp
	if x.coef == uint128Zero || y.coef == uint128Zero {
		return parts{neg: neg, exp: clampExp(pref, f)}
	}
	d := toDec(x, uint(f.digits))
	d.Mul(d, toDec(y, uint(f.digits)))
	return finish(d, f, pref)
}

func softDiv(x, y parts, f fmtSpec) parts {
	neg := x.neg != y.neg
	switch {
	case x.cls == clNaN || y.cls == clNaN:
		return nanParts
	case x.cls == clInf:
		if y.cls == clInf {
			return nanParts
		}
		return parts{cls: clInf, neg: neg}
	case y.cls == clInf:
		return parts{neg: neg, exp: clampExp(0, f)}
	case y.coef == uint128Zero:
		if x.coef == uint128Zero {
			return nanParts
		}
		return parts{cls: clInf, neg: neg}
	}
	pref := x.exp - y.exp
	if x.coef == uint128Zero {
		return parts{neg: neg, exp: clampExp(pref, f)}
	}
	d := toDec(x, uint(f.digits))
	d.Quo(d, toDec(y, uint(f.digits)))
	return finish(d, f, pref)
}

func softSqrt(p parts, f fmtSpec) parts {
	switch p.cls {
	case clNaN:
		return nanParts
	case clInf:
		if p.neg {
			return nanParts
		}
		return p
	}
	if p.coef == uint128Zero {
		p.exp = clampExp(p.exp>>1, f)
		return p
	}
	if p.neg {
		return nanParts
	}
	pref := p.exp >> 1
	d := toDec(p, uint(f.digits))
	d.Sqrt(d)
	return finish(d, f, pref)
}

// softFMA computes x*y+z with a single rounding: the product is formed
// exactly at double precision, only the addition rounds.
func softFMA(x, y, z parts, f fmtSpec) parts {
	if x.cls == clNaN || y.cls == clNaN || z.cls == clNaN {
		return nanParts
	}
	pneg := x.neg != y.neg
	if x.cls == clInf || y.cls == clInf {
		if x.cls == clFinite && x.coef == uint128Zero ||
			y.cls == clFinite && y.coef == uint128Zero {
			return nanParts
		}
		p, _ := addSpecials(parts{cls: clInf, neg: pneg}, z)
		return p
	}
	if z.cls == clInf {
		return z
	}
	pref := min32(x.exp+y.exp, z.exp)
	if x.coef == uint128Zero || y.coef == uint128Zero {
		if z.coef == uint128Zero {
			return parts{neg: pneg && z.neg, exp: clampExp(pref, f)}
		}
		return fit(z, f, pref, roundHalfEven)
	}
	wide := uint(2 * f.digits)
	a := toDec(x, wide)
	a.Mul(a, toDec(y, wide))
	res := new(dec.Decimal).SetPrec(uint(f.digits))
	res.Add(a, toDec(z, uint(f.digits)))
	return finish(res, f, pref)
}

// softFmod computes the truncated-division remainder exactly: aligning
// the coefficients to the smaller exponent keeps one side unscaled, so
// the remainder never exceeds the format's precision.
func softFmod(x, y parts, f fmtSpec) parts {
	switch {
	case x.cls == clNaN || y.cls == clNaN:
		return nanParts
	case x.cls == clInf:
		return nanParts
	case y.cls == clInf:
		return x
	case y.coef == uint128Zero:
		return nanParts
	case x.coef == uint128Zero:
		return x
	}
	m := min32(x.exp, y.exp)
	var a, b big.Int
	uint128ToBig(x.coef, &a)
	uint128ToBig(y.coef, &b)
	if s := x.exp - m; s > 0 {
		a.Mul(&a, pow10big(s))
	}
	if s := y.exp - m; s > 0 {
		b.Mul(&b, pow10big(s))
	}
	a.Rem(&a, &b)
	return parts{neg: x.neg, coef: bigToUint128(&a), exp: m}
}

func pow10big(n int32) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func partsSign(p parts) int {
	if p.cls == clFinite && p.coef == uint128Zero {
		return 0
	}
	if p.neg {
		return -1
	}
	return 1
}

// softCmp orders x and y; ordered is false when either operand is NaN.
func softCmp(x, y parts) (c int, ordered bool) {
	if x.cls == clNaN || y.cls == clNaN {
		return 0, false
	}
	xs, ys := partsSign(x), partsSign(y)
	switch {
	case xs < ys:
		return -1, true
	case xs > ys:
		return 1, true
	case xs == 0:
		return 0, true
	}
	neg := xs < 0
	if x.cls == clInf || y.cls == clInf {
		switch {
		case x.cls == y.cls:
			return 0, true
		case x.cls == clInf:
			c = 1
		default:
			c = -1
		}
		if neg {
			c = -c
		}
		return c, true
	}
	return toDec(x, 34).Cmp(toDec(y, 34)), true
}

func softMin(x, y parts) parts {
	if x.cls == clNaN {
		if y.cls == clNaN {
			return nanParts
		}
		return y
	}
	if y.cls == clNaN {
		return x
	}
	c, _ := softCmp(x, y)
	switch {
	case c < 0:
		return x
	case c > 0:
		return y
	case x.neg:
		return x
	}
	return y
}

func softMax(x, y parts) parts {
	if x.cls == clNaN {
		if y.cls == clNaN {
			return nanParts
		}
		return y
	}
	if y.cls == clNaN {
		return x
	}
	c, _ := softCmp(x, y)
	switch {
	case c > 0:
		return x
	case c < 0:
		return y
	case y.neg:
		return x
	}
	return y
}

// softRoundInt rounds p to an integral value with quantum 0.
func softRoundInt(p parts, mode roundMode) parts {
	if p.cls != clFinite || p.exp >= 0 {
		return p
	}
	if p.coef == uint128Zero {
		p.exp = 0
		return p
	}
	drop := -p.exp
	nd := ndigits(p.coef)
	switch {
	case drop > nd:
		p.coef = uint128Zero
		if mode == roundUp {
			p.coef = uint128One
		}
	case drop == nd:
		// the integral part is zero, the fraction is the whole value
		c := uint128Zero
		switch mode {
		case roundUp:
			c = uint128One
		case roundHalfAway:
			if p.coef.Add(p.coef).Cmp(pow10tab[drop]) >= 0 {
				c = uint128One
			}
		}
		p.coef = c
	default:
		p.coef = divRound(p.coef, drop, mode)
	}
	p.exp = 0
	return p
}

func softTrunc(p parts) parts { return softRoundInt(p, roundDown) }
func softRound(p parts) parts { return softRoundInt(p, roundHalfAway) }

func softCeil(p parts) parts {
	m := roundUp
	if p.neg {
		m = roundDown
	}
	return softRoundInt(p, m)
}

func softFloor(p parts) parts {
	m := roundDown
	if p.neg {
		m = roundUp
	}
	return softRoundInt(p, m)
}

func isNormalParts(p parts, f fmtSpec) bool {
	if p.cls != clFinite || p.coef == uint128Zero {
		return false
	}
	return p.exp+ndigits(p.coef)-1 >= f.emin+f.digits-1
}

func fromInt64(v int64, f fmtSpec) parts {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return fromUint(u, v < 0, f)
}

func fromUint64(v uint64, f fmtSpec) parts {
	return fromUint(v, false, f)
}

func fromUint(u uint64, neg bool, f fmtSpec) parts {
	p := parts{neg: neg, coef: int128.Uint128{L: u}}
	if nd := ndigits(p.coef); nd > f.digits {
		drop := nd - f.digits
		p.coef = divRound(p.coef, drop, roundHalfEven)
		p.exp = drop
		if p.coef.Cmp(pow10tab[f.digits]) >= 0 {
			p.coef = p.coef.Div(uint128Ten)
			p.exp++
		}
	}
	return p
}

// toInt64 truncates p toward zero and saturates at the int64 range.
// NaN converts to zero.
func toInt64(p parts) int64 {
	switch p.cls {
	case clNaN:
		return 0
	case clInf:
		if p.neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	if p.coef == uint128Zero {
		return 0
	}
	nd := ndigits(p.coef)
	if p.exp < 0 && -p.exp >= nd {
		return 0
	}
	if p.exp > 0 && p.exp+nd > 20 {
		if p.neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	var z big.Int
	uint128ToBig(p.coef, &z)
	if p.exp > 0 {
		z.Mul(&z, pow10big(p.exp))
	} else if p.exp < 0 {
		z.Quo(&z, pow10big(-p.exp))
	}
	if p.neg {
		z.Neg(&z)
	}
	if !z.IsInt64() {
		if p.neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return z.Int64()
}

func toInt32(p parts) int32 {
	v := toInt64(p)
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
