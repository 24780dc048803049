package decimal

import (
	"math"

	dec "github.com/db47h/decimal"
)

// narrowTo rounds p into a tighter format. Exact values keep their
// quantum; inexact ones round ties to even.
func narrowTo(p parts, f fmtSpec) parts {
	if p.cls != clFinite {
		return p
	}
	pref := p.exp
	if nd := ndigits(p.coef); nd > f.digits {
		drop := nd - f.digits
		p.coef = divRound(p.coef, drop, roundHalfEven)
		p.exp += drop
		if p.coef.Cmp(pow10tab[f.digits]) >= 0 {
			p.coef = p.coef.Div(uint128Ten)
			p.exp++
		}
	}
	return fit(p, f, pref, roundHalfEven)
}

// fromFloat converts a binary float to decimal parts, rounded to the
// format's precision.
func fromFloat(v float64, f fmtSpec) parts {
	switch {
	case math.IsNaN(v):
		return nanParts
	case math.IsInf(v, 0):
		return parts{cls: clInf, neg: math.Signbit(v)}
	case v == 0:
		return parts{neg: math.Signbit(v)}
	}
	d := new(dec.Decimal).SetPrec(uint(f.digits)).SetFloat64(v)
	return fit(fromDec(d), f, prefNone, roundHalfEven)
}

func toFloat64(p parts) float64 {
	switch p.cls {
	case clNaN:
		return math.NaN()
	case clInf:
		if p.neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if p.coef == uint128Zero {
		if p.neg {
			return math.Copysign(0, -1)
		}
		return 0
	}
	v, _ := toDec(p, 34).Float64()
	return v
}

func toFloat32(p parts) float32 {
	switch p.cls {
	case clNaN:
		return float32(math.NaN())
	case clInf:
		if p.neg {
			return float32(math.Inf(-1))
		}
		return float32(math.Inf(1))
	}
	if p.coef == uint128Zero {
		if p.neg {
			return float32(math.Copysign(0, -1))
		}
		return 0
	}
	v, _ := toDec(p, 34).Float32()
	return v
}
