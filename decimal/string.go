package decimal

import (
	"strconv"
	"strings"

	"github.com/shogo82148/int128"
)

// parseParts scans a decimal literal into parts, keeping the quantum
// the text spells out: "2.50" parses to coefficient 250 with exponent
// -2. Digits beyond the format's precision round into the coefficient,
// ties to even. ok is false when s is not a decimal number.
func parseParts(s string, f fmtSpec) (p parts, ok bool) {
	if len(s) == 0 {
		return parts{}, false
	}
	i := 0
	switch s[0] {
	case '+':
		i++
	case '-':
		p.neg = true
		i++
	}
	rest := s[i:]
	if strings.EqualFold(rest, "nan") {
		p.cls = clNaN
		return p, true
	}
	if strings.EqualFold(rest, "inf") || strings.EqualFold(rest, "infinity") {
		p.cls = clInf
		return p, true
	}

	var (
		sawDigits  bool
		sawDot     bool
		nd         int32
		roundDigit byte
		sticky     bool
		e10        int32
	)
loop:
	for ; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.':
			if sawDot {
				return parts{}, false
			}
			sawDot = true
		case c >= '0' && c <= '9':
			sawDigits = true
			if nd == 0 && c == '0' {
				// leading zero, adjusts the exponent only
				if sawDot {
					e10--
				}
				continue
			}
			if nd < f.digits {
				p.coef = p.coef.Mul(uint128Ten).Add(int128.Uint128{L: uint64(c - '0')})
				nd++
				if sawDot {
					e10--
				}
				continue
			}
			// beyond precision: remember enough to round
			if roundDigit == 0 {
				roundDigit = c
			} else if c != '0' {
				sticky = true
			}
			if !sawDot {
				e10++
			}
		default:
			break loop
		}
	}
	if !sawDigits {
		return parts{}, false
	}

	if i < len(s) {
		if c := s[i]; c != 'e' && c != 'E' {
			return parts{}, false
		}
		i++
		eneg := false
		if i < len(s) {
			switch s[i] {
			case '+':
				i++
			case '-':
				eneg = true
				i++
			}
		}
		if i >= len(s) {
			return parts{}, false
		}
		var e int32
		for ; i < len(s); i++ {
			c := s[i]
			if c < '0' || c > '9' {
				return parts{}, false
			}
			if e < 100000 {
				e = e*10 + int32(c-'0')
			}
		}
		if eneg {
			e = -e
		}
		e10 += e
	}

	if roundDigit > '5' || roundDigit == '5' && (sticky || p.coef.L&1 != 0) {
		p.coef = p.coef.Add(uint128One)
		if p.coef.Cmp(pow10tab[f.digits]) >= 0 {
			p.coef = p.coef.Div(uint128Ten)
			e10++
		}
	}
	p.exp = e10
	return fit(p, f, prefNone, roundHalfEven), true
}

// formatParts renders p the conventional decimal way: positional
// notation while the exponent is small, scientific otherwise, with the
// quantum preserved ("2.50" keeps its trailing zero).
func formatParts(buf []byte, p parts, f fmtSpec) []byte {
	switch p.cls {
	case clNaN:
		return append(buf, "NaN"...)
	case clInf:
		if p.neg {
			return append(buf, "-Inf"...)
		}
		return append(buf, "+Inf"...)
	}
	if p.neg {
		buf = append(buf, '-')
	}

	var tmp [40]byte
	n := len(tmp)
	c := p.coef
	for {
		var mod int128.Uint128
		c, mod = c.DivMod(uint128Ten)
		n--
		tmp[n] = byte(mod.L) + '0'
		if c == uint128Zero {
			break
		}
	}
	digits := tmp[n:]
	nd := int32(len(digits))
	adj := p.exp + nd - 1

	switch {
	case p.exp <= 0 && adj >= -6:
		if p.exp == 0 {
			return append(buf, digits...)
		}
		if adj >= 0 {
			k := nd + p.exp
			buf = append(buf, digits[:k]...)
			buf = append(buf, '.')
			return append(buf, digits[k:]...)
		}
		buf = append(buf, '0', '.')
		for i := adj; i < -1; i++ {
			buf = append(buf, '0')
		}
		return append(buf, digits...)
	case p.exp > 0 && adj < f.digits && p.coef != uint128Zero:
		// small integers read better without an exponent; a zero
		// keeps its exponent ("0e+5", not a run of zeros)
		buf = append(buf, digits...)
		for i := int32(0); i < p.exp; i++ {
			buf = append(buf, '0')
		}
		return buf
	}

	buf = append(buf, digits[0])
	if nd > 1 {
		buf = append(buf, '.')
		buf = append(buf, digits[1:]...)
	}
	buf = append(buf, 'e')
	if adj >= 0 {
		buf = append(buf, '+')
	}
	return strconv.AppendInt(buf, int64(adj), 10)
}
