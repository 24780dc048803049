package float16

import (
	"math/bits"
	"strconv"

	"github.com/shogo82148/int128"
)

// Every finite binary16 value is an integer multiple of 2^-25 (the
// half-ulp of the smallest subnormal). Scaling that integer by 5^25
// yields the exact decimal expansion in units of 10^-25, which fits in
// a Uint128. Digit generation below works on that representation.

var ten128 = int128.Uint128{L: 10}

const five25 = 298023223876953125 // 5^25

func (x Float16) String() string { return x.Text('g', -1) }

// Text converts x to a string with the given format and precision,
// analogous to strconv.FormatFloat. Supported formats are 'e', 'E',
// 'f', 'g' and 'G'. A negative precision selects the shortest string
// that parses back to x exactly.
func (x Float16) Text(fmt byte, prec int) string {
	return string(x.Append(make([]byte, 0, 16), fmt, prec))
}

// Append appends the formatted value to buf and returns the extended
// buffer.
func (x Float16) Append(buf []byte, fmt byte, prec int) []byte {
	switch {
	case x.IsNaN():
		return append(buf, "NaN"...)
	case x == uvinf:
		return append(buf, "+Inf"...)
	case x == uvneginf:
		return append(buf, "-Inf"...)
	}

	if fmt == 'g' || fmt == 'G' {
		if prec >= 0 {
			// the value is exact in binary64, let strconv do the digit capping
			return strconv.AppendFloat(buf, x.Float64(), fmt, prec, 64)
		}
	}

	if x&signMask16 != 0 {
		buf = append(buf, '-')
		x &^= signMask16
	}

	switch fmt {
	case 'e', 'E':
		return x.appendSci(buf, fmt, prec)
	case 'f':
		return x.appendFixed(buf, prec)
	case 'g', 'G':
		expChar := fmt + 'e' - 'g'
		if x == 0 {
			return append(buf, '0')
		}
		var data [31]byte
		top, cut := x.shortestDigits(&data)
		if top-25 < -4 {
			return appendSciDigits(buf, &data, top, cut, expChar)
		}
		return appendPlainDigits(buf, &data, top, cut)
	}

	return append(buf, '%', fmt)
}

// scaled returns the value of x (finite, positive) in units of 10^-25,
// together with the midpoints to the neighboring representable values
// in the same units.
func (x Float16) scaled() (exact, lower, upper int128.Uint128) {
	exp := int(x >> shift16 & mask16)
	frac := uint64(x & fracMask16)

	var v, lo, up uint64
	if exp == 0 {
		// subnormal number
		v = frac * 2
		lo = v - 1
		up = v + 1
	} else {
		// normal number
		v = (frac | 1<<shift16) << uint(exp)
		if frac == 0 && exp > 1 {
			// the gap below a power of two is half as wide
			lo = v - 1<<uint(exp-2)
		} else {
			lo = v - 1<<uint(exp-1)
		}
		up = v + 1<<uint(exp-1)
	}

	exact.H, exact.L = bits.Mul64(v, five25)
	lower.H, lower.L = bits.Mul64(lo, five25)
	upper.H, upper.L = bits.Mul64(up, five25)
	return
}

// roundTo rounds x to a multiple of 10^n, ties to even.
func roundTo(x int128.Uint128, n int) int128.Uint128 {
	m := int128.Uint128{L: 1}
	for i := 0; i < n; i++ {
		m = m.Mul(ten128)
	}
	div, mod := x.DivMod(m)
	x = x.Sub(mod)
	half := m.Rsh(1)
	if c := mod.Cmp(half); c > 0 || c == 0 && div.L&1 != 0 {
		x = x.Add(m)
	}
	return x
}

// shortestDigits fills data with the decimal digits of x (finite,
// positive, nonzero); data[i] holds the 10^(i-25) digit. It returns
// the index of the most significant digit and the lowest index that is
// still significant: the fewest digits whose reading rounds back to x.
func (x Float16) shortestDigits(data *[31]byte) (top, cut int) {
	exact, lower, upper := x.scaled()

	cut = 25
	d := exact
	for ; cut > 0; cut-- {
		d = roundTo(exact, cut)
		if d.Cmp(lower) > 0 && d.Cmp(upper) < 0 {
			break
		}
	}

	for i := range data {
		var mod int128.Uint128
		d, mod = d.DivMod(ten128)
		data[i] = byte(mod.L)
	}
	top = len(data) - 1
	for top > 0 && data[top] == 0 {
		top--
	}
	return
}

// digitsOf extracts all digits of d and returns the most significant
// index.
func digitsOf(d int128.Uint128, data *[31]byte) (top int) {
	for i := range data {
		var mod int128.Uint128
		d, mod = d.DivMod(ten128)
		data[i] = byte(mod.L)
	}
	top = len(data) - 1
	for top > 0 && data[top] == 0 {
		top--
	}
	return
}

// appendPlainDigits writes data[top..cut] in positional notation with
// the decimal point between index 25 and 24.
func appendPlainDigits(buf []byte, data *[31]byte, top, cut int) []byte {
	if top >= 25 {
		for i := top; i >= 25; i-- {
			buf = append(buf, data[i]+'0')
		}
	} else {
		buf = append(buf, '0')
	}
	if cut >= 25 {
		return buf
	}
	buf = append(buf, '.')
	start := 24
	if top < 24 {
		for i := 24; i > top; i-- {
			buf = append(buf, '0')
		}
		start = top
	}
	for i := start; i >= cut; i-- {
		buf = append(buf, data[i]+'0')
	}
	return buf
}

// appendSciDigits writes data[top..cut] as d.ddd followed by the
// two-digit decimal exponent.
func appendSciDigits(buf []byte, data *[31]byte, top, cut int, expChar byte) []byte {
	buf = append(buf, data[top]+'0')
	if top > cut {
		buf = append(buf, '.')
		for i := top - 1; i >= cut; i-- {
			buf = append(buf, data[i]+'0')
		}
	}
	return appendExp(buf, expChar, top-25)
}

func appendExp(buf []byte, expChar byte, e int) []byte {
	buf = append(buf, expChar)
	if e >= 0 {
		buf = append(buf, '+')
	} else {
		buf = append(buf, '-')
		e = -e
	}
	return append(buf, byte(e/10)+'0', byte(e%10)+'0')
}

func (x Float16) appendSci(buf []byte, fmt byte, prec int) []byte {
	var data [31]byte
	if x == 0 {
		buf = append(buf, '0')
		if prec > 0 {
			buf = append(buf, '.')
			for i := 0; i < prec; i++ {
				buf = append(buf, '0')
			}
		}
		return appendExp(buf, fmt, 0)
	}

	if prec < 0 {
		top, cut := x.shortestDigits(&data)
		return appendSciDigits(buf, &data, top, cut, fmt)
	}

	exact, _, _ := x.scaled()
	top := digitsOf(exact, &data)
	if n := top - prec; n > 0 {
		// keep prec+1 significant digits
		top = digitsOf(roundTo(exact, n), &data)
	}

	buf = append(buf, data[top]+'0')
	if prec > 0 {
		buf = append(buf, '.')
		for i := 1; i <= prec; i++ {
			if top-i >= 0 {
				buf = append(buf, data[top-i]+'0')
			} else {
				buf = append(buf, '0')
			}
		}
	}
	return appendExp(buf, fmt, top-25)
}

func (x Float16) appendFixed(buf []byte, prec int) []byte {
	if x == 0 {
		buf = append(buf, '0')
		if prec > 0 {
			buf = append(buf, '.')
			for i := 0; i < prec; i++ {
				buf = append(buf, '0')
			}
		}
		return buf
	}

	var data [31]byte
	if prec < 0 {
		top, cut := x.shortestDigits(&data)
		return appendPlainDigits(buf, &data, top, cut)
	}

	exact, _, _ := x.scaled()
	var top int
	if prec < 25 {
		top = digitsOf(roundTo(exact, 25-prec), &data)
	} else {
		top = digitsOf(exact, &data)
	}

	if top >= 25 {
		for i := top; i >= 25; i-- {
			buf = append(buf, data[i]+'0')
		}
	} else {
		buf = append(buf, '0')
	}
	if prec == 0 {
		return buf
	}
	buf = append(buf, '.')
	for i := 1; i <= prec; i++ {
		if 25-i >= 0 {
			buf = append(buf, data[25-i]+'0')
		} else {
			buf = append(buf, '0')
		}
	}
	return buf
}
