package float16

import (
	"math"
	"runtime"
	"testing"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		a, b, want Float16
	}{
		{0x3c00, 0x3c00, 0x4000}, // 1 + 1 = 2
		{0x3e00, 0x4080, 0x4380}, // 1.5 + 2.25 = 3.75
		{0x3c00, 0xbc00, 0x0000}, // 1 + -1 = +0
		{0x8000, 0x8000, 0x8000}, // -0 + -0 = -0
		{0x0000, 0x8000, 0x0000}, // +0 + -0 = +0
		{0x7bff, 0x7bff, 0x7c00}, // overflow to +Inf
		{0xfbff, 0xfbff, 0xfc00},
		{0x7c00, 0x3c00, 0x7c00}, // Inf + 1 = Inf
		{0x0001, 0x0001, 0x0002}, // subnormal arithmetic is exact
		{0x0001, 0x8001, 0x0000},
	}
	for _, tt := range tests {
		if got := tt.a.Add(tt.b); got != tt.want {
			t.Errorf("%04x + %04x: got %04x, want %04x", tt.a, tt.b, got, tt.want)
		}
	}

	// Inf + -Inf has no useful value
	if got := Inf(1).Add(Inf(-1)); !got.IsNaN() {
		t.Errorf("Inf + -Inf: got %04x, want NaN", got)
	}
	if got := NaN().Add(FromFloat64(1)); !got.IsNaN() {
		t.Errorf("NaN + 1: got %04x, want NaN", got)
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		a, b, want Float16
	}{
		{0x4000, 0x3c00, 0x3c00}, // 2 - 1 = 1
		{0x3c00, 0x3c00, 0x0000}, // x - x = +0
		{0x3c01, 0x3c00, 0x1400}, // 1+ulp - 1 = 2^-10
		{0xfc00, 0x7c00, 0xfc00}, // -Inf - Inf = -Inf
	}
	for _, tt := range tests {
		if got := tt.a.Sub(tt.b); got != tt.want {
			t.Errorf("%04x - %04x: got %04x, want %04x", tt.a, tt.b, got, tt.want)
		}
	}
	if got := Inf(1).Sub(Inf(1)); !got.IsNaN() {
		t.Errorf("Inf - Inf: got %04x, want NaN", got)
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		a, b, want Float16
	}{
		{0x3e00, 0x4000, 0x4200}, // 1.5 * 2 = 3
		{0x3c00, 0x8000, 0x8000}, // 1 * -0 = -0
		{0x7bff, 0x4000, 0x7c00}, // overflow
		{0x0001, 0x3800, 0x0000}, // 2^-24 * 0.5 underflows, ties to even
		{0x0002, 0x3800, 0x0001},
		{0x7c00, 0xbc00, 0xfc00}, // Inf * -1 = -Inf
	}
	for _, tt := range tests {
		if got := tt.a.Mul(tt.b); got != tt.want {
			t.Errorf("%04x * %04x: got %04x, want %04x", tt.a, tt.b, got, tt.want)
		}
	}
	if got := Inf(1).Mul(0); !got.IsNaN() {
		t.Errorf("Inf * 0: got %04x, want NaN", got)
	}
}

func TestDiv(t *testing.T) {
	tests := []struct {
		a, b, want Float16
	}{
		{0x4200, 0x4000, 0x3e00}, // 3 / 2 = 1.5
		{0x3c00, 0x0000, 0x7c00}, // 1 / +0 = +Inf
		{0x3c00, 0x8000, 0xfc00}, // 1 / -0 = -Inf
		{0xbc00, 0x0000, 0xfc00},
		{0x3c00, 0x7c00, 0x0000}, // 1 / Inf = +0
		{0x3c00, 0xfc00, 0x8000}, // 1 / -Inf = -0
		{0x3c00, 0x4200, 0x3555}, // 1 / 3, rounded
	}
	for _, tt := range tests {
		if got := tt.a.Div(tt.b); got != tt.want {
			t.Errorf("%04x / %04x: got %04x, want %04x", tt.a, tt.b, got, tt.want)
		}
	}
	if got := Float16(0).Div(0); !got.IsNaN() {
		t.Errorf("0 / 0: got %04x, want NaN", got)
	}
	if got := Inf(1).Div(Inf(1)); !got.IsNaN() {
		t.Errorf("Inf / Inf: got %04x, want NaN", got)
	}
}

// The binary32 intermediate is wide enough that promote-compute-demote
// is correctly rounded; computing through binary64 must agree on every
// input pair sampled here.
func TestArithWideningAgreement(t *testing.T) {
	for a := 0; a < 1<<16; a += 131 {
		for b := 0; b < 1<<16; b += 137 {
			x, y := Frombits(uint16(a)), Frombits(uint16(b))
			if x.IsNaN() || y.IsNaN() {
				continue
			}
			if got, want := x.Add(y), FromFloat64(x.Float64()+y.Float64()); got != want {
				t.Fatalf("%04x + %04x: got %04x, want %04x", a, b, got, want)
			}
			if got, want := x.Mul(y), FromFloat64(x.Float64()*y.Float64()); got != want {
				t.Fatalf("%04x * %04x: got %04x, want %04x", a, b, got, want)
			}
			if got, want := x.Div(y), FromFloat64(x.Float64()/y.Float64()); got != want {
				t.Fatalf("%04x / %04x: got %04x, want %04x", a, b, got, want)
			}
		}
	}
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		in, want Float16
	}{
		{0x4400, 0x4000}, // sqrt(4) = 2
		{0x4000, 0x3da8}, // sqrt(2)
		{0x0000, 0x0000},
		{0x8000, 0x8000}, // sqrt(-0) = -0
		{0x7c00, 0x7c00},
	}
	for _, tt := range tests {
		if got := tt.in.Sqrt(); got != tt.want {
			t.Errorf("sqrt(%04x): got %04x, want %04x", tt.in, got, tt.want)
		}
	}
	if got := FromFloat64(-1).Sqrt(); !got.IsNaN() {
		t.Errorf("sqrt(-1): got %04x, want NaN", got)
	}
}

func TestFMA(t *testing.T) {
	// (1+u)^2 - (1+2u) = u^2; a rounded intermediate product loses it
	x := Float16(0x3c01)
	if got, want := x.FMA(x, Float16(0xbc02)), Float16(0x0010); got != want {
		t.Errorf("fma(1+u, 1+u, -(1+2u)): got %04x, want %04x", got, want)
	}
	if got := x.Mul(x).Add(Float16(0xbc02)); got != 0 {
		t.Errorf("separate multiply and add: got %04x, want 0", got)
	}
	if got := FromFloat64(2).FMA(FromFloat64(3), FromFloat64(1)); got != FromFloat64(7) {
		t.Errorf("fma(2, 3, 1): got %04x", got)
	}
	if got := Inf(1).FMA(0, FromFloat64(1)); !got.IsNaN() {
		t.Errorf("fma(Inf, 0, 1): got %04x, want NaN", got)
	}
}

func TestModRemainder(t *testing.T) {
	if got := FromFloat64(5.5).Mod(FromFloat64(2)); got != FromFloat64(1.5) {
		t.Errorf("mod(5.5, 2): got %04x", got)
	}
	if got := FromFloat64(-5.5).Mod(FromFloat64(2)); got != FromFloat64(-1.5) {
		t.Errorf("mod(-5.5, 2): got %04x", got)
	}
	if got := FromFloat64(5.5).Remainder(FromFloat64(2)); got != FromFloat64(-0.5) {
		t.Errorf("remainder(5.5, 2): got %04x", got)
	}
	if got := FromFloat64(1).Mod(0); !got.IsNaN() {
		t.Errorf("mod(1, 0): got %04x, want NaN", got)
	}
	if got := Inf(1).Mod(FromFloat64(2)); !got.IsNaN() {
		t.Errorf("mod(Inf, 2): got %04x, want NaN", got)
	}
}

func TestRounding(t *testing.T) {
	tests := []struct {
		in                        float64
		ceil, floor, trunc, round float64
	}{
		{1.5, 2, 1, 1, 2},
		{2.5, 3, 2, 2, 3}, // Round is ties away from zero
		{-1.5, -1, -2, -1, -2},
		{0.25, 1, 0, 0, 0},
		{-0.25, 0, -1, 0, 0},
		{3, 3, 3, 3, 3},
	}
	for _, tt := range tests {
		f := FromFloat64(tt.in)
		if got := f.Ceil(); got != FromFloat64(tt.ceil) {
			t.Errorf("ceil(%v): got %04x", tt.in, got)
		}
		if got := f.Floor(); got != FromFloat64(tt.floor) {
			t.Errorf("floor(%v): got %04x", tt.in, got)
		}
		if got := f.Trunc(); got != FromFloat64(tt.trunc) {
			t.Errorf("trunc(%v): got %04x", tt.in, got)
		}
		if got := f.Round(); got != FromFloat64(tt.round) {
			t.Errorf("round(%v): got %04x", tt.in, got)
		}
	}
	// -0.25 floors to -1, but -0 inputs keep their sign
	if got := Float16(0x8000).Ceil(); got != 0x8000 {
		t.Errorf("ceil(-0): got %04x", got)
	}
}

func TestMinMax(t *testing.T) {
	one, two := FromFloat64(1), FromFloat64(2)
	if got := one.Min(two); got != one {
		t.Errorf("min(1, 2): got %04x", got)
	}
	if got := two.Max(one); got != two {
		t.Errorf("max(2, 1): got %04x", got)
	}
	// a quiet NaN operand yields the other operand
	if got := NaN().Min(two); got != two {
		t.Errorf("min(NaN, 2): got %04x", got)
	}
	if got := two.Min(NaN()); got != two {
		t.Errorf("min(2, NaN): got %04x", got)
	}
	if got := NaN().Max(one); got != one {
		t.Errorf("max(NaN, 1): got %04x", got)
	}
	if got := NaN().Max(NaN()); !got.IsNaN() {
		t.Errorf("max(NaN, NaN): got %04x, want NaN", got)
	}
	if got := Inf(-1).Min(one); got != Inf(-1) {
		t.Errorf("min(-Inf, 1): got %04x", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b                   Float16
		eq, lt, le, gt, ge     bool
	}{
		{0x3c00, 0x3c00, true, false, true, false, true},
		{0x3c00, 0x4000, false, true, true, false, false},
		{0x4000, 0x3c00, false, false, false, true, true},
		{0x0000, 0x8000, true, false, true, false, true}, // +0 == -0
		{0xbc00, 0x3c00, false, true, true, false, false},
		{0xfc00, 0x7c00, false, true, true, false, false},
		{0x7e00, 0x3c00, false, false, false, false, false}, // NaN compares false
		{0x3c00, 0x7e00, false, false, false, false, false},
		{0x7e00, 0x7e00, false, false, false, false, false},
	}
	for _, tt := range tests {
		if got := tt.a.Eq(tt.b); got != tt.eq {
			t.Errorf("%04x == %04x: got %v", tt.a, tt.b, got)
		}
		if got := tt.a.Ne(tt.b); got != !tt.eq {
			t.Errorf("%04x != %04x: got %v", tt.a, tt.b, got)
		}
		if got := tt.a.Lt(tt.b); got != tt.lt {
			t.Errorf("%04x < %04x: got %v", tt.a, tt.b, got)
		}
		if got := tt.a.Le(tt.b); got != tt.le {
			t.Errorf("%04x <= %04x: got %v", tt.a, tt.b, got)
		}
		if got := tt.a.Gt(tt.b); got != tt.gt {
			t.Errorf("%04x > %04x: got %v", tt.a, tt.b, got)
		}
		if got := tt.a.Ge(tt.b); got != tt.ge {
			t.Errorf("%04x >= %04x: got %v", tt.a, tt.b, got)
		}
	}

	if got := FromFloat64(1).Cmp(FromFloat64(2)); got != -1 {
		t.Errorf("cmp(1, 2): got %d", got)
	}
	if got := FromFloat64(2).Cmp(FromFloat64(1)); got != 1 {
		t.Errorf("cmp(2, 1): got %d", got)
	}
	if got := Float16(0x8000).Cmp(0); got != 0 {
		t.Errorf("cmp(-0, +0): got %d", got)
	}
	if got := NaN().Cmp(FromFloat64(1)); got != 0 {
		t.Errorf("cmp(NaN, 1): got %d", got)
	}
}

func TestTranscendental(t *testing.T) {
	tests := []struct {
		name string
		got  Float16
		want float64
	}{
		{"Sin", FromFloat64(math.Pi / 2).Sin(), math.Sin(FromFloat64(math.Pi / 2).Float64())},
		{"Cos", FromFloat64(0).Cos(), 1},
		{"Exp", FromFloat64(1).Exp(), math.E},
		{"Exp2", FromFloat64(3).Exp2(), 8},
		{"Log", FromFloat64(1).Log(), 0},
		{"Log2", FromFloat64(8).Log2(), 3},
		{"Cbrt", FromFloat64(27).Cbrt(), 3},
		{"Atan2", FromFloat64(1).Atan2(FromFloat64(1)), math.Pi / 4},
		{"Pow", FromFloat64(2).Pow(FromFloat64(10)), 1024},
		{"Hypot", FromFloat64(3).Hypot(FromFloat64(4)), 5},
	}
	for _, tt := range tests {
		if want := FromFloat64(tt.want); tt.got != want {
			t.Errorf("%s: got %04x, want %04x", tt.name, tt.got, want)
		}
	}
	if got := FromFloat64(-1).Log(); !got.IsNaN() {
		t.Errorf("log(-1): got %04x, want NaN", got)
	}
}

func BenchmarkAdd(b *testing.B) {
	x, y := Float16(0x3e00), Float16(0x4080)
	for i := 0; i < b.N; i++ {
		runtime.KeepAlive(x.Add(y))
	}
}

func BenchmarkSqrt(b *testing.B) {
	x := Float16(0x4000)
	for i := 0; i < b.N; i++ {
		runtime.KeepAlive(x.Sqrt())
	}
}
