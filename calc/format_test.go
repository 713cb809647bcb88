package calc

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 14, want: "14"},
		{in: 4.0, want: "4"},
		{in: 2.5, want: "2.5"},
		{in: -7, want: "-7"},
		{in: 0, want: "0"},
		{in: math.Copysign(0, -1), want: "0"},
		{in: 1.0 / 3, want: "0.3333333333"},
		{in: 2.0 / 3, want: "0.6666666667"},
		{in: 1234567890, want: "1234567890"},
		{in: 12345678901, want: "1.23456789e+10"},
		{in: 1e16, want: "1e+16"},
		{in: 0.0001, want: "0.0001"},
		{in: 0.00001, want: "1e-05"},
		{in: math.Pi, want: "3.141592654"},
		{in: math.NaN(), want: "NaN"},
		{in: math.Inf(1), want: "+Inf"},
		{in: math.Inf(-1), want: "-Inf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in), "Format(%v)", tt.in)
	}
}

func TestFormatPrec(t *testing.T) {
	assert.Equal(t, "3.14", FormatPrec(math.Pi, 3))
	assert.Equal(t, "3.14159265358979", FormatPrec(math.Pi, 15))
	assert.Equal(t, "3.141592654", FormatPrec(math.Pi, 0))
}

func TestFormat_Idempotent(t *testing.T) {
	for _, v := range []float64{14, 2.5, 1.0 / 3, math.Pi, 1e16, 12345678901, -0.00001, 6.02214076e23, 1e-300} {
		s := Format(v)
		back, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, s)
		assert.Equal(t, s, Format(back), "Format(%v)", v)
	}
}

func TestFormat_OutputIsValidInput(t *testing.T) {
	for _, v := range []float64{1e16, 12345678901, 0.00001, math.E} {
		s := Format(v)
		n, err := ParseString(s)
		require.NoError(t, err, s)
		got, err := Eval(n, NewEnv(Degrees))
		require.NoError(t, err, s)
		assert.Equal(t, s, Format(got))
	}
}

func TestRadixView(t *testing.T) {
	tests := []struct {
		in  float64
		bin string
		hex string
		ok  bool
	}{
		{in: 0, bin: "0", hex: "0", ok: true},
		{in: 10, bin: "1010", hex: "A", ok: true},
		{in: 255, bin: "11111111", hex: "FF", ok: true},
		{in: -5, bin: "-101", hex: "-5", ok: true},
		{in: 2.5, ok: false},
		{in: 1e19, ok: false},
		{in: -1e19, ok: false},
		{in: math.Ldexp(1, 63), ok: false},
		{in: math.Inf(1), ok: false},
		{in: math.NaN(), ok: false},
	}

	for _, tt := range tests {
		bin, hex, ok := RadixView(tt.in)
		assert.Equal(t, tt.ok, ok, "RadixView(%v)", tt.in)
		assert.Equal(t, tt.bin, bin, "RadixView(%v)", tt.in)
		assert.Equal(t, tt.hex, hex, "RadixView(%v)", tt.in)
	}

	bin, hex, ok := RadixView(math.MinInt64)
	require.True(t, ok)
	assert.Equal(t, "-8000000000000000", hex)
	assert.Len(t, bin, 65)
}
