package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWidthRange(t *testing.T) {
	cases := []struct {
		name    string
		input   any
		wantMin int
		wantMax int
	}{
		{name: "range with units", input: "24mm-26mm", wantMin: 24, wantMax: 26},
		{name: "range reversed", input: "26mm-24mm", wantMin: 24, wantMax: 26},
		{name: "range without units", input: "24-26", wantMin: 24, wantMax: 26},
		{name: "single value", input: "25mm", wantMin: 25, wantMax: 25},
		{name: "single without unit", input: "25", wantMin: 25, wantMax: 25},
		{name: "spaces", input: " 24 mm - 26 mm ", wantMin: 24, wantMax: 26},
		{name: "empty", input: "", wantMin: 0, wantMax: 0},
		{name: "nil", input: nil, wantMin: 0, wantMax: 0},
		{name: "garbage", input: "narrow-ish", wantMin: 0, wantMax: 0},
		{name: "too many parts", input: "24-25-26", wantMin: 0, wantMax: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			min, max := ParseWidthRange(tc.input)
			assert.Equal(t, tc.wantMin, min)
			assert.Equal(t, tc.wantMax, max)
		})
	}
}

func TestParseBool(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  bool
	}{
		{name: "raw true", input: true, want: true},
		{name: "raw false", input: false, want: false},
		{name: "yes upper", input: "YES", want: true},
		{name: "true mixed", input: "True", want: true},
		{name: "one", input: "1", want: true},
		{name: "approved is not generic true", input: "approved", want: false},
		{name: "nil", input: nil, want: false},
		{name: "empty", input: "", want: false},
		{name: "no", input: "no", want: false},
		{name: "number", input: float64(1), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseBool(tc.input))
		})
	}
}

func TestParseISAFlag(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  bool
	}{
		{name: "approved", input: "approved", want: true},
		{name: "approved padded", input: "  Approved ", want: true},
		{name: "yes", input: "yes", want: true},
		{name: "true", input: "true", want: true},
		{name: "raw bool", input: true, want: true},
		{name: "pending", input: "pending", want: false},
		{name: "nil", input: nil, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseISAFlag(tc.input))
		})
	}
}

func TestParseMeasure(t *testing.T) {
	cases := []struct {
		name   string
		input  any
		suffix string
		want   *float64
	}{
		{name: "weight with suffix", input: "280gr", suffix: "gr", want: ptr(280.0)},
		{name: "strength with suffix", input: "32kN", suffix: "kn", want: ptr(32.0)},
		{name: "plain number string", input: "45.5", suffix: "gr", want: ptr(45.5)},
		{name: "raw number", input: float64(50), suffix: "gr", want: ptr(50.0)},
		{name: "spaces", input: " 280 gr ", suffix: "gr", want: ptr(280.0)},
		{name: "empty", input: "", suffix: "gr", want: nil},
		{name: "nil", input: nil, suffix: "gr", want: nil},
		{name: "garbage", input: "heavy", suffix: "gr", want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseMeasure(tc.input, tc.suffix)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, *tc.want, *got)
			}
		})
	}
}

func TestFirst(t *testing.T) {
	assert.Equal(t, "Stainless Steel", First([]any{"Stainless Steel", "Aluminum"}))
	assert.Equal(t, "Aluminum", First("Aluminum"))
	assert.Equal(t, "", First([]any{}))
	assert.Equal(t, "", First(nil))
}

func TestString(t *testing.T) {
	assert.Equal(t, "", String(nil))
	assert.Equal(t, "24", String(float64(24)))
	assert.Equal(t, "24.5", String(24.5))
	assert.Equal(t, "true", String(true))
	assert.Equal(t, "x", String("x"))
}

func TestOptHelpers(t *testing.T) {
	assert.Nil(t, OptString(""))
	assert.Nil(t, OptString("   "))
	assert.Equal(t, "note", *OptString(" note "))

	assert.Nil(t, OptFloat("not a number"))
	assert.Equal(t, 1.5, *OptFloat("1.5"))
	assert.Equal(t, 1.5, *OptFloat(1.5))

	assert.Nil(t, OptInt(nil))
	assert.Equal(t, 3, *OptInt(float64(3)))

	assert.Nil(t, OptInt64("later"))
	assert.Equal(t, int64(1136073600), *OptInt64(float64(1136073600)))

	assert.Equal(t, 0, Int(""))
	assert.Equal(t, 24, Int("24"))
	assert.Equal(t, 0.0, Float("wide"))
	assert.Equal(t, 12.5, Float("12.5"))
}

func ptr(f float64) *float64 {
	return &f
}
