package format

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPoints(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"1.2", "1"},
		{"999999", "999999"},
		{"1000000", "1.00M"},
		{"1500000", "1.50M"},
		{"999999999", "1000.00M"},
		{"2500000000", "2.50B"},
		{"3000000000000", "3.00T"},
		{"4.5e15", "4.50Qa"},
		{"1e54", "1.00G"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Points(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestPoints_ClampsPastLastTier(t *testing.T) {
	// 10^60 is two tiers past G (10^54), so it renders as a multiple of G.
	got := Points(decimal.New(1, 60))
	assert.Equal(t, "1000000.00G", got)
	assert.True(t, strings.HasSuffix(Points(decimal.New(7, 300)), "G"))
}

func TestIntegerDigits(t *testing.T) {
	tests := []struct {
		name string
		in   decimal.Decimal
		want int
	}{
		{"one", decimal.NewFromInt(1), 1},
		{"fraction dropped", decimal.RequireFromString("1500000.75"), 7},
		{"trailing zeros in coefficient", decimal.New(1000, -2), 2},
		{"exponent form", decimal.New(15, 5), 7},
		{"negative", decimal.NewFromInt(-12345), 5},
		{"huge exponent", decimal.New(1, 2_000_000), 2_000_001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntegerDigits(tt.in))
		})
	}
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, "2", Seconds(decimal.NewFromInt(2)))
	assert.Equal(t, "1.8", Seconds(decimal.RequireFromString("1.80")))
	assert.Equal(t, "0.1", Seconds(decimal.RequireFromString("0.1")))
	assert.Equal(t, "0.33", Seconds(decimal.RequireFromString("0.3333")))
}
