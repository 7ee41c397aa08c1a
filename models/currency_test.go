package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCurrency(t *testing.T) {
	currency, ok := LookupCurrency("eur")
	assert.True(t, ok)
	assert.Equal(t, CurrencyEUR, currency)

	currency, ok = LookupCurrency(" USD ")
	assert.True(t, ok)
	assert.Equal(t, CurrencyUSD, currency)

	_, ok = LookupCurrency("bitcoin")
	assert.False(t, ok)

	_, ok = LookupCurrency("")
	assert.False(t, ok)
}

func TestExtractPrice(t *testing.T) {
	cases := []struct {
		name         string
		sources      []string
		wantPrice    *float64
		wantCurrency Currency
	}{
		{
			name:         "price with code",
			sources:      []string{"49.99 EUR"},
			wantPrice:    fptr(49.99),
			wantCurrency: CurrencyEUR,
		},
		{
			name:         "comma decimal",
			sources:      []string{"ab 119,50EUR inkl. MwSt."},
			wantPrice:    fptr(119.5),
			wantCurrency: CurrencyEUR,
		},
		{
			name:         "first source wins",
			sources:      []string{"89 USD", "49.99 EUR"},
			wantPrice:    fptr(89.0),
			wantCurrency: CurrencyUSD,
		},
		{
			name:         "tooltip fallback",
			sources:      []string{"contact the vendor", "about 120 CHF per unit"},
			wantPrice:    fptr(120.0),
			wantCurrency: CurrencyCHF,
		},
		{
			name:         "bare amount takes fallback currency",
			sources:      []string{"price: 75"},
			wantPrice:    fptr(75.0),
			wantCurrency: CurrencyEUR,
		},
		{
			name:         "bare decimal amount",
			sources:      []string{"ab 119,50 inkl. MwSt."},
			wantPrice:    fptr(119.5),
			wantCurrency: CurrencyEUR,
		},
		{
			name:         "symbol-prefixed amount",
			sources:      []string{"€ 85"},
			wantPrice:    fptr(85.0),
			wantCurrency: CurrencyEUR,
		},
		{
			name:         "plain integer outside price context is not a price",
			sources:      []string{"no longer sold since 2020"},
			wantPrice:    nil,
			wantCurrency: CurrencyEUR,
		},
		{
			name:         "quantity is not a price",
			sources:      []string{"set of 2 rollers"},
			wantPrice:    nil,
			wantCurrency: CurrencyEUR,
		},
		{
			name:         "nothing parsable",
			sources:      []string{"sold out", "ask your dealer"},
			wantPrice:    nil,
			wantCurrency: CurrencyEUR,
		},
		{
			name:         "no sources",
			sources:      nil,
			wantPrice:    nil,
			wantCurrency: CurrencyEUR,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			price, currency := ExtractPrice(tc.sources, CurrencyEUR)
			assert.Equal(t, tc.wantCurrency, currency)
			if tc.wantPrice == nil {
				assert.Nil(t, price)
				return
			}
			require.NotNil(t, price)
			assert.InDelta(t, *tc.wantPrice, *price, 0.001)
		})
	}
}

func fptr(f float64) *float64 {
	return &f
}
