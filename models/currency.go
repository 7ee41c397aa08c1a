package models

import (
	"regexp"
	"strconv"
	"strings"
)

// Currency is an ISO 4217 currency code from the fixed whitelist below.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyCHF Currency = "CHF"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
	CurrencyPLN Currency = "PLN"
	CurrencyCZK Currency = "CZK"
)

var currencies = map[string]Currency{
	"EUR": CurrencyEUR,
	"USD": CurrencyUSD,
	"GBP": CurrencyGBP,
	"CHF": CurrencyCHF,
	"CAD": CurrencyCAD,
	"AUD": CurrencyAUD,
	"PLN": CurrencyPLN,
	"CZK": CurrencyCZK,
}

// LookupCurrency resolves a currency code against the whitelist. The
// second return value reports whether the code was recognized.
func LookupCurrency(code string) (Currency, bool) {
	currency, ok := currencies[strings.ToUpper(strings.TrimSpace(code))]
	return currency, ok
}

// pricePattern matches an amount followed by a whitelisted currency code,
// e.g. "49.99 EUR" or "1200CZK".
var pricePattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(EUR|USD|GBP|CHF|CAD|AUD|PLN|CZK)`)

// amountPattern matches a bare amount with no currency code.
var amountPattern = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// decimalAmountPattern matches an amount carrying a decimal separator.
var decimalAmountPattern = regexp.MustCompile(`\d+[.,]\d+`)

// priceContextPattern marks a source as price-like: a price keyword or a
// currency symbol near the amount.
var priceContextPattern = regexp.MustCompile(`(?i)price|preis|cost|[€$£]`)

// ExtractPrice scans the given free-text sources, in priority order, for a
// price. A match with a currency code wins. Failing that, a bare amount is
// taken with the fallback currency, but only when the source is price-like
// (a price keyword or currency symbol) or the amount has a decimal
// separator; a plain integer in arbitrary text is a year or a quantity as
// often as a price. When nothing parses, the price is nil and the currency
// is the fallback.
func ExtractPrice(sources []string, fallback Currency) (*float64, Currency) {
	for _, source := range sources {
		match := pricePattern.FindStringSubmatch(source)
		if match == nil {
			continue
		}
		if price, err := parseAmount(match[1]); err == nil {
			return &price, Currency(match[2])
		}
	}
	for _, source := range sources {
		var match string
		if priceContextPattern.MatchString(source) {
			match = amountPattern.FindString(source)
		} else {
			match = decimalAmountPattern.FindString(source)
		}
		if match == "" {
			continue
		}
		if price, err := parseAmount(match); err == nil {
			return &price, fallback
		}
	}
	return nil, fallback
}

func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}
