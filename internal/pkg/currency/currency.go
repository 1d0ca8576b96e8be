package currency

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Code is an ISO 4217 currency code supported by the booking flow.
type Code string

const (
	USD Code = "USD"
	IDR Code = "IDR"
)

type convention struct {
	symbol      string
	decimals    int32
	thousandSep string
	decimalSep  string
}

var conventions = map[Code]convention{
	USD: {symbol: "$", decimals: 2, thousandSep: ",", decimalSep: "."},
	IDR: {symbol: "Rp", decimals: 0, thousandSep: ".", decimalSep: ","},
}

// Unknown codes fall back to IDR, the platform default.
func conventionFor(code Code) convention {
	if c, ok := conventions[code]; ok {
		return c
	}
	return conventions[IDR]
}

// Symbol returns the display symbol for a currency code.
func Symbol(code Code) string {
	return conventionFor(code).symbol
}

// FormatCurrency renders an amount for display. Non-finite amounts render as
// "{symbol}0" instead of failing, matching what the booking pages show when
// the backend sends an unusable number.
func FormatCurrency(amount float64, code Code) string {
	conv := conventionFor(code)
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return conv.symbol + "0"
	}

	d := decimal.NewFromFloat(amount).Round(conv.decimals)
	negative := d.IsNegative()
	fixed := d.Abs().StringFixed(conv.decimals)

	intPart := fixed
	fracPart := ""
	if idx := strings.IndexByte(fixed, '.'); idx >= 0 {
		intPart, fracPart = fixed[:idx], fixed[idx+1:]
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(conv.symbol)
	b.WriteString(groupThousands(intPart, conv.thousandSep))
	if fracPart != "" {
		b.WriteString(conv.decimalSep)
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatCurrencyString formats a numeric string; unparsable input renders as
// "{symbol}0".
func FormatCurrencyString(amount string, code Code) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return conventionFor(code).symbol + "0"
	}
	return FormatCurrency(v, code)
}

// ParseCurrencyInput is the inverse of FormatCurrency for user-typed values:
// it strips the symbol and thousands separators and normalizes the decimal
// separator before parsing. Unparsable input yields 0.
func ParseCurrencyInput(input string, code Code) float64 {
	conv := conventionFor(code)

	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, conv.symbol, "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, conv.thousandSep, "")
	if conv.decimalSep != "." {
		s = strings.ReplaceAll(s, conv.decimalSep, ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func groupThousands(digits string, sep string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	first := len(digits) % 3
	if first > 0 {
		b.WriteString(digits[:first])
	}
	for i := first; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
