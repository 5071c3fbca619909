package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseDecimalBR parses a pt-BR formatted decimal ("1.234,50"), tolerating an
// optional "R$" prefix. A malformed or empty string is treated as zero, which
// is what the creation form relies on when the base value is left blank.
func ParseDecimalBR(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatDecimalBR renders a value with "." as thousands separator, "," as
// decimal separator and exactly two fraction digits.
func FormatDecimalBR(v float64) string {
	neg := v < 0
	v = math.Round(math.Abs(v)*100) / 100

	s := strconv.FormatFloat(v, 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	intPart, frac := parts[0], parts[1]

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}

	out := b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

// ValorFrete applies the pricing rule used once at creation time:
// base value plus a fixed surcharge per ajudante, rounded to cents.
func ValorFrete(base string, ajudantes int) float64 {
	total := ParseDecimalBR(base) + float64(ajudantes)*ValorPorAjudante
	return math.Round(total*100) / 100
}

// CalcularValorFrete is the string-in/string-out form of ValorFrete, matching
// the locale convention the forms display.
func CalcularValorFrete(base string, ajudantes int) string {
	return FormatDecimalBR(ValorFrete(base, ajudantes))
}
