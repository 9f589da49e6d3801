package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

var amountNoise = strings.NewReplacer(
	"$", "", "€", "", "£", "", "¥", "",
	"USD", "", "usd", "",
	",", "", " ", "", " ", "",
)

// ParseAmount parses a carrier-formatted money cell into an exact decimal.
// Examples: "$1,234.56" -> 1234.56, "(45.00)" -> -45, "12.50-" -> -12.5.
// Anything unparseable yields an invalid NullDecimal; callers treat that as "unparsed",
// never as zero.
func ParseAmount(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}

	negative := false

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	if strings.HasSuffix(s, "-") {
		negative = true
		s = strings.TrimSuffix(s, "-")
	}

	clean := amountNoise.Replace(s)
	if clean == "" {
		return decimal.NullDecimal{}
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.NullDecimal{}
	}

	if negative {
		d = d.Neg()
	}

	return decimal.NewNullDecimal(d)
}

// ParseRate parses a commission rate cell into a fraction of premium. A cell carrying a
// percent sign is always a percentage ("1%" -> 0.01, "150%" -> 1.5). A bare number above 1
// is read as a percentage too, so "10" and "0.10" both mean 10%.
func ParseRate(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)

	percent := strings.HasSuffix(s, "%")
	if percent {
		s = strings.TrimSuffix(s, "%")
	}

	rate := ParseAmount(s)
	if !rate.Valid {
		return rate
	}

	if percent || rate.Decimal.GreaterThan(decimal.NewFromInt(1)) {
		rate.Decimal = rate.Decimal.Div(hundred)
	}

	return rate
}

// FormatAmount renders a decimal the way carrier statements usually do: "$1,234.56".
func FormatAmount(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var sb strings.Builder

	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte(',')
		}

		sb.WriteRune(c)
	}

	return sign + "$" + sb.String() + "." + frac
}
