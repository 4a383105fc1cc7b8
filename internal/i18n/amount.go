package i18n

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders rupees with Indian digit grouping: the last three
// digits, then groups of two (₹2,45,600). Fractions are kept to two places.
func FormatAmount(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	var s string
	if amount.Equal(amount.Truncate(0)) {
		s = amount.StringFixed(0)
	} else {
		s = amount.StringFixed(2)
	}

	whole, frac, _ := strings.Cut(s, ".")
	if frac != "" {
		frac = "." + frac
	}
	return sign + "₹" + groupIndian(whole) + frac
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(append(parts, tail), ",")
}
