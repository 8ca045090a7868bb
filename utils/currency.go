package utils

import (
	"fmt"
	"math"
	"strings"
)

// Round2 rounds a monetary value to cents.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatCurrency formats an amount for display on tickets and the
// daily recap. Example: 15000.5 -> "$15,000.50".
func FormatCurrency(amount float64) string {
	formatted := fmt.Sprintf("%.2f", Round2(amount))

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	sign := ""
	if strings.HasPrefix(integerPart, "-") {
		sign = "-"
		integerPart = integerPart[1:]
	}

	// Sisipkan pemisah ribuan
	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	return sign + "$" + strings.Join(groups, ",") + "." + decimalPart
}
