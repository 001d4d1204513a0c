package draft

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// price and mileage are held as display strings grouped the way the
// Turkish market writes them (1.250.000). Submission strips the
// grouping back out.
var printer = message.NewPrinter(language.Turkish)

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatAmount strips all non-digit characters from s, parses the rest
// as a base-10 integer and re-renders it with locale separators.
// Inputs without any digit collapse to the empty string.
func FormatAmount(s string) string {
	digits := digitsOnly(s)
	if digits == "" {
		return ""
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		// digit run too long to represent; keep it ungrouped
		return digits
	}
	return printer.Sprintf("%d", n)
}

// ParseAmount reverses FormatAmount: separators are stripped and the
// digit sequence parsed as an integer. Empty input parses to 0.
func ParseAmount(s string) int {
	digits := digitsOnly(s)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
