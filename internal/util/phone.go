package util

import (
	"fmt"
	"strings"
)

// DefaultCountryCode is prefixed to bare 10-digit national numbers.
const DefaultCountryCode = "91"

// NormalizeE164 turns user input into +<digits>. Spaces, dashes and brackets
// are ignored; a bare 10-digit number (optionally with a leading 0) is treated
// as national and gets DefaultCountryCode.
func NormalizeE164(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("phone is required")
	}

	international := strings.HasPrefix(s, "+")
	var digits []rune
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, r)
		case r == '+' && i == 0:
		case r == ' ', r == '-', r == '(', r == ')':
		default:
			return "", fmt.Errorf("phone contains invalid characters")
		}
	}

	if !international {
		if len(digits) == 11 && digits[0] == '0' {
			digits = digits[1:]
		}
		if len(digits) == 10 {
			digits = append([]rune(DefaultCountryCode), digits...)
		}
	}
	if len(digits) < 8 || len(digits) > 15 {
		return "", fmt.Errorf("phone must be in E.164 format")
	}
	return "+" + string(digits), nil
}
