// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var tenDigits = regexp.MustCompile(`^\d{10}$`)

// ValidatePhone checks the storefront phone rule: after stripping
// whitespace, exactly 10 digits remain.
func ValidatePhone(phone string) bool {
	cleaned := strings.Join(strings.Fields(phone), "")
	return tenDigits.MatchString(cleaned)
}
