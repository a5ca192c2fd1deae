package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// E.164-like: a plus sign followed by 8 to 15 digits, first digit nonzero
var phonePattern = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// NormalizePhoneNumber cleans separators from a phone number and
// validates it against an E.164-like format. The normalized form is the
// natural key for OTP and identity records, so every entry point must
// run input through here before touching storage.
func NormalizePhoneNumber(raw string) (string, error) {
	stripped := strings.ReplaceAll(raw, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "(", "")
	stripped = strings.ReplaceAll(stripped, ")", "")

	if stripped != "" && !strings.HasPrefix(stripped, "+") {
		stripped = "+" + stripped
	}

	if !phonePattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number format: %q", raw)
	}

	return stripped, nil
}
