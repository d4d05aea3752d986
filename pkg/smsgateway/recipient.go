package smsgateway

import (
	"regexp"
	"strings"
)

// International format: leading +, a 1-4 digit country code and 6-14 further
// digits, 7-18 digits total.
var recipientPattern = regexp.MustCompile(`^\+[1-9][0-9]{6,17}$`)

// NormalizeRecipient strips the spacing characters commonly found in
// hand-entered phone numbers.
func NormalizeRecipient(value string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "\t", "")
	return replacer.Replace(strings.TrimSpace(value))
}

// ValidateRecipient reports whether a normalized recipient is a plausible
// international phone number. Callers must reject invalid recipients before
// any network I/O is attempted.
func ValidateRecipient(value string) bool {
	return recipientPattern.MatchString(value)
}
