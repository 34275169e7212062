package form

import (
	"regexp"
	"strings"
)

const (
	MsgRequired     = "This field is required"
	MsgInvalidEmail = "Invalid email format"
	MsgInvalidPhone = "Invalid phone number format (10 digits required)"
	MsgInvalidNum   = "Invalid number format"

	phoneDigits = 10
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	numberRe   = regexp.MustCompile(`^\d+$`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

// Validate checks a raw field value against the rules of its input kind.
// It returns an empty string when the value is acceptable, otherwise a message suitable for showing next to the field.
// Empty optional values are always accepted; empty mandatory values are always rejected.
func Validate(kind Kind, value string, mandatory bool) string {
	if strings.TrimSpace(value) == "" {
		if mandatory {
			return MsgRequired
		}

		return ""
	}

	switch kind {
	case KindEmail:
		if !emailRe.MatchString(value) {
			return MsgInvalidEmail
		}
	case KindPhone:
		if len(nonDigitRe.ReplaceAllString(value, "")) != phoneDigits {
			return MsgInvalidPhone
		}
	case KindNumber:
		if !numberRe.MatchString(value) {
			return MsgInvalidNum
		}
	}

	return ""
}
