package forms

import (
	"regexp"
	"strings"
	"time"

	playground "github.com/go-playground/validator/v10"
)

// Values is the current field values of a form, keyed by field name.
type Values map[string]string

// Rule checks one field against the whole form and returns an error message,
// or "" when the field passes.
type Rule func(values Values, field string) string

var (
	validate = playground.New()

	digitsRe = regexp.MustCompile(`^\d+$`)
	letterRe = regexp.MustCompile(`[A-Za-z]`)
	digitRe  = regexp.MustCompile(`\d`)
)

// Required fails on empty or whitespace-only values.
func Required(msg string) Rule {
	return func(values Values, field string) string {
		if strings.TrimSpace(values[field]) == "" {
			return msg
		}
		return ""
	}
}

// Match fails when a non-empty value does not match re. Empty values pass;
// combine with Required when the field is mandatory.
func Match(re *regexp.Regexp, msg string) Rule {
	return func(values Values, field string) string {
		v := strings.TrimSpace(values[field])
		if v == "" {
			return ""
		}
		if !re.MatchString(v) {
			return msg
		}
		return ""
	}
}

// Email fails when a non-empty value is not a plausible email address.
func Email(msg string) Rule {
	return func(values Values, field string) string {
		v := strings.TrimSpace(values[field])
		if v == "" {
			return ""
		}
		if err := validate.Var(v, "email"); err != nil {
			return msg
		}
		return ""
	}
}

// URL fails when a non-empty value is not an http/https URL. The scheme is
// mandatory: "example.com" is rejected.
func URL(msg string) Rule {
	return func(values Values, field string) string {
		v := strings.TrimSpace(values[field])
		if v == "" {
			return ""
		}
		lower := strings.ToLower(v)
		if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
			return msg
		}
		if err := validate.Var(v, "url"); err != nil {
			return msg
		}
		return ""
	}
}

// Digits fails when a non-empty value is not exactly n digits. Used for
// mobile numbers (10) and pincodes (6).
func Digits(n int, msg string) Rule {
	return func(values Values, field string) string {
		v := strings.TrimSpace(values[field])
		if v == "" {
			return ""
		}
		if len(v) != n || !digitsRe.MatchString(v) {
			return msg
		}
		return ""
	}
}

// Password fails when a non-empty value is shorter than min characters or
// lacks a letter or a digit.
func Password(min int, msg string) Rule {
	return func(values Values, field string) string {
		v := values[field]
		if v == "" {
			return ""
		}
		if len(v) < min || !letterRe.MatchString(v) || !digitRe.MatchString(v) {
			return msg
		}
		return ""
	}
}

// DateNotBefore fails when both fields hold calendar dates (2006-01-02) and
// the checked field is earlier than the other one. Unparseable or missing
// values pass here; Required and Match own those cases.
func DateNotBefore(otherField, msg string) Rule {
	return func(values Values, field string) string {
		v, o := strings.TrimSpace(values[field]), strings.TrimSpace(values[otherField])
		if v == "" || o == "" {
			return ""
		}
		end, err := time.Parse("2006-01-02", v)
		if err != nil {
			return ""
		}
		start, err := time.Parse("2006-01-02", o)
		if err != nil {
			return ""
		}
		if end.Before(start) {
			return msg
		}
		return ""
	}
}

// OneOf fails when a non-empty value is not in the allowed set.
func OneOf(allowed []string, msg string) Rule {
	return func(values Values, field string) string {
		v := strings.TrimSpace(values[field])
		if v == "" {
			return ""
		}
		for _, a := range allowed {
			if v == a {
				return ""
			}
		}
		return msg
	}
}

// Check wraps an arbitrary predicate over the raw value.
func Check(fn func(value string) bool, msg string) Rule {
	return func(values Values, field string) string {
		v := strings.TrimSpace(values[field])
		if v == "" {
			return ""
		}
		if !fn(v) {
			return msg
		}
		return ""
	}
}
