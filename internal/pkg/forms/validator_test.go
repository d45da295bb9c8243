package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupRules() RuleSet {
	return RuleSet{
		"email": {
			Required("Email is required."),
			Email("Invalid email address."),
		},
		"password": {
			Required("Password is required."),
			Password(8, "Password must be 8+ characters with letters and numbers."),
		},
		"mobile_number": {
			Required("Mobile number is required."),
			Digits(10, "Mobile number must be 10 digits."),
		},
		"pincode": {
			Digits(6, "Pincode must be 6 digits."),
		},
		"website": {
			URL("Enter a valid URL (include http/https)."),
		},
	}
}

func TestPasswordRule(t *testing.T) {
	v := NewValidator(signupRules())

	base := Values{
		"email":         "a@b.com",
		"mobile_number": "9876543210",
	}

	cases := []struct {
		password string
		ok       bool
	}{
		{"abcdefg1", true},  // 8 chars, letter+digit
		{"abcdefg", false},  // no digit
		{"1234567", false},  // no letter, too short
		{"12345678", false}, // no letter
		{"a1b2c3d", false},  // 7 chars
		{"longpassword9", true},
	}
	for _, tc := range cases {
		base["password"] = tc.password
		errs := v.Validate(base)
		if tc.ok {
			assert.NotContains(t, errs, "password", "password %q should pass", tc.password)
		} else {
			assert.Equal(t, "Password must be 8+ characters with letters and numbers.", errs["password"],
				"password %q should fail", tc.password)
		}
	}
}

func TestDigitsRule(t *testing.T) {
	v := NewValidator(signupRules())
	values := Values{
		"email":    "a@b.com",
		"password": "abcdefg1",
	}

	values["mobile_number"] = "98765432" // 8 digits
	errs := v.Validate(values)
	assert.Equal(t, "Mobile number must be 10 digits.", errs["mobile_number"])

	values["mobile_number"] = "98765432101" // 11 digits
	errs = v.Validate(values)
	assert.Equal(t, "Mobile number must be 10 digits.", errs["mobile_number"])

	values["mobile_number"] = "98765x4321" // non-digit
	errs = v.Validate(values)
	assert.Equal(t, "Mobile number must be 10 digits.", errs["mobile_number"])

	values["mobile_number"] = "9876543210"
	errs = v.Validate(values)
	assert.NotContains(t, errs, "mobile_number")

	values["pincode"] = "12345"
	errs = v.Validate(values)
	assert.Equal(t, "Pincode must be 6 digits.", errs["pincode"])

	values["pincode"] = "110001"
	errs = v.Validate(values)
	assert.Nil(t, errs)
}

func TestURLRuleRequiresScheme(t *testing.T) {
	v := NewValidator(signupRules())
	values := Values{
		"email":         "a@b.com",
		"password":      "abcdefg1",
		"mobile_number": "9876543210",
	}

	values["website"] = "example.com"
	errs := v.Validate(values)
	assert.Contains(t, errs, "website")

	values["website"] = "https://example.com"
	errs = v.Validate(values)
	assert.NotContains(t, errs, "website")

	// optional: empty passes
	values["website"] = ""
	errs = v.Validate(values)
	assert.Nil(t, errs)
}

func TestDateNotBefore(t *testing.T) {
	rules := RuleSet{
		"starting_date": {Required("Start date is required.")},
		"ending_date": {
			Required("End date is required."),
			DateNotBefore("starting_date", "End date must be same or after start date."),
		},
	}
	v := NewValidator(rules)

	errs := v.Validate(Values{"starting_date": "2025-06-10", "ending_date": "2025-06-01"})
	require.Contains(t, errs, "ending_date")
	assert.Equal(t, "End date must be same or after start date.", errs["ending_date"])

	errs = v.Validate(Values{"starting_date": "2025-06-10", "ending_date": "2025-06-10"})
	assert.Nil(t, errs, "same day is allowed")

	errs = v.Validate(Values{"starting_date": "2025-06-01", "ending_date": "2025-06-10"})
	assert.Nil(t, errs)
}

func TestVisibleOnlyShowsTouchedFields(t *testing.T) {
	v := NewValidator(signupRules())
	values := Values{} // everything required is missing

	assert.Nil(t, v.Visible(values), "nothing touched, nothing shown")

	v.Touch("email")
	vis := v.Visible(values)
	require.Len(t, vis, 1)
	assert.Equal(t, "Email is required.", vis["email"])

	// submit forces every field touched
	v.TouchAll()
	vis = v.Visible(values)
	assert.Contains(t, vis, "password")
	assert.Contains(t, vis, "mobile_number")
}

func TestOneOf(t *testing.T) {
	rules := RuleSet{
		"service_name": {
			Required("Service is required."),
			OneOf([]string{"Printing", "Fabrication"}, "Unknown service."),
		},
	}
	v := NewValidator(rules)

	errs := v.Validate(Values{"service_name": "Catering"})
	assert.Equal(t, "Unknown service.", errs["service_name"])

	errs = v.Validate(Values{"service_name": "Printing"})
	assert.Nil(t, errs)
}
