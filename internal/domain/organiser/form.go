package organiser

import (
	"onexhib-admin/internal/location"
	"onexhib-admin/internal/pkg/forms"
)

// SignupRules is the organiser signup rule set. Company name and website are
// optional; the website, when present, must carry an http/https scheme. The
// location triple must come from the reference dataset, child after parent.
func SignupRules() forms.RuleSet {
	return forms.RuleSet{
		"first_name": {forms.Required("First name is required.")},
		"last_name":  {forms.Required("Last name is required.")},
		"email": {
			forms.Required("Email is required."),
			forms.Email("Invalid email address."),
		},
		"password": {
			forms.Required("Password is required."),
			forms.Password(8, "Password must be 8+ characters with letters and numbers."),
		},
		"mobile_number": {
			forms.Required("Mobile number is required."),
			forms.Digits(10, "Mobile number must be 10 digits."),
		},
		"country": {
			forms.Required("Country is required."),
			location.CountryRule("Select a valid country."),
		},
		"state": {
			forms.Required("State is required."),
			location.StateRule("country", "Select a valid state."),
		},
		"city": {
			forms.Required("City is required."),
			location.CityRule("country", "state", "Select a valid city."),
		},
		"address": {forms.Required("Address is required.")},
		"website": {forms.URL("Enter a valid URL (include http/https).")},
	}
}
