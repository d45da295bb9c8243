package servicedir

import (
	"onexhib-admin/internal/location"
	"onexhib-admin/internal/pkg/forms"
)

// FormRules is the "Add Exhibition Service" popup rule set. Every field is
// mandatory, the service must come from the fixed category list and the
// location triple from the reference dataset.
func FormRules() forms.RuleSet {
	return forms.RuleSet{
		"full_name": {forms.Required("Full name is required.")},
		"service_name": {
			forms.Required("Select a service."),
			forms.OneOf(ServiceNames, "Select a service."),
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
		"mobile_number": {
			forms.Required("Mobile number is required."),
			forms.Digits(10, "Mobile number must be 10 digits."),
		},
	}
}
