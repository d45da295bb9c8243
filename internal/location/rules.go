package location

import (
	"strings"

	"onexhib-admin/internal/pkg/forms"
)

// Form rules backing the dependent country/state/city fields. Dropdown
// screens submit dataset codes while the free-text screens submit display
// names, so a value may match either, case-insensitively. Each rule drives a
// Selector through the cascade, so a child value can never pass without a
// valid parent.

func resolveCountry(v string) (Country, bool) {
	for _, c := range countries {
		if strings.EqualFold(c.Code, v) || strings.EqualFold(c.Name, v) {
			return c, true
		}
	}
	return Country{}, false
}

func resolveState(c Country, v string) (State, bool) {
	for _, s := range c.States {
		if strings.EqualFold(s.Code, v) || strings.EqualFold(s.Name, v) {
			return s, true
		}
	}
	return State{}, false
}

func resolveCity(s State, v string) (string, bool) {
	for _, city := range s.Cities {
		if strings.EqualFold(city, v) {
			return city, true
		}
	}
	return "", false
}

// cascade replays the submitted triple on a Selector and returns the first
// level that was refused: "country", "state", "city", or "" when everything
// down to the deepest non-empty value holds.
func cascade(country, state, city string) string {
	var sel Selector

	c, ok := resolveCountry(country)
	if !ok {
		return "country"
	}
	if sel.SetCountry(c.Code) != nil {
		return "country"
	}

	if state == "" {
		if city != "" {
			return "city"
		}
		return ""
	}
	s, ok := resolveState(c, state)
	if !ok {
		return "state"
	}
	if sel.SetState(s.Code) != nil {
		return "state"
	}

	if city == "" {
		return ""
	}
	name, ok := resolveCity(s, city)
	if !ok {
		return "city"
	}
	if sel.SetCity(name) != nil {
		return "city"
	}
	return ""
}

// CountryRule fails when a non-empty country is not in the dataset.
func CountryRule(msg string) forms.Rule {
	return func(values forms.Values, field string) string {
		v := strings.TrimSpace(values[field])
		if v == "" {
			return ""
		}
		if cascade(v, "", "") != "" {
			return msg
		}
		return ""
	}
}

// StateRule fails when a non-empty state does not belong to the submitted
// country. Without a valid country the state can never pass.
func StateRule(countryField, msg string) forms.Rule {
	return func(values forms.Values, field string) string {
		v := strings.TrimSpace(values[field])
		if v == "" {
			return ""
		}
		if cascade(strings.TrimSpace(values[countryField]), v, "") != "" {
			return msg
		}
		return ""
	}
}

// CityRule fails when a non-empty city does not belong to the submitted
// country/state pair.
func CityRule(countryField, stateField, msg string) forms.Rule {
	return func(values forms.Values, field string) string {
		v := strings.TrimSpace(values[field])
		if v == "" {
			return ""
		}
		if cascade(strings.TrimSpace(values[countryField]), strings.TrimSpace(values[stateField]), v) != "" {
			return msg
		}
		return ""
	}
}
