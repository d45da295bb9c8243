// Package location backs the cascading Country → State → City dropdowns used
// by the signup and company forms.
package location

import "errors"

var (
	ErrUnknownCountry = errors.New("unknown country code")
	ErrUnknownState   = errors.New("unknown state code")
	ErrUnknownCity    = errors.New("unknown city")
	ErrNoCountry      = errors.New("country is not selected")
	ErrNoState        = errors.New("state is not selected")
)

// Selector holds the three dependent selections. The option lists are always
// derived from the current selection, never stored, so they can be recomputed
// on every render. Invariant: city implies state, state implies country.
type Selector struct {
	country string
	state   string
	city    string
}

// SetCountry selects a country and clears state and city. An empty code
// clears the whole cascade.
func (s *Selector) SetCountry(code string) error {
	if code != "" && !known(code) {
		return ErrUnknownCountry
	}
	s.country = code
	s.state = ""
	s.city = ""
	return nil
}

// SetState selects a state within the current country and clears city.
func (s *Selector) SetState(code string) error {
	if code == "" {
		s.state = ""
		s.city = ""
		return nil
	}
	if s.country == "" {
		return ErrNoCountry
	}
	if !hasState(s.country, code) {
		return ErrUnknownState
	}
	s.state = code
	s.city = ""
	return nil
}

// SetCity selects a city within the current state. City only.
func (s *Selector) SetCity(name string) error {
	if name == "" {
		s.city = ""
		return nil
	}
	if s.state == "" {
		return ErrNoState
	}
	for _, c := range CitiesOf(s.country, s.state) {
		if c == name {
			s.city = name
			return nil
		}
	}
	return ErrUnknownCity
}

// Country returns the selected country code, or "".
func (s *Selector) Country() string { return s.country }

// State returns the selected state code, or "".
func (s *Selector) State() string { return s.state }

// City returns the selected city name, or "".
func (s *Selector) City() string { return s.city }

// StateOptions derives the selectable states; empty when no country is set.
func (s *Selector) StateOptions() []State { return StatesOf(s.country) }

// CityOptions derives the selectable cities; empty when no state is set.
func (s *Selector) CityOptions() []string { return CitiesOf(s.country, s.state) }

func known(code string) bool {
	for _, c := range countries {
		if c.Code == code {
			return true
		}
	}
	return false
}

func hasState(countryCode, stateCode string) bool {
	for _, st := range StatesOf(countryCode) {
		if st.Code == stateCode {
			return true
		}
	}
	return false
}
