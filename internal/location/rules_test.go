package location

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"onexhib-admin/internal/pkg/forms"
)

func TestRulesAcceptCodesAndNames(t *testing.T) {
	country := CountryRule("bad country")
	state := StateRule("country", "bad state")
	city := CityRule("country", "state", "bad city")

	byCode := forms.Values{"country": "IN", "state": "MH", "city": "Mumbai"}
	assert.Empty(t, country(byCode, "country"))
	assert.Empty(t, state(byCode, "state"))
	assert.Empty(t, city(byCode, "city"))

	byName := forms.Values{"country": "india", "state": "maharashtra", "city": "mumbai"}
	assert.Empty(t, country(byName, "country"))
	assert.Empty(t, state(byName, "state"))
	assert.Empty(t, city(byName, "city"))
}

func TestRulesRefuseChildWithoutValidParent(t *testing.T) {
	state := StateRule("country", "bad state")
	city := CityRule("country", "state", "bad city")

	// MH is a real state, but not of the submitted country.
	v := forms.Values{"country": "US", "state": "MH", "city": ""}
	assert.Equal(t, "bad state", state(v, "state"))

	// Mumbai is a real city, but the parent state is wrong.
	v = forms.Values{"country": "IN", "state": "KA", "city": "Mumbai"}
	assert.Equal(t, "bad city", city(v, "city"))

	// A broken country refuses the whole chain.
	v = forms.Values{"country": "Atlantis", "state": "MH", "city": "Mumbai"}
	assert.Equal(t, "bad state", state(v, "state"))
	assert.Equal(t, "bad city", city(v, "city"))
}

func TestRulesLeaveEmptyValuesToRequired(t *testing.T) {
	country := CountryRule("bad country")
	city := CityRule("country", "state", "bad city")

	v := forms.Values{"country": "", "state": "", "city": ""}
	assert.Empty(t, country(v, "country"))
	assert.Empty(t, city(v, "city"))
}
