package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCountryClearsStateAndCity(t *testing.T) {
	var s Selector
	require.NoError(t, s.SetCountry("IN"))
	require.NoError(t, s.SetState("MH"))
	require.NoError(t, s.SetCity("Mumbai"))

	require.NoError(t, s.SetCountry("US"))
	assert.Equal(t, "US", s.Country())
	assert.Equal(t, "", s.State())
	assert.Equal(t, "", s.City())
}

func TestSetStateClearsCity(t *testing.T) {
	var s Selector
	require.NoError(t, s.SetCountry("IN"))
	require.NoError(t, s.SetState("MH"))
	require.NoError(t, s.SetCity("Pune"))

	require.NoError(t, s.SetState("KA"))
	assert.Equal(t, "KA", s.State())
	assert.Equal(t, "", s.City())
}

func TestOptionsEmptyWhenParentUnset(t *testing.T) {
	var s Selector
	assert.Empty(t, s.StateOptions())
	assert.Empty(t, s.CityOptions())

	require.NoError(t, s.SetCountry("IN"))
	assert.NotEmpty(t, s.StateOptions())
	assert.Empty(t, s.CityOptions(), "no state selected yet")

	require.NoError(t, s.SetState("GJ"))
	assert.Contains(t, s.CityOptions(), "Ahmedabad")
}

func TestChildSelectionRequiresParent(t *testing.T) {
	var s Selector
	assert.ErrorIs(t, s.SetState("MH"), ErrNoCountry)
	assert.ErrorIs(t, s.SetCity("Mumbai"), ErrNoState)

	require.NoError(t, s.SetCountry("IN"))
	assert.ErrorIs(t, s.SetState("ZZ"), ErrUnknownState)

	require.NoError(t, s.SetState("DL"))
	assert.ErrorIs(t, s.SetCity("Mumbai"), ErrUnknownCity)
}

func TestClearingCascades(t *testing.T) {
	var s Selector
	require.NoError(t, s.SetCountry("GB"))
	require.NoError(t, s.SetState("ENG"))
	require.NoError(t, s.SetCity("London"))

	require.NoError(t, s.SetCountry(""))
	assert.Equal(t, "", s.Country())
	assert.Equal(t, "", s.State())
	assert.Equal(t, "", s.City())
	assert.Empty(t, s.StateOptions())
}

func TestDatasetLookups(t *testing.T) {
	assert.NotEmpty(t, Countries())
	assert.Nil(t, StatesOf(""))
	assert.Nil(t, StatesOf("XX"))
	assert.Nil(t, CitiesOf("IN", ""))
	assert.Contains(t, CitiesOf("IN", "TN"), "Chennai")
}
