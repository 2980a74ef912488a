package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryValidate(t *testing.T) {
	country := &Country{Code: "USA", Name: "United States"}
	require.NoError(t, country.Validate())
}

func TestCountryValidateRejectsMissingFields(t *testing.T) {
	assert.Error(t, (&Country{Name: "No Code"}).Validate())
	assert.Error(t, (&Country{Code: "USA"}).Validate())
	assert.Error(t, (&Country{Code: "TOOLONG", Name: "Bad Code"}).Validate())
	assert.Error(t, (&Country{Code: "X", Name: "Too Short"}).Validate())
}

func TestCountryHasCoordinates(t *testing.T) {
	lat := 38.0
	lng := -97.0

	assert.False(t, (&Country{}).HasCoordinates())
	assert.False(t, (&Country{Latitude: &lat}).HasCoordinates())
	assert.False(t, (&Country{Longitude: &lng}).HasCoordinates())
	assert.True(t, (&Country{Latitude: &lat, Longitude: &lng}).HasCoordinates())
}
