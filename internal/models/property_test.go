// internal/models/property_test.go
package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestEffectiveListingType(t *testing.T) {
	tests := []struct {
		name     string
		listing  ListingType
		expected ListingType
	}{
		{"explicit rent", ListingTypeRent, ListingTypeRent},
		{"explicit buy", ListingTypeBuy, ListingTypeBuy},
		{"legacy empty defaults to rent", "", ListingTypeRent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Property{ListingType: tt.listing}
			assert.Equal(t, tt.expected, p.EffectiveListingType())
		})
	}
}

func TestCanonicalPath(t *testing.T) {
	p := Property{Slug: "2bhk-flat-in-pune", ListingType: ListingTypeBuy}
	assert.Equal(t, "/buy/2bhk-flat-in-pune", p.CanonicalPath())

	legacy := Property{Slug: "old-room-listing"}
	assert.Equal(t, "/rent/old-room-listing", legacy.CanonicalPath())
}

func TestPrice(t *testing.T) {
	rent := Property{ListingType: ListingTypeRent, MonthlyRent: floatPtr(15000)}
	assert.Equal(t, 15000.0, rent.Price())

	buy := Property{ListingType: ListingTypeBuy, SellingPrice: floatPtr(7500000)}
	assert.Equal(t, 7500000.0, buy.Price())

	// A buy listing never falls back to rent fields.
	crossed := Property{ListingType: ListingTypeBuy, MonthlyRent: floatPtr(15000)}
	assert.Zero(t, crossed.Price())

	unpriced := Property{}
	assert.Zero(t, unpriced.Price())
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		status   PropertyStatus
		expected bool
	}{
		{PropertyStatusActive, true},
		{PropertyStatusBlocked, false},
		{PropertyStatusInactive, false},
	}

	for _, tt := range tests {
		p := Property{Status: tt.status}
		assert.Equal(t, tt.expected, p.IsActive(), string(tt.status))
	}
}

func TestIsOwnedBy(t *testing.T) {
	owner := uuid.New()
	p := Property{OwnerID: owner}

	assert.True(t, p.IsOwnedBy(owner))
	assert.False(t, p.IsOwnedBy(uuid.New()))
}

func TestValidListingType(t *testing.T) {
	assert.True(t, ValidListingType("rent"))
	assert.True(t, ValidListingType("buy"))
	assert.False(t, ValidListingType("lease"))
	assert.False(t, ValidListingType(""))
}

func TestValidCategory(t *testing.T) {
	for _, category := range []string{"room", "flat", "house", "pg", "hostel", "commercial"} {
		assert.True(t, ValidCategory(category), category)
	}
	assert.False(t, ValidCategory("castle"))
	assert.False(t, ValidCategory("Flat"))
}
