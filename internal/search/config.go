// internal/search/config.go
package search

import (
	"github.com/Ayupanchal18/Renters-sub005/internal/models"
)

// ListingTypeConfig parametrizes the shared query builder for one listing
// type: which price column range filters target, the ceiling above which a
// max-price bound means "unbounded", whether legacy rows with no listing
// type are included, and which type-specific filters may produce clauses.
// Keeping rent-only and buy-only filters behind these flags is what stops a
// possession filter from ever leaking into a rent query.
type ListingTypeConfig struct {
	Value        models.ListingType
	PriceColumn  string
	PriceCeiling float64
	// IncludeLegacy matches rows that carry no listing type at all. Only
	// rent sets it: records created before the rent/buy split are rentals.
	IncludeLegacy   bool
	AllowTenantType bool
	AllowPossession bool
	AllowLoan       bool
}

var (
	RentListing = ListingTypeConfig{
		Value:           models.ListingTypeRent,
		PriceColumn:     "monthly_rent",
		PriceCeiling:    100000,
		IncludeLegacy:   true,
		AllowTenantType: true,
	}

	BuyListing = ListingTypeConfig{
		Value:           models.ListingTypeBuy,
		PriceColumn:     "selling_price",
		PriceCeiling:    50000000,
		AllowPossession: true,
		AllowLoan:       true,
	}
)

// ForListingType maps a stored listing type to its config. Empty input
// resolves to rent, matching the legacy default.
func ForListingType(t models.ListingType) ListingTypeConfig {
	if t == models.ListingTypeBuy {
		return BuyListing
	}
	return RentListing
}
