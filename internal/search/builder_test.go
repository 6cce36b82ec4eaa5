// internal/search/builder_test.go
package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayupanchal18/Renters-sub005/internal/models"
)

func clauseExprs(spec MatchSpec) []string {
	exprs := make([]string, 0, len(spec.Clauses))
	for _, c := range spec.Clauses {
		exprs = append(exprs, c.Expr)
	}
	return exprs
}

func TestBuildScopesEveryQueryToActiveAndType(t *testing.T) {
	rent := Build(Filters{}, RentListing)
	if assert.Len(t, rent.Clauses, 2) {
		assert.Equal(t, "status = ?", rent.Clauses[0].Expr)
		assert.Equal(t, []interface{}{models.PropertyStatusActive}, rent.Clauses[0].Args)
		// Legacy rows carry no listing type and still count as rentals
		assert.Equal(t, "(listing_type = ? OR listing_type = '' OR listing_type IS NULL)", rent.Clauses[1].Expr)
	}

	buy := Build(Filters{}, BuyListing)
	if assert.Len(t, buy.Clauses, 2) {
		assert.Equal(t, "listing_type = ?", buy.Clauses[1].Expr)
		assert.Equal(t, []interface{}{models.ListingTypeBuy}, buy.Clauses[1].Args)
	}
}

func TestBuildPriceClauses(t *testing.T) {
	spec := Build(Filters{MinPrice: 8000, MaxPrice: 20000}, RentListing)
	exprs := clauseExprs(spec)
	assert.Contains(t, exprs, "monthly_rent >= ?")
	assert.Contains(t, exprs, "monthly_rent <= ?")

	// An untouched ceiling imposes no upper bound
	spec = Build(Filters{MaxPrice: RentListing.PriceCeiling}, RentListing)
	assert.NotContains(t, clauseExprs(spec), "monthly_rent <= ?")

	// The buy config swaps the price column
	spec = Build(Filters{MinPrice: 2500000, MaxPrice: 9000000}, BuyListing)
	exprs = clauseExprs(spec)
	assert.Contains(t, exprs, "selling_price >= ?")
	assert.Contains(t, exprs, "selling_price <= ?")
	assert.NotContains(t, exprs, "monthly_rent >= ?")
}

func TestBuildTextQueryClause(t *testing.T) {
	spec := Build(Filters{Query: "Flat"}, RentListing)

	var clause *Clause
	for i := range spec.Clauses {
		if spec.Clauses[i].Expr == "(LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ? OR LOWER(property_type) LIKE ? OR LOWER(city) LIKE ?)" {
			clause = &spec.Clauses[i]
		}
	}
	if assert.NotNil(t, clause) {
		assert.Len(t, clause.Args, 5)
		for _, arg := range clause.Args {
			assert.Equal(t, "%flat%", arg)
		}
	}
}

func TestBuildEscapesLikeMetacharacters(t *testing.T) {
	spec := Build(Filters{Query: `50%_off\deal`}, RentListing)

	found := false
	for _, c := range spec.Clauses {
		for _, arg := range c.Args {
			if s, ok := arg.(string); ok && s == `%50\%\_off\\deal%` {
				found = true
			}
		}
	}
	assert.True(t, found, "metacharacters should be escaped inside the pattern")
}

func TestBuildBedroomsClause(t *testing.T) {
	spec := Build(Filters{Bedrooms: []int{2, 5}}, RentListing)

	exprs := clauseExprs(spec)
	assert.Contains(t, exprs, "(bedrooms = ? OR bedrooms >= ?)")

	spec = Build(Filters{Bedrooms: []int{3}}, RentListing)
	assert.Contains(t, clauseExprs(spec), "(bedrooms = ?)")
}

func TestBuildAmenitiesAndFurnishing(t *testing.T) {
	spec := Build(Filters{
		Amenities:  []string{"gym", "parking"},
		Furnishing: []string{"furnished"},
	}, RentListing)

	exprs := clauseExprs(spec)
	assert.Contains(t, exprs, "amenities @> ?")
	assert.Contains(t, exprs, "LOWER(furnishing) IN ?")
}

func TestBuildGatesTypeSpecificClauses(t *testing.T) {
	// Even a hand-built Filters value cannot smuggle a rent-only clause
	// into a buy query or vice versa.
	f := Filters{TenantType: "family", PossessionStatus: "ready-to-move"}

	rentExprs := clauseExprs(Build(f, RentListing))
	assert.Contains(t, rentExprs, "preferred_tenant = ?")
	assert.NotContains(t, rentExprs, "possession_status = ?")

	buyExprs := clauseExprs(Build(f, BuyListing))
	assert.NotContains(t, buyExprs, "preferred_tenant = ?")
	assert.Contains(t, buyExprs, "possession_status = ?")
}

func TestBuildCategoryAndPropertyType(t *testing.T) {
	spec := Build(Filters{Category: "flat", PropertyType: "apartment"}, RentListing)

	exprs := clauseExprs(spec)
	assert.Contains(t, exprs, "LOWER(category) = ?")
	assert.Contains(t, exprs, "LOWER(property_type) LIKE ?")
}

func TestForListingType(t *testing.T) {
	assert.Equal(t, BuyListing, ForListingType(models.ListingTypeBuy))
	assert.Equal(t, RentListing, ForListingType(models.ListingTypeRent))
	// Legacy rows without a listing type resolve to rent
	assert.Equal(t, RentListing, ForListingType(""))
}
