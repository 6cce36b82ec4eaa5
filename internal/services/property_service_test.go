// internal/services/property_service_test.go
package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayupanchal18/Renters-sub005/internal/models"
	"github.com/Ayupanchal18/Renters-sub005/internal/search"
)

func TestSearchRequestRawFiltersFoldsFlatFields(t *testing.T) {
	req := SearchPropertiesRequest{
		Query:        "2bhk near metro",
		Location:     "Pune",
		Category:     "flat",
		PropertyType: "apartment",
	}

	raw := req.RawFilters()

	assert.Equal(t, "2bhk near metro", raw.Query)
	assert.Equal(t, "Pune", raw.Location)
	assert.Equal(t, "flat", raw.Category)
	assert.Equal(t, "apartment", raw.PropertyType)
}

func TestSearchRequestRawFiltersNestedWins(t *testing.T) {
	req := SearchPropertiesRequest{
		Query:    "flat",
		Location: "Pune",
		Filters: &search.RawFilters{
			Query:    "villa",
			MinPrice: 10000,
		},
	}

	raw := req.RawFilters()

	assert.Equal(t, "villa", raw.Query)
	assert.Equal(t, "Pune", raw.Location)
	assert.Equal(t, 10000, raw.MinPrice)
}

// Payloads arrive through encoding/json, so numbers land as float64 and the
// fold has to cope with whatever the wire produced.
func TestSearchRequestFromJSON(t *testing.T) {
	body := `{
		"q": "sea view",
		"page": 2,
		"limit": "24",
		"sort": "price_low",
		"filters": {"location": "Mumbai", "bedrooms": [2, 3]}
	}`

	var req SearchPropertiesRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	raw := req.RawFilters()
	assert.Equal(t, "sea view", raw.Query)
	assert.Equal(t, "Mumbai", raw.Location)

	params := req.Pagination()
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 24, params.Limit)
	assert.Equal(t, "price_low", params.Sort)
	assert.Equal(t, "desc", params.Order)
}

func TestSearchRequestPaginationDefaults(t *testing.T) {
	params := (&SearchPropertiesRequest{}).Pagination()

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 12, params.Limit)
	assert.Empty(t, params.Sort)
}

func TestSearchRequestPaginationClamps(t *testing.T) {
	req := SearchPropertiesRequest{Page: -2, Limit: 5000}
	params := req.Pagination()

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 100, params.Limit)
}

func TestCheckTypeExclusivity(t *testing.T) {
	assert.NoError(t, checkTypeExclusivity(models.ListingTypeRent, []string{"monthlyRent"}, nil))
	assert.NoError(t, checkTypeExclusivity(models.ListingTypeBuy, nil, []string{"sellingPrice"}))

	err := checkTypeExclusivity(models.ListingTypeBuy, []string{"monthlyRent", "securityDeposit"}, nil)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "monthlyRent", vErr.Field)
	assert.Equal(t, "monthlyRent is not valid for buy listings", vErr.Message)

	err = checkTypeExclusivity(models.ListingTypeRent, nil, []string{"loanAvailable"})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "loanAvailable", vErr.Field)
	assert.Equal(t, "loanAvailable is not valid for rent listings", vErr.Message)
}

func TestRequestTypeFieldDetection(t *testing.T) {
	rent := 12000.0
	deposit := 50000.0
	loan := true

	create := CreatePropertyRequest{
		MonthlyRent:     &rent,
		SecurityDeposit: &deposit,
		PreferredTenant: "family",
	}
	assert.Equal(t, []string{"monthlyRent", "securityDeposit", "preferredTenant"}, create.rentOnlyFields())
	assert.Empty(t, create.buyOnlyFields())

	update := UpdatePropertyRequest{
		SellingPrice:     &deposit,
		PossessionStatus: "ready-to-move",
		LoanAvailable:    &loan,
	}
	assert.Equal(t, []string{"sellingPrice", "possessionStatus", "loanAvailable"}, update.buyOnlyFields())
	assert.Empty(t, update.rentOnlyFields())
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 8, clampLimit(0, 8, 50))
	assert.Equal(t, 8, clampLimit(-3, 8, 50))
	assert.Equal(t, 50, clampLimit(200, 8, 50))
	assert.Equal(t, 20, clampLimit(20, 8, 50))
}

func TestWrongListingTypeError(t *testing.T) {
	err := &WrongListingTypeError{ListingType: "buy", Path: "/buy/2bhk-flat-in-pune"}
	assert.Equal(t, `property belongs to listing type "buy"`, err.Error())
}
