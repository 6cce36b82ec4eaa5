// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedListing struct {
	Title       string  `validate:"required,min=5"`
	Category    string  `validate:"required,category"`
	ListingType string  `validate:"omitempty,listing_type"`
	MonthlyRent float64 `validate:"omitempty,gt=0"`
}

func TestValidateStructPasses(t *testing.T) {
	err := ValidateStruct(&validatedListing{
		Title:       "2BHK Flat in Kothrud",
		Category:    "flat",
		ListingType: "rent",
		MonthlyRent: 18000,
	})
	assert.NoError(t, err)
}

func TestCategoryValidator(t *testing.T) {
	for _, category := range []string{"room", "flat", "house", "pg", "hostel", "commercial"} {
		err := ValidateStruct(&validatedListing{Title: "2BHK Flat in Kothrud", Category: category})
		assert.NoError(t, err, category)
	}

	err := ValidateStruct(&validatedListing{Title: "2BHK Flat in Kothrud", Category: "castle"})
	assert.Error(t, err)
}

func TestListingTypeValidator(t *testing.T) {
	err := ValidateStruct(&validatedListing{Title: "2BHK Flat in Kothrud", Category: "flat", ListingType: "lease"})
	assert.Error(t, err)
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(&validatedListing{Title: "Hut", Category: "castle", MonthlyRent: -5})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 3)

	byField := make(map[string]ValidationError, len(errs))
	for _, e := range errs {
		byField[e.Field] = e
	}

	assert.Equal(t, "min", byField["title"].Tag)
	assert.Equal(t, "Title must be at least 5", byField["title"].Message)

	assert.Equal(t, "category", byField["category"].Tag)
	assert.Equal(t, "Category must be one of: room, flat, house, pg, hostel, commercial", byField["category"].Message)

	assert.Equal(t, "gt", byField["monthlyRent"].Tag)
	assert.Equal(t, "MonthlyRent must be greater than 0", byField["monthlyRent"].Message)
}

func TestGetValidationErrorsRequired(t *testing.T) {
	err := ValidateStruct(&validatedListing{})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, "Title is required", errs[0].Message)
	assert.Equal(t, "required", errs[0].Tag)
}

func TestGetValidationErrorsNonValidatorError(t *testing.T) {
	assert.Nil(t, GetValidationErrors(assert.AnError))
	assert.Nil(t, GetValidationErrors(nil))
}
