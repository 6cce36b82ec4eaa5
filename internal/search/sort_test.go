// internal/search/sort_test.go
package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSort(t *testing.T) {
	tests := []struct {
		key      string
		cfg      ListingTypeConfig
		expected string
	}{
		{SortNewest, RentListing, "created_at DESC"},
		{SortOldest, RentListing, "created_at ASC"},
		{SortPriceLowToHigh, RentListing, "monthly_rent ASC NULLS LAST, created_at DESC"},
		{SortRentLowToHigh, RentListing, "monthly_rent ASC NULLS LAST, created_at DESC"},
		{SortPriceHighToLow, BuyListing, "selling_price DESC NULLS LAST, created_at DESC"},
		{SortRentHighToLow, RentListing, "monthly_rent DESC NULLS LAST, created_at DESC"},
		{SortFeatured, RentListing, "featured DESC, created_at DESC"},
		{"", RentListing, "created_at DESC"},
		{"nonsense", BuyListing, "created_at DESC"},
		{SortRelevance, RentListing, "created_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"_"+string(tt.cfg.Value), func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveSort(tt.key, tt.cfg))
		})
	}
}

func TestUsesRelevance(t *testing.T) {
	// Without a text query there is no score to order by
	assert.False(t, UsesRelevance("", false))
	assert.False(t, UsesRelevance(SortRelevance, false))

	assert.True(t, UsesRelevance("", true))
	assert.True(t, UsesRelevance(SortNewest, true))
	assert.True(t, UsesRelevance(SortRelevance, true))

	// Explicit sorts override the score
	assert.False(t, UsesRelevance(SortPriceLowToHigh, true))
	assert.False(t, UsesRelevance(SortOldest, true))
	assert.False(t, UsesRelevance(SortFeatured, true))
}

func TestRelevanceExpr(t *testing.T) {
	expr, args := RelevanceExpr("Villa")

	assert.Contains(t, expr, "CASE WHEN LOWER(title) LIKE ? THEN 10")
	assert.Contains(t, expr, "CASE WHEN LOWER(category) LIKE ? THEN 5")
	assert.Contains(t, expr, "CASE WHEN LOWER(property_type) LIKE ? THEN 3")
	if assert.Len(t, args, 3) {
		for _, arg := range args {
			assert.Equal(t, "%villa%", arg)
		}
	}
}
