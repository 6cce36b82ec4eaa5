// internal/search/sort.go
package search

// Client-facing sort keys. The rent_* aliases exist because the rent client
// historically sent them; they behave exactly like the price_* keys.
const (
	SortNewest         = "newest"
	SortOldest         = "oldest"
	SortRelevance      = "relevance"
	SortPriceLowToHigh = "price_low_to_high"
	SortPriceHighToLow = "price_high_to_low"
	SortRentLowToHigh  = "rent_low_to_high"
	SortRentHighToLow  = "rent_high_to_low"
	SortFeatured       = "featured"
)

// RelevanceOrder ranks text-query results; the alias is selected alongside
// the row columns when a relevance sort is in effect.
const (
	RelevanceAlias = "relevance_score"
	RelevanceOrder = RelevanceAlias + " DESC, created_at DESC"
)

// ResolveSort maps a sort key to a concrete ordering. Every mapping ends in
// created_at DESC so pagination stays stable when primary values tie; price
// orderings push NULL prices last so legacy rows without one do not float to
// the top. Unknown keys fall back to newest.
func ResolveSort(key string, cfg ListingTypeConfig) string {
	switch key {
	case SortOldest:
		return "created_at ASC"
	case SortPriceLowToHigh, SortRentLowToHigh:
		return cfg.PriceColumn + " ASC NULLS LAST, created_at DESC"
	case SortPriceHighToLow, SortRentHighToLow:
		return cfg.PriceColumn + " DESC NULLS LAST, created_at DESC"
	case SortFeatured:
		return "featured DESC, created_at DESC"
	default:
		return "created_at DESC"
	}
}

// UsesRelevance reports whether ordering should follow the text relevance
// score: only when a query is present and the requested sort is newest (the
// default) or relevance. Explicit price and featured sorts take precedence,
// in which case the score is still computed but not used for ordering.
func UsesRelevance(key string, hasQuery bool) bool {
	if !hasQuery {
		return false
	}
	switch key {
	case "", SortNewest, SortRelevance:
		return true
	}
	return false
}

// RelevanceExpr builds the additive score for a free-text query: a title
// match outweighs a category match, which outweighs a property-type match.
func RelevanceExpr(query string) (string, []interface{}) {
	pattern := containsPattern(query)
	expr := "(CASE WHEN LOWER(title) LIKE ? THEN 10 ELSE 0 END" +
		" + CASE WHEN LOWER(category) LIKE ? THEN 5 ELSE 0 END" +
		" + CASE WHEN LOWER(property_type) LIKE ? THEN 3 ELSE 0 END)"
	return expr, []interface{}{pattern, pattern, pattern}
}
