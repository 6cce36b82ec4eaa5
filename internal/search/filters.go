// internal/search/filters.go
package search

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// RawFilters mirrors the loosely-typed filter payload clients send. Fields
// are untyped on purpose: the client may send a number, a numeric string, an
// empty string, or nothing at all, and none of those should fail the
// request. Normalize turns this into a canonical Filters value, dropping
// whatever cannot be coerced.
type RawFilters struct {
	Query            interface{}    `json:"q"`
	Location         interface{}    `json:"location"`
	Category         interface{}    `json:"category"`
	PropertyType     interface{}    `json:"propertyType"`
	PriceRange       *RawPriceRange `json:"priceRange"`
	MinPrice         interface{}    `json:"minPrice"`
	MaxPrice         interface{}    `json:"maxPrice"`
	Bedrooms         interface{}    `json:"bedrooms"`
	Amenities        interface{}    `json:"amenities"`
	Furnishing       interface{}    `json:"furnishing"`
	TenantType       interface{}    `json:"tenantType"`
	PossessionStatus interface{}    `json:"possessionStatus"`
	LoanAvailable    interface{}    `json:"loanAvailable"`
}

type RawPriceRange struct {
	Min interface{} `json:"min"`
	Max interface{} `json:"max"`
}

// Filters is the canonical, fully-typed filter descriptor the query builder
// consumes. Price bounds are always populated: 0 and the listing type's
// ceiling stand for "unconstrained".
type Filters struct {
	Query            string
	Location         string
	Category         string
	PropertyType     string
	MinPrice         float64
	MaxPrice         float64
	Bedrooms         []int
	Amenities        []string
	Furnishing       []string
	TenantType       string
	PossessionStatus string
	LoanAvailable    *bool
}

func (f Filters) HasQuery() bool {
	return f.Query != ""
}

// CoerceInt reads a loosely-typed numeric value, falling back to def when it
// is missing, malformed, or not positive. Used for page and limit fields
// that arrive as numbers or numeric strings.
func CoerceInt(v interface{}, def int) int {
	f, ok := toFloat(v)
	if !ok || f <= 0 {
		return def
	}
	return int(f)
}

// CoerceString reads a loosely-typed string value, returning "" when it
// cannot be read as one.
func CoerceString(v interface{}) string {
	return toString(v)
}

// Bedroom counts of five and above collapse into a single "5+" bucket.
const bedroomCeiling = 5

// Normalize coerces the raw payload into canonical form for one listing
// type. Malformed fragments are ignored, never an error: a search request
// must always produce a best-effort result set. Type-specific filters the
// config does not allow are dropped here, so a canonical Filters value can
// never carry a possession status into a rent query.
func (r RawFilters) Normalize(cfg ListingTypeConfig) Filters {
	f := Filters{
		Query:        toString(r.Query),
		Location:     toString(r.Location),
		Category:     strings.ToLower(toString(r.Category)),
		PropertyType: strings.ToLower(toString(r.PropertyType)),
		MinPrice:     0,
		MaxPrice:     cfg.PriceCeiling,
	}

	// The nested range object wins over flat bounds when both are present.
	minRaw, maxRaw := r.MinPrice, r.MaxPrice
	if r.PriceRange != nil {
		minRaw, maxRaw = r.PriceRange.Min, r.PriceRange.Max
	}
	if min, ok := toFloat(minRaw); ok && min > 0 {
		f.MinPrice = min
	}
	if max, ok := toFloat(maxRaw); ok && max > 0 {
		f.MaxPrice = max
	}

	f.Bedrooms = toBedrooms(r.Bedrooms)
	f.Amenities = dedupe(toList(r.Amenities), false)
	f.Furnishing = dedupe(toList(r.Furnishing), true)

	if cfg.AllowTenantType {
		f.TenantType = toString(r.TenantType)
	}
	if cfg.AllowPossession {
		f.PossessionStatus = toString(r.PossessionStatus)
	}
	if cfg.AllowLoan {
		if b, ok := toBool(r.LoanAvailable); ok {
			f.LoanAvailable = &b
		}
	}

	return f
}

func toString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		if s == math.Trunc(s) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return ""
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func toBool(v interface{}) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "1":
			return true, true
		case "false", "no", "0":
			return false, true
		}
	case float64:
		return b != 0, true
	}
	return false, false
}

// toList accepts an array, a comma-separated string, or a single scalar.
func toList(v interface{}) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s := toString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if strings.TrimSpace(list) == "" {
			return nil
		}
		return strings.Split(list, ",")
	case float64:
		return []string{toString(list)}
	}
	return nil
}

func dedupe(values []string, lower bool) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if lower {
			v = strings.ToLower(v)
		}
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// toBedrooms parses the bedroom list. "1".."4" stay exact matches, "5+" and
// any count of five or more fall into the 5+ bucket, everything else is
// dropped. The result is sorted and de-duplicated so equivalent requests
// build identical clauses.
func toBedrooms(v interface{}) []int {
	tokens := toList(v)
	if len(tokens) == 0 {
		return nil
	}

	seen := make(map[int]bool, len(tokens))
	out := make([]int, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		var n int
		if token == "5+" {
			n = bedroomCeiling
		} else {
			parsed, err := strconv.ParseFloat(token, 64)
			if err != nil || parsed <= 0 {
				continue
			}
			n = int(parsed)
			if n >= bedroomCeiling {
				n = bedroomCeiling
			}
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}

	if len(out) == 0 {
		return nil
	}
	sort.Ints(out)
	return out
}
