// internal/search/builder.go
package search

import (
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Ayupanchal18/Renters-sub005/internal/models"
)

// Clause is a single SQL conjunct with its bind arguments.
type Clause struct {
	Expr string
	Args []interface{}
}

// MatchSpec is the ordered conjunction of clauses for one search. The same
// spec drives both the total count and the windowed page query, so the two
// can never disagree about which rows match.
type MatchSpec struct {
	Clauses []Clause
}

func (m MatchSpec) Apply(db *gorm.DB) *gorm.DB {
	for _, clause := range m.Clauses {
		db = db.Where(clause.Expr, clause.Args...)
	}
	return db
}

// Build constructs the match specification for a canonical filter set,
// scoped to one listing type. All listing endpoints share this single
// builder; the config decides the price column and which type-specific
// clauses are reachable. Soft-deleted rows are already excluded by the
// deleted_at scope on every model query.
func Build(f Filters, cfg ListingTypeConfig) MatchSpec {
	var spec MatchSpec
	add := func(expr string, args ...interface{}) {
		spec.Clauses = append(spec.Clauses, Clause{Expr: expr, Args: args})
	}

	add("status = ?", models.PropertyStatusActive)

	if cfg.IncludeLegacy {
		add("(listing_type = ? OR listing_type = '' OR listing_type IS NULL)", cfg.Value)
	} else {
		add("listing_type = ?", cfg.Value)
	}

	// Free-text and location are independent constraints: each is its own
	// OR group, joined to everything else with AND.
	if f.Query != "" {
		pattern := containsPattern(f.Query)
		add("(LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ? OR LOWER(property_type) LIKE ? OR LOWER(city) LIKE ?)",
			pattern, pattern, pattern, pattern, pattern)
	}

	if f.Location != "" {
		pattern := containsPattern(f.Location)
		add("(LOWER(city) LIKE ? OR LOWER(address) LIKE ?)", pattern, pattern)
	}

	if f.Category != "" {
		add("LOWER(category) = ?", f.Category)
	}
	if f.PropertyType != "" {
		// Substring match tolerates casing and pluralization variants.
		add("LOWER(property_type) LIKE ?", containsPattern(f.PropertyType))
	}

	// Untouched defaults (0, ceiling) impose no price constraint.
	if f.MinPrice > 0 {
		add(cfg.PriceColumn+" >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 && f.MaxPrice < cfg.PriceCeiling {
		add(cfg.PriceColumn+" <= ?", f.MaxPrice)
	}

	if len(f.Bedrooms) > 0 {
		exprs := make([]string, 0, len(f.Bedrooms))
		args := make([]interface{}, 0, len(f.Bedrooms))
		for _, n := range f.Bedrooms {
			if n >= bedroomCeiling {
				exprs = append(exprs, "bedrooms >= ?")
			} else {
				exprs = append(exprs, "bedrooms = ?")
			}
			args = append(args, n)
		}
		add("("+strings.Join(exprs, " OR ")+")", args...)
	}

	// Set containment: the property must carry every requested amenity.
	if len(f.Amenities) > 0 {
		add("amenities @> ?", pq.Array(f.Amenities))
	}

	if len(f.Furnishing) > 0 {
		add("LOWER(furnishing) IN ?", f.Furnishing)
	}

	if cfg.AllowTenantType && f.TenantType != "" {
		add("preferred_tenant = ?", f.TenantType)
	}
	if cfg.AllowPossession && f.PossessionStatus != "" {
		add("possession_status = ?", f.PossessionStatus)
	}
	if cfg.AllowLoan && f.LoanAvailable != nil {
		add("loan_available = ?", *f.LoanAvailable)
	}

	return spec
}

// User input never reaches LIKE as a pattern metacharacter.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func containsPattern(s string) string {
	return "%" + escapeLike(strings.ToLower(s)) + "%"
}
