// internal/models/property.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Property is the single listing entity. Rent-only and buy-only fields are
// pointers so the unused set stays NULL for the other listing type.
// ListingType is empty on rows created before the rent/buy split; those are
// treated as rent everywhere.
type Property struct {
	BaseModel
	ListingNo    string           `json:"listingNo" gorm:"size:24;uniqueIndex"`
	Slug         string           `json:"slug" gorm:"size:180;uniqueIndex"`
	Title        string           `json:"title" gorm:"size:255;not null"`
	Description  string           `json:"description" gorm:"type:text"`
	Category     PropertyCategory `json:"category" gorm:"type:varchar(20);not null;index"`
	PropertyType string           `json:"propertyType" gorm:"size:50;index"`
	ListingType  ListingType      `json:"listingType" gorm:"type:varchar(10);index"`

	// Rent-only
	MonthlyRent         *float64   `json:"monthlyRent,omitempty" gorm:"type:decimal(12,2)"`
	SecurityDeposit     *float64   `json:"securityDeposit,omitempty" gorm:"type:decimal(12,2)"`
	MaintenanceCharge   *float64   `json:"maintenanceCharge,omitempty" gorm:"type:decimal(12,2)"`
	PreferredTenant     TenantType `json:"preferredTenant,omitempty" gorm:"type:varchar(20)"`
	LeaseDurationMonths *int       `json:"leaseDurationMonths,omitempty"`

	// Buy-only
	SellingPrice     *float64         `json:"sellingPrice,omitempty" gorm:"type:decimal(14,2)"`
	PricePerSqft     *float64         `json:"pricePerSqft,omitempty" gorm:"type:decimal(12,2)"`
	PossessionStatus PossessionStatus `json:"possessionStatus,omitempty" gorm:"type:varchar(30)"`
	LoanAvailable    *bool            `json:"loanAvailable,omitempty"`

	// Shared descriptive fields
	Furnishing  FurnishingState `json:"furnishing" gorm:"type:varchar(20);index"`
	City        string          `json:"city" gorm:"size:100;index"`
	Address     string          `json:"address" gorm:"size:500"`
	Latitude    *float64        `json:"latitude,omitempty" gorm:"type:decimal(10,7)"`
	Longitude   *float64        `json:"longitude,omitempty" gorm:"type:decimal(10,7)"`
	Bedrooms    int             `json:"bedrooms" gorm:"index"`
	Bathrooms   int             `json:"bathrooms"`
	Balconies   int             `json:"balconies"`
	Floor       *int            `json:"floor,omitempty"`
	TotalFloors *int            `json:"totalFloors,omitempty"`
	AreaSqft    *float64        `json:"areaSqft,omitempty" gorm:"type:decimal(10,2)"`
	Amenities   pq.StringArray  `json:"amenities" gorm:"type:text[]"`
	Photos      pq.StringArray  `json:"photos" gorm:"type:text[]"`

	// Lifecycle
	Status         PropertyStatus `json:"status" gorm:"type:varchar(20);default:'active';index"`
	Featured       bool           `json:"featured" gorm:"default:false;index"`
	Views          int64          `json:"views" gorm:"default:0"`
	FavoritesCount int64          `json:"favoritesCount" gorm:"default:0"`

	// Owner contact snapshot, captured at creation and never joined live
	OwnerID    uuid.UUID `json:"ownerId" gorm:"type:uuid;not null;index"`
	OwnerName  string    `json:"ownerName" gorm:"size:100"`
	OwnerPhone string    `json:"ownerPhone" gorm:"size:20"`
	OwnerEmail string    `json:"ownerEmail" gorm:"size:255"`
}

// EffectiveListingType resolves the legacy default: rows written before the
// rent/buy split carry no listing type and count as rent.
func (p *Property) EffectiveListingType() ListingType {
	if p.ListingType == "" {
		return ListingTypeRent
	}
	return p.ListingType
}

// CanonicalPath is the client-facing URL path, derived from stored fields only.
func (p *Property) CanonicalPath() string {
	return "/" + string(p.EffectiveListingType()) + "/" + p.Slug
}

func (p *Property) IsActive() bool {
	return p.Status == PropertyStatusActive
}

func (p *Property) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID == userID
}

// Price returns the listing-type price used for sorting and range filters.
func (p *Property) Price() float64 {
	if p.EffectiveListingType() == ListingTypeBuy {
		if p.SellingPrice != nil {
			return *p.SellingPrice
		}
		return 0
	}
	if p.MonthlyRent != nil {
		return *p.MonthlyRent
	}
	return 0
}

// Favorite links a user to a saved property. The pair is unique; the
// aggregate count lives on Property.FavoritesCount as a best-effort counter.
type Favorite struct {
	BaseModel
	UserID     uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_property"`
	PropertyID uuid.UUID `json:"propertyId" gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_property;index"`

	// Relationships
	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}
