// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type ListingType string

const (
	ListingTypeRent ListingType = "rent"
	ListingTypeBuy  ListingType = "buy"
)

type PropertyCategory string

const (
	CategoryRoom       PropertyCategory = "room"
	CategoryFlat       PropertyCategory = "flat"
	CategoryHouse      PropertyCategory = "house"
	CategoryPG         PropertyCategory = "pg"
	CategoryHostel     PropertyCategory = "hostel"
	CategoryCommercial PropertyCategory = "commercial"
)

type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "active"
	PropertyStatusInactive PropertyStatus = "inactive"
	PropertyStatusBlocked  PropertyStatus = "blocked"
)

type FurnishingState string

const (
	FurnishingFull FurnishingState = "furnished"
	FurnishingSemi FurnishingState = "semi-furnished"
	FurnishingNone FurnishingState = "unfurnished"
)

type TenantType string

const (
	TenantTypeFamily    TenantType = "family"
	TenantTypeBachelors TenantType = "bachelors"
	TenantTypeCompany   TenantType = "company"
	TenantTypeAny       TenantType = "any"
)

type PossessionStatus string

const (
	PossessionReadyToMove       PossessionStatus = "ready-to-move"
	PossessionUnderConstruction PossessionStatus = "under-construction"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func ValidListingType(value string) bool {
	switch ListingType(value) {
	case ListingTypeRent, ListingTypeBuy:
		return true
	}
	return false
}

func ValidCategory(value string) bool {
	switch PropertyCategory(value) {
	case CategoryRoom, CategoryFlat, CategoryHouse, CategoryPG, CategoryHostel, CategoryCommercial:
		return true
	}
	return false
}
