// internal/models/admin.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records mutating requests. Written fire-and-forget; user identity
// comes from the JWT claims, there is no local users table to join against.
type AuditLog struct {
	BaseModel
	UserID       *uuid.UUID `json:"userId" gorm:"type:uuid;index"`
	UserRole     string     `json:"userRole" gorm:"size:20"`
	Action       string     `json:"action" gorm:"size:100;not null;index"`
	ResourceType string     `json:"resourceType" gorm:"size:50;not null;index"`
	ResourceID   *uuid.UUID `json:"resourceId" gorm:"type:uuid;index"`
	OldValues    JSONB      `json:"oldValues" gorm:"type:jsonb"`
	NewValues    JSONB      `json:"newValues" gorm:"type:jsonb"`
	IPAddress    string     `json:"ipAddress" gorm:"size:45"`
	UserAgent    string     `json:"userAgent" gorm:"type:text"`
}

// MarketSnapshot is one day of per-city, per-listing-type price aggregates,
// written by the nightly scheduler job and read by the price-trend report.
type MarketSnapshot struct {
	BaseModel
	SnapshotDate time.Time   `json:"snapshotDate" gorm:"type:date;not null;index"`
	ListingType  ListingType `json:"listingType" gorm:"type:varchar(10);not null;index"`
	City         string      `json:"city" gorm:"size:100;not null;index"`
	ActiveCount  int64       `json:"activeCount"`
	AvgPrice     float64     `json:"avgPrice" gorm:"type:decimal(14,2)"`
	MinPrice     float64     `json:"minPrice" gorm:"type:decimal(14,2)"`
	MaxPrice     float64     `json:"maxPrice" gorm:"type:decimal(14,2)"`
}
