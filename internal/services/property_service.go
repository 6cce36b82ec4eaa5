// internal/services/property_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Ayupanchal18/Renters-sub005/internal/metrics"
	"github.com/Ayupanchal18/Renters-sub005/internal/models"
	"github.com/Ayupanchal18/Renters-sub005/internal/search"
	"github.com/Ayupanchal18/Renters-sub005/internal/utils"
)

type PropertyService struct {
	db      *gorm.DB
	metrics metrics.Collector
}

type CreatePropertyRequest struct {
	Title        string `json:"title" validate:"required,min=3,max=255"`
	Description  string `json:"description" validate:"required,min=10"`
	Category     string `json:"category" validate:"required,category"`
	PropertyType string `json:"propertyType,omitempty" validate:"omitempty,max=50"`
	ListingType  string `json:"listingType" validate:"required,listing_type"`

	MonthlyRent         *float64 `json:"monthlyRent,omitempty" validate:"omitempty,gt=0"`
	SecurityDeposit     *float64 `json:"securityDeposit,omitempty" validate:"omitempty,min=0"`
	MaintenanceCharge   *float64 `json:"maintenanceCharge,omitempty" validate:"omitempty,min=0"`
	PreferredTenant     string   `json:"preferredTenant,omitempty" validate:"omitempty,oneof=family bachelors company any"`
	LeaseDurationMonths *int     `json:"leaseDurationMonths,omitempty" validate:"omitempty,min=1"`

	SellingPrice     *float64 `json:"sellingPrice,omitempty" validate:"omitempty,gt=0"`
	PricePerSqft     *float64 `json:"pricePerSqft,omitempty" validate:"omitempty,gt=0"`
	PossessionStatus string   `json:"possessionStatus,omitempty" validate:"omitempty,oneof=ready-to-move under-construction"`
	LoanAvailable    *bool    `json:"loanAvailable,omitempty"`

	Furnishing  string   `json:"furnishing,omitempty" validate:"omitempty,oneof=furnished semi-furnished unfurnished"`
	City        string   `json:"city" validate:"required,max=100"`
	Address     string   `json:"address,omitempty" validate:"omitempty,max=500"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Bedrooms    int      `json:"bedrooms,omitempty" validate:"omitempty,min=0,max=50"`
	Bathrooms   int      `json:"bathrooms,omitempty" validate:"omitempty,min=0,max=50"`
	Balconies   int      `json:"balconies,omitempty" validate:"omitempty,min=0,max=50"`
	Floor       *int     `json:"floor,omitempty"`
	TotalFloors *int     `json:"totalFloors,omitempty" validate:"omitempty,min=1"`
	AreaSqft    *float64 `json:"areaSqft,omitempty" validate:"omitempty,gt=0"`
	Amenities   []string `json:"amenities,omitempty"`
	Photos      []string `json:"photos,omitempty"`

	OwnerPhone string `json:"ownerPhone,omitempty" validate:"omitempty,max=20"`
	OwnerEmail string `json:"ownerEmail,omitempty" validate:"omitempty,email"`
}

type UpdatePropertyRequest struct {
	Title        string `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Description  string `json:"description,omitempty" validate:"omitempty,min=10"`
	Category     string `json:"category,omitempty" validate:"omitempty,category"`
	PropertyType string `json:"propertyType,omitempty" validate:"omitempty,max=50"`
	ListingType  string `json:"listingType,omitempty" validate:"omitempty,listing_type"`

	MonthlyRent         *float64 `json:"monthlyRent,omitempty" validate:"omitempty,gt=0"`
	SecurityDeposit     *float64 `json:"securityDeposit,omitempty" validate:"omitempty,min=0"`
	MaintenanceCharge   *float64 `json:"maintenanceCharge,omitempty" validate:"omitempty,min=0"`
	PreferredTenant     string   `json:"preferredTenant,omitempty" validate:"omitempty,oneof=family bachelors company any"`
	LeaseDurationMonths *int     `json:"leaseDurationMonths,omitempty" validate:"omitempty,min=1"`

	SellingPrice     *float64 `json:"sellingPrice,omitempty" validate:"omitempty,gt=0"`
	PricePerSqft     *float64 `json:"pricePerSqft,omitempty" validate:"omitempty,gt=0"`
	PossessionStatus string   `json:"possessionStatus,omitempty" validate:"omitempty,oneof=ready-to-move under-construction"`
	LoanAvailable    *bool    `json:"loanAvailable,omitempty"`

	Furnishing  string   `json:"furnishing,omitempty" validate:"omitempty,oneof=furnished semi-furnished unfurnished"`
	City        string   `json:"city,omitempty" validate:"omitempty,max=100"`
	Address     string   `json:"address,omitempty" validate:"omitempty,max=500"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Bedrooms    *int     `json:"bedrooms,omitempty" validate:"omitempty,min=0,max=50"`
	Bathrooms   *int     `json:"bathrooms,omitempty" validate:"omitempty,min=0,max=50"`
	Balconies   *int     `json:"balconies,omitempty" validate:"omitempty,min=0,max=50"`
	Floor       *int     `json:"floor,omitempty"`
	TotalFloors *int     `json:"totalFloors,omitempty" validate:"omitempty,min=1"`
	AreaSqft    *float64 `json:"areaSqft,omitempty" validate:"omitempty,gt=0"`
	Amenities   []string `json:"amenities,omitempty"`
	Photos      []string `json:"photos,omitempty"`

	OwnerPhone string `json:"ownerPhone,omitempty" validate:"omitempty,max=20"`
	OwnerEmail string `json:"ownerEmail,omitempty" validate:"omitempty,email"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// SearchPropertiesRequest is the POST search body. Clients send the common
// fields flat, the rest nested under filters; some send both. Every field is
// loosely typed because the payload comes from several frontend versions.
type SearchPropertiesRequest struct {
	Query        interface{}        `json:"q"`
	Location     interface{}        `json:"location"`
	Category     interface{}        `json:"category"`
	PropertyType interface{}        `json:"propertyType"`
	Page         interface{}        `json:"page"`
	Limit        interface{}        `json:"limit"`
	Sort         interface{}        `json:"sort"`
	Filters      *search.RawFilters `json:"filters"`
}

// RawFilters folds the flat top-level fields into the nested filter object.
// The nested value wins when a field is present in both places.
func (r *SearchPropertiesRequest) RawFilters() search.RawFilters {
	f := search.RawFilters{}
	if r.Filters != nil {
		f = *r.Filters
	}
	if f.Query == nil {
		f.Query = r.Query
	}
	if f.Location == nil {
		f.Location = r.Location
	}
	if f.Category == nil {
		f.Category = r.Category
	}
	if f.PropertyType == nil {
		f.PropertyType = r.PropertyType
	}
	return f
}

func (r *SearchPropertiesRequest) Pagination() utils.PaginationParams {
	return utils.PaginationParams{
		Page:  search.CoerceInt(r.Page, 1),
		Limit: search.CoerceInt(r.Limit, utils.DefaultPageSize),
		Sort:  search.CoerceString(r.Sort),
		Order: "desc",
	}.Normalized()
}

func NewPropertyService(db *gorm.DB, collector metrics.Collector) *PropertyService {
	if collector == nil {
		collector = metrics.Noop{}
	}
	return &PropertyService{
		db:      db,
		metrics: collector,
	}
}

func (s *PropertyService) CreateProperty(ownerID uuid.UUID, ownerName string, req *CreatePropertyRequest) (*models.Property, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	listingType := models.ListingType(req.ListingType)
	if err := checkTypeExclusivity(listingType, req.rentOnlyFields(), req.buyOnlyFields()); err != nil {
		return nil, err
	}

	// The listing must carry its own type's price
	if listingType == models.ListingTypeBuy && req.SellingPrice == nil {
		return nil, &ValidationError{Field: "sellingPrice", Message: "sellingPrice is required for buy listings"}
	}
	if listingType != models.ListingTypeBuy && req.MonthlyRent == nil {
		return nil, &ValidationError{Field: "monthlyRent", Message: "monthlyRent is required for rent listings"}
	}

	slug, err := s.resolveSlug(req.Title, req.City)
	if err != nil {
		return nil, fmt.Errorf("failed to generate slug: %w", err)
	}

	listingNo, err := utils.GenerateListingNo(req.ListingType)
	if err != nil {
		return nil, fmt.Errorf("failed to generate listing number: %w", err)
	}

	property := &models.Property{
		ListingNo:    listingNo,
		Slug:         slug,
		Title:        req.Title,
		Description:  req.Description,
		Category:     models.PropertyCategory(strings.ToLower(req.Category)),
		PropertyType: req.PropertyType,
		ListingType:  listingType,

		MonthlyRent:         req.MonthlyRent,
		SecurityDeposit:     req.SecurityDeposit,
		MaintenanceCharge:   req.MaintenanceCharge,
		PreferredTenant:     models.TenantType(req.PreferredTenant),
		LeaseDurationMonths: req.LeaseDurationMonths,

		SellingPrice:     req.SellingPrice,
		PricePerSqft:     req.PricePerSqft,
		PossessionStatus: models.PossessionStatus(req.PossessionStatus),
		LoanAvailable:    req.LoanAvailable,

		Furnishing:  models.FurnishingState(req.Furnishing),
		City:        req.City,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Balconies:   req.Balconies,
		Floor:       req.Floor,
		TotalFloors: req.TotalFloors,
		AreaSqft:    req.AreaSqft,
		Amenities:   req.Amenities,
		Photos:      req.Photos,

		Status: models.PropertyStatusActive,

		OwnerID:    ownerID,
		OwnerName:  ownerName,
		OwnerPhone: req.OwnerPhone,
		OwnerEmail: req.OwnerEmail,
	}

	if err := s.db.Create(property).Error; err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return property, nil
}

// GetByIdentifier resolves a property by id first, slug second, with no
// listing type expectation. Hidden rows are visible to their owner only.
func (s *PropertyService) GetByIdentifier(identifier string, viewerID *uuid.UUID) (*models.Property, error) {
	property, err := s.lookup(identifier)
	if err != nil {
		s.metrics.RecordLookup("any", false)
		return nil, err
	}

	if err := s.checkVisibility(property, viewerID); err != nil {
		s.metrics.RecordLookup("any", false)
		return nil, err
	}

	s.metrics.RecordLookup("any", true)
	s.countView(property, viewerID)
	return property, nil
}

// GetByIdentifierForType is the typed variant behind /rent and /buy lookups.
// A visible property found under the other listing type yields a
// WrongListingTypeError carrying its canonical path.
func (s *PropertyService) GetByIdentifierForType(identifier string, cfg search.ListingTypeConfig, viewerID *uuid.UUID) (*models.Property, error) {
	property, err := s.lookup(identifier)
	if err != nil {
		s.metrics.RecordLookup(string(cfg.Value), false)
		return nil, err
	}

	if err := s.checkVisibility(property, viewerID); err != nil {
		s.metrics.RecordLookup(string(cfg.Value), false)
		return nil, err
	}

	if property.EffectiveListingType() != cfg.Value {
		s.metrics.RecordLookup(string(cfg.Value), false)
		return nil, &WrongListingTypeError{
			ListingType: string(property.EffectiveListingType()),
			Path:        property.CanonicalPath(),
		}
	}

	s.metrics.RecordLookup(string(cfg.Value), true)
	s.countView(property, viewerID)
	return property, nil
}

func (s *PropertyService) UpdateProperty(id uuid.UUID, userID uuid.UUID, isAdmin bool, req *UpdatePropertyRequest) (*models.Property, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var property models.Property
	if err := s.db.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !property.IsOwnedBy(userID) && !isAdmin {
		return nil, ErrNotOwner
	}
	if property.Status == models.PropertyStatusBlocked && !isAdmin {
		return nil, ErrPropertyBlocked
	}

	listingType := property.EffectiveListingType()
	if req.ListingType != "" && models.ListingType(req.ListingType) != listingType {
		return nil, ErrListingTypeFrozen
	}
	if err := checkTypeExclusivity(listingType, req.rentOnlyFields(), req.buyOnlyFields()); err != nil {
		return nil, err
	}

	// Update fields; the slug stays stable across title and city edits so
	// published URLs keep working.
	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Category != "" {
		updates["category"] = strings.ToLower(req.Category)
	}
	if req.PropertyType != "" {
		updates["property_type"] = req.PropertyType
	}
	if req.MonthlyRent != nil {
		updates["monthly_rent"] = *req.MonthlyRent
	}
	if req.SecurityDeposit != nil {
		updates["security_deposit"] = *req.SecurityDeposit
	}
	if req.MaintenanceCharge != nil {
		updates["maintenance_charge"] = *req.MaintenanceCharge
	}
	if req.PreferredTenant != "" {
		updates["preferred_tenant"] = req.PreferredTenant
	}
	if req.LeaseDurationMonths != nil {
		updates["lease_duration_months"] = *req.LeaseDurationMonths
	}
	if req.SellingPrice != nil {
		updates["selling_price"] = *req.SellingPrice
	}
	if req.PricePerSqft != nil {
		updates["price_per_sqft"] = *req.PricePerSqft
	}
	if req.PossessionStatus != "" {
		updates["possession_status"] = req.PossessionStatus
	}
	if req.LoanAvailable != nil {
		updates["loan_available"] = *req.LoanAvailable
	}
	if req.Furnishing != "" {
		updates["furnishing"] = req.Furnishing
	}
	if req.City != "" {
		updates["city"] = req.City
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.Bedrooms != nil {
		updates["bedrooms"] = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		updates["bathrooms"] = *req.Bathrooms
	}
	if req.Balconies != nil {
		updates["balconies"] = *req.Balconies
	}
	if req.Floor != nil {
		updates["floor"] = *req.Floor
	}
	if req.TotalFloors != nil {
		updates["total_floors"] = *req.TotalFloors
	}
	if req.AreaSqft != nil {
		updates["area_sqft"] = *req.AreaSqft
	}
	if req.Amenities != nil {
		updates["amenities"] = pq.StringArray(req.Amenities)
	}
	if req.Photos != nil {
		updates["photos"] = pq.StringArray(req.Photos)
	}
	if req.OwnerPhone != "" {
		updates["owner_phone"] = req.OwnerPhone
	}
	if req.OwnerEmail != "" {
		updates["owner_email"] = req.OwnerEmail
	}

	if len(updates) == 0 {
		return &property, nil
	}

	if err := s.db.Model(&property).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	// Reload
	if err := s.db.First(&property, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload property: %w", err)
	}

	return &property, nil
}

func (s *PropertyService) UpdateStatus(id uuid.UUID, ownerID uuid.UUID, req *UpdateStatusRequest) (*models.Property, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var property models.Property
	if err := s.db.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !property.IsOwnedBy(ownerID) {
		return nil, ErrNotOwner
	}

	// Owners cannot lift a moderation block
	if property.Status == models.PropertyStatusBlocked {
		return nil, ErrPropertyBlocked
	}

	if err := s.db.Model(&property).Updates(map[string]interface{}{"status": req.Status}).Error; err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	property.Status = models.PropertyStatus(req.Status)
	return &property, nil
}

func (s *PropertyService) DeleteProperty(id uuid.UUID, userID uuid.UUID, isAdmin bool) error {
	var property models.Property
	if err := s.db.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if !isAdmin && !property.IsOwnedBy(userID) {
		return ErrNotOwner
	}

	// Soft delete
	if err := s.db.Delete(&property).Error; err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	return nil
}

// Search runs one parametrized query pipeline for every listing surface:
// normalize the raw filters, build the match specification, count, then
// fetch the requested window. Count and page derive from the same
// specification, so the reported total always agrees with the items.
func (s *PropertyService) Search(raw search.RawFilters, cfg search.ListingTypeConfig, params utils.PaginationParams) ([]models.Property, int64, error) {
	start := time.Now()

	f := raw.Normalize(cfg)
	spec := search.Build(f, cfg)
	query := spec.Apply(s.db.Model(&models.Property{}))

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	// Apply sorting
	if search.UsesRelevance(params.Sort, f.HasQuery()) {
		expr, args := search.RelevanceExpr(f.Query)
		query = query.Select("properties.*, "+expr+" AS "+search.RelevanceAlias, args...)
		query = query.Order(search.RelevanceOrder)
	} else {
		query = query.Order(search.ResolveSort(params.Sort, cfg))
	}

	// Apply pagination
	query = utils.ApplyPagination(query, params)

	var properties []models.Property
	if err := query.Find(&properties).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch properties: %w", err)
	}

	s.metrics.RecordSearch(string(cfg.Value), time.Since(start), total)
	return properties, total, nil
}

func (s *PropertyService) GetFeatured(cfg search.ListingTypeConfig, limit int) ([]models.Property, error) {
	limit = clampLimit(limit, 8, 50)

	spec := search.Build(search.Filters{}, cfg)
	query := spec.Apply(s.db.Model(&models.Property{}))

	var properties []models.Property
	if err := query.Where("featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch featured properties: %w", err)
	}

	return properties, nil
}

func (s *PropertyService) GetPopular(cfg search.ListingTypeConfig, limit int) ([]models.Property, error) {
	limit = clampLimit(limit, 8, 50)

	spec := search.Build(search.Filters{}, cfg)
	query := spec.Apply(s.db.Model(&models.Property{}))

	var properties []models.Property
	if err := query.Order("views DESC, created_at DESC").
		Limit(limit).
		Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch popular properties: %w", err)
	}

	return properties, nil
}

// GetSimilar returns active listings of the same type, category and city,
// newest first. The anchor property itself is excluded.
func (s *PropertyService) GetSimilar(identifier string, limit int) ([]models.Property, error) {
	limit = clampLimit(limit, 6, 24)

	property, err := s.lookup(identifier)
	if err != nil {
		return nil, err
	}
	if !property.IsActive() {
		return nil, ErrPropertyNotFound
	}

	cfg := search.ForListingType(property.EffectiveListingType())
	spec := search.Build(search.Filters{Category: string(property.Category)}, cfg)
	query := spec.Apply(s.db.Model(&models.Property{}))

	var properties []models.Property
	if err := query.Where("id <> ?", property.ID).
		Where("LOWER(city) = ?", strings.ToLower(property.City)).
		Order("created_at DESC").
		Limit(limit).
		Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch similar properties: %w", err)
	}

	return properties, nil
}

// GetOwnerProperties lists everything a user posted, whatever the status.
func (s *PropertyService) GetOwnerProperties(ownerID uuid.UUID, params utils.PaginationParams) ([]models.Property, int64, error) {
	query := s.db.Model(&models.Property{}).Where("owner_id = ?", ownerID)

	// Apply search if provided
	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(city) LIKE ?", searchTerm, searchTerm)
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count owner properties: %w", err)
	}

	// Apply sorting and pagination
	allowedSortFields := []string{"created_at", "updated_at", "title", "views", "status"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var properties []models.Property
	if err := query.Find(&properties).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch owner properties: %w", err)
	}

	return properties, total, nil
}

// Helper methods

// lookup resolves an identifier as a primary key first, then as a slug.
func (s *PropertyService) lookup(identifier string) (*models.Property, error) {
	var property models.Property

	if id, err := uuid.Parse(identifier); err == nil {
		err := s.db.First(&property, id).Error
		if err == nil {
			return &property, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("database error: %w", err)
		}
	}

	if err := s.db.Where("slug = ?", identifier).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &property, nil
}

// checkVisibility hides non-active rows from everyone but their owner.
// Blocked rows are reported as blocked to the owner and unknown to others.
func (s *PropertyService) checkVisibility(property *models.Property, viewerID *uuid.UUID) error {
	if property.IsActive() {
		return nil
	}

	isOwner := viewerID != nil && property.IsOwnedBy(*viewerID)
	if !isOwner {
		return ErrPropertyNotFound
	}
	if property.Status == models.PropertyStatusBlocked {
		return ErrPropertyBlocked
	}
	return nil
}

// countView bumps the view counter unless the owner is looking at their own
// listing. Fire-and-forget: a lost increment under race is acceptable.
func (s *PropertyService) countView(property *models.Property, viewerID *uuid.UUID) {
	if viewerID != nil && property.IsOwnedBy(*viewerID) {
		return
	}
	go s.incrementViews(property.ID)
}

func (s *PropertyService) incrementViews(propertyID uuid.UUID) {
	s.db.Model(&models.Property{}).Where("id = ?", propertyID).
		UpdateColumn("views", gorm.Expr("views + 1"))
}

// resolveSlug derives the URL slug from title and city, appending a random
// token only on collision. Soft-deleted rows still hold their slug, so the
// collision check runs unscoped.
func (s *PropertyService) resolveSlug(title, city string) (string, error) {
	base := utils.Slugify(title, city)
	if base == "" {
		base = "property"
	}

	var count int64
	if err := s.db.Unscoped().Model(&models.Property{}).Where("slug = ?", base).Count(&count).Error; err != nil {
		return "", fmt.Errorf("database error: %w", err)
	}
	if count == 0 {
		return base, nil
	}

	return utils.UniqueSlug(base)
}

func (r *CreatePropertyRequest) rentOnlyFields() []string {
	return presentFields(
		reqField{"monthlyRent", r.MonthlyRent != nil},
		reqField{"securityDeposit", r.SecurityDeposit != nil},
		reqField{"maintenanceCharge", r.MaintenanceCharge != nil},
		reqField{"preferredTenant", r.PreferredTenant != ""},
		reqField{"leaseDurationMonths", r.LeaseDurationMonths != nil},
	)
}

func (r *CreatePropertyRequest) buyOnlyFields() []string {
	return presentFields(
		reqField{"sellingPrice", r.SellingPrice != nil},
		reqField{"pricePerSqft", r.PricePerSqft != nil},
		reqField{"possessionStatus", r.PossessionStatus != ""},
		reqField{"loanAvailable", r.LoanAvailable != nil},
	)
}

func (r *UpdatePropertyRequest) rentOnlyFields() []string {
	return presentFields(
		reqField{"monthlyRent", r.MonthlyRent != nil},
		reqField{"securityDeposit", r.SecurityDeposit != nil},
		reqField{"maintenanceCharge", r.MaintenanceCharge != nil},
		reqField{"preferredTenant", r.PreferredTenant != ""},
		reqField{"leaseDurationMonths", r.LeaseDurationMonths != nil},
	)
}

func (r *UpdatePropertyRequest) buyOnlyFields() []string {
	return presentFields(
		reqField{"sellingPrice", r.SellingPrice != nil},
		reqField{"pricePerSqft", r.PricePerSqft != nil},
		reqField{"possessionStatus", r.PossessionStatus != ""},
		reqField{"loanAvailable", r.LoanAvailable != nil},
	)
}

type reqField struct {
	name    string
	present bool
}

func presentFields(fields ...reqField) []string {
	var names []string
	for _, f := range fields {
		if f.present {
			names = append(names, f.name)
		}
	}
	return names
}

// checkTypeExclusivity rejects the first field that belongs to the other
// listing type, so a rent record can never carry a sale price or vice versa.
func checkTypeExclusivity(listingType models.ListingType, rentFields, buyFields []string) error {
	if listingType == models.ListingTypeBuy {
		if len(rentFields) > 0 {
			return &ValidationError{
				Field:   rentFields[0],
				Message: fmt.Sprintf("%s is not valid for buy listings", rentFields[0]),
			}
		}
		return nil
	}
	if len(buyFields) > 0 {
		return &ValidationError{
			Field:   buyFields[0],
			Message: fmt.Sprintf("%s is not valid for rent listings", buyFields[0]),
		}
	}
	return nil
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
