// internal/services/admin_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ayupanchal18/Renters-sub005/internal/database"
	"github.com/Ayupanchal18/Renters-sub005/internal/metrics"
	"github.com/Ayupanchal18/Renters-sub005/internal/models"
	"github.com/Ayupanchal18/Renters-sub005/internal/search"
	"github.com/Ayupanchal18/Renters-sub005/internal/utils"
)

type AdminService struct {
	db       *gorm.DB
	registry *metrics.Registry
}

type AdminDashboardStats struct {
	TotalProperties    int64       `json:"totalProperties"`
	ActiveProperties   int64       `json:"activeProperties"`
	InactiveProperties int64       `json:"inactiveProperties"`
	BlockedProperties  int64       `json:"blockedProperties"`
	RentListings       int64       `json:"rentListings"`
	BuyListings        int64       `json:"buyListings"`
	FeaturedProperties int64       `json:"featuredProperties"`
	NewThisMonth       int64       `json:"newThisMonth"`
	ListingGrowth      float64     `json:"listingGrowth"`
	TotalViews         int64       `json:"totalViews"`
	TotalFavorites     int64       `json:"totalFavorites"`
	TopCities          []CityCount `json:"topCities"`
}

type CityCount struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}

// PriceBucket is one band of the price distribution report. Max of zero
// means unbounded.
type PriceBucket struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int64   `json:"count"`
}

type AdminPropertyFilter struct {
	utils.PaginationParams
	ListingType    *models.ListingType    `json:"listingType,omitempty"`
	Status         *models.PropertyStatus `json:"status,omitempty"`
	Category       *string                `json:"category,omitempty"`
	City           string                 `json:"city,omitempty"`
	OwnerID        *uuid.UUID             `json:"ownerId,omitempty"`
	Featured       *bool                  `json:"featured,omitempty"`
	IncludeDeleted bool                   `json:"includeDeleted,omitempty"`
	CreatedAfter   *time.Time             `json:"createdAfter,omitempty"`
	CreatedBefore  *time.Time             `json:"createdBefore,omitempty"`
}

type AdminAuditFilter struct {
	utils.PaginationParams
	Action       string     `json:"action,omitempty"`
	ResourceType string     `json:"resourceType,omitempty"`
	UserID       *uuid.UUID `json:"userId,omitempty"`
}

func NewAdminService(db *gorm.DB, registry *metrics.Registry) *AdminService {
	return &AdminService{
		db:       db,
		registry: registry,
	}
}

// Dashboard Statistics
func (s *AdminService) GetDashboardStats() (*AdminDashboardStats, error) {
	stats := &AdminDashboardStats{}
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	// Property counts
	s.db.Model(&models.Property{}).Count(&stats.TotalProperties)
	s.db.Model(&models.Property{}).Where("status = ?", models.PropertyStatusActive).Count(&stats.ActiveProperties)
	s.db.Model(&models.Property{}).Where("status = ?", models.PropertyStatusInactive).Count(&stats.InactiveProperties)
	s.db.Model(&models.Property{}).Where("status = ?", models.PropertyStatusBlocked).Count(&stats.BlockedProperties)
	s.db.Model(&models.Property{}).
		Where("listing_type = ? OR listing_type = '' OR listing_type IS NULL", models.ListingTypeRent).
		Count(&stats.RentListings)
	s.db.Model(&models.Property{}).Where("listing_type = ?", models.ListingTypeBuy).Count(&stats.BuyListings)
	s.db.Model(&models.Property{}).Where("featured = ?", true).Count(&stats.FeaturedProperties)
	s.db.Model(&models.Property{}).Where("created_at >= ?", monthStart).Count(&stats.NewThisMonth)

	// Engagement counters
	s.db.Model(&models.Property{}).Select("COALESCE(SUM(views), 0)").Scan(&stats.TotalViews)
	s.db.Model(&models.Favorite{}).Count(&stats.TotalFavorites)

	// Growth calculation
	var lastMonthListings int64
	s.db.Model(&models.Property{}).
		Where("created_at >= ? AND created_at < ?", lastMonthStart, monthStart).
		Count(&lastMonthListings)
	if lastMonthListings > 0 {
		stats.ListingGrowth = float64(stats.NewThisMonth-lastMonthListings) / float64(lastMonthListings) * 100
	}

	// Top cities by active listings
	if err := s.db.Model(&models.Property{}).
		Select("city, COUNT(*) as count").
		Where("status = ? AND city != ''", models.PropertyStatusActive).
		Group("city").
		Order("count DESC").
		Limit(10).
		Scan(&stats.TopCities).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate cities: %w", err)
	}

	return stats, nil
}

// QueryMetrics exposes the in-process search and lookup counters.
func (s *AdminService) QueryMetrics() *metrics.Snapshot {
	if s.registry == nil {
		return nil
	}
	snap := s.registry.Snapshot()
	return &snap
}

// Property Moderation
func (s *AdminService) GetProperties(filter AdminPropertyFilter) ([]models.Property, int64, error) {
	query := s.db.Model(&models.Property{})
	if filter.IncludeDeleted {
		query = query.Unscoped()
	}

	// Apply filters
	if filter.ListingType != nil {
		if *filter.ListingType == models.ListingTypeRent {
			query = query.Where("listing_type = ? OR listing_type = '' OR listing_type IS NULL", models.ListingTypeRent)
		} else {
			query = query.Where("listing_type = ?", *filter.ListingType)
		}
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.City != "" {
		query = query.Where("city ILIKE ?", "%"+filter.City+"%")
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		searchTerm := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR listing_no ILIKE ? OR owner_name ILIKE ?", searchTerm, searchTerm, searchTerm)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at <= ?", *filter.CreatedBefore)
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	// Apply sorting and pagination
	allowedSortFields := []string{"created_at", "updated_at", "title", "city", "status", "views", "favorites_count"}
	query = utils.ApplySort(query, filter.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, filter.PaginationParams)

	// Execute query
	var properties []models.Property
	if err := query.Find(&properties).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch properties: %w", err)
	}

	return properties, total, nil
}

func (s *AdminService) BlockProperty(propertyID uuid.UUID, adminID uuid.UUID, reason string) error {
	var property models.Property
	if err := s.db.First(&property, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if property.Status == models.PropertyStatusBlocked {
		return &StateError{Message: "property is already blocked"}
	}

	oldStatus := property.Status
	if err := s.db.Model(&property).Updates(map[string]interface{}{
		"status":   models.PropertyStatusBlocked,
		"featured": false,
	}).Error; err != nil {
		return fmt.Errorf("failed to block property: %w", err)
	}

	// Create audit log
	go s.createAuditLog(adminID, "BLOCK_PROPERTY", &propertyID,
		map[string]interface{}{"status": oldStatus},
		map[string]interface{}{"status": models.PropertyStatusBlocked, "reason": reason})

	return nil
}

func (s *AdminService) UnblockProperty(propertyID uuid.UUID, adminID uuid.UUID) error {
	var property models.Property
	if err := s.db.First(&property, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if property.Status != models.PropertyStatusBlocked {
		return &StateError{Message: "property is not blocked"}
	}

	// Unblocked listings come back as active; the owner can still turn
	// them inactive afterwards.
	if err := s.db.Model(&property).Updates(map[string]interface{}{
		"status": models.PropertyStatusActive,
	}).Error; err != nil {
		return fmt.Errorf("failed to unblock property: %w", err)
	}

	// Create audit log
	go s.createAuditLog(adminID, "UNBLOCK_PROPERTY", &propertyID,
		map[string]interface{}{"status": models.PropertyStatusBlocked},
		map[string]interface{}{"status": models.PropertyStatusActive})

	return nil
}

func (s *AdminService) SetFeatured(propertyID uuid.UUID, adminID uuid.UUID, featured bool) error {
	var property models.Property
	if err := s.db.First(&property, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if featured && !property.IsActive() {
		return &StateError{Message: "only active properties can be featured"}
	}

	oldFeatured := property.Featured
	if err := s.db.Model(&property).Updates(map[string]interface{}{"featured": featured}).Error; err != nil {
		return fmt.Errorf("failed to update featured flag: %w", err)
	}

	// Create audit log
	go s.createAuditLog(adminID, "SET_FEATURED", &propertyID,
		map[string]interface{}{"featured": oldFeatured},
		map[string]interface{}{"featured": featured})

	return nil
}

// HardDeleteProperty removes a property for good, favorites included, in
// one transaction. Works on soft-deleted rows too.
func (s *AdminService) HardDeleteProperty(propertyID uuid.UUID, adminID uuid.UUID) error {
	var property models.Property
	if err := s.db.Unscoped().First(&property, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("property_id = ?", propertyID).Delete(&models.Favorite{}).Error; err != nil {
			return fmt.Errorf("failed to delete favorites: %w", err)
		}
		if err := tx.Unscoped().Delete(&models.Property{}, propertyID).Error; err != nil {
			return fmt.Errorf("failed to delete property: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Create audit log
	go s.createAuditLog(adminID, "HARD_DELETE_PROPERTY", &propertyID,
		map[string]interface{}{"title": property.Title, "slug": property.Slug, "listingNo": property.ListingNo},
		nil)

	return nil
}

// Audit Trail
func (s *AdminService) GetAuditLogs(filter AdminAuditFilter) ([]models.AuditLog, int64, error) {
	query := s.db.Model(&models.AuditLog{})

	// Apply filters
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.ResourceType != "" {
		query = query.Where("resource_type = ?", filter.ResourceType)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Search != "" {
		query = query.Where("action ILIKE ?", "%"+filter.Search+"%")
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	// Apply sorting and pagination
	allowedSortFields := []string{"created_at", "action", "resource_type"}
	query = utils.ApplySort(query, filter.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, filter.PaginationParams)

	// Execute query
	var logs []models.AuditLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch audit logs: %w", err)
	}

	return logs, total, nil
}

// Market Reporting

// GetPriceTrends returns the nightly price aggregates for a listing type,
// optionally narrowed to one city, covering the trailing number of months.
func (s *AdminService) GetPriceTrends(listingType models.ListingType, city string, months int) ([]models.MarketSnapshot, error) {
	if months <= 0 {
		months = 6
	}
	if months > 24 {
		months = 24
	}

	query := s.db.Model(&models.MarketSnapshot{}).
		Where("listing_type = ?", listingType).
		Where("snapshot_date >= ?", time.Now().UTC().AddDate(0, -months, 0))
	if city != "" {
		query = query.Where("city ILIKE ?", city)
	}

	var snapshots []models.MarketSnapshot
	if err := query.Order("snapshot_date ASC, city ASC").Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch price trends: %w", err)
	}

	return snapshots, nil
}

// GetPriceDistribution buckets active listings of one type by price.
func (s *AdminService) GetPriceDistribution(cfg search.ListingTypeConfig) ([]PriceBucket, error) {
	buckets := priceBuckets(cfg)
	spec := search.Build(search.Filters{}, cfg)

	for i := range buckets {
		query := spec.Apply(s.db.Model(&models.Property{})).
			Where(cfg.PriceColumn+" >= ?", buckets[i].Min)
		if buckets[i].Max > 0 {
			query = query.Where(cfg.PriceColumn+" < ?", buckets[i].Max)
		}
		if err := query.Count(&buckets[i].Count).Error; err != nil {
			return nil, fmt.Errorf("failed to count price bucket: %w", err)
		}
	}

	return buckets, nil
}

// CollectMarketSnapshot aggregates active listings per city and listing type
// for one day. Re-running for the same day replaces that day's rows, so the
// nightly job is safe to retry.
func (s *AdminService) CollectMarketSnapshot(day time.Time) error {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	type cityAggregate struct {
		City        string
		ActiveCount int64
		AvgPrice    float64
		MinPrice    float64
		MaxPrice    float64
	}

	var rows []models.MarketSnapshot
	for _, cfg := range []search.ListingTypeConfig{search.RentListing, search.BuyListing} {
		var aggregates []cityAggregate
		spec := search.Build(search.Filters{}, cfg)
		err := spec.Apply(s.db.Model(&models.Property{})).
			Select("city, COUNT(*) as active_count"+
				", COALESCE(AVG("+cfg.PriceColumn+"), 0) as avg_price"+
				", COALESCE(MIN("+cfg.PriceColumn+"), 0) as min_price"+
				", COALESCE(MAX("+cfg.PriceColumn+"), 0) as max_price").
			Where("city != ''").
			Group("city").
			Scan(&aggregates).Error
		if err != nil {
			return fmt.Errorf("failed to aggregate %s listings: %w", cfg.Value, err)
		}

		for _, agg := range aggregates {
			rows = append(rows, models.MarketSnapshot{
				SnapshotDate: day,
				ListingType:  cfg.Value,
				City:         agg.City,
				ActiveCount:  agg.ActiveCount,
				AvgPrice:     agg.AvgPrice,
				MinPrice:     agg.MinPrice,
				MaxPrice:     agg.MaxPrice,
			})
		}
	}

	return database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("snapshot_date = ?", day).Delete(&models.MarketSnapshot{}).Error; err != nil {
			return fmt.Errorf("failed to clear snapshot day: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert snapshots: %w", err)
		}
		return nil
	})
}

// ExportProperties returns every property matching the filter, newest
// first, capped so an unbounded export cannot take the database down.
func (s *AdminService) ExportProperties(filter AdminPropertyFilter) ([]models.Property, error) {
	const exportCap = 10000

	query := s.db.Model(&models.Property{})
	if filter.IncludeDeleted {
		query = query.Unscoped()
	}
	if filter.ListingType != nil {
		if *filter.ListingType == models.ListingTypeRent {
			query = query.Where("listing_type = ? OR listing_type = '' OR listing_type IS NULL", models.ListingTypeRent)
		} else {
			query = query.Where("listing_type = ?", *filter.ListingType)
		}
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.City != "" {
		query = query.Where("city ILIKE ?", "%"+filter.City+"%")
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at <= ?", *filter.CreatedBefore)
	}

	var properties []models.Property
	if err := query.Order("created_at DESC").Limit(exportCap).Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to export properties: %w", err)
	}

	return properties, nil
}

// Helper methods
func (s *AdminService) createAuditLog(adminID uuid.UUID, action string, resourceID *uuid.UUID, oldValues, newValues map[string]interface{}) {
	auditLog := &models.AuditLog{
		UserID:       &adminID,
		UserRole:     string(models.UserRoleAdmin),
		Action:       action,
		ResourceType: "property",
		ResourceID:   resourceID,
		OldValues:    models.JSONB(oldValues),
		NewValues:    models.JSONB(newValues),
	}

	s.db.Create(auditLog)
}

func priceBuckets(cfg search.ListingTypeConfig) []PriceBucket {
	if cfg.Value == models.ListingTypeBuy {
		return []PriceBucket{
			{Label: "Under 25L", Min: 0, Max: 2500000},
			{Label: "25L-50L", Min: 2500000, Max: 5000000},
			{Label: "50L-1Cr", Min: 5000000, Max: 10000000},
			{Label: "1Cr-2Cr", Min: 10000000, Max: 20000000},
			{Label: "2Cr-5Cr", Min: 20000000, Max: 50000000},
			{Label: "Above 5Cr", Min: 50000000, Max: 0},
		}
	}
	return []PriceBucket{
		{Label: "Under 10k", Min: 0, Max: 10000},
		{Label: "10k-20k", Min: 10000, Max: 20000},
		{Label: "20k-35k", Min: 20000, Max: 35000},
		{Label: "35k-50k", Min: 35000, Max: 50000},
		{Label: "50k-75k", Min: 50000, Max: 75000},
		{Label: "Above 75k", Min: 75000, Max: 0},
	}
}
