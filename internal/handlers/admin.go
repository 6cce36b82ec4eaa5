// internal/handlers/admin.go
package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ayupanchal18/Renters-sub005/internal/models"
	"github.com/Ayupanchal18/Renters-sub005/internal/scheduler"
	"github.com/Ayupanchal18/Renters-sub005/internal/search"
	"github.com/Ayupanchal18/Renters-sub005/internal/services"
	"github.com/Ayupanchal18/Renters-sub005/internal/utils"
)

type AdminHandler struct {
	adminService *services.AdminService
	scheduler    *scheduler.Scheduler
}

func NewAdminHandler(adminService *services.AdminService, sched *scheduler.Scheduler) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		scheduler:    sched,
	}
}

// GET /admin/stats
func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.adminService.GetDashboardStats()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	payload := gin.H{"stats": stats}
	if snap := h.adminService.QueryMetrics(); snap != nil {
		payload["queryMetrics"] = snap
	}

	utils.SuccessResponse(c, payload)
}

// GET /admin/properties
func (h *AdminHandler) GetProperties(c *gin.Context) {
	filter := propertyFilterFromQuery(c)

	properties, total, err := h.adminService.GetProperties(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result := utils.CreatePaginationResult(properties, total, filter.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// PUT /admin/properties/:id/status
func (h *AdminHandler) UpdatePropertyStatus(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", nil)
		return
	}

	adminID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Status models.PropertyStatus `json:"status" validate:"required,oneof=active blocked"`
		Reason string                `json:"reason,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	var message string
	switch req.Status {
	case models.PropertyStatusBlocked:
		err = h.adminService.BlockProperty(propertyID, adminID, req.Reason)
		message = "Property blocked"
	case models.PropertyStatusActive:
		err = h.adminService.UnblockProperty(propertyID, adminID)
		message = "Property unblocked"
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": message})
}

// PATCH /admin/properties/:id/featured
func (h *AdminHandler) SetFeatured(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", nil)
		return
	}

	adminID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Featured *bool `json:"featured" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.adminService.SetFeatured(propertyID, adminID, *req.Featured); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Featured flag updated"})
}

// DELETE /admin/properties/:id
func (h *AdminHandler) HardDeleteProperty(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", nil)
		return
	}

	adminID, _, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.adminService.HardDeleteProperty(propertyID, adminID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Property permanently deleted"})
}

// GET /admin/audit-logs
func (h *AdminHandler) GetAuditLogs(c *gin.Context) {
	filter := services.AdminAuditFilter{
		PaginationParams: utils.GetPaginationParams(c),
		Action:           c.Query("action"),
		ResourceType:     c.Query("resourceType"),
	}
	if userID := c.Query("userId"); userID != "" {
		if id, err := uuid.Parse(userID); err == nil {
			filter.UserID = &id
		}
	}

	logs, total, err := h.adminService.GetAuditLogs(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result := utils.CreatePaginationResult(logs, total, filter.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /admin/reports/price-trends
func (h *AdminHandler) GetPriceTrends(c *gin.Context) {
	cfg := search.ForListingType(models.ListingType(c.DefaultQuery("type", "rent")))
	months, _ := strconv.Atoi(c.Query("months"))

	series, err := h.adminService.GetPriceTrends(cfg.Value, c.Query("city"), months)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	distribution, err := h.adminService.GetPriceDistribution(cfg)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"listingType":  cfg.Value,
		"series":       series,
		"distribution": distribution,
	})
}

// GET /admin/export/properties
func (h *AdminHandler) ExportProperties(c *gin.Context) {
	filter := propertyFilterFromQuery(c)

	properties, err := h.adminService.ExportProperties(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if c.DefaultQuery("format", "json") == "csv" {
		writePropertiesCSV(c, properties)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"properties": properties,
		"count":      len(properties),
	})
}

// POST /admin/market-snapshots/run
func (h *AdminHandler) RunMarketSnapshot(c *gin.Context) {
	logrus.Info("Manual market snapshot requested")

	// Run in a goroutine so a slow aggregation cannot stall the request
	go func() {
		if err := h.scheduler.RunSnapshotNow(); err != nil {
			logrus.WithError(err).Error("Manual market snapshot failed")
		}
	}()

	c.JSON(http.StatusAccepted, utils.APIResponse{
		Success: true,
		Data:    gin.H{"message": "Market snapshot started"},
	})
}

// propertyFilterFromQuery reads the shared moderation/export filter set.
func propertyFilterFromQuery(c *gin.Context) services.AdminPropertyFilter {
	filter := services.AdminPropertyFilter{
		PaginationParams: utils.GetPaginationParams(c),
		City:             c.Query("city"),
		IncludeDeleted:   c.Query("includeDeleted") == "true",
	}

	if listingType := c.Query("listingType"); listingType != "" {
		lt := models.ListingType(listingType)
		filter.ListingType = &lt
	}
	if status := c.Query("status"); status != "" {
		st := models.PropertyStatus(status)
		filter.Status = &st
	}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if ownerID := c.Query("ownerId"); ownerID != "" {
		if id, err := uuid.Parse(ownerID); err == nil {
			filter.OwnerID = &id
		}
	}
	if featured := c.Query("featured"); featured != "" {
		f := featured == "true"
		filter.Featured = &f
	}
	if createdAfter := c.Query("createdAfter"); createdAfter != "" {
		if t, err := time.Parse("2006-01-02", createdAfter); err == nil {
			filter.CreatedAfter = &t
		}
	}
	if createdBefore := c.Query("createdBefore"); createdBefore != "" {
		if t, err := time.Parse("2006-01-02", createdBefore); err == nil {
			filter.CreatedBefore = &t
		}
	}

	return filter
}

func writePropertiesCSV(c *gin.Context, properties []models.Property) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="properties-`+time.Now().UTC().Format("2006-01-02")+`.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	w.Write([]string{
		"id", "listing_no", "title", "listing_type", "category", "property_type",
		"status", "city", "monthly_rent", "selling_price", "bedrooms", "bathrooms",
		"area_sqft", "furnishing", "featured", "views", "favorites_count",
		"owner_name", "owner_phone", "created_at",
	})
	for i := range properties {
		p := &properties[i]
		w.Write([]string{
			p.ID.String(),
			p.ListingNo,
			p.Title,
			string(p.EffectiveListingType()),
			string(p.Category),
			p.PropertyType,
			string(p.Status),
			p.City,
			formatOptionalFloat(p.MonthlyRent),
			formatOptionalFloat(p.SellingPrice),
			strconv.Itoa(p.Bedrooms),
			strconv.Itoa(p.Bathrooms),
			formatOptionalFloat(p.AreaSqft),
			string(p.Furnishing),
			strconv.FormatBool(p.Featured),
			strconv.FormatInt(p.Views, 10),
			strconv.FormatInt(p.FavoritesCount, 10),
			p.OwnerName,
			p.OwnerPhone,
			p.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logrus.WithError(err).Error("CSV export write failed")
	}
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
