// internal/handlers/property.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ayupanchal18/Renters-sub005/internal/models"
	"github.com/Ayupanchal18/Renters-sub005/internal/search"
	"github.com/Ayupanchal18/Renters-sub005/internal/services"
	"github.com/Ayupanchal18/Renters-sub005/internal/utils"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// propertyWithPath is the single-lookup wire shape: the property fields
// flattened, plus the canonical URL path derived from type and slug.
type propertyWithPath struct {
	*models.Property
	URLPath string `json:"urlPath"`
}

func withPath(p *models.Property) propertyWithPath {
	return propertyWithPath{Property: p, URLPath: p.CanonicalPath()}
}

// typeConfig resolves the ?type= query parameter, defaulting to rent.
func typeConfig(c *gin.Context) search.ListingTypeConfig {
	return search.ForListingType(models.ListingType(c.Query("type")))
}

// GET /properties
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	// Build filters from the query string
	raw := search.RawFilters{}
	if q := c.Query("q"); q != "" {
		raw.Query = q
	}
	if city := c.Query("city"); city != "" {
		raw.Location = city
	}
	if category := c.Query("category"); category != "" {
		raw.Category = category
	}
	if propertyType := c.Query("propertyType"); propertyType != "" {
		raw.PropertyType = propertyType
	}
	if minRent := c.Query("minRent"); minRent != "" {
		raw.MinPrice = minRent
	}
	if maxRent := c.Query("maxRent"); maxRent != "" {
		raw.MaxPrice = maxRent
	}
	if bedrooms := c.Query("bedrooms"); bedrooms != "" {
		raw.Bedrooms = bedrooms
	}
	if furnishing := c.Query("furnishing"); furnishing != "" {
		raw.Furnishing = furnishing
	}
	if amenities := c.Query("amenities"); amenities != "" {
		raw.Amenities = amenities
	}

	// The query-string endpoint predates the rent/buy split and keeps its
	// legacy rental semantics.
	properties, total, err := h.propertyService.Search(raw, search.RentListing, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.ListingPageResponse(c, properties, total, params)
}

// POST /properties/search
func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	h.search(c, search.RentListing)
}

// POST /properties/rent/search
func (h *PropertyHandler) SearchRentProperties(c *gin.Context) {
	h.search(c, search.RentListing)
}

// POST /properties/buy/search
func (h *PropertyHandler) SearchBuyProperties(c *gin.Context) {
	h.search(c, search.BuyListing)
}

func (h *PropertyHandler) search(c *gin.Context, cfg search.ListingTypeConfig) {
	var req services.SearchPropertiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid search request", err.Error())
		return
	}

	params := req.Pagination()
	properties, total, err := h.propertyService.Search(req.RawFilters(), cfg, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result := utils.CreatePaginationResult(properties, total, params)
	utils.SearchResultsResponse(c, properties, result)
}

// GET /properties/featured
func (h *PropertyHandler) GetFeaturedProperties(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	properties, err := h.propertyService.GetFeatured(typeConfig(c), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"properties": properties})
}

// GET /properties/popular
func (h *PropertyHandler) GetPopularProperties(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	properties, err := h.propertyService.GetPopular(typeConfig(c), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"properties": properties})
}

// GET /properties/:identifier
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	property, err := h.propertyService.GetByIdentifier(c.Param("identifier"), viewerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, withPath(property))
}

// GET /properties/rent/:identifier
func (h *PropertyHandler) GetRentProperty(c *gin.Context) {
	h.getForType(c, search.RentListing)
}

// GET /properties/buy/:identifier
func (h *PropertyHandler) GetBuyProperty(c *gin.Context) {
	h.getForType(c, search.BuyListing)
}

func (h *PropertyHandler) getForType(c *gin.Context, cfg search.ListingTypeConfig) {
	property, err := h.propertyService.GetByIdentifierForType(c.Param("identifier"), cfg, viewerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, withPath(property))
}

// GET /properties/:identifier/similar
func (h *PropertyHandler) GetSimilarProperties(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	properties, err := h.propertyService.GetSimilar(c.Param("identifier"), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"properties": properties})
}

// POST /properties
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	ownerID, ownerName, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	property, err := h.propertyService.CreateProperty(ownerID, ownerName, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  "Property listed successfully",
		"property": withPath(property),
	})
}

// PUT /properties/:identifier
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("identifier"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", nil)
		return
	}

	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	property, err := h.propertyService.UpdateProperty(id, userID, isAdmin(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Property updated successfully",
		"property": withPath(property),
	})
}

// PATCH /properties/:identifier/status
func (h *PropertyHandler) UpdatePropertyStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("identifier"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", nil)
		return
	}

	ownerID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	property, err := h.propertyService.UpdateStatus(id, ownerID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Property status updated",
		"property": withPath(property),
	})
}

// DELETE /properties/:identifier
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("identifier"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", nil)
		return
	}

	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.propertyService.DeleteProperty(id, userID, isAdmin(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Property deleted successfully"})
}
