// internal/handlers/user.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ayupanchal18/Renters-sub005/internal/services"
	"github.com/Ayupanchal18/Renters-sub005/internal/utils"
)

type UserHandler struct {
	propertyService *services.PropertyService
	favoriteService *services.FavoriteService
}

func NewUserHandler(propertyService *services.PropertyService, favoriteService *services.FavoriteService) *UserHandler {
	return &UserHandler{
		propertyService: propertyService,
		favoriteService: favoriteService,
	}
}

// GET /users/me/properties
func (h *UserHandler) GetMyProperties(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	properties, total, err := h.propertyService.GetOwnerProperties(userID, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result := utils.CreatePaginationResult(properties, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /users/me/favorites
func (h *UserHandler) GetMyFavorites(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	favorites, total, err := h.favoriteService.GetUserFavorites(userID, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result := utils.CreatePaginationResult(favorites, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /properties/:identifier/favorite
func (h *UserHandler) AddFavorite(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("identifier"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", nil)
		return
	}

	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	favorite, err := h.favoriteService.AddFavorite(userID, propertyID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  "Added to favorites",
		"favorite": favorite,
	})
}

// DELETE /properties/:identifier/favorite
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("identifier"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", nil)
		return
	}

	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.favoriteService.RemoveFavorite(userID, propertyID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Removed from favorites"})
}
