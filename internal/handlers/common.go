// internal/handlers/common.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ayupanchal18/Renters-sub005/internal/models"
	"github.com/Ayupanchal18/Renters-sub005/internal/services"
	"github.com/Ayupanchal18/Renters-sub005/internal/utils"
)

// respondServiceError translates service-layer errors into the API error
// envelope. Every handler funnels unhandled service errors through here so
// status codes stay consistent across routes.
func respondServiceError(c *gin.Context, err error) {
	var wrongType *services.WrongListingTypeError
	if errors.As(err, &wrongType) {
		utils.ErrorResponse(c, http.StatusNotFound, "WRONG_LISTING_TYPE",
			"Property belongs to a different listing type", gin.H{
				"listingType": wrongType.ListingType,
				"urlPath":     wrongType.Path,
			})
		return
	}

	var fieldErr *services.ValidationError
	if errors.As(err, &fieldErr) {
		utils.ValidationErrorResponse(c, []utils.ValidationError{
			{Field: fieldErr.Field, Message: fieldErr.Message},
		})
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(validationErrs))
		return
	}

	var stateErr *services.StateError
	if errors.As(err, &stateErr) {
		utils.ConflictResponse(c, stateErr.Message)
		return
	}

	switch {
	case errors.Is(err, services.ErrPropertyNotFound):
		utils.NotFoundResponse(c, "Property not found")
	case errors.Is(err, services.ErrFavoriteNotFound):
		utils.NotFoundResponse(c, "Favorite not found")
	case errors.Is(err, services.ErrFavoriteExists):
		utils.ConflictResponse(c, "Property is already in your favorites")
	case errors.Is(err, services.ErrNotOwner):
		utils.ForbiddenResponse(c, "You do not have permission to modify this property")
	case errors.Is(err, services.ErrPropertyBlocked):
		utils.ForbiddenResponse(c, "This property has been blocked by moderation")
	case errors.Is(err, services.ErrListingTypeFrozen):
		utils.BadRequestResponse(c, "Listing type cannot be changed after creation", nil)
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Unhandled service error")
		utils.InternalErrorResponse(c, "")
	}
}

// currentUser reads the authenticated user's id and display name set by the
// auth middleware. Writes the 401/400 response itself when the context is
// unusable, so callers just return on !ok.
func currentUser(c *gin.Context) (uuid.UUID, string, bool) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, "", false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return uuid.Nil, "", false
	}

	return userID, c.GetString("user_name"), true
}

// viewerID returns the authenticated user's id when present, nil for
// anonymous requests. Used on public routes behind OptionalAuth.
func viewerID(c *gin.Context) *uuid.UUID {
	if userIDStr, exists := utils.GetUserIDFromContext(c); exists {
		if uid, err := uuid.Parse(userIDStr); err == nil {
			return &uid
		}
	}
	return nil
}

func isAdmin(c *gin.Context) bool {
	role, ok := utils.GetUserRoleFromContext(c)
	return ok && role == string(models.UserRoleAdmin)
}
