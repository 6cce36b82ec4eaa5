// internal/handlers/common_test.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayupanchal18/Renters-sub005/internal/services"
	"github.com/Ayupanchal18/Renters-sub005/internal/utils"
)

func errorContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/properties/test", nil)
	return c, w
}

func TestRespondServiceErrorWrongListingType(t *testing.T) {
	c, w := errorContext()

	respondServiceError(c, &services.WrongListingTypeError{
		ListingType: "buy",
		Path:        "/buy/2bhk-flat-in-pune",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "WRONG_LISTING_TYPE")
	assert.Contains(t, w.Body.String(), `"listingType":"buy"`)
	assert.Contains(t, w.Body.String(), `"urlPath":"/buy/2bhk-flat-in-pune"`)
}

func TestRespondServiceErrorFieldValidation(t *testing.T) {
	c, w := errorContext()

	respondServiceError(c, &services.ValidationError{
		Field:   "sellingPrice",
		Message: "sellingPrice is not valid for rent listings",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, w.Body.String(), "sellingPrice is not valid for rent listings")
}

func TestRespondServiceErrorStructValidation(t *testing.T) {
	c, w := errorContext()

	// Services wrap validator errors before returning them.
	err := utils.ValidateStruct(&services.UpdateStatusRequest{Status: "bogus"})
	require.Error(t, err)
	respondServiceError(c, fmt.Errorf("validation failed: %w", err))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, w.Body.String(), `"field":"status"`)
}

func TestRespondServiceErrorSentinels(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"property not found", services.ErrPropertyNotFound, http.StatusNotFound},
		{"favorite not found", services.ErrFavoriteNotFound, http.StatusNotFound},
		{"favorite exists", services.ErrFavoriteExists, http.StatusConflict},
		{"not owner", services.ErrNotOwner, http.StatusForbidden},
		{"blocked", services.ErrPropertyBlocked, http.StatusForbidden},
		{"listing type frozen", services.ErrListingTypeFrozen, http.StatusBadRequest},
		{"wrapped sentinel", fmt.Errorf("lookup: %w", services.ErrPropertyNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := errorContext()
			respondServiceError(c, tt.err)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRespondServiceErrorState(t *testing.T) {
	c, w := errorContext()

	respondServiceError(c, &services.StateError{Message: "property is already blocked"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "property is already blocked")
}

func TestRespondServiceErrorUnknown(t *testing.T) {
	c, w := errorContext()

	respondServiceError(c, errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestCurrentUser(t *testing.T) {
	c, w := errorContext()
	userID := uuid.New()
	c.Set("user_id", userID.String())
	c.Set("user_name", "Asha Rao")

	id, name, ok := currentUser(c)
	require.True(t, ok)
	assert.Equal(t, userID, id)
	assert.Equal(t, "Asha Rao", name)
	assert.Empty(t, w.Body.String())
}

func TestCurrentUserMissing(t *testing.T) {
	c, w := errorContext()

	_, _, ok := currentUser(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrentUserMalformed(t *testing.T) {
	c, w := errorContext()
	c.Set("user_id", "not-a-uuid")

	_, _, ok := currentUser(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestViewerID(t *testing.T) {
	c, _ := errorContext()
	assert.Nil(t, viewerID(c))

	userID := uuid.New()
	c.Set("user_id", userID.String())
	got := viewerID(c)
	require.NotNil(t, got)
	assert.Equal(t, userID, *got)

	c.Set("user_id", "garbage")
	assert.Nil(t, viewerID(c))
}

func TestIsAdmin(t *testing.T) {
	c, _ := errorContext()
	assert.False(t, isAdmin(c))

	c.Set("user_role", "user")
	assert.False(t, isAdmin(c))

	c.Set("user_role", "admin")
	assert.True(t, isAdmin(c))
}
