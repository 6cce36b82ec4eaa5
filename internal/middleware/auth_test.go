// internal/middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayupanchal18/Renters-sub005/internal/utils"
)

func authTestRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", append(mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":   c.GetString("user_id"),
			"userRole": c.GetString("user_role"),
		})
	})...)
	return r
}

func issueToken(t *testing.T, role string) (uuid.UUID, string) {
	t.Helper()
	utils.SetJWTSecret("middleware-test-secret")
	userID := uuid.New()
	token, err := utils.GenerateJWT(userID, "Asha Rao", role, 1)
	require.NoError(t, err)
	return userID, token
}

func TestAuthRequiredRejectsMissingHeader(t *testing.T) {
	r := authTestRouter(AuthRequired())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/probe", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestAuthRequiredRejectsMalformedHeader(t *testing.T) {
	r := authTestRouter(AuthRequired())

	for _, header := range []string{"Token abc", "Bearer"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
	}
}

func TestAuthRequiredRejectsBadToken(t *testing.T) {
	utils.SetJWTSecret("middleware-test-secret")
	r := authTestRouter(AuthRequired())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthRequiredSetsIdentity(t *testing.T) {
	userID, token := issueToken(t, "user")
	r := authTestRouter(AuthRequired())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), `"userRole":"user"`)
}

func TestAdminRequired(t *testing.T) {
	_, userToken := issueToken(t, "user")
	_, adminToken := issueToken(t, "admin")
	r := authTestRouter(AuthRequired(), AdminRequired())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuthPassesAnonymous(t *testing.T) {
	r := authTestRouter(OptionalAuth())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/probe", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":""`)
}

func TestOptionalAuthIgnoresBadToken(t *testing.T) {
	utils.SetJWTSecret("middleware-test-secret")
	r := authTestRouter(OptionalAuth())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":""`)
}

func TestOptionalAuthSetsIdentityWhenValid(t *testing.T) {
	userID, token := issueToken(t, "user")
	r := authTestRouter(OptionalAuth())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}
