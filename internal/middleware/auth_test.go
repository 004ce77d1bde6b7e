package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wishlist-be/internal/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(jwtService *jwt.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/gifts", AuthMiddleware(jwtService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetInt64(ContextUserID)})
	})
	return router
}

func TestMissingHeaderIsUnauthorized(t *testing.T) {
	router := setupAuthRouter(jwt.NewJWTService("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gifts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNonBearerHeaderIsUnauthorized(t *testing.T) {
	router := setupAuthRouter(jwt.NewJWTService("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gifts", nil)
	req.Header.Set("Authorization", "Basic abc123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInvalidTokenIsUnauthorized(t *testing.T) {
	router := setupAuthRouter(jwt.NewJWTService("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gifts", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExpiredTokenIsUnauthorized(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", -time.Minute)
	router := setupAuthRouter(jwtService)

	token, err := jwtService.GenerateToken(1, "a@b.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gifts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidTokenSetsPrincipal(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Hour)
	router := setupAuthRouter(jwtService)

	token, err := jwtService.GenerateToken(7, "mom@gmail.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gifts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":7}`, w.Body.String())
}
