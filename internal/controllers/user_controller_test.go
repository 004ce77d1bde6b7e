package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wishlist-be/internal/entities"
	"wishlist-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRouter(repo *fakeUserRepo) *gin.Engine {
	router := gin.New()
	uc := NewUserController(service.NewUserService(repo, nil))

	// Legacy endpoints are unauthenticated.
	router.GET("/users", uc.List)
	router.POST("/users", uc.Create)

	return router
}

func TestCreateUserWithName(t *testing.T) {
	router := userRouter(newFakeUserRepo())

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Grandma"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var user entities.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "Grandma", user.Name)
	assert.Nil(t, user.Email)
}

func TestCreateUserRequiresName(t *testing.T) {
	router := userRouter(newFakeUserRepo())

	for _, body := range []string{`{}`, `{"name":""}`, `{"name":"   "}`} {
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestListUsers(t *testing.T) {
	repo := newFakeUserRepo()
	_, err := repo.Create("Mom", nil, nil)
	require.NoError(t, err)
	_, err = repo.Create("Dad", nil, nil)
	require.NoError(t, err)

	router := userRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var users []entities.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 2)

	// Password hashes never appear in responses.
	assert.NotContains(t, w.Body.String(), "password")
}
