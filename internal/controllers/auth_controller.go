package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"

	"wishlist-be/internal/errs"
	"wishlist-be/internal/logger"
	"wishlist-be/internal/models"
	"wishlist-be/internal/oauth"
	"wishlist-be/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const stateCookie = "oauth_state"

type AuthController struct {
	authService service.AuthService
	google      *oauth.GoogleProvider
	frontendURL string
}

func NewAuthController(authService service.AuthService, google *oauth.GoogleProvider, frontendURL string) *AuthController {
	return &AuthController{
		authService: authService,
		google:      google,
		frontendURL: frontendURL,
	}
}

// Register handles POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	response, err := ac.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmailNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, errs.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to register user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, &models.RegisterResponse{
		Message: "User registered successfully",
		User:    *response,
	})
}

// Login handles POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	response, err := ac.authService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmailNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, errs.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to log in user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// GoogleLogin handles GET /auth/google - redirects to the Google consent page.
func (ac *AuthController) GoogleLogin(c *gin.Context) {
	if !ac.google.Enabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Google login is not configured"})
		return
	}

	state, err := randomState()
	if err != nil {
		logger.Error("Failed to generate oauth state", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// State round-trips through a short-lived cookie and the callback query.
	c.SetCookie(stateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, ac.google.AuthURL(state))
}

// GoogleCallback handles GET /auth/google/callback - finishes the federated
// login and redirects to the frontend with the session token.
func (ac *AuthController) GoogleCallback(c *gin.Context) {
	if !ac.google.Enabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Google login is not configured"})
		return
	}

	state := c.Query("state")
	cookieState, err := c.Cookie(stateCookie)
	if err != nil || state == "" || state != cookieState {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid oauth state"})
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}

	response, err := ac.authService.LoginWithGoogle(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, errs.ErrEmailNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Google login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	redirect := ac.frontendURL + "/?token=" + url.QueryEscape(response.Token)
	c.Redirect(http.StatusTemporaryRedirect, redirect)
}

func randomState() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
