package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"wishlist-be/internal/errs"
	"wishlist-be/internal/logger"
	"wishlist-be/internal/middleware"
	"wishlist-be/internal/models"
	"wishlist-be/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GiftController struct {
	giftService service.GiftService
}

func NewGiftController(giftService service.GiftService) *GiftController {
	return &GiftController{
		giftService: giftService,
	}
}

// callerID extracts the authenticated principal set by the auth middleware.
func callerID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return 0, false
	}
	return value.(int64), true
}

// List handles GET /gifts - returns every gift from every user.
func (gc *GiftController) List(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	gifts, err := gc.giftService.List()
	if err != nil {
		logger.Error("Failed to list gifts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gifts)
}

// Create handles POST /gifts - creates a gift owned by the caller.
func (gc *GiftController) Create(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req models.CreateGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	gift, err := gc.giftService.Create(caller, &req)
	if err != nil {
		logger.Error("Failed to create gift", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gift)
}

// Update handles PATCH /gifts/:id - applies a status-only or full update
// under the authorization rules.
func (gc *GiftController) Update(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	giftID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gift ID"})
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	upd, err := models.ParseGiftUpdate(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gift, err := gc.giftService.Update(caller, giftID, upd)
	if err != nil {
		gc.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gift)
}

// Delete handles DELETE /gifts/:id - ownership-filtered delete.
func (gc *GiftController) Delete(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	giftID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gift ID"})
		return
	}

	if err := gc.giftService.Delete(caller, giftID); err != nil {
		gc.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (gc *GiftController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Gift not found"})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner can edit this gift"})
	case errors.Is(err, errs.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Gift operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
