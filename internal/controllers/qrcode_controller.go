package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

// QRCodeController serves a scannable share link for the wishlist frontend.
type QRCodeController struct {
	frontendURL string
}

func NewQRCodeController(frontendURL string) *QRCodeController {
	return &QRCodeController{
		frontendURL: frontendURL,
	}
}

// ShareQRCode handles GET /qrcode - returns a PNG QR code pointing at the
// wishlist frontend, for sharing with family members.
func (qc *QRCodeController) ShareQRCode(c *gin.Context) {
	qrCode, err := qrcode.New(qc.frontendURL, qrcode.Medium)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	pngData, err := qrCode.PNG(256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code image",
		})
		return
	}

	c.Header("Content-Disposition", "inline; filename=wishlist.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
