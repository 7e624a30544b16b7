package httpapi

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Upload pushes an image to Cloudinary and returns its URL. Accepts either a
// multipart file field or a JSON body with a base64 data URL. Returns 503
// when Cloudinary credentials are not configured.
func (h *Handler) Upload(c *gin.Context) {
	if h.cdn == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "uploads not configured"})
		return
	}

	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
			return
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
			return
		}
		result, err := h.cdn.UploadBytes(data, file.Filename)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "upload failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": result.SecureURL, "publicId": result.PublicID})
		return
	}

	var req struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.cdn.UploadBase64(req.Image)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": result.SecureURL, "publicId": result.PublicID})
}
