package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lazygpt/gateway/internal/service"
	"github.com/lazygpt/gateway/internal/session"
)

type ImageHandler struct {
	image  *service.ImageService
	logger zerolog.Logger
}

func NewImageHandler(image *service.ImageService, logger zerolog.Logger) *ImageHandler {
	return &ImageHandler{
		image:  image,
		logger: logger,
	}
}

// Analyze handles POST /analyze-image. Pro sessions only; the tier check
// runs before the upload is touched.
func (h *ImageHandler) Analyze(c *gin.Context) {
	key := session.FromRequest(c.Request)
	if !session.IsPro(key) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access restricted",
			"pro":   false,
		})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}

	recipe, err := h.image.Analyze(c.Request.Context(), data, header.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, service.ErrNoImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
			return
		}

		h.logger.Error().Err(err).Str("session_id", key).Msg("image analysis failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
			"pro":   true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe": recipe,
		"pro":    true,
	})
}
