package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/internal/middleware"
	"github.com/pageza/forkcast/backend/internal/service"
)

type UploadHandler struct {
	images *service.ImageService
	tokens middleware.TokenValidator
	log    *zap.Logger
}

// NewUploadHandler serves image uploads. A nil image service answers 503.
func NewUploadHandler(images *service.ImageService, tokens middleware.TokenValidator, log *zap.Logger) *UploadHandler {
	return &UploadHandler{images: images, tokens: tokens, log: log}
}

func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/upload", middleware.AuthMiddleware(h.tokens), h.Upload)
}

func (h *UploadHandler) Upload(c *gin.Context) {
	if h.images == nil {
		respondError(c, h.log, service.ErrUploadsUnavailable, "")
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}
	defer file.Close()

	resp, err := h.images.Upload(c.Request.Context(), middleware.UserID(c), &service.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}
	c.JSON(http.StatusOK, resp)
}
