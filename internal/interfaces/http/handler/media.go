package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	mediaapp "github.com/sap-portal/backend/internal/application/media"
)

// MediaHandler handles photo processing endpoints
type MediaHandler struct {
	BaseHandler
	photoService *mediaapp.PhotoService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(photoService *mediaapp.PhotoService) *MediaHandler {
	return &MediaHandler{
		photoService: photoService,
	}
}

// ProcessPhoto accepts a multipart photo upload, brightens it and stores
// the processed JPEG. The request body size is capped by the body limit
// middleware before it reaches here.
func (h *MediaHandler) ProcessPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		h.BadRequest(c, "Missing photo file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Unable to read photo file")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		h.BadRequest(c, "Unable to read photo file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	resp, err := h.photoService.Process(c.Request.Context(), data, contentType)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
