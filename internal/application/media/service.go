// Package media processes applicant ID photos: decode, brighten, and
// store the result as a normalized JPEG.
package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sap-portal/backend/internal/domain/shared"
	"github.com/sap-portal/backend/internal/infrastructure/config"
	"github.com/sap-portal/backend/internal/infrastructure/storage"
)

const jpegQuality = 90

// ProcessedPhotoResponse describes a stored, processed photo
type ProcessedPhotoResponse struct {
	StorageKey  string    `json:"storage_key"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	URL         string    `json:"url,omitempty"`
	ExpiresAt   time.Time `json:"expires_at,omitempty"`
}

// PhotoService brightens applicant photos and stores the result.
// Uploaded ID photos are often underexposed phone shots; a fixed
// brighten pass keeps them legible on the review screen.
type PhotoService struct {
	storage storage.ObjectStorage
	cfg     config.MediaConfig
	logger  *zap.Logger
}

// NewPhotoService creates a new PhotoService
func NewPhotoService(objectStorage storage.ObjectStorage, cfg config.MediaConfig, logger *zap.Logger) *PhotoService {
	return &PhotoService{
		storage: objectStorage,
		cfg:     cfg,
		logger:  logger,
	}
}

// Process decodes the uploaded photo, brightens it by the configured
// percentage, stores the JPEG result, and returns a download URL
func (s *PhotoService) Process(ctx context.Context, data []byte, contentType string) (*ProcessedPhotoResponse, error) {
	if int64(len(data)) > s.cfg.MaxPhotoBytes {
		return nil, shared.NewDomainError("PHOTO_TOO_LARGE",
			fmt.Sprintf("Photos cannot exceed %d MB", s.cfg.MaxPhotoBytes>>20))
	}
	if !s.isAllowedType(contentType) {
		return nil, shared.NewDomainError("DISALLOWED_CONTENT_TYPE", "Only JPEG and PNG photos are accepted")
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PHOTO", "Photo could not be decoded")
	}

	brightened := Brighten(img, s.cfg.BrightenPercent)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, brightened, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, shared.NewDomainError("PHOTO_ENCODE_FAILED", "Failed to encode processed photo")
	}

	storageKey := fmt.Sprintf("photos/processed/%s.jpg", uuid.New().String())
	if err := s.storage.Upload(ctx, storageKey, buf.Bytes(), "image/jpeg"); err != nil {
		s.logger.Error("Failed to upload processed photo",
			zap.String("storage_key", storageKey),
			zap.Error(err))
		return nil, shared.NewDomainError("PHOTO_UPLOAD_FAILED", "Failed to store processed photo")
	}

	bounds := brightened.Bounds()
	resp := &ProcessedPhotoResponse{
		StorageKey:  storageKey,
		ContentType: "image/jpeg",
		SizeBytes:   int64(buf.Len()),
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
	}

	url, expiresAt, err := s.storage.GenerateDownloadURL(ctx, storageKey, time.Hour)
	if err == nil {
		resp.URL = url
		resp.ExpiresAt = expiresAt
	}

	s.logger.Info("Photo processed",
		zap.String("storage_key", storageKey),
		zap.String("source_format", format),
		zap.Int("brighten_percent", s.cfg.BrightenPercent))

	return resp, nil
}

func (s *PhotoService) isAllowedType(contentType string) bool {
	for _, t := range s.cfg.AllowedMimeTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

// Brighten scales every channel toward white by percent. 0 is a no-op,
// 100 maps everything to pure white. Alpha is preserved.
func Brighten(img image.Image, percent int) *image.RGBA {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			out.SetRGBA(x, y, color.RGBA{
				R: brightenChannel(r, percent),
				G: brightenChannel(g, percent),
				B: brightenChannel(b, percent),
				A: uint8(a >> 8),
			})
		}
	}
	return out
}

// brightenChannel moves a 16-bit channel value toward full intensity by
// percent of the remaining headroom
func brightenChannel(v uint32, percent int) uint8 {
	c := v >> 8
	c += (255 - c) * uint32(percent) / 100
	if c > 255 {
		c = 255
	}
	return uint8(c)
}
