package media

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sap-portal/backend/internal/domain/shared"
	"github.com/sap-portal/backend/internal/infrastructure/config"
)

// MockObjectStorage is a mock implementation of storage.ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, contentType, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	args := m.Called(ctx, storageKey, data, contentType)
	return args.Error(0)
}

func (m *MockObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	args := m.Called(ctx, storageKey)
	return args.Error(0)
}

func (m *MockObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	args := m.Called(ctx, storageKey)
	return args.Bool(0), args.Error(1)
}

func testMediaConfig() config.MediaConfig {
	return config.MediaConfig{
		MaxPhotoBytes:    5 << 20,
		BrightenPercent:  15,
		AllowedMimeTypes: []string{"image/jpeg", "image/png"},
	}
}

func grayImage(level uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: level, G: level, B: level, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestBrighten(t *testing.T) {
	img := grayImage(100)

	out := Brighten(img, 20)
	r, g, b, a := out.At(0, 0).RGBA()

	// 100 + (255-100)*20/100 = 131
	assert.Equal(t, uint32(131), r>>8)
	assert.Equal(t, uint32(131), g>>8)
	assert.Equal(t, uint32(131), b>>8)
	assert.Equal(t, uint32(255), a>>8)
}

func TestBrightenZeroIsNoOp(t *testing.T) {
	out := Brighten(grayImage(100), 0)
	r, _, _, _ := out.At(0, 0).RGBA()
	assert.Equal(t, uint32(100), r>>8)
}

func TestBrightenFullIsWhite(t *testing.T) {
	out := Brighten(grayImage(10), 100)
	r, g, b, _ := out.At(2, 2).RGBA()
	assert.Equal(t, uint32(255), r>>8)
	assert.Equal(t, uint32(255), g>>8)
	assert.Equal(t, uint32(255), b>>8)
}

func TestProcess(t *testing.T) {
	objectStorage := new(MockObjectStorage)
	svc := NewPhotoService(objectStorage, testMediaConfig(), zap.NewNop())
	ctx := context.Background()

	var uploaded []byte
	objectStorage.On("Upload", ctx, mock.AnythingOfType("string"), mock.Anything, "image/jpeg").
		Run(func(args mock.Arguments) {
			uploaded = args.Get(2).([]byte)
		}).
		Return(nil)
	objectStorage.On("GenerateDownloadURL", ctx, mock.AnythingOfType("string"), time.Hour).
		Return("https://storage.example/photo", time.Now().Add(time.Hour), nil)

	resp, err := svc.Process(ctx, encodePNG(t, grayImage(80)), "image/png")
	require.NoError(t, err)

	assert.Equal(t, "image/jpeg", resp.ContentType)
	assert.Equal(t, 4, resp.Width)
	assert.Equal(t, 4, resp.Height)
	assert.Equal(t, "https://storage.example/photo", resp.URL)
	assert.Contains(t, resp.StorageKey, "photos/processed/")

	// The stored bytes decode as JPEG and come out brighter than the input
	decoded, err := jpeg.Decode(bytes.NewReader(uploaded))
	require.NoError(t, err)
	r, _, _, _ := decoded.At(0, 0).RGBA()
	assert.Greater(t, r>>8, uint32(80))
}

func TestProcessRejectsOversizedPhoto(t *testing.T) {
	cfg := testMediaConfig()
	cfg.MaxPhotoBytes = 16
	svc := NewPhotoService(new(MockObjectStorage), cfg, zap.NewNop())

	_, err := svc.Process(context.Background(), make([]byte, 32), "image/png")
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PHOTO_TOO_LARGE", domainErr.Code)
}

func TestProcessRejectsDisallowedType(t *testing.T) {
	svc := NewPhotoService(new(MockObjectStorage), testMediaConfig(), zap.NewNop())

	_, err := svc.Process(context.Background(), []byte("<svg/>"), "image/svg+xml")
	require.Error(t, err)
}

func TestProcessRejectsGarbage(t *testing.T) {
	svc := NewPhotoService(new(MockObjectStorage), testMediaConfig(), zap.NewNop())

	_, err := svc.Process(context.Background(), []byte("not an image"), "image/png")
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PHOTO", domainErr.Code)
}
