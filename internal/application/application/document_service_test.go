package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sap-portal/backend/internal/domain/application"
	"github.com/sap-portal/backend/internal/domain/shared"
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

func newTestDocumentService() (*DocumentService, *MockApplicationRepository, *MockDocumentRepository, *MockObjectStorage, *MockEventPublisher) {
	appRepo := new(MockApplicationRepository)
	docRepo := new(MockDocumentRepository)
	objectStorage := new(MockObjectStorage)
	publisher := new(MockEventPublisher)
	svc := NewDocumentService(appRepo, docRepo, objectStorage, publisher, zap.NewNop())
	return svc, appRepo, docRepo, objectStorage, publisher
}

func newStoredApplication(t *testing.T, kind application.Kind) *application.Application {
	t.Helper()
	input := application.NewApplicationInput{
		Kind:          kind,
		StudentNumber: "2021-00123",
		LastName:      "Reyes",
		FirstName:     "Ana",
		Email:         "ana@example.edu",
		Course:        "BSCS",
	}
	if kind == application.KindRenewal {
		input.PreviousOffice = "Library"
	}
	app, err := application.NewApplication(input)
	require.NoError(t, err)
	app.ClearDomainEvents()
	return app
}

func TestInitiateUpload(t *testing.T) {
	svc, appRepo, _, objectStorage, _ := newTestDocumentService()
	ctx := context.Background()

	app := newStoredApplication(t, application.KindNew)
	appRepo.On("FindByID", ctx, app.ID).Return(app, nil)

	expiresAt := time.Now().Add(15 * time.Minute)
	objectStorage.On("GenerateUploadURL", ctx, mock.AnythingOfType("string"), "application/pdf", 15*time.Minute).
		Return("https://storage.example/upload", expiresAt, nil)

	resp, err := svc.InitiateUpload(ctx, app.ID, InitiateDocumentUploadRequest{
		Type:        "application_letter",
		FileName:    "letter.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://storage.example/upload", resp.UploadURL)
	assert.True(t, strings.HasPrefix(resp.StorageKey, "applications/"+app.ID.String()+"/documents/"))
	assert.True(t, strings.HasSuffix(resp.StorageKey, ".pdf"))
	assert.Equal(t, expiresAt, resp.ExpiresAt)
}

func TestInitiateUploadRejectsWrongChecklist(t *testing.T) {
	svc, appRepo, _, _, _ := newTestDocumentService()
	ctx := context.Background()

	app := newStoredApplication(t, application.KindNew)
	appRepo.On("FindByID", ctx, app.ID).Return(app, nil)

	// Renewal-only slot on a first-time application
	_, err := svc.InitiateUpload(ctx, app.ID, InitiateDocumentUploadRequest{
		Type:        "renewal_letter",
		FileName:    "letter.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_DOCUMENT_TYPE", domainErr.Code)
}

func TestInitiateUploadRejectsContentTypeAndSize(t *testing.T) {
	svc, appRepo, _, _, _ := newTestDocumentService()
	ctx := context.Background()

	app := newStoredApplication(t, application.KindNew)
	appRepo.On("FindByID", ctx, app.ID).Return(app, nil)

	_, err := svc.InitiateUpload(ctx, app.ID, InitiateDocumentUploadRequest{
		Type:        "application_letter",
		FileName:    "letter.svg",
		ContentType: "image/svg+xml",
		SizeBytes:   2048,
	})
	require.Error(t, err)

	_, err = svc.InitiateUpload(ctx, app.ID, InitiateDocumentUploadRequest{
		Type:        "application_letter",
		FileName:    "letter.pdf",
		ContentType: "application/pdf",
		SizeBytes:   11 << 20,
	})
	require.Error(t, err)
}

func TestConfirmUploadReplacesExistingSlot(t *testing.T) {
	svc, appRepo, docRepo, objectStorage, publisher := newTestDocumentService()
	ctx := context.Background()

	app := newStoredApplication(t, application.KindNew)
	appRepo.On("FindByID", ctx, app.ID).Return(app, nil)

	storageKey := "applications/" + app.ID.String() + "/documents/application_letter-new.pdf"
	oldDoc, err := application.NewDocument(app.ID, application.DocApplicationLetter, "old.pdf", "application/pdf",
		"applications/"+app.ID.String()+"/documents/application_letter-old.pdf", 512)
	require.NoError(t, err)

	objectStorage.On("ObjectExists", ctx, storageKey).Return(true, nil)
	docRepo.On("FindByApplicationID", ctx, app.ID).Return([]application.Document{*oldDoc}, nil)
	docRepo.On("Delete", ctx, oldDoc.ID).Return(nil)
	objectStorage.On("DeleteObject", ctx, oldDoc.StorageKey).Return(nil)
	docRepo.On("Save", ctx, mock.AnythingOfType("*application.Document")).Return(nil)
	publisher.On("Publish", ctx, mock.Anything).Return(nil)
	objectStorage.On("GenerateDownloadURL", ctx, storageKey, time.Hour).
		Return("https://storage.example/download", time.Now().Add(time.Hour), nil)

	resp, err := svc.ConfirmUpload(ctx, app.ID, ConfirmDocumentUploadRequest{
		Type:        "application_letter",
		FileName:    "letter.pdf",
		ContentType: "application/pdf",
		StorageKey:  storageKey,
		SizeBytes:   2048,
	})
	require.NoError(t, err)

	assert.Equal(t, application.DocApplicationLetter, resp.Type)
	assert.Equal(t, "https://storage.example/download", resp.URL)
	docRepo.AssertExpectations(t)
}

func TestConfirmUploadRejectsForeignStorageKey(t *testing.T) {
	svc, appRepo, _, _, _ := newTestDocumentService()
	ctx := context.Background()

	app := newStoredApplication(t, application.KindNew)
	appRepo.On("FindByID", ctx, app.ID).Return(app, nil)

	_, err := svc.ConfirmUpload(ctx, app.ID, ConfirmDocumentUploadRequest{
		Type:       "application_letter",
		FileName:   "letter.pdf",
		StorageKey: "applications/some-other-id/documents/x.pdf",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STORAGE_KEY", domainErr.Code)
}

func TestConfirmUploadRequiresObjectInStorage(t *testing.T) {
	svc, appRepo, _, objectStorage, _ := newTestDocumentService()
	ctx := context.Background()

	app := newStoredApplication(t, application.KindNew)
	appRepo.On("FindByID", ctx, app.ID).Return(app, nil)

	storageKey := "applications/" + app.ID.String() + "/documents/application_letter-x.pdf"
	objectStorage.On("ObjectExists", ctx, storageKey).Return(false, nil)

	_, err := svc.ConfirmUpload(ctx, app.ID, ConfirmDocumentUploadRequest{
		Type:       "application_letter",
		FileName:   "letter.pdf",
		StorageKey: storageKey,
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UPLOAD_NOT_FOUND", domainErr.Code)
}

func TestDeleteDocumentChecksOwnership(t *testing.T) {
	svc, _, docRepo, objectStorage, _ := newTestDocumentService()
	ctx := context.Background()

	app := newStoredApplication(t, application.KindNew)
	other := newStoredApplication(t, application.KindNew)

	doc, err := application.NewDocument(other.ID, application.DocIDPhoto, "photo.jpg", "image/jpeg",
		"applications/"+other.ID.String()+"/documents/id_photo-x.jpg", 1024)
	require.NoError(t, err)

	docRepo.On("FindByID", ctx, doc.ID).Return(doc, nil)

	err = svc.Delete(ctx, app.ID, doc.ID)
	require.Error(t, err)

	objectStorage.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything)
	docRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
