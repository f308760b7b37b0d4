package application

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sap-portal/backend/internal/domain/application"
	"github.com/sap-portal/backend/internal/domain/shared"
	"github.com/sap-portal/backend/internal/infrastructure/storage"
)

// AllowedDocumentContentTypes is the whitelist for requirement uploads.
// Scans and photos of paper documents plus PDF and Word exports cover
// everything the checklist asks for.
var AllowedDocumentContentTypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// DocumentServiceConfig holds configuration for the document service
type DocumentServiceConfig struct {
	UploadURLExpiry   time.Duration
	DownloadURLExpiry time.Duration
	MaxDocumentBytes  int64
}

// DefaultDocumentServiceConfig returns the default configuration
func DefaultDocumentServiceConfig() DocumentServiceConfig {
	return DocumentServiceConfig{
		UploadURLExpiry:   15 * time.Minute,
		DownloadURLExpiry: 1 * time.Hour,
		MaxDocumentBytes:  10 << 20,
	}
}

// DocumentService handles requirement document uploads via presigned
// URLs. Files never pass through the portal server; the client uploads
// directly to object storage and confirms afterwards.
type DocumentService struct {
	appRepo   application.Repository
	docRepo   application.DocumentRepository
	storage   storage.ObjectStorage
	publisher shared.EventPublisher
	config    DocumentServiceConfig
	logger    *zap.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	appRepo application.Repository,
	docRepo application.DocumentRepository,
	objectStorage storage.ObjectStorage,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		appRepo:   appRepo,
		docRepo:   docRepo,
		storage:   objectStorage,
		publisher: publisher,
		config:    DefaultDocumentServiceConfig(),
		logger:    logger,
	}
}

// SetConfig sets the service configuration
func (s *DocumentService) SetConfig(config DocumentServiceConfig) {
	s.config = config
}

// InitiateUpload validates the requested requirement slot and returns a
// presigned upload URL
func (s *DocumentService) InitiateUpload(
	ctx context.Context,
	applicationID uuid.UUID,
	req InitiateDocumentUploadRequest,
) (*InitiateDocumentUploadResponse, error) {
	app, err := s.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	docType := application.DocumentType(req.Type)
	if !docType.IsValidFor(app.Kind) {
		return nil, shared.NewDomainError("INVALID_DOCUMENT_TYPE",
			fmt.Sprintf("Document type '%s' is not on the %s application checklist", req.Type, app.Kind))
	}

	if !isAllowedDocumentContentType(req.ContentType) {
		return nil, shared.NewDomainError("DISALLOWED_CONTENT_TYPE",
			"Only JPEG, PNG, PDF, and Word documents are accepted")
	}

	if req.SizeBytes > s.config.MaxDocumentBytes {
		return nil, shared.NewDomainError("DOCUMENT_TOO_LARGE",
			fmt.Sprintf("Documents cannot exceed %d MB", s.config.MaxDocumentBytes>>20))
	}

	storageKey := s.generateStorageKey(app.ID, docType, req.FileName)

	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, storageKey, req.ContentType, s.config.UploadURLExpiry)
	if err != nil {
		s.logger.Error("Failed to generate upload URL",
			zap.String("application_id", app.ID.String()),
			zap.String("storage_key", storageKey),
			zap.Error(err))
		return nil, shared.NewDomainError("UPLOAD_URL_FAILED", "Failed to generate upload URL")
	}

	return &InitiateDocumentUploadResponse{
		UploadURL:  uploadURL,
		StorageKey: storageKey,
		ExpiresAt:  expiresAt,
	}, nil
}

// ConfirmUpload verifies the file landed in storage and records the
// document. A re-upload for an occupied requirement slot replaces the
// previous file.
func (s *DocumentService) ConfirmUpload(
	ctx context.Context,
	applicationID uuid.UUID,
	req ConfirmDocumentUploadRequest,
) (*DocumentResponse, error) {
	app, err := s.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	docType := application.DocumentType(req.Type)
	if !docType.IsValidFor(app.Kind) {
		return nil, shared.NewDomainError("INVALID_DOCUMENT_TYPE",
			fmt.Sprintf("Document type '%s' is not on the %s application checklist", req.Type, app.Kind))
	}

	if !strings.HasPrefix(req.StorageKey, s.keyPrefix(app.ID)) {
		return nil, shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key does not belong to this application")
	}

	exists, err := s.storage.ObjectExists(ctx, req.StorageKey)
	if err != nil {
		return nil, shared.NewDomainError("STORAGE_CHECK_FAILED", "Failed to verify upload")
	}
	if !exists {
		return nil, shared.NewDomainError("UPLOAD_NOT_FOUND",
			"File not found in storage. Please upload the file first.")
	}

	doc, err := application.NewDocument(app.ID, docType, req.FileName, req.ContentType, req.StorageKey, req.SizeBytes)
	if err != nil {
		return nil, err
	}

	// Replace any previous file in the same requirement slot
	existing, err := s.docRepo.FindByApplicationID(ctx, app.ID)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].Type != docType {
			continue
		}
		if err := s.docRepo.Delete(ctx, existing[i].ID); err != nil {
			return nil, err
		}
		if err := s.storage.DeleteObject(ctx, existing[i].StorageKey); err != nil {
			s.logger.Warn("Failed to delete replaced document from storage",
				zap.String("storage_key", existing[i].StorageKey),
				zap.Error(err))
		}
	}

	if err := s.docRepo.Save(ctx, doc); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, application.NewDocumentAttachedEvent(app, doc)); err != nil {
		s.logger.Warn("Failed to publish document event",
			zap.String("application_id", app.ID.String()),
			zap.Error(err))
	}

	s.logger.Info("Requirement document attached",
		zap.String("application_id", app.ID.String()),
		zap.String("document_type", string(docType)))

	resp := ToDocumentResponse(doc)
	s.enrichWithURL(ctx, &resp, doc)

	return &resp, nil
}

// ListByApplication returns the documents attached to an application,
// each with a short-lived download URL
func (s *DocumentService) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]DocumentResponse, error) {
	if _, err := s.appRepo.FindByID(ctx, applicationID); err != nil {
		return nil, err
	}

	docs, err := s.docRepo.FindByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	responses := ToDocumentResponses(docs)
	for i := range docs {
		s.enrichWithURL(ctx, &responses[i], &docs[i])
	}

	return responses, nil
}

// Delete removes a document record and its storage object
func (s *DocumentService) Delete(ctx context.Context, applicationID, documentID uuid.UUID) error {
	doc, err := s.docRepo.FindByID(ctx, documentID)
	if err != nil {
		return err
	}
	if doc.ApplicationID != applicationID {
		return shared.NewDomainError("INVALID_DOCUMENT", "Document does not belong to this application")
	}

	if err := s.storage.DeleteObject(ctx, doc.StorageKey); err != nil {
		s.logger.Warn("Failed to delete document from storage",
			zap.String("storage_key", doc.StorageKey),
			zap.Error(err))
	}

	return s.docRepo.Delete(ctx, documentID)
}

func (s *DocumentService) keyPrefix(applicationID uuid.UUID) string {
	return fmt.Sprintf("applications/%s/documents/", applicationID.String())
}

func (s *DocumentService) generateStorageKey(applicationID uuid.UUID, docType application.DocumentType, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("%s%s-%s%s", s.keyPrefix(applicationID), docType, uuid.New().String(), ext)
}

func (s *DocumentService) enrichWithURL(ctx context.Context, resp *DocumentResponse, doc *application.Document) {
	url, _, err := s.storage.GenerateDownloadURL(ctx, doc.StorageKey, s.config.DownloadURLExpiry)
	if err == nil {
		resp.URL = url
	}
}

func isAllowedDocumentContentType(contentType string) bool {
	return AllowedDocumentContentTypes[strings.ToLower(contentType)]
}
