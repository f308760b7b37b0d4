package application

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sap-portal/backend/internal/domain/shared"
)

// DocumentType identifies one of the requirement slots on the checklist
type DocumentType string

// Requirement slots for first-time applications
const (
	DocApplicationLetter      DocumentType = "application_letter"
	DocRegistrationForm       DocumentType = "registration_form"
	DocGradeReport            DocumentType = "grade_report"
	DocCertificateOfIndigency DocumentType = "certificate_of_indigency"
	DocParentConsent          DocumentType = "parent_consent"
	DocBarangayClearance      DocumentType = "barangay_clearance"
	DocMedicalCertificate     DocumentType = "medical_certificate"
	DocIDPhoto                DocumentType = "id_photo"
	DocIncomeTaxReturn        DocumentType = "income_tax_return"
)

// Requirement slots specific to renewals
const (
	DocRenewalLetter         DocumentType = "renewal_letter"
	DocPerformanceEvaluation DocumentType = "performance_evaluation"
	DocServiceRecord         DocumentType = "service_record"
	DocUpdatedRegistration   DocumentType = "updated_registration"
	DocUpdatedGradeReport    DocumentType = "updated_grade_report"
	DocClearanceForm         DocumentType = "clearance_form"
)

// newApplicationDocTypes lists the checklist for first-time applications
var newApplicationDocTypes = []DocumentType{
	DocApplicationLetter,
	DocRegistrationForm,
	DocGradeReport,
	DocCertificateOfIndigency,
	DocParentConsent,
	DocBarangayClearance,
	DocMedicalCertificate,
	DocIDPhoto,
	DocIncomeTaxReturn,
}

// renewalDocTypes lists the checklist for renewals
var renewalDocTypes = []DocumentType{
	DocRenewalLetter,
	DocPerformanceEvaluation,
	DocServiceRecord,
	DocUpdatedRegistration,
	DocUpdatedGradeReport,
	DocClearanceForm,
}

// DocumentTypesFor returns the requirement checklist for an application
// kind
func DocumentTypesFor(kind Kind) []DocumentType {
	if kind == KindRenewal {
		return renewalDocTypes
	}
	return newApplicationDocTypes
}

// IsValidFor reports whether the document type belongs to the checklist
// of the given application kind
func (t DocumentType) IsValidFor(kind Kind) bool {
	for _, dt := range DocumentTypesFor(kind) {
		if dt == t {
			return true
		}
	}
	return false
}

// Document is a requirement file attached to an application. The file
// itself lives in object storage; only the key is recorded here.
type Document struct {
	shared.BaseEntity
	ApplicationID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Type          DocumentType `gorm:"type:varchar(50);not null"`
	FileName      string       `gorm:"type:varchar(255);not null"`
	ContentType   string       `gorm:"type:varchar(100)"`
	StorageKey    string       `gorm:"type:varchar(500);not null;uniqueIndex"`
	SizeBytes     int64        `gorm:"not null;default:0"`
	UploadedAt    time.Time    `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Document) TableName() string {
	return "application_documents"
}

// NewDocument creates a document record for an application requirement
func NewDocument(applicationID uuid.UUID, docType DocumentType, fileName, contentType, storageKey string, sizeBytes int64) (*Document, error) {
	if applicationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_APPLICATION_ID", "Application ID cannot be empty")
	}
	if strings.TrimSpace(string(docType)) == "" {
		return nil, shared.NewDomainError("INVALID_DOCUMENT_TYPE", "Document type cannot be empty")
	}
	if strings.TrimSpace(fileName) == "" {
		return nil, shared.NewDomainError("INVALID_FILE_NAME", "File name cannot be empty")
	}
	if strings.TrimSpace(storageKey) == "" {
		return nil, shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key cannot be empty")
	}

	return &Document{
		BaseEntity:    shared.NewBaseEntity(),
		ApplicationID: applicationID,
		Type:          docType,
		FileName:      fileName,
		ContentType:   contentType,
		StorageKey:    storageKey,
		SizeBytes:     sizeBytes,
		UploadedAt:    time.Now(),
	}, nil
}
