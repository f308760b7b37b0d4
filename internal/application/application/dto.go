package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/sap-portal/backend/internal/domain/application"
)

// SubmitApplicationRequest carries the public submission form. The same
// shape serves both first-time and renewal submissions; the renewal
// fields are ignored for first-time applications.
type SubmitApplicationRequest struct {
	StudentNumber   string  `json:"student_number" binding:"required,max=20"`
	LastName        string  `json:"last_name" binding:"required,max=100"`
	FirstName       string  `json:"first_name" binding:"required,max=100"`
	MiddleName      string  `json:"middle_name" binding:"omitempty,max=100"`
	BirthDate       string  `json:"birth_date" binding:"omitempty"`
	ContactNumber   string  `json:"contact_number" binding:"omitempty,max=20"`
	Email           string  `json:"email" binding:"required,email,max=200"`
	Address         string  `json:"address" binding:"omitempty,max=500"`
	Course          string  `json:"course" binding:"required,max=150"`
	YearLevel       string  `json:"year_level" binding:"omitempty,max=30"`
	UnitsEnrolled   int     `json:"units_enrolled" binding:"omitempty,min=0,max=50"`
	GWA             float64 `json:"gwa" binding:"omitempty,min=1,max=5"`
	PreferredOffice string  `json:"preferred_office" binding:"omitempty,max=200"`

	PreviousOffice string `json:"previous_office" binding:"omitempty,max=200"`
	HoursRendered  int    `json:"hours_rendered" binding:"omitempty,min=0"`
	SupervisorName string `json:"supervisor_name" binding:"omitempty,max=150"`
}

// UpdateStatusRequest is the staff status-update payload. The optional
// fields only apply to the statuses that use them.
type UpdateStatusRequest struct {
	Status      string `json:"status" binding:"required"`
	InterviewAt string `json:"interview_at" binding:"omitempty"`
	OfficeName  string `json:"office_name" binding:"omitempty,max=200"`
	StartDate   string `json:"start_date" binding:"omitempty"`
}

// ListApplicationsQuery holds the staff list filters
type ListApplicationsQuery struct {
	Page            int    `form:"page" binding:"omitempty,min=1"`
	PageSize        int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Status          string `form:"status" binding:"omitempty"`
	Kind            string `form:"kind" binding:"omitempty,oneof=new renewal"`
	PreferredOffice string `form:"preferred_office" binding:"omitempty"`
	AssignedOffice  string `form:"assigned_office" binding:"omitempty"`
	Course          string `form:"course" binding:"omitempty"`
	Search          string `form:"search" binding:"omitempty,max=100"`
	OrderBy         string `form:"order_by" binding:"omitempty,oneof=submitted_at student_number last_name status"`
	OrderDir        string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ApplicationResponse is the full staff-facing view of an application
type ApplicationResponse struct {
	ID              uuid.UUID          `json:"id"`
	Kind            application.Kind   `json:"kind"`
	StudentNumber   string             `json:"student_number"`
	LastName        string             `json:"last_name"`
	FirstName       string             `json:"first_name"`
	MiddleName      string             `json:"middle_name,omitempty"`
	FullName        string             `json:"full_name"`
	BirthDate       string             `json:"birth_date,omitempty"`
	ContactNumber   string             `json:"contact_number,omitempty"`
	Email           string             `json:"email"`
	Address         string             `json:"address,omitempty"`
	Course          string             `json:"course"`
	YearLevel       string             `json:"year_level,omitempty"`
	UnitsEnrolled   int                `json:"units_enrolled"`
	GWA             float64            `json:"gwa"`
	PreferredOffice string             `json:"preferred_office,omitempty"`
	AssignedOffice  string             `json:"assigned_office,omitempty"`
	PreviousOffice  string             `json:"previous_office,omitempty"`
	HoursRendered   int                `json:"hours_rendered,omitempty"`
	SupervisorName  string             `json:"supervisor_name,omitempty"`
	InterviewAt     *time.Time         `json:"interview_at,omitempty"`
	StartDate       *time.Time         `json:"start_date,omitempty"`
	SubmittedAt     time.Time          `json:"submitted_at"`
	Status          application.Status `json:"status"`
	StatusLabel     string             `json:"status_label"`
	Documents       []DocumentResponse `json:"documents,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// ApplicationListResponse is the compact list view for the staff queue
type ApplicationListResponse struct {
	ID              uuid.UUID          `json:"id"`
	Kind            application.Kind   `json:"kind"`
	StudentNumber   string             `json:"student_number"`
	FullName        string             `json:"full_name"`
	Course          string             `json:"course"`
	PreferredOffice string             `json:"preferred_office,omitempty"`
	AssignedOffice  string             `json:"assigned_office,omitempty"`
	InterviewAt     *time.Time         `json:"interview_at,omitempty"`
	SubmittedAt     time.Time          `json:"submitted_at"`
	Status          application.Status `json:"status"`
	StatusLabel     string             `json:"status_label"`
}

// TrackingStep is one stage of the pipeline on the public tracking page
type TrackingStep struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

// ChecklistItem reports whether one requirement slot has a file
type ChecklistItem struct {
	Type      application.DocumentType `json:"type"`
	Submitted bool                     `json:"submitted"`
}

// TrackingResponse is the public view returned to students tracking by
// student number. It exposes no reviewer identity or internal notes.
type TrackingResponse struct {
	StudentNumber  string             `json:"student_number"`
	FullName       string             `json:"full_name"`
	Kind           application.Kind   `json:"kind"`
	Status         application.Status `json:"status"`
	StatusLabel    string             `json:"status_label"`
	StatusMessage  string             `json:"status_message"`
	Progress       int                `json:"progress"`
	Steps          []TrackingStep     `json:"steps"`
	AssignedOffice string             `json:"assigned_office,omitempty"`
	InterviewAt    *time.Time         `json:"interview_at,omitempty"`
	StartDate      *time.Time         `json:"start_date,omitempty"`
	SubmittedAt    time.Time          `json:"submitted_at"`
	Checklist      []ChecklistItem    `json:"checklist"`
}

// DocumentResponse describes one uploaded requirement file
type DocumentResponse struct {
	ID          uuid.UUID                `json:"id"`
	Type        application.DocumentType `json:"type"`
	FileName    string                   `json:"file_name"`
	ContentType string                   `json:"content_type,omitempty"`
	SizeBytes   int64                    `json:"size_bytes"`
	UploadedAt  time.Time                `json:"uploaded_at"`
	URL         string                   `json:"url,omitempty"`
}

// InitiateDocumentUploadRequest starts a presigned document upload
type InitiateDocumentUploadRequest struct {
	Type        string `json:"type" binding:"required,max=50"`
	FileName    string `json:"file_name" binding:"required,max=255"`
	ContentType string `json:"content_type" binding:"required,max=100"`
	SizeBytes   int64  `json:"size_bytes" binding:"required,min=1"`
}

// InitiateDocumentUploadResponse carries the presigned upload URL. The
// client must PUT the file to the URL, then confirm with the storage key.
type InitiateDocumentUploadResponse struct {
	UploadURL  string    `json:"upload_url"`
	StorageKey string    `json:"storage_key"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ConfirmDocumentUploadRequest finalizes an upload after the client has
// PUT the file to the presigned URL
type ConfirmDocumentUploadRequest struct {
	Type        string `json:"type" binding:"required,max=50"`
	FileName    string `json:"file_name" binding:"required,max=255"`
	ContentType string `json:"content_type" binding:"omitempty,max=100"`
	StorageKey  string `json:"storage_key" binding:"required,max=500"`
	SizeBytes   int64  `json:"size_bytes" binding:"omitempty,min=0"`
}

// ToApplicationResponse converts a domain application to its response
func ToApplicationResponse(app *application.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:              app.ID,
		Kind:            app.Kind,
		StudentNumber:   app.StudentNumber,
		LastName:        app.LastName,
		FirstName:       app.FirstName,
		MiddleName:      app.MiddleName,
		FullName:        app.FullName(),
		ContactNumber:   app.ContactNumber,
		Email:           app.Email,
		Address:         app.Address,
		Course:          app.Course,
		YearLevel:       app.YearLevel,
		UnitsEnrolled:   app.UnitsEnrolled,
		GWA:             app.GWA,
		PreferredOffice: app.PreferredOffice,
		AssignedOffice:  app.AssignedOffice,
		PreviousOffice:  app.PreviousOffice,
		HoursRendered:   app.HoursRendered,
		SupervisorName:  app.SupervisorName,
		InterviewAt:     app.InterviewAt,
		StartDate:       app.StartDate,
		SubmittedAt:     app.SubmittedAt,
		Status:          app.Status,
		StatusLabel:     app.Status.Label(),
		CreatedAt:       app.CreatedAt,
		UpdatedAt:       app.UpdatedAt,
	}
	if !app.BirthDate.IsZero() {
		resp.BirthDate = app.BirthDate.Format("2006-01-02")
	}
	if len(app.Documents) > 0 {
		resp.Documents = ToDocumentResponses(app.Documents)
	}
	return resp
}

// ToApplicationListResponse converts a domain application to its list
// response
func ToApplicationListResponse(app *application.Application) ApplicationListResponse {
	return ApplicationListResponse{
		ID:              app.ID,
		Kind:            app.Kind,
		StudentNumber:   app.StudentNumber,
		FullName:        app.FullName(),
		Course:          app.Course,
		PreferredOffice: app.PreferredOffice,
		AssignedOffice:  app.AssignedOffice,
		InterviewAt:     app.InterviewAt,
		SubmittedAt:     app.SubmittedAt,
		Status:          app.Status,
		StatusLabel:     app.Status.Label(),
	}
}

// ToApplicationListResponses converts a slice of domain applications
func ToApplicationListResponses(apps []application.Application) []ApplicationListResponse {
	responses := make([]ApplicationListResponse, len(apps))
	for i := range apps {
		responses[i] = ToApplicationListResponse(&apps[i])
	}
	return responses
}

// ToDocumentResponse converts a domain document to its response
func ToDocumentResponse(doc *application.Document) DocumentResponse {
	return DocumentResponse{
		ID:          doc.ID,
		Type:        doc.Type,
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
		SizeBytes:   doc.SizeBytes,
		UploadedAt:  doc.UploadedAt,
	}
}

// ToDocumentResponses converts a slice of domain documents
func ToDocumentResponses(docs []application.Document) []DocumentResponse {
	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = ToDocumentResponse(&docs[i])
	}
	return responses
}

// ToTrackingResponse builds the public tracking view from an application
// and its uploaded documents
func ToTrackingResponse(app *application.Application, docs []application.Document) TrackingResponse {
	steps := app.Steps()
	trackingSteps := make([]TrackingStep, len(steps))
	for i, s := range steps {
		trackingSteps[i] = TrackingStep{Name: s.Name, State: string(s.State)}
	}

	uploaded := make(map[application.DocumentType]bool, len(docs))
	for _, d := range docs {
		uploaded[d.Type] = true
	}
	types := application.DocumentTypesFor(app.Kind)
	checklist := make([]ChecklistItem, len(types))
	for i, t := range types {
		checklist[i] = ChecklistItem{Type: t, Submitted: uploaded[t]}
	}

	return TrackingResponse{
		StudentNumber:  app.StudentNumber,
		FullName:       app.FullName(),
		Kind:           app.Kind,
		Status:         app.Status,
		StatusLabel:    app.Status.Label(),
		StatusMessage:  app.Status.Message(),
		Progress:       app.Progress(),
		Steps:          trackingSteps,
		AssignedOffice: app.AssignedOffice,
		InterviewAt:    app.InterviewAt,
		StartDate:      app.StartDate,
		SubmittedAt:    app.SubmittedAt,
		Checklist:      checklist,
	}
}
