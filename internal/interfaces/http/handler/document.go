package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	applicationapp "github.com/sap-portal/backend/internal/application/application"
)

// DocumentHandler handles application document upload endpoints
type DocumentHandler struct {
	BaseHandler
	documentService *applicationapp.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService *applicationapp.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

// InitiateUpload issues a presigned upload URL for a checklist slot
func (h *DocumentHandler) InitiateUpload(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid application ID format")
		return
	}

	var req applicationapp.InitiateDocumentUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.documentService.InitiateUpload(c.Request.Context(), applicationID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ConfirmUpload records a completed upload against the application checklist
func (h *DocumentHandler) ConfirmUpload(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid application ID format")
		return
	}

	var req applicationapp.ConfirmDocumentUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.documentService.ConfirmUpload(c.Request.Context(), applicationID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns the documents attached to an application with download URLs
func (h *DocumentHandler) List(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid application ID format")
		return
	}

	resp, err := h.documentService.ListByApplication(c.Request.Context(), applicationID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a document record and its stored object
func (h *DocumentHandler) Delete(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid application ID format")
		return
	}

	documentID, err := uuid.Parse(c.Param("document_id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), applicationID, documentID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
