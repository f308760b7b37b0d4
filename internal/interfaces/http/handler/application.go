package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	applicationapp "github.com/sap-portal/backend/internal/application/application"
)

const interviewDateFormat = "2006-01-02"

// ApplicationHandler handles application-related API endpoints
type ApplicationHandler struct {
	BaseHandler
	applicationService *applicationapp.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(applicationService *applicationapp.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// SubmitNew handles first-time application submissions from the public portal
func (h *ApplicationHandler) SubmitNew(c *gin.Context) {
	var req applicationapp.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.applicationService.SubmitNew(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// SubmitRenewal handles renewal application submissions from the public portal
func (h *ApplicationHandler) SubmitRenewal(c *gin.Context) {
	var req applicationapp.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.applicationService.SubmitRenewal(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Track returns the public tracking view for a student number.
// No authentication required, the student number is the lookup key.
func (h *ApplicationHandler) Track(c *gin.Context) {
	studentNumber := strings.TrimSpace(c.Param("student_number"))
	if studentNumber == "" {
		h.BadRequest(c, "Student number is required")
		return
	}

	resp, err := h.applicationService.Track(c.Request.Context(), studentNumber)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns a paginated list of applications for staff review
func (h *ApplicationHandler) List(c *gin.Context) {
	var query applicationapp.ListApplicationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.applicationService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetByID returns the full application detail
func (h *ApplicationHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid application ID format")
		return
	}

	resp, err := h.applicationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// UpdateStatus advances or rejects an application in the review workflow
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid application ID format")
		return
	}

	var req applicationapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.applicationService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes an application and its records
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid application ID format")
		return
	}

	if err := h.applicationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListInterviews returns applications with interviews scheduled in a window.
// Defaults to the next seven days when no bounds are given.
func (h *ApplicationHandler) ListInterviews(c *gin.Context) {
	now := time.Now()
	from := now
	to := now.AddDate(0, 0, 7)

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse(interviewDateFormat, v)
		if err != nil {
			h.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse(interviewDateFormat, v)
		if err != nil {
			h.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		// Include the whole end day
		to = parsed.AddDate(0, 0, 1)
	}

	resp, err := h.applicationService.ListInterviews(c.Request.Context(), from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
