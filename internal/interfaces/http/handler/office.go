package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	officeapp "github.com/sap-portal/backend/internal/application/office"
)

// OfficeHandler handles office-related API endpoints
type OfficeHandler struct {
	BaseHandler
	officeService *officeapp.OfficeService
}

// NewOfficeHandler creates a new OfficeHandler
func NewOfficeHandler(officeService *officeapp.OfficeService) *OfficeHandler {
	return &OfficeHandler{
		officeService: officeService,
	}
}

// List returns active offices, shown on the public application form
func (h *OfficeHandler) List(c *gin.Context) {
	offices, err := h.officeService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, offices)
}

// Capacity returns the slot availability report for all active offices
func (h *OfficeHandler) Capacity(c *gin.Context) {
	reports, err := h.officeService.Capacity(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, reports)
}

// CapacityByName returns the slot availability for a single office
func (h *OfficeHandler) CapacityByName(c *gin.Context) {
	name := c.Param("name")

	report, err := h.officeService.CapacityByName(c.Request.Context(), name)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// GetByID returns a single office
func (h *OfficeHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid office ID format")
		return
	}

	office, err := h.officeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, office)
}

// Create registers a new office
func (h *OfficeHandler) Create(c *gin.Context) {
	var req officeapp.CreateOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	office, err := h.officeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, office)
}

// Update changes an office's details, slots or location
func (h *OfficeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid office ID format")
		return
	}

	var req officeapp.UpdateOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	office, err := h.officeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, office)
}

// Deactivate hides an office from the application form
func (h *OfficeHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid office ID format")
		return
	}

	if err := h.officeService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Reactivate restores a deactivated office
func (h *OfficeHandler) Reactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid office ID format")
		return
	}

	if err := h.officeService.Reactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
