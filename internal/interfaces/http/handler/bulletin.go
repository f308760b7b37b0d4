package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bulletinapp "github.com/sap-portal/backend/internal/application/bulletin"
	"github.com/sap-portal/backend/internal/interfaces/http/middleware"
)

// BulletinHandler handles bulletin board API endpoints
type BulletinHandler struct {
	BaseHandler
	bulletinService *bulletinapp.BulletinService
}

// NewBulletinHandler creates a new BulletinHandler
func NewBulletinHandler(bulletinService *bulletinapp.BulletinService) *BulletinHandler {
	return &BulletinHandler{
		bulletinService: bulletinService,
	}
}

// Board returns the public bulletin board: visible announcements,
// reminders and upcoming dates
func (h *BulletinHandler) Board(c *gin.Context) {
	board, err := h.bulletinService.Board(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, board)
}

// CreateAnnouncement posts an announcement attributed to the current user
func (h *BulletinHandler) CreateAnnouncement(c *gin.Context) {
	var req bulletinapp.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	postedBy := middleware.GetJWTUsername(c)

	announcement, err := h.bulletinService.CreateAnnouncement(c.Request.Context(), postedBy, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, announcement)
}

// UnpublishAnnouncement hides an announcement without deleting it
func (h *BulletinHandler) UnpublishAnnouncement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid announcement ID format")
		return
	}

	if err := h.bulletinService.UnpublishAnnouncement(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// DeleteAnnouncement removes an announcement
func (h *BulletinHandler) DeleteAnnouncement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid announcement ID format")
		return
	}

	if err := h.bulletinService.DeleteAnnouncement(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateReminder posts a staff reminder
func (h *BulletinHandler) CreateReminder(c *gin.Context) {
	var req bulletinapp.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	reminder, err := h.bulletinService.CreateReminder(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, reminder)
}

// DeleteReminder removes a reminder
func (h *BulletinHandler) DeleteReminder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid reminder ID format")
		return
	}

	if err := h.bulletinService.DeleteReminder(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateUpcomingDate posts an upcoming date to the board
func (h *BulletinHandler) CreateUpcomingDate(c *gin.Context) {
	var req bulletinapp.CreateUpcomingDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	date, err := h.bulletinService.CreateUpcomingDate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, date)
}

// DeleteUpcomingDate removes an upcoming date
func (h *BulletinHandler) DeleteUpcomingDate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid upcoming date ID format")
		return
	}

	if err := h.bulletinService.DeleteUpcomingDate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
