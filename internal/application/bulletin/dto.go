package bulletin

import (
	"time"

	"github.com/google/uuid"

	"github.com/sap-portal/backend/internal/domain/bulletin"
)

// CreateAnnouncementRequest posts a new announcement to the board
type CreateAnnouncementRequest struct {
	Title     string `json:"title" binding:"required,max=200"`
	Body      string `json:"body" binding:"required,max=10000"`
	ExpiresAt string `json:"expires_at" binding:"omitempty"`
}

// CreateReminderRequest posts a new reminder to the board
type CreateReminderRequest struct {
	Message  string `json:"message" binding:"required,max=500"`
	Priority string `json:"priority" binding:"omitempty,oneof=info warning urgent"`
	DueAt    string `json:"due_at" binding:"omitempty"`
}

// CreateUpcomingDateRequest posts a calendar entry to the board
type CreateUpcomingDateRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Happens  string `json:"happens" binding:"required"`
	Location string `json:"location" binding:"omitempty,max=200"`
}

// AnnouncementResponse is the board view of an announcement
type AnnouncementResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	PostedBy    string     `json:"posted_by,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt time.Time  `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// ReminderResponse is the board view of a reminder
type ReminderResponse struct {
	ID       uuid.UUID         `json:"id"`
	Message  string            `json:"message"`
	Priority bulletin.Priority `json:"priority"`
	DueAt    *time.Time        `json:"due_at,omitempty"`
}

// UpcomingDateResponse is the board view of a calendar entry
type UpcomingDateResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Happens  time.Time `json:"happens"`
	Location string    `json:"location,omitempty"`
}

// BoardResponse is the combined public bulletin board
type BoardResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
	Reminders     []ReminderResponse     `json:"reminders"`
	UpcomingDates []UpcomingDateResponse `json:"upcoming_dates"`
}

// ToAnnouncementResponse converts a domain announcement
func ToAnnouncementResponse(a *bulletin.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Body:        a.Body,
		PostedBy:    a.PostedBy,
		Published:   a.Published,
		PublishedAt: a.PublishedAt,
		ExpiresAt:   a.ExpiresAt,
	}
}

// ToAnnouncementResponses converts a slice of domain announcements
func ToAnnouncementResponses(items []bulletin.Announcement) []AnnouncementResponse {
	responses := make([]AnnouncementResponse, len(items))
	for i := range items {
		responses[i] = ToAnnouncementResponse(&items[i])
	}
	return responses
}

// ToReminderResponse converts a domain reminder
func ToReminderResponse(r *bulletin.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:       r.ID,
		Message:  r.Message,
		Priority: r.Priority,
		DueAt:    r.DueAt,
	}
}

// ToReminderResponses converts a slice of domain reminders
func ToReminderResponses(items []bulletin.Reminder) []ReminderResponse {
	responses := make([]ReminderResponse, len(items))
	for i := range items {
		responses[i] = ToReminderResponse(&items[i])
	}
	return responses
}

// ToUpcomingDateResponse converts a domain calendar entry
func ToUpcomingDateResponse(d *bulletin.UpcomingDate) UpcomingDateResponse {
	return UpcomingDateResponse{
		ID:       d.ID,
		Title:    d.Title,
		Happens:  d.Happens,
		Location: d.Location,
	}
}

// ToUpcomingDateResponses converts a slice of domain calendar entries
func ToUpcomingDateResponses(items []bulletin.UpcomingDate) []UpcomingDateResponse {
	responses := make([]UpcomingDateResponse, len(items))
	for i := range items {
		responses[i] = ToUpcomingDateResponse(&items[i])
	}
	return responses
}
