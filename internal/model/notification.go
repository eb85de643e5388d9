package model

import (
	"time"

	"gorm.io/datatypes"
)

// Notification types understood by the dispatcher.
const (
	NotifyTicketAssigned     = "ticket_assigned"
	NotifyTicketMentioned    = "ticket_mentioned"
	NotifyTicketStatusChange = "ticket_status_change"
	NotifyMeetingScheduled   = "meeting_scheduled"
	NotifyMeetingReminder    = "meeting_reminder"
	NotifyProjectCreated     = "project_created"
	NotifyDocumentShared     = "document_shared"
)

// Notification is a per-user in-app record, optionally mirrored by an
// email. ReadAt is nil while unread; setting it is the only mutation.
type Notification struct {
	BaseModel
	UserID uint `gorm:"index:idx_notifications_user_read;not null" json:"user_id"`

	Type    string `gorm:"size:50;index;not null" json:"type"`
	Title   string `gorm:"size:200" json:"title"`
	Message string `gorm:"type:text" json:"message"`
	Link    string `gorm:"size:255" json:"link"`

	Data datatypes.JSON `json:"data,omitempty"`

	ReadAt *time.Time `gorm:"index:idx_notifications_user_read" json:"read_at"`
}

func (n *Notification) IsRead() bool { return n.ReadAt != nil }
