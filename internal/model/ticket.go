package model

import "time"

const (
	TicketPriorityLow    = "low"
	TicketPriorityMedium = "medium"
	TicketPriorityHigh   = "high"
	TicketPriorityUrgent = "urgent"
)

// Ticket belongs to exactly one column at a time. Position is the
// integer ordering key inside that column; ordering is gap-based, so
// moves never renumber untouched siblings.
type Ticket struct {
	BaseModel
	ColumnID uint `gorm:"index;not null" json:"column_id"`
	Position int  `gorm:"not null;default:0" json:"position"`

	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Priority    string     `gorm:"size:20;default:'medium'" json:"priority"`
	DueDate     *time.Time `json:"due_date"`

	AssigneeID *uint `gorm:"index" json:"assignee_id"`
	Assignee   *User `json:"assignee,omitempty"`
	ReporterID uint  `gorm:"index;not null" json:"reporter_id"`
	Reporter   User  `json:"reporter"`

	Comments []Comment `gorm:"foreignKey:TicketID" json:"comments,omitempty"`
}

type Comment struct {
	BaseModel
	TicketID uint   `gorm:"index;not null" json:"ticket_id"`
	AuthorID uint   `gorm:"index;not null" json:"author_id"`
	Author   User   `json:"author"`
	Body     string `gorm:"type:text;not null" json:"body"`
}
