package dto

import "time"

type CreateTicketReq struct {
	ColumnID    uint       `json:"column_id" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	AssigneeID  *uint      `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
	// Position is optional; when absent the ticket lands at the end of
	// the column.
	Position *int `json:"position"`
}

type UpdateTicketReq struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority"`
	AssigneeID  *uint      `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`

	// Move fields. ColumnID alone appends to the destination; Position
	// pins an explicit slot (same- or cross-column).
	ColumnID *uint `json:"column_id"`
	Position *int  `json:"position"`
}

type CreateCommentReq struct {
	Body string `json:"body" binding:"required"`
	// Mentions are user ids called out in the comment body.
	Mentions []uint `json:"mentions"`
}
