package dto

import "time"

type CreateMeetingReq struct {
	Title       string    `json:"title" binding:"required"`
	Agenda      string    `json:"agenda"`
	Location    string    `json:"location"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	DurationMin int       `json:"duration_min"`
	ProjectID   *uint     `json:"project_id"`
	AttendeeIDs []uint    `json:"attendee_ids"`
}

type MeetingListReq struct {
	From *time.Time `form:"from"`
	To   *time.Time `form:"to"`
}
