package model

import "time"

type Meeting struct {
	BaseModel
	Title       string    `gorm:"size:200;not null" json:"title"`
	Agenda      string    `gorm:"type:text" json:"agenda"`
	Location    string    `gorm:"size:200" json:"location"`
	ScheduledAt time.Time `gorm:"index;not null" json:"scheduled_at"`
	DurationMin int       `gorm:"default:30" json:"duration_min"`

	ProjectID   *uint `gorm:"index" json:"project_id"`
	OrganizerID uint  `gorm:"index;not null" json:"organizer_id"`
	Organizer   User  `json:"organizer"`

	Attendees []User `gorm:"many2many:meeting_attendees" json:"attendees"`
}
