package model

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog is an append-only audit trail entry. Rows are only ever
// inserted; nothing in the service layer updates or deletes them.
type ActivityLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	ActorID    uint   `gorm:"index;not null" json:"actor_id"`
	Action     string `gorm:"size:50;not null" json:"action"`
	EntityType string `gorm:"size:50;index;not null" json:"entity_type"`
	EntityID   uint   `gorm:"index;not null" json:"entity_id"`
	ProjectID  *uint  `gorm:"index" json:"project_id"`

	Details string `gorm:"type:text" json:"details"`

	// Extra structured context, when a caller has it.
	Meta datatypes.JSON `json:"meta,omitempty"`
}
