package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel replaces gorm.Model so we control the JSON tags.
type BaseModel struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
