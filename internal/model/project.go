package model

const (
	ProjectStatusActive   = "active"
	ProjectStatusOnHold   = "on_hold"
	ProjectStatusArchived = "archived"
)

type Project struct {
	BaseModel
	Name         string `gorm:"size:200;not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	MatterNumber string `gorm:"size:50;index" json:"matter_number"`
	Status       string `gorm:"size:20;default:'active'" json:"status"`

	OwnerID uint `gorm:"index;not null" json:"owner_id"`
	Owner   User `json:"owner"`

	// Every project carries exactly one kanban board, created with it.
	Board Board `gorm:"foreignKey:ProjectID" json:"board"`
}

type Board struct {
	BaseModel
	ProjectID uint   `gorm:"uniqueIndex;not null" json:"project_id"`
	Name      string `gorm:"size:100" json:"name"`

	Columns []Column `gorm:"foreignKey:BoardID" json:"columns"`
}

// Column is a named stage on a board ("To Do", "In Review", ...).
// Position orders columns left to right.
type Column struct {
	BaseModel
	BoardID  uint   `gorm:"index;not null" json:"board_id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Position int    `gorm:"not null;default:0" json:"position"`

	Tickets []Ticket `gorm:"foreignKey:ColumnID" json:"tickets"`
}
