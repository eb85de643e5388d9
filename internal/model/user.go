package model

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
	UserStatusPending  = "pending"
)

type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	Email        string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Name         string `gorm:"size:100" json:"name"`
	Avatar       string `gorm:"size:255" json:"avatar"`

	// Role holds one of the permission.Role values (admin, partner,
	// associate, paralegal, guest). Changed only through the admin path.
	Role   string `gorm:"size:20;default:'associate'" json:"role"`
	Status string `gorm:"size:20;default:'pending'" json:"status"`
}
