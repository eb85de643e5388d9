package model

// Article is a knowledge-base entry (precedents, playbooks, memos).
type Article struct {
	BaseModel
	Title string `gorm:"size:200;not null" json:"title"`
	Body  string `gorm:"type:text" json:"body"`
	Tags  string `gorm:"size:255" json:"tags"`

	AuthorID  uint  `gorm:"index;not null" json:"author_id"`
	Author    User  `json:"author"`
	ProjectID *uint `gorm:"index" json:"project_id"`
}
