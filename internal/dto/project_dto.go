package dto

type CreateProjectReq struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	MatterNumber string   `json:"matter_number"`
	Columns      []string `json:"columns"` // optional custom column names
}

type UpdateProjectReq struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	MatterNumber *string `json:"matter_number"`
	Status       *string `json:"status"`
}
