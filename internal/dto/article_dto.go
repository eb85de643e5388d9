package dto

type CreateArticleReq struct {
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body"`
	Tags      string `json:"tags"`
	ProjectID *uint  `json:"project_id"`
	// SharedWith triggers a document_shared notification per user id.
	SharedWith []uint `json:"shared_with"`
}
