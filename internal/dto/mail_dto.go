package dto

// SendEmailReq drives POST /api/send-email: render the template for
// Type with Data and send to every recipient.
type SendEmailReq struct {
	Type       string         `json:"type" binding:"required"`
	Recipients []string       `json:"recipients" binding:"required,min=1"`
	Data       map[string]any `json:"data"`
}
