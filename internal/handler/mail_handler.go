package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexdesk/internal/dto"
	"lexdesk/internal/service"
)

type MailHandler struct {
	svc *service.MailService
}

func NewMailHandler(svc *service.MailService) *MailHandler {
	return &MailHandler{svc: svc}
}

// Send POST /api/send-email renders the template for the given type
// and queues one message per recipient.
func (h *MailHandler) Send(c *gin.Context) {
	var req dto.SendEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if !h.svc.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "mail is disabled"})
		return
	}
	if err := h.svc.SendTemplate(c.Request.Context(), req.Type, req.Recipients, req.Data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"queued": len(req.Recipients)})
}
