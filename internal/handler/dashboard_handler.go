package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexdesk/internal/middleware"
	"lexdesk/internal/service"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats GET /api/dashboard/stats. Anonymous callers get the shared
// counts with a zero unread figure.
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID := c.GetUint(middleware.CtxUserID)
	stats, err := h.svc.Stats(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
