package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexdesk/internal/dto"
	"lexdesk/internal/middleware"
	"lexdesk/internal/service"
)

type MeetingHandler struct {
	svc *service.MeetingService
}

func NewMeetingHandler(svc *service.MeetingService) *MeetingHandler {
	return &MeetingHandler{svc: svc}
}

// List GET /api/meetings?from=&to=
func (h *MeetingHandler) List(c *gin.Context) {
	var req dto.MeetingListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meetings, err := h.svc.List(req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}

// Create POST /api/meetings
func (h *MeetingHandler) Create(c *gin.Context) {
	var req dto.CreateMeetingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	actorID := c.GetUint(middleware.CtxUserID)
	meeting, err := h.svc.Create(c.Request.Context(), actorID, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"meeting": meeting})
}
