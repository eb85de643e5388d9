package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lexdesk/internal/middleware"
	"lexdesk/internal/service"
)

type NotificationHandler struct {
	svc *service.NotificationService
}

func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List GET /api/notifications returns the caller's notifications, newest
// first, plus the unread count.
func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.GetUint(middleware.CtxUserID)
	notifications, err := h.svc.ListForUser(userID)
	if err != nil {
		fail(c, err)
		return
	}
	unread, err := h.svc.UnreadCount(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "unread": unread})
}

// Patch PATCH /api/notifications/:id marks one notification read.
// The special id "read-all" marks everything for the caller.
func (h *NotificationHandler) Patch(c *gin.Context) {
	userID := c.GetUint(middleware.CtxUserID)

	if c.Param("id") == "read-all" {
		if err := h.svc.MarkAllRead(userID); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"read": "all"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.svc.MarkRead(userID, uint(id)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"read": id})
}
