package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexdesk/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

type updateUserReq struct {
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

// Update PATCH /api/users/:id handles admin role and status changes.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	var err error
	if req.Role != nil {
		if _, err = h.svc.SetRole(id, *req.Role); err != nil {
			fail(c, err)
			return
		}
	}
	if req.Status != nil {
		if _, err = h.svc.SetStatus(id, *req.Status); err != nil {
			fail(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"updated": id})
}
