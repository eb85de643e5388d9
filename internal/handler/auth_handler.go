package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexdesk/internal/dto"
	"lexdesk/internal/middleware"
	"lexdesk/internal/service"
	"lexdesk/internal/utils"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	userID, err := h.svc.Register(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user_id": userID})
}

// Login POST /api/auth/login returns the token and also sets it as
// an HTTP-only cookie for browser clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	resp, err := h.svc.Login(req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.SetCookie(middleware.AuthCookie, resp.Token, int(utils.TokenTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, resp)
}

// Session GET /api/auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	userID := c.GetUint(middleware.CtxUserID)
	resp, err := h.svc.Session(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": resp})
}
