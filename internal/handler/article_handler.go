package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexdesk/internal/dto"
	"lexdesk/internal/middleware"
	"lexdesk/internal/service"
)

type ArticleHandler struct {
	svc *service.ArticleService
}

func NewArticleHandler(svc *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// List GET /api/articles
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// Get GET /api/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	article, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// Create POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	actorID := c.GetUint(middleware.CtxUserID)
	article, err := h.svc.Create(c.Request.Context(), actorID, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"article": article})
}
