package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lexdesk/internal/dto"
	"lexdesk/internal/middleware"
	"lexdesk/internal/service"
)

type TicketHandler struct {
	svc *service.TicketService
}

func NewTicketHandler(svc *service.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// List GET /api/tickets?column_id=
func (h *TicketHandler) List(c *gin.Context) {
	var columnID *uint
	if raw := c.Query("column_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid column_id"})
			return
		}
		v := uint(id)
		columnID = &v
	}

	tickets, err := h.svc.List(columnID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// Create POST /api/tickets
func (h *TicketHandler) Create(c *gin.Context) {
	var req dto.CreateTicketReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	actorID := c.GetUint(middleware.CtxUserID)
	ticket, err := h.svc.Create(c.Request.Context(), actorID, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ticket": ticket})
}

// Get GET /api/tickets/:id
func (h *TicketHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	ticket, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

// Update PATCH /api/tickets/:id covers field edits and column moves.
func (h *TicketHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateTicketReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	actorID := c.GetUint(middleware.CtxUserID)
	ticket, err := h.svc.Update(c.Request.Context(), actorID, id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

// Delete DELETE /api/tickets/:id
func (h *TicketHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// AddComment POST /api/tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	actorID := c.GetUint(middleware.CtxUserID)
	comment, err := h.svc.AddComment(c.Request.Context(), actorID, id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}
