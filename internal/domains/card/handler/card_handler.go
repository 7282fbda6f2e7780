package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumgt/eden-api/internal/domains/card"
	"github.com/edumgt/eden-api/internal/shared/response"
)

// Handler - HTTP layer for card operations
type Handler struct {
	service card.Service
}

func NewHandler(service card.Service) *Handler {
	return &Handler{service: service}
}

// Register - POST /cards
func (h *Handler) Register(c *gin.Context) {
	var req card.CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// FindByUserID - GET /users/:id/cards
func (h *Handler) FindByUserID(c *gin.Context) {
	cards, err := h.service.FindByUserID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cards)
}

// Delete - DELETE /cards/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}
