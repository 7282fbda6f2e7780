package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumgt/eden-api/internal/domains/cart"
	"github.com/edumgt/eden-api/internal/shared/response"
)

// Handler - HTTP layer for cart operations
type Handler struct {
	service cart.Service
}

func NewHandler(service cart.Service) *Handler {
	return &Handler{service: service}
}

// FindByUserID - GET /carts/:userId
func (h *Handler) FindByUserID(c *gin.Context) {
	result, err := h.service.FindByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}
