package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumgt/eden-api/internal/domains/comment"
	"github.com/edumgt/eden-api/internal/shared/response"
)

// Handler - HTTP layer for comment operations
type Handler struct {
	service comment.Service
}

func NewHandler(service comment.Service) *Handler {
	return &Handler{service: service}
}

// Register - POST /comments
func (h *Handler) Register(c *gin.Context) {
	var req comment.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	created, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// FindByProductID - GET /products/:id/comments
func (h *Handler) FindByProductID(c *gin.Context) {
	comments, err := h.service.FindByProductID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, comments)
}

// PartialUpdate - PATCH /comments/:id
func (h *Handler) PartialUpdate(c *gin.Context) {
	var request map[string]interface{}
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	if err := h.service.PartialUpdate(c.Request.Context(), c.Param("id"), request); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}

// Delete - DELETE /comments/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}
