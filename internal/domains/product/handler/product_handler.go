package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumgt/eden-api/internal/domains/product"
	"github.com/edumgt/eden-api/internal/shared/response"
)

// Handler - HTTP layer for product operations
type Handler struct {
	service product.Service
}

func NewHandler(service product.Service) *Handler {
	return &Handler{service: service}
}

// Register - POST /products
func (h *Handler) Register(c *gin.Context) {
	var req product.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	p, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// FindAll - GET /products
func (h *Handler) FindAll(c *gin.Context) {
	products, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}

// Search - GET /products/search?title=
func (h *Handler) Search(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		response.BadRequest(c, "the 'title' query parameter must be passed")
		return
	}

	products, err := h.service.FindByTitleLike(c.Request.Context(), title)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}

// FindByID - GET /products/:id
func (h *Handler) FindByID(c *gin.Context) {
	p, err := h.service.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// PartialUpdate - PATCH /products/:id
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

// Delete - DELETE /products/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}
