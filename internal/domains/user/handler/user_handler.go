package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumgt/eden-api/internal/domains/user"
	"github.com/edumgt/eden-api/internal/shared/response"
)

// Handler - HTTP layer for user operations
type Handler struct {
	service user.Service
}

func NewHandler(service user.Service) *Handler {
	return &Handler{service: service}
}

// Register - POST /users
func (h *Handler) Register(c *gin.Context) {
	var req user.RegisterRequest
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

// FindAll - GET /users
func (h *Handler) FindAll(c *gin.Context) {
	users, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// FindByParameter - GET /users/find?id=|cpf=|email=
// Parameters are tried in priority order: id, cpf, email.
func (h *Handler) FindByParameter(c *gin.Context) {
	resp, err := h.service.FindByParameter(
		c.Request.Context(),
		c.Query("id"),
		c.Query("cpf"),
		c.Query("email"),
	)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// PartialUpdate - PATCH /users/:id
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

// Delete - DELETE /users/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}

// ========================================
// TOKEN ISSUANCE
// ========================================

// Token - POST /token
func (h *Handler) Token(c *gin.Context) {
	var req user.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.Token(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Login - POST /login
func (h *Handler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// ========================================
// FAVORITES
// ========================================

// RegisterFavorite - POST /users/favorite
func (h *Handler) RegisterFavorite(c *gin.Context) {
	var req user.RegisterFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.RegisterFavorite(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// Favorites - GET /users/:id/favorites
func (h *Handler) Favorites(c *gin.Context) {
	products, err := h.service.Favorites(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}

// DeleteFavorite - DELETE /users/:id/favorites/:productId
func (h *Handler) DeleteFavorite(c *gin.Context) {
	err := h.service.DeleteFavorite(c.Request.Context(), c.Param("id"), c.Param("productId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}
