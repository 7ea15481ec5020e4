package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storeadmin/internal/domain/auth"
	"storeadmin/internal/infrastructure/http/v1/dto"
)

// AuthHandler handles authentication and session endpoints.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.ToAuthRequest())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromUser(user))
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	tokens, user, err := h.service.Login(c.Request.Context(), req.ToCredentials())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Tokens: dto.FromTokenPair(tokens),
		User:   dto.FromUser(user),
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}
	if err := h.service.Logout(c.Request.Context(), sess); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}
	user, err := h.service.Me(c.Request.Context(), sess)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromUser(user))
}

// CurrentSession handles GET /session - the application context of the console.
func (h *AuthHandler) CurrentSession(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}
	user, err := h.service.Me(c.Request.Context(), sess)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.SessionResponse{
		User:          dto.FromUser(user),
		Authenticated: true,
		Theme:         user.Theme,
		ExpiresAt:     sess.ExpiresAt,
	})
}

// SetTheme handles PUT /session/theme
func (h *AuthHandler) SetTheme(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}

	var req dto.ThemeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.service.SetTheme(c.Request.Context(), sess, req.Theme)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromUser(user))
}
