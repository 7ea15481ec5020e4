// Package handlers provides HTTP request handlers.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storeadmin/internal/core/apperror"
	appctx "storeadmin/internal/core/context"
	"storeadmin/internal/core/id"
	"storeadmin/internal/domain/store"
	"storeadmin/internal/infrastructure/http/v1/middleware"
)

var errStoreMissing = errors.New("store access middleware not installed")

// BaseHandler provides common handler utilities.
type BaseHandler struct {
	lists ListDefaults
}

// NewBaseHandler creates a new base handler.
func NewBaseHandler(lists ListDefaults) *BaseHandler {
	return &BaseHandler{lists: lists.withFallbacks()}
}

// BindJSON binds and validates JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// BindQuery binds and validates query parameters.
func (h *BaseHandler) BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid query parameters").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// Error registers error on Gin context and aborts request.
// Actual JSON response is produced by middleware.ErrorHandler.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ParseIntQuery parses integer query parameter with default value.
func (h *BaseHandler) ParseIntQuery(c *gin.Context, key string, defaultVal int) int {
	return parseIntQuery(c, key, defaultVal)
}

func parseIntQuery(c *gin.Context, key string, defaultVal int) int {
	val := c.Query(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}

// ParseID parses a UUID route parameter, reporting a 400 on failure.
func (h *BaseHandler) ParseID(c *gin.Context, param string) (id.ID, bool) {
	v, err := id.Parse(c.Param(param))
	if err != nil {
		h.Error(c, apperror.NewInvalidInput(param, "invalid id format"))
		return id.Nil, false
	}
	return v, true
}

// Session returns the authenticated session of the request.
func (h *BaseHandler) Session(c *gin.Context) (*appctx.Session, bool) {
	sess := appctx.GetSession(c.Request.Context())
	if !sess.Authenticated() {
		h.Error(c, apperror.NewUnauthorized("authentication required"))
		return nil, false
	}
	return sess, true
}

// Store returns the store resolved by the store access middleware.
func (h *BaseHandler) Store(c *gin.Context) (*store.Store, bool) {
	st, ok := middleware.CurrentStore(c)
	if !ok {
		h.Error(c, apperror.NewInternal(errStoreMissing))
		return nil, false
	}
	return st, true
}

// OK sends 200 response with data.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 response with data.
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}
