package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storeadmin/internal/domain/auth"
	"storeadmin/internal/domain/store"
	"storeadmin/internal/infrastructure/http/v1/dto"
)

// StoreHandler handles store endpoints.
type StoreHandler struct {
	*BaseHandler
	service *store.Service
}

// NewStoreHandler creates a new store handler.
func NewStoreHandler(base *BaseHandler, service *store.Service) *StoreHandler {
	return &StoreHandler{BaseHandler: base, service: service}
}

// Create handles POST /stores. The session user becomes the owner.
func (h *StoreHandler) Create(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}
	ownerID, err := auth.SessionUserID(sess)
	if err != nil {
		h.Error(c, err)
		return
	}

	var req dto.CreateStoreRequest
	if !h.BindJSON(c, &req) {
		return
	}

	st, err := h.service.Create(c.Request.Context(), ownerID, req.Name, req.Currency)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromStore(st))
}

// List handles GET /stores - the session user's stores as a list view.
func (h *StoreHandler) List(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}
	ownerID, err := auth.SessionUserID(sess)
	if err != nil {
		h.Error(c, err)
		return
	}

	q, err := ParseListQuery(c, store.Schema, store.SearchFields, h.lists)
	if err != nil {
		h.Error(c, err)
		return
	}

	res, err := h.service.ListForOwner(c.Request.Context(), ownerID, q)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(res, dto.FromStore))
}

// Get handles GET /stores/:storeId. Access was checked by the store middleware.
func (h *StoreHandler) Get(c *gin.Context) {
	st, ok := h.Store(c)
	if !ok {
		return
	}
	h.OK(c, dto.FromStore(st))
}
