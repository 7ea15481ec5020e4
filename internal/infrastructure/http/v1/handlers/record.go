package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"storeadmin/internal/core/entity"
	"storeadmin/internal/core/id"
	"storeadmin/internal/domain/store"
	"storeadmin/internal/infrastructure/http/v1/dto"
	"storeadmin/internal/listview"
)

// RecordService is what the generic handler needs from a store-scoped service.
// domain.CatalogService and the services embedding it satisfy it.
type RecordService[T entity.Entity] interface {
	Create(ctx context.Context, e T) error
	GetByID(ctx context.Context, storeID, recordID id.ID) (T, error)
	Update(ctx context.Context, e T) error
	List(ctx context.Context, storeID id.ID, q listview.Query) (listview.Result[T], error)
	Reload(ctx context.Context, storeID id.ID) error
	Schema() *listview.Schema[T]
}

// RecordHandler provides list, get, create and update endpoints for one
// store-scoped record type.
type RecordHandler[T entity.Entity, CreateDTO any, UpdateDTO any, D any] struct {
	*BaseHandler
	service      RecordService[T]
	searchFields []string

	mapCreateDTO func(ctx context.Context, st *store.Store, req CreateDTO) (T, error)
	mapUpdateDTO func(req UpdateDTO, existing T) T
	mapToDTO     func(e T) D
}

// RecordHandlerConfig configures the record handler.
type RecordHandlerConfig[T entity.Entity, CreateDTO any, UpdateDTO any, D any] struct {
	Service      RecordService[T]
	SearchFields []string
	MapCreateDTO func(ctx context.Context, st *store.Store, req CreateDTO) (T, error)

	// MapUpdateDTO is nil for records that cannot be edited in place.
	MapUpdateDTO func(req UpdateDTO, existing T) T
	MapToDTO     func(e T) D
}

// NewRecordHandler creates a new record handler.
func NewRecordHandler[T entity.Entity, CreateDTO any, UpdateDTO any, D any](
	base *BaseHandler,
	cfg RecordHandlerConfig[T, CreateDTO, UpdateDTO, D],
) *RecordHandler[T, CreateDTO, UpdateDTO, D] {
	return &RecordHandler[T, CreateDTO, UpdateDTO, D]{
		BaseHandler:  base,
		service:      cfg.Service,
		searchFields: cfg.SearchFields,
		mapCreateDTO: cfg.MapCreateDTO,
		mapUpdateDTO: cfg.MapUpdateDTO,
		mapToDTO:     cfg.MapToDTO,
	}
}

// Updatable reports whether PUT /:id is supported.
func (h *RecordHandler[T, CreateDTO, UpdateDTO, D]) Updatable() bool {
	return h.mapUpdateDTO != nil
}

// List handles GET /{records} - filter, sort and paginate the store's records.
func (h *RecordHandler[T, CreateDTO, UpdateDTO, D]) List(c *gin.Context) {
	ctx := c.Request.Context()
	st, ok := h.Store(c)
	if !ok {
		return
	}

	q, err := ParseListQuery(c, h.service.Schema(), h.searchFields, h.lists)
	if err != nil {
		h.Error(c, err)
		return
	}

	if wantsRefresh(c) {
		if err := h.service.Reload(ctx, st.ID); err != nil {
			h.Error(c, err)
			return
		}
	}

	res, err := h.service.List(ctx, st.ID, q)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(res, h.mapToDTO))
}

// Get handles GET /{records}/:id.
func (h *RecordHandler[T, CreateDTO, UpdateDTO, D]) Get(c *gin.Context) {
	st, ok := h.Store(c)
	if !ok {
		return
	}
	recordID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), st.ID, recordID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, h.mapToDTO(e))
}

// Create handles POST /{records}.
func (h *RecordHandler[T, CreateDTO, UpdateDTO, D]) Create(c *gin.Context) {
	st, ok := h.Store(c)
	if !ok {
		return
	}

	var req CreateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	e, err := h.mapCreateDTO(c.Request.Context(), st, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := h.service.Create(c.Request.Context(), e); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.mapToDTO(e))
}

// Update handles PUT /{records}/:id.
func (h *RecordHandler[T, CreateDTO, UpdateDTO, D]) Update(c *gin.Context) {
	ctx := c.Request.Context()
	st, ok := h.Store(c)
	if !ok {
		return
	}
	recordID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req UpdateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(ctx, st.ID, recordID)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated := h.mapUpdateDTO(req, existing)
	if err := h.service.Update(ctx, updated); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, h.mapToDTO(updated))
}
