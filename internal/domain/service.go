package domain

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/core/entity"
	"storeadmin/internal/core/id"
	"storeadmin/internal/listview"
	"storeadmin/pkg/logger"
)

var tracer = otel.Tracer("storeadmin/domain")

// DefaultStoreCacheSize is the number of stores whose pipelines a service keeps loaded.
const DefaultStoreCacheSize = 256

// CatalogService provides create/read/update and list views for one record type.
//
// Each store's base collection is loaded once and kept in a memoized list
// pipeline. Writes through the service invalidate that store's pipeline, so
// the next list call reloads it. Pipelines of the least recently listed
// stores are evicted once StoreCacheSize stores are loaded.
type CatalogService[T entity.Entity] struct {
	repo       Repository[T]
	schema     *listview.Schema[T]
	hooks      *HookRegistry[T]
	entityName string
	cacheSize  int

	// mu orders loads against invalidations; views is safe on its own.
	mu    sync.Mutex
	views *lru.Cache[id.ID, *listview.Pipeline[T]]
	gen   uint64
}

// CatalogServiceConfig configures the catalog service.
type CatalogServiceConfig[T entity.Entity] struct {
	Repo       Repository[T]
	Schema     *listview.Schema[T]
	EntityName string

	// ViewCacheSize is the number of memoized views per store.
	ViewCacheSize int

	// StoreCacheSize bounds the number of loaded store pipelines; <= 0 uses DefaultStoreCacheSize.
	StoreCacheSize int
}

// NewCatalogService creates a new catalog service.
func NewCatalogService[T entity.Entity](cfg CatalogServiceConfig[T]) *CatalogService[T] {
	size := cfg.StoreCacheSize
	if size <= 0 {
		size = DefaultStoreCacheSize
	}
	views, err := lru.New[id.ID, *listview.Pipeline[T]](size)
	if err != nil {
		panic(err)
	}
	return &CatalogService[T]{
		repo:       cfg.Repo,
		schema:     cfg.Schema,
		hooks:      NewHookRegistry[T](),
		entityName: cfg.EntityName,
		cacheSize:  cfg.ViewCacheSize,
		views:      views,
	}
}

// Hooks returns the hook registry for external registration.
func (s *CatalogService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

// Schema returns the list schema of the record type.
func (s *CatalogService[T]) Schema() *listview.Schema[T] {
	return s.schema
}

// EntityName returns the name used in errors and spans.
func (s *CatalogService[T]) EntityName() string {
	return s.entityName
}

// Create validates and stores a new record.
func (s *CatalogService[T]) Create(ctx context.Context, e T) error {
	ctx, span := tracer.Start(ctx, s.entityName+".create")
	defer span.End()

	if err := e.Validate(ctx); err != nil {
		return normalizeValidationErr(err)
	}
	if err := s.hooks.Run(ctx, BeforeCreate, e); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return s.fail(span, err)
	}
	s.Invalidate(e.GetStoreID())

	if err := s.hooks.Run(ctx, AfterCreate, e); err != nil {
		logger.Warn(ctx, "after-create hook failed", "entity", s.entityName, "error", err)
	}
	return nil
}

// GetByID returns a record of the store. Records of other stores are reported as not found.
func (s *CatalogService[T]) GetByID(ctx context.Context, storeID, recordID id.ID) (T, error) {
	e, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		var zero T
		return zero, s.normalizeGetErr(err, recordID)
	}
	if e.GetStoreID() != storeID {
		var zero T
		return zero, apperror.NewNotFound(s.entityName, recordID.String())
	}
	return e, nil
}

// Update validates and writes a record with optimistic locking.
func (s *CatalogService[T]) Update(ctx context.Context, e T) error {
	ctx, span := tracer.Start(ctx, s.entityName+".update")
	defer span.End()

	if err := e.Validate(ctx); err != nil {
		return normalizeValidationErr(err)
	}
	if err := s.hooks.Run(ctx, BeforeUpdate, e); err != nil {
		return err
	}
	e.Touch()
	if err := s.repo.Update(ctx, e); err != nil {
		return s.fail(span, err)
	}
	s.Invalidate(e.GetStoreID())

	if err := s.hooks.Run(ctx, AfterUpdate, e); err != nil {
		logger.Warn(ctx, "after-update hook failed", "entity", s.entityName, "error", err)
	}
	return nil
}

// List runs the list view pipeline over the store's records.
func (s *CatalogService[T]) List(ctx context.Context, storeID id.ID, q listview.Query) (listview.Result[T], error) {
	ctx, span := tracer.Start(ctx, s.entityName+".list",
		trace.WithAttributes(attribute.String("store.id", storeID.String())))
	defer span.End()

	p, err := s.pipeline(ctx, storeID)
	if err != nil {
		return listview.Result[T]{}, s.fail(span, err)
	}
	res := p.View(q)

	span.SetAttributes(
		attribute.Int("list.total", res.TotalCount),
		attribute.Int("list.page", res.Page),
		attribute.Int("list.criteria", len(q.Criteria)),
	)
	return res, nil
}

// Reload replaces the store's base collection with a fresh copy from storage.
func (s *CatalogService[T]) Reload(ctx context.Context, storeID id.ID) error {
	records, err := s.repo.ListByStore(ctx, storeID)
	if err != nil {
		return normalizeStorageErr(err)
	}

	if p, ok := s.views.Get(storeID); ok {
		p.SetRecords(records)
		return nil
	}
	_, err = s.pipeline(ctx, storeID)
	return err
}

// Records returns the store's full base collection in creation order.
// The records are shared with the list pipeline and must not be modified.
func (s *CatalogService[T]) Records(ctx context.Context, storeID id.ID) ([]T, error) {
	p, err := s.pipeline(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return p.Records(), nil
}

// Invalidate drops the store's memoized views.
func (s *CatalogService[T]) Invalidate(storeID id.ID) {
	s.mu.Lock()
	s.views.Remove(storeID)
	s.gen++
	s.mu.Unlock()
}

// LoadedStores returns the number of stores with a loaded pipeline.
func (s *CatalogService[T]) LoadedStores() int {
	return s.views.Len()
}

// pipeline returns the store's pipeline, loading records on first use. A
// load that raced with any write is used once but not kept.
func (s *CatalogService[T]) pipeline(ctx context.Context, storeID id.ID) (*listview.Pipeline[T], error) {
	if p, ok := s.views.Get(storeID); ok {
		return p, nil
	}
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	records, err := s.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, normalizeStorageErr(err)
	}
	p := listview.NewPipeline(s.schema, records, s.cacheSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return p, nil
	}
	if existing, ok := s.views.Get(storeID); ok {
		return existing, nil
	}
	s.views.Add(storeID, p)
	logger.Debug(ctx, "list pipeline loaded", "entity", s.entityName, "records", len(records))
	return p, nil
}

func (s *CatalogService[T]) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return normalizeStorageErr(err)
}

func (s *CatalogService[T]) normalizeGetErr(err error, recordID id.ID) error {
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, recordID.String())
	}
	return normalizeStorageErr(err)
}

func normalizeValidationErr(err error) error {
	if _, ok := apperror.AsAppError(err); ok {
		return err
	}
	return apperror.NewValidation(err.Error())
}

func normalizeStorageErr(err error) error {
	if _, ok := apperror.AsAppError(err); ok {
		return err
	}
	return apperror.NewInternal(err)
}
