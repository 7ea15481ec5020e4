package listview

import (
	"encoding/json"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of memoized views a Pipeline keeps.
const DefaultCacheSize = 64

// Stats reports memo cache effectiveness.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Pipeline holds a base record collection and memoizes its views. A view is
// recomputed only when the records, criteria, sort or paging change.
// Records are replaced wholesale with SetRecords, never patched.
// Pipeline is safe for concurrent use; returned results must not be modified.
type Pipeline[T any] struct {
	schema *Schema[T]

	mu       sync.RWMutex
	records  []T
	revision uint64

	cache  *lru.Cache[string, Result[T]]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewPipeline creates a pipeline over records. cacheSize <= 0 uses DefaultCacheSize.
func NewPipeline[T any](schema *Schema[T], records []T, cacheSize int) *Pipeline[T] {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, Result[T]](cacheSize)
	if err != nil {
		// lru.New only fails for a non-positive size.
		panic(err)
	}
	return &Pipeline[T]{
		schema:  schema,
		records: slices.Clone(records),
		cache:   cache,
	}
}

// SetRecords replaces the base collection and drops memoized views.
func (p *Pipeline[T]) SetRecords(records []T) {
	p.mu.Lock()
	p.records = slices.Clone(records)
	p.revision++
	p.mu.Unlock()
	p.cache.Purge()
}

// Records returns a copy of the base collection.
func (p *Pipeline[T]) Records() []T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.records)
}

// Len returns the size of the base collection.
func (p *Pipeline[T]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.records)
}

// View returns the memoized view for q, computing it on a miss.
func (p *Pipeline[T]) View(q Query) Result[T] {
	q = q.Normalize()

	p.mu.RLock()
	records, revision := p.records, p.revision
	p.mu.RUnlock()

	key := cacheKey(revision, q)
	if res, ok := p.cache.Get(key); ok {
		p.hits.Add(1)
		return res
	}
	p.misses.Add(1)

	res := View(p.schema, records, q)
	p.cache.Add(key, res)
	return res
}

// Stats returns cache hit and miss counters.
func (p *Pipeline[T]) Stats() Stats {
	return Stats{Hits: p.hits.Load(), Misses: p.misses.Load()}
}

func cacheKey(revision uint64, q Query) string {
	// Query holds only strings, ints and slices of them, so Marshal cannot fail.
	b, _ := json.Marshal(q)
	return strconv.FormatUint(revision, 10) + ":" + string(b)
}
