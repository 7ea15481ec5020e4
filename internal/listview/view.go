package listview

const (
	DefaultPageSize   = 10
	MaxPageSize       = 100
	DefaultMaxVisible = 5
)

// Query is everything a list screen feeds into the pipeline.
type Query struct {
	Criteria   []Criterion `json:"criteria,omitempty"`
	Sort       *SortSpec   `json:"sort,omitempty"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	MaxVisible int         `json:"maxVisible"`
}

// Normalize applies defaults and bounds to paging fields.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	q.PageSize = min(q.PageSize, MaxPageSize)
	if q.MaxVisible <= 0 {
		q.MaxVisible = DefaultMaxVisible
	}
	return q
}

// Result is one computed page of a list view.
type Result[T any] struct {
	Records []T

	// TotalCount is the number of records after filtering.
	TotalCount int
	Page       int
	PageSize   int
	TotalPages int

	// Sort is the sort actually applied; nil when none was or the field is unknown.
	Sort   *SortSpec
	Window Window
}

// TotalPages returns ceil(n/pageSize), at least 1.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return max((n+pageSize-1)/pageSize, 1)
}

// View runs filter, sort and paging over base. The requested page is clamped
// to the filtered page count, so a filter that shrinks the result never
// produces an empty page past the end.
func View[T any](schema *Schema[T], base []T, q Query) Result[T] {
	q = q.Normalize()
	if q.Sort != nil && !schema.Has(q.Sort.Field) {
		q.Sort = nil
	}

	filtered := Filter(schema, base, q.Criteria)
	sorted := Sort(schema, filtered, q.Sort)

	total := len(sorted)
	totalPages := TotalPages(total, q.PageSize)
	page := clampPage(q.Page, totalPages)
	start := min((page-1)*q.PageSize, total)
	end := min(start+q.PageSize, total)

	return Result[T]{
		Records:    sorted[start:end],
		TotalCount: total,
		Page:       page,
		PageSize:   q.PageSize,
		TotalPages: totalPages,
		Sort:       q.Sort,
		Window:     ComputeWindow(page, totalPages, q.MaxVisible),
	}
}
