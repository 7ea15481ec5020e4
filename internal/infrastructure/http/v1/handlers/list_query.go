package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/listview"
)

// Reserved list query parameters. Any other parameter named after a schema
// field becomes a criterion on that field.
const (
	paramSearch     = "q"
	paramFilter     = "filter"
	paramSort       = "sort"
	paramToggle     = "toggle"
	paramPage       = "page"
	paramPageSize   = "pageSize"
	paramMaxVisible = "maxVisible"
	paramRefresh    = "refresh"

	suffixFrom = "From"
	suffixTo   = "To"
)

// ListDefaults are the paging defaults applied when a request omits them.
type ListDefaults struct {
	PageSize   int
	MaxVisible int
}

func (d ListDefaults) withFallbacks() ListDefaults {
	if d.PageSize <= 0 {
		d.PageSize = listview.DefaultPageSize
	}
	if d.MaxVisible <= 0 {
		d.MaxVisible = listview.DefaultMaxVisible
	}
	return d
}

// ParseListQuery reads the list query parameters of a request:
//
//	q=term                  text search over searchFields
//	filter=[{...}]          JSON array of criteria
//	<enum field>=value      select shortcut
//	<text field>=term       case-insensitive substring match on that field
//	<field>From / <field>To range shortcut on number and date fields
//	sort=field | -field     sort key; toggle=field flips it and returns to page 1
//	page, pageSize, maxVisible
//
// Malformed paging numbers fall back to defaults; only an undecodable filter is an error.
func ParseListQuery[T any](c *gin.Context, schema *listview.Schema[T], searchFields []string, defaults ListDefaults) (listview.Query, error) {
	defaults = defaults.withFallbacks()
	q := listview.Query{
		Page:       parseIntQuery(c, paramPage, 1),
		PageSize:   parseIntQuery(c, paramPageSize, defaults.PageSize),
		MaxVisible: parseIntQuery(c, paramMaxVisible, defaults.MaxVisible),
		Sort:       listview.ParseSort(c.Query(paramSort)),
	}

	if term := strings.TrimSpace(c.Query(paramSearch)); term != "" {
		q.Criteria = append(q.Criteria, listview.TextMatch(term, searchFields...))
	}

	if raw := c.Query(paramFilter); raw != "" {
		var criteria []listview.Criterion
		if err := json.Unmarshal([]byte(raw), &criteria); err != nil {
			return listview.Query{}, apperror.NewInvalidInput(paramFilter, "filter must be a JSON array of criteria").
				WithCause(err)
		}
		q.Criteria = append(q.Criteria, criteria...)
	}

	for _, name := range schema.Names() {
		field, _ := schema.Field(name)
		switch field.Kind {
		case listview.KindEnum:
			if v, ok := c.GetQuery(name); ok {
				q.Criteria = append(q.Criteria, listview.SelectOne(name, v))
			}
		case listview.KindText:
			if v := strings.TrimSpace(c.Query(name)); v != "" {
				q.Criteria = append(q.Criteria, listview.TextMatch(v, name))
			}
		case listview.KindNumber, listview.KindDate:
			lo, hi := c.Query(name+suffixFrom), c.Query(name+suffixTo)
			if lo == "" && hi == "" {
				continue
			}
			if field.Kind == listview.KindNumber {
				q.Criteria = append(q.Criteria, listview.NumberRange(name, lo, hi))
			} else {
				q.Criteria = append(q.Criteria, listview.DateRange(name, lo, hi))
			}
		}
	}

	if field := c.Query(paramToggle); field != "" {
		q.Sort = listview.Toggle(q.Sort, field)
		q.Page = 1
	}
	return q, nil
}

func wantsRefresh(c *gin.Context) bool {
	v := strings.ToLower(c.Query(paramRefresh))
	return v == "1" || v == "true"
}
