package listview

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CriterionKind selects how a criterion compares field values.
type CriterionKind string

const (
	CriterionText        CriterionKind = "text"
	CriterionNumberRange CriterionKind = "number-range"
	CriterionDateRange   CriterionKind = "date-range"
	CriterionSelect      CriterionKind = "select"
)

// selectAll is the select value that disables a select criterion.
const selectAll = "all"

// Criterion is one user-supplied filter constraint. Bounds and values are kept
// as the raw strings typed into form controls; parsing happens at evaluation.
type Criterion struct {
	Kind CriterionKind `json:"kind"`

	// Fields lists the fields to test. A text criterion matches if any of them
	// matches; the other kinds use the first field only.
	Fields []string `json:"fields"`

	// Value is the search term (text) or the selected option (select).
	Value string `json:"value,omitempty"`

	// Min and Max are inclusive range bounds; empty means unbounded.
	Min string `json:"min,omitempty"`
	Max string `json:"max,omitempty"`
}

// TextMatch builds a case-insensitive substring search over fields.
func TextMatch(term string, fields ...string) Criterion {
	return Criterion{Kind: CriterionText, Fields: fields, Value: term}
}

// NumberRange builds an inclusive numeric range on a field.
func NumberRange(field, lo, hi string) Criterion {
	return Criterion{Kind: CriterionNumberRange, Fields: []string{field}, Min: lo, Max: hi}
}

// DateRange builds an inclusive date range on a field.
// A date-only upper bound covers the whole day.
func DateRange(field, lo, hi string) Criterion {
	return Criterion{Kind: CriterionDateRange, Fields: []string{field}, Min: lo, Max: hi}
}

// SelectOne builds an exact match on an enumerated field.
func SelectOne(field, value string) Criterion {
	return Criterion{Kind: CriterionSelect, Fields: []string{field}, Value: value}
}

type predicate[T any] func(T) bool

// compile turns c into a predicate. The second result is false when the
// criterion is inactive: empty, malformed or naming no known field.
func compile[T any](s *Schema[T], c Criterion) (predicate[T], bool) {
	switch c.Kind {
	case CriterionText:
		return compileText(s, c)
	case CriterionNumberRange:
		return compileNumberRange(s, c)
	case CriterionDateRange:
		return compileDateRange(s, c)
	case CriterionSelect:
		return compileSelect(s, c)
	default:
		return nil, false
	}
}

func compileText[T any](s *Schema[T], c Criterion) (predicate[T], bool) {
	term := strings.TrimSpace(c.Value)
	if term == "" {
		return nil, false
	}
	var fields []Field[T]
	for _, name := range c.Fields {
		if f, ok := s.Field(name); ok {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return nil, false
	}
	needle := fold(term)
	return func(r T) bool {
		for _, f := range fields {
			v := f.Get(r)
			if !v.Null && strings.Contains(fold(v.String()), needle) {
				return true
			}
		}
		return false
	}, true
}

func compileNumberRange[T any](s *Schema[T], c Criterion) (predicate[T], bool) {
	f, ok := rangeField(s, c, KindNumber)
	if !ok {
		return nil, false
	}
	lo, hasMin, ok := parseNumberBound(c.Min)
	if !ok {
		return nil, false
	}
	hi, hasMax, ok := parseNumberBound(c.Max)
	if !ok || (!hasMin && !hasMax) {
		return nil, false
	}
	return func(r T) bool {
		v := f.Get(r)
		if v.Null {
			return false
		}
		if hasMin && v.Num.LessThan(lo) {
			return false
		}
		if hasMax && v.Num.GreaterThan(hi) {
			return false
		}
		return true
	}, true
}

func compileDateRange[T any](s *Schema[T], c Criterion) (predicate[T], bool) {
	f, ok := rangeField(s, c, KindDate)
	if !ok {
		return nil, false
	}
	lo, hasMin, ok := parseDateBound(c.Min, false)
	if !ok {
		return nil, false
	}
	hi, hasMax, ok := parseDateBound(c.Max, true)
	if !ok || (!hasMin && !hasMax) {
		return nil, false
	}
	return func(r T) bool {
		v := f.Get(r)
		if v.Null {
			return false
		}
		if hasMin && v.Time.Before(lo) {
			return false
		}
		if hasMax && v.Time.After(hi) {
			return false
		}
		return true
	}, true
}

func compileSelect[T any](s *Schema[T], c Criterion) (predicate[T], bool) {
	want := strings.TrimSpace(c.Value)
	if want == "" || strings.EqualFold(want, selectAll) || len(c.Fields) == 0 {
		return nil, false
	}
	f, ok := s.Field(c.Fields[0])
	if !ok {
		return nil, false
	}
	return func(r T) bool {
		v := f.Get(r)
		return !v.Null && v.String() == want
	}, true
}

func rangeField[T any](s *Schema[T], c Criterion, kind FieldKind) (Field[T], bool) {
	if len(c.Fields) == 0 {
		return Field[T]{}, false
	}
	f, ok := s.Field(c.Fields[0])
	if !ok || f.Kind != kind {
		return Field[T]{}, false
	}
	return f, true
}

// parseNumberBound returns (value, present, valid).
func parseNumberBound(raw string) (decimal.Decimal, bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, false
	}
	return d, true, true
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// parseDateBound returns (instant, present, valid). Date-only upper bounds
// are moved to the last instant of that day so the day itself is included.
func parseDateBound(raw string, upper bool) (time.Time, bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false, true
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if upper && layout == time.DateOnly {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		return t, true, true
	}
	return time.Time{}, false, false
}
