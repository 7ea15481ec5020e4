package listview

import (
	"slices"
	"strings"
)

// Direction is the sort order.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// ParseDirection accepts "asc", "ascending", "desc" and "descending".
// Anything else is ascending.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "desc", "descending":
		return Descending
	default:
		return Ascending
	}
}

// SortSpec is the single active sort key.
type SortSpec struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// ParseSort reads the "field" / "-field" form. An empty string yields nil.
func ParseSort(s string) *SortSpec {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == "-" || s == "+":
		return nil
	case strings.HasPrefix(s, "-"):
		return &SortSpec{Field: s[1:], Direction: Descending}
	default:
		return &SortSpec{Field: strings.TrimPrefix(s, "+"), Direction: Ascending}
	}
}

// String renders the "field" / "-field" form.
func (s *SortSpec) String() string {
	if s == nil {
		return ""
	}
	if s.Direction == Descending {
		return "-" + s.Field
	}
	return s.Field
}

// Toggle returns the spec after the user selects field: the active field
// flips direction, any other field starts ascending. current is not modified.
func Toggle(current *SortSpec, field string) *SortSpec {
	if current != nil && current.Field == field {
		next := Descending
		if current.Direction == Descending {
			next = Ascending
		}
		return &SortSpec{Field: field, Direction: next}
	}
	return &SortSpec{Field: field, Direction: Ascending}
}

// Sort returns a stably sorted copy of records. A nil spec or a field the
// schema does not know leaves the original order.
func Sort[T any](schema *Schema[T], records []T, spec *SortSpec) []T {
	out := slices.Clone(records)
	if spec == nil || len(out) < 2 {
		return out
	}
	f, ok := schema.Field(spec.Field)
	if !ok {
		return out
	}

	// Extract keys once; text keys are folded up front.
	keys := make([]Value, len(records))
	for i, r := range records {
		v := f.Get(r)
		if v.Kind == KindText || v.Kind == KindEnum {
			v.Str = fold(v.Str)
		}
		keys[i] = v
	}

	sign := 1
	if spec.Direction == Descending {
		sign = -1
	}
	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return sign * compareKeys(keys[a], keys[b])
	})

	for i, idx := range order {
		out[i] = records[idx]
	}
	return out
}

// compareKeys is compareValues for keys that are already folded.
func compareKeys(a, b Value) int {
	if !a.Null && !b.Null && (a.Kind == KindText || a.Kind == KindEnum) {
		return strings.Compare(a.Str, b.Str)
	}
	return compareValues(a, b)
}
