package listview

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// minEllipsisButtons is the smallest window that can show the first page,
// two ellipses, the current page and the last page.
const minEllipsisButtons = 5

// Label is one page button: a page number or an ellipsis marker.
type Label struct {
	Page     int
	Ellipsis bool
}

// PageLabel returns a numbered label.
func PageLabel(n int) Label { return Label{Page: n} }

// EllipsisLabel returns the gap marker.
func EllipsisLabel() Label { return Label{Ellipsis: true} }

func (l Label) String() string {
	if l.Ellipsis {
		return "…"
	}
	return strconv.Itoa(l.Page)
}

// MarshalJSON encodes a page as a number and a gap as "ellipsis".
func (l Label) MarshalJSON() ([]byte, error) {
	if l.Ellipsis {
		return []byte(`"ellipsis"`), nil
	}
	return strconv.AppendInt(nil, int64(l.Page), 10), nil
}

// UnmarshalJSON accepts a number or the string "ellipsis".
func (l *Label) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "ellipsis" {
			return fmt.Errorf("listview: unknown page label %q", s)
		}
		*l = EllipsisLabel()
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("listview: page label: %w", err)
	}
	*l = PageLabel(n)
	return nil
}

// Window is the page-button strip of a list view.
type Window struct {
	Labels  []Label `json:"labels"`
	Current int     `json:"current"`
	HasPrev bool    `json:"hasPrev"`
	HasNext bool    `json:"hasNext"`

	// Needed is false when there is a single page and nothing should be rendered.
	Needed bool `json:"needed"`
}

// ComputeWindow lays out page buttons for currentPage out of totalPages,
// using at most maxVisible labels (ellipses included). currentPage is clamped
// into [1, totalPages].
//
// When pages must be collapsed, the first and last page are always shown and
// the label count equals maxVisible (raised to 5 if smaller). Near the start
// the leading pages are listed, near the end the trailing ones, otherwise the
// current page sits between two ellipses. With an even maxVisible the extra
// middle slot goes after the current page.
func ComputeWindow(currentPage, totalPages, maxVisible int) Window {
	totalPages = max(totalPages, 1)
	current := clampPage(currentPage, totalPages)
	w := Window{
		Current: current,
		HasPrev: current > 1,
		HasNext: current < totalPages,
	}
	if totalPages <= 1 {
		return w
	}
	w.Needed = true

	if totalPages <= maxVisible {
		w.Labels = appendPages(nil, 1, totalPages)
		return w
	}
	maxVisible = max(maxVisible, minEllipsisButtons)
	if totalPages <= maxVisible {
		w.Labels = appendPages(nil, 1, totalPages)
		return w
	}

	head := (maxVisible + 1) / 2
	tail := maxVisible / 2
	labels := make([]Label, 0, maxVisible)

	switch {
	case current <= head:
		last := maxVisible - 2
		labels = appendPages(labels, 1, last)
		if last < totalPages-1 {
			labels = append(labels, EllipsisLabel())
		}
		labels = append(labels, PageLabel(totalPages))

	case current >= totalPages-tail:
		first := totalPages - maxVisible + 3
		labels = append(labels, PageLabel(1))
		if first > 2 {
			labels = append(labels, EllipsisLabel())
		}
		labels = appendPages(labels, first, totalPages)

	default:
		slots := maxVisible - 4
		before := (slots - 1) / 2
		after := slots - 1 - before
		labels = append(labels, PageLabel(1), EllipsisLabel())
		labels = appendPages(labels, current-before, current+after)
		labels = append(labels, EllipsisLabel(), PageLabel(totalPages))
	}

	w.Labels = labels
	return w
}

func appendPages(labels []Label, from, to int) []Label {
	for p := from; p <= to; p++ {
		labels = append(labels, PageLabel(p))
	}
	return labels
}

func clampPage(page, totalPages int) int {
	return min(max(page, 1), max(totalPages, 1))
}
