// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"time"

	"storeadmin/internal/core/entity"
	"storeadmin/internal/listview"
)

// --- List Response ---

// PaginationResponse is the page-button strip the console renders under a list.
type PaginationResponse struct {
	Labels  []listview.Label `json:"labels"`
	HasPrev bool             `json:"hasPrev"`
	HasNext bool             `json:"hasNext"`
	Needed  bool             `json:"needed"`
}

// ListResponse is one page of a list view.
type ListResponse[D any] struct {
	Items      []D                `json:"items"`
	TotalCount int                `json:"totalCount"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
	Sort       string             `json:"sort,omitempty"`
	Pagination PaginationResponse `json:"pagination"`
}

// NewListResponse maps a list view result to its response.
func NewListResponse[T, D any](res listview.Result[T], mapFn func(T) D) ListResponse[D] {
	items := make([]D, len(res.Records))
	for i, r := range res.Records {
		items[i] = mapFn(r)
	}
	labels := res.Window.Labels
	if labels == nil {
		labels = []listview.Label{}
	}
	return ListResponse[D]{
		Items:      items,
		TotalCount: res.TotalCount,
		Page:       res.Page,
		PageSize:   res.PageSize,
		TotalPages: res.TotalPages,
		Sort:       res.Sort.String(),
		Pagination: PaginationResponse{
			Labels:  labels,
			HasPrev: res.Window.HasPrev,
			HasNext: res.Window.HasNext,
			Needed:  res.Window.Needed,
		},
	}
}

// --- Common Fields ---

// BaseResponse holds the fields every record response carries.
type BaseResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func fromBase(b entity.Base) BaseResponse {
	return BaseResponse{
		ID:        b.ID.String(),
		StoreID:   b.StoreID.String(),
		Version:   b.Version,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// IDResponse contains only ID.
type IDResponse struct {
	ID string `json:"id"`
}

// ErrorResponse documents the error body written by the error middleware.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
