package models

import "math"

// PaginationParams carries the paging, search and ordering inputs for the
// admin listing.
type PaginationParams struct {
	Page   int    `json:"page" query:"page"  example:"1"`
	Limit  int    `json:"limit" query:"limit" example:"10"`
	Search string `json:"search" query:"search" example:""`
	SortBy string `json:"sortBy" query:"sortBy" example:"createdAt"`
	Order  string `json:"order" query:"order" example:"desc"`
}

// PaginatedResponse is the standard paged envelope.
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

// DefaultPagination returns the admin dashboard defaults: newest first.
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:   1,
		Limit:  10,
		Search: "",
		SortBy: "createdAt",
		Order:  "desc",
	}
}

// TotalPages computes the page count for a result set. An empty set still has
// one (empty) page.
func (p *PaginationParams) TotalPages(total int64) int {
	pages := int(math.Ceil(float64(total) / float64(p.Limit)))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Clamp normalizes Limit and forces Page into [1, TotalPages(total)].
func (p *PaginationParams) Clamp(total int64) {
	if p.Limit < 1 {
		p.Limit = DefaultPagination().Limit
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if pages := p.TotalPages(total); p.Page > pages {
		p.Page = pages
	}
}

// GetSkip returns the number of records before the current page.
func (p *PaginationParams) GetSkip() int {
	return (p.Page - 1) * p.Limit
}

// NewPaginatedResponse builds the envelope for one page of data.
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := params.TotalPages(total)

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}
