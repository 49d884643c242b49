package entity

import "vidtube/pkg/apperr"

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// PageRequest is a validated, 1-indexed page selector.
type PageRequest struct {
	Page  int
	Limit int
}

func NewPageRequest(page, limit int) (PageRequest, error) {
	if page < 1 {
		return PageRequest{}, apperr.Validation("Page must be a positive integer")
	}
	if limit < 1 {
		return PageRequest{}, apperr.Validation("Limit must be a positive integer")
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return PageRequest{Page: page, Limit: limit}, nil
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Page[T any] struct {
	Docs      []T   `json:"docs"`
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	TotalDocs int64 `json:"totalDocs"`
	HasMore   bool  `json:"hasMore"`
}

// NewPage never returns nil Docs so an empty page renders as [].
func NewPage[T any](docs []T, req PageRequest, total int64) Page[T] {
	if docs == nil {
		docs = []T{}
	}
	return Page[T]{
		Docs:      docs,
		Page:      req.Page,
		Limit:     req.Limit,
		TotalDocs: total,
		HasMore:   int64(req.Page)*int64(req.Limit) < total,
	}
}
