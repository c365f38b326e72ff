package articles

// CreateArticleRequest represents the create request payload.
type CreateArticleRequest struct {
	Title       string `json:"title" example:"Introduction to Go" validate:"required"`
	Description string `json:"description" example:"A detailed guide on how to get started with Go." validate:"required"`
}

// UpdateArticleRequest represents the patch payload. Pointer fields allow
// partial updates: a nil field is left untouched.
type UpdateArticleRequest struct {
	Title       *string `json:"title,omitempty" example:"Updated Go Guide"`
	Description *string `json:"description,omitempty" example:"An updated guide on advanced Go features."`
}

// ListQuery carries the list endpoint's filter parameters. Dates are strict
// ISO-8601 strings with a trailing Z, validated before any query runs.
type ListQuery struct {
	Page      int
	Limit     int
	StartDate string
	EndDate   string
	UserID    int
}

// ListResponse is the paginated list result. Total counts every row matching
// the filter, before pagination.
type ListResponse struct {
	Data  []Article `json:"data"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}
