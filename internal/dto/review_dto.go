package dto

// ListReviewsQuery carries the optional filters of a list request. Empty
// fields mean "no filter".
type ListReviewsQuery struct {
	Location  string `query:"location"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// CreateReviewRequest is the URL-encoded form body of a create request.
type CreateReviewRequest struct {
	Location   string
	ReviewBody string
}

type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Store       string `json:"store"`
	DB          string `json:"db,omitempty"`
	ReviewCount int    `json:"review_count"`
}
