package dto

import "time"

// CreateReviewRequest is the anonymous public submission. A known status
// value is accepted but ignored (the public path always writes pending);
// an unknown value is rejected outright.
type CreateReviewRequest struct {
	Rating           int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewerName     string `json:"reviewer_name" validate:"required"`
	ReviewerIndustry string `json:"reviewer_industry" validate:"required"`
	Title            string `json:"title" validate:"required"`
	Body             string `json:"body" validate:"required,max=2000"`
	Status           string `json:"status" validate:"omitempty,is-review-status"`
}

type ReviewResponse struct {
	ID               string    `json:"id"`
	ListingID        string    `json:"listing_id"`
	Rating           int       `json:"rating"`
	ReviewerName     string    `json:"reviewer_name"`
	ReviewerIndustry string    `json:"reviewer_industry"`
	Title            string    `json:"title"`
	Body             string    `json:"body"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// PendingReviewResponse is a queue entry; the listing name gives the
// operator context without another lookup.
type PendingReviewResponse struct {
	ReviewResponse
	ListingName string `json:"listing_name"`
	ListingSlug string `json:"listing_slug"`
}

type ReviewQueueResponse struct {
	Reviews []PendingReviewResponse `json:"reviews"`
	Total   int                     `json:"total"`
}
