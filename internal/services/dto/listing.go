package dto

import (
	"time"

	"bcpartners_backend/internal/directory"
)

// ListingCardResponse is one directory card. Logo and website are already
// gated by tier policy: Member cards carry empty strings even when the
// underlying columns are populated.
type ListingCardResponse struct {
	ID          string          `json:"id"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Tier        string          `json:"tier"`
	Badge       directory.Badge `json:"badge"`
	Services    []string        `json:"services"`
	LogoURL     string          `json:"logo_url,omitempty"`
	WebsiteURL  string          `json:"website_url,omitempty"`
	RatingAvg   float64         `json:"rating_avg"`
	RatingText  string          `json:"rating_text"`
	ReviewCount int             `json:"review_count"`
}

// DirectoryResponse is the home view payload: filtered cards plus the
// derived tag set for the filter bar.
type DirectoryResponse struct {
	Listings []ListingCardResponse `json:"listings"`
	Total    int                   `json:"total"`
	Tags     []string              `json:"tags"`
	Query    string                `json:"query,omitempty"`
	Tag      string                `json:"tag,omitempty"`
}

// ListingDetailResponse is the partner detail view payload.
type ListingDetailResponse struct {
	ListingCardResponse
	Reviews   []ReviewResponse `json:"reviews"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// UpdateListingRequest is the moderation surface's inline edit. Only the
// provided fields change; ranking priority is never accepted directly, it
// is rewritten from the tier.
type UpdateListingRequest struct {
	Name        *string   `json:"name" validate:"omitempty,min=1"`
	Description *string   `json:"description"`
	Type        *string   `json:"type"`
	Tier        *string   `json:"tier" validate:"omitempty,is-partner-tier"`
	Services    *[]string `json:"services"`
	LogoURL     *string   `json:"logo_url" validate:"omitempty,url"`
	WebsiteURL  *string   `json:"website_url" validate:"omitempty,url"`
}
