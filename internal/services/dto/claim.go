package dto

import "time"

// CreateClaimRequest is the ownership-claim submission. Message is
// optional. A known status value is accepted but ignored (always pending);
// an unknown one is rejected.
type CreateClaimRequest struct {
	ContactName string `json:"contact_name" validate:"required"`
	WorkEmail   string `json:"work_email" validate:"required,email"`
	Message     string `json:"message" validate:"omitempty,max=2000"`
	Status      string `json:"status" validate:"omitempty,is-claim-status"`
}

type ClaimResponse struct {
	ID          string    `json:"id"`
	ListingID   string    `json:"listing_id"`
	ContactName string    `json:"contact_name"`
	WorkEmail   string    `json:"work_email"`
	Message     string    `json:"message,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	ListingName string    `json:"listing_name,omitempty"`
	ListingSlug string    `json:"listing_slug,omitempty"`
}

type ClaimQueueResponse struct {
	Claims []ClaimResponse `json:"claims"`
	Total  int             `json:"total"`
}

// ClaimReplyResponse carries a prefilled mailto: URL for the operator's
// mail client. Composing the draft is a convenience, not a delivery
// guarantee.
type ClaimReplyResponse struct {
	Mailto string `json:"mailto"`
}
