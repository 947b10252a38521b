package models

type PartnerTier string
type ReviewStatus string
type ClaimStatus string
type UserRole string

const (
	// Tier labels are stored capitalized, matching what the public site renders.
	TierGold     PartnerTier = "Gold"
	TierVerified PartnerTier = "Verified"
	TierMember   PartnerTier = "Member"

	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	// Rejection is hard deletion, not a status: a rejected review must never
	// reappear on reload, so there is intentionally no "rejected" value.

	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusReviewed ClaimStatus = "reviewed"

	UserRoleAdmin UserRole = "admin"
)
