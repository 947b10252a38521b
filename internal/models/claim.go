package models

// Claim is an ownership-claim request for a listing. Unlike reviews,
// dismissed claims are retained with status=reviewed, never deleted.
// Acting on a claim is purely queue management; granting edit access to the
// claimant happens out-of-band.
type Claim struct {
	BaseModel
	ListingID   string      `gorm:"type:uuid;not null;index" json:"listing_id"`
	ContactName string      `gorm:"not null" json:"contact_name"`
	WorkEmail   string      `gorm:"not null" json:"work_email"`
	Message     string      `json:"message"`
	Status      ClaimStatus `gorm:"default:'pending';index" json:"status"`

	// Relations
	Listing *Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}
