package models

// Review is an anonymous public submission about one listing. It enters the
// moderation queue as pending and is either approved or hard-deleted; only
// approved reviews are publicly visible or counted toward the aggregate.
type Review struct {
	BaseModel
	ListingID        string       `gorm:"type:uuid;not null;index" json:"listing_id"`
	Rating           int          `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	ReviewerName     string       `gorm:"not null" json:"reviewer_name"`
	ReviewerIndustry string       `gorm:"not null" json:"reviewer_industry"`
	Title            string       `gorm:"not null" json:"title"`
	Body             string       `gorm:"not null" json:"body"`
	Status           ReviewStatus `gorm:"default:'pending';index" json:"status"`

	// Relations
	Listing *Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}
