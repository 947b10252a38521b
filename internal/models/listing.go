package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Listing is a directory entry representing a partner firm.
type Listing struct {
	BaseModel
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Type        string         `json:"type"` // e.g. "ISV", "Reseller"
	Tier        PartnerTier    `gorm:"default:'Member'" json:"tier"`
	Services    datatypes.JSON `json:"services"` // JSON array of service tags
	LogoURL     string         `json:"logo_url"`
	WebsiteURL  string         `json:"website_url"`

	// RankingPriority is derived from Tier (Gold=3, Verified=2, Member=1) and
	// rewritten on every tier change. It stays a stored column so the
	// directory query can order by it, but it is not editable on its own.
	RankingPriority int `gorm:"index" json:"ranking_priority"`

	// Relations
	Reviews []Review `gorm:"foreignKey:ListingID" json:"reviews,omitempty"`
	Claims  []Claim  `gorm:"foreignKey:ListingID" json:"claims,omitempty"`
}

// ServiceList decodes the JSON services column into a string slice.
// An empty or malformed column yields an empty slice, never an error:
// listings with no services simply match no tag filter.
func (l *Listing) ServiceList() []string {
	if len(l.Services) == 0 {
		return nil
	}
	var services []string
	if err := json.Unmarshal(l.Services, &services); err != nil {
		return nil
	}
	return services
}

// SetServiceList encodes tags back into the JSON column.
func (l *Listing) SetServiceList(services []string) error {
	raw, err := json.Marshal(services)
	if err != nil {
		return err
	}
	l.Services = datatypes.JSON(raw)
	return nil
}
