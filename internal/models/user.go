package models

// User is an operator account for the moderation surface. Visitors never
// have accounts; reviews and claims are anonymous submissions.
type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"default:'admin'" json:"role"`
}
