package repositories

import (
	"errors"

	"bcpartners_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrClaimNotFound   = errors.New("claim not found")
	ErrClaimNotPending = errors.New("claim is not pending")
)

type ClaimRepository interface {
	Create(db *gorm.DB, claim *models.Claim) error
	FindByID(db *gorm.DB, id string) (*models.Claim, error)
	FindPending(db *gorm.DB) ([]models.Claim, error)
	FindByStatus(db *gorm.DB, status models.ClaimStatus) ([]models.Claim, error)
	MarkReviewed(db *gorm.DB, id string) error
}

type ClaimRepositoryImpl struct{}

func NewClaimRepository() ClaimRepository {
	return &ClaimRepositoryImpl{}
}

func (r *ClaimRepositoryImpl) Create(db *gorm.DB, claim *models.Claim) error {
	return db.Create(claim).Error
}

func (r *ClaimRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Claim, error) {
	var claim models.Claim
	err := db.Preload("Listing").First(&claim, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}
	return &claim, nil
}

// FindPending is the active claim queue, newest first, fresh per call.
func (r *ClaimRepositoryImpl) FindPending(db *gorm.DB) ([]models.Claim, error) {
	return r.FindByStatus(db, models.ClaimStatusPending)
}

func (r *ClaimRepositoryImpl) FindByStatus(db *gorm.DB, status models.ClaimStatus) ([]models.Claim, error) {
	var claims []models.Claim
	err := db.Preload("Listing").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&claims).Error
	return claims, err
}

// MarkReviewed moves one claim pending -> reviewed. The record is retained
// (soft-hidden from the queue), never deleted; granting edit rights to the
// claimant happens out-of-band.
func (r *ClaimRepositoryImpl) MarkReviewed(db *gorm.DB, id string) error {
	result := db.Model(&models.Claim{}).
		Where("id = ? AND status = ?", id, models.ClaimStatusPending).
		Update("status", models.ClaimStatusReviewed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.Claim{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrClaimNotFound
		}
		return ErrClaimNotPending
	}
	return nil
}
