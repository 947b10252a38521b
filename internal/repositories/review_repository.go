package repositories

import (
	"errors"

	"bcpartners_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound   = errors.New("review not found")
	ErrReviewNotPending = errors.New("review is not pending")
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	FindPending(db *gorm.DB) ([]models.Review, error)
	FindApprovedByListing(db *gorm.DB, listingID string) ([]models.Review, error)
	ApprovePending(db *gorm.DB, id string) error
	Delete(db *gorm.DB, id string) error
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.Preload("Listing").First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

// FindPending is the active moderation queue: pending reviews, newest first,
// computed fresh on every call.
func (r *ReviewRepositoryImpl) FindPending(db *gorm.DB) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("Listing").
		Where("status = ?", models.ReviewStatusPending).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) FindApprovedByListing(db *gorm.DB, listingID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.
		Where("listing_id = ? AND status = ?", listingID, models.ReviewStatusApproved).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// ApprovePending moves one review pending -> approved with a single
// conditional update keyed by id, so a concurrent operator cannot
// double-apply the transition. Approved is terminal.
func (r *ReviewRepositoryImpl) ApprovePending(db *gorm.DB, id string) error {
	result := db.Model(&models.Review{}).
		Where("id = ? AND status = ?", id, models.ReviewStatusPending).
		Update("status", models.ReviewStatusApproved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.Review{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrReviewNotFound
		}
		return ErrReviewNotPending
	}
	return nil
}

// Delete destroys the record; rejection keeps nothing.
func (r *ReviewRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
