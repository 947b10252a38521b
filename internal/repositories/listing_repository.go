package repositories

import (
	"errors"

	"bcpartners_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrSlugTaken       = errors.New("slug already in use")
)

type ListingRepository interface {
	FindAll(db *gorm.DB) ([]models.Listing, error)
	FindBySlug(db *gorm.DB, slug string) (*models.Listing, error)
	FindByID(db *gorm.DB, id string) (*models.Listing, error)
	UpdateFields(db *gorm.DB, id string, fields map[string]interface{}) error
	FindSlugsForSitemap(db *gorm.DB) ([]models.Listing, error)
}

type ListingRepositoryImpl struct{}

func NewListingRepository() ListingRepository {
	return &ListingRepositoryImpl{}
}

// FindAll returns every listing with its approved reviews preloaded,
// ordered by ranking priority then name, the default directory order.
func (r *ListingRepositoryImpl) FindAll(db *gorm.DB) ([]models.Listing, error) {
	var listings []models.Listing
	err := db.
		Preload("Reviews", "status = ?", models.ReviewStatusApproved).
		Order("ranking_priority DESC").
		Order("name ASC").
		Find(&listings).Error
	return listings, err
}

// FindBySlug returns one listing. Reviews are not preloaded; the detail
// view fetches its approved set through the review repository.
func (r *ListingRepositoryImpl) FindBySlug(db *gorm.DB, slug string) (*models.Listing, error) {
	var listing models.Listing
	err := db.First(&listing, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Listing, error) {
	var listing models.Listing
	err := db.First(&listing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// UpdateFields applies a partial update to one listing by id.
func (r *ListingRepositoryImpl) UpdateFields(db *gorm.DB, id string, fields map[string]interface{}) error {
	result := db.Model(&models.Listing{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

// FindSlugsForSitemap loads only what the sitemap needs.
func (r *ListingRepositoryImpl) FindSlugsForSitemap(db *gorm.DB) ([]models.Listing, error) {
	var listings []models.Listing
	err := db.
		Select("slug", "updated_at").
		Order("updated_at DESC").
		Find(&listings).Error
	return listings, err
}
