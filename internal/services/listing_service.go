package services

import (
	"bcpartners_backend/internal/directory"
	"bcpartners_backend/internal/models"
	"bcpartners_backend/internal/repositories"
	"bcpartners_backend/internal/services/dto"
	"bcpartners_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ListingService interface {
	// Public directory
	GetDirectory(db *gorm.DB, query, tag string) (*dto.DirectoryResponse, error)
	GetTags(db *gorm.DB) ([]string, error)
	GetBySlug(db *gorm.DB, slug string) (*dto.ListingDetailResponse, error)

	// Moderation surface
	UpdateListing(db *gorm.DB, id string, req *dto.UpdateListingRequest) (*dto.ListingCardResponse, error)

	// Site surface
	GetSitemapEntries(db *gorm.DB) ([]models.Listing, error)
}

type listingService struct {
	listingRepo repositories.ListingRepository
	reviewRepo  repositories.ReviewRepository
}

func NewListingService(listingRepo repositories.ListingRepository, reviewRepo repositories.ReviewRepository) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		reviewRepo:  reviewRepo,
	}
}

// GetDirectory loads the full listing set and narrows it in memory.
// A single linear pass is fine at directory scale; the store only ever
// sees the unconditional read.
func (s *listingService) GetDirectory(db *gorm.DB, query, tag string) (*dto.DirectoryResponse, error) {
	listings, err := s.listingRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Tags are derived from the complete set, not the filtered one, so the
	// filter bar stays stable while the visitor types.
	tags := directory.DeriveTags(listings)

	matched := directory.Filter(listings, query, tag)
	directory.SortListings(matched)

	cards := make([]dto.ListingCardResponse, 0, len(matched))
	for i := range matched {
		cards = append(cards, buildListingCard(&matched[i]))
	}

	return &dto.DirectoryResponse{
		Listings: cards,
		Total:    len(cards),
		Tags:     tags,
		Query:    query,
		Tag:      tag,
	}, nil
}

func (s *listingService) GetTags(db *gorm.DB) ([]string, error) {
	listings, err := s.listingRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return directory.DeriveTags(listings), nil
}

func (s *listingService) GetBySlug(db *gorm.DB, slug string) (*dto.ListingDetailResponse, error) {
	listing, err := s.listingRepo.FindBySlug(db, slug)
	if err != nil {
		if err == repositories.ErrListingNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	// Approved only, newest first. The card aggregate is computed from the
	// same set, so the visible reviews and the average can never disagree.
	approved, err := s.reviewRepo.FindApprovedByListing(db, listing.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	listing.Reviews = approved

	reviews := make([]dto.ReviewResponse, 0, len(approved))
	for i := range approved {
		reviews = append(reviews, buildReviewResponse(&approved[i]))
	}

	return &dto.ListingDetailResponse{
		ListingCardResponse: buildListingCard(listing),
		Reviews:             reviews,
		CreatedAt:           listing.CreatedAt,
		UpdatedAt:           listing.UpdatedAt,
	}, nil
}

// UpdateListing applies the moderation surface's inline edit. A tier change
// rewrites the ranking priority in the same update so the two columns can
// never drift apart.
func (s *listingService) UpdateListing(db *gorm.DB, id string, req *dto.UpdateListingRequest) (*dto.ListingCardResponse, error) {
	fields := map[string]interface{}{}

	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.LogoURL != nil {
		fields["logo_url"] = *req.LogoURL
	}
	if req.WebsiteURL != nil {
		fields["website_url"] = *req.WebsiteURL
	}
	if req.Tier != nil {
		tier := models.PartnerTier(*req.Tier)
		fields["tier"] = tier
		fields["ranking_priority"] = directory.TierWeight(tier)
	}
	if req.Services != nil {
		var scratch models.Listing
		if err := scratch.SetServiceList(*req.Services); err != nil {
			return nil, apperrors.NewBadRequestError("Invalid services list")
		}
		fields["services"] = scratch.Services
	}

	if len(fields) == 0 {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}

	if err := s.listingRepo.UpdateFields(db, id, fields); err != nil {
		if err == repositories.ErrListingNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.listingRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	card := buildListingCard(updated)
	return &card, nil
}

func (s *listingService) GetSitemapEntries(db *gorm.DB) ([]models.Listing, error) {
	listings, err := s.listingRepo.FindSlugsForSitemap(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return listings, nil
}

// buildListingCard projects a model onto the public card shape, applying
// the tier policy gates.
func buildListingCard(l *models.Listing) dto.ListingCardResponse {
	avg, count := directory.AverageRating(l.Reviews)

	card := dto.ListingCardResponse{
		ID:          l.ID,
		Slug:        l.Slug,
		Name:        l.Name,
		Description: l.Description,
		Type:        l.Type,
		Tier:        string(l.Tier),
		Badge:       directory.BadgeFor(l.Tier),
		Services:    l.ServiceList(),
		RatingAvg:   avg,
		RatingText:  directory.FormatRating(avg),
		ReviewCount: count,
	}

	if directory.ShowLogo(l.Tier) {
		card.LogoURL = l.LogoURL
	}
	if directory.ShowWebsite(l.Tier) {
		card.WebsiteURL = l.WebsiteURL
	}
	return card
}
