package services

import (
	"bcpartners_backend/internal/models"
	"bcpartners_backend/internal/repositories"
	"bcpartners_backend/internal/services/dto"
	"bcpartners_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	// Public submission
	SubmitReview(db *gorm.DB, listingSlug string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)

	// Moderation queue
	GetPendingReviews(db *gorm.DB) (*dto.ReviewQueueResponse, error)
	ApproveReview(db *gorm.DB, id string) error
	RejectReview(db *gorm.DB, id string) error
}

type reviewService struct {
	reviewRepo  repositories.ReviewRepository
	listingRepo repositories.ListingRepository
	notifier    NotificationService
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	listingRepo repositories.ListingRepository,
	notifier NotificationService,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		listingRepo: listingRepo,
		notifier:    notifier,
	}
}

// SubmitReview accepts an anonymous submission for the listing behind slug.
// The status is forced to pending here, after binding, so nothing the
// client sends can skip the moderation queue.
func (s *reviewService) SubmitReview(db *gorm.DB, listingSlug string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	listing, err := s.listingRepo.FindBySlug(db, listingSlug)
	if err != nil {
		if err == repositories.ErrListingNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	review := &models.Review{
		ListingID:        listing.ID,
		Rating:           req.Rating,
		ReviewerName:     req.ReviewerName,
		ReviewerIndustry: req.ReviewerIndustry,
		Title:            req.Title,
		Body:             req.Body,
		Status:           models.ReviewStatusPending,
	}

	if err := s.reviewRepo.Create(db, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Best-effort; a notification failure never fails the submission.
	go s.notifier.ReviewSubmitted(listing, review)

	resp := buildReviewResponse(review)
	return &resp, nil
}

func (s *reviewService) GetPendingReviews(db *gorm.DB) (*dto.ReviewQueueResponse, error) {
	reviews, err := s.reviewRepo.FindPending(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	entries := make([]dto.PendingReviewResponse, 0, len(reviews))
	for i := range reviews {
		entry := dto.PendingReviewResponse{
			ReviewResponse: buildReviewResponse(&reviews[i]),
		}
		if reviews[i].Listing != nil {
			entry.ListingName = reviews[i].Listing.Name
			entry.ListingSlug = reviews[i].Listing.Slug
		}
		entries = append(entries, entry)
	}

	return &dto.ReviewQueueResponse{
		Reviews: entries,
		Total:   len(entries),
	}, nil
}

// ApproveReview moves one pending review to approved, making it publicly
// visible and eligible for aggregation.
func (s *reviewService) ApproveReview(db *gorm.DB, id string) error {
	err := s.reviewRepo.ApprovePending(db, id)
	switch err {
	case nil:
		return nil
	case repositories.ErrReviewNotFound:
		return apperrors.ErrNotFound(err)
	case repositories.ErrReviewNotPending:
		return apperrors.ErrInvalidStatus("review", "Only pending reviews can be approved")
	default:
		return apperrors.InternalError(err)
	}
}

// RejectReview destroys the record; it must not reappear on reload.
func (s *reviewService) RejectReview(db *gorm.DB, id string) error {
	err := s.reviewRepo.Delete(db, id)
	switch err {
	case nil:
		return nil
	case repositories.ErrReviewNotFound:
		return apperrors.ErrNotFound(err)
	default:
		return apperrors.InternalError(err)
	}
}

func buildReviewResponse(r *models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:               r.ID,
		ListingID:        r.ListingID,
		Rating:           r.Rating,
		ReviewerName:     r.ReviewerName,
		ReviewerIndustry: r.ReviewerIndustry,
		Title:            r.Title,
		Body:             r.Body,
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt,
	}
}
