package services

import (
	"fmt"
	"net/url"
	"strings"

	"bcpartners_backend/internal/models"
	"bcpartners_backend/internal/repositories"
	"bcpartners_backend/internal/services/dto"
	"bcpartners_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ClaimService interface {
	// Public submission
	SubmitClaim(db *gorm.DB, listingSlug string, req *dto.CreateClaimRequest) (*dto.ClaimResponse, error)

	// Moderation queue
	GetPendingClaims(db *gorm.DB) (*dto.ClaimQueueResponse, error)
	MarkReviewed(db *gorm.DB, id string) error
	BuildReply(db *gorm.DB, id string) (*dto.ClaimReplyResponse, error)
}

type claimService struct {
	claimRepo   repositories.ClaimRepository
	listingRepo repositories.ListingRepository
	notifier    NotificationService
}

func NewClaimService(
	claimRepo repositories.ClaimRepository,
	listingRepo repositories.ListingRepository,
	notifier NotificationService,
) ClaimService {
	return &claimService{
		claimRepo:   claimRepo,
		listingRepo: listingRepo,
		notifier:    notifier,
	}
}

// SubmitClaim records an ownership claim against the listing behind slug.
// Status is forced to pending regardless of what the client sent.
func (s *claimService) SubmitClaim(db *gorm.DB, listingSlug string, req *dto.CreateClaimRequest) (*dto.ClaimResponse, error) {
	listing, err := s.listingRepo.FindBySlug(db, listingSlug)
	if err != nil {
		if err == repositories.ErrListingNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	claim := &models.Claim{
		ListingID:   listing.ID,
		ContactName: req.ContactName,
		WorkEmail:   req.WorkEmail,
		Message:     req.Message,
		Status:      models.ClaimStatusPending,
	}

	if err := s.claimRepo.Create(db, claim); err != nil {
		return nil, apperrors.InternalError(err)
	}

	go s.notifier.ClaimSubmitted(listing, claim)

	resp := buildClaimResponse(claim)
	return &resp, nil
}

func (s *claimService) GetPendingClaims(db *gorm.DB) (*dto.ClaimQueueResponse, error) {
	claims, err := s.claimRepo.FindPending(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	entries := make([]dto.ClaimResponse, 0, len(claims))
	for i := range claims {
		entries = append(entries, buildClaimResponse(&claims[i]))
	}

	return &dto.ClaimQueueResponse{
		Claims: entries,
		Total:  len(entries),
	}, nil
}

// MarkReviewed dismisses a claim from the queue. The record stays in the
// store with status=reviewed.
func (s *claimService) MarkReviewed(db *gorm.DB, id string) error {
	err := s.claimRepo.MarkReviewed(db, id)
	switch err {
	case nil:
		return nil
	case repositories.ErrClaimNotFound:
		return apperrors.ErrNotFound(err)
	case repositories.ErrClaimNotPending:
		return apperrors.ErrInvalidStatus("claim", "Only pending claims can be marked reviewed")
	default:
		return apperrors.InternalError(err)
	}
}

// BuildReply composes a mailto: URL addressed to the claimant, prefilled
// with a subject naming the listing. The operator's own mail client does
// the actual sending.
func (s *claimService) BuildReply(db *gorm.DB, id string) (*dto.ClaimReplyResponse, error) {
	claim, err := s.claimRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrClaimNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	listingName := "your listing"
	if claim.Listing != nil {
		listingName = claim.Listing.Name
	}

	subject := fmt.Sprintf("Re: your claim for %s", listingName)
	body := fmt.Sprintf("Hi %s,\n\n", claim.ContactName)

	// mailto query values use percent-encoding, not form encoding, so
	// spaces must become %20 rather than +.
	q := url.Values{}
	q.Set("subject", subject)
	q.Set("body", body)
	query := strings.ReplaceAll(q.Encode(), "+", "%20")

	return &dto.ClaimReplyResponse{
		Mailto: fmt.Sprintf("mailto:%s?%s", claim.WorkEmail, query),
	}, nil
}

func buildClaimResponse(c *models.Claim) dto.ClaimResponse {
	resp := dto.ClaimResponse{
		ID:          c.ID,
		ListingID:   c.ListingID,
		ContactName: c.ContactName,
		WorkEmail:   c.WorkEmail,
		Message:     c.Message,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
	}
	if c.Listing != nil {
		resp.ListingName = c.Listing.Name
		resp.ListingSlug = c.Listing.Slug
	}
	return resp
}
