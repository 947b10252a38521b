package services

import (
	"bcpartners_backend/internal/email"
	"bcpartners_backend/internal/repositories"
)

// ServiceContainer bundles every service for handler wiring.
type ServiceContainer struct {
	Listing      ListingService
	Review       ReviewService
	Claim        ClaimService
	Auth         AuthService
	Notification NotificationService
}

// NewServiceContainer wires repositories into services. Repositories are
// stateless; the database handle flows in per call.
func NewServiceContainer(emailProvider email.Provider) *ServiceContainer {
	listingRepo := repositories.NewListingRepository()
	reviewRepo := repositories.NewReviewRepository()
	claimRepo := repositories.NewClaimRepository()
	userRepo := repositories.NewUserRepository()

	notifier := NewNotificationService(emailProvider)

	return &ServiceContainer{
		Listing:      NewListingService(listingRepo, reviewRepo),
		Review:       NewReviewService(reviewRepo, listingRepo, notifier),
		Claim:        NewClaimService(claimRepo, listingRepo, notifier),
		Auth:         NewAuthService(userRepo),
		Notification: notifier,
	}
}
