package handlers

import (
	"bcpartners_backend/internal/services"
	"bcpartners_backend/internal/validator"
)

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	Listing *ListingHandler
	Review  *ReviewHandler
	Claim   *ClaimHandler
	Auth    *AuthHandler
	Site    *SiteHandler
}

func NewAppHandlers(svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Listing: NewListingHandler(base, svc.Listing),
		Review:  NewReviewHandler(base, svc.Review),
		Claim:   NewClaimHandler(base, svc.Claim),
		Auth:    NewAuthHandler(base, svc.Auth),
		Site:    NewSiteHandler(base, svc.Listing),
	}
}
