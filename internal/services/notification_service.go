package services

import (
	"fmt"

	"bcpartners_backend/internal/config"
	"bcpartners_backend/internal/email"
	"bcpartners_backend/internal/logger"
	"bcpartners_backend/internal/models"
)

// NotificationService pushes queue events to the moderator's inbox.
// Everything here is fire-and-forget: callers run it in a goroutine and a
// failure is only logged.
type NotificationService interface {
	ReviewSubmitted(listing *models.Listing, review *models.Review)
	ClaimSubmitted(listing *models.Listing, claim *models.Claim)
}

type notificationService struct {
	provider email.Provider
}

func NewNotificationService(provider email.Provider) NotificationService {
	return &notificationService{provider: provider}
}

func (s *notificationService) ReviewSubmitted(listing *models.Listing, review *models.Review) {
	subject := fmt.Sprintf("New review pending for %s", listing.Name)
	body := fmt.Sprintf(
		"A new review was submitted for %s.\n\nRating: %d/5\nFrom: %s (%s)\nTitle: %s\n\n%s\n",
		listing.Name, review.Rating, review.ReviewerName, review.ReviewerIndustry,
		review.Title, review.Body,
	)
	s.send(subject, body)
}

func (s *notificationService) ClaimSubmitted(listing *models.Listing, claim *models.Claim) {
	subject := fmt.Sprintf("New ownership claim for %s", listing.Name)
	body := fmt.Sprintf(
		"An ownership claim was submitted for %s.\n\nContact: %s\nWork email: %s\n\n%s\n",
		listing.Name, claim.ContactName, claim.WorkEmail, claim.Message,
	)
	s.send(subject, body)
}

func (s *notificationService) send(subject, body string) {
	addr := config.GetConfig().Email.ModeratorAddr
	if addr == "" {
		logger.Debug("Moderator address not configured, skipping notification", "subject", subject)
		return
	}

	err := s.provider.Send(&email.Email{
		To:      []string{addr},
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		logger.Error("Failed to send moderator notification", "subject", subject, "error", err)
		return
	}
	logger.Debug("Moderator notification sent", "subject", subject)
}
