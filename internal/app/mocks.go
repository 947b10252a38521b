package app

import (
	"bcpartners_backend/internal/email"
	"bcpartners_backend/internal/logger"
)

// MockEmailProvider stands in when no SMTP relay is configured. Messages
// are logged and dropped, which keeps local development and tests working
// without a mail server.
type MockEmailProvider struct{}

func NewMockEmailProvider() *MockEmailProvider {
	return &MockEmailProvider{}
}

func (p *MockEmailProvider) Send(e *email.Email) error {
	logger.Info("Mock email provider: dropping message",
		"to", e.To,
		"subject", e.Subject,
	)
	return nil
}

func (p *MockEmailProvider) Validate() error {
	return nil
}
