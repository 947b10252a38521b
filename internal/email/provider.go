package email

// Provider sends outbound mail. The only consumer is the moderation
// notification path; delivery is best-effort and never blocks a submission.
type Provider interface {
	Send(email *Email) error
	Validate() error
}
