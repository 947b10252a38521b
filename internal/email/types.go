package email

// Email is one outbound message.
type Email struct {
	To      []string
	Subject string
	Body    string
	HTML    bool
}
