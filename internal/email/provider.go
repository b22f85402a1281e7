package email

// Message is a plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Provider delivers transactional emails. The application works without
// one; the noop provider is used when SMTP is not configured.
type Provider interface {
	Send(msg *Message) error
}

// NoopProvider discards all messages.
type NoopProvider struct{}

func (p *NoopProvider) Send(_ *Message) error {
	return nil
}
