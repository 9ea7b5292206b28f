package email

import "errors"

// Provider sends outbound email. Implementations: SMTPProvider for real
// delivery, a mock in internal/app for unconfigured environments.
type Provider interface {
	Send(email *Email) error
}

var ErrNoRecipients = errors.New("email has no recipients")
