package adapter

import "context"

// SendEmailInput represents an outbound email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
}

// EmailSender defines the interface for delivering emails.
type EmailSender interface {
	// Send delivers a single email.
	Send(ctx context.Context, input SendEmailInput) error
}
