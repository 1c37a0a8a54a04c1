package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus represents the status of an email job in the queue.
type EmailStatus string

const (
	EmailStatusPending EmailStatus = "pending"
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
)

// emailMaxAttempts is how often delivery of a job is retried before it is
// marked failed for good.
const emailMaxAttempts = 3

// EmailJob represents a queued outbound email, such as the payment receipt
// sent when an order is marked paid.
type EmailJob struct {
	ID             uuid.UUID
	RecipientEmail string
	RecipientName  string
	Subject        string
	Body           string
	Status         EmailStatus
	Attempts       int
	LastError      string
	SentAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewEmailJob creates a new pending EmailJob.
func NewEmailJob(recipientEmail, recipientName, subject, body string) *EmailJob {
	now := time.Now().UTC()

	return &EmailJob{
		ID:             uuid.New(),
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		Body:           body,
		Status:         EmailStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// MarkSent marks the job as successfully delivered.
func (e *EmailJob) MarkSent() {
	now := time.Now().UTC()
	e.Status = EmailStatusSent
	e.SentAt = &now
	e.UpdatedAt = now
}

// MarkFailed records a delivery failure. The job stays pending until the
// retry budget is exhausted.
func (e *EmailJob) MarkFailed(err error) {
	e.Attempts++
	e.LastError = err.Error()
	e.UpdatedAt = time.Now().UTC()
	if e.Attempts >= emailMaxAttempts {
		e.Status = EmailStatusFailed
	}
}
