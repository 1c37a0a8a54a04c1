// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityStatus represents the lifecycle status of a fundraising activity.
type ActivityStatus string

const (
	ActivityStatusActive    ActivityStatus = "active"
	ActivityStatusFinished  ActivityStatus = "finished"
	ActivityStatusCancelled ActivityStatus = "cancelled"
)

// Activity represents a fundraising activity with a set of purchasable options.
type Activity struct {
	ID          uuid.UUID
	Title       string
	Description string
	Status      ActivityStatus
	Options     []*Option
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewActivity creates a new Activity entity in Active status.
func NewActivity(title, description string) *Activity {
	now := time.Now().UTC()

	return &Activity{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      ActivityStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AcceptsOrders reports whether new orders may be placed against the activity.
// Finished and cancelled activities are closed for ordering.
func (a *Activity) AcceptsOrders() bool {
	return a.Status == ActivityStatusActive
}

// IsValidActivityStatus validates an activity status value.
func IsValidActivityStatus(status ActivityStatus) bool {
	switch status {
	case ActivityStatusActive, ActivityStatusFinished, ActivityStatusCancelled:
		return true
	}
	return false
}
