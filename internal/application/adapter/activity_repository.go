// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
)

// ActivityRepository defines the interface for activity persistence operations.
type ActivityRepository interface {
	// Create creates a new activity together with its options.
	Create(ctx context.Context, activity *entity.Activity) error

	// FindByID retrieves an activity with its options by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)

	// FindAll retrieves all activities, newest first.
	FindAll(ctx context.Context) ([]*entity.Activity, error)

	// Update updates the activity's own fields. Options are managed through
	// the OptionRepository.
	Update(ctx context.Context, activity *entity.Activity) error
}

// OptionRepository defines the interface for option persistence operations.
type OptionRepository interface {
	// Create adds a new option to an activity.
	Create(ctx context.Context, option *entity.Option) error

	// FindByID retrieves an option scoped to an activity. Options of other
	// activities are reported as not found.
	FindByID(ctx context.Context, activityID, optionID uuid.UUID) (*entity.Option, error)

	// Update updates an existing option.
	Update(ctx context.Context, option *entity.Option) error

	// Delete removes an option scoped to an activity. Orders keep their
	// unit cost snapshot.
	Delete(ctx context.Context, activityID, optionID uuid.UUID) error
}
