package activity

import (
	"context"
	"fmt"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
)

// ListActivitiesOutput represents the output of listing activities.
type ListActivitiesOutput struct {
	Activities []*ActivityOutput
}

// ListActivitiesUseCase lists all activities, newest first.
type ListActivitiesUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewListActivitiesUseCase creates a new ListActivitiesUseCase instance.
func NewListActivitiesUseCase(activityRepo adapter.ActivityRepository) *ListActivitiesUseCase {
	return &ListActivitiesUseCase{
		activityRepo: activityRepo,
	}
}

// Execute performs the listing.
func (uc *ListActivitiesUseCase) Execute(ctx context.Context) (*ListActivitiesOutput, error) {
	activities, err := uc.activityRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	outputs := make([]*ActivityOutput, len(activities))
	for i, a := range activities {
		outputs[i] = toActivityOutput(a)
	}

	return &ListActivitiesOutput{Activities: outputs}, nil
}
