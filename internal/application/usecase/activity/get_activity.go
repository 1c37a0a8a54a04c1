package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

// GetActivityInput represents the input for activity retrieval.
type GetActivityInput struct {
	ActivityID uuid.UUID
}

// GetActivityOutput represents the output of activity retrieval.
type GetActivityOutput struct {
	Activity *ActivityOutput
}

// GetActivityUseCase handles single activity retrieval. Readable by every
// authenticated caller so clients can browse options.
type GetActivityUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewGetActivityUseCase creates a new GetActivityUseCase instance.
func NewGetActivityUseCase(activityRepo adapter.ActivityRepository) *GetActivityUseCase {
	return &GetActivityUseCase{
		activityRepo: activityRepo,
	}
}

// Execute performs the activity retrieval.
func (uc *GetActivityUseCase) Execute(ctx context.Context, input GetActivityInput) (*GetActivityOutput, error) {
	activity, err := uc.activityRepo.FindByID(ctx, input.ActivityID)
	if err != nil {
		if errors.Is(err, domainerror.ErrActivityNotFound) {
			return nil, domainerror.NewActivityError(
				domainerror.ErrCodeActivityNotFound,
				"activity not found",
				domainerror.ErrActivityNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}

	return &GetActivityOutput{Activity: toActivityOutput(activity)}, nil
}
