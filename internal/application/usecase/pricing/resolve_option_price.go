// Package pricing contains the option price resolution use case.
package pricing

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

// ResolveOptionPriceInput represents the input for option price resolution.
type ResolveOptionPriceInput struct {
	ActivityID uuid.UUID
	OptionID   uuid.UUID
}

// ResolveOptionPriceOutput represents the output of option price resolution.
type ResolveOptionPriceOutput struct {
	Option *entity.Option
}

// ResolveOptionPriceUseCase resolves the current price of an option scoped
// to its activity. Pure read; no side effects.
type ResolveOptionPriceUseCase struct {
	optionRepo adapter.OptionRepository
}

// NewResolveOptionPriceUseCase creates a new ResolveOptionPriceUseCase instance.
func NewResolveOptionPriceUseCase(optionRepo adapter.OptionRepository) *ResolveOptionPriceUseCase {
	return &ResolveOptionPriceUseCase{
		optionRepo: optionRepo,
	}
}

// Execute resolves the option. Options belonging to a different activity are
// reported as not found, never silently resolved.
func (uc *ResolveOptionPriceUseCase) Execute(ctx context.Context, input ResolveOptionPriceInput) (*ResolveOptionPriceOutput, error) {
	option, err := uc.optionRepo.FindByID(ctx, input.ActivityID, input.OptionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrOptionNotFound) {
			return nil, domainerror.NewActivityError(
				domainerror.ErrCodeOptionNotFound,
				"option not found for activity",
				domainerror.ErrOptionNotFound,
			)
		}
		return nil, err
	}

	return &ResolveOptionPriceOutput{Option: option}, nil
}
