package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/application/usecase/pricing"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

// UpdateOrderInput represents the admin patch of an order. Nil fields are
// left untouched.
type UpdateOrderInput struct {
	OrderID       uuid.UUID
	OptionID      *uuid.UUID
	Quantity      *int
	PaymentStatus *entity.PaymentStatus
	Caller        entity.Caller
}

// UpdateOrderOutput represents the output of an order update.
type UpdateOrderOutput struct {
	Order *OrderOutput
}

// UpdateOrderUseCase handles admin edits of an order. The unit cost stays
// pinned to the order-time snapshot unless the option itself changes, in
// which case it is re-resolved from the new option's current price.
type UpdateOrderUseCase struct {
	orderRepo     adapter.OrderRepository
	activityRepo  adapter.ActivityRepository
	clientRepo    adapter.ClientRepository
	priceResolver *pricing.ResolveOptionPriceUseCase
	emailQueue    adapter.EmailQueueRepository
}

// NewUpdateOrderUseCase creates a new UpdateOrderUseCase instance.
func NewUpdateOrderUseCase(
	orderRepo adapter.OrderRepository,
	activityRepo adapter.ActivityRepository,
	clientRepo adapter.ClientRepository,
	priceResolver *pricing.ResolveOptionPriceUseCase,
	emailQueue adapter.EmailQueueRepository,
) *UpdateOrderUseCase {
	return &UpdateOrderUseCase{
		orderRepo:     orderRepo,
		activityRepo:  activityRepo,
		clientRepo:    clientRepo,
		priceResolver: priceResolver,
		emailQueue:    emailQueue,
	}
}

// Execute performs the order update. The new total is computed in memory and
// written together with quantity, unit cost and payment state in a single
// store write, so a failed write never leaves partial totals behind.
func (uc *UpdateOrderUseCase) Execute(ctx context.Context, input UpdateOrderInput) (*UpdateOrderOutput, error) {
	if !input.Caller.IsAdmin() {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeOrderModifyForbidden,
			"only admins may update orders",
			domainerror.ErrNotAuthorizedToModifyOrder,
		)
	}

	order, err := uc.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, domainerror.ErrOrderNotFound) {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeOrderNotFound,
				"order not found",
				domainerror.ErrOrderNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	if input.OptionID != nil && *input.OptionID != order.OptionID {
		resolved, err := uc.priceResolver.Execute(ctx, pricing.ResolveOptionPriceInput{
			ActivityID: order.ActivityID,
			OptionID:   *input.OptionID,
		})
		if err != nil {
			return nil, err
		}
		order.OptionID = resolved.Option.ID
		order.UnitCost = resolved.Option.Price
	}

	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeInvalidOrderQuantity,
				"quantity must be at least 1",
				domainerror.ErrInvalidOrderQuantity,
			)
		}
		order.Quantity = *input.Quantity
	}

	order.Recalculate()

	becamePaid := false
	if input.PaymentStatus != nil {
		if !entity.IsValidPaymentStatus(*input.PaymentStatus) {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeInvalidPaymentStatus,
				"payment status must be 'pending' or 'paid'",
				domainerror.ErrInvalidPaymentStatus,
			)
		}
		if *input.PaymentStatus == entity.PaymentStatusPaid && order.PaymentStatus != entity.PaymentStatusPaid {
			order.MarkPaid(time.Now().UTC())
			becamePaid = true
		} else {
			// Transitioning away from Paid keeps paid_at: the stamp is one-way.
			order.PaymentStatus = *input.PaymentStatus
		}
	}

	order.UpdatedAt = time.Now().UTC()

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		if errors.Is(err, domainerror.ErrOrderNotFound) {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeOrderNotFound,
				"order not found",
				domainerror.ErrOrderNotFound,
			)
		}
		if errors.Is(err, domainerror.ErrOrderTripleExists) {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeOrderTripleConflict,
				"the client already has an order for this option in the activity",
				domainerror.ErrOrderTripleExists,
			)
		}
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	if becamePaid {
		uc.queuePaymentReceipt(ctx, order)
	}

	return &UpdateOrderOutput{Order: toOrderOutput(order)}, nil
}

// queuePaymentReceipt enqueues a receipt email for a freshly paid order.
// Best-effort: a queue failure is logged and never fails the update.
func (uc *UpdateOrderUseCase) queuePaymentReceipt(ctx context.Context, order *entity.Order) {
	if uc.emailQueue == nil {
		return
	}

	client, err := uc.clientRepo.FindByID(ctx, order.ClientID)
	if err != nil {
		slog.Warn("Skipping payment receipt, client lookup failed",
			"orderID", order.ID,
			"clientID", order.ClientID,
			"error", err,
		)
		return
	}

	activity, err := uc.activityRepo.FindByID(ctx, order.ActivityID)
	if err != nil {
		slog.Warn("Skipping payment receipt, activity lookup failed",
			"orderID", order.ID,
			"activityID", order.ActivityID,
			"error", err,
		)
		return
	}

	subject := fmt.Sprintf("Payment received for %s", activity.Title)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your payment of <strong>%s</strong> for %d item(s) in <strong>%s</strong> has been recorded. Thank you!</p>",
		client.Name, order.TotalCost.StringFixed(2), order.Quantity, activity.Title,
	)

	job := entity.NewEmailJob(client.Email, client.Name, subject, body)
	if err := uc.emailQueue.Enqueue(ctx, job); err != nil {
		slog.Warn("Failed to enqueue payment receipt",
			"orderID", order.ID,
			"error", err,
		)
	}
}
