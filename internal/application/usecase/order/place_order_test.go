package order

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/application/usecase/pricing"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

func newPlaceOrderFixture(status entity.ActivityStatus, price decimal.Decimal) (*PlaceOrderUseCase, *entity.Activity, *entity.Client, *entity.Option, *fakeOrderRepo) {
	activity := entity.NewActivity("Pollada bailable", "Fundraiser")
	activity.Status = status
	client := entity.NewClient("Maria", "maria@example.com")
	option := entity.NewOption(activity.ID, "Pollo a la brasa", price)

	orderRepo := newFakeOrderRepo()
	uc := NewPlaceOrderUseCase(
		newFakeActivityRepo(activity),
		newFakeClientRepo(client),
		orderRepo,
		pricing.NewResolveOptionPriceUseCase(newFakeOptionRepo(option)),
	)

	return uc, activity, client, option, orderRepo
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending order with the option price snapshot", func(t *testing.T) {
		uc, activity, client, option, _ := newPlaceOrderFixture(entity.ActivityStatusActive, decimal.NewFromFloat(25.50))

		output, err := uc.Execute(ctx, PlaceOrderInput{
			ActivityID: activity.ID,
			ClientID:   client.ID,
			OptionID:   option.ID,
			Quantity:   3,
			Caller:     adminCaller(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Merged {
			t.Error("first placement should not be flagged as merged")
		}
		if output.Order.Quantity != 3 {
			t.Errorf("expected quantity 3, got %d", output.Order.Quantity)
		}
		if !output.Order.UnitCost.Equal(decimal.NewFromFloat(25.50)) {
			t.Errorf("expected unit cost 25.50, got %s", output.Order.UnitCost)
		}
		if !output.Order.TotalCost.Equal(decimal.NewFromFloat(76.50)) {
			t.Errorf("expected total cost 76.50, got %s", output.Order.TotalCost)
		}
		if output.Order.PaymentStatus != entity.PaymentStatusPending {
			t.Errorf("expected pending payment status, got %s", output.Order.PaymentStatus)
		}
		if output.Order.PaidAt != nil {
			t.Error("new order should not carry a payment timestamp")
		}
	})

	t.Run("merges a repeated triple by accumulating quantity", func(t *testing.T) {
		uc, activity, client, option, _ := newPlaceOrderFixture(entity.ActivityStatusActive, decimal.NewFromInt(10))

		input := PlaceOrderInput{
			ActivityID: activity.ID,
			ClientID:   client.ID,
			OptionID:   option.ID,
			Quantity:   2,
			Caller:     clientCaller(client.ID),
		}
		first, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("first placement failed: %v", err)
		}

		input.Quantity = 3
		second, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("second placement failed: %v", err)
		}

		if !second.Merged {
			t.Error("repeated triple should be flagged as merged")
		}
		if second.Order.ID != first.Order.ID {
			t.Error("merge should keep the existing order's identity")
		}
		if second.Order.Quantity != 5 {
			t.Errorf("expected merged quantity 5, got %d", second.Order.Quantity)
		}
		if !second.Order.TotalCost.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected merged total 50, got %s", second.Order.TotalCost)
		}
	})

	t.Run("keeps total equal to quantity times unit cost", func(t *testing.T) {
		cases := []struct {
			name     string
			price    decimal.Decimal
			quantity int
		}{
			{"integer price", decimal.NewFromInt(7), 4},
			{"cent precision", decimal.NewFromFloat(12.35), 9},
			{"free option", decimal.Zero, 5},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc, activity, client, option, _ := newPlaceOrderFixture(entity.ActivityStatusActive, tc.price)

				output, err := uc.Execute(ctx, PlaceOrderInput{
					ActivityID: activity.ID,
					ClientID:   client.ID,
					OptionID:   option.ID,
					Quantity:   tc.quantity,
					Caller:     adminCaller(),
				})
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				want := tc.price.Mul(decimal.NewFromInt(int64(tc.quantity)))
				if !output.Order.TotalCost.Equal(want) {
					t.Errorf("expected total %s, got %s", want, output.Order.TotalCost)
				}
			})
		}
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		uc, activity, client, option, _ := newPlaceOrderFixture(entity.ActivityStatusActive, decimal.NewFromInt(10))

		for _, quantity := range []int{0, -1} {
			_, err := uc.Execute(ctx, PlaceOrderInput{
				ActivityID: activity.ID,
				ClientID:   client.ID,
				OptionID:   option.ID,
				Quantity:   quantity,
				Caller:     adminCaller(),
			})

			var orderErr *domainerror.OrderError
			if !errors.As(err, &orderErr) || orderErr.Code != domainerror.ErrCodeInvalidOrderQuantity {
				t.Errorf("quantity %d: expected invalid quantity error, got %v", quantity, err)
			}
		}
	})

	t.Run("rejects orders against a closed activity", func(t *testing.T) {
		for _, status := range []entity.ActivityStatus{entity.ActivityStatusFinished, entity.ActivityStatusCancelled} {
			uc, activity, client, option, _ := newPlaceOrderFixture(status, decimal.NewFromInt(10))

			_, err := uc.Execute(ctx, PlaceOrderInput{
				ActivityID: activity.ID,
				ClientID:   client.ID,
				OptionID:   option.ID,
				Quantity:   1,
				Caller:     adminCaller(),
			})

			var activityErr *domainerror.ActivityError
			if !errors.As(err, &activityErr) || activityErr.Code != domainerror.ErrCodeActivityNotActive {
				t.Errorf("status %s: expected activity-not-active error, got %v", status, err)
			}
		}
	})

	t.Run("rejects unknown activity, client and option", func(t *testing.T) {
		uc, activity, client, option, _ := newPlaceOrderFixture(entity.ActivityStatusActive, decimal.NewFromInt(10))

		_, err := uc.Execute(ctx, PlaceOrderInput{
			ActivityID: uuid.New(),
			ClientID:   client.ID,
			OptionID:   option.ID,
			Quantity:   1,
			Caller:     adminCaller(),
		})
		var activityErr *domainerror.ActivityError
		if !errors.As(err, &activityErr) || activityErr.Code != domainerror.ErrCodeActivityNotFound {
			t.Errorf("expected activity-not-found error, got %v", err)
		}

		_, err = uc.Execute(ctx, PlaceOrderInput{
			ActivityID: activity.ID,
			ClientID:   uuid.New(),
			OptionID:   option.ID,
			Quantity:   1,
			Caller:     adminCaller(),
		})
		var orderErr *domainerror.OrderError
		if !errors.As(err, &orderErr) || orderErr.Code != domainerror.ErrCodeOrderClientNotFound {
			t.Errorf("expected client-not-found error, got %v", err)
		}

		_, err = uc.Execute(ctx, PlaceOrderInput{
			ActivityID: activity.ID,
			ClientID:   client.ID,
			OptionID:   uuid.New(),
			Quantity:   1,
			Caller:     adminCaller(),
		})
		if !errors.As(err, &activityErr) || activityErr.Code != domainerror.ErrCodeOptionNotFound {
			t.Errorf("expected option-not-found error, got %v", err)
		}
	})

	t.Run("forbids ordering on behalf of another client", func(t *testing.T) {
		uc, activity, client, option, _ := newPlaceOrderFixture(entity.ActivityStatusActive, decimal.NewFromInt(10))

		_, err := uc.Execute(ctx, PlaceOrderInput{
			ActivityID: activity.ID,
			ClientID:   client.ID,
			OptionID:   option.ID,
			Quantity:   1,
			Caller:     clientCaller(uuid.New()),
		})

		var orderErr *domainerror.OrderError
		if !errors.As(err, &orderErr) || orderErr.Code != domainerror.ErrCodeOrderPlaceForbidden {
			t.Errorf("expected place-forbidden error, got %v", err)
		}
	})

	t.Run("concurrent placements for one triple collapse into one order", func(t *testing.T) {
		uc, activity, client, option, orderRepo := newPlaceOrderFixture(entity.ActivityStatusActive, decimal.NewFromInt(10))

		const placements = 20
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			created int
		)
		for i := 0; i < placements; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				output, err := uc.Execute(ctx, PlaceOrderInput{
					ActivityID: activity.ID,
					ClientID:   client.ID,
					OptionID:   option.ID,
					Quantity:   1,
					Caller:     adminCaller(),
				})
				if err != nil {
					t.Errorf("concurrent placement failed: %v", err)
					return
				}
				if !output.Merged {
					mu.Lock()
					created++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		// Exactly one placement created the row; the rest merged into it.
		if created != 1 {
			t.Errorf("expected exactly one placement to report a fresh order, got %d", created)
		}

		orders, err := orderRepo.FindByActivity(ctx, activity.ID)
		if err != nil {
			t.Fatalf("failed to list orders: %v", err)
		}
		if len(orders) != 1 {
			t.Fatalf("expected a single merged order, got %d", len(orders))
		}
		if orders[0].Quantity != placements {
			t.Errorf("expected accumulated quantity %d, got %d", placements, orders[0].Quantity)
		}
		if !orders[0].TotalCost.Equal(decimal.NewFromInt(placements * 10)) {
			t.Errorf("expected accumulated total %d, got %s", placements*10, orders[0].TotalCost)
		}
	})
}
