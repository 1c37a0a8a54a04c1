package persistence

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

type orderRepoFixture struct {
	orders   adapter.OrderRepository
	activity *entity.Activity
	client   *entity.Client
	option   *entity.Option
}

func newOrderRepoFixture(t *testing.T) *orderRepoFixture {
	t.Helper()
	ctx := context.Background()
	db := testDB(t)

	activity := entity.NewActivity("Pollada bailable", "Pro fondos")
	option := entity.NewOption(activity.ID, "Pollo a la brasa", decimal.NewFromFloat(25.50))
	activity.Options = []*entity.Option{option}
	if err := NewActivityRepository(db).Create(ctx, activity); err != nil {
		t.Fatalf("failed to seed activity: %v", err)
	}

	client := entity.NewClient("Maria", "maria@example.com")
	if err := NewClientRepository(db).Create(ctx, client); err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}

	return &orderRepoFixture{
		orders:   NewOrderRepository(db),
		activity: activity,
		client:   client,
		option:   option,
	}
}

func TestOrderRepositoryUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts a new triple", func(t *testing.T) {
		f := newOrderRepoFixture(t)

		order := entity.NewOrder(f.activity.ID, f.client.ID, f.option.ID, 3, f.option.Price)
		persisted, err := f.orders.Upsert(ctx, order)
		if err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		if persisted.Quantity != 3 {
			t.Errorf("expected quantity 3, got %d", persisted.Quantity)
		}
		if !persisted.TotalCost.Equal(decimal.NewFromFloat(76.50)) {
			t.Errorf("expected total 76.50, got %s", persisted.TotalCost)
		}
		if persisted.PaymentStatus != entity.PaymentStatusPending {
			t.Errorf("expected pending status, got %s", persisted.PaymentStatus)
		}
	})

	t.Run("merges a repeated triple inside the database", func(t *testing.T) {
		f := newOrderRepoFixture(t)

		first, err := f.orders.Upsert(ctx, entity.NewOrder(f.activity.ID, f.client.ID, f.option.ID, 2, f.option.Price))
		if err != nil {
			t.Fatalf("first upsert failed: %v", err)
		}
		second, err := f.orders.Upsert(ctx, entity.NewOrder(f.activity.ID, f.client.ID, f.option.ID, 3, f.option.Price))
		if err != nil {
			t.Fatalf("second upsert failed: %v", err)
		}

		if second.ID != first.ID {
			t.Error("merge should keep the existing row's identity")
		}
		if second.Quantity != 5 {
			t.Errorf("expected merged quantity 5, got %d", second.Quantity)
		}
		if !second.TotalCost.Equal(decimal.NewFromFloat(127.50)) {
			t.Errorf("expected merged total 127.50, got %s", second.TotalCost)
		}

		orders, err := f.orders.FindByActivity(ctx, f.activity.ID)
		if err != nil {
			t.Fatalf("failed to list orders: %v", err)
		}
		if len(orders) != 1 {
			t.Errorf("expected a single row for the triple, got %d", len(orders))
		}
	})

	t.Run("merge keeps the existing unit cost snapshot", func(t *testing.T) {
		f := newOrderRepoFixture(t)

		if _, err := f.orders.Upsert(ctx, entity.NewOrder(f.activity.ID, f.client.ID, f.option.ID, 1, decimal.NewFromInt(20))); err != nil {
			t.Fatalf("first upsert failed: %v", err)
		}
		// Second placement arrives after a price change.
		merged, err := f.orders.Upsert(ctx, entity.NewOrder(f.activity.ID, f.client.ID, f.option.ID, 1, decimal.NewFromInt(99)))
		if err != nil {
			t.Fatalf("second upsert failed: %v", err)
		}

		if !merged.UnitCost.Equal(decimal.NewFromInt(20)) {
			t.Errorf("expected pinned unit cost 20, got %s", merged.UnitCost)
		}
		if !merged.TotalCost.Equal(decimal.NewFromInt(40)) {
			t.Errorf("expected total 40 from the pinned cost, got %s", merged.TotalCost)
		}
	})

	t.Run("concurrent upserts of one triple never lose increments", func(t *testing.T) {
		f := newOrderRepoFixture(t)

		const placements = 10
		var wg sync.WaitGroup
		for i := 0; i < placements; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := f.orders.Upsert(ctx, entity.NewOrder(f.activity.ID, f.client.ID, f.option.ID, 1, f.option.Price)); err != nil {
					t.Errorf("concurrent upsert failed: %v", err)
				}
			}()
		}
		wg.Wait()

		order, err := f.orders.FindByTriple(ctx, f.activity.ID, f.client.ID, f.option.ID)
		if err != nil {
			t.Fatalf("failed to load merged order: %v", err)
		}
		if order.Quantity != placements {
			t.Errorf("expected accumulated quantity %d, got %d", placements, order.Quantity)
		}
	})

	t.Run("different options for one client stay separate rows", func(t *testing.T) {
		f := newOrderRepoFixture(t)
		otherOption := entity.NewOption(f.activity.ID, "Chancho al palo", decimal.NewFromInt(30))

		if _, err := f.orders.Upsert(ctx, entity.NewOrder(f.activity.ID, f.client.ID, f.option.ID, 1, f.option.Price)); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
		if _, err := f.orders.Upsert(ctx, entity.NewOrder(f.activity.ID, f.client.ID, otherOption.ID, 1, otherOption.Price)); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		orders, err := f.orders.FindByClient(ctx, f.client.ID)
		if err != nil {
			t.Fatalf("failed to list orders: %v", err)
		}
		if len(orders) != 2 {
			t.Errorf("expected 2 rows, got %d", len(orders))
		}
	})
}

func TestOrderRepositoryUpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("writes all mutable fields in one statement", func(t *testing.T) {
		f := newOrderRepoFixture(t)

		order, err := f.orders.Upsert(ctx, entity.NewOrder(f.activity.ID, f.client.ID, f.option.ID, 2, decimal.NewFromInt(20)))
		if err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		paidAt := time.Now().UTC().Truncate(time.Second)
		order.Quantity = 4
		order.Recalculate()
		order.PaymentStatus = entity.PaymentStatusPaid
		order.PaidAt = &paidAt
		if err := f.orders.Update(ctx, order); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		reloaded, err := f.orders.FindByID(ctx, order.ID)
		if err != nil {
			t.Fatalf("failed to reload order: %v", err)
		}
		if reloaded.Quantity != 4 {
			t.Errorf("expected quantity 4, got %d", reloaded.Quantity)
		}
		if !reloaded.TotalCost.Equal(decimal.NewFromInt(80)) {
			t.Errorf("expected total 80, got %s", reloaded.TotalCost)
		}
		if reloaded.PaymentStatus != entity.PaymentStatusPaid {
			t.Errorf("expected paid status, got %s", reloaded.PaymentStatus)
		}
		if reloaded.PaidAt == nil {
			t.Error("expected the payment timestamp to persist")
		}
	})

	t.Run("moving an order onto an occupied triple reports the collision", func(t *testing.T) {
		f := newOrderRepoFixture(t)
		otherOption := entity.NewOption(f.activity.ID, "Chancho al palo", decimal.NewFromInt(30))

		order, err := f.orders.Upsert(ctx, entity.NewOrder(f.activity.ID, f.client.ID, f.option.ID, 2, f.option.Price))
		if err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
		if _, err := f.orders.Upsert(ctx, entity.NewOrder(f.activity.ID, f.client.ID, otherOption.ID, 1, otherOption.Price)); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		order.OptionID = otherOption.ID
		order.UnitCost = otherOption.Price
		order.Recalculate()
		if err := f.orders.Update(ctx, order); !errors.Is(err, domainerror.ErrOrderTripleExists) {
			t.Errorf("expected triple-exists error, got %v", err)
		}

		// The rejected write leaves the row untouched.
		reloaded, err := f.orders.FindByID(ctx, order.ID)
		if err != nil {
			t.Fatalf("failed to reload order: %v", err)
		}
		if reloaded.OptionID != f.option.ID {
			t.Errorf("expected the original option to survive, got %s", reloaded.OptionID)
		}
	})

	t.Run("updating an unknown order reports not found", func(t *testing.T) {
		f := newOrderRepoFixture(t)

		ghost := entity.NewOrder(f.activity.ID, f.client.ID, f.option.ID, 1, f.option.Price)
		if err := f.orders.Update(ctx, ghost); !errors.Is(err, domainerror.ErrOrderNotFound) {
			t.Errorf("expected order-not-found, got %v", err)
		}
	})

	t.Run("delete removes the row and frees the triple", func(t *testing.T) {
		f := newOrderRepoFixture(t)

		order, err := f.orders.Upsert(ctx, entity.NewOrder(f.activity.ID, f.client.ID, f.option.ID, 2, f.option.Price))
		if err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
		if err := f.orders.Delete(ctx, order.ID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, err := f.orders.FindByID(ctx, order.ID); !errors.Is(err, domainerror.ErrOrderNotFound) {
			t.Error("deleted order should be gone")
		}

		// The triple is reusable after deletion.
		fresh, err := f.orders.Upsert(ctx, entity.NewOrder(f.activity.ID, f.client.ID, f.option.ID, 1, f.option.Price))
		if err != nil {
			t.Fatalf("re-upsert failed: %v", err)
		}
		if fresh.Quantity != 1 {
			t.Errorf("expected a fresh order with quantity 1, got %d", fresh.Quantity)
		}
		if err := f.orders.Delete(ctx, order.ID); !errors.Is(err, domainerror.ErrOrderNotFound) {
			t.Errorf("double delete should report not found, got %v", err)
		}
	})
}

func TestOrderRepositoryPaidTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("sums only paid orders of the activity", func(t *testing.T) {
		f := newOrderRepoFixture(t)
		otherClient := entity.NewClient("Jose", "jose@example.com")
		otherOption := entity.NewOption(f.activity.ID, "Chancho", decimal.NewFromInt(30))

		paid1, err := f.orders.Upsert(ctx, entity.NewOrder(f.activity.ID, f.client.ID, f.option.ID, 2, decimal.NewFromInt(25)))
		if err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
		paid2, err := f.orders.Upsert(ctx, entity.NewOrder(f.activity.ID, otherClient.ID, otherOption.ID, 1, decimal.NewFromInt(30)))
		if err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
		// A pending order that must not count.
		if _, err := f.orders.Upsert(ctx, entity.NewOrder(f.activity.ID, f.client.ID, otherOption.ID, 4, decimal.NewFromInt(30))); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		now := time.Now().UTC()
		for _, o := range []*entity.Order{paid1, paid2} {
			o.MarkPaid(now)
			if err := f.orders.Update(ctx, o); err != nil {
				t.Fatalf("failed to mark paid: %v", err)
			}
		}

		totals, err := f.orders.PaidTotals(ctx, f.activity.ID)
		if err != nil {
			t.Fatalf("paid totals failed: %v", err)
		}
		if totals.Count != 2 {
			t.Errorf("expected 2 paid orders, got %d", totals.Count)
		}
		if !totals.Revenue.Equal(decimal.NewFromInt(80)) {
			t.Errorf("expected revenue 80, got %s", totals.Revenue)
		}
	})

	t.Run("empty activity reports zero revenue", func(t *testing.T) {
		f := newOrderRepoFixture(t)

		totals, err := f.orders.PaidTotals(ctx, f.activity.ID)
		if err != nil {
			t.Fatalf("paid totals failed: %v", err)
		}
		if totals.Count != 0 || !totals.Revenue.Equal(decimal.Zero) {
			t.Errorf("expected zero totals, got count=%d revenue=%s", totals.Count, totals.Revenue)
		}
	})
}
