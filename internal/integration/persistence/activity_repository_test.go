package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

func TestActivityRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("persists an activity together with its options", func(t *testing.T) {
		db := testDB(t)
		repo := NewActivityRepository(db)

		activity := entity.NewActivity("Pollada bailable", "Pro fondos del club")
		activity.Options = []*entity.Option{
			entity.NewOption(activity.ID, "Pollo", decimal.NewFromFloat(25.50)),
			entity.NewOption(activity.ID, "Chancho", decimal.NewFromInt(30)),
		}
		if err := repo.Create(ctx, activity); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		reloaded, err := repo.FindByID(ctx, activity.ID)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if reloaded.Title != "Pollada bailable" {
			t.Errorf("expected title to persist, got %s", reloaded.Title)
		}
		if reloaded.Status != entity.ActivityStatusActive {
			t.Errorf("expected active status, got %s", reloaded.Status)
		}
		if len(reloaded.Options) != 2 {
			t.Fatalf("expected 2 options, got %d", len(reloaded.Options))
		}
	})

	t.Run("unknown activity reports not found", func(t *testing.T) {
		repo := NewActivityRepository(testDB(t))

		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrActivityNotFound) {
			t.Errorf("expected activity-not-found, got %v", err)
		}
	})

	t.Run("status update leaves options untouched", func(t *testing.T) {
		db := testDB(t)
		repo := NewActivityRepository(db)

		activity := entity.NewActivity("Pollada", "")
		activity.Options = []*entity.Option{entity.NewOption(activity.ID, "Pollo", decimal.NewFromInt(25))}
		if err := repo.Create(ctx, activity); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		activity.Status = entity.ActivityStatusFinished
		activity.Options = nil
		if err := repo.Update(ctx, activity); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		reloaded, err := repo.FindByID(ctx, activity.ID)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if reloaded.Status != entity.ActivityStatusFinished {
			t.Errorf("expected finished status, got %s", reloaded.Status)
		}
		if len(reloaded.Options) != 1 {
			t.Errorf("options should survive a status update, got %d", len(reloaded.Options))
		}
	})
}

func TestOptionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("lookups are scoped to the owning activity", func(t *testing.T) {
		db := testDB(t)
		repo := NewOptionRepository(db)

		activityID := uuid.New()
		option := entity.NewOption(activityID, "Pollo", decimal.NewFromInt(25))
		if err := repo.Create(ctx, option); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		if _, err := repo.FindByID(ctx, activityID, option.ID); err != nil {
			t.Errorf("scoped lookup failed: %v", err)
		}
		if _, err := repo.FindByID(ctx, uuid.New(), option.ID); !errors.Is(err, domainerror.ErrOptionNotFound) {
			t.Errorf("lookup under the wrong activity should miss, got %v", err)
		}
	})

	t.Run("updates price in place", func(t *testing.T) {
		db := testDB(t)
		repo := NewOptionRepository(db)

		activityID := uuid.New()
		option := entity.NewOption(activityID, "Pollo", decimal.NewFromInt(25))
		if err := repo.Create(ctx, option); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		option.Price = decimal.NewFromFloat(27.50)
		if err := repo.Update(ctx, option); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		reloaded, err := repo.FindByID(ctx, activityID, option.ID)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if !reloaded.Price.Equal(decimal.NewFromFloat(27.50)) {
			t.Errorf("expected price 27.50, got %s", reloaded.Price)
		}
	})

	t.Run("delete is scoped and idempotence-safe", func(t *testing.T) {
		db := testDB(t)
		repo := NewOptionRepository(db)

		activityID := uuid.New()
		option := entity.NewOption(activityID, "Pollo", decimal.NewFromInt(25))
		if err := repo.Create(ctx, option); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		if err := repo.Delete(ctx, uuid.New(), option.ID); !errors.Is(err, domainerror.ErrOptionNotFound) {
			t.Errorf("delete under the wrong activity should miss, got %v", err)
		}
		if err := repo.Delete(ctx, activityID, option.ID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if err := repo.Delete(ctx, activityID, option.ID); !errors.Is(err, domainerror.ErrOptionNotFound) {
			t.Errorf("double delete should report not found, got %v", err)
		}
	})
}

func TestClientRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a client with its activity scope", func(t *testing.T) {
		repo := NewClientRepository(testDB(t))

		client := entity.NewClient("Maria", "maria@example.com")
		client.Role = entity.RoleActivityAdmin
		client.AllowedActivityIDs = []uuid.UUID{uuid.New(), uuid.New()}
		if err := repo.Create(ctx, client); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		reloaded, err := repo.FindByID(ctx, client.ID)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if reloaded.Email != "maria@example.com" {
			t.Errorf("expected email to persist, got %s", reloaded.Email)
		}
		if reloaded.Role != entity.RoleActivityAdmin {
			t.Errorf("expected activity_admin role, got %s", reloaded.Role)
		}
		if len(reloaded.AllowedActivityIDs) != 2 {
			t.Errorf("expected 2 allowed activities, got %d", len(reloaded.AllowedActivityIDs))
		}
	})

	t.Run("unknown client reports not found", func(t *testing.T) {
		repo := NewClientRepository(testDB(t))

		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrClientNotFound) {
			t.Errorf("expected client-not-found, got %v", err)
		}
	})
}
