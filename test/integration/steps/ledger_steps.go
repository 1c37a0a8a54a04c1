package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	"github.com/luismonroy1971/actividad-sub000/internal/integration/persistence"
)

// registerLedgerSteps registers the seed steps that put activities, clients,
// orders and expenses directly into the store.
func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^an active activity "([^"]*)" with option "([^"]*)" priced "([^"]*)"$`, anActiveActivityWithOption)
	ctx.Step(`^the activity "([^"]*)" is (finished|cancelled)$`, theActivityIsClosed)
	ctx.Step(`^a client "([^"]*)" with email "([^"]*)"$`, aClientWithEmail)
	ctx.Step(`^client "([^"]*)" has a paid order of (\d+) "([^"]*)" in "([^"]*)"$`, clientHasAPaidOrder)
	ctx.Step(`^a (fixed|variable) expense "([^"]*)" of "([^"]*)" recorded for "([^"]*)"$`, anExpenseRecordedFor)
}

func anActiveActivityWithOption(ctx context.Context, activityName, optionName, price string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	optionPrice, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", price, err)
	}

	activity := entity.NewActivity(activityName, "seeded for testing")
	option := entity.NewOption(activity.ID, optionName, optionPrice)
	activity.Options = []*entity.Option{option}

	if err := persistence.NewActivityRepository(tc.db.DbConn).Create(context.Background(), activity); err != nil {
		return fmt.Errorf("failed to seed activity: %w", err)
	}

	tc.ids[activityName] = activity.ID.String()
	tc.ids[optionName] = option.ID.String()
	return nil
}

func theActivityIsClosed(ctx context.Context, activityName, status string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	activityID, err := tc.mustID(activityName)
	if err != nil {
		return err
	}

	repo := persistence.NewActivityRepository(tc.db.DbConn)
	activity, err := repo.FindByID(context.Background(), activityID)
	if err != nil {
		return fmt.Errorf("failed to load activity: %w", err)
	}
	activity.Status = entity.ActivityStatus(status)
	activity.UpdatedAt = time.Now().UTC()
	return repo.Update(context.Background(), activity)
}

func aClientWithEmail(ctx context.Context, name, email string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	client := entity.NewClient(name, email)
	if err := persistence.NewClientRepository(tc.db.DbConn).Create(context.Background(), client); err != nil {
		return fmt.Errorf("failed to seed client: %w", err)
	}

	tc.ids[name] = client.ID.String()
	return nil
}

func clientHasAPaidOrder(ctx context.Context, clientName string, quantity int, optionName, activityName string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	activityID, err := tc.mustID(activityName)
	if err != nil {
		return err
	}
	clientID, err := tc.mustID(clientName)
	if err != nil {
		return err
	}
	optionID, err := tc.mustID(optionName)
	if err != nil {
		return err
	}

	option, err := persistence.NewOptionRepository(tc.db.DbConn).FindByID(context.Background(), activityID, optionID)
	if err != nil {
		return fmt.Errorf("failed to resolve option: %w", err)
	}

	orderRepo := persistence.NewOrderRepository(tc.db.DbConn)
	order, err := orderRepo.Upsert(context.Background(), entity.NewOrder(activityID, clientID, optionID, quantity, option.Price))
	if err != nil {
		return fmt.Errorf("failed to seed order: %w", err)
	}

	order.MarkPaid(time.Now().UTC())
	if err := orderRepo.Update(context.Background(), order); err != nil {
		return fmt.Errorf("failed to mark order paid: %w", err)
	}

	tc.ids[clientName+"-order"] = order.ID.String()
	return nil
}

func anExpenseRecordedFor(ctx context.Context, category, concept, amount, activityName string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	activityID, err := tc.mustID(activityName)
	if err != nil {
		return err
	}
	expenseAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	expense := entity.NewExpense(
		activityID,
		concept,
		expenseAmount,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		entity.ExpenseCategory(category),
		uuid.New(),
	)
	if err := persistence.NewExpenseRepository(tc.db.DbConn).Create(context.Background(), expense); err != nil {
		return fmt.Errorf("failed to seed expense: %w", err)
	}

	tc.ids[concept] = expense.ID.String()
	return nil
}
