package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
	"github.com/luismonroy1971/actividad-sub000/internal/integration/persistence/model"
)

// orderRepository implements the adapter.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository instance.
func NewOrderRepository(db *gorm.DB) adapter.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindByID retrieves an order by its ID.
func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderModel model.OrderModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&orderModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOrderNotFound
		}
		return nil, result.Error
	}
	return orderModel.ToEntity(), nil
}

// FindByTriple retrieves the single order for the unique
// (activity, client, option) triple.
func (r *orderRepository) FindByTriple(ctx context.Context, activityID, clientID, optionID uuid.UUID) (*entity.Order, error) {
	var orderModel model.OrderModel
	result := r.db.WithContext(ctx).
		Where("activity_id = ? AND client_id = ? AND option_id = ?", activityID, clientID, optionID).
		First(&orderModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOrderNotFound
		}
		return nil, result.Error
	}
	return orderModel.ToEntity(), nil
}

// Upsert inserts the order, or merges it into the existing row of the same
// triple. The merge happens inside the database on the unique index, so two
// concurrent placements of the same triple end up as one row whose quantity
// is the sum of both. The existing row keeps its unit cost snapshot and
// payment state; the total is recomputed from the merged quantity.
func (r *orderRepository) Upsert(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	orderModel := model.OrderFromEntity(order)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "activity_id"},
				{Name: "client_id"},
				{Name: "option_id"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("orders.quantity + excluded.quantity"),
				"total_cost": gorm.Expr("(orders.quantity + excluded.quantity) * orders.unit_cost"),
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(orderModel)
	if result.Error != nil {
		return nil, result.Error
	}

	// The insert path returns the model as written; the merge path keeps the
	// existing row's ID, so re-read by triple either way.
	return r.FindByTriple(ctx, order.ActivityID, order.ClientID, order.OptionID)
}

// Update writes quantity, unit cost, total, payment status and paid_at in a
// single statement so no partial totals are ever stored. Moving the order
// onto an option the client already ordered trips the unique triple index;
// that comes back as ErrOrderTripleExists rather than a raw driver error.
func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"option_id":      order.OptionID,
			"quantity":       order.Quantity,
			"unit_cost":      order.UnitCost,
			"total_cost":     order.TotalCost,
			"payment_status": string(order.PaymentStatus),
			"paid_at":        order.PaidAt,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrOrderTripleExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOrderNotFound
	}
	return nil
}

// Delete removes an order permanently.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.OrderModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOrderNotFound
	}
	return nil
}

// FindByActivity retrieves all orders of an activity, newest first.
func (r *orderRepository) FindByActivity(ctx context.Context, activityID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	result := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("created_at DESC").
		Find(&orderModels)
	if result.Error != nil {
		return nil, result.Error
	}

	orders := make([]*entity.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = orderModels[i].ToEntity()
	}
	return orders, nil
}

// FindByClient retrieves all orders of a client, newest first.
func (r *orderRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	result := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&orderModels)
	if result.Error != nil {
		return nil, result.Error
	}

	orders := make([]*entity.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = orderModels[i].ToEntity()
	}
	return orders, nil
}

// PaidTotals sums total_cost over the activity's paid orders and counts them
// in one aggregate query.
func (r *orderRepository) PaidTotals(ctx context.Context, activityID uuid.UUID) (*adapter.PaidOrderTotals, error) {
	var row struct {
		Revenue decimal.Decimal
		Count   int64
	}
	result := r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total_cost), 0) as revenue, COUNT(*) as count").
		Where("activity_id = ? AND payment_status = ?", activityID, string(entity.PaymentStatusPaid)).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &adapter.PaidOrderTotals{
		Revenue: row.Revenue,
		Count:   row.Count,
	}, nil
}
