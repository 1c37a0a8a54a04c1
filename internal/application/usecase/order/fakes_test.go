package order

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

// In-memory fakes shared by the order use case tests.

type fakeActivityRepo struct {
	activities map[uuid.UUID]*entity.Activity
}

func newFakeActivityRepo(activities ...*entity.Activity) *fakeActivityRepo {
	repo := &fakeActivityRepo{activities: make(map[uuid.UUID]*entity.Activity)}
	for _, a := range activities {
		repo.activities[a.ID] = a
	}
	return repo
}

func (r *fakeActivityRepo) Create(ctx context.Context, activity *entity.Activity) error {
	r.activities[activity.ID] = activity
	return nil
}

func (r *fakeActivityRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	activity, ok := r.activities[id]
	if !ok {
		return nil, domainerror.ErrActivityNotFound
	}
	return activity, nil
}

func (r *fakeActivityRepo) FindAll(ctx context.Context) ([]*entity.Activity, error) {
	activities := make([]*entity.Activity, 0, len(r.activities))
	for _, a := range r.activities {
		activities = append(activities, a)
	}
	return activities, nil
}

func (r *fakeActivityRepo) Update(ctx context.Context, activity *entity.Activity) error {
	r.activities[activity.ID] = activity
	return nil
}

type fakeClientRepo struct {
	clients map[uuid.UUID]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	repo := &fakeClientRepo{clients: make(map[uuid.UUID]*entity.Client)}
	for _, c := range clients {
		repo.clients[c.ID] = c
	}
	return repo
}

func (r *fakeClientRepo) Create(ctx context.Context, client *entity.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, domainerror.ErrClientNotFound
	}
	return client, nil
}

type fakeOptionRepo struct {
	options map[uuid.UUID]*entity.Option
}

func newFakeOptionRepo(options ...*entity.Option) *fakeOptionRepo {
	repo := &fakeOptionRepo{options: make(map[uuid.UUID]*entity.Option)}
	for _, o := range options {
		repo.options[o.ID] = o
	}
	return repo
}

func (r *fakeOptionRepo) Create(ctx context.Context, option *entity.Option) error {
	r.options[option.ID] = option
	return nil
}

func (r *fakeOptionRepo) FindByID(ctx context.Context, activityID, optionID uuid.UUID) (*entity.Option, error) {
	option, ok := r.options[optionID]
	if !ok || option.ActivityID != activityID {
		return nil, domainerror.ErrOptionNotFound
	}
	return option, nil
}

func (r *fakeOptionRepo) Update(ctx context.Context, option *entity.Option) error {
	r.options[option.ID] = option
	return nil
}

func (r *fakeOptionRepo) Delete(ctx context.Context, activityID, optionID uuid.UUID) error {
	delete(r.options, optionID)
	return nil
}

// fakeOrderRepo mirrors the database's merge-on-conflict behavior under a
// lock, so concurrency tests exercise the same guarantees.
type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, domainerror.ErrOrderNotFound
	}
	copy := *order
	return &copy, nil
}

func (r *fakeOrderRepo) FindByTriple(ctx context.Context, activityID, clientID, optionID uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findByTripleLocked(activityID, clientID, optionID)
}

func (r *fakeOrderRepo) findByTripleLocked(activityID, clientID, optionID uuid.UUID) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.ActivityID == activityID && o.ClientID == clientID && o.OptionID == optionID {
			copy := *o
			return &copy, nil
		}
	}
	return nil, domainerror.ErrOrderNotFound
}

func (r *fakeOrderRepo) Upsert(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.findByTripleLocked(order.ActivityID, order.ClientID, order.OptionID)
	if err == nil {
		stored := r.orders[existing.ID]
		stored.Quantity += order.Quantity
		stored.TotalCost = stored.UnitCost.Mul(decimal.NewFromInt(int64(stored.Quantity)))
		copy := *stored
		return &copy, nil
	}

	stored := *order
	r.orders[order.ID] = &stored
	copy := stored
	return &copy, nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; !ok {
		return domainerror.ErrOrderNotFound
	}
	// The unique triple index rejects a write that collides with another row.
	for _, o := range r.orders {
		if o.ID != order.ID && o.ActivityID == order.ActivityID && o.ClientID == order.ClientID && o.OptionID == order.OptionID {
			return domainerror.ErrOrderTripleExists
		}
	}
	copy := *order
	r.orders[order.ID] = &copy
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return domainerror.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) FindByActivity(ctx context.Context, activityID uuid.UUID) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var orders []*entity.Order
	for _, o := range r.orders {
		if o.ActivityID == activityID {
			copy := *o
			orders = append(orders, &copy)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var orders []*entity.Order
	for _, o := range r.orders {
		if o.ClientID == clientID {
			copy := *o
			orders = append(orders, &copy)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) PaidTotals(ctx context.Context, activityID uuid.UUID) (*adapter.PaidOrderTotals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	totals := &adapter.PaidOrderTotals{Revenue: decimal.Zero}
	for _, o := range r.orders {
		if o.ActivityID == activityID && o.PaymentStatus == entity.PaymentStatusPaid {
			totals.Revenue = totals.Revenue.Add(o.TotalCost)
			totals.Count++
		}
	}
	return totals, nil
}

type fakeEmailQueue struct {
	mu   sync.Mutex
	jobs []*entity.EmailJob
}

func (q *fakeEmailQueue) Enqueue(ctx context.Context, job *entity.EmailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeEmailQueue) FindPending(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var pending []*entity.EmailJob
	for _, j := range q.jobs {
		if j.Status == entity.EmailStatusPending && len(pending) < limit {
			pending = append(pending, j)
		}
	}
	return pending, nil
}

func (q *fakeEmailQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	return nil
}

func adminCaller() entity.Caller {
	return entity.Caller{Role: entity.RoleAdmin}
}

func clientCaller(clientID uuid.UUID) entity.Caller {
	return entity.Caller{Role: entity.RoleClient, ClientID: &clientID}
}
