package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
)

// ClientRepository defines the interface for client persistence operations.
// Client creation and role assignment happen outside this service; orders
// only need to resolve existing client records.
type ClientRepository interface {
	// Create persists a new client record.
	Create(ctx context.Context, client *entity.Client) error

	// FindByID retrieves a client by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
}
