package adapter

import (
	"context"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
)

// EmailQueueRepository defines the interface for email queue persistence operations.
type EmailQueueRepository interface {
	// Enqueue adds a new email job to the queue.
	Enqueue(ctx context.Context, job *entity.EmailJob) error

	// FindPending retrieves pending jobs ordered by creation time.
	FindPending(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update saves delivery state changes of a job.
	Update(ctx context.Context, job *entity.EmailJob) error
}
