package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a participant who places orders within activities.
// The role and activity scope stored here are the system of record the
// auth layer encodes into access tokens.
type Client struct {
	ID                 uuid.UUID
	Name               string
	Email              string
	Role               CallerRole
	AllowedActivityIDs []uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewClient creates a new Client entity with the client role.
func NewClient(name, email string) *Client {
	now := time.Now().UTC()

	return &Client{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Role:      RoleClient,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
