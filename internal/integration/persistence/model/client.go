package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
)

// ClientModel represents the clients table in the database.
type ClientModel struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name               string         `gorm:"type:varchar(255);not null"`
	Email              string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role               string         `gorm:"type:varchar(20);not null"`
	AllowedActivityIDs pq.StringArray `gorm:"type:text[]"`
	CreatedAt          time.Time      `gorm:"not null"`
	UpdatedAt          time.Time      `gorm:"not null"`
}

// TableName returns the table name for the ClientModel.
func (ClientModel) TableName() string {
	return "clients"
}

// ToEntity converts a ClientModel to a domain Client entity. Malformed IDs
// in the allowed list are skipped rather than failing the whole row.
func (m *ClientModel) ToEntity() *entity.Client {
	allowed := make([]uuid.UUID, 0, len(m.AllowedActivityIDs))
	for _, raw := range m.AllowedActivityIDs {
		if id, err := uuid.Parse(raw); err == nil {
			allowed = append(allowed, id)
		}
	}

	return &entity.Client{
		ID:                 m.ID,
		Name:               m.Name,
		Email:              m.Email,
		Role:               entity.CallerRole(m.Role),
		AllowedActivityIDs: allowed,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// ClientFromEntity creates a ClientModel from a domain Client entity.
func ClientFromEntity(client *entity.Client) *ClientModel {
	allowed := make(pq.StringArray, len(client.AllowedActivityIDs))
	for i, id := range client.AllowedActivityIDs {
		allowed[i] = id.String()
	}

	return &ClientModel{
		ID:                 client.ID,
		Name:               client.Name,
		Email:              client.Email,
		Role:               string(client.Role),
		AllowedActivityIDs: allowed,
		CreatedAt:          client.CreatedAt,
		UpdatedAt:          client.UpdatedAt,
	}
}
