// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
)

// ActivityModel represents the activities table in the database.
type ActivityModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Options []OptionModel `gorm:"foreignKey:ActivityID;references:ID"`
}

// TableName returns the table name for the ActivityModel.
func (ActivityModel) TableName() string {
	return "activities"
}

// ToEntity converts an ActivityModel to a domain Activity entity.
func (m *ActivityModel) ToEntity() *entity.Activity {
	options := make([]*entity.Option, len(m.Options))
	for i := range m.Options {
		options[i] = m.Options[i].ToEntity()
	}

	return &entity.Activity{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Status:      entity.ActivityStatus(m.Status),
		Options:     options,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ActivityFromEntity creates an ActivityModel from a domain Activity entity.
func ActivityFromEntity(activity *entity.Activity) *ActivityModel {
	options := make([]OptionModel, len(activity.Options))
	for i, o := range activity.Options {
		options[i] = *OptionFromEntity(o)
	}

	return &ActivityModel{
		ID:          activity.ID,
		Title:       activity.Title,
		Description: activity.Description,
		Status:      string(activity.Status),
		CreatedAt:   activity.CreatedAt,
		UpdatedAt:   activity.UpdatedAt,
		Options:     options,
	}
}
