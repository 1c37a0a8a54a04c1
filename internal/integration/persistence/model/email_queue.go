package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
)

// EmailQueueModel represents the email_queue table in the database.
type EmailQueueModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RecipientEmail string     `gorm:"type:varchar(255);not null"`
	RecipientName  string     `gorm:"type:varchar(255)"`
	Subject        string     `gorm:"type:varchar(255);not null"`
	Body           string     `gorm:"type:text;not null"`
	Status         string     `gorm:"type:varchar(10);not null;index"`
	Attempts       int        `gorm:"not null;default:0"`
	LastError      string     `gorm:"type:text"`
	SentAt         *time.Time `gorm:"type:timestamp"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time  `gorm:"not null"`
}

// TableName returns the table name for the EmailQueueModel.
func (EmailQueueModel) TableName() string {
	return "email_queue"
}

// ToEntity converts an EmailQueueModel to a domain EmailJob entity.
func (m *EmailQueueModel) ToEntity() *entity.EmailJob {
	return &entity.EmailJob{
		ID:             m.ID,
		RecipientEmail: m.RecipientEmail,
		RecipientName:  m.RecipientName,
		Subject:        m.Subject,
		Body:           m.Body,
		Status:         entity.EmailStatus(m.Status),
		Attempts:       m.Attempts,
		LastError:      m.LastError,
		SentAt:         m.SentAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// EmailJobFromEntity creates an EmailQueueModel from a domain EmailJob entity.
func EmailJobFromEntity(job *entity.EmailJob) *EmailQueueModel {
	return &EmailQueueModel{
		ID:             job.ID,
		RecipientEmail: job.RecipientEmail,
		RecipientName:  job.RecipientName,
		Subject:        job.Subject,
		Body:           job.Body,
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		LastError:      job.LastError,
		SentAt:         job.SentAt,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
	}
}
