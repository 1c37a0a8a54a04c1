package dto

import (
	"time"

	"github.com/luismonroy1971/actividad-sub000/internal/application/usecase/activity"
)

// CreateActivityOptionRequest represents an option in the activity creation body.
type CreateActivityOptionRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=255"`
	Price float64 `json:"price"`
}

// CreateActivityRequest represents the request body for activity creation.
type CreateActivityRequest struct {
	Title       string                        `json:"title" binding:"required,min=1,max=255"`
	Description string                        `json:"description,omitempty" binding:"omitempty,max=1000"`
	Options     []CreateActivityOptionRequest `json:"options,omitempty"`
}

// UpdateActivityStatusRequest represents the request body for a status change.
type UpdateActivityStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active finished cancelled"`
}

// AddOptionRequest represents the request body for adding an option.
type AddOptionRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=255"`
	Price float64 `json:"price"`
}

// UpdateOptionRequest represents the request body for updating an option.
type UpdateOptionRequest struct {
	Name  *string  `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Price *float64 `json:"price,omitempty"`
}

// OptionResponse represents an option in API responses.
type OptionResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActivityResponse represents an activity in API responses.
type ActivityResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	Options     []OptionResponse `json:"options"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ActivityListResponse represents the response for listing activities.
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// ToOptionResponse converts an option output to its API representation.
func ToOptionResponse(o *activity.OptionOutput) OptionResponse {
	return OptionResponse{
		ID:        o.ID.String(),
		Name:      o.Name,
		Price:     o.Price.StringFixed(2),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// ToActivityResponse converts an activity output to its API representation.
func ToActivityResponse(a *activity.ActivityOutput) ActivityResponse {
	options := make([]OptionResponse, len(a.Options))
	for i, o := range a.Options {
		options[i] = ToOptionResponse(o)
	}

	return ActivityResponse{
		ID:          a.ID.String(),
		Title:       a.Title,
		Description: a.Description,
		Status:      string(a.Status),
		Options:     options,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToActivityListResponse converts a list of activity outputs.
func ToActivityListResponse(activities []*activity.ActivityOutput) ActivityListResponse {
	responses := make([]ActivityResponse, len(activities))
	for i, a := range activities {
		responses[i] = ToActivityResponse(a)
	}
	return ActivityListResponse{Activities: responses}
}
