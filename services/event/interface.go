package event

import (
	"context"
	"time"

	"slotswapper/models"
)

// CreateEventInput carries the fields for a new calendar slot.
type CreateEventInput struct {
	Title     string    `json:"title" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

// UpdateEventInput carries a partial update. Nil fields are untouched.
// Status accepts only the owner toggle between BUSY and SWAPPABLE.
type UpdateEventInput struct {
	Title     *string            `json:"title"`
	StartTime *time.Time         `json:"startTime"`
	EndTime   *time.Time         `json:"endTime"`
	Status    *models.SlotStatus `json:"status"`
}

// EventService manages a user's own calendar slots. Slots enter the swap
// engine's domain once SWAP_PENDING; every write here refuses locked slots.
type EventService interface {
	Create(ctx context.Context, ownerID string, in CreateEventInput) (*models.Slot, error)
	List(ctx context.Context, ownerID string) ([]models.Slot, error)
	Update(ctx context.Context, ownerID, slotID string, in UpdateEventInput) (*models.Slot, error)
	Delete(ctx context.Context, ownerID, slotID string) error
}
