package event

import (
	"context"
	"errors"

	slotRepo "slotswapper/database/repository/slot"
	"slotswapper/models"
	"slotswapper/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultEventService implements EventService over the slot repository.
type DefaultEventService struct {
	Slots slotRepo.SlotRepository
}

// Create inserts a new slot for the owner. New slots always start BUSY;
// the owner offers them on the marketplace with a later status toggle.
func (s *DefaultEventService) Create(ctx context.Context, ownerID string, in CreateEventInput) (*models.Slot, error) {
	if in.Title == "" {
		return nil, NewInvalidArgumentError("title is required")
	}
	if !in.EndTime.After(in.StartTime) {
		return nil, NewInvalidArgumentError("end time must be after start time")
	}

	slot := &models.Slot{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Title:     in.Title,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Status:    models.SlotBusy,
	}
	if err := s.Slots.Create(slot); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("slot created",
		zap.String("slotId", slot.ID),
		zap.String("ownerId", ownerID),
	)
	return slot, nil
}

// List returns all slots owned by the caller.
func (s *DefaultEventService) List(ctx context.Context, ownerID string) ([]models.Slot, error) {
	slots, err := s.Slots.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []models.Slot{}
	}
	return slots, nil
}

// Update applies a partial update to a slot the caller owns. The status
// field accepts only the BUSY/SWAPPABLE toggle; a slot locked by a pending
// swap request rejects every update.
func (s *DefaultEventService) Update(ctx context.Context, ownerID, slotID string, in UpdateEventInput) (*models.Slot, error) {
	set := bson.M{}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, NewInvalidArgumentError("title cannot be empty")
		}
		set["title"] = *in.Title
	}
	if in.StartTime != nil {
		set["start_time"] = *in.StartTime
	}
	if in.EndTime != nil {
		set["end_time"] = *in.EndTime
	}
	if in.Status != nil {
		if *in.Status != models.SlotBusy && *in.Status != models.SlotSwappable {
			return nil, NewInvalidArgumentError("status can only be toggled between BUSY and SWAPPABLE")
		}
		set["status"] = *in.Status
	}
	if len(set) == 0 {
		return nil, NewInvalidArgumentError("no fields to update")
	}
	if in.StartTime != nil && in.EndTime != nil && !in.EndTime.After(*in.StartTime) {
		return nil, NewInvalidArgumentError("end time must be after start time")
	}

	if err := s.Slots.UpdateOwned(slotID, ownerID, set); err != nil {
		return nil, mapSlotError(err)
	}
	return s.Slots.GetByID(slotID)
}

// Delete removes a slot the caller owns. Deleting a slot referenced by a
// pending swap request is refused rather than cascading into the request.
func (s *DefaultEventService) Delete(ctx context.Context, ownerID, slotID string) error {
	if err := s.Slots.DeleteOwned(slotID, ownerID); err != nil {
		return mapSlotError(err)
	}

	utils.GetLogger().Info("slot deleted",
		zap.String("slotId", slotID),
		zap.String("ownerId", ownerID),
	)
	return nil
}

func mapSlotError(err error) error {
	if errors.Is(err, slotRepo.ErrNotFound) {
		return NewNotFoundError("slot not found")
	}
	if errors.Is(err, slotRepo.ErrSlotLocked) {
		return NewSlotLockedError("slot is locked by a pending swap request")
	}
	return err
}
