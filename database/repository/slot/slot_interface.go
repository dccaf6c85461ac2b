package slotRepo

import (
	"errors"

	"slotswapper/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no slot matches the id (or the id/owner pair).
var ErrNotFound = errors.New("slot not found")

// ErrSlotLocked is returned when a write was refused because the slot is
// held in SWAP_PENDING by an unresolved swap request.
var ErrSlotLocked = errors.New("slot is locked by a pending swap request")

// SlotRepository defines the persistence contract for calendar slots.
// Owner-scoped writes (UpdateOwned, DeleteOwned) are conditional: they never
// touch a slot in SWAP_PENDING, so the swap engine keeps exclusive control
// of locked slots.
type SlotRepository interface {
	Create(slot *models.Slot) error
	GetByID(id string) (*models.Slot, error)
	ListByOwner(ownerID string) ([]models.Slot, error)
	ListSwappable(excludeOwnerID string) ([]models.MarketplaceSlot, error)
	UpdateOwned(id, ownerID string, set bson.M) error
	DeleteOwned(id, ownerID string) error
}
