package slotRepo

import (
	"errors"
	"fmt"
	"time"

	"slotswapper/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new slot document.
func (r *MongoSlotRepo) Create(slot *models.Slot) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	slot.CreatedAt = now
	slot.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, slot)
	if err != nil {
		return fmt.Errorf("failed to create slot: %w", err)
	}
	return nil
}

// GetByID retrieves a slot by its unique ID.
func (r *MongoSlotRepo) GetByID(id string) (*models.Slot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var slot models.Slot
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&slot); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch slot with id %s: %w", id, err)
	}
	return &slot, nil
}

// UpdateOwned applies a $set update to a slot owned by ownerID. The update
// is refused while the slot is SWAP_PENDING.
func (r *MongoSlotRepo) UpdateOwned(id, ownerID string, set bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set["updated_at"] = time.Now()
	filter := bson.M{
		"id":       id,
		"owner_id": ownerID,
		"status":   bson.M{"$ne": models.SlotSwapPending},
	}

	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update slot with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return r.classifyMiss(id, ownerID)
	}
	return nil
}

// DeleteOwned removes a slot owned by ownerID. A slot referenced by a
// pending swap request stays in SWAP_PENDING and cannot be deleted.
func (r *MongoSlotRepo) DeleteOwned(id, ownerID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":       id,
		"owner_id": ownerID,
		"status":   bson.M{"$ne": models.SlotSwapPending},
	}

	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete slot with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return r.classifyMiss(id, ownerID)
	}
	return nil
}

// classifyMiss distinguishes a conditional write that matched nothing:
// either the slot/owner pair does not exist, or the slot is swap-locked.
func (r *MongoSlotRepo) classifyMiss(id, ownerID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"id": id, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("failed to check slot with id %s: %w", id, err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return ErrSlotLocked
}
