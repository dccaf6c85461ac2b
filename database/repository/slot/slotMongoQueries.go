package slotRepo

import (
	"fmt"
	"time"

	"slotswapper/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListByOwner retrieves all slots owned by the given user.
func (r *MongoSlotRepo) ListByOwner(ownerID string) ([]models.Slot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list slots for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots for owner %s: %w", ownerID, err)
	}
	return slots, nil
}

// ListSwappable retrieves every SWAPPABLE slot not owned by excludeOwnerID,
// joined with the owner's public identity.
func (r *MongoSlotRepo) ListSwappable(excludeOwnerID string) ([]models.MarketplaceSlot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"status":   models.SlotSwappable,
			"owner_id": bson.M{"$ne": excludeOwnerID},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "owner_id",
			"foreignField": "id",
			"as":           "owner",
		}}},
		bson.D{{Key: "$unwind", Value: "$owner"}},
		bson.D{{Key: "$project", Value: bson.M{
			"id":          1,
			"title":       1,
			"start_time":  1,
			"end_time":    1,
			"status":      1,
			"owner.id":    1,
			"owner.name":  1,
			"owner.email": 1,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list swappable slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.MarketplaceSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode swappable slots: %w", err)
	}
	return slots, nil
}
