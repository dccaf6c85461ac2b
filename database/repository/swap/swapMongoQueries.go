package swapRepo

import (
	"errors"
	"fmt"
	"time"

	"slotswapper/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a swap request by its unique ID.
func (repo *MongoSwapRepo) GetByID(id string) (*models.SwapRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var req models.SwapRequest
	if err := repo.requestColl.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to fetch swap request with id %s: %w", id, err)
	}
	return &req, nil
}

// ListIncoming retrieves requests targeting the given user, joined with
// both slots and the requester's public identity.
func (repo *MongoSwapRepo) ListIncoming(userID string) ([]models.SwapRequestView, error) {
	return repo.listViews(bson.M{"target_user_id": userID}, "requester_user_id")
}

// ListOutgoing retrieves requests created by the given user, joined with
// both slots and the target user's public identity.
func (repo *MongoSwapRepo) ListOutgoing(userID string) ([]models.SwapRequestView, error) {
	return repo.listViews(bson.M{"requester_user_id": userID}, "target_user_id")
}

// listViews runs the shared aggregation: match the direction, join both
// slot documents and the counterparty's identity. Slot documents reflect
// current store state, not a snapshot taken at proposal time.
func (repo *MongoSwapRepo) listViews(match bson.M, counterpartyField string) ([]models.SwapRequestView, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "slots",
			"localField":   "requester_slot_id",
			"foreignField": "id",
			"as":           "requester_slot",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "slots",
			"localField":   "target_slot_id",
			"foreignField": "id",
			"as":           "target_slot",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   counterpartyField,
			"foreignField": "id",
			"as":           "counterparty",
		}}},
		bson.D{{Key: "$unwind", Value: "$requester_slot"}},
		bson.D{{Key: "$unwind", Value: "$target_slot"}},
		bson.D{{Key: "$unwind", Value: "$counterparty"}},
		bson.D{{Key: "$project", Value: bson.M{
			"id":                 1,
			"status":             1,
			"created_at":         1,
			"requester_slot":     1,
			"target_slot":        1,
			"counterparty.id":    1,
			"counterparty.name":  1,
			"counterparty.email": 1,
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"created_at": -1}}},
	}

	cursor, err := repo.requestColl.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list swap requests: %w", err)
	}
	defer cursor.Close(ctx)

	var views []models.SwapRequestView
	if err := cursor.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("failed to decode swap requests: %w", err)
	}
	return views, nil
}
