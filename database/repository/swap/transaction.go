package swapRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slotswapper/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProposeSwap inserts a PENDING swap request and moves both referenced
// slots from SWAPPABLE to SWAP_PENDING inside one transaction. Each slot
// write is conditioned on the slot still being SWAPPABLE (and still owned
// by the expected user), so of two concurrent proposals touching the same
// slot exactly one commits; the loser gets ErrSlotUnavailable.
func (repo *MongoSwapRepo) ProposeSwap(ctx context.Context, req *models.SwapRequest) error {
	client := repo.requestColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		now := time.Now()

		res, err := repo.slotColl.UpdateOne(sc,
			bson.M{
				"id":       req.RequesterSlotID,
				"owner_id": req.RequesterUserID,
				"status":   models.SlotSwappable,
			},
			bson.M{"$set": bson.M{"status": models.SlotSwapPending, "updated_at": now}},
		)
		if err != nil {
			return fmt.Errorf("relock requester slot failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrSlotUnavailable
		}

		res, err = repo.slotColl.UpdateOne(sc,
			bson.M{
				"id":       req.TargetSlotID,
				"owner_id": req.TargetUserID,
				"status":   models.SlotSwappable,
			},
			bson.M{"$set": bson.M{"status": models.SlotSwapPending, "updated_at": now}},
		)
		if err != nil {
			return fmt.Errorf("relock target slot failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrSlotUnavailable
		}

		if _, err := repo.requestColl.InsertOne(sc, req); err != nil {
			return fmt.Errorf("insert swap request failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrSlotUnavailable) {
			return ErrSlotUnavailable
		}
		return fmt.Errorf("propose swap transaction failed: %w", err)
	}

	return nil
}

// ResolveSwap moves a PENDING request to its terminal status and applies
// the corresponding slot mutations inside one transaction. On accept the
// two slots exchange owners and become BUSY; on reject both return to
// SWAPPABLE with ownership unchanged. The terminal flip is conditioned on
// the request still being PENDING, so a second response on the same
// request gets ErrAlreadyResolved and causes no mutation.
func (repo *MongoSwapRepo) ResolveSwap(ctx context.Context, requestID, targetUserID string, accept bool) (*models.SwapRequest, error) {
	client := repo.requestColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var req models.SwapRequest

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{"id": requestID, "target_user_id": targetUserID}
		if err := repo.requestColl.FindOne(sc, filter).Decode(&req); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("fetch swap request failed: %w", err)
		}

		terminal := models.RequestRejected
		if accept {
			terminal = models.RequestAccepted
		}
		if !req.Status.CanTransitionTo(terminal) {
			return ErrAlreadyResolved
		}

		res, err := repo.requestColl.UpdateOne(sc,
			bson.M{"id": requestID, "target_user_id": targetUserID, "status": models.RequestPending},
			bson.M{"$set": bson.M{"status": terminal}},
		)
		if err != nil {
			return fmt.Errorf("update swap request status failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrAlreadyResolved
		}
		req.Status = terminal

		now := time.Now()
		if accept {
			if _, err := repo.slotColl.UpdateOne(sc,
				bson.M{"id": req.RequesterSlotID},
				bson.M{"$set": bson.M{"owner_id": req.TargetUserID, "status": models.SlotBusy, "updated_at": now}},
			); err != nil {
				return fmt.Errorf("transfer requester slot failed: %w", err)
			}
			if _, err := repo.slotColl.UpdateOne(sc,
				bson.M{"id": req.TargetSlotID},
				bson.M{"$set": bson.M{"owner_id": req.RequesterUserID, "status": models.SlotBusy, "updated_at": now}},
			); err != nil {
				return fmt.Errorf("transfer target slot failed: %w", err)
			}
			return nil
		}

		if _, err := repo.slotColl.UpdateMany(sc,
			bson.M{"id": bson.M{"$in": []string{req.RequesterSlotID, req.TargetSlotID}}},
			bson.M{"$set": bson.M{"status": models.SlotSwappable, "updated_at": now}},
		); err != nil {
			return fmt.Errorf("release slots failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrRequestNotFound) || errors.Is(err, ErrAlreadyResolved) {
			return nil, err
		}
		return nil, fmt.Errorf("resolve swap transaction failed: %w", err)
	}

	return &req, nil
}
