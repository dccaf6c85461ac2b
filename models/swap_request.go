package models

import "time"

// SwapRequest represents a bilateral proposal to exchange ownership of two
// slots between two users. Exactly one PENDING request may reference a given
// slot at any time; the referenced slots are held in SWAP_PENDING until the
// target user resolves the request.
type SwapRequest struct {
	ID              string        `bson:"id" json:"id"` // Unique request identifier (UUID)
	RequesterUserID string        `bson:"requester_user_id" json:"requesterUserId"`
	RequesterSlotID string        `bson:"requester_slot_id" json:"requesterSlotId"`
	TargetUserID    string        `bson:"target_user_id" json:"targetUserId"`
	TargetSlotID    string        `bson:"target_slot_id" json:"targetSlotId"`
	Status          RequestStatus `bson:"status" json:"status"` // PENDING, ACCEPTED or REJECTED
	CreatedAt       time.Time     `bson:"created_at" json:"createdAt"`
}
