package models

import "time"

// Slot represents a user-owned calendar interval that can be offered for
// exchange on the marketplace. StartTime must precede EndTime; overlaps
// between a user's slots are not checked.
type Slot struct {
	ID        string     `bson:"id" json:"id"` // Unique slot identifier (UUID)
	OwnerID   string     `bson:"owner_id" json:"ownerId"`
	Title     string     `bson:"title" json:"title"`
	StartTime time.Time  `bson:"start_time" json:"startTime"`
	EndTime   time.Time  `bson:"end_time" json:"endTime"`
	Status    SlotStatus `bson:"status" json:"status"` // BUSY, SWAPPABLE or SWAP_PENDING
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updatedAt"`
}
