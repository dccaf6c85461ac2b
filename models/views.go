package models

import "time"

// MarketplaceSlot is a swappable slot joined with its owner's public
// identity, as returned by the marketplace listing.
type MarketplaceSlot struct {
	ID        string        `bson:"id" json:"id"`
	Title     string        `bson:"title" json:"title"`
	StartTime time.Time     `bson:"start_time" json:"startTime"`
	EndTime   time.Time     `bson:"end_time" json:"endTime"`
	Status    SlotStatus    `bson:"status" json:"status"`
	Owner     PublicProfile `bson:"owner" json:"owner"`
}

// SwapRequestView is a swap request joined with both slot records and the
// counterparty's public identity. Slot fields reflect current store state,
// not a snapshot taken at proposal time.
type SwapRequestView struct {
	ID            string        `bson:"id" json:"id"`
	Status        RequestStatus `bson:"status" json:"status"`
	CreatedAt     time.Time     `bson:"created_at" json:"createdAt"`
	RequesterSlot Slot          `bson:"requester_slot" json:"requesterSlot"`
	TargetSlot    Slot          `bson:"target_slot" json:"targetSlot"`
	Counterparty  PublicProfile `bson:"counterparty" json:"counterparty"`
}

// SwapRequestInbox groups a user's swap requests by direction.
type SwapRequestInbox struct {
	Incoming []SwapRequestView `json:"incoming"`
	Outgoing []SwapRequestView `json:"outgoing"`
}
