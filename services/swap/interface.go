package swap

import (
	"context"

	"slotswapper/models"
)

// SwapService is the slot-swap transaction engine plus its two read-only
// projections. All operations take the already-authenticated caller's user
// id; no credential checks happen here.
type SwapService interface {
	// ProposeSwap creates a PENDING swap request between the requester's
	// slot and another user's slot, relocking both slots to SWAP_PENDING.
	ProposeSwap(ctx context.Context, requesterUserID, mySlotID, theirSlotID string) (*models.SwapRequest, error)

	// RespondToSwap resolves a PENDING request as the target user. On
	// accept the slots exchange owners and become BUSY; on reject both
	// return to SWAPPABLE.
	RespondToSwap(ctx context.Context, targetUserID, requestID string, accept bool) (*models.SwapRequest, error)

	// ListSwappable returns the marketplace: every SWAPPABLE slot not
	// owned by the caller, joined with the owner's public identity.
	ListSwappable(ctx context.Context, userID string) ([]models.MarketplaceSlot, error)

	// ListRequests returns the caller's incoming and outgoing requests,
	// joined with both slots and the counterparty's public identity.
	ListRequests(ctx context.Context, userID string) (*models.SwapRequestInbox, error)
}
