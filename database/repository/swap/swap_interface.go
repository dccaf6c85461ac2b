package swapRepo

import (
	"context"
	"errors"

	"slotswapper/models"
)

// ErrSlotUnavailable is returned when a proposal lost the race for one of
// its slots: the conditional relock found the slot missing, owned by the
// wrong user, or no longer SWAPPABLE at commit time.
var ErrSlotUnavailable = errors.New("slot is not available for swapping")

// ErrRequestNotFound is returned when no swap request matches the id for
// the responding user.
var ErrRequestNotFound = errors.New("swap request not found")

// ErrAlreadyResolved is returned when a response targets a request that has
// already reached a terminal status.
var ErrAlreadyResolved = errors.New("swap request already resolved")

// SwapRepository defines the persistence contract for swap requests,
// including the transactional propose/resolve operations that mutate the
// request and both referenced slots as one atomic unit.
type SwapRepository interface {
	GetByID(id string) (*models.SwapRequest, error)
	ProposeSwap(ctx context.Context, req *models.SwapRequest) error
	ResolveSwap(ctx context.Context, requestID, targetUserID string, accept bool) (*models.SwapRequest, error)
	ListIncoming(userID string) ([]models.SwapRequestView, error)
	ListOutgoing(userID string) ([]models.SwapRequestView, error)
}
