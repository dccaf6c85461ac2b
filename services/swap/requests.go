package swap

import (
	"context"

	"slotswapper/models"
)

// ListRequests returns the caller's swap requests grouped by direction.
// Joined slot records reflect current store state, so a resolved request
// may show its slots already re-toggled or re-swapped.
func (s *DefaultSwapService) ListRequests(ctx context.Context, userID string) (*models.SwapRequestInbox, error) {
	incoming, err := s.Swaps.ListIncoming(userID)
	if err != nil {
		return nil, err
	}
	outgoing, err := s.Swaps.ListOutgoing(userID)
	if err != nil {
		return nil, err
	}

	if incoming == nil {
		incoming = []models.SwapRequestView{}
	}
	if outgoing == nil {
		outgoing = []models.SwapRequestView{}
	}
	return &models.SwapRequestInbox{Incoming: incoming, Outgoing: outgoing}, nil
}
