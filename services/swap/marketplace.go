package swap

import (
	"context"

	"slotswapper/models"
)

// ListSwappable returns every slot currently offered for exchange by other
// users. The caller's own slots are always excluded.
func (s *DefaultSwapService) ListSwappable(ctx context.Context, userID string) ([]models.MarketplaceSlot, error) {
	slots, err := s.Slots.ListSwappable(userID)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []models.MarketplaceSlot{}
	}
	return slots, nil
}
