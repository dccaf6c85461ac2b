package swap

import (
	"context"
	"errors"
	"time"

	slotRepo "slotswapper/database/repository/slot"
	swapRepo "slotswapper/database/repository/swap"
	"slotswapper/models"
	"slotswapper/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProposeSwap validates both slots and commits the proposal. The reads
// here give friendly errors for the common cases; the authoritative check
// is the conditional relock inside the repository transaction, which is
// what decides races between concurrent proposals.
func (s *DefaultSwapService) ProposeSwap(ctx context.Context, requesterUserID, mySlotID, theirSlotID string) (*models.SwapRequest, error) {
	logger := utils.GetLogger()

	if mySlotID == "" || theirSlotID == "" {
		return nil, NewInvalidArgumentError("both slot ids are required")
	}
	if mySlotID == theirSlotID {
		return nil, NewInvalidArgumentError("cannot swap a slot with itself")
	}

	mySlot, err := s.Slots.GetByID(mySlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrNotFound) {
			return nil, NewNotFoundError("your slot was not found")
		}
		return nil, err
	}
	if mySlot.OwnerID != requesterUserID {
		return nil, NewNotFoundError("your slot was not found")
	}
	if mySlot.Status != models.SlotSwappable {
		return nil, NewSlotUnavailableError("your slot is not offered for swapping")
	}

	theirSlot, err := s.Slots.GetByID(theirSlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrNotFound) {
			return nil, NewNotFoundError("the requested slot was not found")
		}
		return nil, err
	}
	if theirSlot.OwnerID == requesterUserID {
		return nil, NewInvalidArgumentError("cannot swap between your own slots")
	}
	if theirSlot.Status != models.SlotSwappable {
		return nil, NewSlotUnavailableError("the requested slot is not available for swapping")
	}

	req := &models.SwapRequest{
		ID:              uuid.New().String(),
		RequesterUserID: requesterUserID,
		RequesterSlotID: mySlotID,
		TargetUserID:    theirSlot.OwnerID,
		TargetSlotID:    theirSlotID,
		Status:          models.RequestPending,
		CreatedAt:       time.Now(),
	}

	if err := s.Swaps.ProposeSwap(ctx, req); err != nil {
		if errors.Is(err, swapRepo.ErrSlotUnavailable) {
			return nil, NewSlotUnavailableError("one or both slots are no longer available")
		}
		return nil, err
	}

	logger.Info("swap proposed",
		zap.String("requestId", req.ID),
		zap.String("requesterUserId", requesterUserID),
		zap.String("targetUserId", req.TargetUserID),
	)
	return req, nil
}
