package swap

import (
	"context"
	"errors"

	swapRepo "slotswapper/database/repository/swap"
	"slotswapper/models"
	"slotswapper/utils"

	"go.uber.org/zap"
)

// RespondToSwap resolves a pending request as the target user. The
// repository transaction flips the request to its terminal status and
// mutates both slots as one unit; responding twice leaves the second call
// with an invalidState failure and no side effects.
func (s *DefaultSwapService) RespondToSwap(ctx context.Context, targetUserID, requestID string, accept bool) (*models.SwapRequest, error) {
	logger := utils.GetLogger()

	if requestID == "" {
		return nil, NewInvalidArgumentError("request id is required")
	}

	req, err := s.Swaps.ResolveSwap(ctx, requestID, targetUserID, accept)
	if err != nil {
		if errors.Is(err, swapRepo.ErrRequestNotFound) {
			return nil, NewNotFoundError("swap request not found")
		}
		if errors.Is(err, swapRepo.ErrAlreadyResolved) {
			return nil, NewInvalidStateError("swap request is already resolved")
		}
		return nil, err
	}

	logger.Info("swap resolved",
		zap.String("requestId", req.ID),
		zap.String("status", string(req.Status)),
	)
	return req, nil
}
