package handlers

import (
	"net/http"

	"slotswapper/services/swap"
	"slotswapper/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SwapHandler exposes the swap engine and its projections.
type SwapHandler struct {
	Service swap.SwapService
}

func NewSwapHandler(svc swap.SwapService) *SwapHandler {
	return &SwapHandler{Service: svc}
}

// ProposeSwapHandler creates a swap request between the caller's slot and
// another user's slot.
func (h *SwapHandler) ProposeSwapHandler(c *gin.Context) {
	var input struct {
		MySlotID    string `json:"mySlotId" binding:"required"`
		TheirSlotID string `json:"theirSlotId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	req, err := h.Service.ProposeSwap(c.Request.Context(), authUserID(c), input.MySlotID, input.TheirSlotID)
	if err != nil {
		h.writeSwapError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": req.ID, "status": req.Status})
}

// RespondToSwapHandler resolves a pending request as accept or reject.
func (h *SwapHandler) RespondToSwapHandler(c *gin.Context) {
	var input struct {
		Accept *bool `json:"accept" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	req, err := h.Service.RespondToSwap(c.Request.Context(), authUserID(c), c.Param("requestId"), *input.Accept)
	if err != nil {
		h.writeSwapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": req.Status})
}

// ListSwappableHandler returns the marketplace of other users' slots.
func (h *SwapHandler) ListSwappableHandler(c *gin.Context) {
	slots, err := h.Service.ListSwappable(c.Request.Context(), authUserID(c))
	if err != nil {
		h.writeSwapError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// ListRequestsHandler returns the caller's incoming and outgoing requests.
func (h *SwapHandler) ListRequestsHandler(c *gin.Context) {
	inbox, err := h.Service.ListRequests(c.Request.Context(), authUserID(c))
	if err != nil {
		h.writeSwapError(c, err)
		return
	}
	c.JSON(http.StatusOK, inbox)
}

func (h *SwapHandler) writeSwapError(c *gin.Context, err error) {
	switch swap.ErrorCode(err) {
	case swap.CodeInvalidArgument:
		utils.JSONError(c, http.StatusBadRequest, "invalid swap proposal", err.Error())
	case swap.CodeSlotUnavailable:
		utils.JSONError(c, http.StatusBadRequest, "slot unavailable", err.Error())
	case swap.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, "swap request or slot not found", "")
	case swap.CodeInvalidState:
		utils.JSONError(c, http.StatusConflict, "swap request already resolved", "")
	default:
		getLogger(c).Error("swap operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal server error", "")
	}
}
