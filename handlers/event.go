package handlers

import (
	"net/http"

	"slotswapper/services/event"
	"slotswapper/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EventHandler exposes a user's own calendar slot endpoints.
type EventHandler struct {
	Service event.EventService
}

func NewEventHandler(svc event.EventService) *EventHandler {
	return &EventHandler{Service: svc}
}

// CreateEventHandler creates a new slot owned by the caller.
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	var input event.CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	slot, err := h.Service.Create(c.Request.Context(), authUserID(c), input)
	if err != nil {
		h.writeEventError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// ListEventsHandler lists the caller's slots.
func (h *EventHandler) ListEventsHandler(c *gin.Context) {
	slots, err := h.Service.List(c.Request.Context(), authUserID(c))
	if err != nil {
		h.writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// UpdateEventHandler applies a partial update, including the owner's
// BUSY/SWAPPABLE toggle.
func (h *EventHandler) UpdateEventHandler(c *gin.Context) {
	var input event.UpdateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	slot, err := h.Service.Update(c.Request.Context(), authUserID(c), c.Param("id"), input)
	if err != nil {
		h.writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// DeleteEventHandler deletes a slot the caller owns.
func (h *EventHandler) DeleteEventHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), authUserID(c), c.Param("id")); err != nil {
		h.writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *EventHandler) writeEventError(c *gin.Context, err error) {
	switch event.ErrorCode(err) {
	case event.CodeInvalidArgument:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case event.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, "event not found", "")
	case event.CodeSlotLocked:
		utils.JSONError(c, http.StatusConflict, "slot is locked by a pending swap request", "")
	default:
		getLogger(c).Error("event operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal server error", "")
	}
}
