package models

// SlotStatus is the availability state of a calendar slot.
type SlotStatus string

const (
	SlotBusy        SlotStatus = "BUSY"
	SlotSwappable   SlotStatus = "SWAPPABLE"
	SlotSwapPending SlotStatus = "SWAP_PENDING"
)

// Valid reports whether s is one of the known slot statuses.
func (s SlotStatus) Valid() bool {
	switch s {
	case SlotBusy, SlotSwappable, SlotSwapPending:
		return true
	}
	return false
}

// CanToggleTo reports whether an owner may move a slot from s to target
// directly. Owners only toggle between BUSY and SWAPPABLE; entering or
// leaving SWAP_PENDING is reserved for the swap engine.
func (s SlotStatus) CanToggleTo(target SlotStatus) bool {
	if s == SlotSwapPending || target == SlotSwapPending {
		return false
	}
	return s.Valid() && target.Valid()
}

// RequestStatus is the lifecycle state of a swap request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestRejected RequestStatus = "REJECTED"
)

// Valid reports whether r is one of the known request statuses.
func (r RequestStatus) Valid() bool {
	switch r {
	case RequestPending, RequestAccepted, RequestRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted from r.
func (r RequestStatus) Terminal() bool {
	return r == RequestAccepted || r == RequestRejected
}

// CanTransitionTo reports whether a request may move from r to target.
// The only legal transition is PENDING to a terminal status.
func (r RequestStatus) CanTransitionTo(target RequestStatus) bool {
	return r == RequestPending && target.Terminal()
}
