package swap

import (
	slotRepo "slotswapper/database/repository/slot"
	swapRepo "slotswapper/database/repository/swap"
)

// DefaultSwapService implements SwapService over the slot and swap-request
// repositories. Atomicity of the multi-record mutations lives in the swap
// repository's transactions; this layer validates preconditions and maps
// store failures onto the engine's error taxonomy.
type DefaultSwapService struct {
	Slots slotRepo.SlotRepository
	Swaps swapRepo.SwapRepository
}
