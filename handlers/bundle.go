package handlers

import (
	userRepo "slotswapper/database/repository/user"
)

// HandlerBundle groups the assembled handlers plus the user repository the
// auth middleware needs for cache-miss lookups.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth  *AuthHandler
	Event *EventHandler
	Swap  *SwapHandler
}
