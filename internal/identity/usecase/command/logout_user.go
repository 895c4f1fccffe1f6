package command

import (
	"fmt"

	"github.com/crismov/storefront/internal/identity/domain"
)

// LogoutUserHandler handles user logout command
type LogoutUserHandler struct {
	repo domain.UserRepository
}

// NewLogoutUserHandler creates a new logout user handler
func NewLogoutUserHandler(repo domain.UserRepository) *LogoutUserHandler {
	return &LogoutUserHandler{repo: repo}
}

// Handle clears the session pointer. The per-email user record is kept.
func (h *LogoutUserHandler) Handle() error {
	if err := h.repo.ClearSession(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
