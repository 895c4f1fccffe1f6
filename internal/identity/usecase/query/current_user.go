package query

import (
	"github.com/crismov/storefront/internal/identity/domain"
	"github.com/crismov/storefront/pkg/auth"
)

// CurrentUserHandler handles the current user query
type CurrentUserHandler struct {
	repo domain.UserRepository
}

// NewCurrentUserHandler creates a new current user handler
func NewCurrentUserHandler(repo domain.UserRepository) *CurrentUserHandler {
	return &CurrentUserHandler{repo: repo}
}

// Handle resolves the current user. A valid bearer token resolves its
// subject directly; otherwise the persisted session pointer decides, so
// clients without a token keep working. Returns nil when nobody is logged
// in or the session token is gone.
func (h *CurrentUserHandler) Handle(bearerToken string) *domain.User {
	if bearerToken != "" {
		if claims, err := auth.ValidateToken(bearerToken); err == nil {
			if user, ok := h.repo.FindByEmail(claims.Email); ok {
				public := user.Public()
				return &public
			}
		}
	}

	if _, ok := h.repo.Token(); !ok {
		return nil
	}
	user, ok := h.repo.CurrentUser()
	if !ok {
		return nil
	}
	public := user.Public()
	return &public
}
