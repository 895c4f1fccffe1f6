package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crismov/storefront/internal/identity/domain"
	"github.com/crismov/storefront/pkg/auth"
)

// LoginUserCommand represents the command to log a user in
type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// LoginUserHandler handles user login command
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle executes the login command. Identity is keyed by email alone: the
// password is accepted unconditionally and a user record is created lazily
// on first login with a given email.
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*LoginResponse, error) {
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(cmd.Email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	user, ok := h.repo.FindByEmail(cmd.Email)
	if !ok {
		created := domain.User{
			ID:        uuid.New().String()[:8],
			Email:     cmd.Email,
			Name:      strings.SplitN(cmd.Email, "@", 2)[0],
			CreatedAt: time.Now(),
		}
		if err := h.repo.Save(created); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		user = &created
	}

	token, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := h.repo.SetSession(*user, token); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	public := user.Public()
	return &LoginResponse{Token: token, User: &public}, nil
}
