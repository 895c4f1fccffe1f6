package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crismov/storefront/internal/identity/domain"
	"github.com/crismov/storefront/pkg/auth"
)

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Email    string
	Password string
	Name     string
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register command. Registering an email that already
// has a record overwrites it; the session pointer moves to the new user.
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*LoginResponse, error) {
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(cmd.Email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	// Hash kept on the record for fidelity with a real backend; login
	// never reads it back (mock identity is keyed by email only).
	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.New().String()[:8],
		Email:        cmd.Email,
		Name:         cmd.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := h.repo.Save(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := h.repo.SetSession(user, token); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	public := user.Public()
	return &LoginResponse{Token: token, User: &public}, nil
}
