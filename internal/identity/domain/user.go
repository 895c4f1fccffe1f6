package domain

import "time"

// AnonymousUserID is the owner sentinel for actions taken while logged out
const AnonymousUserID = "anon"

// User is a lazily created identity record, keyed by email. This is mock
// identity: the password is stored hashed for record fidelity but is never
// verified at login.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Public returns a copy safe to hand to callers, without the password hash.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// Session is the persisted "who is logged in" pointer, distinct from the
// underlying per-email user records.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// UserRepository defines the contract for identity persistence.
type UserRepository interface {
	FindByEmail(email string) (*User, bool)
	Save(user User) error
	SetSession(user User, token string) error
	ClearSession() error
	CurrentUser() (*User, bool)
	Token() (string, bool)
}
