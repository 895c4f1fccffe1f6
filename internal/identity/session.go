package identity

import "github.com/crismov/storefront/internal/identity/domain"

// SessionReader adapts the identity repository to the narrow "who is logged
// in" view other modules depend on.
type SessionReader struct {
	repo domain.UserRepository
}

// NewSessionReader returns a session view over the identity repository.
func NewSessionReader(repo domain.UserRepository) *SessionReader {
	return &SessionReader{repo: repo}
}

// CurrentUser returns the current user's id, if anyone is logged in.
func (s *SessionReader) CurrentUser() (string, bool) {
	user, ok := s.repo.CurrentUser()
	if !ok {
		return "", false
	}
	return user.ID, true
}

// Current returns the current user's id and display name, if anyone is
// logged in.
func (s *SessionReader) Current() (id, name string, ok bool) {
	user, found := s.repo.CurrentUser()
	if !found {
		return "", "", false
	}
	return user.ID, user.Name, true
}
