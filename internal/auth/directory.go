package auth

import (
	"errors"

	"bookcatalog/internal/entity"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; callers must not learn which.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated means no identity owns the presented token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the resolved identity lacks the required capability.
	ErrForbidden = errors.New("forbidden")
)

// Directory resolves bearer tokens and username/password pairs against a
// fixed identity set supplied at construction. It holds no mutable state
// and is safe for concurrent use.
type Directory struct {
	byUsername map[string]entity.User
	byToken    map[string]entity.User
}

// NewDirectory builds a directory from the identity list. Later duplicates
// of a username or token are ignored.
func NewDirectory(users []entity.User) *Directory {
	d := &Directory{
		byUsername: make(map[string]entity.User, len(users)),
		byToken:    make(map[string]entity.User, len(users)),
	}
	for _, u := range users {
		if _, ok := d.byUsername[u.Username]; ok {
			continue
		}
		if _, ok := d.byToken[u.Token]; ok {
			continue
		}
		d.byUsername[u.Username] = u
		d.byToken[u.Token] = u
	}
	return d
}

// Authenticate checks a username/password pair and returns the identity's
// fixed token. No new tokens are minted at runtime.
func (d *Directory) Authenticate(username, password string) (string, error) {
	u, ok := d.byUsername[username]
	if !ok || !VerifyPassword(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return u.Token, nil
}

// Resolve returns the identity owning the token.
func (d *Directory) Resolve(token string) (entity.User, error) {
	u, ok := d.byToken[token]
	if !ok {
		return entity.User{}, ErrUnauthenticated
	}
	return u, nil
}
