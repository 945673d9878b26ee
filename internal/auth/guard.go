package auth

import (
	"bookcatalog/internal/entity"
)

// Capability is the access tier an operation demands.
type Capability int

const (
	// Authenticated passes for any resolved identity.
	Authenticated Capability = iota
	// Administrator passes only for identities with IsAdmin set.
	Administrator
)

func (c Capability) String() string {
	switch c {
	case Authenticated:
		return "authenticated"
	case Administrator:
		return "administrator"
	}
	return "unknown"
}

// Require checks that identity satisfies the capability. A nil identity
// means token resolution failed and yields ErrUnauthenticated regardless
// of the capability asked for.
func Require(identity *entity.User, c Capability) error {
	if identity == nil {
		return ErrUnauthenticated
	}
	if c == Administrator && !identity.IsAdmin {
		return ErrForbidden
	}
	return nil
}
