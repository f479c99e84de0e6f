package actor

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role identifies which side of the marketplace the authenticated principal
// acts from. Identity itself is established by the external provider; the core
// only checks ownership.
type Role string

const (
	RoleClient   Role = "client"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient, RoleProvider, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
