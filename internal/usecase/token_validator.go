package usecase

import (
	"eventora/internal/domain/actor"
	"eventora/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator verifies tokens issued by the external identity provider and
// extracts the acting principal.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, actor.Role, error)
}

type jwtTokenValidator struct {
	verifier *jwt.Verifier
}

func NewTokenValidator(verifier *jwt.Verifier) TokenValidator {
	return &jwtTokenValidator{verifier: verifier}
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, actor.Role, error) {
	claims, err := v.verifier.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	role, err := actor.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}
	return claims.UserID, role, nil
}
