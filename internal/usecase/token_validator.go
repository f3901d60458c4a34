package usecase

import (
	"appointment-scheduler/internal/domain/user"
	"appointment-scheduler/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Actor, error)
}

type tokenValidatorImpl struct {
	verifier *jwt.Verifier
}

func NewTokenValidator(verifier *jwt.Verifier) TokenValidator {
	return &tokenValidatorImpl{
		verifier: verifier,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Actor, error) {
	claims, err := t.verifier.ValidateToken(tokenString)
	if err != nil {
		return user.Actor{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, err
	}
	id := claims.AccountID()
	if id == uuid.Nil {
		return user.Actor{}, jwt.ErrInvalidToken
	}

	return user.Actor{ID: id, Role: role}, nil
}
