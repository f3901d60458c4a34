package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Clock skew tolerated between the identity service and this one.
const leeway = 30 * time.Second

// Claims is the payload of an identity-service access token. Older tokens
// carry the account id only in "sub".
type Claims struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email,omitempty"`
	Name   string    `json:"name,omitempty"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// AccountID returns the account id, preferring the "id" claim.
func (c *Claims) AccountID() uuid.UUID {
	if c.UserID != uuid.Nil {
		return c.UserID
	}
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// Verifier checks HS256 tokens. Issuing them is not this service's job.
type Verifier struct {
	secretKey []byte
	parser    *jwt.Parser
}

func NewVerifier(secretKey string) *Verifier {
	return &Verifier{
		secretKey: []byte(secretKey),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(leeway),
		),
	}
}

func (v *Verifier) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secretKey, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil, !token.Valid:
		return nil, ErrInvalidToken
	}
	return claims, nil
}
