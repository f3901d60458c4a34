//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"appointment-scheduler/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TokenIssuer signs access tokens the way the identity service does, so tests
// can authenticate without it.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

func (i *TokenIssuer) Token(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	return i.TokenWithExpiry(t, userID, role, time.Now().Add(15*time.Minute))
}

func (i *TokenIssuer) TokenWithExpiry(t *testing.T, userID uuid.UUID, role string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  gojwt.NewNumericDate(expiresAt.Add(-15 * time.Minute)),
			ExpiresAt: gojwt.NewNumericDate(expiresAt),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(i.secret)
	require.NoError(t, err)
	return token
}

// SubjectOnlyToken omits the "id" claim, as tokens issued before it existed did.
func (i *TokenIssuer) SubjectOnlyToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	now := time.Now()
	claims := gojwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(15 * time.Minute).Unix(),
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(i.secret)
	require.NoError(t, err)
	return token
}
