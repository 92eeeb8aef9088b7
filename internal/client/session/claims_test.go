package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/vortextv/vortexcli/internal/client/models"
	"github.com/vortextv/vortexcli/internal/common"
)

func TestDecodeClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signedToken(t, 42, "admin", exp)

	claims, err := decodeClaims(tok)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, models.RoleAdmin, claims.Role)
	require.True(t, claims.ExpiresAt.Equal(exp))
}

func TestDecodeClaimsStringSubject(t *testing.T) {
	// Some token issuers re-sign numeric subjects as strings.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "17",
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	tok, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := decodeClaims(tok)
	require.NoError(t, err)
	require.Equal(t, int64(17), claims.UserID)
}

func TestDecodeClaimsMissingExpiry(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": float64(1),
	})
	tok, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = decodeClaims(tok)
	require.True(t, errors.Is(err, common.ErrInvalidToken))
}

func TestDecodeClaimsGarbage(t *testing.T) {
	_, err := decodeClaims("definitely.not.a-token")
	require.True(t, errors.Is(err, common.ErrInvalidToken))
}
