package tokenauth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret, artistID string, expiresAt time.Time) string {
	t.Helper()
	claims := localClaims{
		ArtistID: artistID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestLocalValidatorAuthorizesMatchingArtist(t *testing.T) {
	v := NewLocalValidator(testSecret)
	token := signToken(t, testSecret, "artist-1", time.Now().Add(time.Hour))

	verdict, err := v.Validate(context.Background(), token, "artist-1")
	require.NoError(t, err)
	assert.Equal(t, VerdictAuthorized, verdict)
}

func TestLocalValidatorForbidsOtherArtist(t *testing.T) {
	v := NewLocalValidator(testSecret)
	token := signToken(t, testSecret, "artist-1", time.Now().Add(time.Hour))

	verdict, err := v.Validate(context.Background(), token, "artist-2")
	require.NoError(t, err)
	assert.Equal(t, VerdictForbidden, verdict)
}

func TestLocalValidatorExpiredToken(t *testing.T) {
	v := NewLocalValidator(testSecret)
	token := signToken(t, testSecret, "artist-1", time.Now().Add(-time.Minute))

	verdict, err := v.Validate(context.Background(), token, "artist-1")
	require.NoError(t, err)
	assert.Equal(t, VerdictExpired, verdict)
}

func TestLocalValidatorWrongSecret(t *testing.T) {
	v := NewLocalValidator(testSecret)
	token := signToken(t, "another-secret", "artist-1", time.Now().Add(time.Hour))

	verdict, err := v.Validate(context.Background(), token, "artist-1")
	require.NoError(t, err)
	assert.Equal(t, VerdictForbidden, verdict)
}
