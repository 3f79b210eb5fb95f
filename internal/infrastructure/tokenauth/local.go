package tokenauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// LocalValidator is a development stand-in for the remote collaborator:
// an HS256 JWT whose artist_id claim must match the target artist.
// It implements the same Validator contract so the service wiring does
// not change between modes. Disallowed in production by config.
type LocalValidator struct {
	secret string
}

func NewLocalValidator(secret string) *LocalValidator {
	return &LocalValidator{secret: secret}
}

type localClaims struct {
	ArtistID string `json:"artist_id"`
	jwt.RegisteredClaims
}

func (v *LocalValidator) Validate(ctx context.Context, token, artistID string) (Verdict, error) {
	claims := &localClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(v.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return VerdictExpired, nil
		}
		return VerdictForbidden, nil
	}

	if !parsed.Valid || claims.ArtistID != artistID {
		return VerdictForbidden, nil
	}

	return VerdictAuthorized, nil
}
