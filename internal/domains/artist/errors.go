package artist

import "errors"

// Repository-level errors
var (
	// Not Found
	ErrArtistNotFound = errors.New("artist not found")
	ErrNoArtistsFound = errors.New("no artists found with the provided name")

	// Conflict
	ErrArtistAlreadyRegistered = errors.New("artist is already registered")
)

// Service-level (business logic) errors
var (
	// Input
	ErrInvalidCountry       = errors.New("invalid country, please enter a valid name")
	ErrMissingAuthorization = errors.New("missing Authorization header")

	// Token validation outcomes
	ErrTokenExpired       = errors.New("unauthorized: token expired")
	ErrTokenForbidden     = errors.New("forbidden: access not authorized")
	ErrValidatorMalformed = errors.New("invalid response from token validator")

	// The validation call itself could not complete
	ErrValidationUnavailable = errors.New("token validation unavailable")
)
