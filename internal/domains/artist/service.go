package artist

import "context"

// Policy pins the behaviors the upstream system implemented both ways.
// See config.PolicyConfig for the environment knobs feeding it.
type Policy struct {
	RequireAuthOnRead           bool
	AllowFuzzySearch            bool
	RejectDuplicateRegistration bool
}

// Service is the business logic contract: the five profile operations.
// Every operation is a stateless linear pipeline that short-circuits on
// the first failure; mutations are gated by token validation before any
// write is applied.
type Service interface {
	// Register creates a profile. Duplicate handling follows
	// Policy.RejectDuplicateRegistration.
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)

	// ChangeName replaces the display name, normalized to trimmed
	// lower-case. Requires an authorized token.
	ChangeName(ctx context.Context, token string, req ChangeNameRequest) (*ChangeNameResponse, error)

	// ChangeInfo replaces only the info attribute. Requires an authorized
	// token.
	ChangeInfo(ctx context.Context, token string, req ChangeInfoRequest) error

	// GetProfile returns the public projection for one artist. Under
	// Policy.RequireAuthOnRead the token is validated first and info is
	// withheld from the result.
	GetProfile(ctx context.Context, token, artistID string) (*ProfileDTO, error)

	// SearchByName returns every profile matching the display name.
	// The fuzzy policy falls back to a substring scan when the exact
	// query is empty; the strict policy additionally requires artist_id
	// and never scans. An empty final result is ErrNoArtistsFound.
	SearchByName(ctx context.Context, req SearchRequest) ([]ProfileDTO, error)
}
