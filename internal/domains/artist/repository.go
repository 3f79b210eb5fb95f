package artist

import "context"

// Repository is the contract for the profile store. Point lookups and
// single-attribute updates report a missing key as ErrArtistNotFound;
// the name queries treat zero matches as a normal empty result, not an
// error. Any operation may fail with a wrapped driver error when the
// store is unavailable.
type Repository interface {
	// GetByID is the point lookup on the primary key. The full record is
	// returned, never a partial projection.
	GetByID(ctx context.Context, artistID string) (*Artist, error)

	// FindByName is the exact-match query on the name index. Ordering is
	// index order and carries no meaning.
	FindByName(ctx context.Context, name string) ([]Artist, error)

	// SearchByNameContains is the full-table fallback scan filtering on
	// substring containment. O(table size) by design: it trades cost for
	// recall on partial-name search and runs only when FindByName came
	// back empty.
	SearchByNameContains(ctx context.Context, substring string) ([]Artist, error)

	// Create is the strict, create-if-absent write.
	// Returns ErrArtistAlreadyRegistered when the key exists.
	Create(ctx context.Context, a *Artist) error

	// Put is the permissive write: unconditional full-record upsert.
	Put(ctx context.Context, a *Artist) error

	// UpdateName updates only the name attribute.
	// Returns ErrArtistNotFound when the key does not exist.
	UpdateName(ctx context.Context, artistID, name string) error

	// UpdateInfo updates only the info attribute.
	// Returns ErrArtistNotFound when the key does not exist.
	UpdateInfo(ctx context.Context, artistID, info string) error
}
