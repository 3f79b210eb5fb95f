package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"artistry-backend/internal/domains/artist"
	"artistry-backend/pkg/cache"
	"artistry-backend/pkg/logger"
)

const (
	// unique_violation
	pgUniqueViolation = "23505"

	cacheTTL = 5 * time.Minute
)

// postgresRepository is the concrete artist.Repository over pgx.
// Point lookups go through a cache-aside layer; every write invalidates
// the cached record so the table stays the single source of truth.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository wires the pool and cache into an
// artist.Repository.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) artist.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func cacheKey(artistID string) string {
	return fmt.Sprintf("artist:%s", artistID)
}

// ========================================
// LOOKUPS
// ========================================

func (r *postgresRepository) GetByID(ctx context.Context, artistID string) (*artist.Artist, error) {
	key := cacheKey(artistID)

	var cached artist.Artist
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		// A broken cache must not take reads down; fall through to the
		// table.
		logger.Warn("artist cache read failed", map[string]interface{}{"artist_id": artistID, "error": err.Error()})
	}
	if found {
		return &cached, nil
	}

	query := `
		SELECT artist_id, name, password_hash, country, info, photo
		FROM artists
		WHERE artist_id = $1
	`

	var a artist.Artist
	err = r.pool.QueryRow(ctx, query, artistID).Scan(
		&a.ArtistID,
		&a.Name,
		&a.PasswordHash,
		&a.Country,
		&a.Info,
		&a.Photo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, artist.ErrArtistNotFound
		}
		return nil, fmt.Errorf("get artist %s: %w", artistID, err)
	}

	if err := r.cache.Set(ctx, key, &a, cacheTTL); err != nil {
		logger.Warn("artist cache write failed", map[string]interface{}{"artist_id": artistID, "error": err.Error()})
	}

	return &a, nil
}

func (r *postgresRepository) FindByName(ctx context.Context, name string) ([]artist.Artist, error) {
	query := `
		SELECT artist_id, name, password_hash, country, info, photo
		FROM artists
		WHERE name = $1
	`

	rows, err := r.pool.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("query artists by name: %w", err)
	}
	defer rows.Close()

	return scanArtists(rows)
}

func (r *postgresRepository) SearchByNameContains(ctx context.Context, substring string) ([]artist.Artist, error) {
	// Full-table scan by design: position() sidesteps LIKE wildcard
	// escaping and there is no index to help a substring match anyway.
	query := `
		SELECT artist_id, name, password_hash, country, info, photo
		FROM artists
		WHERE position($1 in name) > 0
	`

	rows, err := r.pool.Query(ctx, query, substring)
	if err != nil {
		return nil, fmt.Errorf("scan artists by name substring: %w", err)
	}
	defer rows.Close()

	return scanArtists(rows)
}

func scanArtists(rows pgx.Rows) ([]artist.Artist, error) {
	artists := []artist.Artist{}
	for rows.Next() {
		var a artist.Artist
		if err := rows.Scan(
			&a.ArtistID,
			&a.Name,
			&a.PasswordHash,
			&a.Country,
			&a.Info,
			&a.Photo,
		); err != nil {
			return nil, fmt.Errorf("scan artist row: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artist rows: %w", err)
	}
	return artists, nil
}

// ========================================
// WRITES
// ========================================

func (r *postgresRepository) Create(ctx context.Context, a *artist.Artist) error {
	query := `
		INSERT INTO artists (artist_id, name, password_hash, country, info, photo)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		a.ArtistID,
		a.Name,
		a.PasswordHash,
		a.Country,
		a.Info,
		a.Photo,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return artist.ErrArtistAlreadyRegistered
		}
		return fmt.Errorf("create artist %s: %w", a.ArtistID, err)
	}

	return r.invalidate(ctx, a.ArtistID)
}

func (r *postgresRepository) Put(ctx context.Context, a *artist.Artist) error {
	query := `
		INSERT INTO artists (artist_id, name, password_hash, country, info, photo)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (artist_id) DO UPDATE SET
			name = EXCLUDED.name,
			password_hash = EXCLUDED.password_hash,
			country = EXCLUDED.country,
			info = EXCLUDED.info,
			photo = EXCLUDED.photo,
			updated_at = now()
	`

	_, err := r.pool.Exec(ctx, query,
		a.ArtistID,
		a.Name,
		a.PasswordHash,
		a.Country,
		a.Info,
		a.Photo,
	)
	if err != nil {
		return fmt.Errorf("put artist %s: %w", a.ArtistID, err)
	}

	return r.invalidate(ctx, a.ArtistID)
}

func (r *postgresRepository) UpdateName(ctx context.Context, artistID, name string) error {
	return r.updateColumn(ctx, artistID, "name", name)
}

func (r *postgresRepository) UpdateInfo(ctx context.Context, artistID, info string) error {
	return r.updateColumn(ctx, artistID, "info", info)
}

// updateColumn is the targeted single-attribute update: no prior fetch,
// no other attribute disturbed, so concurrent updates of different
// attributes cannot erase each other.
func (r *postgresRepository) updateColumn(ctx context.Context, artistID, column, value string) error {
	// column is one of the two constants above, never caller input.
	query := fmt.Sprintf(`UPDATE artists SET %s = $1, updated_at = now() WHERE artist_id = $2`, column)

	tag, err := r.pool.Exec(ctx, query, value, artistID)
	if err != nil {
		return fmt.Errorf("update artist %s %s: %w", artistID, column, err)
	}
	if tag.RowsAffected() == 0 {
		return artist.ErrArtistNotFound
	}

	return r.invalidate(ctx, artistID)
}

func (r *postgresRepository) invalidate(ctx context.Context, artistID string) error {
	if err := r.cache.Delete(ctx, cacheKey(artistID)); err != nil {
		// The write already landed; a stale cache entry expires with the
		// TTL. Log and move on.
		logger.Warn("artist cache invalidation failed", map[string]interface{}{"artist_id": artistID, "error": err.Error()})
	}
	return nil
}
