package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"artistry-backend/internal/config"
	infraCache "artistry-backend/internal/infrastructure/cache"
	"artistry-backend/internal/infrastructure/database"
	"artistry-backend/internal/infrastructure/tokenauth"
	"artistry-backend/pkg/cache"
	"artistry-backend/pkg/password"

	"artistry-backend/internal/domains/artist"
	artistHandler "artistry-backend/internal/domains/artist/handler"
	artistRepo "artistry-backend/internal/domains/artist/repository"
	artistService "artistry-backend/internal/domains/artist/service"
)

// Container is the root of the dependency graph. Everything is built
// once here and injected by constructor; no package-level singletons.
type Container struct {
	// Infrastructure
	Config    *config.Config
	DB        *database.PostgresDB
	Redis     *infraCache.RedisClient // nil when CACHE_ENABLED=false
	Cache     cache.Cache
	Validator tokenauth.Validator

	// Artist domain
	ArtistRepo    artist.Repository
	ArtistService artist.Service
	ArtistHandler *artistHandler.ArtistHandler
}

// NewContainer initializes the dependency graph in order:
// config → infrastructure → repository → service → handler.
func NewContainer() (*Container, error) {
	c := &Container{}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// 2. PostgreSQL
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 3. Cache: Redis when enabled, in-memory otherwise (local runs)
	if cfg.Redis.Enabled {
		c.Redis = infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := c.Redis.Connect(ctx); err != nil {
			c.DB.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.Cache = infraCache.NewRedisCache(c.Redis)
	} else {
		log.Warn().Msg("cache disabled, using in-memory cache")
		c.Cache = cache.NewMemoryCache()
	}

	// 4. Token validator
	switch cfg.Validator.Mode {
	case "local":
		log.Warn().Msg("using local JWT token validator (development mode)")
		c.Validator = tokenauth.NewLocalValidator(cfg.Validator.JWTSecret)
	default:
		c.Validator = tokenauth.NewClient(cfg.Validator)
	}

	// 5. Password hasher
	hasher, err := password.New(cfg.Password.Algorithm)
	if err != nil {
		c.Cleanup()
		return nil, err
	}

	// 6. Artist domain: repository → service → handler
	c.ArtistRepo = artistRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.ArtistService = artistService.NewArtistService(
		c.ArtistRepo,
		c.Validator,
		hasher,
		artist.Policy{
			RequireAuthOnRead:           cfg.Policy.RequireAuthOnRead,
			AllowFuzzySearch:            cfg.Policy.AllowFuzzySearch,
			RejectDuplicateRegistration: cfg.Policy.RejectDuplicateRegistration,
		},
	)
	c.ArtistHandler = artistHandler.NewArtistHandler(c.ArtistService)

	log.Info().
		Bool("require_auth_on_read", cfg.Policy.RequireAuthOnRead).
		Bool("allow_fuzzy_search", cfg.Policy.AllowFuzzySearch).
		Bool("reject_duplicate_registration", cfg.Policy.RejectDuplicateRegistration).
		Msg("container initialized")

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
