package service

import (
	"context"
	"fmt"
	"strings"

	"artistry-backend/internal/domains/artist"
	"artistry-backend/internal/infrastructure/tokenauth"
	"artistry-backend/pkg/logger"
	"artistry-backend/pkg/password"
)

// artistService implements artist.Service. Stateless: every request is
// an independent pipeline over the injected collaborators.
type artistService struct {
	repo      artist.Repository
	validator tokenauth.Validator
	hasher    password.Hasher
	policy    artist.Policy
}

// NewArtistService wires the repository, token validator, password
// hasher and behavior policy into an artist.Service.
func NewArtistService(
	repo artist.Repository,
	validator tokenauth.Validator,
	hasher password.Hasher,
	policy artist.Policy,
) artist.Service {
	return &artistService{
		repo:      repo,
		validator: validator,
		hasher:    hasher,
		policy:    policy,
	}
}

// authorize runs the delegated token check that gates every mutation.
// The verdict maps 1:1 onto domain errors; an incomplete call is a
// server-side failure, never a pass.
func (s *artistService) authorize(ctx context.Context, token, artistID string) error {
	if strings.TrimSpace(token) == "" {
		return artist.ErrMissingAuthorization
	}

	verdict, err := s.validator.Validate(ctx, token, artistID)
	if err != nil {
		return fmt.Errorf("%w: %v", artist.ErrValidationUnavailable, err)
	}

	switch verdict {
	case tokenauth.VerdictAuthorized:
		return nil
	case tokenauth.VerdictExpired:
		return artist.ErrTokenExpired
	case tokenauth.VerdictForbidden:
		return artist.ErrTokenForbidden
	default:
		return artist.ErrValidatorMalformed
	}
}

// ========================================
// REGISTER
// ========================================

func (s *artistService) Register(ctx context.Context, req artist.RegisterRequest) (*artist.RegisterResponse, error) {
	// Handler already validated; double-check so the service stays safe
	// when called directly.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	country, err := artist.NormalizeCountry(req.Country)
	if err != nil {
		return nil, err
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newArtist := &artist.Artist{
		ArtistID:     req.ArtistID,
		Name:         req.Name,
		PasswordHash: passwordHash,
		Country:      country,
		Info:         req.Info,
		Photo:        artist.DefaultPhoto,
	}

	if s.policy.RejectDuplicateRegistration {
		err = s.repo.Create(ctx, newArtist)
	} else {
		// Permissive policy: registering an existing artist_id silently
		// replaces the record, last writer wins.
		err = s.repo.Put(ctx, newArtist)
	}
	if err != nil {
		return nil, err
	}

	return &artist.RegisterResponse{ArtistID: newArtist.ArtistID}, nil
}

// ========================================
// CHANGE NAME
// ========================================

func (s *artistService) ChangeName(ctx context.Context, token string, req artist.ChangeNameRequest) (*artist.ChangeNameResponse, error) {
	// Order matters: artist_id and token gate first, new_name is checked
	// only after the token has been accepted.
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, token, req.ArtistID); err != nil {
		return nil, err
	}
	if err := req.ValidateName(); err != nil {
		return nil, err
	}

	newName := artist.NormalizeName(req.NewName)

	if _, err := s.repo.GetByID(ctx, req.ArtistID); err != nil {
		return nil, err
	}

	// Targeted update: only the name column moves, so a racing info
	// update cannot be lost to a stale full-record rewrite.
	if err := s.repo.UpdateName(ctx, req.ArtistID, newName); err != nil {
		return nil, err
	}

	return &artist.ChangeNameResponse{Name: newName}, nil
}

// ========================================
// CHANGE INFO
// ========================================

func (s *artistService) ChangeInfo(ctx context.Context, token string, req artist.ChangeInfoRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.authorize(ctx, token, req.ArtistID); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, req.ArtistID); err != nil {
		return err
	}

	return s.repo.UpdateInfo(ctx, req.ArtistID, req.Info)
}

// ========================================
// GET PROFILE
// ========================================

func (s *artistService) GetProfile(ctx context.Context, token, artistID string) (*artist.ProfileDTO, error) {
	if s.policy.RequireAuthOnRead {
		if err := s.authorize(ctx, token, artistID); err != nil {
			return nil, err
		}
	}

	a, err := s.repo.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}

	dto := &artist.ProfileDTO{
		ArtistID: a.ArtistID,
		Name:     a.Name,
		Photo:    a.Photo,
	}

	// The authenticated variant withholds info; only the open read
	// returns the biography. Kept as upstream behaves.
	if !s.policy.RequireAuthOnRead {
		dto.Info = a.Info
	}

	return dto, nil
}

// ========================================
// SEARCH BY NAME
// ========================================

func (s *artistService) SearchByName(ctx context.Context, req artist.SearchRequest) ([]artist.ProfileDTO, error) {
	var matches []artist.Artist
	var err error

	if s.policy.AllowFuzzySearch {
		if err := req.Validate(); err != nil {
			return nil, err
		}

		name := artist.NormalizeName(req.Name)

		matches, err = s.repo.FindByName(ctx, name)
		if err != nil {
			return nil, err
		}

		if len(matches) == 0 {
			// Fallback scan: full-table substring filter, deliberately
			// trading cost for recall on partial names.
			logger.Debug("exact name query empty, falling back to substring scan")
			matches, err = s.repo.SearchByNameContains(ctx, name)
			if err != nil {
				return nil, err
			}
		}
	} else {
		if err := req.ValidateStrict(); err != nil {
			return nil, err
		}

		// Strict variant: exact index match only, name taken verbatim.
		matches, err = s.repo.FindByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
	}

	if len(matches) == 0 {
		return nil, artist.ErrNoArtistsFound
	}

	profiles := make([]artist.ProfileDTO, 0, len(matches))
	for i := range matches {
		profiles = append(profiles, matches[i].ToDTO())
	}
	return profiles, nil
}
