package artist

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// REQUEST DTOs
// ========================================

// RegisterRequest creates a new profile.
type RegisterRequest struct {
	ArtistID string  `json:"artist_id"`
	Password string  `json:"password"`
	Country  string  `json:"country"`
	Name     string  `json:"name"`
	Info     *string `json:"info,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArtistID, validation.Required.Error("missing parameter artist_id")),
		validation.Field(&r.Password, validation.Required.Error("missing parameter password")),
		validation.Field(&r.Country, validation.Required.Error("missing parameter country")),
		validation.Field(&r.Name, validation.Required.Error("missing parameter name")),
	)
}

// RegisterResponse echoes the key of the new profile.
type RegisterResponse struct {
	ArtistID string `json:"artist_id"`
}

// ChangeNameRequest replaces the display name of a profile.
type ChangeNameRequest struct {
	ArtistID string `json:"artist_id"`
	NewName  string `json:"new_name"`
}

func (r ChangeNameRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArtistID, validation.Required.Error("missing parameter artist_id")),
	)
}

// ValidateName runs after the token check, matching the operation order:
// artist_id and token are required up front, new_name afterwards.
func (r ChangeNameRequest) ValidateName() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NewName,
			validation.Required.Error("missing parameter new_name"),
			validation.By(notBlank("missing parameter new_name")),
		),
	)
}

// ChangeNameResponse carries the stored (normalized) name.
type ChangeNameResponse struct {
	Name string `json:"name"`
}

// ChangeInfoRequest replaces the biography of a profile.
type ChangeInfoRequest struct {
	ArtistID string `json:"artist_id"`
	Info     string `json:"info"`
}

func (r ChangeInfoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArtistID, validation.Required.Error("missing parameter artist_id")),
		validation.Field(&r.Info, validation.Required.Error("missing parameter info")),
	)
}

// GetProfileRequest looks up one profile by its key.
type GetProfileRequest struct {
	ArtistID string `json:"artist_id"`
}

func (r GetProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArtistID, validation.Required.Error("missing parameter artist_id")),
	)
}

// SearchRequest looks up profiles by display name. Which fields are
// required depends on the search policy, hence two validators.
type SearchRequest struct {
	Name     string `json:"name"`
	ArtistID string `json:"artist_id,omitempty"`
}

// Validate covers the fuzzy variant: only the name is required.
func (r SearchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("missing parameter name")),
	)
}

// ValidateStrict covers the index-only variant: name and artist_id both
// required.
func (r SearchRequest) ValidateStrict() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("missing parameter name")),
		validation.Field(&r.ArtistID, validation.Required.Error("missing parameter artist_id")),
	)
}

// notBlank rejects values that are empty after trimming, which
// validation.Required alone lets through.
func notBlank(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if NormalizeName(s) == "" {
			return validation.NewError("validation_blank", msg)
		}
		return nil
	}
}
