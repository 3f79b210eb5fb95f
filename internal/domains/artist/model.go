package artist

import "strings"

// DefaultPhoto is the sentinel photo URL assigned at registration.
// The photo field is never mutated by this service.
const DefaultPhoto = "default-url"

// Artist is the stored profile record, keyed by ArtistID.
// ArtistID is opaque, caller-supplied and immutable after creation.
// Name is covered by a secondary index and is NOT unique: several
// profiles may share a display name.
type Artist struct {
	ArtistID     string  `json:"artist_id" db:"artist_id"`
	Name         string  `json:"name" db:"name"`
	PasswordHash string  `json:"password_hash" db:"password_hash"`
	Country      string  `json:"country" db:"country"`
	Info         *string `json:"info,omitempty" db:"info"`
	Photo        string  `json:"photo" db:"photo"`
}

// ProfileDTO is the public projection of an Artist. The password hash
// never leaves the service through any code path.
type ProfileDTO struct {
	ArtistID string  `json:"artist_id"`
	Name     string  `json:"name"`
	Country  string  `json:"country,omitempty"`
	Photo    string  `json:"photo"`
	Info     *string `json:"info,omitempty"`
}

// ToDTO converts the stored record to its public projection.
func (a *Artist) ToDTO() ProfileDTO {
	return ProfileDTO{
		ArtistID: a.ArtistID,
		Name:     a.Name,
		Country:  a.Country,
		Photo:    a.Photo,
		Info:     a.Info,
	}
}

// NormalizeCountry trims and lower-cases a raw country value and rejects
// anything that is not purely alphabetic.
func NormalizeCountry(raw string) (string, error) {
	country := strings.ToLower(strings.TrimSpace(raw))
	if country == "" || !isAlpha(country) {
		return "", ErrInvalidCountry
	}
	return country, nil
}

// NormalizeName trims and lower-cases a display name, the same way the
// write paths store it.
func NormalizeName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
