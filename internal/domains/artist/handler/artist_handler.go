package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"artistry-backend/internal/domains/artist"
	"artistry-backend/internal/shared/response"
	"artistry-backend/pkg/logger"
)

// ArtistHandler translates HTTP requests into artist.Service calls.
// Stateless: it only carries its dependencies.
type ArtistHandler struct {
	service artist.Service
}

func NewArtistHandler(service artist.Service) *ArtistHandler {
	return &ArtistHandler{service: service}
}

// bindBody decodes the request body into dest. Upstream delivers the
// body either as a JSON object or as a JSON-encoded string containing
// an object; both forms are normalized here, before any business logic.
func bindBody(c *gin.Context, dest interface{}) error {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return err
		}
		raw = []byte(inner)
	}
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	return json.Unmarshal(raw, dest)
}

// ========================================
// ENDPOINTS
// ========================================

// Register handles POST /artists/register.
func (h *ArtistHandler) Register(c *gin.Context) {
	var req artist.RegisterRequest
	if err := bindBody(c, &req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Artist registered successfully", result)
}

// ChangeName handles PUT /artists/name. Field validation is staged in
// the service: artist_id and token gate before new_name is looked at.
func (h *ArtistHandler) ChangeName(c *gin.Context) {
	var req artist.ChangeNameRequest
	if err := bindBody(c, &req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.ChangeName(c.Request.Context(), c.GetHeader("Authorization"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Artist name updated successfully", result)
}

// ChangeInfo handles PUT /artists/info.
func (h *ArtistHandler) ChangeInfo(c *gin.Context) {
	var req artist.ChangeInfoRequest
	if err := bindBody(c, &req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.ChangeInfo(c.Request.Context(), c.GetHeader("Authorization"), req); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Artist info updated successfully", nil)
}

// GetProfile handles POST /artists/profile.
func (h *ArtistHandler) GetProfile(c *gin.Context) {
	var req artist.GetProfileRequest
	if err := bindBody(c, &req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.handleError(c, err)
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), c.GetHeader("Authorization"), req.ArtistID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Artist retrieved successfully", profile)
}

// SearchByName handles POST /artists/search.
func (h *ArtistHandler) SearchByName(c *gin.Context) {
	var req artist.SearchRequest
	if err := bindBody(c, &req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profiles, err := h.service.SearchByName(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Artists found", gin.H{"artists": profiles})
}

// ========================================
// ERROR MAPPING
// ========================================

// handleError maps domain errors onto the response envelope. Unexpected
// faults are logged with their cause and surfaced as a generic 500 —
// internals are never echoed to the caller.
func (h *ArtistHandler) handleError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.As(err, &verr):
		response.BadRequest(c, verr.Error())
	case errors.Is(err, artist.ErrMissingAuthorization):
		response.BadRequest(c, "Missing Authorization header")
	case errors.Is(err, artist.ErrInvalidCountry):
		response.BadRequest(c, "Invalid country, please enter a valid name")
	case errors.Is(err, artist.ErrArtistAlreadyRegistered):
		response.BadRequest(c, "Artist is already registered")
	case errors.Is(err, artist.ErrTokenExpired):
		response.Unauthorized(c, "Unauthorized - token expired")
	case errors.Is(err, artist.ErrTokenForbidden):
		response.Forbidden(c, "Forbidden - access not authorized")
	case errors.Is(err, artist.ErrArtistNotFound):
		response.NotFound(c, "Artist not found")
	case errors.Is(err, artist.ErrNoArtistsFound):
		response.NotFound(c, "No artists found with the provided name")
	case errors.Is(err, artist.ErrValidatorMalformed):
		response.InternalServerError(c, "Invalid response from token validator")
	case errors.Is(err, artist.ErrValidationUnavailable):
		logger.Error("token validation unavailable", err)
		response.InternalServerError(c, "Internal server error")
	default:
		logger.Error("artist operation failed", err)
		response.InternalServerError(c, "Internal server error")
	}
}
