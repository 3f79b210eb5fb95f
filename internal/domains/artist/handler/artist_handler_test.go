package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artistry-backend/internal/domains/artist"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubService scripts each operation's outcome.
type stubService struct {
	registerResp   *artist.RegisterResponse
	registerErr    error
	changeNameResp *artist.ChangeNameResponse
	changeNameErr  error
	changeInfoErr  error
	profile        *artist.ProfileDTO
	profileErr     error
	searchResp     []artist.ProfileDTO
	searchErr      error

	gotToken    string
	gotRegister artist.RegisterRequest
}

func (s *stubService) Register(ctx context.Context, req artist.RegisterRequest) (*artist.RegisterResponse, error) {
	s.gotRegister = req
	return s.registerResp, s.registerErr
}

func (s *stubService) ChangeName(ctx context.Context, token string, req artist.ChangeNameRequest) (*artist.ChangeNameResponse, error) {
	s.gotToken = token
	return s.changeNameResp, s.changeNameErr
}

func (s *stubService) ChangeInfo(ctx context.Context, token string, req artist.ChangeInfoRequest) error {
	s.gotToken = token
	return s.changeInfoErr
}

func (s *stubService) GetProfile(ctx context.Context, token, artistID string) (*artist.ProfileDTO, error) {
	s.gotToken = token
	return s.profile, s.profileErr
}

func (s *stubService) SearchByName(ctx context.Context, req artist.SearchRequest) ([]artist.ProfileDTO, error) {
	return s.searchResp, s.searchErr
}

func newRouter(svc artist.Service) *gin.Engine {
	h := NewArtistHandler(svc)
	r := gin.New()
	r.POST("/artists/register", h.Register)
	r.PUT("/artists/name", h.ChangeName)
	r.PUT("/artists/info", h.ChangeInfo)
	r.POST("/artists/profile", h.GetProfile)
	r.POST("/artists/search", h.SearchByName)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestRegisterSuccess(t *testing.T) {
	svc := &stubService{registerResp: &artist.RegisterResponse{ArtistID: "artist-1"}}
	r := newRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/artists/register",
		`{"artist_id":"artist-1","password":"pw","country":"france","name":"ana"}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "artist-1", envelope["data"].(map[string]interface{})["artist_id"])
	assert.Equal(t, "artist-1", svc.gotRegister.ArtistID)
}

func TestRegisterAcceptsStringEncodedBody(t *testing.T) {
	// Upstream sometimes double-encodes the body as a JSON string.
	svc := &stubService{registerResp: &artist.RegisterResponse{ArtistID: "artist-1"}}
	r := newRouter(svc)

	inner := `{"artist_id":"artist-1","password":"pw","country":"france","name":"ana"}`
	quoted, err := json.Marshal(inner)
	require.NoError(t, err)

	w := doRequest(t, r, http.MethodPost, "/artists/register", string(quoted), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "artist-1", svc.gotRegister.ArtistID)
	assert.Equal(t, "pw", svc.gotRegister.Password)
}

func TestRegisterMalformedBody(t *testing.T) {
	r := newRouter(&stubService{})

	w := doRequest(t, r, http.MethodPost, "/artists/register", `{"artist_id":`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateIs400(t *testing.T) {
	svc := &stubService{registerErr: artist.ErrArtistAlreadyRegistered}
	r := newRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/artists/register",
		`{"artist_id":"artist-1","password":"pw","country":"france","name":"ana"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
}

func TestChangeNamePassesAuthorizationHeader(t *testing.T) {
	svc := &stubService{changeNameResp: &artist.ChangeNameResponse{Name: "ada"}}
	r := newRouter(svc)

	w := doRequest(t, r, http.MethodPut, "/artists/name",
		`{"artist_id":"artist-1","new_name":"ADA"}`,
		map[string]string{"Authorization": "tok-123"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok-123", svc.gotToken)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "ada", envelope["data"].(map[string]interface{})["name"])
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing authorization", artist.ErrMissingAuthorization, http.StatusBadRequest},
		{"expired token", artist.ErrTokenExpired, http.StatusUnauthorized},
		{"forbidden token", artist.ErrTokenForbidden, http.StatusForbidden},
		{"artist not found", artist.ErrArtistNotFound, http.StatusNotFound},
		{"malformed validator response", artist.ErrValidatorMalformed, http.StatusInternalServerError},
		{"validation unavailable", artist.ErrValidationUnavailable, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{changeNameErr: tt.err}
			r := newRouter(svc)

			w := doRequest(t, r, http.MethodPut, "/artists/name",
				`{"artist_id":"artist-1","new_name":"ada"}`, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			envelope := decodeEnvelope(t, w)
			assert.Equal(t, false, envelope["success"])
		})
	}
}

func TestInternalFaultsAreRedacted(t *testing.T) {
	svc := &stubService{changeInfoErr: context.DeadlineExceeded}
	r := newRouter(svc)

	w := doRequest(t, r, http.MethodPut, "/artists/info",
		`{"artist_id":"artist-1","info":"bio"}`, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "deadline")
}

func TestChangeInfoSuccess(t *testing.T) {
	r := newRouter(&stubService{})

	w := doRequest(t, r, http.MethodPut, "/artists/info",
		`{"artist_id":"artist-1","info":"new bio"}`,
		map[string]string{"Authorization": "tok"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Artist info updated successfully")
}

func TestGetProfileMissingArtistID(t *testing.T) {
	r := newRouter(&stubService{})

	w := doRequest(t, r, http.MethodPost, "/artists/profile", `{}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "artist_id")
}

func TestGetProfileNotFound(t *testing.T) {
	svc := &stubService{profileErr: artist.ErrArtistNotFound}
	r := newRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/artists/profile", `{"artist_id":"ghost"}`, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchReturnsCollection(t *testing.T) {
	info := "bio"
	svc := &stubService{searchResp: []artist.ProfileDTO{
		{ArtistID: "artist-1", Name: "ana", Photo: artist.DefaultPhoto, Info: &info},
		{ArtistID: "artist-2", Name: "ana", Photo: artist.DefaultPhoto},
	}}
	r := newRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/artists/search", `{"name":"ana"}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	artists := envelope["data"].(map[string]interface{})["artists"].([]interface{})
	assert.Len(t, artists, 2)
}

func TestSearchEmptyResultIs404(t *testing.T) {
	svc := &stubService{searchErr: artist.ErrNoArtistsFound}
	r := newRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/artists/search", `{"name":"nobody"}`, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No artists found")
}
