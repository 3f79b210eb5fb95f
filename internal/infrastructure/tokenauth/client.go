package tokenauth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"artistry-backend/internal/config"
)

// Client is the remote Validator. It performs a single synchronous POST
// per request to the collaborator addressed as
// {service}-{stage}-ValidateToken under the configured endpoint.
// No retries: an authorization check is either answered or the request
// fails.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient builds the remote validator client from configuration.
func NewClient(cfg config.ValidatorConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:        fmt.Sprintf("%s/%s", cfg.Endpoint, cfg.FunctionName()),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type validateRequest struct {
	Token    string `json:"token"`
	ArtistID string `json:"artist_id"`
}

// validateResponse mirrors the collaborator's body. StatusCode is a
// pointer so an absent field is distinguishable from zero.
type validateResponse struct {
	StatusCode *int `json:"statusCode"`
}

func (c *Client) Validate(ctx context.Context, token, artistID string) (Verdict, error) {
	payload, err := json.Marshal(validateRequest{Token: token, ArtistID: artistID})
	if err != nil {
		return VerdictMalformed, fmt.Errorf("marshal validation payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return VerdictMalformed, fmt.Errorf("build validation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return VerdictMalformed, fmt.Errorf("invoke token validator: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return VerdictMalformed, fmt.Errorf("read validator response: %w", err)
	}

	var vr validateResponse
	if err := json.Unmarshal(body, &vr); err != nil || vr.StatusCode == nil {
		// A response that cannot be interpreted is a malformed verdict,
		// not an infrastructure fault: the call itself completed.
		log.Warn().Str("artist_id", artistID).Msg("token validator returned a response without a statusCode")
		return VerdictMalformed, nil
	}

	return interpretStatusCode(*vr.StatusCode), nil
}

func interpretStatusCode(code int) Verdict {
	switch code {
	case http.StatusOK:
		return VerdictAuthorized
	case http.StatusUnauthorized:
		return VerdictExpired
	case http.StatusForbidden:
		return VerdictForbidden
	default:
		return VerdictMalformed
	}
}
