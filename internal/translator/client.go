package translator

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	apperrors "pokedex-api/internal/errors"
	"pokedex-api/internal/httpclient"
	"pokedex-api/internal/types"

	"github.com/tidwall/gjson"
)

// maxResponseBytes bounds how much of an upstream response body is read.
const maxResponseBytes = 1 << 20 // 1MB

// API is the interface for the Fun Translations provider.
type API interface {
	Translate(ctx context.Context, text string, style Style) (string, error)
}

// Client is the HTTP client for the Fun Translations API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Fun Translations client from the configured upstream.
func NewClient(configManager types.ConfigManager, clientManager *httpclient.Manager) *Client {
	cfg := configManager.GetFunTranslationsConfig()
	return &Client{
		httpClient: clientManager.GetClient(httpclient.ConfigFromUpstream(cfg)),
		baseURL:    cfg.BaseURL("/translate"),
	}
}

// newClientForTest builds a client against an arbitrary base URL.
func newClientForTest(httpClient *http.Client, baseURL string) *Client {
	return &Client{httpClient: httpClient, baseURL: baseURL}
}

// Translate posts the text to the style's endpoint and returns the rewritten
// text. Errors follow the upstream taxonomy: 429 maps to ErrRateLimited,
// network failures to ErrUpstreamUnavailable, and an unparseable body to
// ErrUpstreamMalformed.
func (c *Client) Translate(ctx context.Context, text string, style Style) (string, error) {
	form := url.Values{"text": {text}}
	endpoint := c.baseURL + "/" + style.String() + ".json"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", apperrors.ErrInternalServer
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	if apiErr := apperrors.FromUpstreamStatus(resp.StatusCode); apiErr != nil {
		return "", apiErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", apperrors.ErrUpstreamUnavailable
	}

	if !gjson.ValidBytes(body) {
		return "", apperrors.ErrUpstreamMalformed
	}
	translated := gjson.GetBytes(body, "contents.translated")
	if !translated.Exists() || translated.String() == "" {
		return "", apperrors.ErrUpstreamMalformed
	}

	return translated.String(), nil
}
