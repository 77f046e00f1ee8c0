package pokeapi

import (
	"context"
	"io"
	"net/http"

	apperrors "pokedex-api/internal/errors"
	"pokedex-api/internal/httpclient"
	"pokedex-api/internal/types"

	"github.com/tidwall/gjson"
)

// maxResponseBytes bounds how much of an upstream response body is read.
// Species payloads are large but comfortably under this.
const maxResponseBytes = 4 << 20 // 4MB

// basePokemon is the subset of the /pokemon/{name} response we need.
type basePokemon struct {
	ID         int
	Name       string
	SpeciesURL string
}

// flavorText is one description entry of a species, keyed by language tag.
type flavorText struct {
	Language string
	Text     string
}

// species is the subset of the /pokemon-species response we need.
type species struct {
	Habitat     string // empty when the species has no habitat
	IsLegendary bool
	FlavorTexts []flavorText
}

// api is the low-level interface for PokeAPI requests, abstracted for testing.
type api interface {
	GetBasePokemon(ctx context.Context, name string) (*basePokemon, error)
	GetSpecies(ctx context.Context, speciesURL string) (*species, error)
}

// Client is the HTTP client implementation for PokeAPI requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a PokeAPI client from the configured upstream.
func NewClient(configManager types.ConfigManager, clientManager *httpclient.Manager) *Client {
	cfg := configManager.GetPokeAPIConfig()
	return &Client{
		httpClient: clientManager.GetClient(httpclient.ConfigFromUpstream(cfg)),
		baseURL:    cfg.BaseURL("/api/v2"),
	}
}

// GetBasePokemon fetches base Pokemon data from the /pokemon/{name} endpoint.
func (c *Client) GetBasePokemon(ctx context.Context, name string) (*basePokemon, error) {
	body, err := c.get(ctx, c.baseURL+"/pokemon/"+name)
	if err != nil {
		return nil, err
	}

	id := gjson.GetBytes(body, "id")
	pokemonName := gjson.GetBytes(body, "name")
	speciesURL := gjson.GetBytes(body, "species.url")
	if !id.Exists() || !pokemonName.Exists() || !speciesURL.Exists() {
		return nil, apperrors.ErrUpstreamMalformed
	}

	return &basePokemon{
		ID:         int(id.Int()),
		Name:       pokemonName.String(),
		SpeciesURL: speciesURL.String(),
	}, nil
}

// GetSpecies fetches species data from the URL referenced by the base response.
func (c *Client) GetSpecies(ctx context.Context, speciesURL string) (*species, error) {
	body, err := c.get(ctx, speciesURL)
	if err != nil {
		return nil, err
	}

	isLegendary := gjson.GetBytes(body, "is_legendary")
	entries := gjson.GetBytes(body, "flavor_text_entries")
	if !isLegendary.Exists() || !entries.IsArray() {
		return nil, apperrors.ErrUpstreamMalformed
	}

	result := &species{
		// habitat is null for some species
		Habitat:     gjson.GetBytes(body, "habitat.name").String(),
		IsLegendary: isLegendary.Bool(),
	}
	for _, entry := range entries.Array() {
		lang := entry.Get("language.name").String()
		text := entry.Get("flavor_text").String()
		if lang == "" || text == "" {
			continue
		}
		result.FlavorTexts = append(result.FlavorTexts, flavorText{Language: lang, Text: text})
	}

	return result, nil
}

// get issues one GET request and returns the validated JSON body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.ErrInternalServer
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	if apiErr := apperrors.FromUpstreamStatus(resp.StatusCode); apiErr != nil {
		return nil, apiErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperrors.ErrUpstreamUnavailable
	}
	if !gjson.ValidBytes(body) {
		return nil, apperrors.ErrUpstreamMalformed
	}

	return body, nil
}
