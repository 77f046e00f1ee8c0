package pokeapi

import (
	"context"
	"net/http"
	"testing"

	apperrors "pokedex-api/internal/errors"
	"pokedex-api/internal/language"
	"pokedex-api/internal/translator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAPI is a controllable low-level PokeAPI implementation
type mockAPI struct {
	base       *basePokemon
	baseErr    error
	species    *species
	speciesErr error

	gotName string
	gotURL  string
}

func (m *mockAPI) GetBasePokemon(ctx context.Context, name string) (*basePokemon, error) {
	m.gotName = name
	if m.baseErr != nil {
		return nil, m.baseErr
	}
	return m.base, nil
}

func (m *mockAPI) GetSpecies(ctx context.Context, speciesURL string) (*species, error) {
	m.gotURL = speciesURL
	if m.speciesErr != nil {
		return nil, m.speciesErr
	}
	return m.species, nil
}

func mewtwoMock() *mockAPI {
	return &mockAPI{
		base: &basePokemon{ID: 150, Name: "mewtwo", SpeciesURL: "https://pokeapi.co/api/v2/pokemon-species/150/"},
		species: &species{
			Habitat:     "rare",
			IsLegendary: true,
			FlavorTexts: []flavorText{
				{Language: "fr", Text: "Un Pokemon cree par genie genetique."},
				{Language: "en", Text: "It was created by a scientist."},
				{Language: "en", Text: "A later english entry."},
				{Language: "es", Text: "Fue creado por un cientifico."},
			},
		},
	}
}

// TestFindByName_DefaultLanguage tests the no-preference fallback to english
func TestFindByName_DefaultLanguage(t *testing.T) {
	t.Parallel()

	api := mewtwoMock()
	service := &Service{api: api}

	lang, pokemon, err := service.FindByName(context.Background(), "mewtwo", nil)
	require.NoError(t, err)

	assert.Equal(t, "en", lang)
	assert.Equal(t, 150, pokemon.ID)
	assert.Equal(t, "mewtwo", pokemon.Name)
	require.NotNil(t, pokemon.Habitat)
	assert.Equal(t, "rare", *pokemon.Habitat)
	assert.True(t, pokemon.IsLegendary)
	assert.Equal(t, "It was created by a scientist.", pokemon.Description, "first entry per language wins")
	assert.Equal(t, "https://pokeapi.co/api/v2/pokemon-species/150/", api.gotURL)
}

// TestFindByName_PreferredLanguage tests an exact language match
func TestFindByName_PreferredLanguage(t *testing.T) {
	t.Parallel()

	service := &Service{api: mewtwoMock()}

	prefs := []language.Preference{{Tag: "fr", Quality: 1.0}}
	lang, pokemon, err := service.FindByName(context.Background(), "mewtwo", prefs)
	require.NoError(t, err)

	assert.Equal(t, "fr", lang)
	assert.Equal(t, "Un Pokemon cree par genie genetique.", pokemon.Description)
}

// TestFindByName_NotAcceptable tests rejection without a wildcard
func TestFindByName_NotAcceptable(t *testing.T) {
	t.Parallel()

	service := &Service{api: mewtwoMock()}

	prefs := []language.Preference{{Tag: "de", Quality: 1.0}}
	_, _, err := service.FindByName(context.Background(), "mewtwo", prefs)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotAcceptable, apperrors.AsAPIError(err).HTTPStatus)
}

// TestFindByName_WildcardFallback tests the wildcard fallback to english
func TestFindByName_WildcardFallback(t *testing.T) {
	t.Parallel()

	service := &Service{api: mewtwoMock()}

	prefs := []language.Preference{
		{Tag: "de", Quality: 1.0},
		{Tag: "*", Quality: 0.5},
	}
	lang, pokemon, err := service.FindByName(context.Background(), "mewtwo", prefs)
	require.NoError(t, err)

	assert.Equal(t, "en", lang)
	assert.Equal(t, "It was created by a scientist.", pokemon.Description)
}

// TestFindByName_NameNormalization tests case and whitespace handling
func TestFindByName_NameNormalization(t *testing.T) {
	t.Parallel()

	api := mewtwoMock()
	service := &Service{api: api}

	_, _, err := service.FindByName(context.Background(), "  MewTwo ", nil)
	require.NoError(t, err)
	assert.Equal(t, "mewtwo", api.gotName)
}

// TestFindByName_NoDescriptions tests species without flavor texts
func TestFindByName_NoDescriptions(t *testing.T) {
	t.Parallel()

	api := mewtwoMock()
	api.species.FlavorTexts = nil
	service := &Service{api: api}

	_, _, err := service.FindByName(context.Background(), "mewtwo", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.AsAPIError(err).HTTPStatus)
}

// TestFindByName_MissingHabitat tests the nil habitat mapping
func TestFindByName_MissingHabitat(t *testing.T) {
	t.Parallel()

	api := mewtwoMock()
	api.species.Habitat = ""
	service := &Service{api: api}

	_, pokemon, err := service.FindByName(context.Background(), "mewtwo", nil)
	require.NoError(t, err)
	assert.Nil(t, pokemon.Habitat)
}

// TestFindByName_UpstreamErrors tests error propagation from both lookups
func TestFindByName_UpstreamErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setup      func(*mockAPI)
		wantStatus int
	}{
		{
			name: "Base lookup not found",
			setup: func(m *mockAPI) {
				m.baseErr = apperrors.ErrPokemonNotFound
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "Base lookup unavailable",
			setup: func(m *mockAPI) {
				m.baseErr = apperrors.ErrUpstreamUnavailable
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "Species lookup rate limited",
			setup: func(m *mockAPI) {
				m.speciesErr = apperrors.ErrRateLimited
			},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name: "Species lookup malformed",
			setup: func(m *mockAPI) {
				m.speciesErr = apperrors.ErrUpstreamMalformed
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := mewtwoMock()
			tt.setup(api)
			service := &Service{api: api}

			_, _, err := service.FindByName(context.Background(), "mewtwo", nil)
			require.Error(t, err)
			assert.Equal(t, tt.wantStatus, apperrors.AsAPIError(err).HTTPStatus)
		})
	}
}

// TestPokemonTranslatorStyle tests the style derivation on the aggregate
func TestPokemonTranslatorStyle(t *testing.T) {
	t.Parallel()

	cave := "cave"
	forest := "forest"

	tests := []struct {
		name     string
		pokemon  Pokemon
		expected translator.Style
	}{
		{
			name:     "Legendary",
			pokemon:  Pokemon{IsLegendary: true, Habitat: &forest},
			expected: translator.StyleYoda,
		},
		{
			name:     "Cave dweller",
			pokemon:  Pokemon{Habitat: &cave},
			expected: translator.StyleYoda,
		},
		{
			name:     "Ordinary",
			pokemon:  Pokemon{Habitat: &forest},
			expected: translator.StyleShakespeare,
		},
		{
			name:     "No habitat",
			pokemon:  Pokemon{},
			expected: translator.StyleShakespeare,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.pokemon.TranslatorStyle())
		})
	}
}

// TestIndexFlavorTexts tests ordering and first-entry-wins indexing
func TestIndexFlavorTexts(t *testing.T) {
	t.Parallel()

	entries := []flavorText{
		{Language: "ja", Text: "first ja"},
		{Language: "en", Text: "first en"},
		{Language: "ja", Text: "second ja"},
		{Language: "fr", Text: "first fr"},
	}

	available, texts := indexFlavorTexts(entries)

	assert.Equal(t, []string{"ja", "en", "fr"}, available)
	assert.Equal(t, "first ja", texts["ja"])
	assert.Equal(t, "first en", texts["en"])
	assert.Equal(t, "first fr", texts["fr"])
}
