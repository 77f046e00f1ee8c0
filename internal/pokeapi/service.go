package pokeapi

import (
	"context"
	"strings"

	apperrors "pokedex-api/internal/errors"
	"pokedex-api/internal/language"

	"github.com/sirupsen/logrus"
)

// Finder fetches a Pokemon and negotiates its description language.
type Finder interface {
	// FindByName returns the negotiated language tag and the enriched Pokemon.
	FindByName(ctx context.Context, name string, prefs []language.Preference) (string, *Pokemon, error)
}

// Service aggregates the base Pokemon and species lookups and selects the
// description via language negotiation.
type Service struct {
	api api
}

// NewService creates the aggregation service on top of the PokeAPI client.
func NewService(client *Client) *Service {
	return &Service{api: client}
}

// FindByName fetches base and species data for the named Pokemon, negotiates
// the description language against the parsed preferences, and returns the
// chosen language tag together with the enriched Pokemon.
//
// Errors: ErrPokemonNotFound when the species is unknown or carries no
// descriptions, ErrNotAcceptable when negotiation fails, and the upstream
// taxonomy for transport problems.
func (s *Service) FindByName(ctx context.Context, name string, prefs []language.Preference) (string, *Pokemon, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	base, err := s.api.GetBasePokemon(ctx, name)
	if err != nil {
		return "", nil, err
	}

	logrus.WithFields(logrus.Fields{
		"pokemon":     base.Name,
		"species_url": base.SpeciesURL,
	}).Debug("Fetching species data")

	sp, err := s.api.GetSpecies(ctx, base.SpeciesURL)
	if err != nil {
		return "", nil, err
	}
	if len(sp.FlavorTexts) == 0 {
		logrus.WithField("pokemon", base.Name).Debug("Species has no descriptions")
		return "", nil, apperrors.ErrPokemonNotFound
	}

	available, texts := indexFlavorTexts(sp.FlavorTexts)
	result := language.Negotiate(prefs, available, DefaultLanguage)
	if result.Kind == language.NotAcceptable {
		logrus.WithField("pokemon", base.Name).Debug("Requested languages unavailable and no wildcard")
		return "", nil, apperrors.ErrNotAcceptable
	}

	var habitat *string
	if sp.Habitat != "" {
		h := sp.Habitat
		habitat = &h
	}

	return result.Tag, &Pokemon{
		ID:          base.ID,
		Name:        base.Name,
		Habitat:     habitat,
		IsLegendary: sp.IsLegendary,
		Description: texts[result.Tag],
	}, nil
}

// indexFlavorTexts returns the available language tags in upstream order and
// a lookup of the first description per language. Species list many entries
// per language across game versions; the first one wins deterministically.
func indexFlavorTexts(entries []flavorText) ([]string, map[string]string) {
	var available []string
	texts := make(map[string]string, len(entries))
	for _, entry := range entries {
		if _, seen := texts[entry.Language]; seen {
			continue
		}
		available = append(available, entry.Language)
		texts[entry.Language] = entry.Text
	}
	return available, texts
}
