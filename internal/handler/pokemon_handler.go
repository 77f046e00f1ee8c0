package handler

import (
	"net/http"
	"strings"

	apperrors "pokedex-api/internal/errors"
	"pokedex-api/internal/language"
	"pokedex-api/internal/pokeapi"
	"pokedex-api/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetPokemon fetches Pokemon information with language negotiation.
// GET /pokemon/:name
//
// The Accept-Language header (RFC 7231) selects the description language.
// A wildcard allows falling back to English or the first available language;
// without one, an unavailable language yields 406.
func (s *Server) GetPokemon(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		logrus.Warn("Empty pokemon name requested")
		response.Error(c, apperrors.ErrPokemonNotFound)
		return
	}

	s.metrics.PokemonRequestsTotal.Inc()

	prefs := language.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
	lang, pokemon, err := s.pokemonFinder.FindByName(c.Request.Context(), name, prefs)
	if err != nil {
		s.recordPokemonFailure(name, err)
		response.Error(c, apperrors.AsAPIError(err))
		return
	}

	s.metrics.PokemonRequestsFound.Inc()
	logrus.WithFields(logrus.Fields{
		"pokemon":  name,
		"language": lang,
	}).Info("Successfully fetched pokemon")

	response.JSON(c, lang, pokemon)
}

// GetPokemonTranslation fetches and translates a Pokemon's description.
// GET /pokemon/:name/translation/
//
// The description is fetched in the default language, the translation style
// is derived from the Pokemon's attributes, and provider failures degrade to
// the untranslated description with a 200 response.
func (s *Server) GetPokemonTranslation(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		logrus.Warn("Empty pokemon name requested for translation")
		response.Error(c, apperrors.ErrPokemonNotFound)
		return
	}

	s.metrics.TranslationsTotal.Inc()

	prefs := []language.Preference{{Tag: pokeapi.DefaultLanguage, Quality: 1.0}}
	lang, pokemon, err := s.pokemonFinder.FindByName(c.Request.Context(), name, prefs)
	if err != nil {
		s.metrics.TranslationsFailed.Inc()
		s.recordPokemonFailure(name, err)
		response.Error(c, apperrors.AsAPIError(err))
		return
	}

	outcome := s.orchestrator.Translate(c.Request.Context(), pokemon.TranslatorStyle(), pokemon.Description)
	if outcome.Succeeded {
		s.metrics.TranslationsSucceeded.Inc()
		logrus.WithFields(logrus.Fields{
			"pokemon": name,
			"style":   outcome.Style.String(),
		}).Info("Successfully translated pokemon description")
	} else {
		// Graceful degradation: the client still gets a 200 with the
		// original description.
		s.metrics.TranslationsFailed.Inc()
	}

	response.PlainText(c, lang, outcome.Text)
}

// recordPokemonFailure increments the failure counters matching the error kind.
func (s *Server) recordPokemonFailure(name string, err error) {
	apiErr := apperrors.AsAPIError(err)
	switch apiErr.HTTPStatus {
	case http.StatusNotFound:
		s.metrics.PokemonRequestsNotFound.Inc()
		logrus.WithField("pokemon", name).Debug("Pokemon not found")
	case http.StatusServiceUnavailable:
		s.metrics.ServiceUnavailable.Inc()
		logrus.WithField("pokemon", name).Warn("Pokemon service unavailable")
	case http.StatusTooManyRequests:
		s.metrics.RateLimited.Inc()
		logrus.WithField("pokemon", name).Warn("Rate limited by upstream")
	}
}
