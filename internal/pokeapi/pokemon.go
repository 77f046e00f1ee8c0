// Package pokeapi integrates PokeAPI: base Pokemon lookup, species data with
// flavor text descriptions, language negotiation, and translator selection.
package pokeapi

import "pokedex-api/internal/translator"

// DefaultLanguage is the fallback description language.
const DefaultLanguage = "en"

// Pokemon is the enriched aggregation result returned to clients.
type Pokemon struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Habitat     *string `json:"habitat"`
	IsLegendary bool    `json:"isLegendary"`
	Description string  `json:"description"`
}

// TranslatorStyle determines the translation style for the Pokemon:
// Yoda for legendary or cave-dwelling Pokemon, Shakespeare otherwise.
func (p *Pokemon) TranslatorStyle() translator.Style {
	habitat := ""
	if p.Habitat != nil {
		habitat = *p.Habitat
	}
	return translator.SelectStyle(habitat, p.IsLegendary)
}
