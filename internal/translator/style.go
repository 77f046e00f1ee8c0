// Package translator integrates the Fun Translations API and applies the
// failure-degradation policy for description rewriting.
package translator

// Style identifies a text-rewriting transformation.
type Style int

const (
	// StyleNone passes text through unchanged without an external call.
	StyleNone Style = iota
	// StyleShakespeare rewrites text in Elizabethan English.
	StyleShakespeare
	// StyleYoda rewrites text in Yoda speak.
	StyleYoda
)

// String returns the Fun Translations endpoint name for the style.
func (s Style) String() string {
	switch s {
	case StyleShakespeare:
		return "shakespeare"
	case StyleYoda:
		return "yoda"
	default:
		return "none"
	}
}

// SelectStyle deterministically chooses a translation style from Pokemon
// attributes: legendary Pokemon and cave dwellers get Yoda, everything else
// gets Shakespeare. An absent habitat is the empty string.
func SelectStyle(habitat string, isLegendary bool) Style {
	if isLegendary || habitat == "cave" {
		return StyleYoda
	}
	return StyleShakespeare
}
