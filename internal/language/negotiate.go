package language

import "strings"

// ResultKind classifies the outcome of a negotiation.
type ResultKind int

const (
	// Matched means a requested language matched an available one exactly.
	Matched ResultKind = iota
	// FallbackDefault means the default (or first available) language was
	// used because the client accepts any language.
	FallbackDefault
	// NotAcceptable means no requested language is available and the client
	// did not allow a wildcard fallback.
	NotAcceptable
)

// Result is the outcome of negotiating preferences against available languages.
// Tag is empty when Kind is NotAcceptable.
type Result struct {
	Kind ResultKind
	Tag  string
}

// Negotiate matches parsed preferences against the available language tags.
// The available slice must be non-empty and keeps the upstream's order; the
// first element acts as the last-resort fallback when defaultTag is absent.
//
// Policy, in order:
//  1. No preferences at all: the client accepts anything, use the default
//     tag if available, else the first available tag.
//  2. First exact match (case-insensitive) in descending-quality order wins.
//  3. A wildcard anywhere in the preferences allows the same fallback as (1).
//  4. Otherwise the negotiation fails.
//
// An exact match always outranks a wildcard, even when the wildcard carries
// a higher quality value.
func Negotiate(prefs []Preference, available []string, defaultTag string) Result {
	if len(prefs) == 0 {
		return Result{Kind: FallbackDefault, Tag: fallbackTag(available, defaultTag)}
	}

	hasWildcard := false
	for _, pref := range prefs {
		if pref.Tag == Wildcard {
			hasWildcard = true
			continue
		}
		for _, tag := range available {
			if strings.EqualFold(pref.Tag, tag) {
				return Result{Kind: Matched, Tag: tag}
			}
		}
	}

	if hasWildcard {
		return Result{Kind: FallbackDefault, Tag: fallbackTag(available, defaultTag)}
	}

	return Result{Kind: NotAcceptable}
}

// fallbackTag picks the default tag when present among the available tags,
// else the first available tag.
func fallbackTag(available []string, defaultTag string) string {
	for _, tag := range available {
		if strings.EqualFold(tag, defaultTag) {
			return tag
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	return defaultTag
}
