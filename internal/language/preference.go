// Package language implements Accept-Language parsing and language negotiation
// for picking a description language from the set a Pokemon species provides.
package language

import (
	"slices"
	"strconv"
	"strings"
)

// Wildcard is the Accept-Language tag that matches any available language.
const Wildcard = "*"

// maxHeaderLength bounds the accepted header size to keep parsing cheap
// on oversized or hostile headers.
const maxHeaderLength = 4096

// Preference is one parsed Accept-Language entry with its quality value.
type Preference struct {
	Tag     string
	Quality float64
}

// ParseAcceptLanguage parses an Accept-Language header value into an ordered
// list of preferences, sorted by descending quality. Ties keep the original
// header order. Malformed tokens are skipped, a missing or malformed quality
// value defaults to 1.0, and quality values are clamped to [0, 1]. An empty
// header yields an empty list, meaning "accept any language".
//
// Example: "es;q=0.9,en;q=0.8,*" -> [{es 0.9} {en 0.8} {* 1.0}] sorted to
// [{* 1.0} {es 0.9} {en 0.8}].
func ParseAcceptLanguage(header string) []Preference {
	if len(header) > maxHeaderLength {
		header = header[:maxHeaderLength]
	}

	var prefs []Preference
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tag, params, hasParams := strings.Cut(part, ";")
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}

		quality := 1.0
		if hasParams {
			quality = parseQuality(params)
		}

		prefs = append(prefs, Preference{Tag: tag, Quality: quality})
	}

	// Stable sort: equal qualities keep header order.
	slices.SortStableFunc(prefs, func(a, b Preference) int {
		switch {
		case a.Quality > b.Quality:
			return -1
		case a.Quality < b.Quality:
			return 1
		default:
			return 0
		}
	})

	return prefs
}

// parseQuality extracts the q parameter from the token parameters.
// Anything unparseable falls back to 1.0; out-of-range values are clamped.
func parseQuality(params string) float64 {
	params = strings.TrimSpace(params)
	if !strings.HasPrefix(params, "q=") {
		return 1.0
	}

	q, err := strconv.ParseFloat(strings.TrimSpace(params[2:]), 64)
	if err != nil {
		return 1.0
	}
	if q < 0 {
		return 0
	}
	if q > 1 {
		return 1.0
	}
	return q
}
