package translator

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Outcome is the result of attempting a translation. On failure Text holds
// the original untranslated description, never an empty or error string.
type Outcome struct {
	Text      string
	Style     Style
	Succeeded bool
}

// Orchestrator applies a selected style to a description with graceful
// degradation: provider failures yield the original text, not an error.
type Orchestrator struct {
	api API
}

// NewOrchestrator creates an Orchestrator backed by the given provider.
func NewOrchestrator(api API) *Orchestrator {
	return &Orchestrator{api: api}
}

// Translate runs one translation attempt for the style. StyleNone skips the
// external call entirely. Any provider failure degrades to the original text
// with Succeeded=false; no retries are performed.
func (o *Orchestrator) Translate(ctx context.Context, style Style, text string) Outcome {
	if style == StyleNone {
		return Outcome{Text: text, Style: StyleNone, Succeeded: true}
	}

	translated, err := o.api.Translate(ctx, text, style)
	if err != nil {
		logrus.WithError(err).WithField("style", style.String()).Warn("Translation failed, returning original text")
		return Outcome{Text: text, Style: style, Succeeded: false}
	}

	return Outcome{Text: translated, Style: style, Succeeded: true}
}
