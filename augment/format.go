package augment

import (
	"fmt"

	"github.com/techthiyanes/augmenty/token"
)

// Formatter rewrites the surface form of one token at one position of a
// reordered entity, e.g. abbreviating "Kenneth" to "K.".
type Formatter func(orth string) string

// EntFormatter reorders the tokens of an entity span and applies
// per-position formatters. The span length never changes, so only the
// surface-form arrays are touched; heads, tags and BILOU tags stay as
// they are.
type EntFormatter struct {
	reordering []*int
	formatters []Formatter
	level      float64
	entTypes   map[string]bool

	settings
}

var _ Augmenter = (*EntFormatter)(nil)

// NewEntFormatter creates a reorder/format engine. reordering is the
// desired order of the span's token indices, where a nil entry stands
// for "all remaining original-order tokens here" and negative indices
// count from the end. formatters are applied positionally after
// reordering; a nil entry keeps the token. entTypes restricts the engine
// to the given entity type labels; nil means all types.
func NewEntFormatter(reordering []*int, formatters []Formatter, level float64, entTypes []string, opts ...Option) (*EntFormatter, error) {
	if level < 0 || level > 1 {
		return nil, fmt.Errorf("%w: level %v outside [0,1]", ErrInvalidConfig, level)
	}

	if len(reordering) == 0 {
		return nil, fmt.Errorf("%w: empty reordering", ErrInvalidConfig)
	}

	wildcards := 0
	for _, slot := range reordering {
		if slot == nil {
			wildcards++
		}
	}

	if wildcards > 1 {
		return nil, fmt.Errorf("%w: reordering has %d wildcard slots, at most one is allowed", ErrInvalidConfig, wildcards)
	}

	var types map[string]bool
	if entTypes != nil {
		types = make(map[string]bool, len(entTypes))
		for _, t := range entTypes {
			types[t] = true
		}
	}

	return &EntFormatter{
		reordering: reordering,
		formatters: formatters,
		level:      level,
		entTypes:   types,
		settings:   newSettings(opts),
	}, nil
}

// Augment yields exactly one rewritten document.
func (g *EntFormatter) Augment(doc token.Doc) ([]token.Doc, error) {
	a := doc.Anno.Clone()

	for _, ent := range doc.Anno.EntSpans() {
		if g.entTypes != nil && !g.entTypes[ent.Label] {
			continue
		}

		if g.rng.Float64() >= g.level {
			continue
		}

		final, err := g.rewrite(a.Orth[ent.Start:ent.End])
		if err != nil {
			return nil, err
		}

		copy(a.Orth[ent.Start:ent.End], final)
		copy(a.Lemma[ent.Start:ent.End], final)
	}

	out, err := retokenize(doc, a, g.tok)
	if err != nil {
		return nil, err
	}

	return []token.Doc{out}, nil
}

// rewrite reorders and formats the token texts of one span.
func (g *EntFormatter) rewrite(orig []string) ([]string, error) {
	work := append([]string(nil), orig...)

	var reordered []string
	for _, slot := range g.reordering {
		if slot == nil {
			// all not-yet-popped tokens, in their current order
			reordered = append(reordered, work...)
			continue
		}

		// indices past the entity length are skipped, so a 3-slot
		// pattern still applies to a 2-token name
		if *slot >= len(orig) {
			continue
		}

		i := *slot
		if i < 0 {
			i += len(work)
		}

		if i < 0 || i >= len(work) {
			continue
		}

		reordered = append(reordered, work[i])
		work = append(work[:i], work[i+1:]...)
	}

	for i := range reordered {
		if i < len(g.formatters) && g.formatters[i] != nil {
			reordered[i] = g.formatters[i](reordered[i])
		}
	}

	if len(reordered) != len(orig) {
		return nil, fmt.Errorf("%w: reordering turned a %d token span into %d tokens", ErrAlignment, len(orig), len(reordered))
	}

	return reordered, nil
}
