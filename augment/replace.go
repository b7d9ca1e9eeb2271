package augment

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/techthiyanes/augmenty/token"
	"github.com/techthiyanes/augmenty/tokenize"
)

// settings are the knobs shared by both engines.
type settings struct {
	rng *rand.Rand
	tok tokenize.Tokenizer
}

// Option configures an engine at construction time.
type Option func(*settings)

// WithRand injects the random source used for all sampling. Inject a
// seeded source for reproducible output.
func WithRand(rng *rand.Rand) Option {
	return func(s *settings) {
		s.rng = rng
	}
}

// WithTokenizer injects the tokenizer used to re-tokenize reconstructed
// text. Its token boundaries must match the corpus tokenization.
func WithTokenizer(tok tokenize.Tokenizer) Option {
	return func(s *settings) {
		s.tok = tok
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		tok: tokenize.Simple{},
	}

	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// EntReplacer replaces entity spans with sampled replacement token lists
// and realigns every annotation array, the dependency heads and the
// BILOU tags around the new span length.
type EntReplacer struct {
	pools      map[string]Pool
	level      float64
	consistent bool

	settings
}

var _ Augmenter = (*EntReplacer)(nil)

// NewEntReplacer creates a replacement engine. pools maps entity type
// labels to their replacement pools; level is the per-entity selection
// probability; with consistent set, repeated occurrences of the same
// surface text within one document receive the same replacement.
func NewEntReplacer(pools map[string]Pool, level float64, consistent bool, opts ...Option) (*EntReplacer, error) {
	if err := validatePools(pools); err != nil {
		return nil, err
	}

	if level < 0 || level > 1 {
		return nil, fmt.Errorf("%w: level %v outside [0,1]", ErrInvalidConfig, level)
	}

	return &EntReplacer{
		pools:      pools,
		level:      level,
		consistent: consistent,
		settings:   newSettings(opts),
	}, nil
}

// NewPerReplacer creates a replacement engine for person names only,
// fed by a single pool (typically a names.Generator).
func NewPerReplacer(pool Pool, level float64, consistent bool, opts ...Option) (*EntReplacer, error) {
	return NewEntReplacer(map[string]Pool{"PER": pool}, level, consistent, opts...)
}

// Augment yields exactly one rewritten document. Entities whose label
// has no pool, or whose selection draw fails, are left untouched.
func (g *EntReplacer) Augment(doc token.Doc) ([]token.Doc, error) {
	a := doc.Anno.Clone()

	// replacement cache, scoped to this document
	replaced := map[string][]string{}

	// Spans reference the original token sequence; offset carries the
	// cumulative length delta of prior replacements in document order.
	offset := 0

	for _, ent := range doc.Anno.EntSpans() {
		pool, ok := g.pools[ent.Label]
		if !ok || g.rng.Float64() >= g.level {
			continue
		}

		surface := doc.Anno.Surface(ent.Start, ent.End)

		repl, cached := replaced[surface]
		if !cached {
			repl = pool.Sample(g.rng)
			if g.consistent {
				replaced[surface] = repl
			}
		}

		if len(repl) == 0 {
			return nil, fmt.Errorf("%w: pool for label %q sampled an empty replacement", ErrInvalidConfig, ent.Label)
		}

		var err error
		a, offset, err = g.patch(a, ent, repl, offset)
		if err != nil {
			return nil, err
		}
	}

	out, err := retokenize(doc, a, g.tok)
	if err != nil {
		return nil, err
	}

	return []token.Doc{out}, nil
}

// patch rewrites the offset-adjusted span of every annotation array for
// one replacement and returns the annotations and the accumulated offset.
func (g *EntReplacer) patch(a token.Annotations, ent token.Span, repl []string, offset int) (token.Annotations, int, error) {
	start := ent.Start + offset
	end := ent.End + offset
	n := len(repl)

	if start < 0 || end > a.Len() || start >= end {
		return a, offset, fmt.Errorf("%w: span [%d,%d) outside document of %d tokens", ErrAlignment, start, end, a.Len())
	}

	firstDep := a.Dep[start]
	firstSent := a.SentStart[start]
	lastSpace := a.SpaceAfter[len(a.SpaceAfter)-1]

	a.Orth = splice(a.Orth, start, end, repl)
	a.Lemma = splice(a.Lemma, start, end, repl)
	a.Tag = splice(a.Tag, start, end, repeat("PROPN", n))
	a.Pos = splice(a.Pos, start, end, repeat("PROPN", n))
	a.Morph = splice(a.Morph, start, end, repeat("", n))

	// first token governs, the rest attach as flat dependents
	a.Dep = splice(a.Dep, start, end, append([]string{firstDep}, repeat("flat", n-1)...))

	// only the first replacement token can start a sentence
	a.SentStart = splice(a.SentStart, start, end, append([]int{firstSent}, repeat(0, n-1)...))

	// the final replacement token inherits the document-final spacing flag
	a.SpaceAfter = splice(a.SpaceAfter, start, end, append(repeat(true, n-1), lastSpace))

	a.Ents = splice(a.Ents, start, end, token.IOB(ent.Label, n))

	// Heads strictly after the span start shift by the length delta so
	// they keep pointing at the same logical token.
	delta := n - (ent.End - ent.Start)
	for i := range a.Head {
		if a.Head[i] > start {
			a.Head[i] += delta
		}
	}

	a.Head = splice(a.Head, start, end, append([]int{a.Head[start]}, repeat(start, n-1)...))

	return a, offset + delta, nil
}
