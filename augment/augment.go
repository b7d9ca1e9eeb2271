// Package augment rewrites entity spans of annotated documents while
// keeping every parallel per-token annotation array consistent: surface
// forms, tags, dependency heads, sentence starts and BILOU entity tags
// are re-indexed, re-labeled and re-sized together.
package augment

import (
	"errors"
	"fmt"

	"github.com/techthiyanes/augmenty/token"
	"github.com/techthiyanes/augmenty/tokenize"
)

var (
	// ErrInvalidConfig reports malformed pools, patterns, weights or
	// reorderings. It is returned at construction time, never mid-stream.
	ErrInvalidConfig = errors.New("invalid augmenter configuration")

	// ErrAlignment reports a divergence between the patched annotation
	// arrays and the re-tokenized text. It should not occur under
	// correct use; no document is emitted when it does.
	ErrAlignment = errors.New("annotation alignment broken")
)

// Augmenter rewrites one document into zero or more variants. Both
// engines of this package always yield exactly one variant per input.
type Augmenter interface {
	Augment(doc token.Doc) ([]token.Doc, error)
}

// retokenize reconstructs the flat text from the patched arrays,
// re-tokenizes it and checks that the fresh tokenization reproduces the
// patched surface forms exactly. It returns the input document with the
// patched annotations attached.
func retokenize(doc token.Doc, anno token.Annotations, tok tokenize.Tokenizer) (token.Doc, error) {
	if err := anno.Validate(); err != nil {
		return token.Doc{}, fmt.Errorf("%w: %v", ErrAlignment, err)
	}

	text := anno.Text()
	fresh := tok.MakeDoc(text)

	if len(fresh.Tokens) != anno.Len() {
		return token.Doc{}, fmt.Errorf("%w: re-tokenized %q into %d tokens, annotations have %d",
			ErrAlignment, text, len(fresh.Tokens), anno.Len())
	}

	for i, t := range fresh.Tokens {
		if t.Text != anno.Orth[i] {
			return token.Doc{}, fmt.Errorf("%w: token %d re-tokenized as %q, annotated as %q",
				ErrAlignment, i, t.Text, anno.Orth[i])
		}
	}

	out := doc
	out.Anno = anno

	return out, nil
}

// splice replaces s[start:end] with repl, changing the slice length by
// len(repl)-(end-start). The input slice is not modified.
func splice[T any](s []T, start, end int, repl []T) []T {
	out := make([]T, 0, len(s)-(end-start)+len(repl))
	out = append(out, s[:start]...)
	out = append(out, repl...)

	return append(out, s[end:]...)
}

// repeat returns a slice of n copies of v.
func repeat[T any](v T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}

	return out
}
