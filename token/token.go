package token

import (
	"fmt"
	"strings"
)

// Doc is the unit of work of the corpus: one document with its per-token
// annotation arrays. Sentence boundaries live in Anno.SentStart, entity
// spans in Anno.Ents (BILOU tags).
type Doc struct {
	Id int `json:"id"`

	Title string `json:"title,omitempty"`

	Labels []string `json:"labels,omitempty"`

	Anno Annotations `json:"tokens"`
}

// Annotations holds the parallel per-token sequences of a document.
// All slices are index-aligned and must have identical length at every
// point after a mutation completes.
type Annotations struct {
	// The unmodified surface form of the token
	Orth []string `json:"orth"`

	// The lemma of the token
	Lemma []string `json:"lemma"`

	// Coarse POS tag (e.g. PROPN)
	Pos []string `json:"pos"`

	// A string containing detailed POS data (set by spacy, stanza)
	Tag []string `json:"tag"`

	// Morphological feature string, empty if unset
	Morph []string `json:"morph"`

	// Dependency relation label
	Dep []string `json:"dep"`

	// Head is the absolute index of the syntactic governor of each token,
	// into this same sequence.
	Head []int `json:"head"`

	// SentStart is 1 for sentence-initial tokens, 0 otherwise.
	SentStart []int `json:"sent_start"`

	// SpaceAfter is true if the token is followed by a single space in the
	// reconstructed text.
	SpaceAfter []bool `json:"space_after"`

	// Ents are BILOU entity tags: O, B-TYPE, I-TYPE, L-TYPE, U-TYPE.
	Ents []string `json:"ents"`
}

// Len returns the token count of the annotations, taken from Orth.
func (a Annotations) Len() int {
	return len(a.Orth)
}

// Validate checks the two structural invariants of an annotation set:
// every parallel array has the same length, and every head value is a
// valid index into the current-length sequence.
func (a Annotations) Validate() error {
	n := len(a.Orth)

	lengths := map[string]int{
		"lemma":       len(a.Lemma),
		"pos":         len(a.Pos),
		"tag":         len(a.Tag),
		"morph":       len(a.Morph),
		"dep":         len(a.Dep),
		"head":        len(a.Head),
		"sent_start":  len(a.SentStart),
		"space_after": len(a.SpaceAfter),
		"ents":        len(a.Ents),
	}

	for name, l := range lengths {
		if l != n {
			return fmt.Errorf("array %s has length %d, orth has %d", name, l, n)
		}
	}

	for i, h := range a.Head {
		if h < 0 || h >= n {
			return fmt.Errorf("head of token %d points at %d, document has %d tokens", i, h, n)
		}
	}

	return nil
}

// Clone returns a deep copy of the annotations. Augmenters mutate the
// copy and leave the input document untouched.
func (a Annotations) Clone() Annotations {
	return Annotations{
		Orth:       append([]string(nil), a.Orth...),
		Lemma:      append([]string(nil), a.Lemma...),
		Pos:        append([]string(nil), a.Pos...),
		Tag:        append([]string(nil), a.Tag...),
		Morph:      append([]string(nil), a.Morph...),
		Dep:        append([]string(nil), a.Dep...),
		Head:       append([]int(nil), a.Head...),
		SentStart:  append([]int(nil), a.SentStart...),
		SpaceAfter: append([]bool(nil), a.SpaceAfter...),
		Ents:       append([]string(nil), a.Ents...),
	}
}

// Text reconstructs the flat document text: each surface form followed by
// a single space where its spacing flag is set, nothing otherwise.
func (a Annotations) Text() string {
	var b strings.Builder
	for i, orth := range a.Orth {
		b.WriteString(orth)
		if i < len(a.SpaceAfter) && a.SpaceAfter[i] {
			b.WriteString(" ")
		}
	}

	return b.String()
}

// Surface returns the reconstructed text of the token range [start, end),
// without the trailing space of the last token.
func (a Annotations) Surface(start, end int) string {
	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(a.Orth[i])
		if i < end-1 && a.SpaceAfter[i] {
			b.WriteString(" ")
		}
	}

	return b.String()
}
