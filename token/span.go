package token

import "strings"

// Span references a token range [Start, End) of an entity, with its type
// label. Spans are decoded from a snapshot of the original annotations;
// after a mutation changed the sequence length, consumers must add a
// running offset before indexing into the mutated arrays.
type Span struct {
	Start int
	End   int
	Label string
}

// Outside is the BILOU tag of tokens that belong to no entity.
const Outside = "O"

// Ents decodes the BILOU entity tags into spans, in non-decreasing start
// order. An open span is closed by its L- tag or by the next tag that
// does not continue it.
func (a Annotations) EntSpans() []Span {
	var spans []Span

	start := -1
	label := ""

	closeOpen := func(end int) {
		if start >= 0 {
			spans = append(spans, Span{Start: start, End: end, Label: label})
			start = -1
			label = ""
		}
	}

	for i, tag := range a.Ents {
		prefix, l := splitTag(tag)

		switch prefix {
		case "U":
			closeOpen(i)
			spans = append(spans, Span{Start: i, End: i + 1, Label: l})
		case "B":
			closeOpen(i)
			start = i
			label = l
		case "I":
			if start < 0 || l != label {
				closeOpen(i)
			}
		case "L":
			if start >= 0 && l == label {
				closeOpen(i + 1)
			} else {
				// L without a matching B, treat as a single-token span
				spans = append(spans, Span{Start: i, End: i + 1, Label: l})
			}
		default:
			closeOpen(i)
		}
	}

	closeOpen(len(a.Ents))

	return spans
}

// IOB returns the BILOU tag sequence for a span of n tokens with the
// given label: U- for a single token, otherwise B- I-... L-.
func IOB(label string, n int) []string {
	if n <= 0 {
		return nil
	}

	if n == 1 {
		return []string{"U-" + label}
	}

	tags := make([]string, 0, n)
	tags = append(tags, "B-"+label)
	for i := 0; i < n-2; i++ {
		tags = append(tags, "I-"+label)
	}

	return append(tags, "L-"+label)
}

func splitTag(tag string) (prefix, label string) {
	before, after, found := strings.Cut(tag, "-")
	if !found {
		return "", tag
	}

	return before, after
}
