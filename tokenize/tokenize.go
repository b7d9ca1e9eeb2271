// Package tokenize turns flat text back into tokens. The augmenters use
// it to re-tokenize the text they reconstructed from patched annotation
// arrays; its token boundaries must reproduce the per-token spacing of
// the arrays exactly, or the realignment check fails.
package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is one token of a freshly tokenized text.
type Token struct {
	// The surface form
	Text string `json:"text"`

	// The index of the start character of the token in the text
	Idx int `json:"idx"`

	// True if the token is followed by a space in the text
	SpaceAfter bool `json:"space_after"`
}

// Doc is the result of tokenizing one text.
type Doc struct {
	Text   string
	Tokens []Token
}

// Texts returns the surface forms of the doc tokens in order.
func (d Doc) Texts() []string {
	texts := make([]string, len(d.Tokens))
	for i, t := range d.Tokens {
		texts[i] = t.Text
	}

	return texts
}

// Tokenizer produces a Doc from flat text.
type Tokenizer interface {
	MakeDoc(text string) Doc
}

// Simple is a whitespace tokenizer that additionally splits leading and
// trailing punctuation off each field. A trailing period is kept attached
// to single-letter abbreviations ("K.") and to fields with interior
// periods ("U.S.").
type Simple struct{}

var _ Tokenizer = Simple{}

func (Simple) MakeDoc(text string) Doc {
	doc := Doc{Text: text}

	pos := 0
	for pos < len(text) {
		if text[pos] == ' ' {
			pos++
			continue
		}

		end := strings.IndexByte(text[pos:], ' ')
		if end < 0 {
			end = len(text)
		} else {
			end += pos
		}

		for _, piece := range splitField(text[pos:end]) {
			doc.Tokens = append(doc.Tokens, Token{
				Text: piece.text,
				Idx:  pos + piece.off,
			})
		}

		if end < len(text) {
			doc.Tokens[len(doc.Tokens)-1].SpaceAfter = true
		}

		pos = end
	}

	return doc
}

type piece struct {
	text string
	off  int
}

// splitField splits one whitespace-delimited field into pieces: leading
// punctuation runes, the core, trailing punctuation runes.
func splitField(field string) []piece {
	var lead, trail []piece

	off := 0
	rest := field
	for rest != "" {
		r, size := utf8.DecodeRuneInString(rest)
		if !isPunct(r) || len(rest) == size {
			break
		}

		lead = append(lead, piece{text: rest[:size], off: off})
		off += size
		rest = rest[size:]
	}

	for rest != "" {
		r, size := utf8.DecodeLastRuneInString(rest)
		if !isPunct(r) || len(rest) == size {
			break
		}

		if r == '.' && keepPeriod(rest[:len(rest)-size]) {
			break
		}

		trail = append(trail, piece{text: rest[len(rest)-size:], off: off + len(rest) - size})
		rest = rest[:len(rest)-size]
	}

	pieces := lead
	if rest != "" {
		pieces = append(pieces, piece{text: rest, off: off})
	}

	for i := len(trail) - 1; i >= 0; i-- {
		pieces = append(pieces, trail[i])
	}

	return pieces
}

// keepPeriod reports whether a trailing period belongs to the core in
// front of it: single-letter abbreviations and dotted acronyms.
func keepPeriod(core string) bool {
	if utf8.RuneCountInString(core) == 1 && !isPunct([]rune(core)[0]) {
		return true
	}

	return strings.ContainsRune(core, '.')
}

func isPunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
