package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/techthiyanes/augmenty/token"
)

const Defaultformat = "text"

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"
	//Yellow256  = "\033[1;38;5;202m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	ClearLine = "\033[K"
)

// palette is the cycle of colors assigned to entity type labels.
var palette = []string{Teal, Magenta, Green, Yellow, Red, Purple}

func SupportedFormats() []string {
	return []string{"text", "tokens", "iob"}
}

type Renderer struct {
	HasColor bool

	// Format determines how a doc is printed
	//
	// text: the flat reconstructed text, entity spans highlighted
	// tokens: one line per token with all annotation columns
	// iob: one line per token with surface form and BILOU tag
	Format string

	W io.Writer

	// label color assignment, filled on first use
	labelColors map[string]string
}

func NewRenderer() *Renderer {
	return &Renderer{
		Format:      Defaultformat,
		W:           os.Stdout,
		labelColors: map[string]string{},
	}
}

// NextFormat cycles to the next supported format. Bound to a key in the
// preview REPL.
func (r *Renderer) NextFormat() {
	formats := SupportedFormats()
	for i, f := range formats {
		if f == r.Format {
			r.Format = formats[(i+1)%len(formats)]
			return
		}
	}

	r.Format = formats[0]
}

// Doc prints one document in the current format.
func (r *Renderer) Doc(doc token.Doc, prefix string) {
	switch r.Format {
	case "tokens":
		r.tokens(doc.Anno)
	case "iob":
		r.iob(doc.Anno)
	default:
		fmt.Fprintf(r.W, "%s%s\n", prefix, r.Text(doc.Anno))
	}
}

// Text returns the flat text of the annotations, with entity spans
// wrapped in their label color when color is on.
func (r *Renderer) Text(a token.Annotations) string {
	if !r.HasColor {
		return a.Text()
	}

	inSpan := make([]string, a.Len())
	for _, ent := range a.EntSpans() {
		for i := ent.Start; i < ent.End; i++ {
			inSpan[i] = ent.Label
		}
	}

	var str strings.Builder
	for i, orth := range a.Orth {
		if inSpan[i] != "" {
			str.WriteString(r.labelColor(inSpan[i]))
			str.WriteString(orth)
			str.WriteString(Off)
		} else {
			str.WriteString(orth)
		}

		if a.SpaceAfter[i] {
			str.WriteString(" ")
		}
	}

	return str.String()
}

func (r *Renderer) tokens(a token.Annotations) {
	for i := range a.Orth {
		fmt.Fprintf(r.W, "%20q %15q %8s %6d %8s %10s %s\n",
			a.Orth[i], a.Lemma[i], a.Pos[i], a.Head[i], a.Dep[i], a.Ents[i], a.Tag[i])
	}
}

func (r *Renderer) iob(a token.Annotations) {
	for i := range a.Orth {
		tag := a.Ents[i]
		if r.HasColor && tag != token.Outside {
			tag = r.labelColor(tag[strings.Index(tag, "-")+1:]) + tag + Off
		}

		fmt.Fprintf(r.W, "%20s %s\n", a.Orth[i], tag)
	}
}

func (r *Renderer) labelColor(label string) string {
	if c, ok := r.labelColors[label]; ok {
		return c
	}

	c := palette[len(r.labelColors)%len(palette)]
	r.labelColors[label] = c

	return c
}
