package render

import (
	"encoding/json"
	"io"

	"github.com/techthiyanes/augmenty/token"
)

// JSONRenderer writes documents as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes documents as a JSON array.
func (r *JSONRenderer) Render(docs []token.Doc) error {
	if docs == nil {
		docs = []token.Doc{}
	}

	return json.NewEncoder(r.W).Encode(docs)
}
