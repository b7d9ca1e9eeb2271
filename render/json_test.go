package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/techthiyanes/augmenty/token"
)

func TestJSONRendererRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(nil); err != nil {
		t.Fatalf("failed to render: %v", err)
	}

	var docs []token.Doc
	if err := json.Unmarshal(buf.Bytes(), &docs); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(docs) != 0 {
		t.Fatalf("expected 0 docs, got %d", len(docs))
	}
}

func TestJSONRendererRenderOneDoc(t *testing.T) {
	doc := token.Doc{
		Id:     5,
		Title:  "test-doc",
		Labels: []string{"news"},
		Anno: token.Annotations{
			Orth:       []string{"Hello", "Kenneth"},
			Lemma:      []string{"hello", "Kenneth"},
			Pos:        []string{"INTJ", "PROPN"},
			Tag:        []string{"UH", "NNP"},
			Morph:      []string{"", ""},
			Dep:        []string{"ROOT", "vocative"},
			Head:       []int{0, 0},
			SentStart:  []int{1, 0},
			SpaceAfter: []bool{true, false},
			Ents:       []string{"O", "U-PER"},
		},
	}

	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render([]token.Doc{doc}); err != nil {
		t.Fatalf("failed to render: %v", err)
	}

	var docs []token.Doc
	if err := json.Unmarshal(buf.Bytes(), &docs); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(docs) != 1 {
		t.Fatalf("expected 1 doc, got %d", len(docs))
	}

	if docs[0].Title != "test-doc" {
		t.Errorf("expected title 'test-doc', got %q", docs[0].Title)
	}

	if docs[0].Anno.Len() != 2 {
		t.Errorf("expected 2 tokens, got %d", docs[0].Anno.Len())
	}

	if docs[0].Anno.Ents[1] != "U-PER" {
		t.Errorf("expected entity tag to survive the round trip, got %q", docs[0].Anno.Ents[1])
	}
}

func TestRendererTextNoColor(t *testing.T) {
	r := NewRenderer()
	r.HasColor = false

	a := token.Annotations{
		Orth:       []string{"Hello", "Kenneth", "!"},
		SpaceAfter: []bool{true, false, false},
		Ents:       []string{"O", "U-PER", "O"},
	}

	if got := r.Text(a); got != "Hello Kenneth!" {
		t.Fatalf("expected plain text, got %q", got)
	}
}

func TestRendererTextColorsEntity(t *testing.T) {
	r := NewRenderer()
	r.HasColor = true

	a := token.Annotations{
		Orth:       []string{"Hello", "Kenneth"},
		SpaceAfter: []bool{true, false},
		Ents:       []string{"O", "U-PER"},
	}

	got := r.Text(a)
	want := "Hello " + Teal + "Kenneth" + Off

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
