package tokenize

import (
	"reflect"
	"testing"
)

func TestMakeDocWhitespace(t *testing.T) {
	doc := Simple{}.MakeDoc("My name is Kenneth")

	want := []string{"My", "name", "is", "Kenneth"}
	if !reflect.DeepEqual(doc.Texts(), want) {
		t.Fatalf("expected %v, got %v", want, doc.Texts())
	}

	for i, tok := range doc.Tokens {
		wantSpace := i < len(doc.Tokens)-1
		if tok.SpaceAfter != wantSpace {
			t.Fatalf("token %d: expected space_after=%t", i, wantSpace)
		}
	}
}

func TestMakeDocSplitsTrailingPunct(t *testing.T) {
	doc := Simple{}.MakeDoc("My name is Kenneth Enevoldsen.")

	want := []string{"My", "name", "is", "Kenneth", "Enevoldsen", "."}
	if !reflect.DeepEqual(doc.Texts(), want) {
		t.Fatalf("expected %v, got %v", want, doc.Texts())
	}

	// "Enevoldsen" and "." carry no space
	if doc.Tokens[4].SpaceAfter || doc.Tokens[5].SpaceAfter {
		t.Fatal("expected no space after the last word and the period")
	}
}

func TestMakeDocSplitsLeadingPunct(t *testing.T) {
	doc := Simple{}.MakeDoc("(Hello) world")

	want := []string{"(", "Hello", ")", "world"}
	if !reflect.DeepEqual(doc.Texts(), want) {
		t.Fatalf("expected %v, got %v", want, doc.Texts())
	}
}

func TestMakeDocKeepsAbbreviations(t *testing.T) {
	doc := Simple{}.MakeDoc("Enevoldsen K. works")

	want := []string{"Enevoldsen", "K.", "works"}
	if !reflect.DeepEqual(doc.Texts(), want) {
		t.Fatalf("expected %v, got %v", want, doc.Texts())
	}
}

func TestMakeDocKeepsAcronyms(t *testing.T) {
	doc := Simple{}.MakeDoc("the U.S. economy")

	want := []string{"the", "U.S.", "economy"}
	if !reflect.DeepEqual(doc.Texts(), want) {
		t.Fatalf("expected %v, got %v", want, doc.Texts())
	}
}

func TestMakeDocIdx(t *testing.T) {
	doc := Simple{}.MakeDoc("Hi there.")

	wantIdx := []int{0, 3, 8}
	for i, tok := range doc.Tokens {
		if tok.Idx != wantIdx[i] {
			t.Fatalf("token %d (%q): expected idx %d, got %d", i, tok.Text, wantIdx[i], tok.Idx)
		}
	}
}

func TestMakeDocTrailingSpace(t *testing.T) {
	doc := Simple{}.MakeDoc("Hello world ")

	if !doc.Tokens[1].SpaceAfter {
		t.Fatal("expected trailing space to set space_after on the last token")
	}
}

func TestMakeDocEmpty(t *testing.T) {
	doc := Simple{}.MakeDoc("")

	if len(doc.Tokens) != 0 {
		t.Fatalf("expected no tokens, got %v", doc.Texts())
	}
}
