package token

import (
	"reflect"
	"testing"
)

func TestEntsDecode(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want []Span
	}{
		{
			name: "none",
			tags: []string{"O", "O", "O"},
			want: nil,
		},
		{
			name: "single token",
			tags: []string{"O", "U-PER", "O"},
			want: []Span{{Start: 1, End: 2, Label: "PER"}},
		},
		{
			name: "multi token",
			tags: []string{"B-PER", "I-PER", "L-PER", "O"},
			want: []Span{{Start: 0, End: 3, Label: "PER"}},
		},
		{
			name: "two token span",
			tags: []string{"O", "B-ORG", "L-ORG"},
			want: []Span{{Start: 1, End: 3, Label: "ORG"}},
		},
		{
			name: "adjacent spans",
			tags: []string{"U-PER", "B-ORG", "L-ORG", "U-LOC"},
			want: []Span{
				{Start: 0, End: 1, Label: "PER"},
				{Start: 1, End: 3, Label: "ORG"},
				{Start: 3, End: 4, Label: "LOC"},
			},
		},
		{
			name: "document order",
			tags: []string{"O", "U-PER", "O", "B-PER", "L-PER", "O", "U-ORG"},
			want: []Span{
				{Start: 1, End: 2, Label: "PER"},
				{Start: 3, End: 5, Label: "PER"},
				{Start: 6, End: 7, Label: "ORG"},
			},
		},
		{
			name: "unterminated span closed at end",
			tags: []string{"O", "B-PER", "I-PER"},
			want: []Span{{Start: 1, End: 3, Label: "PER"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Annotations{Ents: tc.tags}.EntSpans()
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestIOB(t *testing.T) {
	if got := IOB("PER", 1); !reflect.DeepEqual(got, []string{"U-PER"}) {
		t.Fatalf("unexpected single token tags: %v", got)
	}

	want := []string{"B-PER", "L-PER"}
	if got := IOB("PER", 2); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected two token tags: %v", got)
	}

	want = []string{"B-ORG", "I-ORG", "I-ORG", "L-ORG"}
	if got := IOB("ORG", 4); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected four token tags: %v", got)
	}

	if got := IOB("PER", 0); got != nil {
		t.Fatalf("expected no tags for empty span, got %v", got)
	}
}

func TestEntsRoundTrip(t *testing.T) {
	tags := append([]string{"O"}, IOB("PER", 3)...)
	tags = append(tags, "O")

	spans := Annotations{Ents: tags}.EntSpans()
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %v", spans)
	}

	if spans[0].Start != 1 || spans[0].End != 4 || spans[0].Label != "PER" {
		t.Fatalf("unexpected span %v", spans[0])
	}
}
