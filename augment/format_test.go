package augment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techthiyanes/augmenty/token"
)

func intp(i int) *int {
	return &i
}

// plainNameDoc is "my name is Kenneth Enevoldsen", no final punct.
func plainNameDoc() token.Doc {
	return token.Doc{
		Anno: token.Annotations{
			Orth:       []string{"my", "name", "is", "Kenneth", "Enevoldsen"},
			Lemma:      []string{"my", "name", "be", "Kenneth", "Enevoldsen"},
			Pos:        []string{"PRON", "NOUN", "AUX", "PROPN", "PROPN"},
			Tag:        []string{"PRP$", "NN", "VBZ", "NNP", "NNP"},
			Morph:      []string{"Poss=Yes", "Number=Sing", "", "", ""},
			Dep:        []string{"poss", "nsubj", "ROOT", "attr", "flat"},
			Head:       []int{1, 2, 2, 2, 3},
			SentStart:  []int{1, 0, 0, 0, 0},
			SpaceAfter: []bool{true, true, true, true, false},
			Ents:       []string{"O", "O", "O", "B-PER", "L-PER"},
		},
	}
}

func TestFormatSwapsTokens(t *testing.T) {
	g, err := NewEntFormatter([]*int{intp(1), intp(0)}, nil, 1.0, nil, WithRand(rng(1)))
	require.NoError(t, err)

	doc := plainNameDoc()
	out, err := g.Augment(doc)
	require.NoError(t, err)
	require.Len(t, out, 1)

	a := out[0].Anno
	assert.Equal(t, []string{"my", "name", "is", "Enevoldsen", "Kenneth"}, a.Orth)
	assert.Equal(t, []string{"my", "name", "be", "Enevoldsen", "Kenneth"}, a.Lemma)

	// only the surface-form arrays change
	assert.Equal(t, doc.Anno.Head, a.Head)
	assert.Equal(t, doc.Anno.Ents, a.Ents)
	assert.Equal(t, doc.Anno.Dep, a.Dep)
	assert.Equal(t, doc.Anno.Tag, a.Tag)
	assert.Equal(t, doc.Anno.Len(), a.Len())
}

func TestFormatSwapsTokensBeforePunct(t *testing.T) {
	g, err := NewEntFormatter([]*int{intp(1), intp(0)}, nil, 1.0, nil, WithRand(rng(1)))
	require.NoError(t, err)

	doc := nameDoc()
	out, err := g.Augment(doc)
	require.NoError(t, err)

	a := out[0].Anno
	assert.Equal(t, []string{"My", "name", "is", "Enevoldsen", "Kenneth", "."}, a.Orth)
	assert.Equal(t, doc.Anno.Ents, a.Ents)
	assert.Equal(t, "My name is Enevoldsen Kenneth.", a.Text())
}

func TestFormatWildcardAndAbbreviate(t *testing.T) {
	abbreviate := func(orth string) string {
		return orth[:1] + "."
	}

	// last name first, then the remainder, abbreviated
	g, err := NewEntFormatter([]*int{intp(-1), nil}, []Formatter{nil, abbreviate}, 1.0, nil, WithRand(rng(1)))
	require.NoError(t, err)

	out, err := g.Augment(plainNameDoc())
	require.NoError(t, err)

	a := out[0].Anno
	assert.Equal(t, []string{"my", "name", "is", "Enevoldsen", "K."}, a.Orth)
	assert.Equal(t, "my name is Enevoldsen K.", a.Text())
}

func TestFormatIndexPastEntitySkipped(t *testing.T) {
	// a 3-slot pattern applied to a 2-token name: the 2 is ignored
	g, err := NewEntFormatter([]*int{intp(2), intp(1), intp(0)}, nil, 1.0, nil, WithRand(rng(1)))
	require.NoError(t, err)

	out, err := g.Augment(plainNameDoc())
	require.NoError(t, err)

	assert.Equal(t, []string{"my", "name", "is", "Enevoldsen", "Kenneth"}, out[0].Anno.Orth)
}

func TestFormatTypeFilter(t *testing.T) {
	g, err := NewEntFormatter([]*int{intp(1), intp(0)}, nil, 1.0, []string{"ORG"}, WithRand(rng(1)))
	require.NoError(t, err)

	doc := plainNameDoc()
	out, err := g.Augment(doc)
	require.NoError(t, err)

	assert.Equal(t, doc.Anno, out[0].Anno)
}

func TestFormatLevelZeroIsNoop(t *testing.T) {
	g, err := NewEntFormatter([]*int{intp(1), intp(0)}, nil, 0.0, nil, WithRand(rng(1)))
	require.NoError(t, err)

	doc := plainNameDoc()
	out, err := g.Augment(doc)
	require.NoError(t, err)

	assert.Equal(t, doc.Anno, out[0].Anno)
}

func TestFormatLengthChangeFailsLoudly(t *testing.T) {
	// a single fixed slot can not cover a two-token span
	g, err := NewEntFormatter([]*int{intp(0)}, nil, 1.0, nil, WithRand(rng(1)))
	require.NoError(t, err)

	_, err = g.Augment(plainNameDoc())
	assert.ErrorIs(t, err, ErrAlignment)
}

func TestNewEntFormatterRejectsMultipleWildcards(t *testing.T) {
	_, err := NewEntFormatter([]*int{nil, intp(0), nil}, nil, 1.0, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewEntFormatterRejectsEmptyReordering(t *testing.T) {
	_, err := NewEntFormatter(nil, nil, 1.0, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
