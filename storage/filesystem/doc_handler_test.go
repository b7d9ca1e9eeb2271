package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techthiyanes/augmenty/token"
)

func sampleDoc(title string, labels []string) token.Doc {
	return token.Doc{
		Title:  title,
		Labels: labels,
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
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	w, err := NewDocHandler(dir)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleDoc("greeting", []string{"news"})))
	require.NoError(t, w.Write(sampleDoc("other", nil)))

	r, err := NewDocHandler(dir)
	require.NoError(t, err)
	require.NoError(t, r.Load(nil))

	metas, err := r.List("")
	require.NoError(t, err)
	require.Len(t, metas, 2)

	doc, err := r.DocForName("greeting")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", "Kenneth"}, doc.Anno.Orth)
	assert.Equal(t, []string{"O", "U-PER"}, doc.Anno.Ents)

	byId, err := r.Read(doc.Id)
	require.NoError(t, err)
	assert.Equal(t, doc.Title, byId.Title)
}

func TestListFiltersByLabel(t *testing.T) {
	dir := t.TempDir()

	w, err := NewDocHandler(dir)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleDoc("a", []string{"news"})))
	require.NoError(t, w.Write(sampleDoc("b", []string{"fiction"})))

	r, err := NewDocHandler(dir)
	require.NoError(t, err)
	require.NoError(t, r.Load(nil))

	metas, err := r.List("fic")
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, "b", metas[0].Title)
}

func TestReadOutOfRange(t *testing.T) {
	r, err := NewDocHandler(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, r.Load(nil))

	_, err = r.Read(3)
	assert.Error(t, err)
}
