package stat

import (
	"github.com/techthiyanes/augmenty/token"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumDocs      int
	NumSentences int
	NumTokens    int

	// NumEnts counts entity spans per type label
	NumEnts map[string]int

	// EntLenDis is the distribution of entity span lengths in tokens
	EntLenDis map[int]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		NumEnts:   map[string]int{},
		EntLenDis: map[int]int{},
	}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds one document to the statistics. The entity type counts
// are what the ent_types and ent_dict options of an augmenter config
// should be chosen against.
func (h *Handler) Aggregate(doc token.Doc) {
	h.stats.NumDocs++
	h.stats.NumTokens += doc.Anno.Len()

	for _, s := range doc.Anno.SentStart {
		if s == 1 {
			h.stats.NumSentences++
		}
	}

	for _, ent := range doc.Anno.EntSpans() {
		h.stats.NumEnts[ent.Label]++
		h.stats.EntLenDis[ent.End-ent.Start]++
	}
}
