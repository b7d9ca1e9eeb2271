package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/techthiyanes/augmenty/storage"
	"github.com/techthiyanes/augmenty/token"
)

// DocHandler stores each document as one JSON file in a directory.
type DocHandler struct {
	docDir string

	// In-memory cache
	docs     []token.Doc
	docNames []string
}

var _ storage.DocRepository = (*DocHandler)(nil)

// NewDocHandler creates a filesystem document handler.
func NewDocHandler(docDir string) (*DocHandler, error) {
	return &DocHandler{
		docDir: docDir,
	}, nil
}

// Load preloads all docs into memory.
// The callback is called for each file loaded (total, current_name).
func (h *DocHandler) Load(cb func(total int, name string)) error {
	if h.docs != nil {
		return nil
	}

	files, err := os.ReadDir(h.docDir)
	if err != nil {
		return err
	}

	for _, file := range files {
		if filepath.Ext(file.Name()) == ".json" {
			h.docNames = append(h.docNames, file.Name())
		}
	}

	h.docs = make([]token.Doc, 0, len(h.docNames))

	total := len(h.docNames)
	for i, name := range h.docNames {
		if cb != nil {
			cb(total, name)
		}

		content, err := os.ReadFile(filepath.Join(h.docDir, name))
		if err != nil {
			return err
		}

		var doc token.Doc
		if err := json.Unmarshal(content, &doc); err != nil {
			return err
		}

		if doc.Title == "" {
			doc.Title = strings.TrimSuffix(name, ".json")
		}
		doc.Id = i

		if err := doc.Anno.Validate(); err != nil {
			return fmt.Errorf("doc %s: %w", name, err)
		}

		h.docs = append(h.docs, doc)
	}

	return nil
}

func (h *DocHandler) Names() ([]string, error) {
	return h.docNames, nil
}

func (h *DocHandler) List(labelMatch string) ([]token.Doc, error) {
	var metas []token.Doc
	for _, doc := range h.docs {
		if !matchesLabel(doc.Labels, labelMatch) {
			continue
		}

		metas = append(metas, token.Doc{Id: doc.Id, Title: doc.Title, Labels: doc.Labels})
	}

	return metas, nil
}

func (h *DocHandler) Read(id int) (token.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return token.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}
	return h.docs[id], nil
}

func (h *DocHandler) DocForName(name string) (token.Doc, error) {
	for _, doc := range h.docs {
		if doc.Title == name {
			return doc, nil
		}
	}
	return token.Doc{}, fmt.Errorf("doc not found: %s", name)
}

// Write persists the document as <title>.json in the handler directory.
func (h *DocHandler) Write(doc token.Doc) error {
	if err := os.MkdirAll(h.docDir, 0755); err != nil {
		return err
	}

	name := doc.Title
	if name == "" {
		name = fmt.Sprintf("doc_%d", doc.Id)
	}

	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(h.docDir, name+".json"), content, 0644)
}

func matchesLabel(labels []string, labelMatch string) bool {
	if labelMatch == "" {
		return true
	}

	for _, l := range labels {
		if strings.Contains(l, labelMatch) {
			return true
		}
	}

	return false
}
