package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/techthiyanes/augmenty/storage"
	"github.com/techthiyanes/augmenty/token"
)

// DocHandler stores documents in SQLite: metadata columns plus the
// annotation arrays as one JSON blob per document.
type DocHandler struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocHandler)(nil)

func NewDocHandler(pool *sqlitex.Pool) *DocHandler {
	return &DocHandler{pool: pool}
}

func (h *DocHandler) List(labelMatch string) ([]token.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var docs []token.Doc
	err = sqlitex.Execute(conn, "SELECT id, title, labels FROM docs ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			doc := token.Doc{
				Id:    stmt.ColumnInt(0),
				Title: stmt.ColumnText(1),
			}
			labelsStr := stmt.ColumnText(2)
			if labelsStr != "" {
				doc.Labels = strings.Split(labelsStr, ",")
			}

			if !matchesLabel(doc.Labels, labelMatch) {
				return nil
			}

			docs = append(docs, doc)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (h *DocHandler) Read(id int) (token.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return token.Doc{}, err
	}
	defer h.pool.Put(conn)

	doc := token.Doc{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT title, labels, anno FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Title = stmt.ColumnText(0)

			labelsStr := stmt.ColumnText(1)
			if labelsStr != "" {
				doc.Labels = strings.Split(labelsStr, ",")
			}

			return json.Unmarshal([]byte(stmt.ColumnText(2)), &doc.Anno)
		},
	})
	if err != nil {
		return token.Doc{}, err
	}
	if !found {
		return token.Doc{}, fmt.Errorf("doc not found: %d", id)
	}

	return doc, nil
}

func (h *DocHandler) Write(doc token.Doc) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	anno, err := json.Marshal(doc.Anno)
	if err != nil {
		return err
	}

	return sqlitex.Execute(conn,
		"INSERT INTO docs (id, title, labels, anno) VALUES (?, ?, ?, ?) "+
			"ON CONFLICT(id) DO UPDATE SET title = excluded.title, labels = excluded.labels, anno = excluded.anno",
		&sqlitex.ExecOptions{
			Args: []interface{}{doc.Id, doc.Title, strings.Join(doc.Labels, ","), string(anno)},
		})
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
