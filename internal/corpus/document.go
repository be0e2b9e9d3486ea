// Package corpus loads the source texts and produces clean Documents for
// analysis: boilerplate markers stripped, whitespace normalized, metadata
// derived from the filename.
package corpus

import (
	"path/filepath"
	"strings"
)

// Document is one source text. Immutable once loaded; ID is unique across
// the corpus.
type Document struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// Metadata derives title and id from a corpus filename. The corpus prefix
// and the extension are dropped; the id is the lowercased title with spaces
// as underscores and commas removed.
func Metadata(filename, prefix string) (id, title string) {
	title = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	title = strings.TrimPrefix(title, prefix)

	id = strings.ToLower(title)
	id = strings.ReplaceAll(id, " ", "_")
	id = strings.ReplaceAll(id, ",", "")
	return id, title
}
