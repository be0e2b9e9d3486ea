package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

var startMarker = regexp.MustCompile(`(?i)\*\*\* START OF (?:THE|THIS) PROJECT GUTENBERG EBOOK[^*]*\*\*\*`)
var endMarker = regexp.MustCompile(`(?i)\*\*\* END OF (?:THE|THIS) PROJECT GUTENBERG EBOOK[^*]*\*\*\*`)
var excessNewlines = regexp.MustCompile(`\n{3,}`)
var pageNumberLine = regexp.MustCompile(`\n\s*\d+\s*\n`)
var spaceRuns = regexp.MustCompile(`[ \t]+`)

// LoadDir reads every corpus file matching prefix in dir, in filename order,
// and returns one clean Document per file. Supported sources are plain text
// (Project Gutenberg markers stripped) and PDF.
func LoadDir(dir, prefix string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !strings.HasPrefix(name, prefix) || (ext != ".txt" && ext != ".pdf") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	docs := make([]Document, 0, len(names))
	for _, name := range names {
		doc, err := LoadFile(filepath.Join(dir, name), prefix)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// LoadFile loads and cleans a single corpus file.
func LoadFile(path, prefix string) (Document, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var text string
	switch ext {
	case ".txt":
		raw, err := os.ReadFile(path)
		if err != nil {
			return Document{}, fmt.Errorf("read file: %w", err)
		}
		text = removeBOM(string(raw))
		text, _ = ExtractContent(text)
	case ".pdf":
		extracted, err := extractPDF(path)
		if err != nil {
			return Document{}, err
		}
		text = extracted
	default:
		return Document{}, fmt.Errorf("unsupported file type: %s", ext)
	}

	id, title := Metadata(path, prefix)
	return Document{
		ID:       id,
		Title:    title,
		Filename: filepath.Base(path),
		Content:  CleanText(text),
	}, nil
}

// ExtractContent returns the text between the Project Gutenberg START and
// END markers. When either marker is missing the input is returned whole and
// found is false.
func ExtractContent(text string) (content string, found bool) {
	start := startMarker.FindStringIndex(text)
	end := endMarker.FindStringIndex(text)
	if start == nil || end == nil || start[1] > end[0] {
		return text, false
	}
	return strings.TrimSpace(text[start[1]:end[0]]), true
}

// CleanText collapses excessive blank lines, drops bare page-number lines,
// and normalizes runs of spaces and tabs.
func CleanText(text string) string {
	text = excessNewlines.ReplaceAllString(text, "\n\n")
	text = pageNumberLine.ReplaceAllString(text, "\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func removeBOM(text string) string {
	return strings.TrimPrefix(text, "\ufeff")
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no extractable text found in pdf")
	}
	return b.String(), nil
}
