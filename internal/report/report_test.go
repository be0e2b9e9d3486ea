package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"distant_reader/internal/analyze"
	"distant_reader/internal/sentiment"
	"distant_reader/internal/style"
)

func sampleRecords() []analyze.MetricRecord {
	return []analyze.MetricRecord{
		{
			ID: "zarathustra", Title: "Thus Spake Zarathustra",
			WordCount: 1000, UniqueWords: 400,
			Sentiment:    sentiment.Report{VADER: sentiment.Scores{Compound: 0.25}},
			StyleMetrics: analyze.StyleMetrics{Readability: style.Readability{FleschReadingEase: 65.2}},
		},
		{
			ID: "antichrist", Title: "The Antichrist",
			WordCount: 800, UniqueWords: 350,
			Sentiment:    sentiment.Report{VADER: sentiment.Scores{Compound: -0.4}},
			StyleMetrics: analyze.StyleMetrics{Readability: style.Readability{FleschReadingEase: 58.1}},
		},
	}
}

func TestNewMetadata(t *testing.T) {
	when := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	meta := NewMetadata(when, 5, "1.0")

	if meta.Generated != "2026-03-14T09:30:00Z" {
		t.Fatalf("unexpected timestamp: %q", meta.Generated)
	}
	if meta.TotalTexts != 5 || meta.AnalysisVersion != "1.0" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
	if meta.RunID == "" {
		t.Fatalf("expected non-empty run id")
	}
	if meta.RunID == NewMetadata(when, 5, "1.0").RunID {
		t.Fatalf("run ids should differ between runs")
	}
}

func TestBuild(t *testing.T) {
	meta := NewMetadata(time.Now(), 2, "1.0")
	r := Build(meta, sampleRecords(), Comparative{})
	if len(r.Texts) != 2 {
		t.Fatalf("expected 2 texts, got %d", len(r.Texts))
	}
	if r.Metadata.RunID != meta.RunID {
		t.Fatalf("metadata not carried through")
	}
}

func TestSummarize(t *testing.T) {
	r := Build(NewMetadata(time.Now(), 2, "1.0"), sampleRecords(), Comparative{})
	s := Summarize(r)

	if len(s.Texts) != 2 {
		t.Fatalf("expected 2 text summaries, got %d", len(s.Texts))
	}
	first := s.Texts[0]
	if first.ID != "zarathustra" || first.WordCount != 1000 {
		t.Fatalf("unexpected first summary: %+v", first)
	}
	if first.Sentiment != 0.25 {
		t.Fatalf("expected compound 0.25, got %v", first.Sentiment)
	}
	if first.Readability != 65.2 {
		t.Fatalf("expected reading ease 65.2, got %v", first.Readability)
	}
	if s.Metadata.RunID != r.Metadata.RunID {
		t.Fatalf("summary metadata mismatch")
	}
}

func TestSaveWritesIndentedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	r := Build(NewMetadata(time.Now(), 2, "1.0"), sampleRecords(), Comparative{})
	if err := Save(path, r); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(raw), "\n  \"metadata\"") {
		t.Fatalf("output not indented: %s", raw[:80])
	}

	var back CorpusReport
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back.Texts) != 2 || back.Texts[0].ID != "zarathustra" {
		t.Fatalf("round trip lost data: %+v", back.Texts)
	}
}

func TestSaveUnwritablePath(t *testing.T) {
	r := Build(NewMetadata(time.Now(), 0, "1.0"), nil, Comparative{})
	if err := Save(filepath.Join(t.TempDir(), "missing", "report.json"), r); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}
