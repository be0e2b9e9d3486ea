package pipeline

import (
	"fmt"
	"sync"
	"testing"

	"distant_reader/internal/analyze"
	"distant_reader/internal/corpus"
)

func smallCorpus(n int) []corpus.Document {
	docs := make([]corpus.Document, n)
	for i := range docs {
		docs[i] = corpus.Document{
			ID:      fmt.Sprintf("doc_%d", i),
			Title:   fmt.Sprintf("Doc %d", i),
			Content: fmt.Sprintf("abyss spirit courage text number %d.", i),
		}
	}
	return docs
}

func TestAnalyzeCorpusPreservesInputOrder(t *testing.T) {
	docs := smallCorpus(8)
	records := AnalyzeCorpus(docs, 4, analyze.NewDefault(), nil)

	if len(records) != len(docs) {
		t.Fatalf("expected %d records, got %d", len(docs), len(records))
	}
	for i, r := range records {
		if r.ID != docs[i].ID {
			t.Fatalf("record %d out of order: got %s want %s", i, r.ID, docs[i].ID)
		}
		if r.WordCount == 0 {
			t.Fatalf("record %d was not analyzed: %+v", i, r)
		}
	}
}

func TestAnalyzeCorpusSingleWorker(t *testing.T) {
	docs := smallCorpus(3)
	records := AnalyzeCorpus(docs, 1, analyze.NewDefault(), nil)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
}

func TestAnalyzeCorpusProgressCoversEveryDocument(t *testing.T) {
	docs := smallCorpus(5)
	var mu sync.Mutex
	seen := map[int]bool{}
	AnalyzeCorpus(docs, 3, analyze.NewDefault(), func(index int, doc corpus.Document) {
		mu.Lock()
		seen[index] = true
		mu.Unlock()
	})
	if len(seen) != 5 {
		t.Fatalf("expected progress for 5 documents, got %d", len(seen))
	}
}

func TestAnalyzeCorpusEmptyInput(t *testing.T) {
	records := AnalyzeCorpus(nil, 4, analyze.NewDefault(), nil)
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestAnalyzeCorpusDefaultsWorkerCount(t *testing.T) {
	docs := smallCorpus(2)
	records := AnalyzeCorpus(docs, 0, analyze.NewDefault(), nil)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}
