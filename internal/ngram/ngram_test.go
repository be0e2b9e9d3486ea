package ngram

import (
	"testing"

	"distant_reader/internal/textproc"
)

func noStop(string) bool { return false }

func TestExtractBigrams(t *testing.T) {
	got := Extract([]string{"power", "great", "power"}, noStop, 2, 10)
	if len(got) != 2 {
		t.Fatalf("expected 2 bigrams, got %d", len(got))
	}
	if got[0].Phrase != "power great" || got[0].Count != 1 {
		t.Fatalf("unexpected first bigram: %+v", got[0])
	}
	if got[1].Phrase != "great power" || got[1].Count != 1 {
		t.Fatalf("unexpected second bigram: %+v", got[1])
	}
}

func TestExtractRanksByCountThenFirstSeen(t *testing.T) {
	tokens := []string{"b", "c", "a", "b", "a", "b"}
	got := Extract(tokens, noStop, 2, 10)
	if got[0].Phrase != "a b" || got[0].Count != 2 {
		t.Fatalf("expected 'a b' x2 first, got %+v", got[0])
	}
	// Remaining bigrams all count 1; order follows first encounter.
	if got[1].Phrase != "b c" || got[2].Phrase != "c a" || got[3].Phrase != "b a" {
		t.Fatalf("unexpected tie order: %+v", got)
	}
}

func TestExtractDropsAllStopwordWindows(t *testing.T) {
	tok := textproc.Default()
	tokens := []string{"the", "same", "will", "the", "power"}
	got := Extract(tokens, tok.IsStopword, 2, 10)
	for _, p := range got {
		if p.Phrase == "the same" || p.Phrase == "same will" {
			t.Fatalf("all-stopword window survived: %+v", p)
		}
	}
	found := false
	for _, p := range got {
		if p.Phrase == "the power" {
			found = true
		}
	}
	if !found {
		t.Fatalf("mixed window should survive, got %+v", got)
	}
}

func TestExtractTopKCap(t *testing.T) {
	tokens := []string{"a", "b", "c", "d", "e", "f"}
	got := Extract(tokens, noStop, 2, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 phrases, got %d", len(got))
	}
}

func TestExtractShortInput(t *testing.T) {
	if got := Extract([]string{"alone"}, noStop, 2, 10); len(got) != 0 {
		t.Fatalf("expected no bigrams from one token, got %+v", got)
	}
	if got := Extract(nil, noStop, 3, 10); len(got) != 0 {
		t.Fatalf("expected no trigrams from nil tokens, got %+v", got)
	}
}
