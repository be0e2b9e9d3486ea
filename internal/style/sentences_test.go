package style

import (
	"strings"
	"testing"

	"distant_reader/internal/textproc"
)

func TestAnalyzeSentencesEmptyText(t *testing.T) {
	tok := textproc.Default()
	s := AnalyzeSentences(tok, "")
	if s.Count != 0 || s.AvgLength != 0 || s.MedianLength != 0 || s.StdDev != 0 {
		t.Fatalf("expected zeroed stats, got %+v", s)
	}
	sum := s.Distribution.ZeroToTen + s.Distribution.ElevenTwenty + s.Distribution.TwentyOne30 +
		s.Distribution.ThirtyOne40 + s.Distribution.FortyOne50 + s.Distribution.FiftyOnePlus
	if sum != 0 {
		t.Fatalf("expected empty histogram, got %+v", s.Distribution)
	}
}

func TestAnalyzeSentencesStats(t *testing.T) {
	tok := textproc.Default()
	// Token counts per sentence: 2, 4, 6 (punctuation-free fragments).
	s := AnalyzeSentences(tok, "one two. one two three four. one two three four five six.")
	if s.Count != 3 {
		t.Fatalf("expected 3 sentences, got %d", s.Count)
	}
	if s.AvgLength != 4 {
		t.Fatalf("expected avg 4, got %v", s.AvgLength)
	}
	if s.MedianLength != 4 {
		t.Fatalf("expected median 4, got %v", s.MedianLength)
	}
	if s.StdDev != 2 {
		t.Fatalf("expected sample stdev 2, got %v", s.StdDev)
	}
	if s.MinLength != 2 || s.MaxLength != 6 {
		t.Fatalf("expected min 2 max 6, got %d/%d", s.MinLength, s.MaxLength)
	}
}

func TestSentenceHistogramSumsToCount(t *testing.T) {
	tok := textproc.Default()
	long := strings.Repeat("word ", 55)
	text := "short one. " + strings.Repeat("word ", 25) + ". " + long + "."
	s := AnalyzeSentences(tok, text)
	sum := s.Distribution.ZeroToTen + s.Distribution.ElevenTwenty + s.Distribution.TwentyOne30 +
		s.Distribution.ThirtyOne40 + s.Distribution.FortyOne50 + s.Distribution.FiftyOnePlus
	if sum != s.Count {
		t.Fatalf("histogram sum %d != sentence count %d", sum, s.Count)
	}
	if s.Distribution.FiftyOnePlus != 1 {
		t.Fatalf("expected one 51+ sentence, got %d", s.Distribution.FiftyOnePlus)
	}
}

func TestSingleSentenceStdDevIsZero(t *testing.T) {
	tok := textproc.Default()
	s := AnalyzeSentences(tok, "only one sentence here")
	if s.Count != 1 {
		t.Fatalf("expected 1 sentence, got %d", s.Count)
	}
	if s.StdDev != 0 {
		t.Fatalf("expected stdev 0, got %v", s.StdDev)
	}
}
