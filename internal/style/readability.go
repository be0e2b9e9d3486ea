package style

import (
	"distant_reader/internal/stats"
	"distant_reader/internal/textproc"

	"github.com/mtso/syllables"
)

type Readability struct {
	FleschReadingEase  float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade"`
	GunningFog         float64 `json:"gunning_fog"`
}

// ReadabilityScorer computes standard readability formula outputs for a text.
type ReadabilityScorer interface {
	Score(text string) Readability
}

// FormulaScorer is the default ReadabilityScorer. It applies the published
// Flesch, Flesch-Kincaid, and Gunning-Fog formulas over alphabetic word and
// sentence counts, with syllables counted per word.
type FormulaScorer struct {
	tok *textproc.Tokenizer
}

func NewFormulaScorer(tok *textproc.Tokenizer) *FormulaScorer {
	return &FormulaScorer{tok: tok}
}

func (f *FormulaScorer) Score(text string) Readability {
	words := f.tok.Words(text)
	if len(words) == 0 {
		return Readability{}
	}
	sentenceCount := len(f.tok.Sentences(text))
	if sentenceCount < 1 {
		sentenceCount = 1
	}

	totalSyllables := 0
	complexWords := 0
	for _, w := range words {
		n := syllables.In(w)
		totalSyllables += n
		if n >= 3 {
			complexWords++
		}
	}

	wordCount := float64(len(words))
	asl := wordCount / float64(sentenceCount)
	asw := float64(totalSyllables) / wordCount
	pctComplex := float64(complexWords) / wordCount * 100

	return Readability{
		FleschReadingEase:  stats.Round(206.835-1.015*asl-84.6*asw, 2),
		FleschKincaidGrade: stats.Round(0.39*asl+11.8*asw-15.59, 2),
		GunningFog:         stats.Round(0.4*(asl+pctComplex), 2),
	}
}
