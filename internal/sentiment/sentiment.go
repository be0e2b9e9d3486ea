// Package sentiment scores text polarity. Long texts are scored in fixed
// character chunks whose component scores are averaged; the mean of chunk
// scores is not identical to a whole-text score, and that approximation is
// part of the contract.
package sentiment

import (
	"distant_reader/internal/chunk"
	"distant_reader/internal/stats"

	"github.com/jonreiter/govader"
)

// DefaultChunkSize is the chunking threshold in runes.
const DefaultChunkSize = 10000

type Scores struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

type Report struct {
	VADER Scores `json:"vader"`
}

// PolarityScorer scores a single chunk of text. Compound is in [-1,1];
// positive, negative, and neutral are non-negative and sum near 1.
type PolarityScorer interface {
	PolarityScores(text string) Scores
}

// VADERScorer is the default PolarityScorer, backed by the VADER lexicon.
type VADERScorer struct {
	score func(string) govader.Sentiment
}

func NewVADERScorer() *VADERScorer {
	analyzer := govader.NewSentimentIntensityAnalyzer()
	return &VADERScorer{score: analyzer.PolarityScores}
}

func (s *VADERScorer) PolarityScores(text string) Scores {
	r := s.score(text)
	return Scores{
		Compound: r.Compound,
		Positive: r.Positive,
		Negative: r.Negative,
		Neutral:  r.Neutral,
	}
}

// Analyze scores text with the given scorer, chunking at chunkSize runes.
// All four components are rounded to four decimal places.
func Analyze(text string, scorer PolarityScorer, chunkSize int) Report {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	chunks := chunk.Fixed(text, chunkSize)
	if len(chunks) == 0 {
		chunks = []string{text}
	}

	compounds := make([]float64, 0, len(chunks))
	positives := make([]float64, 0, len(chunks))
	negatives := make([]float64, 0, len(chunks))
	neutrals := make([]float64, 0, len(chunks))
	for _, c := range chunks {
		s := scorer.PolarityScores(c)
		compounds = append(compounds, s.Compound)
		positives = append(positives, s.Positive)
		negatives = append(negatives, s.Negative)
		neutrals = append(neutrals, s.Neutral)
	}

	return Report{VADER: Scores{
		Compound: stats.Round(stats.Mean(compounds), 4),
		Positive: stats.Round(stats.Mean(positives), 4),
		Negative: stats.Round(stats.Mean(negatives), 4),
		Neutral:  stats.Round(stats.Mean(neutrals), 4),
	}}
}
