// Package style computes stylometric measures: sentence-length statistics,
// readability scores, and punctuation usage.
package style

import (
	"distant_reader/internal/stats"
	"distant_reader/internal/textproc"
)

type SentenceBuckets struct {
	ZeroToTen     int `json:"0-10"`
	ElevenTwenty  int `json:"11-20"`
	TwentyOne30   int `json:"21-30"`
	ThirtyOne40   int `json:"31-40"`
	FortyOne50    int `json:"41-50"`
	FiftyOnePlus  int `json:"51+"`
}

type Sentences struct {
	Count        int             `json:"count"`
	AvgLength    float64         `json:"avg_length"`
	MedianLength float64         `json:"median_length"`
	StdDev       float64         `json:"std_dev"`
	MinLength    int             `json:"min_length"`
	MaxLength    int             `json:"max_length"`
	Distribution SentenceBuckets `json:"distribution"`
}

// AnalyzeSentences reports per-sentence token counts. Lengths count every
// token including punctuation. Std dev is the sample deviation and is zero
// for fewer than two sentences.
func AnalyzeSentences(tok *textproc.Tokenizer, text string) Sentences {
	sentences := tok.Sentences(text)
	if len(sentences) == 0 {
		return Sentences{}
	}

	lengths := make([]float64, 0, len(sentences))
	var bins SentenceBuckets
	minLen, maxLen := -1, 0
	for _, s := range sentences {
		n := len(tok.Tokens(s))
		lengths = append(lengths, float64(n))
		if minLen == -1 || n < minLen {
			minLen = n
		}
		if n > maxLen {
			maxLen = n
		}
		switch {
		case n <= 10:
			bins.ZeroToTen++
		case n <= 20:
			bins.ElevenTwenty++
		case n <= 30:
			bins.TwentyOne30++
		case n <= 40:
			bins.ThirtyOne40++
		case n <= 50:
			bins.FortyOne50++
		default:
			bins.FiftyOnePlus++
		}
	}

	return Sentences{
		Count:        len(sentences),
		AvgLength:    stats.Round(stats.Mean(lengths), 2),
		MedianLength: stats.Round(stats.Median(lengths), 2),
		StdDev:       stats.Round(stats.SampleStdDev(lengths), 2),
		MinLength:    minLen,
		MaxLength:    maxLen,
		Distribution: bins,
	}
}
