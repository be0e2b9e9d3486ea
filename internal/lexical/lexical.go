// Package lexical computes word-frequency and vocabulary-richness metrics
// for a single text.
package lexical

import (
	"math"
	"sort"

	"distant_reader/internal/stats"
	"distant_reader/internal/textproc"
)

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type BagOfWords struct {
	Top                []WordCount `json:"top_100"`
	TotalVocabulary    int         `json:"total_vocabulary"`
	TotalWordsAnalyzed int         `json:"total_words_analyzed"`
}

type Vocabulary struct {
	TotalWords       int     `json:"total_words"`
	UniqueWords      int     `json:"unique_words"`
	TypeTokenRatio   float64 `json:"type_token_ratio"`
	LexicalDiversity float64 `json:"lexical_diversity"`
}

type LengthBins struct {
	OneToThree  int `json:"1-3"`
	FourToSix   int `json:"4-6"`
	SevenToNine int `json:"7-9"`
	TenPlus     int `json:"10+"`
}

type WordLength struct {
	Average      float64    `json:"average"`
	Distribution LengthBins `json:"distribution"`
}

// Frequencies builds the content-word frequency table and returns the topN
// entries ranked by descending count. Ties keep first-encounter order.
func Frequencies(tok *textproc.Tokenizer, text string, topN int) BagOfWords {
	words := tok.ContentWords(text)

	counts := make(map[string]int, len(words))
	firstSeen := make(map[string]int, len(words))
	order := make([]string, 0, len(words))
	for i, w := range words {
		if _, ok := counts[w]; !ok {
			firstSeen[w] = i
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		ci, cj := counts[order[i]], counts[order[j]]
		if ci != cj {
			return ci > cj
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if topN > len(order) {
		topN = len(order)
	}
	top := make([]WordCount, 0, topN)
	for _, w := range order[:topN] {
		top = append(top, WordCount{Word: w, Count: counts[w]})
	}

	return BagOfWords{
		Top:                top,
		TotalVocabulary:    len(counts),
		TotalWordsAnalyzed: len(words),
	}
}

// Richness computes vocabulary-richness metrics over all alphabetic words.
// Both ratios are zero for empty input.
func Richness(tok *textproc.Tokenizer, text string) Vocabulary {
	words := tok.Words(text)
	total := len(words)
	seen := make(map[string]struct{}, total)
	for _, w := range words {
		seen[w] = struct{}{}
	}
	unique := len(seen)

	ttr := 0.0
	diversity := 0.0
	if total > 0 {
		ttr = float64(unique) / float64(total)
		// unique/sqrt(total) is more stable than TTR for long texts.
		diversity = float64(unique) / math.Sqrt(float64(total))
	}

	return Vocabulary{
		TotalWords:       total,
		UniqueWords:      unique,
		TypeTokenRatio:   stats.Round(ttr, 4),
		LexicalDiversity: stats.Round(diversity, 4),
	}
}

// Lengths bins alphabetic words by rune length. The bins cover every
// positive length exactly once.
func Lengths(tok *textproc.Tokenizer, text string) WordLength {
	words := tok.Words(text)
	if len(words) == 0 {
		return WordLength{}
	}

	var bins LengthBins
	total := 0
	for _, w := range words {
		n := len([]rune(w))
		total += n
		switch {
		case n <= 3:
			bins.OneToThree++
		case n <= 6:
			bins.FourToSix++
		case n <= 9:
			bins.SevenToNine++
		default:
			bins.TenPlus++
		}
	}

	return WordLength{
		Average:      stats.Round(float64(total)/float64(len(words)), 2),
		Distribution: bins,
	}
}
