// Package compare runs the cross-text phase: pairwise vocabulary overlap and
// corpus-wide aggregate statistics over the per-text records. It requires
// every per-text record to exist before it runs.
package compare

import (
	"distant_reader/internal/corpus"
	"distant_reader/internal/stats"
	"distant_reader/internal/textproc"
)

// Pair reports vocabulary overlap for one unordered document pair.
// SharedWords and JaccardSimilarity are symmetric.
type Pair struct {
	Text1                  string  `json:"text1"`
	Text2                  string  `json:"text2"`
	SharedWords            int     `json:"shared_words"`
	UniqueToText1          int     `json:"unique_to_text1"`
	UniqueToText2          int     `json:"unique_to_text2"`
	JaccardSimilarity      float64 `json:"jaccard_similarity"`
	OverlapPercentageText1 float64 `json:"overlap_percentage_text1"`
	OverlapPercentageText2 float64 `json:"overlap_percentage_text2"`
}

// VocabularyOverlap holds one Pair per unordered pair plus the full N×N
// similarity matrix (diagonal 1.0, symmetric).
type VocabularyOverlap struct {
	Pairs            []Pair                        `json:"pairs"`
	SimilarityMatrix map[string]map[string]float64 `json:"similarity_matrix"`
}

// ProgressFunc receives one callback per compared pair. Diagnostic only.
type ProgressFunc func(current, total int, id1, id2 string)

// Overlap compares every unordered document pair in input order. progress
// may be nil.
func Overlap(tok *textproc.Tokenizer, docs []corpus.Document, progress ProgressFunc) VocabularyOverlap {
	sets := make([]map[string]struct{}, len(docs))
	for i, d := range docs {
		sets[i] = wordSet(tok, d.Content)
	}

	matrix := make(map[string]map[string]float64, len(docs))
	for _, d := range docs {
		row := make(map[string]float64, len(docs))
		for _, other := range docs {
			row[other.ID] = 0.0
		}
		row[d.ID] = 1.0
		matrix[d.ID] = row
	}

	total := len(docs) * (len(docs) - 1) / 2
	pairs := make([]Pair, 0, total)
	current := 0
	for i := range docs {
		for j := i + 1; j < len(docs); j++ {
			current++
			if progress != nil {
				progress(current, total, docs[i].ID, docs[j].ID)
			}
			p := comparePair(docs[i].ID, docs[j].ID, sets[i], sets[j])
			pairs = append(pairs, p)
			matrix[docs[i].ID][docs[j].ID] = p.JaccardSimilarity
			matrix[docs[j].ID][docs[i].ID] = p.JaccardSimilarity
		}
	}

	return VocabularyOverlap{Pairs: pairs, SimilarityMatrix: matrix}
}

func comparePair(id1, id2 string, a, b map[string]struct{}) Pair {
	shared := 0
	for w := range a {
		if _, ok := b[w]; ok {
			shared++
		}
	}
	union := len(a) + len(b) - shared

	jaccard := 0.0
	if union > 0 {
		jaccard = float64(shared) / float64(union)
	}
	pct1 := 0.0
	if len(a) > 0 {
		pct1 = float64(shared) / float64(len(a)) * 100
	}
	pct2 := 0.0
	if len(b) > 0 {
		pct2 = float64(shared) / float64(len(b)) * 100
	}

	return Pair{
		Text1:                  id1,
		Text2:                  id2,
		SharedWords:            shared,
		UniqueToText1:          len(a) - shared,
		UniqueToText2:          len(b) - shared,
		JaccardSimilarity:      stats.Round(jaccard, 4),
		OverlapPercentageText1: stats.Round(pct1, 2),
		OverlapPercentageText2: stats.Round(pct2, 2),
	}
}

func wordSet(tok *textproc.Tokenizer, text string) map[string]struct{} {
	words := tok.Words(text)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
