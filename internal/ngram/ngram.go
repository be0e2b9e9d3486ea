// Package ngram extracts frequency-ranked contiguous word sequences.
package ngram

import (
	"sort"
	"strings"
)

type Phrase struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

// Extract counts sliding windows of n tokens and returns the topK most
// frequent, ties in first-encounter order. Windows whose tokens are all
// stopwords are discarded after generation; a window survives when at least
// one token is a content word, which keeps phrases like "will to power".
func Extract(tokens []string, isStop func(string) bool, n, topK int) []Phrase {
	if n <= 0 || len(tokens) < n {
		return []Phrase{}
	}

	counts := map[string]int{}
	firstSeen := map[string]int{}
	order := []string{}
	for i := 0; i+n <= len(tokens); i++ {
		window := tokens[i : i+n]
		if isStop != nil && allStopwords(window, isStop) {
			continue
		}
		key := strings.Join(window, " ")
		if _, ok := counts[key]; !ok {
			firstSeen[key] = i
			order = append(order, key)
		}
		counts[key]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		ci, cj := counts[order[i]], counts[order[j]]
		if ci != cj {
			return ci > cj
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if topK > len(order) {
		topK = len(order)
	}
	out := make([]Phrase, 0, topK)
	for _, key := range order[:topK] {
		out = append(out, Phrase{Phrase: key, Count: counts[key]})
	}
	return out
}

func allStopwords(window []string, isStop func(string) bool) bool {
	for _, w := range window {
		if !isStop(w) {
			return false
		}
	}
	return true
}
