// Package concepts counts occurrences of a fixed vocabulary of multi-word
// domain terms and their spelling variants. The vocabulary is immutable at
// runtime; extending it means editing the table passed to NewDetector.
package concepts

import (
	"fmt"
	"regexp"
	"sort"
)

// variantLimit caps how many distinct matched spellings are reported per term.
const variantLimit = 5

// Concept maps one named term to the case-insensitive, word-boundary
// patterns that capture its spelling and terminology variants.
type Concept struct {
	Term     string
	Patterns []string
}

type Match struct {
	Term     string   `json:"term"`
	Count    int      `json:"count"`
	Variants []string `json:"variants"`
}

type Detector struct {
	entries []compiledConcept
}

type compiledConcept struct {
	term     string
	patterns []*regexp.Regexp
}

// NewDetector compiles the concept table. Declaration order is preserved and
// breaks ties when matches are ranked.
func NewDetector(table []Concept) (*Detector, error) {
	entries := make([]compiledConcept, 0, len(table))
	for _, c := range table {
		compiled := make([]*regexp.Regexp, 0, len(c.Patterns))
		for _, p := range c.Patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("compile pattern %q for concept %q: %w", p, c.Term, err)
			}
			compiled = append(compiled, re)
		}
		entries = append(entries, compiledConcept{term: c.Term, patterns: compiled})
	}
	return &Detector{entries: entries}, nil
}

// Default returns a detector loaded with the Nietzschean concept table.
func Default() *Detector {
	d, err := NewDetector(nietzscheanConcepts)
	if err != nil {
		// The built-in table is compile-checked by tests.
		panic(err)
	}
	return d
}

// Detect sums match counts across each concept's patterns and collects up to
// five distinct matched spellings. Concepts with zero matches are omitted;
// the rest are sorted by descending count, ties in table order.
func (d *Detector) Detect(text string) []Match {
	results := make([]Match, 0, len(d.entries))
	for _, entry := range d.entries {
		total := 0
		variants := []string{}
		seen := map[string]struct{}{}
		for _, re := range entry.patterns {
			found := re.FindAllString(text, -1)
			total += len(found)
			for _, v := range found {
				if _, ok := seen[v]; ok {
					continue
				}
				seen[v] = struct{}{}
				if len(variants) < variantLimit {
					variants = append(variants, v)
				}
			}
		}
		if total > 0 {
			results = append(results, Match{Term: entry.term, Count: total, Variants: variants})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Count > results[j].Count
	})
	return results
}

// nietzscheanConcepts covers the key terms of the corpus, including
// hyphen/space variants and common translations. The leading ü alternative
// avoids \b, which only recognizes ASCII word boundaries.
var nietzscheanConcepts = []Concept{
	{Term: "will to power", Patterns: []string{`(?i)\bwill[- ]to[- ]power\b`, `(?i)\bwill-to-power\b`}},
	{Term: "übermensch", Patterns: []string{`(?i)(?:\bu|ü)bermensch\b`, `(?i)\boverman\b`, `(?i)\bsuperman\b`}},
	{Term: "eternal recurrence", Patterns: []string{`(?i)\beternal\s+recurrence\b`, `(?i)\beternal\s+return\b`}},
	{Term: "master morality", Patterns: []string{`(?i)\bmaster\s+morality\b`, `(?i)\bmaster-morality\b`}},
	{Term: "slave morality", Patterns: []string{`(?i)\bslave\s+morality\b`, `(?i)\bslave-morality\b`}},
	{Term: "ressentiment", Patterns: []string{`(?i)\bressentiment\b`, `(?i)\bresentment\b`}},
	{Term: "nihilism", Patterns: []string{`(?i)\bnihilism\b`, `(?i)\bnihilist\b`}},
	{Term: "genealogy", Patterns: []string{`(?i)\bgenealogy\b`, `(?i)\bgenealogical\b`}},
	{Term: "perspectivism", Patterns: []string{`(?i)\bperspectiv\w*\b`}},
	{Term: "dionysian", Patterns: []string{`(?i)\bdionysian\b`, `(?i)\bdionysos\b`}},
	{Term: "apollonian", Patterns: []string{`(?i)\bapollonian\b`, `(?i)\bapollo\b`}},
	{Term: "god is dead", Patterns: []string{`(?i)\bgod\s+is\s+dead\b`}},
	{Term: "amor fati", Patterns: []string{`(?i)\bamor\s+fati\b`}},
}
