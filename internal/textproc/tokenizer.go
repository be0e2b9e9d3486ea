// Package textproc provides the shared tokenization primitives for corpus
// analysis: sentence splitting and word tokenization with two filtering
// policies. Policy A keeps every alphabetic token; policy B additionally
// removes stopwords and tokens of fewer than three letters.
package textproc

import (
	_ "embed"
	"encoding/json"
	"regexp"
	"strings"
	"unicode"
)

//go:embed stopwords.json
var stopwordsJSON []byte

var sentenceEnd = regexp.MustCompile(`[.!?]+`)
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+|[^\s\p{L}\p{N}]`)
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}']+`)

const minContentWordLen = 3

type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer builds a tokenizer around the given stopword list. Words are
// matched case-insensitively against the list.
func NewTokenizer(stopwords []string) *Tokenizer {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return &Tokenizer{stopwords: set}
}

// Default returns a tokenizer loaded with the embedded English stopword list.
func Default() *Tokenizer {
	var raw []string
	_ = json.Unmarshal(stopwordsJSON, &raw)
	return NewTokenizer(raw)
}

func (t *Tokenizer) IsStopword(word string) bool {
	_, ok := t.stopwords[strings.ToLower(word)]
	return ok
}

// Sentences splits text into sentences on terminal punctuation runs.
// Whitespace-only fragments are dropped.
func (t *Tokenizer) Sentences(text string) []string {
	parts := sentenceEnd.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Tokens splits text into raw tokens: runs of letters/digits plus each
// punctuation character as its own token. Used for sentence-length counting,
// where punctuation tokens are included.
func (t *Tokenizer) Tokens(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}

// Words returns the policy-A view: lowercase tokens consisting entirely of
// letters. Tokens containing digits or apostrophes are split or dropped the
// same way on every call, so downstream counts are stable.
func (t *Tokenizer) Words(text string) []string {
	candidates := wordPattern.FindAllString(strings.ToLower(text), -1)
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		for _, part := range strings.Split(c, "'") {
			if part != "" && allLetters(part) {
				out = append(out, part)
			}
		}
	}
	return out
}

// ContentWords returns the policy-B view: policy-A words with stopwords and
// words shorter than three letters removed.
func (t *Tokenizer) ContentWords(text string) []string {
	words := t.Words(text)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) < minContentWordLen {
			continue
		}
		if _, ok := t.stopwords[w]; ok {
			continue
		}
		out = append(out, w)
	}
	return out
}

// LongWords returns policy-A words of at least three letters with stopwords
// retained. This is the candidate stream for n-gram extraction, which filters
// all-stopword phrases after window generation rather than before.
func (t *Tokenizer) LongWords(text string) []string {
	words := t.Words(text)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) >= minContentWordLen {
			out = append(out, w)
		}
	}
	return out
}

func allLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
