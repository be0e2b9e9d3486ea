// Package analyze composes the per-text metric components into one
// MetricRecord per Document.
package analyze

import (
	"distant_reader/internal/concepts"
	"distant_reader/internal/corpus"
	"distant_reader/internal/lexical"
	"distant_reader/internal/ngram"
	"distant_reader/internal/sentiment"
	"distant_reader/internal/style"
	"distant_reader/internal/textproc"
)

type StyleMetrics struct {
	Sentences   style.Sentences    `json:"sentences"`
	Vocabulary  lexical.Vocabulary `json:"vocabulary"`
	Readability style.Readability  `json:"readability"`
	WordLength  lexical.WordLength `json:"word_length"`
	Punctuation style.Punctuation  `json:"punctuation"`
}

type NGrams struct {
	Bigrams  []ngram.Phrase `json:"bigrams"`
	Trigrams []ngram.Phrase `json:"trigrams"`
}

// MetricRecord is the immutable per-text analysis output, written once.
type MetricRecord struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Filename     string             `json:"filename"`
	WordCount    int                `json:"word_count"`
	UniqueWords  int                `json:"unique_words"`
	BagOfWords   lexical.BagOfWords `json:"bag_of_words"`
	Sentiment    sentiment.Report   `json:"sentiment"`
	StyleMetrics StyleMetrics       `json:"style_metrics"`
	NGrams       NGrams             `json:"ngrams"`
	KeyConcepts  []concepts.Match   `json:"key_concepts"`
}

type Options struct {
	TopWords           int
	TopNGrams          int
	SentimentChunkSize int
}

func DefaultOptions() Options {
	return Options{
		TopWords:           100,
		TopNGrams:          30,
		SentimentChunkSize: sentiment.DefaultChunkSize,
	}
}

// Analyzer bundles the tokenizer and the pluggable scoring capabilities.
// It is safe for concurrent use: every method is a pure function of its
// input text.
type Analyzer struct {
	tok         *textproc.Tokenizer
	polarity    sentiment.PolarityScorer
	readability style.ReadabilityScorer
	detector    *concepts.Detector
	opts        Options
}

func New(tok *textproc.Tokenizer, polarity sentiment.PolarityScorer, readability style.ReadabilityScorer, detector *concepts.Detector, opts Options) *Analyzer {
	if opts.TopWords <= 0 {
		opts.TopWords = 100
	}
	if opts.TopNGrams <= 0 {
		opts.TopNGrams = 30
	}
	if opts.SentimentChunkSize <= 0 {
		opts.SentimentChunkSize = sentiment.DefaultChunkSize
	}
	return &Analyzer{
		tok:         tok,
		polarity:    polarity,
		readability: readability,
		detector:    detector,
		opts:        opts,
	}
}

// NewDefault wires the default stack: embedded stopwords, VADER polarity,
// formula readability, and the built-in concept table.
func NewDefault() *Analyzer {
	tok := textproc.Default()
	return New(tok, sentiment.NewVADERScorer(), style.NewFormulaScorer(tok), concepts.Default(), DefaultOptions())
}

// AnalyzeDocument runs every metric component over the document and
// assembles the MetricRecord. Empty content produces zeroed structures.
func (a *Analyzer) AnalyzeDocument(doc corpus.Document) MetricRecord {
	text := doc.Content

	vocabulary := lexical.Richness(a.tok, text)
	ngramTokens := a.tok.LongWords(text)

	return MetricRecord{
		ID:          doc.ID,
		Title:       doc.Title,
		Filename:    doc.Filename,
		WordCount:   vocabulary.TotalWords,
		UniqueWords: vocabulary.UniqueWords,
		BagOfWords:  lexical.Frequencies(a.tok, text, a.opts.TopWords),
		Sentiment:   sentiment.Analyze(text, a.polarity, a.opts.SentimentChunkSize),
		StyleMetrics: StyleMetrics{
			Sentences:   style.AnalyzeSentences(a.tok, text),
			Vocabulary:  vocabulary,
			Readability: a.readability.Score(text),
			WordLength:  lexical.Lengths(a.tok, text),
			Punctuation: style.AnalyzePunctuation(a.tok, text),
		},
		NGrams: NGrams{
			Bigrams:  ngram.Extract(ngramTokens, a.tok.IsStopword, 2, a.opts.TopNGrams),
			Trigrams: ngram.Extract(ngramTokens, a.tok.IsStopword, 3, a.opts.TopNGrams),
		},
		KeyConcepts: a.detector.Detect(text),
	}
}

// Tokenizer exposes the analyzer's tokenizer so the comparison phase uses
// the same token view.
func (a *Analyzer) Tokenizer() *textproc.Tokenizer {
	return a.tok
}
