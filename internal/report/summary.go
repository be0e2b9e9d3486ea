package report

import "distant_reader/internal/compare"

// TextSummary keeps the headline numbers for one text.
type TextSummary struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	WordCount   int     `json:"word_count"`
	UniqueWords int     `json:"unique_words"`
	Sentiment   float64 `json:"sentiment"`
	Readability float64 `json:"readability"`
}

type SummaryComparative struct {
	SentimentSummary compare.SentimentSummary `json:"sentiment_summary"`
	StyleSummary     compare.StyleSummary     `json:"style_summary"`
}

// Summary is the compact companion document to the full report.
type Summary struct {
	Metadata    Metadata           `json:"metadata"`
	Texts       []TextSummary      `json:"texts"`
	Comparative SummaryComparative `json:"comparative"`
}

// Summarize reduces a full report to its headline numbers: identity, word
// counts, compound sentiment, and Flesch reading ease per text.
func Summarize(r CorpusReport) Summary {
	texts := make([]TextSummary, 0, len(r.Texts))
	for _, t := range r.Texts {
		texts = append(texts, TextSummary{
			ID:          t.ID,
			Title:       t.Title,
			WordCount:   t.WordCount,
			UniqueWords: t.UniqueWords,
			Sentiment:   t.Sentiment.VADER.Compound,
			Readability: t.StyleMetrics.Readability.FleschReadingEase,
		})
	}
	return Summary{
		Metadata: r.Metadata,
		Texts:    texts,
		Comparative: SummaryComparative{
			SentimentSummary: r.Comparative.SentimentSummary,
			StyleSummary:     r.Comparative.StyleSummary,
		},
	}
}
