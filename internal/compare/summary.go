package compare

import (
	"distant_reader/internal/analyze"
	"distant_reader/internal/stats"
)

// CompoundSummary carries the full spread statistics reported for the
// compound sentiment score.
type CompoundSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Range  float64 `json:"range"`
}

type ComponentSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

type SentimentSummary struct {
	Compound CompoundSummary  `json:"compound"`
	Positive ComponentSummary `json:"positive"`
	Negative ComponentSummary `json:"negative"`
	Neutral  ComponentSummary `json:"neutral"`
}

type MetricSummary struct {
	Mean   float64    `json:"mean"`
	StdDev float64    `json:"std_dev"`
	Range  [2]float64 `json:"range"`
}

type StyleSummary struct {
	SentenceLength     MetricSummary `json:"sentence_length"`
	TypeTokenRatio     MetricSummary `json:"type_token_ratio"`
	FleschReadingEase  MetricSummary `json:"flesch_reading_ease"`
	FleschKincaidGrade MetricSummary `json:"flesch_kincaid_grade"`
	AvgWordLength      MetricSummary `json:"avg_word_length"`
}

// SummarizeSentiment aggregates the per-text sentiment scores. Std dev is
// the sample deviation, reported as zero for a single text.
func SummarizeSentiment(records []analyze.MetricRecord) SentimentSummary {
	if len(records) == 0 {
		return SentimentSummary{}
	}

	compounds := make([]float64, 0, len(records))
	positives := make([]float64, 0, len(records))
	negatives := make([]float64, 0, len(records))
	neutrals := make([]float64, 0, len(records))
	for _, r := range records {
		compounds = append(compounds, r.Sentiment.VADER.Compound)
		positives = append(positives, r.Sentiment.VADER.Positive)
		negatives = append(negatives, r.Sentiment.VADER.Negative)
		neutrals = append(neutrals, r.Sentiment.VADER.Neutral)
	}

	minC := stats.Min(compounds)
	maxC := stats.Max(compounds)
	return SentimentSummary{
		Compound: CompoundSummary{
			Mean:   stats.Round(stats.Mean(compounds), 4),
			StdDev: stats.Round(stats.SampleStdDev(compounds), 4),
			Min:    stats.Round(minC, 4),
			Max:    stats.Round(maxC, 4),
			Range:  stats.Round(maxC-minC, 4),
		},
		Positive: componentSummary(positives),
		Negative: componentSummary(negatives),
		Neutral:  componentSummary(neutrals),
	}
}

// SummarizeStyle aggregates the per-text style scalars. Ratios round to four
// decimals, length and readability metrics to two.
func SummarizeStyle(records []analyze.MetricRecord) StyleSummary {
	if len(records) == 0 {
		return StyleSummary{}
	}

	sentenceLengths := make([]float64, 0, len(records))
	ttrs := make([]float64, 0, len(records))
	fleschScores := make([]float64, 0, len(records))
	fkGrades := make([]float64, 0, len(records))
	wordLengths := make([]float64, 0, len(records))
	for _, r := range records {
		sentenceLengths = append(sentenceLengths, r.StyleMetrics.Sentences.AvgLength)
		ttrs = append(ttrs, r.StyleMetrics.Vocabulary.TypeTokenRatio)
		fleschScores = append(fleschScores, r.StyleMetrics.Readability.FleschReadingEase)
		fkGrades = append(fkGrades, r.StyleMetrics.Readability.FleschKincaidGrade)
		wordLengths = append(wordLengths, r.StyleMetrics.WordLength.Average)
	}

	return StyleSummary{
		SentenceLength:     metricSummary(sentenceLengths, 2),
		TypeTokenRatio:     metricSummary(ttrs, 4),
		FleschReadingEase:  metricSummary(fleschScores, 2),
		FleschKincaidGrade: metricSummary(fkGrades, 2),
		AvgWordLength:      metricSummary(wordLengths, 2),
	}
}

func componentSummary(values []float64) ComponentSummary {
	return ComponentSummary{
		Mean:   stats.Round(stats.Mean(values), 4),
		StdDev: stats.Round(stats.SampleStdDev(values), 4),
	}
}

func metricSummary(values []float64, places int) MetricSummary {
	return MetricSummary{
		Mean:   stats.Round(stats.Mean(values), places),
		StdDev: stats.Round(stats.SampleStdDev(values), places),
		Range: [2]float64{
			stats.Round(stats.Min(values), places),
			stats.Round(stats.Max(values), places),
		},
	}
}
