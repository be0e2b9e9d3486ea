// Package report assembles the final CorpusReport and serializes it to JSON.
// The report is built once per run and never mutated after construction.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"distant_reader/internal/analyze"
	"distant_reader/internal/compare"
)

// Metadata is supplied by the caller, not computed by the analysis core.
type Metadata struct {
	Generated       string `json:"generated"`
	TotalTexts      int    `json:"total_texts"`
	AnalysisVersion string `json:"analysis_version"`
	RunID           string `json:"run_id"`
}

type Comparative struct {
	VocabularyOverlap compare.VocabularyOverlap `json:"vocabulary_overlap"`
	SentimentSummary  compare.SentimentSummary  `json:"sentiment_summary"`
	StyleSummary      compare.StyleSummary      `json:"style_summary"`
}

type CorpusReport struct {
	Metadata    Metadata               `json:"metadata"`
	Texts       []analyze.MetricRecord `json:"texts"`
	Comparative Comparative            `json:"comparative"`
}

func NewMetadata(generated time.Time, totalTexts int, version string) Metadata {
	return Metadata{
		Generated:       generated.Format(time.RFC3339),
		TotalTexts:      totalTexts,
		AnalysisVersion: version,
		RunID:           uuid.NewString(),
	}
}

func Build(meta Metadata, records []analyze.MetricRecord, comparative Comparative) CorpusReport {
	return CorpusReport{
		Metadata:    meta,
		Texts:       records,
		Comparative: comparative,
	}
}

// Save writes v as indented JSON. Nothing is written on marshal failure.
func Save(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
