// Command dra runs the distant-reading pipeline over a corpus of texts:
// per-text metric extraction, cross-text comparison, and report generation.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"distant_reader/internal/analyze"
	"distant_reader/internal/compare"
	"distant_reader/internal/concepts"
	"distant_reader/internal/config"
	"distant_reader/internal/corpus"
	"distant_reader/internal/db"
	"distant_reader/internal/pipeline"
	"distant_reader/internal/report"
	"distant_reader/internal/sentiment"
	"distant_reader/internal/style"
	"distant_reader/internal/textproc"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("config load failed", "err", err)
	}

	level := log.InfoLevel
	if cfg.Logging.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})

	logger.Info("loading corpus", "dir", cfg.Corpus.Dir, "prefix", cfg.Corpus.Prefix)
	docs, err := corpus.LoadDir(cfg.Corpus.Dir, cfg.Corpus.Prefix)
	if err != nil {
		logger.Fatal("corpus load failed", "err", err)
	}
	if len(docs) == 0 {
		logger.Fatal("no corpus files found", "dir", cfg.Corpus.Dir, "prefix", cfg.Corpus.Prefix)
	}
	for _, d := range docs {
		logger.Debug("loaded", "id", d.ID, "chars", len(d.Content))
	}

	tok := textproc.Default()
	analyzer := analyze.New(
		tok,
		sentiment.NewVADERScorer(),
		style.NewFormulaScorer(tok),
		concepts.Default(),
		analyze.Options{
			TopWords:           cfg.Analysis.TopWords,
			TopNGrams:          cfg.Analysis.TopNgrams,
			SentimentChunkSize: cfg.Analysis.SentimentChunkSize,
		},
	)

	logger.Info("analyzing texts", "count", len(docs), "workers", cfg.Analysis.Workers)
	records := pipeline.AnalyzeCorpus(docs, cfg.Analysis.Workers, analyzer, func(_ int, doc corpus.Document) {
		logger.Info("analyzing", "title", doc.Title)
	})

	logger.Info("comparing texts", "pairs", len(docs)*(len(docs)-1)/2)
	overlap := compare.Overlap(tok, docs, func(current, total int, id1, id2 string) {
		logger.Debug("comparing pair", "n", current, "of", total, "text1", id1, "text2", id2)
	})

	r := report.Build(
		report.NewMetadata(time.Now(), len(records), cfg.Analysis.Version),
		records,
		report.Comparative{
			VocabularyOverlap: overlap,
			SentimentSummary:  compare.SummarizeSentiment(records),
			StyleSummary:      compare.SummarizeStyle(records),
		},
	)

	if err := writeArtifact(cfg.Output.ReportPath, r); err != nil {
		logger.Fatal("report write failed", "err", err)
	}
	logger.Info("report written", "path", cfg.Output.ReportPath)

	if cfg.Output.SummaryPath != "" {
		if err := writeArtifact(cfg.Output.SummaryPath, report.Summarize(r)); err != nil {
			logger.Fatal("summary write failed", "err", err)
		}
		logger.Info("summary written", "path", cfg.Output.SummaryPath)
	}

	if cfg.Output.DBPath != "" {
		if err := db.PersistReport(cfg.Output.DBPath, r); err != nil {
			logger.Fatal("db persist failed", "err", err)
		}
		logger.Info("results persisted", "path", cfg.Output.DBPath)
	}

	for _, rec := range records {
		logger.Info("analyzed",
			"title", rec.Title,
			"words", rec.WordCount,
			"unique", rec.UniqueWords,
			"compound", rec.Sentiment.VADER.Compound,
			"concepts", len(rec.KeyConcepts),
		)
	}
}

func writeArtifact(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return report.Save(path, v)
}
