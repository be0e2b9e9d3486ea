// Package pipeline runs the two-phase analysis flow. Phase one computes one
// MetricRecord per document on a bounded worker pool; phase two (comparison)
// must only start once phase one has fully drained, which AnalyzeCorpus
// guarantees by returning only after every record is finalized.
package pipeline

import (
	"runtime"
	"sync"

	"distant_reader/internal/analyze"
	"distant_reader/internal/corpus"
)

// ProgressFunc is called as each document's analysis starts. Diagnostic only.
type ProgressFunc func(index int, doc corpus.Document)

// AnalyzeCorpus analyzes every document and returns the records in input
// order regardless of worker scheduling.
func AnalyzeCorpus(docs []corpus.Document, workers int, analyzer *analyze.Analyzer, progress ProgressFunc) []analyze.MetricRecord {
	if len(docs) == 0 {
		return []analyze.MetricRecord{}
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}
	if workers > len(docs) {
		workers = len(docs)
	}

	jobs := make(chan int)
	records := make([]analyze.MetricRecord, len(docs))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if progress != nil {
					progress(i, docs[i])
				}
				records[i] = analyzer.AnalyzeDocument(docs[i])
			}
		}()
	}

	for i := range docs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return records
}
