package db

import (
	"database/sql"
	"fmt"

	"distant_reader/internal/report"
)

// PersistReport replaces the stored headline metrics and pairwise
// similarities with the contents of one report.
func PersistReport(dbPath string, r report.CorpusReport) error {
	conn, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM similarities`); err != nil {
		return fmt.Errorf("clear similarities: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM texts`); err != nil {
		return fmt.Errorf("clear texts: %w", err)
	}

	for _, t := range r.Texts {
		if _, err := tx.Exec(
			`INSERT INTO texts(id, title, filename, word_count, unique_words, compound_sentiment, flesch_reading_ease) VALUES(?,?,?,?,?,?,?)`,
			t.ID,
			t.Title,
			t.Filename,
			t.WordCount,
			t.UniqueWords,
			t.Sentiment.VADER.Compound,
			t.StyleMetrics.Readability.FleschReadingEase,
		); err != nil {
			return fmt.Errorf("insert text: %w", err)
		}
	}

	for _, p := range r.Comparative.VocabularyOverlap.Pairs {
		if _, err := tx.Exec(
			`INSERT INTO similarities(text1, text2, shared_words, jaccard) VALUES(?,?,?,?)`,
			p.Text1,
			p.Text2,
			p.SharedWords,
			p.JaccardSimilarity,
		); err != nil {
			return fmt.Errorf("insert similarity: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func CountRows(dbPath, table string) (int, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	return countRowsConn(conn, table)
}

func countRowsConn(conn *sql.DB, table string) (int, error) {
	row := conn.QueryRow(`SELECT COUNT(*) FROM ` + table)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
