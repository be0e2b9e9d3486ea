package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS texts (
    id TEXT PRIMARY KEY,
    title TEXT,
    filename TEXT,
    word_count INTEGER,
    unique_words INTEGER,
    compound_sentiment REAL,
    flesch_reading_ease REAL
);

CREATE TABLE IF NOT EXISTS similarities (
    id INTEGER PRIMARY KEY,
    text1 TEXT,
    text2 TEXT,
    shared_words INTEGER,
    jaccard REAL
);
`

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
