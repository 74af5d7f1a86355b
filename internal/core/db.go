package core

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const (
	dataDirName = ".mdmigrate"
	dbFileName  = "index.sqlite"
)

func dbPath(root string) string {
	return filepath.Join(root, dataDirName, dbFileName)
}

func ensureDataDir(root string) (string, error) {
	dir := filepath.Join(root, dataDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func openDBAt(path string) (*sql.DB, error) {
	return sql.Open("sqlite", fmt.Sprintf("file:%s", path))
}

// openIndex opens the index database for a content root, failing with a hint
// when the index has not been built yet.
func openIndex(root string) (*sql.DB, error) {
	p := dbPath(root)
	if _, err := os.Stat(p); os.IsNotExist(err) {
		return nil, fmt.Errorf("index not found: run 'mdmigrate index' first")
	}
	return openDBAt(p)
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id    INTEGER PRIMARY KEY,
			path  TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL DEFAULT '',
			mtime INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_documents_path ON documents(path);`,
		`CREATE TABLE IF NOT EXISTS links (
			id          INTEGER PRIMARY KEY,
			source_id   INTEGER NOT NULL,
			target_path TEXT NOT NULL,
			raw_target  TEXT NOT NULL,
			fragment    TEXT NOT NULL DEFAULT '',
			line        INTEGER NOT NULL,
			resolved    INTEGER NOT NULL DEFAULT 1,
			FOREIGN KEY(source_id) REFERENCES documents(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_links_source ON links(source_id);`,
		`CREATE INDEX IF NOT EXISTS idx_links_target ON links(target_path);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func insertDocument(tx *sql.Tx, path, title string, mtime int64) (int64, error) {
	res, err := tx.Exec(
		`INSERT INTO documents (path, title, mtime) VALUES (?, ?, ?)`,
		path, title, mtime,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func insertLink(tx *sql.Tx, sourceID int64, ref LinkRef, resolved bool) error {
	r := 0
	if resolved {
		r = 1
	}
	_, err := tx.Exec(
		`INSERT INTO links (source_id, target_path, raw_target, fragment, line, resolved)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sourceID, ref.Target, ref.RawTarget, ref.Fragment, ref.Line, r,
	)
	return err
}
