package core

import (
	"os"
	"path/filepath"
)

// IndexResult reports what a rebuild indexed.
type IndexResult struct {
	Documents int `json:"documents"`
	Links     int `json:"links"`
}

// BuildIndex rebuilds the sqlite index of documents and cross-reference links
// under <root>/.mdmigrate/index.sqlite. The index exists for offline
// inspection (stats); the migration pipeline itself never reads it.
func BuildIndex(root string) (*IndexResult, error) {
	scan, err := Scan(root)
	if err != nil {
		return nil, err
	}
	files := scan.fileSet()

	if _, err := ensureDataDir(root); err != nil {
		return nil, err
	}
	p := dbPath(root)
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	db, err := openDBAt(p)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	if err := initSchema(db); err != nil {
		return nil, err
	}

	refsBySource := make(map[string][]LinkRef)
	for _, ref := range scan.Refs {
		refsBySource[ref.Source] = append(refsBySource[ref.Source], ref)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result := &IndexResult{}
	for _, file := range scan.Files {
		full := filepath.Join(root, filepath.FromSlash(file))
		info, err := os.Stat(full)
		if err != nil {
			return nil, err
		}
		content, err := os.ReadFile(full)
		if err != nil {
			return nil, err
		}
		id, err := insertDocument(tx, file, documentTitle(string(content), file), info.ModTime().Unix())
		if err != nil {
			return nil, err
		}
		result.Documents++
		for _, ref := range refsBySource[file] {
			if err := insertLink(tx, id, ref, files[ref.Target]); err != nil {
				return nil, err
			}
			result.Links++
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}

// documentTitle derives a document's title: front-matter title first, then the
// first H1, then the Title Case form of the filename.
func documentTitle(content, path string) string {
	if fm, _, ok := splitFrontmatter(content); ok {
		if t := frontmatterTitle(fm); t != "" {
			return t
		}
	}
	if h1 := firstH1(content); h1 != "" {
		return h1
	}
	return titleFromPath(path)
}
