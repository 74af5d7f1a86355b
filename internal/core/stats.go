package core

// StatsOptions controls which stats fields are computed.
type StatsOptions struct {
	Fields []string // empty means all
}

// TargetCount is one entry in the most-referenced ranking.
type TargetCount struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// StatsResult holds index statistics.
type StatsResult struct {
	Documents      int           `json:"documents,omitempty"`
	Links          int           `json:"links,omitempty"`
	BrokenLinks    int           `json:"broken_links,omitempty"`
	MostReferenced []TargetCount `json:"most_referenced,omitempty"`
}

// Valid field names for Stats.
const (
	StatsFieldDocuments      = "documents"
	StatsFieldLinks          = "links"
	StatsFieldBroken         = "broken"
	StatsFieldMostReferenced = "most_referenced"
)

// Stats queries the index built by BuildIndex.
func Stats(root string, opts StatsOptions) (*StatsResult, error) {
	db, err := openIndex(root)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	result := &StatsResult{}

	if isFieldActive(StatsFieldDocuments, opts.Fields) {
		if err := db.QueryRow(`SELECT COUNT(*) FROM documents`).Scan(&result.Documents); err != nil {
			return nil, err
		}
	}
	if isFieldActive(StatsFieldLinks, opts.Fields) {
		if err := db.QueryRow(`SELECT COUNT(*) FROM links`).Scan(&result.Links); err != nil {
			return nil, err
		}
	}
	if isFieldActive(StatsFieldBroken, opts.Fields) {
		if err := db.QueryRow(`SELECT COUNT(*) FROM links WHERE resolved = 0`).Scan(&result.BrokenLinks); err != nil {
			return nil, err
		}
	}
	if isFieldActive(StatsFieldMostReferenced, opts.Fields) {
		rows, err := db.Query(
			`SELECT target_path, COUNT(*) AS n FROM links
			 GROUP BY target_path ORDER BY n DESC, target_path ASC LIMIT 5`)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		for rows.Next() {
			var tc TargetCount
			if err := rows.Scan(&tc.Path, &tc.Count); err != nil {
				return nil, err
			}
			result.MostReferenced = append(result.MostReferenced, tc)
		}
		if err := rows.Err(); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// isFieldActive returns true if the field is requested (or if fields is empty, meaning all).
func isFieldActive(field string, fields []string) bool {
	if len(fields) == 0 {
		return true
	}
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
