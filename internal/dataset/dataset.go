// Package dataset reads the raw labeled article files. Ingest is the only
// stage allowed to fail hard: a missing column or an unparseable date
// aborts the run before any transformation happens.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cognicore/newsprep/pkg/newsprep/internalerr"
)

// Row is one raw article as it appears on disk, before any cleaning.
type Row struct {
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	Subject     string    `json:"subject"`
	PublishedAt time.Time `json:"published_at"`
}

// Required CSV columns. Title is optional; some exports fold it into text.
var requiredColumns = []string{"text", "subject", "date"}

// Publication date layouts seen across the source exports.
var dateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2-Jan-06",
	"2006-01-02",
	time.RFC3339,
}

// LoadCSV reads one labeled dataset from a headered CSV file.
func LoadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%s: column %q: %w", path, name, internalerr.ErrMissingColumn)
		}
	}
	titleIdx, hasTitle := cols["title"]

	var rows []Row
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}

		get := func(idx int) string {
			if idx < len(record) {
				return strings.TrimSpace(record[idx])
			}
			return ""
		}

		published, err := ParseDate(get(cols["date"]))
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}

		row := Row{
			Text:        get(cols["text"]),
			Subject:     get(cols["subject"]),
			PublishedAt: published,
		}
		if hasTitle {
			row.Title = get(titleIdx)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows in %s: %w", path, internalerr.ErrInvalidInput)
	}
	return rows, nil
}

// LoadJSONL reads one dataset from a JSONL file, one Row object per line.
// Malformed lines are skipped with a warning; an entirely empty file is an
// error.
func LoadJSONL(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	var rows []Row
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var row Row
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no valid rows found in %s: %w", path, internalerr.ErrInvalidInput)
	}
	return rows, nil
}

// ParseDate tries the known publication date layouts in order.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q: %w", raw, internalerr.ErrBadDate)
}
