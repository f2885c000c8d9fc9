// Package export writes the pipeline's artifacts in forms downstream
// trainers consume: a tabular corpus CSV, a vocabulary JSON, and sparse
// document vectors as JSONL.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/cognicore/newsprep/pkg/newsprep/corpus"
	"github.com/cognicore/newsprep/pkg/newsprep/vectorize"
)

// CorpusCSV writes one corpus as CSV with a fixed header:
// clean_text,label,published_at,subject,split. Row order is corpus order,
// which downstream label alignment depends on.
func CorpusCSV(path string, c corpus.Corpus, split string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"clean_text", "label", "published_at", "subject", "split"}); err != nil {
		return err
	}
	for _, d := range c.Docs {
		record := []string{
			d.CleanText,
			strconv.Itoa(d.Label),
			d.PublishedAt.Format("2006-01-02"),
			d.Subject,
			split,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// vocabEntry is one serialized vocabulary row.
type vocabEntry struct {
	Term  string  `json:"term"`
	Index int     `json:"index"`
	DF    int64   `json:"df"`
	IDF   float64 `json:"idf"`
}

// VocabularyJSON writes the frozen vocabulary, one object per term in
// column order, so any consumer can rebuild the exact column mapping and
// IDF weights.
func VocabularyJSON(path string, v *vectorize.Vocabulary) error {
	entries := make([]vocabEntry, v.Size())
	for i := 0; i < v.Size(); i++ {
		entries[i] = vocabEntry{
			Term:  v.Term(i),
			Index: i,
			DF:    v.DocFreq(i),
			IDF:   v.IDF(i),
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// sparseRow is one document vector in the JSONL export.
type sparseRow struct {
	Cols []int     `json:"cols"`
	Vals []float64 `json:"vals"`
}

// MatrixJSONL writes a sparse matrix one row per line, preserving row
// order.
func MatrixJSONL(path string, m *vectorize.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, row := range m.Rows {
		out := sparseRow{
			Cols: make([]int, len(row)),
			Vals: make([]float64, len(row)),
		}
		for i, e := range row {
			out.Cols[i] = e.Col
			out.Vals[i] = e.Val
		}
		if err := enc.Encode(out); err != nil {
			return err
		}
	}
	return nil
}
