package vectorize

import (
	"math"
	"strings"

	"github.com/cognicore/newsprep/pkg/newsprep/corpus"
)

// Weighting selects how term occurrences become matrix values.
type Weighting int

const (
	// Count uses raw term counts.
	Count Weighting = iota
	// TFIDF multiplies raw counts by the vocabulary's frozen IDF and
	// L2-normalizes each row.
	TFIDF
)

// Entry is one non-zero cell of a document vector.
type Entry struct {
	Col int
	Val float64
}

// DocVector is the sparse representation of one document, entries sorted
// by column.
type DocVector []Entry

// Matrix is a sparse document-term matrix. Row order equals corpus order;
// column dimensionality is fixed by the vocabulary the matrix was built
// with.
type Matrix struct {
	Cols int
	Rows []DocVector
}

// Transform vectorizes a corpus against a frozen vocabulary. Terms absent
// from the vocabulary contribute no column and no signal. With TFIDF
// weighting the IDF used is always the one computed at fit time,
// regardless of which corpus is being transformed.
func Transform(c corpus.Corpus, v *Vocabulary, w Weighting) *Matrix {
	m := &Matrix{
		Cols: v.Size(),
		Rows: make([]DocVector, c.Len()),
	}
	for i, d := range c.Docs {
		m.Rows[i] = vectorizeDoc(d.CleanText, v, w)
	}
	return m
}

func vectorizeDoc(cleanText string, v *Vocabulary, w Weighting) DocVector {
	counts := make(map[int]float64)
	cols := make([]int, 0, 16)
	for _, tok := range strings.Fields(cleanText) {
		col, ok := v.Index(tok)
		if !ok {
			continue
		}
		if _, seen := counts[col]; !seen {
			cols = append(cols, col)
		}
		counts[col]++
	}

	// Ascending column order keeps rows comparable across runs.
	insertionSort(cols)

	row := make(DocVector, 0, len(cols))
	for _, col := range cols {
		val := counts[col]
		if w == TFIDF {
			val *= v.IDF(col)
		}
		row = append(row, Entry{Col: col, Val: val})
	}

	if w == TFIDF {
		normalizeL2(row)
	}
	return row
}

func normalizeL2(row DocVector) {
	var sq float64
	for _, e := range row {
		sq += e.Val * e.Val
	}
	if sq == 0 {
		return
	}
	norm := math.Sqrt(sq)
	for i := range row {
		row[i].Val /= norm
	}
}

// insertionSort keeps the per-document hot path allocation-free; rows are
// short so this beats sort.Ints for the common case.
func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}
