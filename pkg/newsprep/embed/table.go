// Package embed looks up pre-trained word embeddings and aggregates them
// into fixed-length document vectors.
package embed

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cognicore/newsprep/pkg/newsprep/internalerr"
)

// Table maps terms to fixed-dimension vectors. Immutable once built; a
// lookup for an unknown term yields a zero vector, never an error, since
// partial coverage is the normal case for natural-language input.
type Table struct {
	dim     int
	vectors map[string][]float64
}

// NewTable builds a table from an in-memory map. All vectors must share
// one dimensionality.
func NewTable(vectors map[string][]float64) (*Table, error) {
	t := &Table{vectors: make(map[string][]float64, len(vectors))}
	for term, vec := range vectors {
		if t.dim == 0 {
			t.dim = len(vec)
		}
		if len(vec) != t.dim || t.dim == 0 {
			return nil, fmt.Errorf("vector for %q has %d dims, want %d: %w",
				term, len(vec), t.dim, internalerr.ErrInvalidInput)
		}
		t.vectors[term] = vec
	}
	if t.dim == 0 {
		return nil, fmt.Errorf("empty embedding table: %w", internalerr.ErrInvalidInput)
	}
	return t, nil
}

// LoadText reads a word2vec-style text file: an optional "<count> <dim>"
// header line, then one "term v1 v2 ... vD" line per term.
func LoadText(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open embeddings %s: %w", path, err)
	}
	defer f.Close()

	vectors := make(map[string][]float64)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	first := true
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if first {
			first = false
			// Header line: two integers, no term.
			if len(fields) == 2 {
				if _, err1 := strconv.Atoi(fields[0]); err1 == nil {
					if _, err2 := strconv.Atoi(fields[1]); err2 == nil {
						continue
					}
				}
			}
		}
		if len(fields) < 2 {
			continue
		}
		term := fields[0]
		vec := make([]float64, len(fields)-1)
		for i, raw := range fields[1:] {
			val, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("parse vector for %q: %w", term, err)
			}
			vec[i] = val
		}
		vectors[term] = vec
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read embeddings %s: %w", path, err)
	}

	return NewTable(vectors)
}

// Dim returns the per-term vector dimensionality.
func (t *Table) Dim() int { return t.dim }

// Size returns the number of terms in the table.
func (t *Table) Size() int { return len(t.vectors) }

// Vector returns the embedding for a term. Unknown terms yield a zero
// vector and ok=false.
func (t *Table) Vector(term string) ([]float64, bool) {
	if vec, ok := t.vectors[term]; ok {
		return vec, true
	}
	return make([]float64, t.dim), false
}
