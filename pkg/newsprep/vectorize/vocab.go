// Package vectorize builds frozen term vocabularies from a training corpus
// and turns documents into sparse count or TF-IDF vectors.
//
// The contract is fit-once/transform-many: Fit consumes exactly one
// designated training corpus and freezes both the term-to-column mapping
// and the per-term IDF. Transforming any later corpus (the eval split
// included) reuses those frozen statistics and never learns anything from
// the data it transforms.
package vectorize

import (
	"math"
	"sort"
	"strings"

	"github.com/cognicore/newsprep/pkg/newsprep/corpus"
)

// Vocabulary maps terms to stable column indices, together with the
// fit-time document frequencies and IDF weights. Immutable after Fit.
type Vocabulary struct {
	index   map[string]int
	terms   []string
	df      []int64
	idf     []float64
	numDocs int
}

// Fit builds a vocabulary from the training corpus. Terms are kept when
// their document frequency is at least minDocProportion of the corpus
// size. Indices are assigned by descending document frequency with
// lexicographic tie-break, so two runs over the same corpus always agree.
func Fit(train corpus.Corpus, minDocProportion float64) *Vocabulary {
	n := train.Len()
	dfCounts := make(map[string]int64)
	for _, d := range train.Docs {
		seen := make(map[string]struct{})
		for _, tok := range strings.Fields(d.CleanText) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			dfCounts[tok]++
		}
	}

	threshold := minDocProportion * float64(n)
	var retained []string
	for term, df := range dfCounts {
		if float64(df) >= threshold {
			retained = append(retained, term)
		}
	}

	sort.Slice(retained, func(i, j int) bool {
		a, b := retained[i], retained[j]
		if dfCounts[a] != dfCounts[b] {
			return dfCounts[a] > dfCounts[b]
		}
		return a < b
	})

	v := &Vocabulary{
		index:   make(map[string]int, len(retained)),
		terms:   retained,
		df:      make([]int64, len(retained)),
		idf:     make([]float64, len(retained)),
		numDocs: n,
	}
	for i, term := range retained {
		v.index[term] = i
		v.df[i] = dfCounts[term]
		// Smoothed IDF. Every retained term has df >= 1 in training, so
		// the plain formula would already be finite; smoothing keeps
		// weights bounded for terms present in every document.
		v.idf[i] = math.Log(float64(1+n)/float64(1+dfCounts[term])) + 1
	}
	return v
}

// Size returns the number of columns.
func (v *Vocabulary) Size() int { return len(v.terms) }

// NumDocs returns the size of the corpus the vocabulary was fit on.
func (v *Vocabulary) NumDocs() int { return v.numDocs }

// Index returns the column for a term, or ok=false for terms outside the
// vocabulary. Unknown terms are dropped by Transform, never an error.
func (v *Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// Term returns the term at column i.
func (v *Vocabulary) Term(i int) string { return v.terms[i] }

// DocFreq returns the fit-time document frequency of column i.
func (v *Vocabulary) DocFreq(i int) int64 { return v.df[i] }

// IDF returns the fit-time IDF of column i.
func (v *Vocabulary) IDF(i int) float64 { return v.idf[i] }

// Terms returns the terms in column order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}
