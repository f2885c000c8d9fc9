package embed

// Aggregate maps a token sequence to one fixed-length vector: the
// TF-weighted average of the constituent word vectors, with term
// frequencies L1-normalized over the whole document.
//
// Out-of-table tokens contribute a zero vector and stay in the
// normalization denominator (zero-pad, not skip). The policy is fixed on
// purpose: skipping OOV tokens instead would inflate the magnitude of
// sparse-coverage documents and make vector norms depend on table
// coverage rather than document content.
//
// The result always has the table's dimensionality, whatever the document
// length; an empty token sequence yields the zero vector.
func Aggregate(tokens []string, t *Table) []float64 {
	out := make([]float64, t.Dim())
	if len(tokens) == 0 {
		return out
	}

	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	total := float64(len(tokens))
	for tok, cnt := range counts {
		vec, ok := t.Vector(tok)
		if !ok {
			continue // zero vector adds nothing, denominator already counts it
		}
		weight := float64(cnt) / total
		for i, val := range vec {
			out[i] += weight * val
		}
	}
	return out
}
