package vectorize

import (
	"math"
	"testing"
)

func TestTransformCounts(t *testing.T) {
	train := corpusOf("alpha beta alpha", "beta gamma")
	v := Fit(train, 0)

	m := Transform(train, v, Count)

	if m.Cols != v.Size() {
		t.Fatalf("Cols = %d, want %d", m.Cols, v.Size())
	}
	if len(m.Rows) != train.Len() {
		t.Fatalf("Rows = %d, want %d", len(m.Rows), train.Len())
	}

	alphaCol, _ := v.Index("alpha")
	betaCol, _ := v.Index("beta")

	row := m.Rows[0]
	got := map[int]float64{}
	for _, e := range row {
		got[e.Col] = e.Val
	}
	if got[alphaCol] != 2 {
		t.Errorf("alpha count = %v, want 2", got[alphaCol])
	}
	if got[betaCol] != 1 {
		t.Errorf("beta count = %v, want 1", got[betaCol])
	}
}

func TestTransformDropsOOV(t *testing.T) {
	train := corpusOf("alpha beta", "alpha beta")
	v := Fit(train, 0)

	held := corpusOf("alpha unseen zappa beta mystery")
	m := Transform(held, v, Count)

	for _, e := range m.Rows[0] {
		if e.Col < 0 || e.Col >= v.Size() {
			t.Fatalf("Column %d outside vocabulary of size %d", e.Col, v.Size())
		}
	}
	if len(m.Rows[0]) != 2 {
		t.Errorf("Row has %d entries, want 2 (OOV terms dropped)", len(m.Rows[0]))
	}
}

func TestTransformNeverAddsColumns(t *testing.T) {
	train := corpusOf("alpha beta gamma", "alpha beta", "gamma delta")
	v := Fit(train, 0)
	sizeBefore := v.Size()

	held := corpusOf("completely novel vocabulary here", "alpha epsilon")
	m := Transform(held, v, TFIDF)

	if v.Size() != sizeBefore {
		t.Fatalf("Vocabulary grew during transform: %d -> %d", sizeBefore, v.Size())
	}
	if m.Cols != sizeBefore {
		t.Fatalf("Matrix Cols = %d, want %d", m.Cols, sizeBefore)
	}
}

func TestTransformIDFFrozenAcrossCorpora(t *testing.T) {
	train := corpusOf("alpha beta", "alpha gamma", "beta gamma", "alpha")
	v := Fit(train, 0)

	// Snapshot fit-time IDF.
	idfBefore := make([]float64, v.Size())
	for i := range idfBefore {
		idfBefore[i] = v.IDF(i)
	}

	// A held-out corpus with wildly different term statistics.
	held := corpusOf("alpha alpha alpha", "alpha", "alpha beta beta")
	Transform(held, v, TFIDF)

	for i := range idfBefore {
		if v.IDF(i) != idfBefore[i] {
			t.Fatalf("IDF(%q) changed after transform: %v != %v",
				v.Term(i), v.IDF(i), idfBefore[i])
		}
	}

	// Single-term documents isolate one column: the TF-IDF row is the
	// L2-normalized value 1 regardless of which corpus it came from,
	// proving the weight per count unit derives from frozen IDF only.
	single := corpusOf("alpha")
	m1 := Transform(single, v, TFIDF)
	m2 := Transform(corpusOf("alpha"), v, TFIDF)
	if len(m1.Rows[0]) != 1 || len(m2.Rows[0]) != 1 {
		t.Fatal("Expected single-entry rows")
	}
	if m1.Rows[0][0].Val != m2.Rows[0][0].Val {
		t.Error("Same document vectorized differently across calls")
	}
}

func TestTransformTFIDFRowsL2Normalized(t *testing.T) {
	train := corpusOf("alpha beta gamma", "alpha beta", "gamma beta alpha")
	v := Fit(train, 0)

	m := Transform(train, v, TFIDF)
	for i, row := range m.Rows {
		if len(row) == 0 {
			continue
		}
		var sq float64
		for _, e := range row {
			sq += e.Val * e.Val
		}
		if norm := math.Sqrt(sq); math.Abs(norm-1) > 1e-9 {
			t.Errorf("Row %d L2 norm = %v, want 1", i, norm)
		}
	}
}

func TestTransformEmptyDocument(t *testing.T) {
	train := corpusOf("alpha beta", "beta gamma")
	v := Fit(train, 0)

	m := Transform(corpusOf(""), v, TFIDF)
	if len(m.Rows) != 1 {
		t.Fatalf("Rows = %d, want 1", len(m.Rows))
	}
	if len(m.Rows[0]) != 0 {
		t.Errorf("Empty document produced %d entries", len(m.Rows[0]))
	}
}

func TestTransformColumnsSorted(t *testing.T) {
	train := corpusOf("delta charlie bravo alpha", "alpha bravo", "charlie delta")
	v := Fit(train, 0)

	m := Transform(train, v, Count)
	for i, row := range m.Rows {
		for j := 1; j < len(row); j++ {
			if row[j-1].Col >= row[j].Col {
				t.Fatalf("Row %d columns not strictly ascending: %v", i, row)
			}
		}
	}
}

func TestTransformRowOrderMatchesCorpusOrder(t *testing.T) {
	train := corpusOf("alpha", "beta", "alpha beta")
	v := Fit(train, 0)
	alphaCol, _ := v.Index("alpha")

	m := Transform(train, v, Count)

	// Row 0 is the "alpha" doc, row 1 the "beta" doc.
	if len(m.Rows[0]) != 1 || m.Rows[0][0].Col != alphaCol {
		t.Error("Row 0 does not correspond to first document")
	}
	if len(m.Rows[2]) != 2 {
		t.Error("Row 2 does not correspond to third document")
	}
}
