package vectorize

import (
	"math"
	"testing"

	"github.com/cognicore/newsprep/pkg/newsprep/corpus"
)

func corpusOf(texts ...string) corpus.Corpus {
	docs := make([]corpus.Document, len(texts))
	for i, txt := range texts {
		docs[i] = corpus.Document{CleanText: txt}
	}
	return corpus.Corpus{Docs: docs}
}

func TestFitDocFrequencyThreshold(t *testing.T) {
	// 10 documents, proportion 0.2: keep terms with df >= 2.
	c := corpusOf(
		"shared alpha", "shared beta", "shared gamma", "shared delta",
		"shared epsilon", "pair zeta", "pair eta", "theta iota",
		"kappa lambda", "unique omega",
	)

	v := Fit(c, 0.2)

	if _, ok := v.Index("shared"); !ok {
		t.Error("Term with df=5 should be retained")
	}
	if _, ok := v.Index("pair"); !ok {
		t.Error("Term with df=2 should be retained (threshold is inclusive)")
	}
	if _, ok := v.Index("alpha"); ok {
		t.Error("Term with df=1 should be pruned")
	}
	if _, ok := v.Index("omega"); ok {
		t.Error("Term with df=1 should be pruned")
	}
	if v.Size() != 2 {
		t.Errorf("Size = %d, want 2", v.Size())
	}
}

func TestFitEveryRetainedTermMeetsThreshold(t *testing.T) {
	c := corpusOf(
		"one two three", "one two", "one four", "five six", "one seven two",
	)
	prop := 0.4
	v := Fit(c, prop)

	threshold := prop * float64(c.Len())
	for i := 0; i < v.Size(); i++ {
		if float64(v.DocFreq(i)) < threshold {
			t.Errorf("Term %q df=%d below threshold %v", v.Term(i), v.DocFreq(i), threshold)
		}
	}
}

func TestFitIndexOrderDeterministic(t *testing.T) {
	build := func() *Vocabulary {
		return Fit(corpusOf(
			"apple banana", "apple banana", "apple cherry", "banana cherry",
		), 0)
	}

	first := build()
	for run := 0; run < 10; run++ {
		again := build()
		if again.Size() != first.Size() {
			t.Fatalf("Size differs: %d != %d", again.Size(), first.Size())
		}
		for i := 0; i < first.Size(); i++ {
			if again.Term(i) != first.Term(i) {
				t.Fatalf("Run %d: index %d is %q, want %q", run, i, again.Term(i), first.Term(i))
			}
		}
	}
}

func TestFitTieBreakLexicographic(t *testing.T) {
	// All four terms have df=2; order must be alphabetical.
	v := Fit(corpusOf("zeta alpha", "zeta alpha", "mike bravo", "mike bravo"), 0)

	want := []string{"alpha", "bravo", "mike", "zeta"}
	if v.Size() != len(want) {
		t.Fatalf("Size = %d, want %d", v.Size(), len(want))
	}
	for i, term := range want {
		if v.Term(i) != term {
			t.Errorf("Term(%d) = %q, want %q", i, v.Term(i), term)
		}
	}
}

func TestFitOrdersByDFThenTerm(t *testing.T) {
	v := Fit(corpusOf("top mid", "top mid", "top rare", "top other"), 0)

	// df: top=4, mid=2, other=1, rare=1.
	if v.Term(0) != "top" {
		t.Errorf("Term(0) = %q, want %q", v.Term(0), "top")
	}
	if v.Term(1) != "mid" {
		t.Errorf("Term(1) = %q, want %q", v.Term(1), "mid")
	}
	if v.Term(2) != "other" || v.Term(3) != "rare" {
		t.Errorf("Tie order = %q,%q, want other,rare", v.Term(2), v.Term(3))
	}
}

func TestFitIDFValues(t *testing.T) {
	c := corpusOf("alpha beta", "alpha", "alpha gamma", "beta gamma")
	v := Fit(c, 0)

	n := c.Len()
	for i := 0; i < v.Size(); i++ {
		want := math.Log(float64(1+n)/float64(1+v.DocFreq(i))) + 1
		if got := v.IDF(i); got != want {
			t.Errorf("IDF(%q) = %v, want %v", v.Term(i), got, want)
		}
	}

	// Every retained term has df >= 1, so IDF is always finite and positive.
	for i := 0; i < v.Size(); i++ {
		if idf := v.IDF(i); math.IsInf(idf, 0) || math.IsNaN(idf) || idf <= 0 {
			t.Errorf("IDF(%q) = %v, want finite positive", v.Term(i), idf)
		}
	}
}

func TestFitDuplicateTokensCountOnce(t *testing.T) {
	// "spam" appears 5 times in one doc but df counts documents.
	v := Fit(corpusOf("spam spam spam spam spam", "spam ham"), 0)

	i, ok := v.Index("spam")
	if !ok {
		t.Fatal("spam should be in vocabulary")
	}
	if v.DocFreq(i) != 2 {
		t.Errorf("DocFreq(spam) = %d, want 2", v.DocFreq(i))
	}
}
