package corpus

import (
	"testing"
	"time"
)

func mkRange(startYMD, endYMD string) DateRange {
	start, _ := time.Parse("2006-01-02", startYMD)
	end, _ := time.Parse("2006-01-02", endYMD)
	return DateRange{Start: start, End: end}
}

func datedCorpus(dates ...string) Corpus {
	var docs []Document
	for i, ymd := range dates {
		ts, _ := time.Parse("2006-01-02", ymd)
		docs = append(docs, Document{CleanText: string(rune('a' + i)), PublishedAt: ts})
	}
	return Corpus{Docs: docs}
}

func TestSplitMembershipByDate(t *testing.T) {
	c := datedCorpus("2016-03-01", "2017-02-15", "2017-10-01", "2017-12-31")
	train := mkRange("2016-01-01", "2017-09-01")
	eval := mkRange("2017-09-01", "2018-01-01")

	trainC, evalC := Split(c, train, eval)

	if trainC.Len() != 2 {
		t.Errorf("train len = %d, want 2", trainC.Len())
	}
	if evalC.Len() != 2 {
		t.Errorf("eval len = %d, want 2", evalC.Len())
	}
	for _, d := range trainC.Docs {
		if !train.Contains(d.PublishedAt) {
			t.Errorf("train doc dated %v outside train range", d.PublishedAt)
		}
	}
	for _, d := range evalC.Docs {
		if !eval.Contains(d.PublishedAt) {
			t.Errorf("eval doc dated %v outside eval range", d.PublishedAt)
		}
	}
}

func TestSplitHalfOpenBoundaries(t *testing.T) {
	// A doc exactly on the boundary belongs to the range that starts there.
	c := datedCorpus("2017-09-01")
	train := mkRange("2016-01-01", "2017-09-01")
	eval := mkRange("2017-09-01", "2018-01-01")

	trainC, evalC := Split(c, train, eval)
	if trainC.Len() != 0 || evalC.Len() != 1 {
		t.Errorf("boundary doc: train=%d eval=%d, want 0/1", trainC.Len(), evalC.Len())
	}
}

func TestSplitExcludesOutsideBothRanges(t *testing.T) {
	c := datedCorpus("2015-01-01", "2016-06-01", "2019-01-01")
	train := mkRange("2016-01-01", "2017-01-01")
	eval := mkRange("2017-01-01", "2018-01-01")

	trainC, evalC := Split(c, train, eval)
	if trainC.Len() != 1 || evalC.Len() != 0 {
		t.Errorf("train=%d eval=%d, want 1/0", trainC.Len(), evalC.Len())
	}
}

func TestSplitDisjointSubsets(t *testing.T) {
	c := datedCorpus("2016-05-01", "2016-06-01", "2017-05-01", "2017-06-01")
	train := mkRange("2016-01-01", "2017-01-01")
	eval := mkRange("2017-01-01", "2018-01-01")

	trainC, evalC := Split(c, train, eval)

	inTrain := make(map[string]struct{})
	for _, d := range trainC.Docs {
		inTrain[d.CleanText] = struct{}{}
	}
	for _, d := range evalC.Docs {
		if _, both := inTrain[d.CleanText]; both {
			t.Fatalf("Document %q in both subsets", d.CleanText)
		}
	}
}

func TestSplitDeterministic(t *testing.T) {
	c := datedCorpus("2016-03-01", "2017-02-15", "2017-10-01")
	train := mkRange("2016-01-01", "2017-09-01")
	eval := mkRange("2017-09-01", "2018-01-01")

	t1, e1 := Split(c, train, eval)
	t2, e2 := Split(c, train, eval)

	if t1.Len() != t2.Len() || e1.Len() != e2.Len() {
		t.Fatal("Split not deterministic")
	}
	for i := range t1.Docs {
		if t1.Docs[i].CleanText != t2.Docs[i].CleanText {
			t.Fatal("Split order differs between runs")
		}
	}
}

func TestShuffleSeededReproducible(t *testing.T) {
	build := func() Corpus {
		return datedCorpus("2016-01-01", "2016-02-01", "2016-03-01",
			"2016-04-01", "2016-05-01", "2016-06-01", "2016-07-01",
			"2016-08-01", "2016-09-01", "2016-10-01")
	}

	a := build()
	b := build()
	Shuffle(&a, 42)
	Shuffle(&b, 42)

	for i := range a.Docs {
		if a.Docs[i].CleanText != b.Docs[i].CleanText {
			t.Fatalf("Same seed produced different orders at row %d", i)
		}
	}

	c := build()
	Shuffle(&c, 43)
	same := true
	for i := range a.Docs {
		if a.Docs[i].CleanText != c.Docs[i].CleanText {
			same = false
			break
		}
	}
	if same {
		t.Error("Different seeds produced identical orders (suspicious for 10 rows)")
	}
}

func TestShufflePreservesMembership(t *testing.T) {
	c := datedCorpus("2016-01-01", "2016-02-01", "2016-03-01", "2016-04-01")
	before := make(map[string]struct{})
	for _, d := range c.Docs {
		before[d.CleanText] = struct{}{}
	}

	Shuffle(&c, 7)

	if c.Len() != len(before) {
		t.Fatalf("Shuffle changed corpus size: %d != %d", c.Len(), len(before))
	}
	for _, d := range c.Docs {
		if _, ok := before[d.CleanText]; !ok {
			t.Fatalf("Shuffle introduced document %q", d.CleanText)
		}
	}
}
