package corpus

import (
	"testing"
	"time"
)

func doc(clean string, published time.Time) Document {
	return Document{CleanText: clean, PublishedAt: published}
}

func TestMergeLabelsAndOrder(t *testing.T) {
	day := time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC)
	fake := []Document{doc("fake story one", day), doc("fake story two", day)}
	real := []Document{doc("real story one", day)}

	c := Merge(fake, real)

	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
	// Fake group first, then real; labels assigned by origin.
	for i := 0; i < 2; i++ {
		if c.Docs[i].Label != LabelFake {
			t.Errorf("Docs[%d].Label = %d, want %d", i, c.Docs[i].Label, LabelFake)
		}
	}
	if c.Docs[2].Label != LabelReal {
		t.Errorf("Docs[2].Label = %d, want %d", c.Docs[2].Label, LabelReal)
	}
}

func TestMergeDropsDuplicates(t *testing.T) {
	day := time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC)
	fake := []Document{doc("same cleaned text", day), doc("unique fake", day)}
	real := []Document{doc("same cleaned text", day.AddDate(0, 1, 0)), doc("unique real", day)}

	c := Merge(fake, real)

	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3 (one duplicate dropped)", c.Len())
	}
	// First occurrence wins: the fake-labeled copy is retained.
	for _, d := range c.Docs {
		if d.CleanText == "same cleaned text" && d.Label != LabelFake {
			t.Errorf("Retained duplicate has label %d, want %d", d.Label, LabelFake)
		}
	}
}

func TestMergeDedupOrderStable(t *testing.T) {
	day := time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC)
	fake := []Document{doc("collision", day), doc("other fake", day)}
	real := []Document{doc("collision", day)}

	first := Merge(fake, real)
	for i := 0; i < 5; i++ {
		again := Merge(fake, real)
		if again.Len() != first.Len() {
			t.Fatalf("Merge not stable: %d != %d", again.Len(), first.Len())
		}
		for j := range first.Docs {
			if again.Docs[j].CleanText != first.Docs[j].CleanText ||
				again.Docs[j].Label != first.Docs[j].Label {
				t.Fatalf("Merge row %d differs between runs", j)
			}
		}
	}
}

func TestMergeDropsEmptyCleanText(t *testing.T) {
	day := time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC)
	fake := []Document{doc("", day), doc("kept", day)}
	real := []Document{doc("", day)}

	c := Merge(fake, real)
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
	if c.Docs[0].CleanText != "kept" {
		t.Errorf("Surviving doc = %q, want %q", c.Docs[0].CleanText, "kept")
	}
}

func TestMergeUniquenessInvariant(t *testing.T) {
	day := time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC)
	fake := []Document{doc("a b c", day), doc("d e f", day), doc("a b c", day)}
	real := []Document{doc("d e f", day), doc("g h i", day)}

	c := Merge(fake, real)

	seen := make(map[string]struct{})
	for _, d := range c.Docs {
		if _, dup := seen[d.CleanText]; dup {
			t.Fatalf("Duplicate clean text in merged corpus: %q", d.CleanText)
		}
		seen[d.CleanText] = struct{}{}
	}
}
