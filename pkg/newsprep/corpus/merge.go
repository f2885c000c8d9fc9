package corpus

// Merge concatenates the two label groups and deduplicates on clean text.
//
// Order is fixed and load-bearing: all fake-labeled documents first, then
// real-labeled, so "first occurrence wins" always resolves the same way.
// Rows with empty clean text and rows whose clean text exactly matches an
// earlier row are dropped silently; both are expected outcomes of
// aggressive cleaning, not errors.
func Merge(fake, real []Document) Corpus {
	merged := make([]Document, 0, len(fake)+len(real))
	seen := make(map[string]struct{}, len(fake)+len(real))

	appendGroup := func(docs []Document, label int) {
		for _, d := range docs {
			if d.CleanText == "" {
				continue
			}
			if _, dup := seen[d.CleanText]; dup {
				continue
			}
			seen[d.CleanText] = struct{}{}
			d.Label = label
			merged = append(merged, d)
		}
	}

	appendGroup(fake, LabelFake)
	appendGroup(real, LabelReal)

	return Corpus{Docs: merged}
}
