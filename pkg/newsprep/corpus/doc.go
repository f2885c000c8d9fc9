// Package corpus holds the document model and the corpus-level
// transformations: labeled merge with deduplication, the date-based
// train/eval split, and seeded in-subset shuffling.
package corpus

import "time"

// Label values for the two article origins.
const (
	LabelReal = 0
	LabelFake = 1
)

// Document is one news article with its derived fields. CleanText and
// Tokens are computed once during preparation and treated as immutable;
// every later stage reads them, none rewrites them.
type Document struct {
	RawText     string
	CleanText   string
	Tokens      []string
	Label       int
	Subject     string
	PublishedAt time.Time
}

// Corpus is an ordered collection of documents sharing one normalization.
// After Merge, clean text is unique across documents.
type Corpus struct {
	Docs []Document
}

// Len returns the number of documents.
func (c Corpus) Len() int { return len(c.Docs) }

// CleanTexts returns the clean text of every document in corpus order.
func (c Corpus) CleanTexts() []string {
	out := make([]string, len(c.Docs))
	for i, d := range c.Docs {
		out[i] = d.CleanText
	}
	return out
}

// Labels returns the label of every document in corpus order.
func (c Corpus) Labels() []int {
	out := make([]int, len(c.Docs))
	for i, d := range c.Docs {
		out[i] = d.Label
	}
	return out
}
