package corpus

import (
	"math/rand"
	"time"
)

// DateRange is a half-open interval [Start, End) over publication dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the interval.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Split partitions a corpus into train and eval subsets by publication
// date. Membership is a pure function of the date: no randomness, no
// dependence on corpus order. Documents outside both ranges belong to
// neither subset and are excluded from modeling, which keeps the two
// subsets non-overlapping when the ranges are.
func Split(c Corpus, train, eval DateRange) (Corpus, Corpus) {
	var trainDocs, evalDocs []Document
	for _, d := range c.Docs {
		switch {
		case train.Contains(d.PublishedAt):
			trainDocs = append(trainDocs, d)
		case eval.Contains(d.PublishedAt):
			evalDocs = append(evalDocs, d)
		}
	}
	return Corpus{Docs: trainDocs}, Corpus{Docs: evalDocs}
}

// Shuffle reorders the documents of one subset in place using an explicit
// seed. It only permutes rows; it can never change subset membership.
// Ambient global RNG state is never consulted.
func Shuffle(c *Corpus, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(c.Docs), func(i, j int) {
		c.Docs[i], c.Docs[j] = c.Docs[j], c.Docs[i]
	})
}
