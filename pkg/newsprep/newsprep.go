// Package newsprep is the pipeline facade: raw labeled rows in,
// deduplicated time-split corpora and frozen vectorizer artifacts out.
package newsprep

import (
	"context"
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/newsprep/pkg/newsprep/corpus"
	"github.com/cognicore/newsprep/pkg/newsprep/normalize"
	"github.com/cognicore/newsprep/pkg/newsprep/store"
	"github.com/cognicore/newsprep/pkg/newsprep/tokenfilter"
	"github.com/cognicore/newsprep/pkg/newsprep/vectorize"
)

// Row is one raw article handed to the pipeline.
type Row struct {
	Title       string
	Text        string
	Subject     string
	PublishedAt time.Time
}

// Options configures a Pipeline instance.
type Options struct {
	Normalizer       *normalize.Normalizer
	Filter           *tokenfilter.Filter
	TrainRange       corpus.DateRange
	EvalRange        corpus.DateRange
	MinDocProportion float64
	Weighting        vectorize.Weighting
	ShuffleSeed      int64
}

// Pipeline runs the full preparation flow:
// normalize → filter → merge/dedup → temporal split → fit → transform.
type Pipeline struct {
	norm    *normalize.Normalizer
	filter  *tokenfilter.Filter
	opts    Options
	entropy *ulid.MonotonicEntropy
}

// New creates a Pipeline with the given components.
func New(opts Options) *Pipeline {
	if opts.Normalizer == nil {
		opts.Normalizer = normalize.New()
	}
	if opts.Filter == nil {
		opts.Filter = tokenfilter.New(nil)
	}
	return &Pipeline{
		norm:    opts.Normalizer,
		filter:  opts.Filter,
		opts:    opts,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Result holds everything one run produces. Vocabulary and the matrices
// are frozen once Prepare returns; downstream trainers only read them.
type Result struct {
	RunID       string
	Corpus      corpus.Corpus
	Train       corpus.Corpus
	Eval        corpus.Corpus
	Vocab       *vectorize.Vocabulary
	TrainMatrix *vectorize.Matrix
	EvalMatrix  *vectorize.Matrix
}

// Prepare executes the pipeline over the two labeled row sets. Every
// stage is a pure in-memory transformation; the only failure mode left at
// this point is upstream (ingest), so Prepare itself is total.
func (p *Pipeline) Prepare(fakeRows, realRows []Row) *Result {
	fakeDocs := p.prepareDocs(fakeRows, normalize.SourceFake)
	realDocs := p.prepareDocs(realRows, normalize.SourceReal)

	merged := corpus.Merge(fakeDocs, realDocs)
	train, eval := corpus.Split(merged, p.opts.TrainRange, p.opts.EvalRange)

	// Shuffling only reorders rows within a subset; membership was fixed
	// by the split above. Distinct derived seeds keep the two subsets'
	// permutations independent but reproducible.
	corpus.Shuffle(&train, p.opts.ShuffleSeed)
	corpus.Shuffle(&eval, p.opts.ShuffleSeed+1)

	vocab := vectorize.Fit(train, p.opts.MinDocProportion)

	return &Result{
		RunID:       ulid.MustNew(ulid.Now(), p.entropy).String(),
		Corpus:      merged,
		Train:       train,
		Eval:        eval,
		Vocab:       vocab,
		TrainMatrix: vectorize.Transform(train, vocab, p.opts.Weighting),
		EvalMatrix:  vectorize.Transform(eval, vocab, p.opts.Weighting),
	}
}

// prepareDocs normalizes and filters one label group. Documents are kept
// even when they clean down to nothing; Merge drops those, keeping this
// step side-effect free.
func (p *Pipeline) prepareDocs(rows []Row, kind normalize.SourceKind) []corpus.Document {
	docs := make([]corpus.Document, 0, len(rows))
	for _, r := range rows {
		raw := r.Text
		if r.Title != "" {
			raw = r.Title + ". " + r.Text
		}
		normalized := p.norm.Normalize(raw, kind)
		clean := p.filter.Clean(normalized)
		docs = append(docs, corpus.Document{
			RawText:     raw,
			CleanText:   clean,
			Tokens:      strings.Fields(clean),
			Subject:     r.Subject,
			PublishedAt: r.PublishedAt,
		})
	}
	return docs
}

// Persist writes a run's artifacts to the store: run metadata, every
// split member with its membership, and the frozen vocabulary rows.
func (p *Pipeline) Persist(ctx context.Context, st store.Store, res *Result, configYAML string) error {
	if err := st.CreateRun(ctx, store.Run{
		ID:         res.RunID,
		CreatedAt:  time.Now(),
		ConfigYAML: configYAML,
	}); err != nil {
		return err
	}

	if err := st.InsertDocs(ctx, res.RunID, storeDocs(res.Train, store.SplitTrain)); err != nil {
		return err
	}
	if err := st.InsertDocs(ctx, res.RunID, storeDocs(res.Eval, store.SplitEval)); err != nil {
		return err
	}

	terms := make([]store.VocabTerm, res.Vocab.Size())
	for i := 0; i < res.Vocab.Size(); i++ {
		terms[i] = store.VocabTerm{
			Term:  res.Vocab.Term(i),
			Index: i,
			DF:    res.Vocab.DocFreq(i),
			IDF:   res.Vocab.IDF(i),
		}
	}
	return st.SaveVocabulary(ctx, res.RunID, terms)
}

func storeDocs(c corpus.Corpus, split string) []store.Doc {
	docs := make([]store.Doc, 0, c.Len())
	for _, d := range c.Docs {
		docs = append(docs, store.Doc{
			Label:       d.Label,
			Subject:     d.Subject,
			PublishedAt: d.PublishedAt,
			CleanText:   d.CleanText,
			Split:       split,
		})
	}
	return docs
}
