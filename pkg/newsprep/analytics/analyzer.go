// Package analytics aggregates corpus-level statistics for exploratory
// reporting: label balance, top document-frequency terms per label, and
// documents-per-month drift.
package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/cognicore/newsprep/pkg/newsprep/corpus"
)

// Analyzer aggregates document-level stats.
type Analyzer struct {
	totalDocs   int64
	labelCounts map[int]int64
	tokenDF     map[int]map[string]int64 // label → term → df
	monthCounts map[string]int64         // YYYY-MM → docs
}

// NewAnalyzer creates an empty analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		labelCounts: make(map[int]int64),
		tokenDF:     make(map[int]map[string]int64),
		monthCounts: make(map[string]int64),
	}
}

// Process consumes one document.
func (a *Analyzer) Process(d corpus.Document) {
	a.totalDocs++
	a.labelCounts[d.Label]++

	if !d.PublishedAt.IsZero() {
		a.monthCounts[d.PublishedAt.Format("2006-01")]++
	}

	if a.tokenDF[d.Label] == nil {
		a.tokenDF[d.Label] = make(map[string]int64)
	}
	seen := make(map[string]struct{})
	for _, tok := range strings.Fields(d.CleanText) {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		a.tokenDF[d.Label][tok]++
	}
}

// ProcessCorpus consumes every document of a corpus.
func (a *Analyzer) ProcessCorpus(c corpus.Corpus) {
	for _, d := range c.Docs {
		a.Process(d)
	}
}

// TotalDocs returns the number of processed documents.
func (a *Analyzer) TotalDocs() int64 { return a.totalDocs }

// LabelBalance returns the document count per label.
func (a *Analyzer) LabelBalance() map[int]int64 {
	out := make(map[int]int64, len(a.labelCounts))
	for label, n := range a.labelCounts {
		out[label] = n
	}
	return out
}

// TermStat is one term with its document frequency.
type TermStat struct {
	Term string
	DF   int64
}

// TopTerms returns the k highest-DF terms for one label, ties broken
// lexicographically for stable output.
func (a *Analyzer) TopTerms(label, k int) []TermStat {
	stats := make([]TermStat, 0, len(a.tokenDF[label]))
	for term, df := range a.tokenDF[label] {
		stats = append(stats, TermStat{Term: term, DF: df})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].DF != stats[j].DF {
			return stats[i].DF > stats[j].DF
		}
		return stats[i].Term < stats[j].Term
	})
	if k > 0 && len(stats) > k {
		stats = stats[:k]
	}
	return stats
}

// MonthCount is the document volume of one calendar month.
type MonthCount struct {
	Month string // YYYY-MM
	Docs  int64
}

// MonthlyVolume returns document counts per month in chronological order,
// the raw material for topic-drift inspection.
func (a *Analyzer) MonthlyVolume() []MonthCount {
	out := make([]MonthCount, 0, len(a.monthCounts))
	for month, n := range a.monthCounts {
		out = append(out, MonthCount{Month: month, Docs: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// DateSpan returns the earliest and latest publication month seen.
func (a *Analyzer) DateSpan() (first, last time.Time, ok bool) {
	months := a.MonthlyVolume()
	if len(months) == 0 {
		return time.Time{}, time.Time{}, false
	}
	first, _ = time.Parse("2006-01", months[0].Month)
	last, _ = time.Parse("2006-01", months[len(months)-1].Month)
	return first, last, true
}
