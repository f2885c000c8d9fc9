// Package tokenfilter removes low-signal tokens from normalized text.
//
// Input is expected to already be normalized (lowercase letters,
// apostrophes, single spaces). The filter is deterministic: the same
// stopword list and the same input always produce byte-identical output.
package tokenfilter

import "strings"

// Filter drops stopwords, strips residual apostrophes, and removes short
// tokens. A document whose text filters down to nothing is excluded from
// the corpus by the merge stage.
type Filter struct {
	stopwords map[string]struct{}
	minRunes  int
}

// minTokenLen is exclusive: tokens of this length or shorter are dropped.
const minTokenLen = 3

// New creates a Filter over the given stopword list. An empty list falls
// back to the built-in English list.
func New(stopwords []string) *Filter {
	if len(stopwords) == 0 {
		stopwords = EnglishStopwords()
	}
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Filter{stopwords: stops, minRunes: minTokenLen}
}

// Clean filters one normalized document and rejoins the surviving tokens
// with single spaces.
func (f *Filter) Clean(normalized string) string {
	tokens := f.Tokens(normalized)
	return strings.Join(tokens, " ")
}

// Tokens returns the surviving tokens of one normalized document in order.
func (f *Filter) Tokens(normalized string) []string {
	var out []string
	for _, tok := range strings.Fields(normalized) {
		if f.isStopword(tok) {
			continue
		}
		// Residual punctuation: normalization leaves apostrophes in
		// place; they carry no signal once stopwords are gone.
		tok = strings.ReplaceAll(tok, "'", "")
		if len([]rune(tok)) <= f.minRunes {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func (f *Filter) isStopword(tok string) bool {
	_, ok := f.stopwords[tok]
	return ok
}

// AddStopword adds a word to the stopword list.
func (f *Filter) AddStopword(word string) {
	f.stopwords[strings.ToLower(word)] = struct{}{}
}

// RemoveStopword removes a word from the stopword list.
func (f *Filter) RemoveStopword(word string) {
	delete(f.stopwords, strings.ToLower(word))
}
