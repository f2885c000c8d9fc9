// Package normalize turns raw article text into a canonical lowercase form.
//
// The transformation is a fixed sequence of substitutions; later steps
// assume earlier ones already ran (URL stripping expects lowercased input,
// the character-class sweep expects markup to be gone). The result contains
// only lowercase letters, apostrophes, and single spaces, and the whole
// function is idempotent: normalizing already-normalized text is a no-op.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SourceKind discriminates the two article origins. Wire-service articles
// open with an attribution tagline ("WASHINGTON (Reuters) - ...") that must
// be cut before tokenization; the other source has no such convention.
type SourceKind int

const (
	SourceFake SourceKind = iota
	SourceReal
)

// taglineMarker ends the wire-service attribution prefix. Matching happens
// after lowercasing, so the marker is spelled lowercase.
const taglineMarker = "(reuters) -"

var (
	genericURL = regexp.MustCompile(`(?:https?://|www\.)\S+`)
	shortLink  = regexp.MustCompile(`pic\.twitter\.com/\S+`)
	mention    = regexp.MustCompile(`@\w+`)
	hashtag    = regexp.MustCompile(`#\w+`)
	nonLetter  = regexp.MustCompile(`[^a-z']+`)
)

// Normalizer applies the full cleaning sequence.
type Normalizer struct {
	contractions *contractionSet
}

// New creates a Normalizer with the default contraction repairs.
func New() *Normalizer {
	return &Normalizer{contractions: defaultContractions()}
}

// Normalize cleans one article body. It is a pure function: empty output is
// returned as-is and never treated as an error here; dropping empty rows is
// the merge stage's job.
func (n *Normalizer) Normalize(raw string, kind SourceKind) string {
	if raw == "" {
		return ""
	}

	// Unicode fold first so curly apostrophes and composed characters
	// behave like their ASCII/NFC counterparts downstream.
	s := norm.NFC.String(raw)
	s = strings.ReplaceAll(s, "’", "'")

	// 1. Repair split contractions before lowercasing destroys the
	// case-insensitive match targets.
	s = n.contractions.Repair(s)

	// 2. Lowercase everything.
	s = strings.ToLower(s)

	// 3. Cut the attribution tagline for wire-service articles.
	if kind == SourceReal {
		if idx := strings.Index(s, taglineMarker); idx >= 0 {
			s = s[idx+len(taglineMarker):]
		}
	}

	// 4-6. Strip links, mentions, and hashtags while the tokens are still
	// intact; the character sweep below would otherwise merge their
	// remnants into neighboring words.
	s = genericURL.ReplaceAllString(s, " ")
	s = shortLink.ReplaceAllString(s, " ")
	s = mention.ReplaceAllString(s, " ")
	s = hashtag.ReplaceAllString(s, " ")

	// 7. Everything that is not a lowercase letter or apostrophe becomes a
	// space, then runs of whitespace collapse to one.
	s = nonLetter.ReplaceAllString(s, " ")

	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}
