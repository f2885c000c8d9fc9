package store

import (
	"context"
	"time"
)

// Split membership values persisted with each document.
const (
	SplitTrain = "train"
	SplitEval  = "eval"
)

// Store persists pipeline runs and their frozen artifacts: prepared
// documents with split membership, and the vocabulary with its fit-time
// statistics. Artifacts are written once per run and read-only afterwards.
type Store interface {
	Close() error

	// Runs
	CreateRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context) ([]Run, error)

	// Documents
	InsertDocs(ctx context.Context, runID string, docs []Doc) error
	GetDocs(ctx context.Context, runID, split string) ([]Doc, error)

	// Vocabulary
	SaveVocabulary(ctx context.Context, runID string, terms []VocabTerm) error
	GetVocabulary(ctx context.Context, runID string) ([]VocabTerm, error)
}

// Run is one pipeline execution, identified by ULID.
type Run struct {
	ID         string
	CreatedAt  time.Time
	ConfigYAML string
}

// Doc is one prepared document as persisted.
type Doc struct {
	ID          int64
	RunID       string
	Label       int
	Subject     string
	PublishedAt time.Time
	CleanText   string
	Split       string
}

// VocabTerm is one frozen vocabulary row.
type VocabTerm struct {
	Term  string
	Index int
	DF    int64
	IDF   float64
}
