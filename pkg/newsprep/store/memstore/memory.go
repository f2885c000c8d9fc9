package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/newsprep/pkg/newsprep/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu     sync.RWMutex
	nextID int64
	runs   map[string]store.Run
	docs   map[string][]store.Doc
	vocab  map[string][]store.VocabTerm
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		nextID: 1,
		runs:   make(map[string]store.Run),
		docs:   make(map[string][]store.Doc),
		vocab:  make(map[string][]store.VocabTerm),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

func (s *Store) CreateRun(ctx context.Context, r store.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[r.ID] = r
	return nil
}

func (s *Store) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.runs[id]
	return r, ok, nil
}

func (s *Store) ListRuns(ctx context.Context) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]store.Run, 0, len(s.runs))
	for _, r := range s.runs {
		runs = append(runs, r)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.Before(runs[j].CreatedAt)
	})
	return runs, nil
}

func (s *Store) InsertDocs(ctx context.Context, runID string, docs []store.Doc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range docs {
		d.ID = s.nextID
		s.nextID++
		d.RunID = runID
		s.docs[runID] = append(s.docs[runID], d)
	}
	return nil
}

func (s *Store) GetDocs(ctx context.Context, runID, split string) ([]store.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.Doc
	for _, d := range s.docs[runID] {
		if split != "" && d.Split != split {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *Store) SaveVocabulary(ctx context.Context, runID string, terms []store.VocabTerm) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := make([]store.VocabTerm, len(terms))
	copy(saved, terms)
	s.vocab[runID] = saved
	return nil
}

func (s *Store) GetVocabulary(ctx context.Context, runID string) ([]store.VocabTerm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	terms := make([]store.VocabTerm, len(s.vocab[runID]))
	copy(terms, s.vocab[runID])
	sort.Slice(terms, func(i, j int) bool { return terms[i].Index < terms[j].Index })
	return terms, nil
}
