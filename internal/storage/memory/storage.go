package memory

import (
	"context"
	"sync"

	"github.com/mcoot/wordsland/internal/model"
	"github.com/mcoot/wordsland/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	dictionaryWords []string
	rounds          map[model.SessionID][]*model.RoundSummary
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		rounds: make(map[model.SessionID][]*model.RoundSummary),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dictionaryWords == nil {
		return nil, model.ErrDictionaryNotLoaded
	}
	result := make([]string, len(s.dictionaryWords))
	copy(result, s.dictionaryWords)
	return result, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaryWords = make([]string, len(words))
	copy(s.dictionaryWords, words)
	return nil
}

// Round history operations

func (s *Storage) SaveRoundSummary(ctx context.Context, summary *model.RoundSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *summary
	stored.Words = append([]string(nil), summary.Words...)
	s.rounds[summary.SessionID] = append(s.rounds[summary.SessionID], &stored)
	return nil
}

func (s *Storage) ListRoundSummaries(ctx context.Context, sessionID model.SessionID) ([]*model.RoundSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summaries := s.rounds[sessionID]
	result := make([]*model.RoundSummary, len(summaries))
	copy(result, summaries)
	return result, nil
}

func (s *Storage) DeleteRoundSummaries(ctx context.Context, sessionID model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rounds, sessionID)
	return nil
}
