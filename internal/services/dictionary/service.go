package dictionary

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mcoot/wordsland/internal/storage"
)

// Service holds the set of valid words.
// Lookups are safe while a load is in flight; until the first load
// finishes no word is valid.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  map[string]struct{}
	loaded bool
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		words:   make(map[string]struct{}),
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line).
// Lines are trimmed and uppercased; blank lines are skipped.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if word := Normalize(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := s.loadWords(words); err != nil {
		return err
	}

	// Cache for the next start; the words in memory are still usable
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		s.logger.Warn("failed to cache dictionary",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

// LoadFromFileAsync loads the file in the background.
// The returned channel receives the load result and is then closed.
func (s *Service) LoadFromFileAsync(ctx context.Context, path string) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		start := time.Now()
		err := s.LoadFromFile(ctx, path)
		if err != nil {
			s.logger.Error("dictionary load failed",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		} else {
			s.logger.Info("dictionary loaded",
				slog.String("path", path),
				slog.Int("words", s.WordCount()),
				slog.Duration("duration", time.Since(start)),
			)
		}
		done <- err
	}()
	return done
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		if w := Normalize(word); w != "" {
			set[w] = struct{}{}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = set
	s.loaded = true
	return nil
}

// Contains reports whether the uppercase word is in the dictionary
func (s *Service) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}
	_, ok := s.words[word]
	return ok
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Normalize trims whitespace and uppercases a dictionary entry
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}
