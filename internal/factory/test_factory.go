package factory

import (
	"time"

	"github.com/mcoot/wordsland/internal/dependencies/mocks"
	"github.com/mcoot/wordsland/internal/dependencies/random"
	"github.com/mcoot/wordsland/internal/model"
	"github.com/mcoot/wordsland/internal/storage/memory"
	"github.com/mcoot/wordsland/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Every session gets a fresh MockRandom, so boards are laid out row-major
// from (0,0) and hands are dealt in alphabetical order.
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(model.DefaultGameConfig())
}

// NewTestAppWithConfig is NewTestApp with custom rules parameters
func NewTestAppWithConfig(gameCfg model.GameConfig) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	engineRand := func() random.Random { return mocks.NewMockRandom() }

	app := newWithDependencies(store, mockClock, mockRandom, engineRand, gameCfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		// 2-letter words
		"aa", "ab", "ad", "ae", "ag", "ah", "ai", "al", "am", "an",
		"ar", "as", "at", "aw", "ax", "ay", "ba", "be", "bi", "bo",
		"by", "do", "go", "he", "if", "in", "is", "it", "me", "my",
		"no", "of", "on", "or", "so", "to", "up", "us", "we",
		// 3-letter words
		"aaa", "aba", "abs", "ace", "act", "add", "age", "ago", "aid", "aim",
		"air", "all", "and", "ant", "any", "ape", "arc", "are", "ark", "arm",
		"art", "ash", "ask", "ate", "bad", "bag", "ban", "bar", "bat", "bed",
		"cab", "can", "cap", "car", "cat", "dog", "ear", "eat", "end", "era",
		// 4-letter words
		"able", "also", "area", "baby", "back", "bake", "ball", "band", "bank", "base",
		"cafe", "data", "dead", "deal", "each", "east", "easy", "edge", "game", "word",
		// 5-letter words
		"about", "above", "board", "bread", "break", "cards", "earth", "games", "words", "world",
	}
	return t.DictionaryService.LoadWords(words)
}
