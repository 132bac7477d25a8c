package storage

import (
	"context"

	"github.com/mcoot/wordsland/internal/model"
)

// Storage defines the interface for data persistence.
// Live game state stays in memory; only the dictionary and completed-round
// history are stored.
type Storage interface {
	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error

	// Round history operations
	SaveRoundSummary(ctx context.Context, summary *model.RoundSummary) error
	ListRoundSummaries(ctx context.Context, sessionID model.SessionID) ([]*model.RoundSummary, error)
	DeleteRoundSummaries(ctx context.Context, sessionID model.SessionID) error
}
