package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/wordsland/internal/dependencies/clock"
	"github.com/mcoot/wordsland/internal/dependencies/random"
	"github.com/mcoot/wordsland/internal/model"
	"github.com/mcoot/wordsland/internal/services/game"
	"github.com/mcoot/wordsland/internal/services/placement"
	"github.com/mcoot/wordsland/internal/storage"
)

const (
	// SessionIDLength is the length of generated session IDs
	SessionIDLength = 10
	// SessionIDAlphabet is the characters used in session IDs (avoid confusing chars)
	SessionIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// RandomSource returns the random source for a new engine.
// Each session gets its own so sessions never share generator state.
type RandomSource func() random.Random

type entry struct {
	mu        sync.Mutex
	engine    *game.Engine
	createdAt time.Time
	updatedAt time.Time
}

// Manager owns the live game sessions.
// Commands for one session are serialised; different sessions run in parallel.
type Manager struct {
	storage    storage.Storage
	dictionary placement.Dictionary
	config     model.GameConfig
	clock      clock.Clock
	random     random.Random
	engineRand RandomSource
	logger     *slog.Logger

	mu       sync.RWMutex
	sessions map[model.SessionID]*entry
}

// NewManager creates a new SessionManager
func NewManager(
	storage storage.Storage,
	dictionary placement.Dictionary,
	config model.GameConfig,
	clock clock.Clock,
	random random.Random,
	engineRand RandomSource,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		storage:    storage,
		dictionary: dictionary,
		config:     config,
		clock:      clock,
		random:     random,
		engineRand: engineRand,
		logger:     logger,
		sessions:   make(map[model.SessionID]*entry),
	}
}

// Create starts a new session at round 1
func (m *Manager) Create(ctx context.Context) (model.Snapshot, error) {
	engine, err := game.New(m.config, m.dictionary, m.engineRand())
	if err != nil {
		return model.Snapshot{}, err
	}

	now := m.clock.Now()
	e := &entry{engine: engine, createdAt: now, updatedAt: now}

	m.mu.Lock()
	var id model.SessionID
	for {
		id = model.SessionID(m.random.String(SessionIDLength, SessionIDAlphabet))
		if _, exists := m.sessions[id]; !exists {
			break
		}
	}
	m.sessions[id] = e
	m.mu.Unlock()

	m.logger.InfoContext(ctx, "session created",
		slog.String("session_id", string(id)),
		slog.Int("hand_size", m.config.HandSize),
		slog.Int("rows", m.config.Layout.Rows),
		slog.Int("cols", m.config.Layout.Cols),
	)

	return snapshot(id, e), nil
}

// Get returns the current state of a session
func (m *Manager) Get(ctx context.Context, id model.SessionID) (model.Snapshot, error) {
	e, err := m.lookup(id)
	if err != nil {
		return model.Snapshot{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(id, e), nil
}

// End removes a session and its round history
func (m *Manager) End(ctx context.Context, id model.SessionID) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return model.ErrSessionNotFound
	}

	if err := m.storage.DeleteRoundSummaries(ctx, id); err != nil {
		return err
	}
	m.logger.InfoContext(ctx, "session ended", slog.String("session_id", string(id)))
	return nil
}

// Count returns the number of live sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// PruneIdle ends every session untouched for longer than maxIdle.
// It returns the number of sessions removed.
func (m *Manager) PruneIdle(ctx context.Context, maxIdle time.Duration) int {
	m.mu.RLock()
	var idle []model.SessionID
	for id, e := range m.sessions {
		e.mu.Lock()
		if m.clock.Since(e.updatedAt) > maxIdle {
			idle = append(idle, id)
		}
		e.mu.Unlock()
	}
	m.mu.RUnlock()

	pruned := 0
	for _, id := range idle {
		if err := m.End(ctx, id); err != nil {
			if !errors.Is(err, model.ErrSessionNotFound) {
				m.logger.ErrorContext(ctx, "failed to prune session",
					slog.String("session_id", string(id)),
					slog.String("error", err.Error()),
				)
			}
			continue
		}
		pruned++
	}
	return pruned
}

// History returns the completed rounds of a session, oldest first
func (m *Manager) History(ctx context.Context, id model.SessionID) ([]*model.RoundSummary, error) {
	if _, err := m.lookup(id); err != nil {
		return nil, err
	}
	return m.storage.ListRoundSummaries(ctx, id)
}

// Commands

// Place moves a hand letter onto the board
func (m *Manager) Place(ctx context.Context, id model.SessionID, handIndex int, pos model.Position) (model.Snapshot, error) {
	return m.apply(ctx, id, "place", func(e *game.Engine) error {
		return e.PlaceLetter(handIndex, pos)
	})
}

// Move relocates an uncommitted letter
func (m *Manager) Move(ctx context.Context, id model.SessionID, from, to model.Position) (model.Snapshot, error) {
	return m.apply(ctx, id, "move", func(e *game.Engine) error {
		return e.MoveLetter(from, to)
	})
}

// Recall returns one uncommitted letter to the hand
func (m *Manager) Recall(ctx context.Context, id model.SessionID, pos model.Position) (model.Snapshot, error) {
	return m.apply(ctx, id, "recall", func(e *game.Engine) error {
		return e.RecallLetter(pos)
	})
}

// RecallAll returns every uncommitted letter to the hand
func (m *Manager) RecallAll(ctx context.Context, id model.SessionID) (model.Snapshot, error) {
	return m.apply(ctx, id, "recall_all", func(e *game.Engine) error {
		e.RecallAll()
		return nil
	})
}

// Commit validates and locks the placed letters.
// A won round is written to the round history.
func (m *Manager) Commit(ctx context.Context, id model.SessionID) (*model.CommitResult, model.Snapshot, error) {
	var result *model.CommitResult
	var round model.Round
	snap, err := m.apply(ctx, id, "commit", func(e *game.Engine) error {
		var err error
		result, err = e.CommitWord()
		round = e.Round()
		return err
	})
	if err != nil {
		return nil, snap, err
	}

	m.logger.InfoContext(ctx, "word committed",
		slog.String("session_id", string(id)),
		slog.String("word", result.Word.Text),
		slog.Int("rewards", len(result.Rewards)),
		slog.Int("drawn", result.Drawn),
	)

	if result.RoundWon {
		m.recordRound(ctx, id, round)
	}
	return result, snap, nil
}

// EnterSwap activates swap mode
func (m *Manager) EnterSwap(ctx context.Context, id model.SessionID) (model.Snapshot, error) {
	return m.apply(ctx, id, "swap_enter", func(e *game.Engine) error {
		return e.EnterSwapMode()
	})
}

// ToggleSwap flips the selection of a hand index
func (m *Manager) ToggleSwap(ctx context.Context, id model.SessionID, index int) (model.Snapshot, error) {
	return m.apply(ctx, id, "swap_toggle", func(e *game.Engine) error {
		return e.ToggleSwapSelection(index)
	})
}

// ConfirmSwap exchanges the selected letters
func (m *Manager) ConfirmSwap(ctx context.Context, id model.SessionID) (model.Snapshot, error) {
	return m.apply(ctx, id, "swap_confirm", func(e *game.Engine) error {
		_, err := e.ConfirmSwap()
		return err
	})
}

// CancelSwap leaves swap mode
func (m *Manager) CancelSwap(ctx context.Context, id model.SessionID) (model.Snapshot, error) {
	return m.apply(ctx, id, "swap_cancel", func(e *game.Engine) error {
		return e.CancelSwap()
	})
}

// NextRound starts the next round after a win
func (m *Manager) NextRound(ctx context.Context, id model.SessionID) (model.Snapshot, error) {
	snap, err := m.apply(ctx, id, "next_round", func(e *game.Engine) error {
		return e.StartNewRound()
	})
	if err != nil {
		return snap, err
	}

	m.logger.InfoContext(ctx, "round started",
		slog.String("session_id", string(id)),
		slog.Int("round", snap.RoundNumber),
	)
	return snap, nil
}

func (m *Manager) lookup(id model.SessionID) (*entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return e, nil
}

// apply runs one engine command under the session lock and returns the
// resulting state. Rule violations are logged at debug level.
func (m *Manager) apply(ctx context.Context, id model.SessionID, op string, fn func(*game.Engine) error) (model.Snapshot, error) {
	e, err := m.lookup(id)
	if err != nil {
		return model.Snapshot{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := fn(e.engine); err != nil {
		m.logger.DebugContext(ctx, "command rejected",
			slog.String("session_id", string(id)),
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		return snapshot(id, e), err
	}

	e.updatedAt = m.clock.Now()
	return snapshot(id, e), nil
}

func (m *Manager) recordRound(ctx context.Context, id model.SessionID, round model.Round) {
	summary := &model.RoundSummary{
		SessionID:   id,
		RoundNumber: round.Number,
		Words:       round.Words,
		CompletedAt: m.clock.Now(),
	}
	if err := m.storage.SaveRoundSummary(ctx, summary); err != nil {
		m.logger.ErrorContext(ctx, "failed to save round summary",
			slog.String("session_id", string(id)),
			slog.Int("round", round.Number),
			slog.String("error", err.Error()),
		)
		return
	}

	m.logger.InfoContext(ctx, "round won",
		slog.String("session_id", string(id)),
		slog.Int("round", round.Number),
		slog.Int("words", len(round.Words)),
	)
}

func snapshot(id model.SessionID, e *entry) model.Snapshot {
	snap := e.engine.Snapshot()
	snap.SessionID = id
	snap.UpdatedAt = e.updatedAt
	return snap
}
