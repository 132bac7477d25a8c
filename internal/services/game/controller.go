package game

import (
	"github.com/mcoot/wordsland/internal/dependencies/random"
	"github.com/mcoot/wordsland/internal/model"
	"github.com/mcoot/wordsland/internal/services/board"
	"github.com/mcoot/wordsland/internal/services/placement"
	"github.com/mcoot/wordsland/internal/services/round"
	"github.com/mcoot/wordsland/internal/services/swap"
	"github.com/mcoot/wordsland/internal/services/tilebag"
)

// Engine is the rules engine for one player's game.
// It is not safe for concurrent use; callers serialise commands.
type Engine struct {
	game   *model.Game
	rounds *round.Controller
	swaps  *swap.Controller
}

// New creates an engine and starts round 1
func New(cfg model.GameConfig, dictionary placement.Dictionary, rnd random.Random) (*Engine, error) {
	if cfg.HandSize <= 0 {
		return nil, model.ErrInvalidHandSize
	}

	tiles := tilebag.New(rnd, cfg.Distribution)
	e := &Engine{
		game: &model.Game{Hand: model.NewHand(cfg.HandSize)},
		rounds: round.New(
			tiles,
			board.New(rnd),
			placement.New(dictionary),
			cfg.Layout,
		),
		swaps: swap.New(tiles),
	}
	if err := e.rounds.Begin(e.game, 1); err != nil {
		return nil, err
	}
	return e, nil
}

// Commands

// PlaceLetter moves the hand letter at handIndex onto the board
func (e *Engine) PlaceLetter(handIndex int, pos model.Position) error {
	if e.game.Round.Won {
		return model.ErrRoundOver
	}
	letter, err := e.game.Hand.At(handIndex)
	if err != nil {
		return err
	}
	if err := e.game.Board.Place(pos, letter); err != nil {
		return err
	}
	_, _ = e.game.Hand.RemoveAt(handIndex)
	swap.RemapAfterRemove(e.game, handIndex)
	return nil
}

// MoveLetter moves an uncommitted letter to another cell
func (e *Engine) MoveLetter(from, to model.Position) error {
	if e.game.Round.Won {
		return model.ErrRoundOver
	}
	b := e.game.Board
	if !b.IsValidPosition(from) || !b.IsValidPosition(to) {
		return model.ErrInvalidPosition
	}
	if b.Get(from).Kind != model.CellLetter {
		return model.ErrNoLetterAtPosition
	}
	if from == to {
		return nil
	}
	if !b.Get(to).AcceptsLetter() {
		return model.ErrCellOccupiedIllegally
	}

	letter, err := b.Uncover(from)
	if err != nil {
		return err
	}
	return b.Place(to, letter)
}

// RecallLetter returns one uncommitted letter to the end of the hand
func (e *Engine) RecallLetter(pos model.Position) error {
	letter, err := e.game.Board.Uncover(pos)
	if err != nil {
		return err
	}
	e.game.Hand.Add(letter)
	return nil
}

// RecallAll returns every uncommitted letter to the hand in row-major order.
// It returns the number of letters recalled.
func (e *Engine) RecallAll() int {
	placed := e.game.Board.PlacedLetters()
	for _, cell := range placed {
		letter, err := e.game.Board.Uncover(cell.Pos)
		if err != nil {
			continue
		}
		e.game.Hand.Add(letter)
	}
	return len(placed)
}

// CommitWord validates and locks the uncommitted letters
func (e *Engine) CommitWord() (*model.CommitResult, error) {
	return e.rounds.Commit(e.game)
}

// StartNewRound begins the next round after a win
func (e *Engine) StartNewRound() error {
	return e.rounds.StartNewRound(e.game)
}

// EnterSwapMode activates swap mode with an empty selection
func (e *Engine) EnterSwapMode() error {
	return e.swaps.Enter(e.game)
}

// ToggleSwapSelection flips the selection of a hand index
func (e *Engine) ToggleSwapSelection(index int) error {
	return e.swaps.Toggle(e.game, index)
}

// ConfirmSwap exchanges the selected letters and returns how many were drawn
func (e *Engine) ConfirmSwap() (int, error) {
	return e.swaps.Confirm(e.game)
}

// CancelSwap leaves swap mode without exchanging
func (e *Engine) CancelSwap() error {
	return e.swaps.Cancel(e.game)
}

// Queries

// Snapshot returns a copy of the full game state
func (e *Engine) Snapshot() model.Snapshot {
	b := e.game.Board
	cells := make([][]model.CellState, b.Rows)
	for row := range b.Cells {
		cells[row] = make([]model.CellState, b.Cols)
		copy(cells[row], b.Cells[row])
	}
	return model.Snapshot{
		Rows:            b.Rows,
		Cols:            b.Cols,
		Cells:           cells,
		Start:           b.Start,
		Target:          b.Target,
		Hand:            e.game.Hand.Snapshot(),
		HandCapacity:    e.game.Hand.Capacity,
		BagRemaining:    e.game.Bag.Remaining(),
		RoundNumber:     e.game.Round.Number,
		FirstWordPlayed: e.game.Round.FirstWordPlayed,
		RoundWon:        e.game.Round.Won,
		Words:           append([]string(nil), e.game.Round.Words...),
		SwapActive:      e.game.Swap.Active,
		SwapSelection:   swap.Selection(e.game),
	}
}

// Board returns a copy of the current board
func (e *Engine) Board() *model.Board {
	return e.game.Board.Clone()
}

// Round returns a copy of the round state
func (e *Engine) Round() model.Round {
	r := e.game.Round
	r.Words = append([]string(nil), r.Words...)
	return r
}

// Hand returns the current hand letters
func (e *Engine) Hand() []rune {
	return e.game.Hand.Snapshot()
}

// TileBagRemaining returns the number of letters left in the bag
func (e *Engine) TileBagRemaining() int {
	return e.game.Bag.Remaining()
}

// RoundNumber returns the current round number
func (e *Engine) RoundNumber() int {
	return e.game.Round.Number
}

// IsSwapModeActive reports whether swap mode is on
func (e *Engine) IsSwapModeActive() bool {
	return e.game.Swap.Active
}

// SwapSelection returns the selected hand indices in ascending order
func (e *Engine) SwapSelection() []int {
	return swap.Selection(e.game)
}

// TilesOnBoard returns the number of placed and locked letters
func (e *Engine) TilesOnBoard() int {
	return e.game.Board.CountLetters()
}
