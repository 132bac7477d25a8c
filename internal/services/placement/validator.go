package placement

import (
	"fmt"
	"strings"

	"github.com/mcoot/wordsland/internal/model"
)

// MinWordLength is the shortest word that can be committed
const MinWordLength = 2

// Dictionary is the read-only word set the validator checks against.
// An unloaded dictionary contains nothing.
type Dictionary interface {
	Contains(word string) bool
}

// Validator applies the placement rules to an extracted word.
// Rules run in a fixed order and the first failure is returned:
// length, start coverage or connectivity, then dictionary membership.
type Validator struct {
	dictionary Dictionary
}

// New creates a Validator backed by the given dictionary
func New(dictionary Dictionary) *Validator {
	return &Validator{
		dictionary: dictionary,
	}
}

// Validate checks word against the board and round state
func (v *Validator) Validate(board *model.Board, word *model.Word, round model.Round) error {
	if word.Len() < MinWordLength {
		return model.ErrWordTooShort
	}

	if !round.FirstWordPlayed {
		if !word.Contains(board.Start) {
			return model.ErrMustCoverStart
		}
	} else if !IsConnected(board, word) {
		return model.ErrDisconnectedPlacement
	}

	if v.dictionary == nil || !v.dictionary.Contains(strings.ToUpper(word.Text)) {
		return fmt.Errorf("%w: %s", model.ErrWordNotInDictionary, word.Text)
	}
	return nil
}

// IsConnected reports whether the word runs through a locked letter or
// one of its new letters touches a locked letter orthogonally
func IsConnected(board *model.Board, word *model.Word) bool {
	if word.LockedCount() > 0 {
		return true
	}
	for _, pos := range word.NewPositions() {
		for _, n := range board.Neighbors(pos) {
			if board.Get(n).Kind == model.CellLocked {
				return true
			}
		}
	}
	return false
}
