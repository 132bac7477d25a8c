package model

import "fmt"

// CellKind identifies which variant a CellState holds
type CellKind uint8

const (
	CellEmpty    CellKind = iota
	CellStart             // Opening word must cover this cell
	CellTarget            // Locking a letter here wins the round
	CellObstacle          // Never accepts a letter
	CellReward            // Adds tiles to the bag once covered and locked
	CellLetter            // Uncommitted letter placed this turn
	CellLocked            // Letter of a validated word, permanent
)

// String returns the lowercase name of the kind
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellStart:
		return "start"
	case CellTarget:
		return "target"
	case CellObstacle:
		return "obstacle"
	case CellReward:
		return "reward"
	case CellLetter:
		return "letter"
	case CellLocked:
		return "locked"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// TileClass selects the alphabet reward tiles are drawn from
type TileClass uint8

const (
	TileClassAny TileClass = iota
	TileClassVowels
	TileClassConsonants
)

// String returns the lowercase name of the class
func (c TileClass) String() string {
	switch c {
	case TileClassAny:
		return "any"
	case TileClassVowels:
		return "vowels"
	case TileClassConsonants:
		return "consonants"
	default:
		return fmt.Sprintf("TileClass(%d)", uint8(c))
	}
}

// Reward is the payload of a reward cell
type Reward struct {
	Count int
	Class TileClass
}

// CellState is the content of a single board cell.
// Only the fields relevant to Kind are populated, so two states are equal
// exactly when they describe the same cell content.
type CellState struct {
	Kind   CellKind
	Letter rune   // CellLetter and CellLocked only
	Reward Reward // CellReward only
}

// EmptyCell returns an empty cell state
func EmptyCell() CellState { return CellState{Kind: CellEmpty} }

// StartCell returns the start cell state
func StartCell() CellState { return CellState{Kind: CellStart} }

// TargetCell returns the target cell state
func TargetCell() CellState { return CellState{Kind: CellTarget} }

// ObstacleCell returns an obstacle cell state
func ObstacleCell() CellState { return CellState{Kind: CellObstacle} }

// RewardCell returns a reward cell adding count tiles of the given class
func RewardCell(count int, class TileClass) CellState {
	return CellState{Kind: CellReward, Reward: Reward{Count: count, Class: class}}
}

// LetterCell returns an uncommitted letter
func LetterCell(letter rune) CellState { return CellState{Kind: CellLetter, Letter: letter} }

// LockedCell returns a locked letter
func LockedCell(letter rune) CellState { return CellState{Kind: CellLocked, Letter: letter} }

// IsLetter reports whether the cell holds a placed or locked letter
func (c CellState) IsLetter() bool {
	return c.Kind == CellLetter || c.Kind == CellLocked
}

// Char returns the letter held by the cell, if any
func (c CellState) Char() (rune, bool) {
	if c.IsLetter() {
		return c.Letter, true
	}
	return 0, false
}

// AcceptsLetter reports whether a letter may be placed on top of the cell
func (c CellState) AcceptsLetter() bool {
	switch c.Kind {
	case CellEmpty, CellStart, CellTarget, CellReward:
		return true
	case CellObstacle, CellLetter, CellLocked:
		return false
	default:
		return false
	}
}

// String renders the cell for logs and debugging
func (c CellState) String() string {
	switch c.Kind {
	case CellLetter, CellLocked:
		return fmt.Sprintf("%s(%c)", c.Kind, c.Letter)
	case CellReward:
		return fmt.Sprintf("reward(%d %s)", c.Reward.Count, c.Reward.Class)
	case CellEmpty, CellStart, CellTarget, CellObstacle:
		return c.Kind.String()
	default:
		return c.Kind.String()
	}
}
