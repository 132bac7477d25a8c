package model

import "time"

// Round tracks progression within one play-through of a board
type Round struct {
	Number          int  // Starts at 1, increments when the target is reached
	FirstWordPlayed bool // Gate for the opening-move rule
	Won             bool // Target covered by a committed word

	// TilesIntroduced is the fresh bag size plus every reward addition
	TilesIntroduced int
	Words           []string // Words committed this round, in order
}

// WordCell is one letter of an extracted word
type WordCell struct {
	Pos    Position
	Letter rune
	Locked bool // Pre-existing locked letter rather than newly placed
}

// Word is a contiguous run of letters found by the extractor
type Word struct {
	Text       string
	Cells      []WordCell
	Horizontal bool
}

// Len returns the number of letters in the word
func (w *Word) Len() int {
	return len(w.Cells)
}

// LockedCount returns how many cells were already locked
func (w *Word) LockedCount() int {
	count := 0
	for _, c := range w.Cells {
		if c.Locked {
			count++
		}
	}
	return count
}

// NewPositions returns the positions of the newly placed letters
func (w *Word) NewPositions() []Position {
	var positions []Position
	for _, c := range w.Cells {
		if !c.Locked {
			positions = append(positions, c.Pos)
		}
	}
	return positions
}

// Contains reports whether the word covers the given position
func (w *Word) Contains(pos Position) bool {
	for _, c := range w.Cells {
		if c.Pos == pos {
			return true
		}
	}
	return false
}

// RewardApplied records a reward cell that was claimed by a commit
type RewardApplied struct {
	Pos    Position
	Reward Reward
}

// CommitResult is returned by a successful commit
type CommitResult struct {
	Word     Word
	Rewards  []RewardApplied
	RoundWon bool
	Drawn    int // Letters drawn into the hand afterwards
}

// RoundSummary is a record of a completed round
type RoundSummary struct {
	SessionID   SessionID
	RoundNumber int
	Words       []string
	CompletedAt time.Time
}
