package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// Layout controls how a round's board is generated
type Layout struct {
	Rows      int
	Cols      int
	Obstacles int
	Rewards   int
	RewardMin int // Smallest reward tile count
	RewardMax int // Largest reward tile count
}

// DefaultLayout returns the standard 24x15 layout
func DefaultLayout() Layout {
	return Layout{
		Rows:      24,
		Cols:      15,
		Obstacles: 10,
		Rewards:   4,
		RewardMin: 2,
		RewardMax: 4,
	}
}

// SpecialCells returns how many cells the layout reserves
func (l Layout) SpecialCells() int {
	return 2 + l.Obstacles + l.Rewards
}

// GameConfig holds the rules parameters for a game
type GameConfig struct {
	Layout       Layout
	HandSize     int
	Distribution Distribution
}

// DefaultGameConfig returns the default rules parameters
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Layout:       DefaultLayout(),
		HandSize:     8,
		Distribution: DefaultDistribution(),
	}
}

// SwapState is the swap-mode sub-state, independent of placement
type SwapState struct {
	Active   bool
	Selected map[int]struct{} // Hand indices chosen for exchange
}

// Game is the complete mutable state of one player's game
type Game struct {
	Board *Board
	Bag   *TileBag
	Hand  *Hand
	Round Round
	Swap  SwapState
}

// Snapshot is a read-only copy of the game state for callers to render
type Snapshot struct {
	SessionID       SessionID
	Rows            int
	Cols            int
	Cells           [][]CellState
	Start           Position
	Target          Position
	Hand            []rune
	HandCapacity    int
	BagRemaining    int
	RoundNumber     int
	FirstWordPlayed bool
	RoundWon        bool
	Words           []string
	SwapActive      bool
	SwapSelection   []int
	UpdatedAt       time.Time
}
