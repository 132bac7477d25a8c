package response

import (
	"time"

	"github.com/mcoot/wordsland/internal/model"
)

// Position is a board coordinate
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PositionFromModel converts a model.Position
func PositionFromModel(p model.Position) Position {
	return Position{Row: p.Row, Col: p.Col}
}

// Cell is one board cell
type Cell struct {
	Kind        string `json:"kind"`
	Letter      string `json:"letter,omitempty"`
	RewardCount int    `json:"reward_count,omitempty"`
	RewardClass string `json:"reward_class,omitempty"`
}

// CellFromModel converts a model.CellState
func CellFromModel(c model.CellState) Cell {
	cell := Cell{Kind: c.Kind.String()}
	if letter, ok := c.Char(); ok {
		cell.Letter = string(letter)
	}
	if c.Kind == model.CellReward {
		cell.RewardCount = c.Reward.Count
		cell.RewardClass = c.Reward.Class.String()
	}
	return cell
}

// Swap is the swap-mode state
type Swap struct {
	Active    bool  `json:"active"`
	Selection []int `json:"selection"`
}

// Session is the full state of a game session
type Session struct {
	ID              string    `json:"id"`
	Rows            int       `json:"rows"`
	Cols            int       `json:"cols"`
	Cells           [][]Cell  `json:"cells"`
	Start           Position  `json:"start"`
	Target          Position  `json:"target"`
	Hand            []string  `json:"hand"`
	HandCapacity    int       `json:"hand_capacity"`
	BagRemaining    int       `json:"bag_remaining"`
	RoundNumber     int       `json:"round_number"`
	FirstWordPlayed bool      `json:"first_word_played"`
	RoundWon        bool      `json:"round_won"`
	Words           []string  `json:"words"`
	Swap            Swap      `json:"swap"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SessionFromSnapshot converts a model.Snapshot
func SessionFromSnapshot(s model.Snapshot) Session {
	cells := make([][]Cell, len(s.Cells))
	for row, cols := range s.Cells {
		cells[row] = make([]Cell, len(cols))
		for col, c := range cols {
			cells[row][col] = CellFromModel(c)
		}
	}

	hand := make([]string, len(s.Hand))
	for i, letter := range s.Hand {
		hand[i] = string(letter)
	}

	words := s.Words
	if words == nil {
		words = []string{}
	}
	selection := s.SwapSelection
	if selection == nil {
		selection = []int{}
	}

	return Session{
		ID:              string(s.SessionID),
		Rows:            s.Rows,
		Cols:            s.Cols,
		Cells:           cells,
		Start:           PositionFromModel(s.Start),
		Target:          PositionFromModel(s.Target),
		Hand:            hand,
		HandCapacity:    s.HandCapacity,
		BagRemaining:    s.BagRemaining,
		RoundNumber:     s.RoundNumber,
		FirstWordPlayed: s.FirstWordPlayed,
		RoundWon:        s.RoundWon,
		Words:           words,
		Swap:            Swap{Active: s.SwapActive, Selection: selection},
		UpdatedAt:       s.UpdatedAt,
	}
}

// Reward is a reward claimed by a commit
type Reward struct {
	Position Position `json:"position"`
	Count    int      `json:"count"`
	Class    string   `json:"class"`
}

// CommitResponse is the response for a successful commit
type CommitResponse struct {
	Word     string   `json:"word"`
	Rewards  []Reward `json:"rewards"`
	RoundWon bool     `json:"round_won"`
	Drawn    int      `json:"drawn"`
	Session  Session  `json:"session"`
}

// CommitResponseFromModel builds a CommitResponse
func CommitResponseFromModel(result *model.CommitResult, snap model.Snapshot) CommitResponse {
	rewards := make([]Reward, 0, len(result.Rewards))
	for _, r := range result.Rewards {
		rewards = append(rewards, Reward{
			Position: PositionFromModel(r.Pos),
			Count:    r.Reward.Count,
			Class:    r.Reward.Class.String(),
		})
	}
	return CommitResponse{
		Word:     result.Word.Text,
		Rewards:  rewards,
		RoundWon: result.RoundWon,
		Drawn:    result.Drawn,
		Session:  SessionFromSnapshot(snap),
	}
}

// RoundSummary is one completed round
type RoundSummary struct {
	Round       int       `json:"round"`
	Words       []string  `json:"words"`
	CompletedAt time.Time `json:"completed_at"`
}

// HistoryResponse lists the completed rounds of a session
type HistoryResponse struct {
	SessionID string         `json:"session_id"`
	Rounds    []RoundSummary `json:"rounds"`
}

// HistoryFromModel builds a HistoryResponse
func HistoryFromModel(id model.SessionID, summaries []*model.RoundSummary) HistoryResponse {
	rounds := make([]RoundSummary, 0, len(summaries))
	for _, s := range summaries {
		rounds = append(rounds, RoundSummary{
			Round:       s.RoundNumber,
			Words:       s.Words,
			CompletedAt: s.CompletedAt,
		})
	}
	return HistoryResponse{SessionID: string(id), Rounds: rounds}
}

// HealthResponse reports server readiness
type HealthResponse struct {
	Status           string `json:"status"`
	DictionaryLoaded bool   `json:"dictionary_loaded"`
	DictionaryWords  int    `json:"dictionary_words"`
	Sessions         int    `json:"sessions"`
}
