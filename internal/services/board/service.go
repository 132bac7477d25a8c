package board

import (
	"github.com/mcoot/wordsland/internal/dependencies/random"
	"github.com/mcoot/wordsland/internal/model"
)

// Service generates round boards
type Service struct {
	random random.Random
}

// New creates a new BoardService
func New(rnd random.Random) *Service {
	return &Service{
		random: rnd,
	}
}

// Generate creates a board for a new round.
// Start, Target, obstacles and rewards land on distinct random cells.
func (s *Service) Generate(layout model.Layout) (*model.Board, error) {
	if err := ValidateLayout(layout); err != nil {
		return nil, err
	}

	board := model.NewBoard(layout.Rows, layout.Cols)

	available := make([]model.Position, 0, layout.Rows*layout.Cols)
	for row := 0; row < layout.Rows; row++ {
		for col := 0; col < layout.Cols; col++ {
			available = append(available, model.Position{Row: row, Col: col})
		}
	}
	s.random.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	next := 0
	take := func() model.Position {
		pos := available[next]
		next++
		return pos
	}

	board.Start = take()
	board.Set(board.Start, model.StartCell())

	board.Target = take()
	board.Set(board.Target, model.TargetCell())

	for i := 0; i < layout.Obstacles; i++ {
		board.Set(take(), model.ObstacleCell())
	}

	for i := 0; i < layout.Rewards; i++ {
		count := layout.RewardMin + s.random.Intn(layout.RewardMax-layout.RewardMin+1)
		class := model.TileClass(s.random.Intn(3))
		board.Set(take(), model.RewardCell(count, class))
	}

	return board, nil
}

// ValidateLayout checks that the layout fits on its grid
func ValidateLayout(layout model.Layout) error {
	if layout.Rows <= 0 || layout.Cols <= 0 {
		return model.ErrGridTooSmall
	}
	if layout.Obstacles < 0 || layout.Rewards < 0 {
		return model.ErrInvalidLayout
	}
	if layout.Rewards > 0 && (layout.RewardMin < 1 || layout.RewardMax < layout.RewardMin) {
		return model.ErrInvalidLayout
	}
	if layout.SpecialCells() > layout.Rows*layout.Cols {
		return model.ErrGridTooSmall
	}
	return nil
}
