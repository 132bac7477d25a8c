package round

import (
	"github.com/mcoot/wordsland/internal/model"
	"github.com/mcoot/wordsland/internal/services/board"
	"github.com/mcoot/wordsland/internal/services/placement"
	"github.com/mcoot/wordsland/internal/services/tilebag"
	"github.com/mcoot/wordsland/internal/services/words"
)

// Controller runs commits and round transitions
type Controller struct {
	tiles     *tilebag.Service
	boards    *board.Service
	validator *placement.Validator
	layout    model.Layout
}

// New creates a new RoundController
func New(
	tiles *tilebag.Service,
	boards *board.Service,
	validator *placement.Validator,
	layout model.Layout,
) *Controller {
	return &Controller{
		tiles:     tiles,
		boards:    boards,
		validator: validator,
		layout:    layout,
	}
}

// Begin sets up round number on the game: a fresh board and bag, and the
// hand emptied then refilled to capacity
func (c *Controller) Begin(game *model.Game, number int) error {
	b, err := c.boards.Generate(c.layout)
	if err != nil {
		return err
	}

	bag := c.tiles.NewBag()
	game.Board = b
	game.Bag = bag
	game.Hand.Clear()
	game.Swap = model.SwapState{}
	game.Round = model.Round{
		Number:          number,
		TilesIntroduced: bag.Remaining(),
	}
	c.tiles.Fill(game.Bag, game.Hand)
	return nil
}

// Commit validates the uncommitted letters and locks them in.
// On any failure the game is left untouched.
func (c *Controller) Commit(game *model.Game) (*model.CommitResult, error) {
	if game.Round.Won {
		return nil, model.ErrRoundOver
	}

	word, err := words.Extract(game.Board)
	if err != nil {
		return nil, err
	}
	if err := c.validator.Validate(game.Board, word, game.Round); err != nil {
		return nil, err
	}

	result := &model.CommitResult{Word: *word}
	newPositions := word.NewPositions()
	for _, pos := range newPositions {
		covered, _ := game.Board.CoveredAt(pos)
		switch covered.Kind {
		case model.CellReward:
			c.tiles.AddTiles(game.Bag, covered.Reward.Count, covered.Reward.Class)
			game.Round.TilesIntroduced += covered.Reward.Count
			result.Rewards = append(result.Rewards, model.RewardApplied{Pos: pos, Reward: covered.Reward})
		case model.CellTarget:
			result.RoundWon = true
		case model.CellEmpty, model.CellStart, model.CellObstacle, model.CellLetter, model.CellLocked:
		}
	}

	game.Board.Commit(newPositions)
	game.Round.FirstWordPlayed = true
	game.Round.Words = append(game.Round.Words, word.Text)

	if result.RoundWon {
		game.Round.Won = true
		return result, nil
	}

	result.Drawn = c.tiles.Fill(game.Bag, game.Hand)
	return result, nil
}

// StartNewRound advances to the next round once the current one is won
func (c *Controller) StartNewRound(game *model.Game) error {
	if !game.Round.Won {
		return model.ErrRoundNotWon
	}
	return c.Begin(game, game.Round.Number+1)
}
