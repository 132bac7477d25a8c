package round

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordsland/internal/dependencies/mocks"
	"github.com/mcoot/wordsland/internal/model"
	"github.com/mcoot/wordsland/internal/services/board"
	"github.com/mcoot/wordsland/internal/services/dictionary"
	"github.com/mcoot/wordsland/internal/services/placement"
	"github.com/mcoot/wordsland/internal/services/tilebag"
	"github.com/mcoot/wordsland/internal/storage/memory"
	"github.com/mcoot/wordsland/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	random     *mocks.MockRandom
	controller *Controller
	game       *model.Game
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.random = mocks.NewMockRandom()

	dict := dictionary.New(memory.New(), testutil.NopLogger())
	s.Require().NoError(dict.LoadWords([]string{"CAT", "CATS", "AT", "TO"}))

	layout := model.Layout{Rows: 10, Cols: 10}
	s.controller = New(
		tilebag.New(s.random, nil),
		board.New(s.random),
		placement.New(dict),
		layout,
	)

	s.game = &model.Game{Hand: model.NewHand(8)}
	s.Require().NoError(s.controller.Begin(s.game, 1))

	// Replace the generated board with a known one
	b := model.NewBoard(10, 10)
	b.Start = model.Position{Row: 5, Col: 5}
	b.Set(b.Start, model.StartCell())
	b.Target = model.Position{Row: 1, Col: 8}
	b.Set(b.Target, model.TargetCell())
	s.game.Board = b
}

// place writes text horizontally from (row, col), taking letters out of the hand
func (s *ControllerSuite) place(row, col int, text string) {
	for i, letter := range text {
		s.Require().NoError(s.game.Board.Place(model.Position{Row: row, Col: col + i}, letter))
		s.game.Hand.Letters = s.game.Hand.Letters[1:]
	}
}

func (s *ControllerSuite) TestBegin() {
	game := &model.Game{Hand: model.NewHand(8)}
	err := s.controller.Begin(game, 1)
	s.Require().NoError(err)

	s.Equal(1, game.Round.Number)
	s.False(game.Round.FirstWordPlayed)
	s.Equal(196, game.Round.TilesIntroduced)
	s.Equal(8, game.Hand.Len())
	s.Equal(188, game.Bag.Remaining())
	s.Equal(0, game.Board.CountLetters())
}

func (s *ControllerSuite) TestCommitLocksWordAndRefills() {
	s.place(5, 5, "CAT")

	result, err := s.controller.Commit(s.game)
	s.Require().NoError(err)

	s.Equal("CAT", result.Word.Text)
	s.False(result.RoundWon)
	s.Equal(3, result.Drawn)
	s.Equal(8, s.game.Hand.Len())
	s.Equal(185, s.game.Bag.Remaining())
	s.True(s.game.Round.FirstWordPlayed)
	s.Equal([]string{"CAT"}, s.game.Round.Words)

	s.Equal(model.LockedCell('C'), s.game.Board.Get(model.Position{Row: 5, Col: 5}))
	s.Equal(model.LockedCell('T'), s.game.Board.Get(model.Position{Row: 5, Col: 7}))
	s.Empty(s.game.Board.Covered)
}

func (s *ControllerSuite) TestCommitFailureLeavesStateUntouched() {
	s.place(5, 5, "TAC")
	bagBefore := s.game.Bag.Remaining()
	roundBefore := s.game.Round

	_, err := s.controller.Commit(s.game)
	s.ErrorIs(err, model.ErrWordNotInDictionary)

	s.Equal(bagBefore, s.game.Bag.Remaining())
	s.Equal(roundBefore, s.game.Round)
	s.Equal(model.LetterCell('T'), s.game.Board.Get(model.Position{Row: 5, Col: 5}))
	s.Len(s.game.Board.Covered, 3)
}

func (s *ControllerSuite) TestCommitWithoutLetters() {
	_, err := s.controller.Commit(s.game)
	s.ErrorIs(err, model.ErrNoLettersPlaced)
}

func (s *ControllerSuite) TestRewardAddsTilesToBag() {
	reward := model.RewardCell(3, model.TileClassVowels)
	s.game.Board.Set(model.Position{Row: 5, Col: 6}, reward)
	s.place(5, 5, "CAT")
	bagBefore := s.game.Bag.Remaining()

	result, err := s.controller.Commit(s.game)
	s.Require().NoError(err)

	s.Require().Len(result.Rewards, 1)
	s.Equal(model.Position{Row: 5, Col: 6}, result.Rewards[0].Pos)
	s.Equal(reward.Reward, result.Rewards[0].Reward)
	s.Equal(196+3, s.game.Round.TilesIntroduced)
	s.Equal(bagBefore+3-result.Drawn, s.game.Bag.Remaining())
	s.Equal(model.LockedCell('A'), s.game.Board.Get(model.Position{Row: 5, Col: 6}))
}

func (s *ControllerSuite) TestRewardClaimedOnlyOnce() {
	s.game.Board.Set(model.Position{Row: 5, Col: 7}, model.RewardCell(2, model.TileClassAny))
	s.place(5, 5, "CAT")
	_, err := s.controller.Commit(s.game)
	s.Require().NoError(err)

	s.place(5, 8, "S")
	result, err := s.controller.Commit(s.game)
	s.Require().NoError(err)

	s.Equal("CATS", result.Word.Text)
	s.Empty(result.Rewards)
	s.Equal(196+2, s.game.Round.TilesIntroduced)
}

func (s *ControllerSuite) TestReachingTargetWinsRound() {
	s.game.Board.Set(s.game.Board.Target, model.EmptyCell())
	s.game.Board.Target = model.Position{Row: 5, Col: 7}
	s.game.Board.Set(s.game.Board.Target, model.TargetCell())
	s.place(5, 5, "CAT")
	handBefore := s.game.Hand.Len()

	result, err := s.controller.Commit(s.game)
	s.Require().NoError(err)

	s.True(result.RoundWon)
	s.True(s.game.Round.Won)
	s.Equal(0, result.Drawn)
	s.Equal(handBefore, s.game.Hand.Len())
	s.Equal(1, s.game.Round.Number)
}

func (s *ControllerSuite) TestCommitAfterWinFails() {
	s.game.Round.Won = true
	s.place(5, 5, "CAT")

	_, err := s.controller.Commit(s.game)
	s.ErrorIs(err, model.ErrRoundOver)
}

func (s *ControllerSuite) TestStartNewRoundRequiresWin() {
	err := s.controller.StartNewRound(s.game)
	s.ErrorIs(err, model.ErrRoundNotWon)
	s.Equal(1, s.game.Round.Number)
}

func (s *ControllerSuite) TestStartNewRound() {
	s.place(5, 5, "CAT")
	_, err := s.controller.Commit(s.game)
	s.Require().NoError(err)
	s.game.Round.Won = true
	s.game.Swap = model.SwapState{Active: true, Selected: map[int]struct{}{0: {}}}

	err = s.controller.StartNewRound(s.game)
	s.Require().NoError(err)

	s.Equal(2, s.game.Round.Number)
	s.False(s.game.Round.FirstWordPlayed)
	s.False(s.game.Round.Won)
	s.Empty(s.game.Round.Words)
	s.Equal(196, s.game.Round.TilesIntroduced)
	s.Equal(8, s.game.Hand.Len())
	s.Equal(188, s.game.Bag.Remaining())
	s.Equal(0, s.game.Board.CountLetters())
	s.False(s.game.Swap.Active)

	// Only one advance per win
	s.ErrorIs(s.controller.StartNewRound(s.game), model.ErrRoundNotWon)
}
