package game

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordsland/internal/dependencies/mocks"
	"github.com/mcoot/wordsland/internal/model"
	"github.com/mcoot/wordsland/internal/services/dictionary"
	"github.com/mcoot/wordsland/internal/services/words"
	"github.com/mcoot/wordsland/internal/storage/memory"
	"github.com/mcoot/wordsland/internal/testutil"
)

type EngineSuite struct {
	suite.Suite
	random *mocks.MockRandom
	dict   *dictionary.Service
	engine *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

var (
	start  = model.Position{Row: 5, Col: 5}
	target = model.Position{Row: 5, Col: 10}
)

func at(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}

func (s *EngineSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.dict = dictionary.New(memory.New(), testutil.NopLogger())
	s.Require().NoError(s.dict.LoadWords([]string{"CAT", "CATS", "AT", "TO", "DOG", "GO", "SO", "OX"}))

	engine, err := New(model.DefaultGameConfig(), s.dict, s.random)
	s.Require().NoError(err)
	s.engine = engine

	// Known 12x12 board with the start at (5,5)
	b := model.NewBoard(12, 12)
	b.Start = start
	b.Set(start, model.StartCell())
	b.Target = target
	b.Set(target, model.TargetCell())
	b.Set(at(3, 3), model.ObstacleCell())
	s.engine.game.Board = b
}

// deal swaps the hand for the given letters, taking them from the bag
func (s *EngineSuite) deal(letters string) {
	bag := s.engine.game.Bag
	hand := s.engine.game.Hand
	bag.Letters = append(bag.Letters, hand.Letters...)
	hand.Clear()
	for _, letter := range letters {
		for i, l := range bag.Letters {
			if l == letter {
				bag.Letters = append(bag.Letters[:i], bag.Letters[i+1:]...)
				break
			}
		}
		hand.Add(letter)
	}
}

// placeLetter places the first hand copy of letter at pos
func (s *EngineSuite) placeLetter(letter rune, pos model.Position) {
	for i, l := range s.engine.Hand() {
		if l == letter {
			s.Require().NoError(s.engine.PlaceLetter(i, pos))
			return
		}
	}
	s.Failf("letter not in hand", "%c", letter)
}

func (s *EngineSuite) placeWord(text string, from model.Position, horizontal bool) {
	for i, letter := range text {
		pos := from
		if horizontal {
			pos.Col += i
		} else {
			pos.Row += i
		}
		s.placeLetter(letter, pos)
	}
}

func (s *EngineSuite) assertConserved() {
	total := s.engine.TileBagRemaining() + len(s.engine.Hand()) + s.engine.TilesOnBoard()
	s.Equal(s.engine.Round().TilesIntroduced, total)
}

// Construction

func (s *EngineSuite) TestNew() {
	s.Equal(1, s.engine.RoundNumber())
	s.Len(s.engine.Hand(), 8)
	s.Equal(188, s.engine.TileBagRemaining())
	s.Equal(0, s.engine.TilesOnBoard())
	s.False(s.engine.IsSwapModeActive())
	s.assertConserved()
}

func (s *EngineSuite) TestNewRejectsBadConfig() {
	cfg := model.DefaultGameConfig()
	cfg.HandSize = 0
	_, err := New(cfg, s.dict, s.random)
	s.ErrorIs(err, model.ErrInvalidHandSize)

	cfg = model.DefaultGameConfig()
	cfg.Layout.Rows = 2
	cfg.Layout.Cols = 2
	_, err = New(cfg, s.dict, s.random)
	s.ErrorIs(err, model.ErrGridTooSmall)
}

func (s *EngineSuite) TestFreshBagDistribution() {
	counts := make(map[rune]int)
	for _, l := range s.engine.game.Bag.Letters {
		counts[l]++
	}
	for _, l := range s.engine.Hand() {
		counts[l]++
	}

	s.Equal(18, counts['A'])
	s.Equal(24, counts['E'])
	s.Equal(2, counts['Q'])
	s.Equal(2, counts['Z'])
	total := 0
	for _, c := range counts {
		total += c
	}
	s.Equal(196, total)
}

// Example scenarios

func (s *EngineSuite) TestFirstWordCoveringStart() {
	s.deal("CATSDOGE")
	s.placeWord("CAT", start, true)

	result, err := s.engine.CommitWord()
	s.Require().NoError(err)

	s.Equal("CAT", result.Word.Text)
	b := s.engine.Board()
	s.Equal(model.LockedCell('C'), b.Get(at(5, 5)))
	s.Equal(model.LockedCell('A'), b.Get(at(5, 6)))
	s.Equal(model.LockedCell('T'), b.Get(at(5, 7)))
	s.True(s.engine.Round().FirstWordPlayed)
	s.Len(s.engine.Hand(), 8)
	s.assertConserved()
}

func (s *EngineSuite) TestSecondWordExtendsLockedWord() {
	s.deal("CATSDOGE")
	s.placeWord("CAT", start, true)
	_, err := s.engine.CommitWord()
	s.Require().NoError(err)

	s.placeLetter('S', at(5, 8))
	result, err := s.engine.CommitWord()
	s.Require().NoError(err)

	s.Equal("CATS", result.Word.Text)
	s.Equal(3, result.Word.LockedCount())
	s.Equal([]string{"CAT", "CATS"}, s.engine.Round().Words)
	s.Equal(model.LockedCell('S'), s.engine.Board().Get(at(5, 8)))
	s.assertConserved()
}

func (s *EngineSuite) TestNonCollinearPlacementRejected() {
	s.deal("CATSDOGE")
	s.placeLetter('C', at(5, 5))
	s.placeLetter('A', at(6, 6))
	before := s.engine.Snapshot()

	_, err := s.engine.CommitWord()
	s.ErrorIs(err, model.ErrInvalidPlacementGeometry)

	s.Equal(before, s.engine.Snapshot())
	s.Equal(model.LetterCell('C'), s.engine.Board().Get(at(5, 5)))
}

func (s *EngineSuite) TestFirstWordMustCoverStart() {
	s.deal("CATSDOGE")
	s.placeWord("AT", at(1, 1), true)

	_, err := s.engine.CommitWord()
	s.ErrorIs(err, model.ErrMustCoverStart)

	b := s.engine.Board()
	s.Equal(model.LetterCell('A'), b.Get(at(1, 1)))
	s.Equal(model.LetterCell('T'), b.Get(at(1, 2)))
	s.False(s.engine.Round().FirstWordPlayed)
}

func (s *EngineSuite) TestFirstMoveGateIgnoresWordValidity() {
	s.deal("QXZZCATS")
	s.placeWord("QX", at(1, 1), true)

	_, err := s.engine.CommitWord()
	s.ErrorIs(err, model.ErrMustCoverStart)
}

func (s *EngineSuite) TestSwapKeepsHandFull() {
	s.deal("CATSDOGE")
	bagBefore := s.engine.TileBagRemaining()
	cBefore := s.engine.game.Bag.Count('C')
	tBefore := s.engine.game.Bag.Count('T')

	s.Require().NoError(s.engine.EnterSwapMode())
	s.Require().NoError(s.engine.ToggleSwapSelection(0))
	s.Require().NoError(s.engine.ToggleSwapSelection(1))
	s.Require().NoError(s.engine.ToggleSwapSelection(2))
	s.Equal([]int{0, 1, 2}, s.engine.SwapSelection())

	drawn, err := s.engine.ConfirmSwap()
	s.Require().NoError(err)

	s.Equal(3, drawn)
	s.Len(s.engine.Hand(), 8)
	s.Equal(bagBefore, s.engine.TileBagRemaining())
	s.Equal(cBefore+1, s.engine.game.Bag.Count('C'))
	s.Equal(tBefore+1, s.engine.game.Bag.Count('T'))
	s.False(s.engine.IsSwapModeActive())
	s.assertConserved()
}

// Placement

func (s *EngineSuite) TestPlaceLetterTakesFromHand() {
	s.deal("CATSDOGE")

	s.Require().NoError(s.engine.PlaceLetter(1, start))

	s.Equal([]rune("CTSDOGE"), s.engine.Hand())
	s.Equal(model.LetterCell('A'), s.engine.Board().Get(start))
	s.Equal(1, s.engine.TilesOnBoard())
	s.assertConserved()
}

func (s *EngineSuite) TestPlaceLetterErrorsLeaveHandUnchanged() {
	s.deal("CATSDOGE")
	hand := s.engine.Hand()

	s.ErrorIs(s.engine.PlaceLetter(0, at(3, 3)), model.ErrCellOccupiedIllegally)
	s.ErrorIs(s.engine.PlaceLetter(0, at(-1, 0)), model.ErrInvalidPosition)
	s.ErrorIs(s.engine.PlaceLetter(8, start), model.ErrIndexOutOfRange)

	s.Require().NoError(s.engine.PlaceLetter(0, start))
	s.ErrorIs(s.engine.PlaceLetter(0, start), model.ErrCellOccupiedIllegally)

	s.Equal(hand[1:], s.engine.Hand())
}

func (s *EngineSuite) TestPlaceLetterDuringSwapRemapsSelection() {
	s.deal("CATSDOGE")
	s.Require().NoError(s.engine.EnterSwapMode())
	s.Require().NoError(s.engine.ToggleSwapSelection(0))
	s.Require().NoError(s.engine.ToggleSwapSelection(2))
	s.Require().NoError(s.engine.ToggleSwapSelection(5))

	// Remove 'T' at index 2
	s.Require().NoError(s.engine.PlaceLetter(2, start))

	s.Equal([]int{0, 4}, s.engine.SwapSelection())
	hand := s.engine.Hand()
	s.Equal('C', hand[0])
	s.Equal('O', hand[4])
}

func (s *EngineSuite) TestMoveLetter() {
	reward := model.RewardCell(3, model.TileClassConsonants)
	s.engine.game.Board.Set(at(6, 5), reward)
	s.deal("CATSDOGE")
	s.placeLetter('C', at(6, 5))

	s.Require().NoError(s.engine.MoveLetter(at(6, 5), start))

	b := s.engine.Board()
	s.Equal(reward, b.Get(at(6, 5)))
	s.Equal(model.LetterCell('C'), b.Get(start))
	covered, ok := b.CoveredAt(start)
	s.True(ok)
	s.Equal(model.StartCell(), covered)
	s.assertConserved()
}

func (s *EngineSuite) TestMoveLetterErrors() {
	s.deal("CATSDOGE")
	s.placeLetter('C', start)
	s.placeLetter('A', at(5, 6))

	s.ErrorIs(s.engine.MoveLetter(at(0, 0), at(0, 1)), model.ErrNoLetterAtPosition)
	s.ErrorIs(s.engine.MoveLetter(start, at(3, 3)), model.ErrCellOccupiedIllegally)
	s.ErrorIs(s.engine.MoveLetter(start, at(5, 6)), model.ErrCellOccupiedIllegally)
	s.ErrorIs(s.engine.MoveLetter(start, at(20, 0)), model.ErrInvalidPosition)
	s.NoError(s.engine.MoveLetter(start, start))

	s.Equal(model.LetterCell('C'), s.engine.Board().Get(start))
}

// Recall

func (s *EngineSuite) TestRecallLetterRestoresCoveredState() {
	reward := model.RewardCell(4, model.TileClassVowels)
	s.engine.game.Board.Set(at(5, 6), reward)
	s.deal("CATSDOGE")
	s.placeWord("CAT", start, true)

	s.Require().NoError(s.engine.RecallLetter(at(5, 6)))

	b := s.engine.Board()
	s.Equal(reward, b.Get(at(5, 6)))
	s.Equal('A', s.engine.Hand()[len(s.engine.Hand())-1])
	s.ErrorIs(s.engine.RecallLetter(at(5, 6)), model.ErrNoLetterAtPosition)
	s.assertConserved()
}

func (s *EngineSuite) TestRecallAllRestoresEveryCell() {
	s.engine.game.Board.Set(at(5, 7), model.RewardCell(2, model.TileClassAny))
	before := s.engine.Board()
	s.deal("CATSDOGE")

	// Place, move and re-place to exercise repeated covering
	s.placeWord("CAT", start, true)
	s.Require().NoError(s.engine.MoveLetter(at(5, 7), at(6, 7)))
	s.Require().NoError(s.engine.MoveLetter(at(6, 7), at(5, 7)))
	s.placeLetter('S', target)

	recalled := s.engine.RecallAll()

	s.Equal(4, recalled)
	after := s.engine.Board()
	s.Equal(before.Cells, after.Cells)
	s.Empty(after.Covered)
	s.ElementsMatch([]rune("CATSDOGE"), s.engine.Hand())
	s.assertConserved()
}

func (s *EngineSuite) TestLockedLettersAreNeverReverted() {
	s.deal("CATSDOGE")
	s.placeWord("CAT", start, true)
	_, err := s.engine.CommitWord()
	s.Require().NoError(err)

	s.ErrorIs(s.engine.RecallLetter(start), model.ErrNoLetterAtPosition)
	s.ErrorIs(s.engine.MoveLetter(start, at(0, 0)), model.ErrNoLetterAtPosition)
	s.ErrorIs(s.engine.PlaceLetter(0, start), model.ErrCellOccupiedIllegally)
	s.Equal(0, s.engine.RecallAll())

	s.Equal(model.LockedCell('C'), s.engine.Board().Get(start))
}

// Extraction

func (s *EngineSuite) TestExtractionIgnoresPlacementOrder() {
	s.deal("CATSDOGE")
	s.placeLetter('T', at(5, 7))
	s.placeLetter('C', at(5, 5))
	s.placeLetter('A', at(5, 6))
	first, err := words.Extract(s.engine.Board())
	s.Require().NoError(err)

	s.engine.RecallAll()
	s.placeLetter('A', at(5, 6))
	s.placeLetter('T', at(5, 7))
	s.placeLetter('C', at(5, 5))
	second, err := words.Extract(s.engine.Board())
	s.Require().NoError(err)

	s.Equal(first, second)
}

// Rounds

func (s *EngineSuite) TestRewardAddsToConservedTotal() {
	s.engine.game.Board.Set(at(5, 6), model.RewardCell(3, model.TileClassVowels))
	s.deal("CATSDOGE")
	s.placeWord("CAT", start, true)

	result, err := s.engine.CommitWord()
	s.Require().NoError(err)

	s.Len(result.Rewards, 1)
	s.Equal(199, s.engine.Round().TilesIntroduced)
	s.assertConserved()
}

func (s *EngineSuite) TestRoundWinAdvancesExactlyOnce() {
	s.engine.game.Board.Set(target, model.EmptyCell())
	s.engine.game.Board.Target = at(6, 5)
	s.engine.game.Board.Set(at(6, 5), model.TargetCell())
	s.deal("CATSDOGE")
	s.placeWord("TO", start, false)

	result, err := s.engine.CommitWord()
	s.Require().NoError(err)
	s.True(result.RoundWon)
	s.Equal(1, s.engine.RoundNumber())
	s.assertConserved()

	s.ErrorIs(s.engine.PlaceLetter(0, at(0, 0)), model.ErrRoundOver)
	_, err = s.engine.CommitWord()
	s.ErrorIs(err, model.ErrRoundOver)

	s.Require().NoError(s.engine.StartNewRound())
	s.Equal(2, s.engine.RoundNumber())
	s.ErrorIs(s.engine.StartNewRound(), model.ErrRoundNotWon)
	s.Equal(2, s.engine.RoundNumber())

	s.False(s.engine.Round().FirstWordPlayed)
	s.Len(s.engine.Hand(), 8)
	s.Equal(0, s.engine.TilesOnBoard())
	s.Equal(196, s.engine.Round().TilesIntroduced)
	s.assertConserved()
}

func (s *EngineSuite) TestSwapLockedOnceRoundIsWon() {
	s.engine.game.Board.Set(target, model.EmptyCell())
	s.engine.game.Board.Target = at(6, 5)
	s.engine.game.Board.Set(at(6, 5), model.TargetCell())
	s.deal("CATSDOGE")

	s.Require().NoError(s.engine.EnterSwapMode())
	s.placeWord("TO", start, false)

	result, err := s.engine.CommitWord()
	s.Require().NoError(err)
	s.Require().True(result.RoundWon)

	hand := s.engine.Hand()
	remaining := s.engine.TileBagRemaining()

	s.ErrorIs(s.engine.ToggleSwapSelection(0), model.ErrRoundOver)
	_, err = s.engine.ConfirmSwap()
	s.ErrorIs(err, model.ErrRoundOver)

	s.Equal(hand, s.engine.Hand())
	s.Equal(remaining, s.engine.TileBagRemaining())
	s.assertConserved()
}

func (s *EngineSuite) TestStartNewRoundBeforeWin() {
	s.ErrorIs(s.engine.StartNewRound(), model.ErrRoundNotWon)
	s.Equal(1, s.engine.RoundNumber())
}

func (s *EngineSuite) TestBagExhaustionIsNotAnError() {
	s.deal("CATSDOGE")
	s.engine.game.Bag.Letters = s.engine.game.Bag.Letters[:1]
	s.engine.game.Round.TilesIntroduced = 1 + 8
	s.placeWord("CAT", start, true)

	result, err := s.engine.CommitWord()
	s.Require().NoError(err)

	s.Equal(1, result.Drawn)
	s.Len(s.engine.Hand(), 6)
	s.Equal(0, s.engine.TileBagRemaining())
	s.assertConserved()
}

// Snapshot

func (s *EngineSuite) TestSnapshot() {
	s.deal("CATSDOGE")
	s.placeLetter('C', start)
	s.Require().NoError(s.engine.EnterSwapMode())
	s.Require().NoError(s.engine.ToggleSwapSelection(1))

	snap := s.engine.Snapshot()

	s.Equal(12, snap.Rows)
	s.Equal(12, snap.Cols)
	s.Equal(start, snap.Start)
	s.Equal(target, snap.Target)
	s.Equal(model.LetterCell('C'), snap.Cells[5][5])
	s.Equal([]rune("ATSDOGE"), snap.Hand)
	s.Equal(8, snap.HandCapacity)
	s.Equal(s.engine.TileBagRemaining(), snap.BagRemaining)
	s.Equal(1, snap.RoundNumber)
	s.True(snap.SwapActive)
	s.Equal([]int{1}, snap.SwapSelection)

	// Mutating the snapshot doesn't touch the engine
	snap.Cells[5][5] = model.EmptyCell()
	snap.Hand[0] = 'Z'
	s.Equal(model.LetterCell('C'), s.engine.Board().Get(start))
	s.Equal('A', s.engine.Hand()[0])
}
