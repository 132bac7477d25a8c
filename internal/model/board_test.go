package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BoardSuite struct {
	suite.Suite
	board *Board
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) SetupTest() {
	s.board = NewBoard(6, 6)
	s.board.Start = Position{Row: 2, Col: 2}
	s.board.Target = Position{Row: 5, Col: 5}
	s.board.Set(s.board.Start, StartCell())
	s.board.Set(s.board.Target, TargetCell())
	s.board.Set(Position{Row: 0, Col: 0}, ObstacleCell())
	s.board.Set(Position{Row: 1, Col: 1}, RewardCell(3, TileClassVowels))
}

// Place tests

func (s *BoardSuite) TestPlaceOnEmpty() {
	pos := Position{Row: 3, Col: 3}
	s.Require().NoError(s.board.Place(pos, 'A'))

	s.Equal(LetterCell('A'), s.board.Get(pos))
	covered, ok := s.board.CoveredAt(pos)
	s.True(ok)
	s.Equal(EmptyCell(), covered)
}

func (s *BoardSuite) TestPlaceRejectsObstacleAndLetters() {
	s.ErrorIs(s.board.Place(Position{Row: 0, Col: 0}, 'A'), ErrCellOccupiedIllegally)

	pos := Position{Row: 3, Col: 3}
	s.Require().NoError(s.board.Place(pos, 'A'))
	s.ErrorIs(s.board.Place(pos, 'B'), ErrCellOccupiedIllegally)

	s.board.Commit([]Position{pos})
	s.ErrorIs(s.board.Place(pos, 'B'), ErrCellOccupiedIllegally)
}

func (s *BoardSuite) TestPlaceOutOfBounds() {
	s.ErrorIs(s.board.Place(Position{Row: 6, Col: 0}, 'A'), ErrInvalidPosition)
	s.ErrorIs(s.board.Place(Position{Row: 0, Col: -1}, 'A'), ErrInvalidPosition)
}

// Uncover tests

func (s *BoardSuite) TestUncoverRestoresExactState() {
	specials := []Position{s.board.Start, s.board.Target, {Row: 1, Col: 1}, {Row: 4, Col: 4}}
	before := make(map[Position]CellState)
	for _, pos := range specials {
		before[pos] = s.board.Get(pos)
	}

	for round := 0; round < 3; round++ {
		for _, pos := range specials {
			s.Require().NoError(s.board.Place(pos, 'Q'))
		}
		for _, pos := range specials {
			letter, err := s.board.Uncover(pos)
			s.Require().NoError(err)
			s.Equal('Q', letter)
			s.Equal(before[pos], s.board.Get(pos))
		}
	}
	s.Empty(s.board.Covered)
}

func (s *BoardSuite) TestUncoverRequiresUncommittedLetter() {
	_, err := s.board.Uncover(Position{Row: 3, Col: 3})
	s.ErrorIs(err, ErrNoLetterAtPosition)

	pos := Position{Row: 3, Col: 3}
	_ = s.board.Place(pos, 'A')
	s.board.Commit([]Position{pos})

	_, err = s.board.Uncover(pos)
	s.ErrorIs(err, ErrNoLetterAtPosition)
	s.Equal(LockedCell('A'), s.board.Get(pos))
}

// Commit tests

func (s *BoardSuite) TestCommitLocksAndDiscardsCovered() {
	reward := Position{Row: 1, Col: 1}
	_ = s.board.Place(reward, 'E')
	_ = s.board.Place(s.board.Start, 'S')

	s.board.Commit([]Position{reward, s.board.Start, {Row: 4, Col: 4}})

	s.Equal(LockedCell('E'), s.board.Get(reward))
	s.Equal(LockedCell('S'), s.board.Get(s.board.Start))
	s.Equal(EmptyCell(), s.board.Get(Position{Row: 4, Col: 4}))
	s.Empty(s.board.Covered)
}

// Query tests

func (s *BoardSuite) TestPlacedLettersRowMajor() {
	_ = s.board.Place(Position{Row: 4, Col: 1}, 'B')
	_ = s.board.Place(Position{Row: 3, Col: 5}, 'A')

	cells := s.board.PlacedLetters()
	s.Require().Len(cells, 2)
	s.Equal(Position{Row: 3, Col: 5}, cells[0].Pos)
	s.Equal(Position{Row: 4, Col: 1}, cells[1].Pos)
	s.Equal(2, s.board.CountLetters())
}

func (s *BoardSuite) TestNeighborsAtCorner() {
	s.ElementsMatch([]Position{{Row: 1, Col: 0}, {Row: 0, Col: 1}}, s.board.Neighbors(Position{Row: 0, Col: 0}))
	s.Len(s.board.Neighbors(Position{Row: 3, Col: 3}), 4)
}

func (s *BoardSuite) TestCloneIsIndependent() {
	_ = s.board.Place(Position{Row: 3, Col: 3}, 'A')
	clone := s.board.Clone()

	_, _ = s.board.Uncover(Position{Row: 3, Col: 3})

	s.Equal(LetterCell('A'), clone.Get(Position{Row: 3, Col: 3}))
	s.Len(clone.Covered, 1)
}

// CellState tests

func (s *BoardSuite) TestCellStateAcceptsLetter() {
	s.True(EmptyCell().AcceptsLetter())
	s.True(StartCell().AcceptsLetter())
	s.True(TargetCell().AcceptsLetter())
	s.True(RewardCell(1, TileClassAny).AcceptsLetter())
	s.False(ObstacleCell().AcceptsLetter())
	s.False(LetterCell('A').AcceptsLetter())
	s.False(LockedCell('A').AcceptsLetter())
}

func (s *BoardSuite) TestCellStateString() {
	s.Equal("letter(A)", LetterCell('A').String())
	s.Equal("reward(3 vowels)", RewardCell(3, TileClassVowels).String())
	s.Equal("obstacle", ObstacleCell().String())
}
