// Package words finds the word formed by the letters placed this turn.
package words

import (
	"strings"

	"github.com/mcoot/wordsland/internal/model"
)

// Extract determines the orientation of the uncommitted letters and expands
// them to the full contiguous word, including any locked letters it runs
// through. Every uncommitted letter must be part of that word.
func Extract(board *model.Board) (*model.Word, error) {
	placed := board.PlacedLetters()
	if len(placed) == 0 {
		return nil, model.ErrNoLettersPlaced
	}

	first := placed[0].Pos
	sameRow, sameCol := true, true
	for _, c := range placed[1:] {
		if c.Pos.Row != first.Row {
			sameRow = false
		}
		if c.Pos.Col != first.Col {
			sameCol = false
		}
	}
	if !sameRow && !sameCol {
		return nil, model.ErrInvalidPlacementGeometry
	}

	horizontal := sameRow
	if len(placed) == 1 {
		// A lone letter takes whichever axis it extends, horizontal first
		horizontal = runLength(board, first, true) > 1 || runLength(board, first, false) == 1
	}

	word := scan(board, first, horizontal)
	for _, c := range placed {
		if !word.Contains(c.Pos) {
			return nil, model.ErrInvalidPlacementGeometry
		}
	}
	return word, nil
}

// step returns the row and column deltas for an axis
func step(horizontal bool) (int, int) {
	if horizontal {
		return 0, 1
	}
	return 1, 0
}

// wordStart walks backward from pos while the previous cell holds a letter
func wordStart(board *model.Board, pos model.Position, horizontal bool) model.Position {
	dr, dc := step(horizontal)
	for {
		prev := model.Position{Row: pos.Row - dr, Col: pos.Col - dc}
		if !board.IsValidPosition(prev) || !board.Get(prev).IsLetter() {
			return pos
		}
		pos = prev
	}
}

// scan collects the contiguous run of letters through pos
func scan(board *model.Board, pos model.Position, horizontal bool) *model.Word {
	dr, dc := step(horizontal)
	word := &model.Word{Horizontal: horizontal}

	var text strings.Builder
	cur := wordStart(board, pos, horizontal)
	for board.IsValidPosition(cur) {
		state := board.Get(cur)
		letter, ok := state.Char()
		if !ok {
			break
		}
		text.WriteRune(letter)
		word.Cells = append(word.Cells, model.WordCell{
			Pos:    cur,
			Letter: letter,
			Locked: state.Kind == model.CellLocked,
		})
		cur = model.Position{Row: cur.Row + dr, Col: cur.Col + dc}
	}
	word.Text = text.String()
	return word
}

// runLength returns the length of the letter run through pos along an axis
func runLength(board *model.Board, pos model.Position, horizontal bool) int {
	return scan(board, pos, horizontal).Len()
}
