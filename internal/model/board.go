package model

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Cell pairs a position with its state
type Cell struct {
	Pos   Position
	State CellState
}

// Board is the grid for one round.
// Covered records what each uncommitted letter was placed on top of, so
// Start/Target/Reward cells survive being temporarily covered.
type Board struct {
	Rows    int
	Cols    int
	Cells   [][]CellState // Row-major: Cells[row][col]
	Start   Position
	Target  Position
	Covered map[Position]CellState
}

// NewBoard creates an empty board of the given dimensions
func NewBoard(rows, cols int) *Board {
	cells := make([][]CellState, rows)
	for i := range cells {
		cells[i] = make([]CellState, cols)
	}
	return &Board{
		Rows:    rows,
		Cols:    cols,
		Cells:   cells,
		Covered: make(map[Position]CellState),
	}
}

// Get returns the state at the given position, or Empty if out of bounds
func (b *Board) Get(pos Position) CellState {
	if !b.IsValidPosition(pos) {
		return EmptyCell()
	}
	return b.Cells[pos.Row][pos.Col]
}

// Set overwrites the state at the given position.
// Used while generating a board; gameplay goes through Place/Uncover/Commit.
func (b *Board) Set(pos Position, state CellState) {
	if b.IsValidPosition(pos) {
		b.Cells[pos.Row][pos.Col] = state
	}
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Rows && pos.Col >= 0 && pos.Col < b.Cols
}

// Place puts an uncommitted letter on a cell, remembering what it covers
func (b *Board) Place(pos Position, letter rune) error {
	if !b.IsValidPosition(pos) {
		return ErrInvalidPosition
	}
	current := b.Cells[pos.Row][pos.Col]
	if !current.AcceptsLetter() {
		return ErrCellOccupiedIllegally
	}
	if _, ok := b.Covered[pos]; !ok {
		b.Covered[pos] = current
	}
	b.Cells[pos.Row][pos.Col] = LetterCell(letter)
	return nil
}

// Uncover removes an uncommitted letter and restores the covered state.
// It returns the letter that was removed.
func (b *Board) Uncover(pos Position) (rune, error) {
	if !b.IsValidPosition(pos) {
		return 0, ErrInvalidPosition
	}
	current := b.Cells[pos.Row][pos.Col]
	if current.Kind != CellLetter {
		return 0, ErrNoLetterAtPosition
	}

	restored, ok := b.Covered[pos]
	if !ok {
		restored = EmptyCell()
	}
	b.Cells[pos.Row][pos.Col] = restored
	delete(b.Covered, pos)
	return current.Letter, nil
}

// CoveredAt returns the state beneath an uncommitted letter
func (b *Board) CoveredAt(pos Position) (CellState, bool) {
	state, ok := b.Covered[pos]
	return state, ok
}

// Commit locks the uncommitted letters at the given positions.
// Whatever they covered is discarded.
func (b *Board) Commit(positions []Position) {
	for _, pos := range positions {
		if !b.IsValidPosition(pos) {
			continue
		}
		current := b.Cells[pos.Row][pos.Col]
		if current.Kind != CellLetter {
			continue
		}
		b.Cells[pos.Row][pos.Col] = LockedCell(current.Letter)
		delete(b.Covered, pos)
	}
}

// CellsOfKind returns all cells matching the predicate in row-major order
func (b *Board) CellsOfKind(match func(CellState) bool) []Cell {
	var cells []Cell
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			if match(b.Cells[row][col]) {
				cells = append(cells, Cell{Pos: Position{Row: row, Col: col}, State: b.Cells[row][col]})
			}
		}
	}
	return cells
}

// PlacedLetters returns the uncommitted letters in row-major order
func (b *Board) PlacedLetters() []Cell {
	return b.CellsOfKind(func(c CellState) bool { return c.Kind == CellLetter })
}

// CountLetters returns the number of placed and locked letters on the board
func (b *Board) CountLetters() int {
	return len(b.CellsOfKind(CellState.IsLetter))
}

// Neighbors returns the in-bounds orthogonal neighbours of a position
func (b *Board) Neighbors(pos Position) []Position {
	candidates := []Position{
		{Row: pos.Row - 1, Col: pos.Col},
		{Row: pos.Row + 1, Col: pos.Col},
		{Row: pos.Row, Col: pos.Col - 1},
		{Row: pos.Row, Col: pos.Col + 1},
	}
	result := make([]Position, 0, len(candidates))
	for _, p := range candidates {
		if b.IsValidPosition(p) {
			result = append(result, p)
		}
	}
	return result
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	clone := NewBoard(b.Rows, b.Cols)
	for row := range b.Cells {
		copy(clone.Cells[row], b.Cells[row])
	}
	clone.Start = b.Start
	clone.Target = b.Target
	for pos, state := range b.Covered {
		clone.Covered[pos] = state
	}
	return clone
}
