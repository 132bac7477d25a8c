package model

// Hand is the player's rack of letters
type Hand struct {
	Letters  []rune
	Capacity int
}

// NewHand creates an empty hand with the given capacity
func NewHand(capacity int) *Hand {
	return &Hand{
		Letters:  make([]rune, 0, capacity),
		Capacity: capacity,
	}
}

// Len returns the number of letters in the hand
func (h *Hand) Len() int {
	return len(h.Letters)
}

// Deficit returns how many letters are missing to reach capacity
func (h *Hand) Deficit() int {
	if d := h.Capacity - len(h.Letters); d > 0 {
		return d
	}
	return 0
}

// At returns the letter at index i
func (h *Hand) At(i int) (rune, error) {
	if i < 0 || i >= len(h.Letters) {
		return 0, ErrIndexOutOfRange
	}
	return h.Letters[i], nil
}

// RemoveAt removes and returns the letter at index i
func (h *Hand) RemoveAt(i int) (rune, error) {
	letter, err := h.At(i)
	if err != nil {
		return 0, err
	}
	h.Letters = append(h.Letters[:i], h.Letters[i+1:]...)
	return letter, nil
}

// Add appends letters to the end of the hand
func (h *Hand) Add(letters ...rune) {
	h.Letters = append(h.Letters, letters...)
}

// Clear empties the hand
func (h *Hand) Clear() {
	h.Letters = h.Letters[:0]
}

// Snapshot returns a copy of the letters
func (h *Hand) Snapshot() []rune {
	result := make([]rune, len(h.Letters))
	copy(result, h.Letters)
	return result
}
