package model

import "sort"

// Alphabets for each tile class
const (
	Vowels     = "AEIOU"
	Consonants = "BCDFGHJKLMNPQRSTVWXYZ"
	Alphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Alphabet returns the letters a tile class draws from
func (c TileClass) Alphabet() string {
	switch c {
	case TileClassVowels:
		return Vowels
	case TileClassConsonants:
		return Consonants
	case TileClassAny:
		return Alphabet
	default:
		return Alphabet
	}
}

// Distribution maps each letter to its number of tiles in a fresh bag
type Distribution map[rune]int

// DefaultDistribution returns the standard 196-tile distribution
func DefaultDistribution() Distribution {
	return Distribution{
		'A': 18, 'B': 4, 'C': 4, 'D': 8, 'E': 24, 'F': 4,
		'G': 6, 'H': 4, 'I': 18, 'J': 2, 'K': 2, 'L': 8,
		'M': 4, 'N': 12, 'O': 16, 'P': 4, 'Q': 2, 'R': 12,
		'S': 8, 'T': 12, 'U': 8, 'V': 4, 'W': 4, 'X': 2,
		'Y': 4, 'Z': 2,
	}
}

// Total returns the number of tiles in the distribution
func (d Distribution) Total() int {
	total := 0
	for _, count := range d {
		total += count
	}
	return total
}

// Letters expands the distribution into an alphabetically ordered slice
func (d Distribution) Letters() []rune {
	keys := make([]rune, 0, len(d))
	for letter := range d {
		keys = append(keys, letter)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	letters := make([]rune, 0, d.Total())
	for _, letter := range keys {
		for i := 0; i < d[letter]; i++ {
			letters = append(letters, letter)
		}
	}
	return letters
}

// TileBag is the draw pile. Draws take from the front.
type TileBag struct {
	Letters []rune
}

// Remaining returns the number of tiles left in the bag
func (b *TileBag) Remaining() int {
	return len(b.Letters)
}

// Count returns how many copies of a letter are in the bag
func (b *TileBag) Count(letter rune) int {
	count := 0
	for _, l := range b.Letters {
		if l == letter {
			count++
		}
	}
	return count
}
