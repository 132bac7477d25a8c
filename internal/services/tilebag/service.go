package tilebag

import (
	"github.com/mcoot/wordsland/internal/dependencies/random"
	"github.com/mcoot/wordsland/internal/model"
)

// Service creates and mutates tile bags using an injected random source
type Service struct {
	random       random.Random
	distribution model.Distribution
}

// New creates a TileBag service for the given distribution
func New(rnd random.Random, distribution model.Distribution) *Service {
	if distribution == nil {
		distribution = model.DefaultDistribution()
	}
	return &Service{
		random:       rnd,
		distribution: distribution,
	}
}

// Distribution returns the distribution fresh bags are built from
func (s *Service) Distribution() model.Distribution {
	return s.distribution
}

// NewBag returns a freshly shuffled bag holding the full distribution
func (s *Service) NewBag() *model.TileBag {
	bag := &model.TileBag{Letters: s.distribution.Letters()}
	s.Shuffle(bag)
	return bag
}

// Shuffle reorders the bag in place
func (s *Service) Shuffle(bag *model.TileBag) {
	s.random.Shuffle(len(bag.Letters), func(i, j int) {
		bag.Letters[i], bag.Letters[j] = bag.Letters[j], bag.Letters[i]
	})
}

// Draw removes up to n letters from the front of the bag.
// Fewer are returned when the bag runs low; callers check the length.
func (s *Service) Draw(bag *model.TileBag, n int) []rune {
	if n <= 0 {
		return nil
	}
	if n > len(bag.Letters) {
		n = len(bag.Letters)
	}
	drawn := make([]rune, n)
	copy(drawn, bag.Letters[:n])
	bag.Letters = bag.Letters[n:]
	return drawn
}

// AddTiles generates count letters uniformly from the class alphabet,
// appends them and reshuffles. It returns the generated letters.
func (s *Service) AddTiles(bag *model.TileBag, count int, class model.TileClass) []rune {
	if count <= 0 {
		return nil
	}
	alphabet := class.Alphabet()
	added := make([]rune, count)
	for i := range added {
		added[i] = rune(alphabet[s.random.Intn(len(alphabet))])
	}
	bag.Letters = append(bag.Letters, added...)
	s.Shuffle(bag)
	return added
}

// Return puts letters back into the bag and reshuffles
func (s *Service) Return(bag *model.TileBag, letters []rune) {
	if len(letters) == 0 {
		return
	}
	bag.Letters = append(bag.Letters, letters...)
	s.Shuffle(bag)
}

// Fill draws into the hand until it reaches capacity or the bag is empty.
// It returns the number of letters drawn.
func (s *Service) Fill(bag *model.TileBag, hand *model.Hand) int {
	drawn := s.Draw(bag, hand.Deficit())
	hand.Add(drawn...)
	return len(drawn)
}
