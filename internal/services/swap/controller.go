package swap

import (
	"sort"

	"github.com/mcoot/wordsland/internal/model"
	"github.com/mcoot/wordsland/internal/services/tilebag"
)

// Controller exchanges hand letters with the bag
type Controller struct {
	tiles *tilebag.Service
}

// New creates a new SwapController
func New(tiles *tilebag.Service) *Controller {
	return &Controller{
		tiles: tiles,
	}
}

// Enter activates swap mode with an empty selection
func (c *Controller) Enter(game *model.Game) error {
	if game.Round.Won {
		return model.ErrRoundOver
	}
	game.Swap = model.SwapState{
		Active:   true,
		Selected: make(map[int]struct{}),
	}
	return nil
}

// Toggle flips whether the hand letter at index is selected
func (c *Controller) Toggle(game *model.Game, index int) error {
	if game.Round.Won {
		return model.ErrRoundOver
	}
	if !game.Swap.Active {
		return model.ErrSwapModeInactive
	}
	if _, err := game.Hand.At(index); err != nil {
		return err
	}
	if _, ok := game.Swap.Selected[index]; ok {
		delete(game.Swap.Selected, index)
	} else {
		game.Swap.Selected[index] = struct{}{}
	}
	return nil
}

// Confirm returns the selected letters to the bag, draws the same number
// back and leaves swap mode. It returns the number of letters drawn.
func (c *Controller) Confirm(game *model.Game) (int, error) {
	if game.Round.Won {
		return 0, model.ErrRoundOver
	}
	if !game.Swap.Active {
		return 0, model.ErrSwapModeInactive
	}

	// Descending so earlier removals don't shift later indices
	indices := Selection(game)
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))

	returned := make([]rune, 0, len(indices))
	for _, i := range indices {
		letter, err := game.Hand.RemoveAt(i)
		if err != nil {
			continue
		}
		returned = append(returned, letter)
	}

	c.tiles.Return(game.Bag, returned)
	drawn := c.tiles.Draw(game.Bag, len(returned))
	game.Hand.Add(drawn...)

	game.Swap = model.SwapState{}
	return len(drawn), nil
}

// Cancel leaves swap mode without exchanging anything
func (c *Controller) Cancel(game *model.Game) error {
	if !game.Swap.Active {
		return model.ErrSwapModeInactive
	}
	game.Swap = model.SwapState{}
	return nil
}

// RemapAfterRemove keeps the selection pointing at the same letters after
// the hand letter at removed has been taken out
func RemapAfterRemove(game *model.Game, removed int) {
	if !game.Swap.Active || len(game.Swap.Selected) == 0 {
		return
	}
	remapped := make(map[int]struct{}, len(game.Swap.Selected))
	for i := range game.Swap.Selected {
		switch {
		case i < removed:
			remapped[i] = struct{}{}
		case i > removed:
			remapped[i-1] = struct{}{}
		}
	}
	game.Swap.Selected = remapped
}

// Selection returns the selected hand indices in ascending order
func Selection(game *model.Game) []int {
	indices := make([]int, 0, len(game.Swap.Selected))
	for i := range game.Swap.Selected {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}
