package request

// Position is a board coordinate
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PlaceRequest is the request body for placing a hand letter
type PlaceRequest struct {
	HandIndex int `json:"hand_index"`
	Row       int `json:"row"`
	Col       int `json:"col"`
}

// MoveRequest is the request body for moving an uncommitted letter
type MoveRequest struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// RecallRequest is the request body for recalling a single letter
type RecallRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ToggleSwapRequest is the request body for selecting a hand letter to swap
type ToggleSwapRequest struct {
	Index int `json:"index"`
}
