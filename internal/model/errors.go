package model

import "errors"

// Rule violations returned by engine commands. None of them change state.
var (
	// Commit errors
	ErrNoLettersPlaced          = errors.New("no letters placed")
	ErrInvalidPlacementGeometry = errors.New("letters must form a single straight line")
	ErrWordTooShort             = errors.New("words must be at least 2 letters long")
	ErrMustCoverStart           = errors.New("the first word must cover the start tile")
	ErrDisconnectedPlacement    = errors.New("new words must connect to an existing letter")
	ErrWordNotInDictionary      = errors.New("word is not in the dictionary")

	// Placement errors
	ErrCellOccupiedIllegally = errors.New("cell cannot take a letter")
	ErrInvalidPosition       = errors.New("invalid board position")
	ErrNoLetterAtPosition    = errors.New("no uncommitted letter at position")

	// Hand and swap errors
	ErrIndexOutOfRange  = errors.New("hand index out of range")
	ErrSwapModeInactive = errors.New("swap mode is not active")

	// Round errors
	ErrRoundOver    = errors.New("round is over, start a new round")
	ErrRoundNotWon  = errors.New("round has not been won yet")
	ErrGridTooSmall = errors.New("grid is too small for the layout")

	// Configuration errors
	ErrInvalidLayout   = errors.New("invalid board layout")
	ErrInvalidHandSize = errors.New("hand size must be positive")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
