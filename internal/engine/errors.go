package engine

import "errors"

// The engine error taxonomy. All of these are recoverable: the operation is
// rejected, engine state is unchanged, and the message is shown to the user.
var (
	ErrInsufficientFunds = errors.New("not enough dewdrops")
	ErrAlreadyOwned      = errors.New("item is already owned")
	ErrNotOwned          = errors.New("item is not owned")
	ErrMaxStageReached   = errors.New("plant is already fully grown")
	ErrUnknownItem       = errors.New("unknown shop item")
	ErrUnknownTask       = errors.New("unknown task")
)
