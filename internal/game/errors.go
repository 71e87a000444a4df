package game

import "errors"

var (
	ErrNotInteractable = errors.New("not interactable")
	ErrKeyRequired     = errors.New("key required")
	ErrWrongKey        = errors.New("key does not fit")
	ErrAlreadyInState  = errors.New("already in state")
	ErrUnknownState    = errors.New("unknown state")
	ErrUnknownEntity   = errors.New("unknown entity")
	ErrNotHolder       = errors.New("entity has no inventory")
)
