package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Scope is an ordered list of entity refs describing what is inside a
// location, a container or the player's pack. Order is the data-file order
// and drives first-match name resolution.
type Scope []EntityRef

// Index returns the position of ref, or -1.
func (s Scope) Index(ref EntityRef) int {
	for i, r := range s {
		if r == ref {
			return i
		}
	}
	return -1
}

// Contains checks if ref is in the scope.
func (s Scope) Contains(ref EntityRef) bool {
	return s.Index(ref) >= 0
}

// Add appends ref to the end of the scope.
func (s *Scope) Add(ref EntityRef) {
	*s = append(*s, ref)
}

// Remove removes ref from the scope. Returns false, leaving the scope
// untouched, if ref was not present.
func (s *Scope) Remove(ref EntityRef) bool {
	i := s.Index(ref)
	if i < 0 {
		return false
	}
	*s = append((*s)[:i:i], (*s)[i+1:]...)
	return true
}

// Validate checks every ref in the scope.
func (s Scope) Validate() error {
	el := errors.NewErrorList()
	for i, r := range s {
		if err := r.Validate(); err != nil {
			el.Add(fmt.Errorf("entry %d: %w", i, err))
		}
	}
	return el.Err()
}

// Transfer moves ref from one scope to another. Nothing changes unless ref
// is present in from.
func Transfer(ref EntityRef, from, to *Scope) bool {
	if from == to {
		return from.Contains(ref)
	}
	if !from.Remove(ref) {
		return false
	}
	to.Add(ref)
	return true
}
