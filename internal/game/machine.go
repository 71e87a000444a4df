package game

import (
	"fmt"
	"slices"

	"github.com/pixil98/go-errors"
)

// StateMachine is the cyclic, optionally key-gated state shared by
// containers, transitions and interactable items.
type StateMachine struct {
	// State is the current state; one of StateList.
	State string `json:"state,omitempty"`

	// StateList orders the states. Cycling without an explicit transition
	// advances to the next element, wrapping.
	StateList []string `json:"state_list,omitempty"`

	// StateDescriptions maps a state to the text shown after entering it.
	StateDescriptions map[string]string `json:"state_descriptions,omitempty"`

	// StateTransitions maps a state to the state a cycle moves it to.
	StateTransitions map[string]string `json:"state_transitions,omitempty"`

	// BlockingStates refuse movement through a transition, or access to a
	// container's inventory.
	BlockingStates []string `json:"blocking_states,omitempty"`

	// KeyInfo maps a key's display name to either a target state or a
	// label meaning "advance one step".
	KeyInfo map[string]string `json:"key_info,omitempty"`
}

// Machine satisfies Interactable for every kind embedding a StateMachine.
func (m *StateMachine) Machine() *StateMachine {
	return m
}

// Validate checks the machine is internally consistent. A machine with no
// states is valid and simply not interactable.
func (m *StateMachine) Validate() error {
	if len(m.StateList) == 0 {
		if m.State != "" {
			return fmt.Errorf("state %q set without a state_list", m.State)
		}
		return nil
	}

	el := errors.NewErrorList()
	if !m.has(m.State) {
		el.Add(fmt.Errorf("state %q is not in state_list", m.State))
	}
	for from, to := range m.StateTransitions {
		if !m.has(from) {
			el.Add(fmt.Errorf("state_transitions: unknown state %q", from))
		}
		if !m.has(to) {
			el.Add(fmt.Errorf("state_transitions: %q leads to unknown state %q", from, to))
		}
	}
	for _, s := range m.BlockingStates {
		if !m.has(s) {
			el.Add(fmt.Errorf("blocking_states: unknown state %q", s))
		}
	}
	return el.Err()
}

func (m *StateMachine) has(state string) bool {
	return slices.Contains(m.StateList, state)
}

// Blocking reports whether the current state refuses passage.
func (m *StateMachine) Blocking() bool {
	return slices.Contains(m.BlockingStates, m.State)
}

// KeyGated reports whether the machine can only leave a blocking state
// with a key.
func (m *StateMachine) KeyGated() bool {
	return len(m.KeyInfo) > 0 && m.Blocking()
}

// Description returns the text for the current state, falling back to the
// state name.
func (m *StateMachine) Description() string {
	if d, ok := m.StateDescriptions[m.State]; ok && d != "" {
		return d
	}
	return m.State
}

// Next returns the state a cycle would move to.
func (m *StateMachine) Next() string {
	if to, ok := m.StateTransitions[m.State]; ok {
		return to
	}
	i := slices.Index(m.StateList, m.State)
	if i < 0 {
		return m.StateList[0]
	}
	return m.StateList[(i+1)%len(m.StateList)]
}

// Cycle advances to the next state. A key-gated blocking state refuses.
func (m *StateMachine) Cycle() error {
	if len(m.StateList) == 0 {
		return ErrNotInteractable
	}
	if m.KeyGated() {
		return fmt.Errorf("%w: %s", ErrKeyRequired, m.State)
	}
	m.State = m.Next()
	return nil
}

// Set moves directly to state.
func (m *StateMachine) Set(state string) error {
	if !m.has(state) {
		return fmt.Errorf("%w: %s", ErrUnknownState, state)
	}
	m.State = state
	return nil
}

// Unlock applies the key named keyName. A key mapped to a known state jumps
// there; any other mapping advances one step out of a blocking state.
// State is untouched on error.
func (m *StateMachine) Unlock(keyName string) error {
	if len(m.StateList) == 0 {
		return ErrNotInteractable
	}
	target, ok := m.KeyInfo[keyName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrWrongKey, keyName)
	}

	next := target
	if !m.has(target) {
		if !m.Blocking() {
			return fmt.Errorf("%w: %s", ErrAlreadyInState, m.State)
		}
		next = m.Next()
	}
	if next == m.State {
		return fmt.Errorf("%w: %s", ErrAlreadyInState, m.State)
	}

	m.State = next
	return nil
}
