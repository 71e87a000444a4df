package game

import (
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

func door() *StateMachine {
	return &StateMachine{
		State:     "locked",
		StateList: []string{"locked", "unlocked"},
		StateDescriptions: map[string]string{
			"locked":   "The door is locked tight.",
			"unlocked": "The door swings free.",
		},
		BlockingStates: []string{"locked"},
		KeyInfo:        map[string]string{"rusty key": "unlock"},
	}
}

func lamp() *StateMachine {
	return &StateMachine{
		State:     "off",
		StateList: []string{"off", "dim", "bright"},
		StateDescriptions: map[string]string{
			"off":    "The lamp is dark.",
			"dim":    "The lamp flickers.",
			"bright": "The lamp blazes.",
		},
	}
}

func TestStateMachine_Cycle(t *testing.T) {
	tests := map[string]struct {
		machine  *StateMachine
		expState string
		expErr   error
	}{
		"advances in list order": {
			machine:  lamp(),
			expState: "dim",
		},
		"wraps at the end": {
			machine: func() *StateMachine {
				m := lamp()
				m.State = "bright"
				return m
			}(),
			expState: "off",
		},
		"explicit transition wins": {
			machine: func() *StateMachine {
				m := lamp()
				m.StateTransitions = map[string]string{"off": "bright"}
				return m
			}(),
			expState: "bright",
		},
		"key gated blocking state refuses": {
			machine:  door(),
			expState: "locked",
			expErr:   ErrKeyRequired,
		},
		"blocking state without keys cycles": {
			machine: func() *StateMachine {
				m := door()
				m.KeyInfo = nil
				return m
			}(),
			expState: "unlocked",
		},
		"no states": {
			machine: &StateMachine{},
			expErr:  ErrNotInteractable,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.machine.Cycle()
			if !errors.Is(err, tt.expErr) {
				t.Fatalf("error = %v, expected %v", err, tt.expErr)
			}
			testutil.AssertEqual(t, "state", tt.machine.State, tt.expState)
		})
	}
}

func TestStateMachine_CycleClosure(t *testing.T) {
	m := lamp()
	start := m.Description()

	for i := 0; i < len(m.StateList); i++ {
		if err := m.Cycle(); err != nil {
			t.Fatalf("cycle %d: %v", i, err)
		}
	}

	testutil.AssertEqual(t, "description", m.Description(), start)
}

func TestStateMachine_Unlock(t *testing.T) {
	tests := map[string]struct {
		machine  *StateMachine
		key      string
		expState string
		expErr   error
	}{
		"label advances out of blocking state": {
			machine:  door(),
			key:      "rusty key",
			expState: "unlocked",
		},
		"unknown key": {
			machine:  door(),
			key:      "brass key",
			expState: "locked",
			expErr:   ErrWrongKey,
		},
		"label on open door": {
			machine: func() *StateMachine {
				m := door()
				m.State = "unlocked"
				return m
			}(),
			key:      "rusty key",
			expState: "unlocked",
			expErr:   ErrAlreadyInState,
		},
		"key names a target state": {
			machine: func() *StateMachine {
				m := door()
				m.StateList = []string{"locked", "closed", "open"}
				m.KeyInfo = map[string]string{"rusty key": "open"}
				return m
			}(),
			key:      "rusty key",
			expState: "open",
		},
		"target equals current": {
			machine: func() *StateMachine {
				m := door()
				m.KeyInfo = map[string]string{"rusty key": "locked"}
				return m
			}(),
			key:      "rusty key",
			expState: "locked",
			expErr:   ErrAlreadyInState,
		},
		"not interactable": {
			machine: &StateMachine{},
			key:     "rusty key",
			expErr:  ErrNotInteractable,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.machine.Unlock(tt.key)
			if !errors.Is(err, tt.expErr) {
				t.Fatalf("error = %v, expected %v", err, tt.expErr)
			}
			testutil.AssertEqual(t, "state", tt.machine.State, tt.expState)
		})
	}
}

func TestStateMachine_Description(t *testing.T) {
	m := door()
	testutil.AssertEqual(t, "described", m.Description(), "The door is locked tight.")

	m.StateDescriptions = nil
	testutil.AssertEqual(t, "fallback", m.Description(), "locked")
}

func TestStateMachine_Validate(t *testing.T) {
	tests := map[string]struct {
		machine *StateMachine
		expErr  bool
	}{
		"valid":              {machine: door()},
		"empty":              {machine: &StateMachine{}},
		"state without list": {machine: &StateMachine{State: "on"}, expErr: true},
		"unknown current": {
			machine: &StateMachine{State: "ajar", StateList: []string{"open"}},
			expErr:  true,
		},
		"unknown transition target": {
			machine: &StateMachine{
				State:            "open",
				StateList:        []string{"open"},
				StateTransitions: map[string]string{"open": "gone"},
			},
			expErr: true,
		},
		"unknown blocking state": {
			machine: &StateMachine{
				State:          "open",
				StateList:      []string{"open"},
				BlockingStates: []string{"shut"},
			},
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.machine.Validate()
			testutil.AssertEqual(t, "error", err != nil, tt.expErr)
		})
	}
}
