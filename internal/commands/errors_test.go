package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestUserError_Is(t *testing.T) {
	tests := map[string]struct {
		err    error
		target error
		exp    bool
	}{
		"same kind":     {err: NewUserError(KindNotFound, "gone"), target: ErrNotFound, exp: true},
		"other kind":    {err: NewUserError(KindNotFound, "gone"), target: ErrStateRejected},
		"wrapped":       {err: fmt.Errorf("turn: %w", NewUserError(KindTypeMismatch, "no")), target: ErrTypeMismatch, exp: true},
		"plain error":   {err: errors.New("boom"), target: ErrInvalidCommand},
		"invalid match": {err: NewUserError(KindInvalidCommand, "?"), target: ErrInvalidCommand, exp: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "is", errors.Is(tt.err, tt.target), tt.exp)
		})
	}
}

func TestUserError_Error(t *testing.T) {
	testutil.AssertEqual(t, "message", NewUserError(KindNotFound, "gone").Error(), "gone")
	testutil.AssertEqual(t, "kind only", ErrStateRejected.Error(), "state rejected")
}
