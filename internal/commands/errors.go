package commands

// ErrorKind classifies a failed player action.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindTypeMismatch
	KindInvalidCommand
	KindStateRejected
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindTypeMismatch:
		return "type mismatch"
	case KindInvalidCommand:
		return "invalid command"
	case KindStateRejected:
		return "state rejected"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. Any UserError of the same kind matches.
var (
	ErrNotFound       = &UserError{Kind: KindNotFound}
	ErrTypeMismatch   = &UserError{Kind: KindTypeMismatch}
	ErrInvalidCommand = &UserError{Kind: KindInvalidCommand}
	ErrStateRejected  = &UserError{Kind: KindStateRejected}
)

// UserError represents an error that should be displayed to the user.
// These are not system failures - just invalid input or usage. The world
// is never changed by a turn that ends in a UserError.
type UserError struct {
	Kind    ErrorKind
	Message string
}

func (e *UserError) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

// Is matches any UserError of the same kind.
func (e *UserError) Is(target error) bool {
	t, ok := target.(*UserError)
	return ok && t.Kind == e.Kind
}

// NewUserError creates a user-facing error.
func NewUserError(kind ErrorKind, msg string) *UserError {
	return &UserError{Kind: kind, Message: msg}
}
