package storage

import "errors"

// Kind classifies storage failures.
type Kind int

const (
	// KindIO means the backing store could not be opened, read or written.
	KindIO Kind = iota + 1
	// KindParse means the stored content is not a task list. Adapters
	// recover from it by treating the store as empty.
	KindParse
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Error is a storage failure with the operation that was in progress.
type Error struct {
	Kind Kind
	Op   string // e.g. "opening tasks storage"
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether any error in err's chain is a storage Error of kind k.
func IsKind(err error, k Kind) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == k
}
