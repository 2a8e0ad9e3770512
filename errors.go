package filebrowser

import "fmt"

// ErrorKind classifies a dialog failure.
type ErrorKind int

const (
	// KindListDir means the current directory could not be enumerated.
	// The entry list degrades to an inline notice for that frame.
	KindListDir ErrorKind = iota

	// KindChangeDir means navigation into a directory failed and the
	// current directory was left unchanged.
	KindChangeDir
)

// String returns a short human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindListDir:
		return "list directory"
	case KindChangeDir:
		return "change directory"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the typed failure status exposed through Dialog.LastError.
// Unlike a logging side channel alone, it lets the host distinguish an
// empty directory from an unreadable one.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *Error) Unwrap() error { return e.Err }
