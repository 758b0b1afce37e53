package vfs

import "errors"

// Error represents a domain error raised by the filesystem tree or by the
// command engine operating on it.
//
// These are business logic errors (item not found, directory not empty, link
// target not linkable) as opposed to infrastructure errors (unreadable input,
// invalid configuration), which are plain wrapped errors.
type Error struct {
	// Code is the error category
	Code ErrorCode

	// Message is a human-readable error description
	Message string

	// Path is the emulated path related to the error (if applicable)
	Path string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		return e.Message + ": " + e.Path
	}
	return e.Message
}

// ErrorCode represents the category of an Error.
type ErrorCode int

const (
	// ErrInvalidArgument indicates a wrong number of arguments or an item
	// used where the operation cannot accept it
	ErrInvalidArgument ErrorCode = iota

	// ErrSyntax indicates a malformed command line, path or item name
	ErrSyntax

	// ErrUnknownCommand indicates the command name is not registered
	ErrUnknownCommand

	// ErrDuplicateCommand indicates a command name was registered twice
	ErrDuplicateCommand

	// ErrNotFound indicates the path does not resolve to an item
	ErrNotFound

	// ErrNotDirectory indicates the operation expected a container
	ErrNotDirectory

	// ErrIsDirectory indicates the operation expected a non-container
	ErrIsDirectory

	// ErrAlreadyExists indicates a sibling with the same name exists
	ErrAlreadyExists

	// ErrNotDeletable indicates the item is the drive, the current directory
	// or a hard-link target
	ErrNotDeletable

	// ErrNotEmpty indicates a directory still has children
	ErrNotEmpty

	// ErrNotLinkable indicates the link target lacks the link-target capability
	ErrNotLinkable

	// ErrNotSupported indicates the operation is not defined for the item kind
	// Examples: cloning the drive, renaming a link
	ErrNotSupported

	// ErrOrphaned indicates an item has no resolvable parent
	ErrOrphaned

	// ErrInvalidMove indicates a container was moved into itself or one of
	// its descendants
	ErrInvalidMove
)

var codeNames = map[ErrorCode]string{
	ErrInvalidArgument:  "invalid_argument",
	ErrSyntax:           "syntax",
	ErrUnknownCommand:   "unknown_command",
	ErrDuplicateCommand: "duplicate_command",
	ErrNotFound:         "not_found",
	ErrNotDirectory:     "not_directory",
	ErrIsDirectory:      "is_directory",
	ErrAlreadyExists:    "already_exists",
	ErrNotDeletable:     "not_deletable",
	ErrNotEmpty:         "not_empty",
	ErrNotLinkable:      "not_linkable",
	ErrNotSupported:     "not_supported",
	ErrOrphaned:         "orphaned",
	ErrInvalidMove:      "invalid_move",
}

// String returns a stable snake_case name, used as a metrics label.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "unknown"
}

// NewError builds an *Error without a path.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// CodeOf extracts the ErrorCode from err. The second result is false when err
// does not wrap an *Error.
func CodeOf(err error) (ErrorCode, bool) {
	var vfsErr *Error
	if errors.As(err, &vfsErr) {
		return vfsErr.Code, true
	}
	return 0, false
}

// IsCode reports whether err wraps an *Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	got, ok := CodeOf(err)
	return ok && got == code
}
