package usage

import "strings"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrNoMatchingVariant
	ErrInvalidCatalog
	ErrInvalidConfigKey
	ErrNotATerminal
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Invalid catalog
//	  - Invalid config key
//	  - Not a terminal
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Unknown command
//	  - No matching variant
var exitCodes = map[ErrorKind]int{
	ErrUnknown:           1,
	ErrInvalidFlag:       2,
	ErrMissingArgument:   2,
	ErrUnknownCommand:    2,
	ErrNoMatchingVariant: 2,
	ErrInvalidCatalog:    1,
	ErrInvalidConfigKey:  1,
	ErrNotATerminal:      1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string
	// Hints are extra lines shown below the message (suggestions, usages).
	Hints []string
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for this error.
func (e *Error) ExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Detail renders the message followed by its hints, one per line.
func (e *Error) Detail() string {
	if len(e.Hints) == 0 {
		return e.Message
	}
	return e.Message + "\n\n" + strings.Join(e.Hints, "\n")
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
