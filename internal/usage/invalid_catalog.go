package usage

import "fmt"

// InvalidCatalog is returned when the command catalog cannot be loaded.
func InvalidCatalog(path string, err error) *Error {
	return &Error{
		Kind:    ErrInvalidCatalog,
		Message: fmt.Sprintf("argtree: invalid catalog '%s': %v", path, err),
		Err:     err,
	}
}

// InvalidConfigKey is returned for config keys that do not exist.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("argtree: unknown config key '%s'. See 'argtree config list'.", key),
	}
}

// NotATerminal is returned by interactive commands run without a TTY.
func NotATerminal(command string) *Error {
	return &Error{
		Kind:    ErrNotATerminal,
		Message: fmt.Sprintf("argtree: '%s' requires an interactive terminal", command),
	}
}
