package usage

import "fmt"

// UnknownCommand is returned when a command name is not in the catalog.
func UnknownCommand(command string, suggestions ...string) *Error {
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: fmt.Sprintf("argtree: '%s' is not a known command. See 'argtree commands'.", command),
		Hints:   didYouMean(suggestions),
	}
}

// NotACommand is returned when the first word is not an argtree subcommand.
func NotACommand(command string, suggestions ...string) *Error {
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: fmt.Sprintf("argtree: '%s' is not an argtree command. See 'argtree help'.", command),
		Hints:   didYouMean(suggestions),
	}
}

func didYouMean(suggestions []string) []string {
	switch len(suggestions) {
	case 0:
		return nil
	case 1:
		return []string{fmt.Sprintf("Did you mean '%s'?", suggestions[0])}
	}
	hints := []string{"Did you mean one of these?"}
	for _, s := range suggestions {
		hints = append(hints, "    "+s)
	}
	return hints
}
