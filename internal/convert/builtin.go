package convert

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var (
	errEmpty      = errors.New("empty token")
	errWhitespace = errors.New("token contains whitespace")
)

// String accepts any token unchanged.
var String = New("string", func(token string) (any, error) {
	return token, nil
})

// Word accepts a single non-empty token without whitespace.
var Word = New("word", func(token string) (any, error) {
	if token == "" {
		return nil, errEmpty
	}
	if strings.ContainsAny(token, " \t\n") {
		return nil, errWhitespace
	}
	return token, nil
})

// Int parses a base 10 integer.
var Int = New("int", func(token string) (any, error) {
	return strconv.Atoi(token)
})

// Float parses a 64-bit floating point number.
var Float = New("float", func(token string) (any, error) {
	return strconv.ParseFloat(token, 64)
})

// Bool parses true/false, yes/no, on/off and 1/0.
var Bool = New("bool", func(token string) (any, error) {
	switch strings.ToLower(token) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return nil, errors.New("not a boolean")
	}
})

// Duration parses Go duration syntax (e.g. 90s, 1h30m).
var Duration = New("duration", func(token string) (any, error) {
	return time.ParseDuration(token)
})

// Date parses a YYYY-MM-DD date.
var Date = New("date", func(token string) (any, error) {
	return time.Parse(dateLayout, token)
})

// UUID parses a UUID in any of the forms accepted by uuid.Parse.
var UUID = New("uuid", func(token string) (any, error) {
	return uuid.Parse(token)
})

// Builtins returns the builtin converters in display order.
func Builtins() []*Converter {
	return []*Converter{String, Word, Int, Float, Bool, Duration, Date, UUID}
}
