package game

import "fmt"

type ErrorKind int

const (
	// ErrValidation: malformed or missing fields, rejected before touching state
	ErrValidation ErrorKind = iota
	// ErrRuleViolation: not your turn, already rolled, can't afford it, ...
	ErrRuleViolation
	// ErrNotFound: room/player/property/auction/trade id did not resolve
	ErrNotFound
	// ErrStale: a trade or auction condition no longer holds at resolution time
	ErrStale
)

// Error is the recoverable rejection of one action. State is guaranteed
// unchanged when a handler returns one.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func errValidation(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func errRule(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrRuleViolation, Message: fmt.Sprintf(format, args...)}
}

func errNotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func errStale(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrStale, Message: fmt.Sprintf(format, args...)}
}
