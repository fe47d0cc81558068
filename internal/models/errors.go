package models

import (
	"errors"
	"fmt"
)

// Not-found errors.
var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrPlayerNotFound = errors.New("player not found")
)

// Authorization errors.
var (
	ErrNotOwner = errors.New("only the room owner can perform this action")
)

// State errors: the action is legal in principle but not in the room's
// current condition.
var (
	ErrRoomNotVoting  = errors.New("room is not in voting")
	ErrWrongRoomState = errors.New("room is not in a state to start voting")
	ErrAlreadyVoted   = errors.New("player has already voted in this round")
	ErrRoomFull       = errors.New("room is full")
)

// ValidationError reports malformed input with field-level detail.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrPlayerNotFound)
}

// IsAuthorization reports whether err is an authorization error.
func IsAuthorization(err error) bool {
	return errors.Is(err, ErrNotOwner)
}

// IsState reports whether err is a wrong-state error.
func IsState(err error) bool {
	return errors.Is(err, ErrRoomNotVoting) ||
		errors.Is(err, ErrWrongRoomState) ||
		errors.Is(err, ErrAlreadyVoted) ||
		errors.Is(err, ErrRoomFull)
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
