package engine

import (
	"errors"
	"fmt"
)

var (
	ErrQuestNotFound    = errors.New("quest not found")
	ErrAlreadyCompleted = errors.New("quest is already completed")
	ErrNotCompleted     = errors.New("quest is not completed")
)

// ValidationError rejects a quest submission before anything is created.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

var errIDExhausted = errors.New("could not generate a unique quest id")
