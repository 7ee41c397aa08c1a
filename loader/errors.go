package loader

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound marks a missing dataset file. It aborts the batch
// before any store interaction.
var ErrSourceNotFound = errors.New("dataset file not found")

// ValidationError marks a single record that cannot be turned into a
// valid catalog entry. The batch skips the record and continues; every
// other error class aborts and rolls back the whole batch.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
