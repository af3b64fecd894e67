package recommendations

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate reports a date string not in M/D/Y format.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNoSegment reports a customer with no segment reference.
	ErrNoSegment = errors.New("segment id not found for customer")
)

// MalformedResponseError reports a model reply that did not match the expected
// schema. Raw carries the de-fenced text so a human can inspect prompt drift.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed llm response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
