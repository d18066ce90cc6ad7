package orders

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrDuplicateOrder = errors.New("duplicate order id")
	ErrBadTransition  = errors.New("invalid status transition")
	ErrEmptyCart      = errors.New("cart is empty")
)

// ValidationError carries every failed field at once so the caller can show
// all problems in a single pass instead of one per round trip.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("invalid fields: %s", strings.Join(keys, ", "))
}

// SubmissionError wraps a store append failure. The cart is untouched and the
// customer can retry.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("order submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// RowError marks a persistence row that could not be mapped to a domain order.
type RowError struct {
	Field  string
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("malformed order row: %s %s", e.Field, e.Reason)
}
