package machine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedDescription is matched by every error returned from Validate.
var ErrMalformedDescription = errors.New("malformed machine description")

// ValidationError describes a single problem found in a description.
type ValidationError struct {
	State   string // State the problem was found in
	Trigger Symbol // Trigger of the offending transition, if any
	Reason  string // Human-readable reason
	Value   any    // Offending value, if any
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "state %q", e.State)
	if e.Trigger != "" {
		fmt.Fprintf(&sb, " on %q", string(e.Trigger))
	}
	sb.WriteString(": ")
	sb.WriteString(e.Reason)
	if e.Value != nil {
		fmt.Fprintf(&sb, " (got %q)", fmt.Sprint(e.Value))
	}
	return sb.String()
}

// Is makes every ValidationError match ErrMalformedDescription.
func (e *ValidationError) Is(target error) bool {
	return target == ErrMalformedDescription
}

// AggregateError collects all problems found in a description.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the individual problems to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
