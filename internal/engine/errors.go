package engine

import (
	"errors"
	"fmt"
)

// ErrMissingData is matched by every MissingDataError.
var ErrMissingData = errors.New("missing data")

// MissingDataError means the dataset is empty, unreadable or violates a
// record invariant. It is fatal at startup.
type MissingDataError struct {
	Reason string
	Err    error
}

func (e *MissingDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing data: %s: %v", e.Reason, e.Err)
	}
	return "missing data: " + e.Reason
}

func (e *MissingDataError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMissingData, e.Err}
	}
	return []error{ErrMissingData}
}

func missingData(format string, args ...any) error {
	return &MissingDataError{Reason: fmt.Sprintf(format, args...)}
}

// ConfigurationError reports a control value outside its declared domain.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}
