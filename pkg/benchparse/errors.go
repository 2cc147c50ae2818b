package benchparse

import (
	"errors"
	"fmt"
)

// ErrEmptyResult is returned when the output matches the expected
// grammar but contains zero observation records.
var ErrEmptyResult = errors.New("profiler output contains no observations")

// MalformedOutputError reports benchmark output that does not match the
// expected grammar: missing markers, undecodable observation JSON, or a
// non-numeric value field.
type MalformedOutputError struct {
	Reason string
	Err    error
}

func (e *MalformedOutputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed profiler output: %s: %v", e.Reason, e.Err)
	}
	return "malformed profiler output: " + e.Reason
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// UnitMismatchError reports two observations in the same output that
// disagree on the measurement unit. Parsing fails at the first
// divergence.
type UnitMismatchError struct {
	Index int
	Unit  string
	First string
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("inconsistent units in profiler output: observation %d reports %q, first observation reports %q",
		e.Index, e.Unit, e.First)
}
