package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyInput is matched by EmptyInputError.
	ErrEmptyInput = errors.New("empty input")
	// ErrInconsistentScoreTable is matched by InconsistentScoreTableError.
	ErrInconsistentScoreTable = errors.New("inconsistent score table")
	// ErrMalformedInput is matched by MalformedInputError.
	ErrMalformedInput = errors.New("malformed input")
)

// EmptyInputError is returned when ranking a score table without languages.
type EmptyInputError struct {
	What string
}

func (e *EmptyInputError) Error() string {
	if e.What == "" {
		return ErrEmptyInput.Error()
	}
	return fmt.Sprintf("%s: %s", ErrEmptyInput, e.What)
}

// Is reports whether target is ErrEmptyInput.
func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// InconsistentScoreTableError is returned when models or metrics differ between languages.
type InconsistentScoreTableError struct {
	Language string
	Model    string
	Missing  []string
	Reason   string
}

func (e *InconsistentScoreTableError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrInconsistentScoreTable.Error())
	if e.Language != "" {
		fmt.Fprintf(&sb, ": language %q", e.Language)
	}
	if e.Model != "" {
		fmt.Fprintf(&sb, ", model %q", e.Model)
	}
	if e.Reason != "" {
		fmt.Fprintf(&sb, ": %s", e.Reason)
	}
	if len(e.Missing) > 0 {
		fmt.Fprintf(&sb, " (missing: %s)", strings.Join(e.Missing, ", "))
	}
	return sb.String()
}

// Is reports whether target is ErrInconsistentScoreTable.
func (e *InconsistentScoreTableError) Is(target error) bool {
	return target == ErrInconsistentScoreTable
}

// MalformedInputError is returned at the transport boundary for payloads that
// do not carry text where text is expected. The scorers themselves accept any string.
type MalformedInputError struct {
	Field  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrMalformedInput, e.Reason)
	}
	return fmt.Sprintf("%s: field %q: %s", ErrMalformedInput, e.Field, e.Reason)
}

// Is reports whether target is ErrMalformedInput.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}
