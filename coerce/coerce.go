// Package coerce converts resolved raw strings into typed values.
package coerce

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind names the target type of a conversion.
type Kind string

const (
	// KindInt converts to int.
	KindInt Kind = "int"
	// KindFloat converts to float64.
	KindFloat Kind = "float"
	// KindBool converts to bool.
	KindBool Kind = "bool"
)

// ErrInvalidLiteral is matched by every InvalidLiteralError.
var ErrInvalidLiteral = errors.New("invalid literal")

// InvalidLiteralError reports a raw value that cannot be converted to Kind.
type InvalidLiteralError struct {
	Kind Kind
	Raw  string
	Err  error
}

func (e *InvalidLiteralError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s for %s: %q: %v", ErrInvalidLiteral, e.Kind, e.Raw, e.Err)
	}

	return fmt.Sprintf("%s for %s: %q", ErrInvalidLiteral, e.Kind, e.Raw)
}

// Is matches ErrInvalidLiteral.
func (e *InvalidLiteralError) Is(target error) bool {
	return target == ErrInvalidLiteral
}

func (e *InvalidLiteralError) Unwrap() error {
	return e.Err
}

// Int parses raw as a base-10 integer.
func Int(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &InvalidLiteralError{Kind: KindInt, Raw: raw, Err: err}
	}

	return value, nil
}

// Float parses raw as a 64-bit float.
func Float(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &InvalidLiteralError{Kind: KindFloat, Raw: raw, Err: err}
	}

	return value, nil
}

// Bool accepts true/yes/on/1 and false/no/off/0, ignoring case.
func Bool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, &InvalidLiteralError{Kind: KindBool, Raw: raw, Err: nil}
	}
}

// Ints converts every item with Int.
func Ints(items []string) ([]int, error) {
	return each(items, Int)
}

// Floats converts every item with Float.
func Floats(items []string) ([]float64, error) {
	return each(items, Float)
}

// Bools converts every item with Bool.
func Bools(items []string) ([]bool, error) {
	return each(items, Bool)
}

func each[T any](items []string, convert func(string) (T, error)) ([]T, error) {
	out := make([]T, len(items))

	for i, item := range items {
		value, err := convert(item)
		if err != nil {
			return nil, err
		}

		out[i] = value
	}

	return out, nil
}
