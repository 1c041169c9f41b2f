// Package prompt asks the operator for choices and bounded numbers.
// Validation lives in pure Parse methods shared by the terminal prompter
// and the scripted prompter used in tests.
package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrAborted is returned when the operator interrupts a prompt
	ErrAborted = errors.New("prompt aborted by operator")

	ErrInvalidValue = errors.New("invalid value")
	ErrNoChoice     = errors.New("no matching choice")
)

// Prompter is the operator-facing input surface
type Prompter interface {
	// Select offers a short list without search
	Select(title string, items []string) (int, error)
	// FuzzySelect offers a list filtered by a fuzzy query over the labels
	FuzzySelect(title string, items []string) (int, error)
	Int(q IntQuestion) (int, error)
	Float(q FloatQuestion) (float64, error)
	Confirm(title string, def bool) (bool, error)
}

// IntQuestion asks for an integer in [Min, Max]
type IntQuestion struct {
	Title      string
	Min        int
	Max        int
	Default    int
	HasDefault bool
}

// Parse validates raw operator input. Empty input selects the default when
// there is one. Out-of-range values are rejected, never clamped.
func (q IntQuestion) Parse(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if q.HasDefault {
			return q.Default, nil
		}
		return 0, fmt.Errorf("%w: a value is required", ErrInvalidValue)
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < q.Min || v > q.Max {
		return 0, fmt.Errorf("%w: use a number between %d and %d", ErrInvalidValue, q.Min, q.Max)
	}
	return v, nil
}

// Hint renders the range and default next to the title
func (q IntQuestion) Hint() string {
	if q.HasDefault {
		return fmt.Sprintf("[%d-%d] (%d)", q.Min, q.Max, q.Default)
	}
	return fmt.Sprintf("[%d-%d]", q.Min, q.Max)
}

// FloatQuestion asks for a real number in [Min, Max]
type FloatQuestion struct {
	Title      string
	Min        float64
	Max        float64
	Default    float64
	HasDefault bool
}

// Parse validates raw operator input; a comma decimal separator is accepted
func (q FloatQuestion) Parse(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if q.HasDefault {
			return q.Default, nil
		}
		return 0, fmt.Errorf("%w: a value is required", ErrInvalidValue)
	}

	v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil || !(v >= q.Min && v <= q.Max) {
		return 0, fmt.Errorf("%w: use a number between %v and %v", ErrInvalidValue, q.Min, q.Max)
	}
	return v, nil
}

func (q FloatQuestion) Hint() string {
	if q.HasDefault {
		return fmt.Sprintf("[%v-%v] (%v)", q.Min, q.Max, q.Default)
	}
	return fmt.Sprintf("[%v-%v]", q.Min, q.Max)
}

// ParseConfirm interprets a yes/no answer
func ParseConfirm(raw string, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return def, nil
	case "y", "yes", "s", "sim":
		return true, nil
	case "n", "no", "nao", "não":
		return false, nil
	}
	return false, fmt.Errorf("%w: answer y or n", ErrInvalidValue)
}

var (
	_ Prompter = (*Terminal)(nil)
	_ Prompter = (*Script)(nil)
)
