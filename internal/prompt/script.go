package prompt

import (
	"errors"
	"fmt"
)

var ErrScriptExhausted = errors.New("scripted prompter ran out of answers")

// Script answers prompts from a fixed list, in order. It applies the same
// validation as the terminal: an invalid numeric answer is counted as a
// re-prompt and the next answer is used.
type Script struct {
	answers []string
	pos     int
	matcher *Matcher

	// Asked records every prompt title in the order it was shown
	Asked []string
	// Reprompts counts answers rejected by validation
	Reprompts int
}

// NewScript creates a scripted prompter. Select answers may be a full
// label, a label prefix or a fuzzy query.
func NewScript(answers ...string) *Script {
	return &Script{answers: answers, matcher: NewMatcher(nil)}
}

// Remaining reports how many answers were not consumed
func (s *Script) Remaining() int {
	return len(s.answers) - s.pos
}

func (s *Script) next(title string) (string, error) {
	s.Asked = append(s.Asked, title)
	if s.pos >= len(s.answers) {
		return "", fmt.Errorf("%w at %q", ErrScriptExhausted, title)
	}
	a := s.answers[s.pos]
	s.pos++
	return a, nil
}

func (s *Script) Select(title string, items []string) (int, error) {
	return s.pick(title, items)
}

func (s *Script) FuzzySelect(title string, items []string) (int, error) {
	return s.pick(title, items)
}

func (s *Script) pick(title string, items []string) (int, error) {
	answer, err := s.next(title)
	if err != nil {
		return 0, err
	}
	idx, ok := s.matcher.Pick(items, answer)
	if !ok {
		return 0, fmt.Errorf("%w for %q: %q", ErrNoChoice, title, answer)
	}
	return idx, nil
}

func (s *Script) Int(q IntQuestion) (int, error) {
	for {
		raw, err := s.next(q.Title)
		if err != nil {
			return 0, err
		}
		v, err := q.Parse(raw)
		if err == nil {
			return v, nil
		}
		s.Reprompts++
	}
}

func (s *Script) Float(q FloatQuestion) (float64, error) {
	for {
		raw, err := s.next(q.Title)
		if err != nil {
			return 0, err
		}
		v, err := q.Parse(raw)
		if err == nil {
			return v, nil
		}
		s.Reprompts++
	}
}

func (s *Script) Confirm(title string, def bool) (bool, error) {
	for {
		raw, err := s.next(title)
		if err != nil {
			return false, err
		}
		v, err := ParseConfirm(raw, def)
		if err == nil {
			return v, nil
		}
		s.Reprompts++
	}
}
