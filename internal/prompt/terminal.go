package prompt

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Terminal runs each prompt as a short-lived bubbletea program on the
// given streams. The final frame of every prompt stays on screen.
type Terminal struct {
	in      io.Reader
	out     io.Writer
	matcher *Matcher
}

// NewTerminal creates a terminal prompter
func NewTerminal(in io.Reader, out io.Writer, matcher *Matcher) *Terminal {
	return &Terminal{in: in, out: out, matcher: matcher}
}

func (t *Terminal) run(m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}

func (t *Terminal) Select(title string, items []string) (int, error) {
	return t.choose(title, items, false)
}

func (t *Terminal) FuzzySelect(title string, items []string) (int, error) {
	return t.choose(title, items, true)
}

func (t *Terminal) choose(title string, items []string, fuzzy bool) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("%w: %s has no options", ErrNoChoice, title)
	}

	final, err := t.run(newSelectModel(title, items, t.matcher, fuzzy))
	if err != nil {
		return 0, err
	}

	m := final.(selectModel)
	if m.aborted || !m.done {
		return 0, ErrAborted
	}
	return m.chosen, nil
}

func (t *Terminal) Int(q IntQuestion) (int, error) {
	validate := func(raw string) error {
		_, err := q.Parse(raw)
		return err
	}

	final, err := t.run(newInputModel(q.Title, q.Hint(), validate))
	if err != nil {
		return 0, err
	}

	m := final.(inputModel)
	if m.aborted || !m.done {
		return 0, ErrAborted
	}
	return q.Parse(m.value)
}

func (t *Terminal) Float(q FloatQuestion) (float64, error) {
	validate := func(raw string) error {
		_, err := q.Parse(raw)
		return err
	}

	final, err := t.run(newInputModel(q.Title, q.Hint(), validate))
	if err != nil {
		return 0, err
	}

	m := final.(inputModel)
	if m.aborted || !m.done {
		return 0, ErrAborted
	}
	return q.Parse(m.value)
}

func (t *Terminal) Confirm(title string, def bool) (bool, error) {
	final, err := t.run(newConfirmModel(title, def))
	if err != nil {
		return false, err
	}

	m := final.(confirmModel)
	if m.aborted || !m.done {
		return false, ErrAborted
	}
	return m.answer, nil
}
