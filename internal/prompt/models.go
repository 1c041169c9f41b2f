package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const maxVisibleRows = 10

// selectModel is a single-choice list, optionally filtered by a fuzzy query
type selectModel struct {
	title   string
	items   []string
	fuzzy   bool
	matcher *Matcher
	filter  textinput.Model

	matches []int
	cursor  int
	chosen  int

	done    bool
	aborted bool
	styles  Styles
}

func newSelectModel(title string, items []string, matcher *Matcher, fuzzy bool) selectModel {
	fi := textinput.New()
	fi.Placeholder = "type to search..."
	fi.Prompt = "/ "
	fi.CharLimit = 64
	if fuzzy {
		fi.Focus()
	}

	return selectModel{
		title:   title,
		items:   items,
		fuzzy:   fuzzy,
		matcher: matcher,
		filter:  fi,
		matches: matcher.Rank(items, ""),
		chosen:  -1,
		styles:  DefaultStyles(),
	}
}

func (m selectModel) Init() tea.Cmd {
	if m.fuzzy {
		return textinput.Blink
	}
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.fuzzy {
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		if len(m.matches) == 0 {
			return m, nil
		}
		m.chosen = m.matches[m.cursor]
		m.done = true
		return m, tea.Quit
	case tea.KeyUp, tea.KeyShiftTab:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case tea.KeyDown, tea.KeyTab:
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
		return m, nil
	case tea.KeyEsc:
		if m.fuzzy && m.filter.Value() != "" {
			m.filter.SetValue("")
			m.matches = m.matcher.Rank(m.items, "")
			m.cursor = 0
		}
		return m, nil
	}

	if !m.fuzzy {
		switch key.String() {
		case "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "j":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
		}
		return m, nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.matches = m.matcher.Rank(m.items, m.filter.Value())
		m.cursor = 0
	}
	return m, cmd
}

func (m selectModel) View() string {
	if m.done {
		return fmt.Sprintf("%s %s\n", m.styles.Title.Render(m.title+":"), m.styles.Answer.Render(m.items[m.chosen]))
	}
	if m.aborted {
		return m.styles.Title.Render(m.title+":") + " " + m.styles.Error.Render("aborted") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")
	if m.fuzzy {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}

	if len(m.matches) == 0 {
		b.WriteString(m.styles.Muted.Render("  no matches"))
		b.WriteString("\n")
	}

	start := 0
	if m.cursor >= maxVisibleRows {
		start = m.cursor - maxVisibleRows + 1
	}
	end := min(start+maxVisibleRows, len(m.matches))
	for i := start; i < end; i++ {
		label := m.items[m.matches[i]]
		if i == m.cursor {
			b.WriteString(m.styles.Cursor.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Hint.Render("↑/↓ move • enter select • ctrl+c quit"))
	b.WriteString("\n")
	return b.String()
}

// inputModel reads one line and re-asks until validate accepts it
type inputModel struct {
	title    string
	hint     string
	input    textinput.Model
	validate func(string) error

	errMsg  string
	value   string
	done    bool
	aborted bool
	styles  Styles
}

func newInputModel(title, hint string, validate func(string) error) inputModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 16
	ti.Focus()

	return inputModel{
		title:    title,
		hint:     hint,
		input:    ti,
		validate: validate,
		styles:   DefaultStyles(),
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			raw := m.input.Value()
			if err := m.validate(raw); err != nil {
				m.errMsg = err.Error()
				m.input.SetValue("")
				return m, nil
			}
			m.value = raw
			m.errMsg = ""
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	head := m.styles.Title.Render(m.title) + " " + m.styles.Hint.Render(m.hint)
	if m.done {
		shown := m.value
		if strings.TrimSpace(shown) == "" {
			shown = "default"
		}
		return head + " " + m.styles.Answer.Render(shown) + "\n"
	}
	if m.aborted {
		return head + " " + m.styles.Error.Render("aborted") + "\n"
	}

	var b strings.Builder
	b.WriteString(head)
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}

// confirmModel is a yes/no question answered by a single key
type confirmModel struct {
	title   string
	def     bool
	answer  bool
	done    bool
	aborted bool
	styles  Styles
}

func newConfirmModel(title string, def bool) confirmModel {
	return confirmModel{title: title, def: def, styles: DefaultStyles()}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.answer = m.def
		m.done = true
		return m, tea.Quit
	}

	switch strings.ToLower(key.String()) {
	case "y", "s":
		m.answer = true
		m.done = true
		return m, tea.Quit
	case "n":
		m.answer = false
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	choices := "[y/N]"
	if m.def {
		choices = "[Y/n]"
	}
	head := m.styles.Title.Render(m.title) + " " + m.styles.Hint.Render(choices)

	switch {
	case m.done && m.answer:
		return head + " " + m.styles.Answer.Render("yes") + "\n"
	case m.done:
		return head + " " + m.styles.Answer.Render("no") + "\n"
	case m.aborted:
		return head + " " + m.styles.Error.Render("aborted") + "\n"
	}
	return head + "\n"
}
