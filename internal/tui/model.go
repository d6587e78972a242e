// Package tui is a terminal front end for a numeric input session.
// It translates key presses into session calls and renders the display.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/govalues/numinput/resolve"
	"github.com/govalues/numinput/session"
)

// OpenFunc creates the session shown by the model.
type OpenFunc func(opts ...session.Option) (*session.Session, error)

// changeMsg carries a change reported by the session observer.
type changeMsg session.Change

// Model is the Bubbletea model of a single numeric field.
type Model struct {
	title   string
	session *session.Session
	changes chan session.Change

	keys keyMap
	help help.Model

	last      *session.Change
	count     int
	repeating bool
	width     int
}

// New opens a session and creates the model around it.
func New(title string, open OpenFunc) (Model, error) {
	changes := make(chan session.Change, 64)
	s, err := open(session.WithObserver(func(c session.Change) {
		select {
		case changes <- c:
		default:
		}
	}))
	if err != nil {
		return Model{}, err
	}
	return Model{
		title:   title,
		session: s,
		changes: changes,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}, nil
}

// Session returns the session driven by the model.
func (m Model) Session() *session.Session {
	return m.session
}

// Init starts listening for changes and focuses the field.
func (m Model) Init() tea.Cmd {
	m.session.Focus()
	return waitForChange(m.changes)
}

func waitForChange(ch <-chan session.Change) tea.Cmd {
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return changeMsg(c)
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case changeMsg:
		c := session.Change(msg)
		m.last = &c
		m.count++
		return m, waitForChange(m.changes)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session

	// Terminals report no key releases; any key ends a held step.
	if m.repeating {
		s.Release()
		m.repeating = false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		s.Blur()
		s.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		s.KeyDown(session.KeyUp, 0)
	case key.Matches(msg, m.keys.Down):
		s.KeyDown(session.KeyDown, 0)
	case key.Matches(msg, m.keys.FastUp):
		s.KeyDown(session.KeyUp, session.ModShift)
	case key.Matches(msg, m.keys.FastDown):
		s.KeyDown(session.KeyDown, session.ModShift)
	case key.Matches(msg, m.keys.FineUp):
		s.KeyDown(session.KeyUp, session.ModCtrl)
	case key.Matches(msg, m.keys.FineDown):
		s.KeyDown(session.KeyDown, session.ModCtrl)

	case key.Matches(msg, m.keys.HoldUp):
		s.Press(resolve.Up, resolve.Normal)
		m.repeating = true
	case key.Matches(msg, m.keys.HoldDown):
		s.Press(resolve.Down, resolve.Normal)
		m.repeating = true

	case key.Matches(msg, m.keys.Commit):
		s.KeyDown(session.KeyEnter, 0)
	case key.Matches(msg, m.keys.Focus):
		if s.State() == session.Editing {
			s.Blur()
		} else {
			s.Focus()
		}

	case key.Matches(msg, m.keys.Left):
		c := s.Cursor()
		s.Select(c-1, c-1)
	case key.Matches(msg, m.keys.Right):
		c := s.Cursor()
		s.Select(c+1, c+1)
	case key.Matches(msg, m.keys.Home):
		s.Select(0, 0)
	case key.Matches(msg, m.keys.End):
		n := len([]rune(s.Display()))
		s.Select(n, n)

	case key.Matches(msg, m.keys.Backspace):
		m.erase(session.KeyBackspace)
	case key.Matches(msg, m.keys.Delete):
		m.erase(session.KeyDelete)

	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		m.insert(msg.Runes)
	}
	return m, nil
}

// insert replaces the selection with typed runes.
func (m Model) insert(typed []rune) {
	s := m.session
	text := []rune(s.Display())
	start, end := s.Selection()

	next := make([]rune, 0, len(text)+len(typed))
	next = append(next, text[:start]...)
	next = append(next, typed...)
	next = append(next, text[end:]...)

	s.KeyDown(session.KeyChar, 0)
	s.Edit(string(next), -1)
}

// erase removes the selection, or one rune before or after the caret.
func (m Model) erase(k session.Key) {
	s := m.session
	text := []rune(s.Display())
	start, end := s.Selection()
	if start == end {
		switch {
		case k == session.KeyBackspace && start > 0:
			start--
		case k == session.KeyDelete && end < len(text):
			end++
		default:
			return
		}
	}

	next := make([]rune, 0, len(text))
	next = append(next, text[:start]...)
	next = append(next, text[end:]...)

	s.KeyDown(k, 0)
	s.Edit(string(next), -1)
}

// View renders the field, the last change and the help.
func (m Model) View() string {
	s := m.session
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n")

	field := FieldStyle
	if s.State() == session.Editing {
		field = FocusedFieldStyle
	}
	b.WriteString(field.Render(m.renderText()))
	b.WriteString("\n")

	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) renderText() string {
	s := m.session
	text := []rune(s.Display())
	if s.State() != session.Editing {
		return string(text)
	}

	start, end := s.Selection()
	if start == end {
		cursor := " "
		if end < len(text) {
			cursor = string(text[end])
			end++
		}
		return string(text[:start]) + CursorStyle.Render(cursor) + string(text[end:])
	}
	return string(text[:start]) + CursorStyle.Render(string(text[start:end])) + string(text[end:])
}

func (m Model) renderStatus() string {
	value := m.session.Value()
	line := fmt.Sprintf("value: %s", ValueStyle.Render(orNull(value.String())))
	if value.Clamped {
		line += MutedStyle.Render(" (clamped)")
	}
	if m.last != nil {
		c := *m.last
		payload := ValueStyle.Render(c.String())
		if c.Pending {
			payload = PendingStyle.Render(fmt.Sprintf("%q", c.Text))
		}
		line += MutedStyle.Render(fmt.Sprintf("  change #%d %s: ", m.count, c.Source)) + payload
	}
	return line
}

func orNull(s string) string {
	if s == "" {
		return "null"
	}
	return s
}
