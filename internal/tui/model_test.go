package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/govalues/numinput/resolve"
	"github.com/govalues/numinput/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := New("Amount", func(opts ...session.Option) (*session.Session, error) {
		return session.New(resolve.New(resolve.WithMin(0), resolve.WithMax(10)), nil, opts...), nil
	})
	require.NoError(t, err)
	t.Cleanup(m.Session().Close)
	require.NotNil(t, m.Init())
	return m
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelTyping(t *testing.T) {
	m := newTestModel(t)
	s := m.Session()
	require.Equal(t, session.Editing, s.State())

	m = send(m, runes("1"), runes("5"), runes("."))
	require.Equal(t, "15.", s.Display())
	require.Equal(t, 3, s.Cursor())

	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, 2, s.Cursor())
	m = send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "1.", s.Display())
	require.Equal(t, 1, s.Cursor())

	m = send(m, tea.KeyMsg{Type: tea.KeyHome}, tea.KeyMsg{Type: tea.KeyDelete})
	require.Equal(t, ".", s.Display())
	m = send(m, runes("7"))
	require.Equal(t, "7.", s.Display())

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, session.Idle, s.State())
	require.Equal(t, "7", s.Display())
	require.Equal(t, "7", s.Value().String())
	require.Contains(t, m.View(), "Amount")
}

func TestModelStepping(t *testing.T) {
	m := newTestModel(t)
	s := m.Session()

	m = send(m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "1", s.Display())
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlUp})
	require.Equal(t, "1.1", s.Display())
	m = send(m, tea.KeyMsg{Type: tea.KeyShiftUp})
	require.Equal(t, "10", s.Display())
	require.True(t, s.Value().Clamped)

	m = send(m, tea.KeyMsg{Type: tea.KeyPgDown})
	require.True(t, m.repeating)
	require.Equal(t, "9", s.Display())
	m = send(m, tea.KeyMsg{Type: tea.KeyEnd})
	require.False(t, m.repeating)
}

func TestModelChanges(t *testing.T) {
	m := newTestModel(t)
	m = send(m, runes("3"))

	msg := waitForChange(m.changes)()
	require.IsType(t, changeMsg{}, msg)
	m = send(m, msg)
	require.Equal(t, 1, m.count)
	require.Equal(t, "3", m.last.String())
	require.Contains(t, m.View(), "change #1 edit")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.False(t, m.Session().Focus())
}

func TestModelOpenError(t *testing.T) {
	want := errors.New("no session")
	_, err := New("Amount", func(...session.Option) (*session.Session, error) {
		return nil, want
	})
	require.ErrorIs(t, err, want)
}
