package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/todolite/todolite/internal/domain"
)

const opTimeout = 10 * time.Second

// itemsMsg carries a fresh snapshot of the list after a load or mutation.
type itemsMsg []domain.Todo

// errMsg reports a failed store operation; the previous snapshot stays on screen.
type errMsg struct{ err error }

// Model mediates between key gestures and the store: every mutation goes
// through the store first and the list re-renders from the returned snapshot.
type Model struct {
	store domain.Store

	todos  []domain.Todo
	cursor int

	adding bool
	input  textinput.Model
	notice string

	errText string
}

func NewModel(store domain.Store) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New todo..."
	ti.CharLimit = 200
	return Model{store: store, input: ti}
}

func (m Model) Init() tea.Cmd { return m.loadCmd() }

func (m Model) loadCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		todos, err := store.List(ctx)
		if err != nil {
			return errMsg{err}
		}
		return itemsMsg(todos)
	}
}

func (m Model) addCmd(text string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		if _, err := store.Add(ctx, text); err != nil {
			return errMsg{err}
		}
		todos, err := store.List(ctx)
		if err != nil {
			return errMsg{err}
		}
		return itemsMsg(todos)
	}
}

func (m Model) toggleCmd(id int64) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		if err := store.Toggle(ctx, id); err != nil {
			return errMsg{err}
		}
		todos, err := store.List(ctx)
		if err != nil {
			return errMsg{err}
		}
		return itemsMsg(todos)
	}
}

func (m Model) removeCmd(id int64) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		if err := store.Remove(ctx, id); err != nil {
			return errMsg{err}
		}
		todos, err := store.List(ctx)
		if err != nil {
			return errMsg{err}
		}
		return itemsMsg(todos)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsMsg:
		m.todos = []domain.Todo(msg)
		m.errText = ""
		if m.cursor >= len(m.todos) {
			m.cursor = len(m.todos) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil
	case errMsg:
		m.errText = msg.err.Error()
		return m, nil
	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateBrowsing(msg)
	}
	if m.adding {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		if err := domain.ValidateText(text); err != nil {
			if errors.Is(err, domain.ErrEmptyText) {
				m.notice = "Todo text cannot be empty"
			} else {
				m.notice = err.Error()
			}
			return m, nil
		}
		m.adding = false
		m.notice = ""
		m.input.SetValue("")
		m.input.Blur()
		return m, m.addCmd(text)
	case "esc":
		m.adding = false
		m.notice = ""
		m.input.SetValue("")
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.todos)-1 {
			m.cursor++
		}
		return m, nil
	case " ":
		if m.cursor >= 0 && m.cursor < len(m.todos) {
			return m, m.toggleCmd(m.todos[m.cursor].ID)
		}
		return m, nil
	case "d":
		if m.cursor >= 0 && m.cursor < len(m.todos) {
			return m, m.removeCmd(m.todos[m.cursor].ID)
		}
		return m, nil
	case "a":
		m.adding = true
		m.notice = ""
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(renderHeader(m.todos))
	b.WriteString("\n\n")
	b.WriteString(renderList(m.todos, m.cursor))
	b.WriteString("\n")
	if m.adding {
		title := "Add new todo"
		if m.notice != "" {
			title += " — " + errorStyle.Render(m.notice)
		}
		b.WriteString("\n" + title + "\n" + m.input.View() + "\n")
	}
	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render("✖ "+m.errText) + "\n")
	}
	b.WriteString("\n" + renderHelp())
	return panel(b.String())
}

// Run starts the interactive list over the given store.
func Run(store domain.Store) error {
	p := tea.NewProgram(NewModel(store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
