package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/todolite/todolite/internal/domain"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	boxChecked   = "☑"
	boxUnchecked = "☐"
)

// renderHeader shows the list title with live done/pending counts.
func renderHeader(todos []domain.Todo) string {
	done, pending := stats(todos)
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		accentStyle.Render("Total"), len(todos),
	)
}

// renderItem draws a single todo line with its checkbox and cursor prefix.
func renderItem(todo domain.Todo, selected bool) string {
	box := mutedStyle.Render(boxUnchecked)
	text := todo.Text
	if todo.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}
	prefix := "  "
	if selected {
		prefix = selectedStyle.Render("> ")
	}
	return fmt.Sprintf("%s%s %s", prefix, box, text)
}

func renderList(todos []domain.Todo, cursor int) string {
	if len(todos) == 0 {
		return mutedStyle.Render("  nothing to do")
	}
	lines := make([]string, 0, len(todos))
	for i, t := range todos {
		lines = append(lines, renderItem(t, i == cursor))
	}
	return strings.Join(lines, "\n")
}

func renderHelp() string {
	return helpStyle.Render("space toggle • a add • d delete • q quit")
}

func panel(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}

func stats(todos []domain.Todo) (done, pending int) {
	for _, t := range todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
