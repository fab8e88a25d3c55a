// Package ui renders list output and provides the TUI viewer.
package ui

import (
	"fmt"
	"strings"

	"github.com/mkoval/todo-cli/internal/todo"
)

// RenderList formats the filtered tasks as a table with a summary line.
// Returns "No todos found." when the filter matches nothing.
func RenderList(f *todo.File, filter todo.Filter) string {
	tasks := f.Filter(filter)
	if len(tasks) == 0 {
		return "No todos found.\n"
	}

	done, pending := f.Counts()

	var b strings.Builder
	summary := fmt.Sprintf("%s %d done, %d pending, %d total",
		headerStyle.Render("Todos:"), done, pending, len(f.Tasks))
	if filter != todo.FilterAll {
		summary += mutedStyle.Render(fmt.Sprintf("  (showing %s)", filter))
	}
	b.WriteString(summary + "\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-5s %-6s %-8s %-12s %s",
		"ID", "Done", "Priority", "Due", "Title")) + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("-", 60)) + "\n")

	for _, t := range tasks {
		b.WriteString(renderRow(&t) + "\n")
	}
	return b.String()
}

func renderRow(t *todo.Task) string {
	// Pad before styling so ANSI sequences don't skew the columns.
	box := fmt.Sprintf("%-6s", "[ ]")
	if t.Done {
		box = doneStyle.Render(fmt.Sprintf("%-6s", "[x]"))
	}
	pri := priorityStyle(string(t.Priority)).Render(fmt.Sprintf("%-8s", t.Priority))
	due := t.DueDate
	if due == "" {
		due = "-"
	}
	title := truncateTitle(t.Title, 80)
	if t.Done {
		title = mutedStyle.Render(title)
	}
	return fmt.Sprintf("%-5d %s %s %-12s %s", t.ID, box, pri, due, title)
}

// truncateTitle shortens long titles on rune boundaries so multibyte
// characters are never cut in half.
func truncateTitle(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
