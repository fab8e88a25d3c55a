package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkoval/todo-cli/internal/todo"
)

// RunTUI starts the read-only store viewer. The store file is reloaded on a
// timer so edits made by other invocations show up while the viewer is open.
func RunTUI(ctx context.Context, storePath string) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(storePath)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type tuiModel struct {
	storePath    string
	loadErr      error
	store        *todo.File
	filter       todo.Filter
	showHelp     bool
	tickInterval time.Duration
}

type tickMsg time.Time

func newTUIModel(storePath string) *tuiModel {
	return &tuiModel{
		storePath:    storePath,
		filter:       todo.FilterAll,
		tickInterval: time.Second,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "1":
			m.filter = todo.FilterPending
			return m, nil
		case "2":
			m.filter = todo.FilterDone
			return m, nil
		case "0":
			m.filter = todo.FilterAll
			return m, nil
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}

	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	writeTitle(&b)

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString("Error loading store file:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b, m.tickInterval)
		return b.String()
	}
	if m.store == nil {
		b.WriteString("Loading...\n\n")
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	if m.filter != todo.FilterAll {
		b.WriteString(fmt.Sprintf("Filter: %s (0 to clear)\n\n", m.filter))
	}

	writeOverview(&b, m.store)
	b.WriteString(RenderList(m.store, m.filter))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Store: "+m.storePath) + "\n")
	writeFooter(&b, m.tickInterval)
	return b.String()
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *tuiModel) refresh() {
	store, err := todo.Load(m.storePath)
	if err != nil {
		m.loadErr = err
		m.store = nil
		return
	}
	m.loadErr = nil
	m.store = store
}

func writeTitle(b *strings.Builder) {
	title := "todo-cli"
	b.WriteString(headerStyle.Render(title) + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeOverview(b *strings.Builder, f *todo.File) {
	done, pending := f.Counts()
	b.WriteString(fmt.Sprintf("Pending: %d  Done: %d  Total: %d\n\n", pending, done, len(f.Tasks)))
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  r, F5        Refresh now\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	b.WriteString("  1            Show pending todos\n")
	b.WriteString("  2            Show done todos\n")
	b.WriteString("  0            Show everything\n\n")
}

func writeFooter(b *strings.Builder, interval time.Duration) {
	b.WriteString(fmt.Sprintf("Press h for help | q to quit | Refreshing every %s\n", interval))
}

// IsTTY returns true if the writer is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
