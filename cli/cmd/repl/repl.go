package repl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dholmin/odin-mustache/log"
	"github.com/dholmin/odin-mustache/mustache"
)

const prompt = "➜ "

func helpMessage() string {
	return `
Commands:
  key=value   Set a top-level data key (value parsed as bool/number/string)
  unset key   Remove a top-level data key
  help        Print this message
  clear       Clear the screen
  quit        Exit the REPL

Press Tab to complete the last word with the best-matching data key or partial name.
Press Up/Down to navigate command history. Press Ctrl+C or Ctrl+D to exit.
`
}

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	outputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("4")).
			Padding(0, 1)
)

// model is the Bubble Tea model for the live-preview REPL.
type model struct {
	ctxFunc  func() context.Context
	input    textinput.Model
	template *mustache.Template
	partials map[string]string
	data     map[string]any
	logger   log.Logger

	history    *History
	historyIdx int

	output   string
	lastErr  error
	quitting bool
}

// New constructs a REPL model for tmpl rendered against an initial data map.
func New(
	ctxFunc func() context.Context,
	tmpl *mustache.Template,
	partials map[string]string,
	data map[string]any,
	historyPath string,
) *model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()

	if data == nil {
		data = make(map[string]any)
	}

	m := &model{
		ctxFunc:    ctxFunc,
		input:      ti,
		template:   tmpl,
		partials:   partials,
		data:       data,
		logger:     log.Default(),
		history:    NewHistory(historyPath),
		historyIdx: -1,
	}

	_ = m.history.Load()
	m.render()

	return m
}

// Run starts the REPL's event loop.
func Run(m *model) error {
	_, err := tea.NewProgram(m).Run()

	return err
}

func (m *model) Init() tea.Cmd { return textinput.Blink }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd

		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}

	switch keyMsg.Type { //nolint:exhaustive
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEnter:
		if strings.TrimSpace(m.input.Value()) == "quit" {
			m.quitting = true

			return m, tea.Quit
		}

		m.submit()

		return m, nil

	case tea.KeyTab:
		m.complete()

		return m, nil

	case tea.KeyUp:
		m.navigateHistory(1)

		return m, nil

	case tea.KeyDown:
		m.navigateHistory(-1)

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *model) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s%s\n\n", promptStyle.Render(prompt), inputStyle.Render(m.input.View()))
	b.WriteString(outputStyle.Render(m.output))
	b.WriteString("\n")

	if m.lastErr != nil {
		fmt.Fprintf(&b, "%s\n", errorStyle.Render(m.lastErr.Error()))
	}

	b.WriteString(hintStyle.Render("Tab: complete  Up/Down: history  help: commands  Ctrl+C: quit"))

	return b.String()
}

func (m *model) submit() {
	line := strings.TrimSpace(m.input.Value())

	m.input.SetValue("")
	m.historyIdx = -1

	if line == "" {
		return
	}

	_ = m.history.Append(line)

	switch {
	case line == "help":
		m.output = helpMessage()

		return
	case line == "clear":
		m.output = ""
		m.lastErr = nil

		return
	}

	if rest, ok := strings.CutPrefix(line, "unset "); ok {
		delete(m.data, strings.TrimSpace(rest))
		m.render()

		return
	}

	if key, value, ok := splitAssignment(line); ok {
		m.data[key] = parseScalar(value)
		m.render()

		return
	}

	m.lastErr = fmt.Errorf("unrecognized command %q (try \"help\")", line)
}

func (m *model) render() {
	out, err := m.template.Render(m.ctxFunc(), m.data, m.partials)
	m.lastErr = err
	m.output = out

	if err != nil {
		m.logger.ErrorContext(m.ctxFunc(), "render failed", slog.Any("error", err))
	}
}

func (m *model) complete() {
	word, start, end := wordBounds(m.input.Value(), len(m.input.Value()))

	candidates := dataKeyCandidates(m.data, m.partials)

	matches := matchCandidates(word, candidates)
	if len(matches) == 0 {
		return
	}

	replaced := m.input.Value()[:start] + matches[0].Str + m.input.Value()[end:]
	m.input.SetValue(replaced)
	m.input.SetCursor(start + len(matches[0].Str))
}

func (m *model) navigateHistory(delta int) {
	n := m.history.Len()
	if n == 0 {
		return
	}

	idx := m.historyIdx + delta
	if idx < 0 {
		idx = 0
	}

	if idx >= n {
		m.input.SetValue("")
		m.historyIdx = -1

		return
	}

	m.historyIdx = idx
	m.input.SetValue(m.history.At(n - 1 - idx))
	m.input.CursorEnd()
}

// parseScalar interprets value as a bool, int64, float64, or falls back to
// a plain string.
func parseScalar(value string) any {
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}

	return value
}
