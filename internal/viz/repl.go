package viz

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/opcalc/internal/calculator"
	"github.com/san-kum/opcalc/internal/ops"
)

const maxScrollback = 200

var errUsage = errors.New("usage: <operation> <value1> [value2]")

// REPL is a Bubble Tea model that executes one operation per input line.
// Scrollback lives only for the session.
type REPL struct {
	calc     *calculator.Calculator
	variant  string
	styles   Styles
	input    string
	lines    []string
	quitting bool
}

func NewREPL(calc *calculator.Calculator, variant string, styles Styles) REPL {
	return REPL{
		calc:    calc,
		variant: variant,
		styles:  styles,
	}
}

// RunREPL runs the REPL until the user quits.
func RunREPL(calc *calculator.Calculator, variant string, styles Styles) error {
	_, err := tea.NewProgram(NewREPL(calc, variant, styles)).Run()
	return err
}

func (m REPL) Init() tea.Cmd { return nil }

func (m REPL) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(key.Runes)
	}
	return m, nil
}

func (m REPL) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input)
	m.input = ""

	switch line {
	case "":
		return m, nil
	case "q", "quit", "exit":
		m.quitting = true
		return m, tea.Quit
	case "clear":
		m.lines = nil
		return m, nil
	case "ops":
		m.push(m.styles.Label.Render(strings.Join(m.calc.Operations(), ", ")))
		return m, nil
	}

	name, in, err := parseLine(line)
	if err != nil {
		m.push(m.styles.Error.Render(err.Error()))
		return m, nil
	}

	v, err := m.calc.Execute(name, in)
	if err != nil {
		m.push(m.styles.Failure(m.variant, err))
		return m, nil
	}
	m.push(m.styles.Result(m.variant, name, in, v))
	return m, nil
}

func (m *REPL) push(line string) {
	m.lines = append(m.lines, line)
	if len(m.lines) > maxScrollback {
		m.lines = m.lines[len(m.lines)-maxScrollback:]
	}
}

func (m REPL) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("opcalc · " + m.variant))
	b.WriteString("\n")
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Prompt.Render("> "))
	b.WriteString(m.styles.Input.Render(m.input))
	b.WriteString("█\n")
	b.WriteString(m.styles.Muted.Render("ops · clear · q to quit"))
	return b.String()
}

// parseLine splits "name v1 [v2]". A missing v2 is zero.
func parseLine(line string) (string, ops.Operands, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return "", ops.Operands{}, errUsage
	}

	var in ops.Operands
	var err error
	if in.Value1, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return "", ops.Operands{}, fmt.Errorf("value1: %w", err)
	}
	if len(fields) == 3 {
		if in.Value2, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return "", ops.Operands{}, fmt.Errorf("value2: %w", err)
		}
	}
	return fields[0], in, nil
}
