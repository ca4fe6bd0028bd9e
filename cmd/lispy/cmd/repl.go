package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/xiam/lispy"
	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/internal/config"
)

const continuationPrompt = "... "

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")
)

type replStyles struct {
	prompt   lipgloss.Style
	result   lipgloss.Style
	err      lipgloss.Style
	muted    lipgloss.Style
	header   lipgloss.Style
	helpKey  lipgloss.Style
	helpDesc lipgloss.Style
	border   lipgloss.Style
}

func newReplStyles(color bool) replStyles {
	s := replStyles{
		prompt:   lipgloss.NewStyle().Bold(true),
		result:   lipgloss.NewStyle(),
		err:      lipgloss.NewStyle(),
		muted:    lipgloss.NewStyle(),
		header:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
		helpKey:  lipgloss.NewStyle(),
		helpDesc: lipgloss.NewStyle(),
		border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
	if !color {
		return s
	}
	s.prompt = s.prompt.Foreground(accentColor)
	s.result = s.result.Foreground(successColor)
	s.err = s.err.Foreground(errorColor)
	s.muted = s.muted.Foreground(mutedColor)
	s.header = s.header.Foreground(accentColor)
	s.helpKey = s.helpKey.Foreground(highlightColor)
	s.helpDesc = s.helpDesc.Foreground(mutedColor)
	s.border = s.border.BorderForeground(accentColor)
	return s
}

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	textInput textinput.Model
	cfg       config.Config
	styles    replStyles

	// pending holds the lines of an expression that is not complete yet.
	pending []string

	history    []historyEntry
	cmdHistory []string
	historyIdx int

	width       int
	height      int
	showHelp    bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	CtrlC  key.Binding
	CtrlD  key.Binding
	CtrlL  key.Binding
	CtrlK  key.Binding
	Escape key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous input"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next input"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "read"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	CtrlK: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel pending input"),
	),
}

func newReplModel(cfg config.Config) replModel {
	styles := newReplStyles(cfg.Color)

	ti := textinput.New()
	ti.Placeholder = "type an expression..."
	ti.Focus()
	ti.CharLimit = 1000
	ti.Width = 60
	ti.PromptStyle = styles.prompt
	ti.Prompt = cfg.Prompt

	return replModel{
		textInput:  ti,
		cfg:        cfg,
		styles:     styles,
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlK):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Escape):
			m = m.cancelPending()
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			m.textInput.SetValue("")
			m.historyIdx = -1

			if input == "" && len(m.pending) == 0 {
				return m, nil
			}

			if strings.HasPrefix(input, ":") && len(m.pending) == 0 {
				return m.handleCommand(input)
			}

			if input != "" {
				m.cmdHistory = append(m.cmdHistory, input)
			}
			m = m.submit(input)
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// submit reads the pending lines plus input. Incomplete expressions are
// kept until more input arrives.
func (m replModel) submit(input string) replModel {
	lines := append(append([]string{}, m.pending...), input)
	src := strings.Join(lines, "\n")

	output, err := m.read(src)
	if lispy.IsIncomplete(err) && strings.TrimSpace(src) != "" {
		m.pending = lines
		m.textInput.Prompt = continuationPrompt
		return m
	}

	m.pending = nil
	m.textInput.Prompt = m.cfg.Prompt

	entry := historyEntry{input: src, output: output}
	if err != nil {
		entry.output = err.Error()
		entry.isErr = true
	}
	m.history = append(m.history, entry)
	return m
}

func (m replModel) cancelPending() replModel {
	if len(m.pending) == 0 {
		return m
	}
	m.history = append(m.history, historyEntry{
		input:  strings.Join(m.pending, "\n"),
		output: "input discarded",
		isErr:  true,
	})
	m.pending = nil
	m.textInput.Prompt = m.cfg.Prompt
	return m
}

func (m replModel) read(src string) (string, error) {
	r := lispy.NewReader(strings.NewReader(src)).SetOptions(m.cfg.ParserOptions())

	var exprs []ast.Expr
	if m.cfg.Mode == config.ModeAll {
		var err error
		if exprs, err = r.ReadAll(); err != nil {
			return "", err
		}
	} else {
		expr, err := r.Read()
		if err != nil {
			return "", err
		}
		exprs = []ast.Expr{expr}
	}

	var buf bytes.Buffer
	for _, expr := range exprs {
		writeExpr(&buf, m.cfg.Format, expr)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := parts[0]

	reply := func(output string, isErr bool) {
		m.history = append(m.history, historyEntry{input: input, output: output, isErr: isErr})
	}

	switch cmd {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = make([]historyEntry, 0)
	case ":mode", ":format":
		if len(parts) != 2 {
			reply(fmt.Sprintf("usage: %s <value>", cmd), true)
			break
		}
		next := m.cfg
		if cmd == ":mode" {
			next.Mode = parts[1]
		} else {
			next.Format = parts[1]
		}
		if err := next.Validate(); err != nil {
			reply(err.Error(), true)
			break
		}
		m.cfg = next
		reply(fmt.Sprintf("%s set to %s", strings.TrimPrefix(cmd, ":"), parts[1]), false)
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		reply(fmt.Sprintf("unknown command: %s", cmd), true)
	}
	return m, nil
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return m.styles.muted.Render("Bye!\n")
	}

	var b strings.Builder

	header := m.styles.header.Render("lispy")
	mode := m.styles.muted.Render(fmt.Sprintf("mode: %s, format: %s", m.cfg.Mode, m.cfg.Format))
	b.WriteString(header + " " + mode + "\n")
	b.WriteString(m.styles.muted.Render(strings.Repeat("─", max(min(m.width-2, 60), 0))) + "\n\n")

	reservedLines := 8 + len(m.pending)
	if m.showHelp {
		reservedLines += 12
	}
	availableHeight := m.height - reservedLines

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - max(availableHeight, 0)
	}

	for i := historyStart; i < len(m.history); i++ {
		entry := m.history[i]
		if entry.input != "" {
			b.WriteString(m.styles.muted.Render("  › ") + strings.ReplaceAll(entry.input, "\n", "\n    ") + "\n")
		}
		if entry.isErr {
			b.WriteString("  " + m.styles.err.Render("✗ "+entry.output) + "\n")
		} else {
			b.WriteString("  " + m.styles.result.Render("→ "+strings.ReplaceAll(entry.output, "\n", "\n    ")) + "\n")
		}
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(m.renderHelpPanel())
		b.WriteString("\n")
	}

	for i, line := range m.pending {
		prompt := continuationPrompt
		if i == 0 {
			prompt = m.cfg.Prompt
		}
		b.WriteString(m.styles.prompt.Render(prompt) + line + "\n")
	}
	b.WriteString(m.textInput.View() + "\n\n")

	footer := m.styles.helpKey.Render("ctrl+k") + m.styles.helpDesc.Render(" help  ") +
		m.styles.helpKey.Render("esc") + m.styles.helpDesc.Render(" cancel  ") +
		m.styles.helpKey.Render("ctrl+l") + m.styles.helpDesc.Render(" clear  ") +
		m.styles.helpKey.Render("ctrl+c") + m.styles.helpDesc.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func (m replModel) renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Navigate input history"},
		{"Enter", "Read expression"},
		{"Esc", "Discard an unfinished expression"},
		{":mode", "Set read mode: one or all"},
		{":format", "Set output format: sexpr or tree"},
		{":help", "Toggle this help"},
		{":clear", "Clear history"},
		{":quit", "Exit REPL"},
	}

	var lines []string
	lines = append(lines, m.styles.header.Render("Help"))
	for _, h := range help {
		line := fmt.Sprintf("  %s  %s",
			m.styles.helpKey.Render(fmt.Sprintf("%-8s", h.key)),
			m.styles.helpDesc.Render(h.desc))
		lines = append(lines, line)
	}

	return m.styles.border.Render(strings.Join(lines, "\n"))
}

func newReplCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive reader",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(newReplModel(*opts.cfg), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
