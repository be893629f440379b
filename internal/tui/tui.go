package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/dungeon-mini/internal/engine"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateOver
)

type model struct {
	state     sessionState
	engine    *engine.Engine
	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	width     int
	height    int
	exitCode  int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

// NewModel wraps eng in a bubbletea model.
func NewModel(eng *engine.Engine) model {
	ti := textinput.New()
	ti.Placeholder = "What do you do? Try 'help'."
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	room := eng.State().CurrentRoom()
	m := model{
		state:     statePlaying,
		engine:    eng,
		textInput: ti,
		gameLog:   engine.Banner + "\n\n" + room.Describe() + "\n",
		viewport:  viewport.New(80, 20),
	}
	m.viewport.SetContent(m.renderLog())
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.state == stateOver {
				return m, tea.Quit
			}
			line := m.textInput.Value()
			m.textInput.Reset()
			if strings.TrimSpace(line) == "" {
				return m, nil
			}
			m = m.execute(line)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.logWidth()
		m.viewport.Height = msg.Height - 6
		m.viewport.SetContent(m.renderLog())
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// execute runs one command synchronously so the engine is only touched from
// the update loop.
func (m model) execute(line string) model {
	var buf bytes.Buffer
	m.engine.SetOutput(&buf)
	outcome := m.engine.Execute(context.Background(), line)

	m.gameLog += "\n" + userStyle.Render("> "+line) + "\n" + buf.String()
	if outcome.Terminal() {
		m.state = stateOver
		m.exitCode = outcome.ExitCode()
		m.textInput.Blur()
	}
	m.viewport.SetContent(m.renderLog())
	m.viewport.GotoBottom()
	return m
}

func (m model) View() string {
	var s string

	switch m.state {
	case statePlaying:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderState(),
		)
		help := helpStyle.Render("Type a command and press Enter. Esc quits.")
		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)

	case stateOver:
		s = lipgloss.JoinVertical(lipgloss.Left,
			m.viewport.View(),
			"\n"+helpStyle.Render(fmt.Sprintf("Game over. Final score: %d. Press Enter to quit.", m.engine.State().Score)),
		)
	}

	return "\n" + s + "\n"
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.75)
}

func (m model) renderState() string {
	state := m.engine.State()
	player := state.Player

	location := titleStyle.Render("LOCATION") + "\n" + state.Current + "\n\n"

	stats := titleStyle.Render("STATS") + "\n" +
		fmt.Sprintf("HP: %d\nAttack: %d\nScore: %d\n\n", player.HP, player.Attack, state.Score)

	inventory := titleStyle.Render("INVENTORY") + "\n"
	if len(player.Inventory) == 0 {
		inventory += "(empty)"
	} else {
		for _, item := range player.Inventory {
			inventory += "- " + item.Name() + "\n"
		}
	}

	stateWidth := int(float64(m.width) * 0.23)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(location + stats + inventory)
}

// renderLog colors error lines and wraps the rest to the log width.
func (m model) renderLog() string {
	lines := strings.Split(m.gameLog, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "Error: ") || strings.HasPrefix(line, "Unexpected error: ") {
			lines[i] = errorStyle.Render(line)
		}
	}
	width := m.logWidth()
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	return gameStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// Run plays the game full screen and returns the process exit code.
func Run(eng *engine.Engine) (int, error) {
	p := tea.NewProgram(NewModel(eng), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return 1, err
	}
	if m, ok := final.(model); ok {
		return m.exitCode, nil
	}
	return engine.ExitOK, nil
}
