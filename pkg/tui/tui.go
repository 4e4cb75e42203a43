// Package tui provides a terminal user interface for tonality
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/james-see/tonality/pkg/theory"
	"github.com/james-see/tonality/pkg/theory/chords"
	"github.com/james-see/tonality/pkg/theory/scales"
)

// Acid-inspired color scheme (303/acid aesthetic)
var (
	acidGreen  = lipgloss.Color("#39FF14")
	acidYellow = lipgloss.Color("#FFFF00")
	silverGray = lipgloss.Color("#C0C0C0")
	darkGray   = lipgloss.Color("#333333")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(acidGreen).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	menuStyle = lipgloss.NewStyle().
			Foreground(silverGray).
			PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(acidGreen).
			Bold(true).
			PaddingLeft(2)

	pitchStyle = lipgloss.NewStyle().
			Foreground(acidYellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(acidGreen).
			Padding(1, 2)
)

// State represents the current TUI state
type State int

const (
	StateMenu State = iota
	StateCatalog
	StateInput
	StateResult
)

// Mode is the kind of lookup the user picked from the menu
type Mode int

const (
	ModeScale Mode = iota
	ModeChord
	ModeSymbol
	ModeTranspose
)

// MenuItem represents a menu option
type MenuItem struct {
	Title       string
	Description string
	Mode        Mode
	Exit        bool
}

var menuItems = []MenuItem{
	{Title: "Scales", Description: "Spell a scale on a root pitch", Mode: ModeScale},
	{Title: "Chords", Description: "Spell a chord on a root pitch", Mode: ModeChord},
	{Title: "Chord symbol", Description: "Voice a symbol like Am7 or Em/G", Mode: ModeSymbol},
	{Title: "Transpose", Description: "Move a pitch by an interval", Mode: ModeTranspose},
	{Title: "Exit", Description: "Exit the application", Exit: true},
}

// Model represents the TUI model
type Model struct {
	state        State
	mode         Mode
	menuIndex    int
	catalogIndex int
	catalog      []string
	input        textinput.Model
	result       string
	err          error
	width        int
	height       int
}

// New creates a new TUI model
func New() Model {
	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 20

	return Model{
		state: StateMenu,
		input: ti,
	}
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateCatalog:
			return m.updateCatalog(msg)
		case StateInput:
			return m.updateInput(msg)
		case StateResult:
			return m.updateResult(msg)
		}
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case "enter":
		item := menuItems[m.menuIndex]
		if item.Exit {
			return m, tea.Quit
		}
		m.mode = item.Mode
		switch item.Mode {
		case ModeScale:
			m.catalog = scales.Names()
			m.catalogIndex = 0
			m.state = StateCatalog
		case ModeChord:
			m.catalog = chords.Names()
			m.catalogIndex = 0
			m.state = StateCatalog
		case ModeSymbol:
			return m.enterInput("Am7")
		case ModeTranspose:
			return m.enterInput("C4 P5")
		}
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.catalogIndex > 0 {
			m.catalogIndex--
		}
	case "down", "j":
		if m.catalogIndex < len(m.catalog)-1 {
			m.catalogIndex++
		}
	case "enter":
		return m.enterInput("C4")
	case "esc":
		m.state = StateMenu
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) enterInput(placeholder string) (tea.Model, tea.Cmd) {
	m.state = StateInput
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.result, m.err = m.evaluate(strings.TrimSpace(m.input.Value()))
		m.input.Blur()
		m.state = StateResult
		return m, nil
	case "esc":
		m.input.Blur()
		m.state = StateMenu
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.state = StateMenu
		m.result = ""
		m.err = nil
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// evaluate turns the user's input into a rendered result line
func (m Model) evaluate(input string) (string, error) {
	if input == "" {
		input = m.input.Placeholder
	}

	switch m.mode {
	case ModeScale:
		root, err := theory.ParsePitch(input)
		if err != nil {
			return "", err
		}
		name := m.catalog[m.catalogIndex]
		if ds, ok := scales.DirectionalByName(name); ok {
			asc, err := ds.AscendingPitches(root)
			if err != nil {
				return "", err
			}
			desc, err := ds.DescendingPitches(root)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("↑ %s\n↓ %s", joinPitches(asc), joinPitches(desc)), nil
		}
		s, _ := scales.ByName(name)
		pitches, err := s.Pitches(root)
		if err != nil {
			return "", err
		}
		return joinPitches(pitches), nil

	case ModeChord:
		root, err := theory.ParsePitch(input)
		if err != nil {
			return "", err
		}
		ch, _ := chords.ByName(m.catalog[m.catalogIndex])
		pitches, err := ch.Pitches(root)
		if err != nil {
			return "", err
		}
		return joinPitches(pitches), nil

	case ModeSymbol:
		sym, err := chords.ParseSymbol(input)
		if err != nil {
			return "", err
		}
		pitches, err := sym.Voicing(4)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s: %s", sym.Chord().Name(), joinPitches(pitches)), nil

	case ModeTranspose:
		fields := strings.Fields(input)
		if len(fields) != 2 {
			return "", fmt.Errorf("expected a pitch and an interval, e.g. %q", "C4 P5")
		}
		pitch, err := theory.ParsePitch(fields[0])
		if err != nil {
			return "", err
		}
		by, err := theory.ParseInterval(fields[1])
		if err != nil {
			return "", err
		}
		result, err := pitch.Transpose(by)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s + %s = %s", pitch, by, result), nil
	}

	return "", fmt.Errorf("nothing to do")
}

func joinPitches(pitches []theory.Pitch) string {
	names := make([]string, len(pitches))
	for i, p := range pitches {
		names[i] = p.String()
	}
	return strings.Join(names, " ")
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(asciiLogo())
	s.WriteString("\n")

	switch m.state {
	case StateMenu:
		s.WriteString(m.viewMenu())
	case StateCatalog:
		s.WriteString(m.viewCatalog())
	case StateInput:
		s.WriteString(m.viewInput())
	case StateResult:
		s.WriteString(m.viewResult())
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("↑/↓: navigate • enter: select • q: quit"))

	return s.String()
}

func (m Model) viewMenu() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" WHAT DO YOU WANT TO SPELL? "))
	s.WriteString("\n\n")

	for i, item := range menuItems {
		if i == m.menuIndex {
			s.WriteString(selectedStyle.Render(fmt.Sprintf("▸ %s", item.Title)))
			s.WriteString("\n")
			s.WriteString(lipgloss.NewStyle().Foreground(acidYellow).PaddingLeft(4).Render(item.Description))
		} else {
			s.WriteString(menuStyle.Render(fmt.Sprintf("  %s", item.Title)))
		}
		s.WriteString("\n")
	}

	return boxStyle.Render(s.String())
}

func (m Model) viewCatalog() string {
	var s strings.Builder

	title := " SELECT SCALE "
	if m.mode == ModeChord {
		title = " SELECT CHORD "
	}
	s.WriteString(titleStyle.Render(title))
	s.WriteString("\n\n")

	for i, name := range m.catalog {
		if i == m.catalogIndex {
			s.WriteString(selectedStyle.Render(fmt.Sprintf("▸ %s", name)))
		} else {
			s.WriteString(menuStyle.Render(fmt.Sprintf("  %s", name)))
		}
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("esc: back to menu"))

	return boxStyle.Render(s.String())
}

func (m Model) viewInput() string {
	var s strings.Builder

	switch m.mode {
	case ModeScale, ModeChord:
		s.WriteString(titleStyle.Render(" ROOT PITCH "))
	case ModeSymbol:
		s.WriteString(titleStyle.Render(" CHORD SYMBOL "))
	case ModeTranspose:
		s.WriteString(titleStyle.Render(" PITCH AND INTERVAL "))
	}
	s.WriteString("\n\n")
	s.WriteString(m.input.View())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("enter: spell • esc: back to menu"))

	return boxStyle.Render(s.String())
}

func (m Model) viewResult() string {
	var s strings.Builder

	if m.err != nil {
		s.WriteString(titleStyle.Render(" ERROR "))
		s.WriteString("\n\n")
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s", m.err.Error())))
	} else {
		s.WriteString(titleStyle.Render(" RESULT "))
		s.WriteString("\n\n")
		s.WriteString(pitchStyle.Render(m.result))
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Press enter to continue"))

	return boxStyle.Render(s.String())
}

func asciiLogo() string {
	logo := `
   _____ ___  _   _    _    _     ___ _____ __   __
  |_   _/ _ \| \ | |  / \  | |   |_ _|_   _|\ \ / /
    | || | | |  \| | / _ \ | |    | |  | |   \ V /
    | || |_| | |\  |/ ___ \| |___ | |  | |    | |
    |_| \___/|_| \_/_/   \_\_____|___| |_|    |_|
`
	return lipgloss.NewStyle().Foreground(acidGreen).Render(logo)
}

// Run starts the TUI application
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
