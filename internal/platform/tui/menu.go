package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ski-runner/internal/config"
	"github.com/vovakirdan/ski-runner/internal/core"
	"github.com/vovakirdan/ski-runner/internal/storage"
)

// LauncherChoice is what the player picked in the launcher.
type LauncherChoice int

const (
	ChoiceNone LauncherChoice = iota
	ChoicePlay
	ChoiceScoreboard
	ChoiceQuit
)

// launcherPresets are cycled with left/right on the difficulty row.
var launcherPresets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

const (
	rowPlay = iota
	rowDifficulty
	rowScores
	rowQuit
	rowCount
)

var (
	launcherTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ec4899"))
	launcherHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the launcher shown before a run.
type MenuModel struct {
	cursor    int
	preset    int
	width     int
	height    int
	highScore int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    LauncherChoice
}

// NewMenuModel creates a new launcher model. The high score is read once.
func NewMenuModel(store *storage.Store, gameID string, preset config.DifficultyPreset, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		preset:    1,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	for i, p := range launcherPresets {
		if p == preset {
			m.preset = i
		}
	}

	if store != nil {
		if high, err := store.HighScore(gameID); err == nil {
			m.highScore = high
		}
	}

	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < rowCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.cursor == rowDifficulty {
			m.preset = (m.preset + len(launcherPresets) - 1) % len(launcherPresets)
		}

	case MenuActionRight:
		if m.cursor == rowDifficulty {
			m.preset = (m.preset + 1) % len(launcherPresets)
		}

	case MenuActionScoreboard:
		m.choice = ChoiceScoreboard
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case rowPlay, rowDifficulty:
			m.choice = ChoicePlay
		case rowScores:
			m.choice = ChoiceScoreboard
		case rowQuit:
			m.choice = ChoiceQuit
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == ChoiceQuit {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(launcherTitleStyle.Render("  S K I   R U N N E R  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("High score: %d", m.highScore), m.width))
	b.WriteString("\n\n")

	rows := []string{
		"Play",
		fmt.Sprintf("Difficulty: < %s >", launcherPresets[m.preset]),
		"Scoreboard",
		"Quit",
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(launcherHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, ChoiceNone while undecided.
func (m MenuModel) Choice() LauncherChoice {
	return m.choice
}

// Preset returns the selected difficulty preset.
func (m MenuModel) Preset() config.DifficultyPreset {
	return launcherPresets[m.preset]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the launcher.
type MenuResult struct {
	Choice LauncherChoice
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
}

// RunMenu runs the launcher and returns the selection result.
func RunMenu(store *storage.Store, gameID string, preset config.DifficultyPreset, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, gameID, preset, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{
		Choice: m.Choice(),
		Preset: m.Preset(),
		Config: m.Config(),
	}, nil
}
