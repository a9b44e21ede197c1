package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/ski-runner/internal/core"
	"github.com/vovakirdan/ski-runner/internal/registry"
	"github.com/vovakirdan/ski-runner/internal/storage"
)

// damageCue rings the terminal bell.
const damageCue = "damage"

// Options tunes a game model beyond the runtime config.
type Options struct {
	Logger *log.Logger // nil discards log output
	Player string      // recorded with every finished run
	Bell   io.Writer   // receives "\a" when the skier is hurt; nil is silent
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	player     string
	bell       io.Writer
	lastTick   time.Time
	quitting   bool

	// current run
	running  bool
	runSeq   int
	runID    string
	runStart time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		logger:     logger.With("game", game.ID()),
		player:     opts.Player,
		bell:       opts.Bell,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game ready", "seed", m.config.Seed, "tick_rate", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		if m.running {
			m.logger.Info("run abandoned", "run", m.runID, "reason", "quit")
		}
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
// The game draws into whatever screen it gets, so a run survives resizes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.Delta = frameDelta(m.lastTick, now)
	m.lastTick = now

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.trackRun(now)

	// Clear input for next frame
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.bell != nil && slices.Contains(result.Cues, damageCue) {
		cmds = append(cmds, ringBell(m.bell))
	}
	return m, tea.Batch(cmds...)
}

// trackRun follows run boundaries reported by the game and persists each
// finished run once.
func (m *Model) trackRun(now time.Time) {
	st := m.gameState

	if st.Run != m.runSeq {
		if m.running {
			m.logger.Info("run abandoned", "run", m.runID, "reason", "restart")
			m.running = false
		}
		m.runSeq = st.Run
	}

	switch {
	case st.GameOver:
		if m.running {
			m.finishRun(now)
		}

	case st.InRun && !m.running:
		m.running = true
		m.runID = uuid.NewString()
		m.runStart = now
		m.logger.Info("run started", "run", m.runID, "player", m.player)

	case !st.InRun && m.running:
		m.logger.Info("run abandoned", "run", m.runID, "reason", "menu")
		m.running = false
	}
}

func (m *Model) finishRun(now time.Time) {
	m.running = false
	st := m.gameState

	outcome := storage.OutcomeGameOver
	if st.Victory {
		outcome = storage.OutcomeVictory
	}
	duration := now.Sub(m.runStart)

	m.logger.Info("run finished",
		"run", m.runID,
		"outcome", outcome,
		"score", st.Score,
		"distance", st.Distance,
		"years", st.Years,
		"duration", duration.Round(time.Second),
	)

	if m.store == nil {
		return
	}

	if st.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), st.Score); err != nil {
			m.logger.Warn("cannot save score", "err", err)
		}
	}

	_, err := m.store.SaveRun(storage.RunRecord{
		RunID:        m.runID,
		GameID:       m.game.ID(),
		Player:       m.player,
		Score:        st.Score,
		Distance:     st.Distance,
		Years:        st.Years,
		Outcome:      outcome,
		DurationSecs: int(duration.Seconds()),
	})
	if err != nil {
		m.logger.Warn("cannot save run", "run", m.runID, "err", err)
	}
}

func ringBell(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		//nolint:errcheck // The bell is cosmetic
		io.WriteString(w, "\a")
		return nil
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".skirun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
