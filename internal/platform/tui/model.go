package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickfall/internal/audio"
	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/games/breakout"
	"github.com/vovakirdan/brickfall/internal/storage"
)

// helpHeight is the number of rows reserved below the field.
const helpHeight = 1

// ModelOptions wire optional collaborators into a Model. Nil fields are skipped.
type ModelOptions struct {
	Store     *storage.Store
	Audio     *audio.Player
	Logger    *log.Logger
	HoldTicks int
	User      string
	// AllowBack lets "b" leave a finished or paused run (menu-driven sessions).
	AllowBack bool
}

// Model is the Bubble Tea model for running a breakout session.
type Model struct {
	game       *breakout.Game
	screen     *core.Screen
	store      *storage.Store
	audio      *audio.Player
	logger     *log.Logger
	user       string
	allowBack  bool
	config     core.RuntimeConfig
	hold       *KeyHold
	actions    map[core.Action]bool
	keyMapper  *KeyMapper
	keys       playKeyMap
	help       help.Model
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(game *breakout.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, fieldHeight(cfg.ScreenH)),
		store:     opts.Store,
		audio:     opts.Audio,
		logger:    logger,
		user:      opts.User,
		allowBack: opts.AllowBack,
		config:    cfg,
		hold:      NewKeyHold(opts.HoldTicks),
		actions:   make(map[core.Action]bool),
		keyMapper: NewKeyMapper(),
		keys:      newPlayKeyMap(game.Keys()),
		help:      h,
	}
}

func fieldHeight(h int) int {
	return max(h-helpHeight, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime())
	return tickCmd(m.config.TickRate)
}

func (m Model) runtime() core.RuntimeConfig {
	rc := m.config
	rc.ScreenH = fieldHeight(rc.ScreenH)
	return rc
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records key presses and platform actions for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.allowBack && msg.String() == "b" && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	action := m.keyMapper.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.actions[action] = true
		return m, nil
	}

	if code, ok := m.keyMapper.MapKeyCode(msg); ok {
		m.hold.Press(code)
	}
	return m, nil
}

// handleResize keeps the run going and only changes the viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, fieldHeight(msg.Height))
	m.game.Resize(msg.Width, fieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// Frame builds the input snapshot for the next tick.
func (m Model) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	m.hold.Fill(&frame)
	for a := range m.actions {
		frame.Set(a)
	}
	return frame
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.Frame()
	restarting := frame.Has(core.ActionRestart) && m.gameState.GameOver

	result := m.game.Step(frame)
	m.gameState = result.State

	if restarting {
		m.runSaved = false
		m.hold.Release()
	}

	if m.audio != nil {
		if n := m.game.CollisionEvents().Len(); n > 0 {
			m.audio.OnCollisions(n)
		}
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	clear(m.actions)
	m.hold.Advance()

	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the finished run. Failures are logged and play continues.
func (m Model) saveRun() {
	stats := m.game.Stats()
	m.logger.Info("run finished",
		"level", stats.LevelID,
		"score", stats.Score,
		"cleared", stats.Cleared,
		"ticks", stats.Ticks,
		"user", m.user,
	)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(RunRecord(stats)); err != nil {
		m.logger.Warn("could not save run", "level", stats.LevelID, "error", err)
	}
}

// RunRecord converts session counters to a storage row.
func RunRecord(s breakout.RunStats) storage.Run {
	return storage.Run{
		LevelID:         s.LevelID,
		Score:           s.Score,
		BricksDestroyed: s.BricksDestroyed,
		Collisions:      s.Collisions,
		Ticks:           s.Ticks,
		Cleared:         s.Cleared,
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// playKeyMap describes the in-game controls for the help line.
type playKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Serve   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func newPlayKeyMap(kb config.Keybindings) playKeyMap {
	return playKeyMap{
		Left:    bindingFor(kb.MoveLeft, "left"),
		Right:   bindingFor(kb.MoveRight, "right"),
		Serve:   bindingFor(kb.Serve, "serve"),
		Pause:   key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k playKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Serve, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k playKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Serve},
		{k.Pause, k.Restart, k.Quit},
	}
}

// bindingFor builds a help binding from bound key codes.
func bindingFor(codes []core.KeyCode, desc string) key.Binding {
	var keys, labels []string
	for _, c := range codes {
		for name, code := range keyNames {
			if code == c {
				keys = append(keys, name)
			}
		}
		labels = append(labels, shortName(c))
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(labels, "/"), desc))
}

func shortName(c core.KeyCode) string {
	switch c {
	case core.KeyArrowLeft:
		return "←"
	case core.KeyArrowRight:
		return "→"
	case core.KeyArrowUp:
		return "↑"
	case core.KeyArrowDown:
		return "↓"
	case core.KeySpace:
		return "space"
	case core.KeyComma:
		return ","
	case core.KeyPeriod:
		return "."
	}
	return strings.ToLower(strings.TrimPrefix(string(c), "Key"))
}

// Run starts the Bubble Tea program with the given session.
// Returns true if the player asked to go back to the level menu.
func Run(game *breakout.Game, cfg core.RuntimeConfig, opts ModelOptions) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
