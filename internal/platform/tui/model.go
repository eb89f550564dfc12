package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tunehunt/internal/content"
	"github.com/vovakirdan/tunehunt/internal/core"
	"github.com/vovakirdan/tunehunt/internal/engine"
)

// World pixels per terminal cell. Cells are about twice as tall as wide.
const (
	cellW = 8
	cellH = 16
)

// hudRows is the number of rows above the play field.
const hudRows = 2

// flashTTL is how long a hit or miss marker stays on screen.
const flashTTL = 400 * time.Millisecond

// Options configures a game screen.
type Options struct {
	Settings engine.Settings
	Pool     *content.Pool
	TickRate int
	Seed     int64

	// Width and Height are the terminal size in cells. Zero derives them
	// from the settings viewport.
	Width, Height int

	// Sink receives every session event in addition to the screen, e.g. sound.
	Sink engine.Sink
	// Clock defaults to the system clock.
	Clock engine.Clock
	// Logger must not write to the terminal being drawn on. Nil discards.
	Logger *log.Logger

	ScreenshotDir string
}

type flash struct {
	effect engine.Effect
	x, y   float64
	at     time.Time
}

// flashes keeps recent effect markers for drawing.
type flashes struct {
	clock engine.Clock
	items []flash
}

func (f *flashes) Emit(e engine.Event) {
	if ev, ok := e.(engine.EffectRequested); ok {
		f.items = append(f.items, flash{effect: ev.Effect, x: ev.X, y: ev.Y, at: f.clock.Now()})
	}
}

func (f *flashes) prune(now time.Time) {
	n := 0
	for _, it := range f.items {
		if now.Sub(it.at) < flashTTL {
			f.items[n] = it
			n++
		}
	}
	f.items = f.items[:n]
}

// Model is the Bubble Tea model for one player's game screen.
type Model struct {
	session  *engine.Session
	pool     *content.Pool
	clock    engine.Clock
	screen   *core.Screen
	flashes  *flashes
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	tickRate int

	width, height int
	screenshotDir string
	lastShot      string
	quitting      bool
}

// NewModel creates a game screen with its own session.
func NewModel(opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Clock == nil {
		opts.Clock = engine.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Pool == nil {
		opts.Pool = content.NewDefaultPool()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width = int(opts.Settings.Viewport.W / cellW)
		opts.Height = int(opts.Settings.Viewport.H/cellH) + hudRows + 1
	}

	fl := &flashes{clock: opts.Clock}
	sink := engine.MultiSink{fl, engine.LogSink{Logger: opts.Logger}}
	if opts.Sink != nil {
		sink = append(sink, opts.Sink)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		session:       engine.NewSession(opts.Settings, opts.Pool, sink, rand.New(rand.NewSource(opts.Seed))),
		pool:          opts.Pool,
		clock:         opts.Clock,
		screen:        core.NewScreen(opts.Width, opts.Height),
		flashes:       fl,
		keys:          DefaultKeyMap(),
		help:          h,
		logger:        opts.Logger,
		tickRate:      opts.TickRate,
		screenshotDir: opts.ScreenshotDir,
	}
	m.layout(opts.Width, opts.Height)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		now := m.clock.Now()
		m.session.Tick(now)
		m.flashes.prune(now)
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// layout resizes the screen and fits the play field to it.
func (m *Model) layout(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	rows := max(1, height-m.footerHeight())
	m.screen.Resize(width, rows)

	fieldRows := max(1, rows-hudRows)
	m.session.SetViewport(core.NewRect(0, 0, float64(width*cellW), float64(fieldRows*cellH)))
}

func (m Model) footerHeight() int {
	return lipgloss.Height(m.help.View(m.keys))
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	running := m.session.State() == engine.Running

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Stop()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout(m.width, m.height)

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Theme):
		next := content.Themed
		if m.pool.ThemeVariant() == content.Themed {
			next = content.Standard
		}
		m.pool.SetThemeVariant(next)

	case running && key.Matches(msg, m.keys.Stop):
		m.session.Stop()

	case running:
		// Mode and start keys wait for the round to end.

	case key.Matches(msg, m.keys.Start):
		m.flashes.items = m.flashes.items[:0]
		if err := m.session.Start(m.clock.Now()); err != nil {
			m.logger.Warn("could not start round", "error", err)
		}

	case key.Matches(msg, m.keys.NextMode):
		//nolint:errcheck // Only rejected while running
		m.session.SetMode(m.session.Settings().Mode.Next())

	case key.Matches(msg, m.keys.PrevMode):
		mode := m.session.Settings().Mode
		for range len(engine.Modes) - 1 {
			mode = mode.Next()
		}
		//nolint:errcheck // Only rejected while running
		m.session.SetMode(mode)
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.session.State() != engine.Running {
		return m, nil
	}

	x, y, ok := m.toWorld(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	if id, hit := m.session.ClickAt(x, y); hit {
		m.logger.Debug("target clicked", "id", id)
	}
	return m, nil
}

// toWorld maps a terminal cell to the world point at its centre.
func (m Model) toWorld(col, row int) (float64, float64, bool) {
	if row < hudRows {
		return 0, 0, false
	}
	return (float64(col) + 0.5) * cellW, (float64(row-hudRows) + 0.5) * cellH, true
}

// toCell maps a world point to fractional cell coordinates.
func toCell(x, y float64) (float64, float64) {
	return x / cellW, y/cellH + hudRows
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// draw paints the session onto the screen buffer.
func (m Model) draw() {
	m.screen.Clear()

	switch m.session.State() {
	case engine.Running:
		m.drawField()
	case engine.Ended:
		score := m.session.Score()
		drawMenu(m.screen, hudRows, m.session.Settings().Mode, m.pool.ThemeVariant(), &score, m.session.HighScore())
	default:
		drawMenu(m.screen, hudRows, m.session.Settings().Mode, m.pool.ThemeVariant(), nil, m.session.HighScore())
	}

	// The HUD goes last so off-field targets never cover it.
	m.drawHUD()
}

func (m Model) drawField() {
	settings := m.session.Settings()
	color := modeColors[settings.Mode]

	for _, v := range m.session.Entities() {
		c := v.Center()
		cx, cy := toCell(c.X, c.Y)
		rx, ry := v.Width/2/cellW, v.Height/2/cellH
		m.screen.DrawEllipse(cx, cy, rx, ry, '░', color)

		// Smaller fonts get fewer characters.
		chars := int(2 * rx)
		if settings.InitialFontSize > 0 {
			chars = int(2 * rx * min(1, v.FontSize/settings.InitialFontSize))
		}
		label := truncate(v.Name, max(1, chars-1))
		m.screen.DrawTextColored(int(cx)-len([]rune(label))/2, int(cy), label, core.ColorWhite)
	}

	if f := m.session.Follower(); f.Visible {
		x, y := toCell(f.X, f.Y)
		m.screen.DrawTextColored(int(x), int(y), "<=≡=", core.ColorYellow)
	}

	for _, fl := range m.flashes.items {
		x, y := toCell(fl.x, fl.y)
		text, c := "x", core.ColorGray
		switch fl.effect {
		case engine.EffectHit:
			text, c = "+2", core.ColorGreen
		case engine.EffectFakeHit:
			text, c = "-1", core.ColorRed
		}
		m.screen.DrawTextColored(int(x), int(y), text, c)
	}
}

func (m Model) drawHUD() {
	for x := range m.screen.Width() {
		m.screen.Set(x, 0, ' ')
		m.screen.SetColored(x, 1, '─', core.ColorGray)
	}

	title := "♪ TuneHunt"
	m.screen.DrawTextColored(0, 0, title, core.ColorMagenta)

	sc := m.session.Score()
	stats := fmt.Sprintf("  %d pts  %d hit  %d miss  %.0f%%  best %d  %.1fs  %s/%s",
		sc.Points, sc.Hits, sc.Missed, sc.Accuracy(), m.session.HighScore(),
		m.session.Remaining().Seconds(), m.session.Settings().Mode, m.pool.ThemeVariant())
	m.screen.DrawText(len([]rune(title)), 0, stats)

	if m.lastShot != "" {
		m.screen.DrawTextColored(0, 1, truncate(" saved "+m.lastShot+" ", m.screen.Width()), core.ColorGray)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".tunehunt", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("tunehunt_%s_%s.txt", m.session.Settings().Mode, m.clock.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.lastShot = path
}

// Session returns the session driven by this screen.
func (m Model) Session() *engine.Session { return m.session }

// Screen returns the screen buffer as of the last View.
func (m Model) Screen() *core.Screen { return m.screen }

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool { return m.quitting }

// Run starts the Bubble Tea program with a new game screen.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
