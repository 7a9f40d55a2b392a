package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okarpov/cowherd/internal/config"
	"github.com/okarpov/cowherd/internal/sim"
	"github.com/okarpov/cowherd/internal/storage"
)

// How many ticks an event flash stays on screen.
const flashTicks = 90

// Options configures a game run.
type Options struct {
	Config   config.Config
	TickRate int
	Seed     int64 // 0 means derive from the current time
	Store    *storage.Store
}

// eventFeed collects transient messages raised by simulation events. It is
// held by pointer so the listener closure survives Bubble Tea's model
// copying; both ticks and the events they raise run on the program goroutine.
type eventFeed struct {
	flashes []flash
}

type flash struct {
	text string
	ttl  int
}

func (f *eventFeed) push(text string) {
	f.flashes = append(f.flashes, flash{text: text, ttl: flashTicks})
	if len(f.flashes) > 3 {
		f.flashes = f.flashes[len(f.flashes)-3:]
	}
}

func (f *eventFeed) age() {
	alive := f.flashes[:0]
	for _, fl := range f.flashes {
		fl.ttl--
		if fl.ttl > 0 {
			alive = append(alive, fl)
		}
	}
	f.flashes = alive
}

// Model is the Bubble Tea model driving one Cowherd session.
type Model struct {
	cfg     config.Config
	session *sim.Session
	clock   *sim.Clock
	screen  *Screen
	view    fieldView
	feed    *eventFeed
	store   *storage.Store

	tickRate   int
	seed       int64
	paused     bool
	quitting   bool
	scoreSaved bool
	highScore  int
}

// NewModel creates a model for the given options.
func NewModel(opts Options) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	session, err := sim.NewSession(opts.Config, opts.Seed)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		cfg:      opts.Config,
		session:  session,
		clock:    sim.NewClock(opts.TickRate),
		screen:   NewScreen(80, 24),
		view:     newFieldView(opts.Config.Field, 80, 24),
		feed:     &eventFeed{},
		store:    opts.Store,
		tickRate: opts.TickRate,
		seed:     opts.Seed,
	}
	session.SetListener(m.feed.listen)
	return m, nil
}

// listen translates simulation events into HUD flashes.
func (f *eventFeed) listen(ev sim.Event) {
	switch e := ev.(type) {
	case sim.CowMooedEvent:
		f.push("Moo!")
	case sim.SplashOccurredEvent:
		f.push("Splash! A cow is in the ditch!")
	case sim.CowRescuedEvent:
		f.push(fmt.Sprintf("Lassoed! +%d", e.Bonus))
	case sim.CowReachedSafetyEvent:
		f.push(fmt.Sprintf("Cow safe! +%d", e.Bonus))
	case sim.CowDrownedEvent:
		f.push(fmt.Sprintf("Lost a cow... %d lives left", e.LivesRemaining))
	case sim.GameOverEvent:
		f.push(fmt.Sprintf("Game over. Final score %d", e.FinalScore))
	}
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
		m.screen.Resize(msg.Width, msg.Height)
		m.view = newFieldView(m.cfg.Field, msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey maps keyboard input: arrows/WASD nudge the farmer, space throws
// the lasso at the farmer's feet, p pauses, r restarts after game over.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nudge := m.cfg.Field.Width / 20

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "p", "esc":
		if !m.session.GameOver() {
			m.paused = !m.paused
		}
	case "r":
		if m.session.GameOver() {
			return m.restart()
		}
	case "left", "a", "h":
		m.session.NudgeFarmer(-nudge, 0)
	case "right", "d", "l":
		m.session.NudgeFarmer(nudge, 0)
	case "up", "w", "k":
		m.session.NudgeFarmer(0, nudge)
	case "down", "s", "j":
		m.session.NudgeFarmer(0, -nudge)
	case " ":
		// A press-and-release at the farmer's own position: tries a lasso
		// rescue first, exactly like a pointer tap.
		snap := m.session.Snapshot()
		m.session.PointerDown(snap.Farmer.X, snap.Farmer.Y)
		m.session.PointerUp()
	}
	return m, nil
}

// handleMouse forwards pointer events into the simulation in field space.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := m.view.point(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.session.PointerDown(x, y)
		}
	case tea.MouseActionMotion:
		m.session.PointerMove(x, y)
	case tea.MouseActionRelease:
		m.session.PointerUp()
	}
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.tickRate)
	}

	m.session.Tick(m.clock.Step())
	m.feed.age()

	if m.session.GameOver() && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.tickRate)
}

// saveScore persists the final result, best effort, and fetches the stored
// high score for the game-over overlay.
func (m *Model) saveScore() {
	if m.store == nil {
		m.highScore = m.session.Score()
		return
	}
	//nolint:errcheck // Best-effort save, the overlay shows regardless
	m.store.SaveScore(m.session.Score(), m.session.Lives(), m.session.Elapsed())
	if high, err := m.store.HighScore(); err == nil {
		m.highScore = high
	}
}

// restart begins a fresh session with a new time-derived seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.seed = time.Now().UnixNano()
	session, err := sim.NewSession(m.cfg, m.seed)
	if err != nil {
		// The config validated at startup; a failure here cannot happen
		// short of memory corruption. Quit rather than render garbage.
		m.quitting = true
		return m, tea.Quit
	}
	m.session = session
	m.feed.flashes = nil
	session.SetListener(m.feed.listen)
	m.clock = sim.NewClock(m.tickRate)
	m.paused = false
	m.scoreSaved = false
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	m.view.draw(m.screen, snap)

	// Event flashes under the HUD.
	for i, fl := range m.feed.flashes {
		m.screen.DrawTextColored(1, 1+i, fl.text, ColorBrightYellow)
	}

	if m.paused {
		m.drawOverlay("PAUSED", "Press P to resume")
	}
	if snap.GameOver {
		m.drawOverlay("GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  R restart, Q quit", snap.Score, m.highScore))
	}

	return RenderScreen(m.screen)
}

// drawOverlay draws a centered two-line message box.
func (m Model) drawOverlay(title, subtitle string) {
	w := m.screen.Width()
	h := m.screen.Height()

	boxW := len(subtitle) + 4
	if len(title)+4 > boxW {
		boxW = len(title) + 4
	}
	boxX := (w - boxW) / 2
	boxY := h/2 - 2

	for y := boxY; y < boxY+5; y++ {
		m.screen.DrawHLine(boxX, y, boxW, ' ', ColorDefault)
	}
	m.screen.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, ColorBrightYellow)
	m.screen.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Run starts the Bubble Tea program for one local game.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Pointer input is the primary control
	)

	_, err = p.Run()
	return err
}
