package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pongworks/neonpong/internal/core"
	"github.com/pongworks/neonpong/internal/pong"
	"github.com/pongworks/neonpong/internal/storage"
)

// Options configures the TUI host.
type Options struct {
	Runtime    core.RuntimeConfig
	Difficulty string
	TwoPlayer  bool
	Store      *storage.Store // nil disables score persistence
}

// Model is the Bubble Tea model hosting the simulation. It owns the frame
// loop and the screen buffer; all game state lives inside pong.Game and is
// only observed through snapshots.
type Model struct {
	game     *pong.Game
	screen   *core.Screen
	opts     Options
	keymap   KeyMapper
	input    core.InputFrame
	canvasH  float64
	paused   bool
	quitting bool

	lastTick     time.Time
	tickInterval time.Duration

	// drag state, one sample per paddle side
	lastMouseY int
	dragging   bool

	// victory name entry
	nameInput    textinput.Model
	enteringName bool
	scoreSaved   bool
	saveErr      error
}

// NewModel creates the host model. The game must already be configured;
// Reset is called here so the first frame is playable.
func NewModel(game *pong.Game, opts Options) *Model {
	ni := textinput.New()
	ni.Placeholder = "your name"
	ni.CharLimit = 16
	ni.Width = 20

	game.Reset(opts.Runtime)

	return &Model{
		game:         game,
		screen:       core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:         opts,
		canvasH:      game.Snapshot().CanvasH,
		keymap:       KeyMapper{TwoPlayer: opts.TwoPlayer},
		input:        core.NewInputFrame(),
		tickInterval: time.Second / time.Duration(opts.Runtime.TickRate),
		nameInput:    ni,
	}
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles input, window, and tick messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.enteringName {
		switch msg.String() {
		case "enter":
			m.finishNameEntry()
			return m, nil
		case "ctrl+c", "esc":
			// skip saving; mark the match handled so the prompt
			// does not reopen on the next tick
			m.enteringName = false
			m.scoreSaved = true
			return m, nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	action, isQuit := m.keymap.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		m.paused = !m.paused
		if !m.paused {
			// resume the tick loop that pausing let lapse
			m.lastTick = time.Time{}
			return m, tickCmd(m.opts.Runtime.TickRate)
		}
		return m, nil
	case core.ActionNone:
		return m, nil
	}

	if action == core.ActionReset {
		m.scoreSaved = false
		m.saveErr = nil
	}
	m.input.Set(action)
	return m, nil
}

// handleMouse converts vertical pointer motion while the left button is
// held into paddle drag deltas, scaled from screen cells to canvas units.
// The half of the screen the pointer is on selects the paddle.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.dragging = true
			m.lastMouseY = msg.Y
		}
	case tea.MouseActionRelease:
		m.dragging = false
	case tea.MouseActionMotion:
		if !m.dragging {
			return
		}
		dy := msg.Y - m.lastMouseY
		m.lastMouseY = msg.Y
		if dy == 0 {
			return
		}

		fieldH := m.screen.Height() - 1
		if fieldH < 1 {
			return
		}
		scale := m.canvasH / float64(fieldH)
		delta := float64(dy) * scale

		onLeft := msg.X < m.screen.Width()/2
		if onLeft || !m.opts.TwoPlayer {
			m.input.LeftDrag.Active = true
			m.input.LeftDrag.DeltaY += delta
		} else {
			m.input.RightDrag.Active = true
			m.input.RightDrag.DeltaY += delta
		}
	}
}

func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if m.paused {
		// do not reschedule; unpausing restarts the loop
		return m, nil
	}

	// Drop ticks that arrive far too early (terminal resize storms,
	// command queue bursts) so the simulation stays fixed-step.
	if !m.lastTick.IsZero() && now.Sub(m.lastTick) < m.tickInterval/2 {
		return m, tickCmd(m.opts.Runtime.TickRate)
	}
	m.lastTick = now

	m.game.Step(m.input)
	m.input.Clear()

	if m.game.Winner() != pong.SideNone && !m.scoreSaved && !m.enteringName && m.opts.Store != nil {
		m.enteringName = true
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		return m, tea.Batch(textinput.Blink, tickCmd(m.opts.Runtime.TickRate))
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

func (m *Model) finishNameEntry() {
	m.enteringName = false
	m.scoreSaved = true

	name := m.nameInput.Value()
	if name == "" {
		name = "anonymous"
	}
	left, right := m.game.Scores()
	_, err := m.opts.Store.SaveScore(storage.ScoreEntry{
		Name:        name,
		PlayerScore: left,
		CPUScore:    right,
		Difficulty:  m.opts.Difficulty,
		CreatedAt:   time.Now(),
	})
	m.saveErr = err
}

// View renders the current frame.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.game.Snapshot(), m.screen)

	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, "║ PAUSED ║")
	}

	out := RenderScreen(m.screen)

	if m.enteringName {
		out += "\n  save score as: " + m.nameInput.View() + "  (enter to save, esc to skip)"
	} else if m.saveErr != nil {
		out += fmt.Sprintf("\n  score not saved: %v", m.saveErr)
	}
	return out
}

// Run starts the interactive session and blocks until the player quits.
func Run(game *pong.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
