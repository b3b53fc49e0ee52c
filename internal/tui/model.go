package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/trajviz/internal/anim"
	"github.com/san-kum/trajviz/internal/field"
	"github.com/san-kum/trajviz/internal/landscape"
	"github.com/san-kum/trajviz/internal/layout"
	"github.com/san-kum/trajviz/internal/logging"
	"github.com/san-kum/trajviz/internal/palette"
	"github.com/san-kum/trajviz/internal/render"
	"github.com/san-kum/trajviz/internal/theme"
	"github.com/san-kum/trajviz/internal/trajectory"
)

type TickMsg time.Time

type keyMap struct {
	Quit    key.Binding
	Restart key.Binding
	Theme   key.Binding
	Help    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Restart, k.Theme, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// Options configure a session.
type Options struct {
	Theme      theme.Theme
	Colors     map[string]string
	Resolution int
	Pad        float64
	Geometry   render.Geometry
	Grid       layout.Grid
	Interval   time.Duration
	Cache      *field.Cache
	Log        logging.Logger
}

func (o Options) withDefaults() Options {
	if o.Theme.Name == "" {
		o.Theme = theme.Default
	}
	if o.Resolution == 0 {
		o.Resolution = field.DefaultResolution
	}
	if o.Grid.Rows == 0 && o.Grid.Cols == 0 {
		o.Grid = layout.DefaultGrid()
	}
	if o.Interval <= 0 {
		o.Interval = anim.DefaultInterval
	}
	if o.Cache == nil {
		o.Cache = field.NewCache()
	}
	if o.Log == nil {
		o.Log = logging.NewNop()
	}
	return o
}

// Session is everything both front ends share: the render context, the
// slot arrangement and a way to build fresh clocks.
type Session struct {
	Store *trajectory.Store
	Kind  landscape.Kind
	Ctx   *render.Context
	Slots [][]layout.Slot
	opts  Options
}

// NewSession samples the field (through the cache) and prepares the panels.
func NewSession(store *trajectory.Store, kind landscape.Kind, opts Options) (*Session, error) {
	opts = opts.withDefaults()
	sample, err := opts.Cache.Get(store, kind, opts.Resolution, opts.Pad)
	if err != nil {
		return nil, err
	}
	colors := palette.FromTheme(opts.Theme, opts.Colors)
	colors.Audit(opts.Log, store.Names()...)

	s := &Session{
		Store: store,
		Kind:  kind,
		Ctx:   render.NewContext(opts.Theme, colors, sample, store, opts.Geometry),
		Slots: opts.Grid.Arrange(store.Names()),
		opts:  opts,
	}
	opts.Log.Debug("session ready",
		logging.String("landscape", kind.String()),
		logging.Int("optimizers", store.Len()),
		logging.Int("max_frame", store.MaxLen()-1),
		logging.Int("cached_samples", opts.Cache.Len()))
	return s, nil
}

// Clock builds a new frame clock for the session.
func (s *Session) Clock() *anim.Clock {
	return anim.NewClock(s.Store, anim.WithCounter(true))
}

// Frame composes the view of one state.
func (s *Session) Frame(st anim.State) string {
	return layout.Compose(s.Ctx, s.Slots, st)
}

// Snapshot composes the view at frame without running a clock.
func (s *Session) Snapshot(frame int) string {
	return s.Frame(anim.StateAt(s.Store, frame, true))
}

// NextTheme swaps the render context for the next theme.
func (s *Session) NextTheme() error {
	th := theme.Next(s.Ctx.Theme.Name)
	sample, err := s.opts.Cache.Get(s.Store, s.Kind, s.opts.Resolution, s.opts.Pad)
	if err != nil {
		return err
	}
	s.Ctx = render.NewContext(th, palette.FromTheme(th, s.opts.Colors), sample, s.Store, s.Ctx.Geo)
	s.opts.Log.Debug("theme switched", logging.String("theme", th.Name))
	return nil
}

// Model is the interactive bubbletea program.
type Model struct {
	session *Session
	clock   *anim.Clock
	state   anim.State
	ticking bool
	help    help.Model
	err     error
}

func NewModel(s *Session) Model {
	return Model{
		session: s,
		clock:   s.Clock(),
		ticking: true,
		help:    help.New(),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.session.opts.Interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Init starts the tick loop; NewModel already marks it running.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the clock.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Restart):
			m.clock = m.session.Clock()
			m.state = anim.State{}
			m.session.opts.Log.Debug("animation restarted")
			if !m.ticking {
				m.ticking = true
				return m, m.tick()
			}
		case key.Matches(msg, keys.Theme):
			if err := m.session.NextTheme(); err != nil {
				m.err = err
			}
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case TickMsg:
		if st, ok := m.clock.Tick(); ok {
			m.state = st
		}
		if m.clock.Phase() == anim.Finished {
			m.ticking = false
			return m, nil
		}
		m.ticking = true
		return m, m.tick()
	}
	return m, nil
}

// View renders the grid and a status line.
func (m Model) View() string {
	th := m.session.Ctx.Theme
	muted := lipgloss.NewStyle().Foreground(th.Muted)

	status := fmt.Sprintf("%s  frame %d/%d  theme %s",
		m.clock.Phase(), m.state.Frame, m.clock.MaxFrame(), th.Name)
	if m.err != nil {
		status += "  error: " + m.err.Error()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.session.Frame(m.state),
		muted.Render(status),
		m.help.View(keys),
	)
}

// Phase exposes the clock phase, mostly for tests.
func (m Model) Phase() anim.Phase { return m.clock.Phase() }

// State is the last emitted animation state.
func (m Model) State() anim.State { return m.state }
