package combobox

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"battletower/internal/domain"
	"battletower/internal/ui/services/events"
	"battletower/internal/ui/services/navigation"
	"battletower/internal/ui/services/search"
	"battletower/internal/ui/services/selection"
	"battletower/internal/ui/services/source"
	"battletower/internal/ui/views"
)

// Model is a searchable, paginated multi-select. It composes the option
// source, the search filter and the selection into an open/closed control.
type Model struct {
	ctx       context.Context
	bus       events.EventBus
	source    *source.Service
	search    *search.Service
	selection *selection.Service
	nav       *navigation.Service

	input   textinput.Model
	spinner spinner.Model
	keys    KeyMap
	styles  *views.Styles

	state       State
	focused     bool
	pending     bool // a page command was issued and has not answered yet
	threshold   int
	width       int
	placeholder string
	originX     int
	originY     int

	outside   *Subscription
	proximity *Subscription
}

// New creates a closed combo-box. bus may be nil.
func New(ctx context.Context, src *source.Service, sel *selection.Service, bus events.EventBus, opts Options) *Model {
	if bus == nil {
		bus = &events.NullBus{}
	}
	if opts.Height < 1 {
		opts.Height = 8
	}
	if opts.Threshold < 1 {
		opts.Threshold = 2
	}
	if opts.Placeholder == "" {
		opts.Placeholder = "Select your Pokémon..."
	}

	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "type to filter"
	ti.CharLimit = 32

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		ctx:         ctx,
		bus:         bus,
		source:      src,
		search:      search.NewService(bus),
		selection:   sel,
		nav:         navigation.NewService(bus, opts.Height),
		input:       ti,
		spinner:     sp,
		keys:        DefaultKeyMap(),
		styles:      views.NewStyles(),
		threshold:   opts.Threshold,
		width:       opts.Width,
		placeholder: opts.Placeholder,
		outside:     NewSubscription("outside-click"),
		proximity:   NewSubscription("scroll-proximity"),
	}
	m.search.SetOptionsFunction(src.Options)
	m.nav.SetCountFunction(func() int { return len(m.search.Visible()) })
	return m
}

// State returns the open/closed state
func (m *Model) State() State {
	return m.state
}

// IsOpen reports whether the list is shown
func (m *Model) IsOpen() bool {
	return m.state == Open
}

// Keys returns the key bindings for help rendering
func (m *Model) Keys() KeyMap {
	return m.keys
}

// Selection returns the selection service
func (m *Model) Selection() *selection.Service {
	return m.selection
}

// Search returns the search service
func (m *Model) Search() *search.Service {
	return m.search
}

// Selected returns the selected options in selection order
func (m *Model) Selected() []domain.Option {
	return m.selection.Selected()
}

// Loading reports whether a page request is outstanding
func (m *Model) Loading() bool {
	return m.pending || m.source.Loading()
}

// SetOrigin records the screen position of the control's top-left cell
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// SetWidth sets the rendered width
func (m *Model) SetWidth(width int) {
	m.width = width
	m.input.Width = width - lipgloss.Width(m.input.Prompt) - 2
}

// SetHeight sets the number of visible list rows
func (m *Model) SetHeight(height int) {
	m.nav.SetViewportHeight(height)
}

// Focus marks the control as focused
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes focus; leaving the control dismisses the list
func (m *Model) Blur() {
	m.focused = false
	m.Close()
}

// Focused reports whether the control has focus
func (m *Model) Focused() bool {
	return m.focused
}

// Open shows the list. The first page is requested when nothing is cached.
func (m *Model) Open() tea.Cmd {
	if m.state == Open {
		return nil
	}
	m.state = Open
	m.focused = true
	m.outside.Attach(m.onOutsideClick)
	m.proximity.Attach(m.onScroll)
	m.nav.Sync()
	m.bus.Publish(OpenedEvent{Cached: m.source.Len()})

	cmds := []tea.Cmd{m.input.Focus()}
	if m.source.Len() == 0 {
		cmds = append(cmds, m.loadNextPage())
	} else {
		cmds = append(cmds, m.fill())
	}
	return tea.Batch(cmds...)
}

// Close hides the list. Cache, query and selection are kept.
func (m *Model) Close() {
	if m.state == Closed {
		return
	}
	m.state = Closed
	m.outside.Detach()
	m.proximity.Detach()
	m.input.Blur()
	m.bus.Publish(ClosedEvent{Selected: m.selection.Count()})
}

// Teardown detaches every listener
func (m *Model) Teardown() {
	m.outside.Detach()
	m.proximity.Detach()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PageLoadedMsg:
		m.pending = false
		m.nav.Sync()
		if m.state == Open {
			return m.fill()
		}
		return nil

	case PageFailedMsg:
		m.pending = false
		log.Printf("Error loading options: %v", msg.Err)
		return nil

	case spinner.TickMsg:
		if !m.Loading() {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		if m.state == Open {
			return m.handleOpenKey(msg)
		}
		return m.handleClosedKey(msg)
	}

	if m.state == Open {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleClosedKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Activate):
		return m.Open()
	case key.Matches(msg, m.keys.RemoveLast):
		m.selection.RemoveLast()
	}
	return nil
}

func (m *Model) handleOpenKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.Close()
		return nil
	case key.Matches(msg, m.keys.Up):
		return m.navigate(navigation.DirectionUp)
	case key.Matches(msg, m.keys.Down):
		return m.navigate(navigation.DirectionDown)
	case key.Matches(msg, m.keys.PageUp):
		return m.navigate(navigation.DirectionPageUp)
	case key.Matches(msg, m.keys.PageDown):
		return m.navigate(navigation.DirectionPageDown)
	case key.Matches(msg, m.keys.Home):
		return m.navigate(navigation.DirectionHome)
	case key.Matches(msg, m.keys.End):
		return m.navigate(navigation.DirectionEnd)
	case key.Matches(msg, m.keys.Toggle):
		m.toggleCurrent()
		return nil
	case key.Matches(msg, m.keys.RemoveLast) && m.input.Value() == "":
		m.selection.RemoveLast()
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != before {
		m.search.SetQuery(q)
		m.nav.Reset()
		m.nav.Sync()
	}
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if m.state != Open {
			return nil
		}
		delta := 1
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -1
		}
		m.nav.Scroll(delta)
		return m.proximity.Dispatch(m.scrollMsg())

	case tea.MouseButtonLeft:
		if m.state == Closed {
			if m.InBounds(msg.X, msg.Y) {
				return m.Open()
			}
			return nil
		}
		cmd := m.outside.Dispatch(msg)
		if m.state == Open {
			if index, ok := m.rowAt(msg.X, msg.Y); ok {
				m.nav.MoveToIndex(index)
				m.toggleCurrent()
			}
		}
		return cmd
	}
	return nil
}

func (m *Model) navigate(direction navigation.Direction) tea.Cmd {
	m.nav.Navigate(direction)
	return m.proximity.Dispatch(m.scrollMsg())
}

func (m *Model) scrollMsg() ScrollMsg {
	return ScrollMsg{Offset: m.nav.ViewportOffset(), Remaining: m.nav.Remaining()}
}

func (m *Model) onOutsideClick(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if ok && !m.InBounds(mouse.X, mouse.Y) {
		m.Close()
	}
	return nil
}

func (m *Model) onScroll(msg tea.Msg) tea.Cmd {
	if m.nav.NearEnd(m.threshold) {
		return m.loadNextPage()
	}
	return nil
}

// fill requests another page while the cache is shorter than the window.
// The unfiltered cache is counted so an active query never pulls pages.
func (m *Model) fill() tea.Cmd {
	if m.source.Len() < m.nav.ViewportHeight() {
		return m.loadNextPage()
	}
	return nil
}

func (m *Model) loadNextPage() tea.Cmd {
	if m.Loading() || !m.source.HasMore() {
		return nil
	}
	m.pending = true

	src, ctx := m.source, m.ctx
	load := func() tea.Msg {
		added, hasMore, err := src.LoadNextPage(ctx)
		if err != nil {
			return PageFailedMsg{Err: err}
		}
		return PageLoadedMsg{Added: len(added), HasMore: hasMore}
	}
	return tea.Batch(load, m.spinner.Tick)
}

func (m *Model) toggleCurrent() {
	visible := m.search.Visible()
	if i := m.nav.Cursor(); i < len(visible) {
		m.selection.Toggle(visible[i])
	}
}

// InBounds reports whether the screen cell (x, y) lies on the control
func (m *Model) InBounds(x, y int) bool {
	view := m.View()
	w, h := lipgloss.Width(view), lipgloss.Height(view)
	if m.width > w {
		w = m.width
	}
	return x >= m.originX && x < m.originX+w && y >= m.originY && y < m.originY+h
}

// rowAt maps a screen cell to an index into the visible list
func (m *Model) rowAt(x, y int) (int, bool) {
	if m.state != Open || !m.InBounds(x, y) {
		return 0, false
	}
	row := y - m.originY - listTop
	if row < 0 || row >= m.nav.ViewportHeight() {
		return 0, false
	}
	index := m.nav.ViewportOffset() + row
	if index >= len(m.search.Visible()) {
		return 0, false
	}
	return index, true
}
