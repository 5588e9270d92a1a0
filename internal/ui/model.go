package ui

import (
	"context"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"battletower/internal/config"
	"battletower/internal/domain"
	"battletower/internal/eventbus"
	"battletower/internal/ui/combobox"
	"battletower/internal/ui/form"
	"battletower/internal/ui/input"
	inputtypes "battletower/internal/ui/input/types"
	"battletower/internal/ui/services/events"
	"battletower/internal/ui/services/selection"
	"battletower/internal/ui/services/source"
	"battletower/internal/ui/views"
)

const (
	fieldFirstName = "firstName"
	fieldLastName  = "lastName"
	fieldTeam      = "team"
)

// TeamResolver fetches the detail records for a submitted team
type TeamResolver interface {
	Resolve(ctx context.Context, options []domain.Option) ([]domain.Creature, error)
}

// Deps are the services the model is built from
type Deps struct {
	Source   *source.Service
	Resolver TeamResolver
	Bus      eventbus.EventBus // domain bus, may be nil
	UIBus    events.EventBus   // may be nil
}

// Model represents the UI state
type Model struct {
	ctx    context.Context
	config *config.Config
	bus    eventbus.EventBus

	// UI state
	width       int
	height      int
	help        help.Model
	keys        formKeyMap
	spinner     spinner.Model
	inPagerMode bool
	layout      views.Layout
	modalLayout views.ModalLayout

	// Registration form
	form      *form.Form
	inputs    [2]textinput.Model // first name, last name
	combo     *combobox.Model
	resolver  TeamResolver
	focus     inputtypes.Focus
	attempted bool // a submit was tried, so every edit revalidates its field

	// Team summary
	modalOpen  bool
	resolving  bool
	submission int
	requested  int
	trainer    *domain.Trainer
	registered *domain.Trainer // last trainer whose team finished resolving

	// Help state
	showHelp   bool
	helpScroll int

	// Renderers and handlers
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	inputHandler *input.Handler

	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(ctx context.Context, cfg *config.Config, deps Deps) *Model {
	uiBus := deps.UIBus
	if uiBus == nil {
		uiBus = &events.NullBus{}
	}

	sel := selection.NewService(uiBus, cfg.Form.TeamSize)
	combo := combobox.New(ctx, deps.Source, sel, uiBus, combobox.Options{
		Height:    cfg.Form.ListHeight,
		Threshold: cfg.Form.ScrollThreshold,
		Width:     60,
	})

	m := &Model{
		ctx:          ctx,
		config:       cfg,
		bus:          deps.Bus,
		help:         help.New(),
		keys:         newFormKeyMap(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		combo:        combo,
		resolver:     deps.Resolver,
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(),
		inputHandler: input.New(),
	}
	m.spinner.Style = m.renderer.Styles().Loading

	m.inputs[0] = newNameInput("Enter your first name")
	m.inputs[1] = newNameInput("Enter your last name")
	m.inputs[0].Focus()

	m.form = form.New(
		&form.Field{Name: fieldFirstName, Label: "First Name", Validate: form.PersonName("First name")},
		&form.Field{Name: fieldLastName, Label: "Last Name", Validate: form.PersonName("Last name")},
		&form.Field{Name: fieldTeam, Label: "Select your Pokémon team", Validate: form.TeamSize(cfg.Form.TeamSize, sel.Count)},
	)

	return m
}

func newNameInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 32
	ti.Width = 30
	return ti
}

// SetProgram sets the tea.Program reference used to hand the terminal to the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Trainer returns the last registered trainer, or nil
func (m *Model) Trainer() *domain.Trainer {
	return m.registered
}

// Init returns the initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if m.inPagerMode {
			return m, nil
		}
		return m, m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil
	}

	return m, m.handleNonKeyboardMsg(msg)
}

func (m *Model) resize() {
	m.combo.SetWidth(max(min(m.width-8, 60), 20))

	// Keep the open list on screen in short terminals
	rows := m.config.Form.ListHeight
	if m.height > 0 {
		rows = max(min(rows, m.height-24), 3)
	}
	m.combo.SetHeight(rows)
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case teamResolvedMsg:
		m.handleTeamResolved(msg)
		return nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if m.resolving {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.combo.Update(msg))
		return tea.Batch(cmds...)

	case combobox.PageLoadedMsg, combobox.PageFailedMsg:
		return m.combo.Update(msg)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return tea.ClearScreen

	case quitMsg:
		m.combo.Teardown()
		return tea.Quit
	}

	// Cursor blinks and the like
	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.combo.Update(msg))
	return tea.Batch(cmds...)
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		Focused: m.focus,
		Open:    m.combo.IsOpen(),
		Busy:    m.resolving,
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	actions := m.inputHandler.HandleKey(msg, m.inputContext())

	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.FocusNextAction:
		return m.setFocus((m.focus + 1) % inputtypes.FocusCount)

	case inputtypes.FocusPrevAction:
		return m.setFocus((m.focus + inputtypes.FocusCount - 1) % inputtypes.FocusCount)

	case inputtypes.FocusAction:
		return m.setFocus(a.Target)

	case inputtypes.ForwardKeyAction:
		return m.forwardKey(a.Msg)

	case inputtypes.SubmitAction:
		return m.submit()

	case inputtypes.CloseModalAction:
		// Closing the summary starts a new registration cycle
		m.modalOpen = false
		m.attempted = false
		m.form.ClearErrors()
		return nil

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp
		m.helpScroll = 0
		return nil

	case inputtypes.ScrollHelpAction:
		m.helpScroll = max(m.helpScroll+a.Delta, 0)
		return nil

	case inputtypes.OpenHelpPagerAction:
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain())

	case inputtypes.QuitAction:
		return func() tea.Msg { return quitMsg{} }
	}
	return nil
}

// changeMode switches input modes and applies the enter/exit actions
func (m *Model) changeMode(mode inputtypes.Mode) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range m.inputHandler.ChangeMode(mode, m.inputContext()) {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

func (m *Model) forwardKey(msg tea.KeyMsg) tea.Cmd {
	switch m.focus {
	case inputtypes.FocusFirstName, inputtypes.FocusLastName:
		i := int(m.focus)
		before := m.inputs[i].Value()
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		if m.inputs[i].Value() != before {
			name := m.fieldName(m.focus)
			m.form.Set(name, m.inputs[i].Value())
			m.revalidate(name)
		}
		return cmd

	case inputtypes.FocusTeam:
		before := m.combo.Selection().Count()
		cmd := m.combo.Update(msg)
		if m.combo.Selection().Count() != before {
			m.revalidate(fieldTeam)
		}
		return cmd
	}
	return nil
}

func (m *Model) fieldName(f inputtypes.Focus) string {
	switch f {
	case inputtypes.FocusFirstName:
		return fieldFirstName
	case inputtypes.FocusLastName:
		return fieldLastName
	}
	return fieldTeam
}

// revalidate refreshes one field's message once a submit has been tried
func (m *Model) revalidate(name string) {
	if !m.attempted {
		return
	}
	if field := m.form.Field(name); field != nil {
		field.Check()
	}
}

func (m *Model) setFocus(target inputtypes.Focus) tea.Cmd {
	if target == m.focus {
		return nil
	}

	switch m.focus {
	case inputtypes.FocusFirstName, inputtypes.FocusLastName:
		m.inputs[m.focus].Blur()
	case inputtypes.FocusTeam:
		m.combo.Blur()
	}

	m.focus = target

	switch target {
	case inputtypes.FocusFirstName, inputtypes.FocusLastName:
		return m.inputs[target].Focus()
	case inputtypes.FocusTeam:
		m.combo.Focus()
	}
	return nil
}

func (m *Model) syncForm() {
	m.form.Set(fieldFirstName, m.inputs[0].Value())
	m.form.Set(fieldLastName, m.inputs[1].Value())
}

func (m *Model) submit() tea.Cmd {
	m.attempted = true
	m.syncForm()
	if m.combo.IsOpen() {
		m.combo.Close()
	}

	if errs := m.form.Validate(); len(errs) > 0 {
		log.Printf("Registration blocked: %d invalid fields", len(errs))
		if i := m.form.FirstInvalid(); i >= 0 {
			return m.setFocus(inputtypes.Focus(i))
		}
		return nil
	}

	selected := m.combo.Selected()
	m.submission++
	m.trainer = &domain.Trainer{
		FirstName: m.form.Value(fieldFirstName),
		LastName:  m.form.Value(fieldLastName),
	}
	m.requested = len(selected)
	m.modalOpen = true
	m.resolving = true
	log.Printf("Registering %s %s with %d Pokémon", m.trainer.FirstName, m.trainer.LastName, len(selected))

	return tea.Batch(
		m.changeMode(inputtypes.ModeModal),
		m.resolveTeam(m.submission, selected),
		m.spinner.Tick,
	)
}

func (m *Model) resolveTeam(submission int, selected []domain.Option) tea.Cmd {
	resolver, ctx := m.resolver, m.ctx
	return func() tea.Msg {
		if resolver == nil {
			return teamResolvedMsg{submission: submission}
		}
		team, err := resolver.Resolve(ctx, selected)
		return teamResolvedMsg{submission: submission, team: team, err: err}
	}
}

func (m *Model) handleTeamResolved(msg teamResolvedMsg) {
	if msg.submission != m.submission || m.trainer == nil {
		return
	}
	m.resolving = false

	if msg.err != nil {
		log.Printf("Error resolving team: %v", msg.err)
		if m.bus != nil {
			m.bus.Publish(eventbus.ErrorEvent{Message: "resolve team", Err: msg.err})
		}
		return
	}

	m.trainer.Team = msg.team
	registered := *m.trainer
	m.registered = &registered
	if m.bus != nil {
		m.bus.Publish(eventbus.TrainerCreatedEvent{Trainer: registered})
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	click := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if m.modalOpen {
		if click && (!m.modalLayout.Contains(msg.X, msg.Y) || msg.Y == m.modalLayout.ButtonY) {
			return m.changeMode(inputtypes.ModeForm)
		}
		return nil
	}

	if m.showHelp {
		if click {
			return m.changeMode(inputtypes.ModeForm)
		}
		return nil
	}

	m.combo.SetOrigin(m.layout.Left, m.layout.TeamView.Top)

	var cmds []tea.Cmd
	wasOpen := m.combo.IsOpen()
	if wasOpen {
		// The open list takes wheel events and closes itself on outside clicks
		before := m.combo.Selection().Count()
		cmds = append(cmds, m.combo.Update(msg))
		if m.combo.Selection().Count() != before {
			m.revalidate(fieldTeam)
		}
	}
	if !click || (wasOpen && m.combo.IsOpen()) {
		return tea.Batch(cmds...)
	}

	switch block := m.layout.BlockAt(msg.Y); block {
	case views.BlockFirstName, views.BlockLastName:
		cmds = append(cmds, m.processAction(inputtypes.FocusAction{Target: inputtypes.Focus(block)}))
	case views.BlockTeam:
		cmds = append(cmds, m.processAction(inputtypes.FocusAction{Target: inputtypes.FocusTeam}))
		if !wasOpen {
			cmds = append(cmds, m.combo.Update(msg))
		}
	case views.BlockSubmit:
		cmds = append(cmds,
			m.processAction(inputtypes.FocusAction{Target: inputtypes.FocusSubmit}),
			m.processAction(inputtypes.SubmitAction{}),
		)
	}
	return tea.Batch(cmds...)
}

func (m *Model) fetchHelpPager(content string) tea.Cmd {
	return func() tea.Msg {
		if m.program != nil {
			m.program.Send(pauseRenderingMsg{})
		}
		err := m.helpOps.ShowHelpInPager(content)
		if m.program != nil {
			m.program.Send(resumeRenderingMsg{})
		}
		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	state := views.FormState{
		Width:         m.width,
		Height:        m.height,
		Title:         "Pokémon Trainer Registration",
		Subtitle:      "Register yourself and build your team for the Battle Tower",
		FirstName:     m.fieldView(0, fieldFirstName),
		LastName:      m.fieldView(1, fieldLastName),
		TeamLabel:     m.form.Field(fieldTeam).Label,
		Team:          m.combo.View(),
		TeamError:     m.form.Field(fieldTeam).Error,
		TeamFocused:   m.focus == inputtypes.FocusTeam,
		SubmitLabel:   "View My Team",
		SubmitFocused: m.focus == inputtypes.FocusSubmit,
		Footer:        m.footer(),
	}

	out, layout := m.renderer.RenderForm(state)
	m.layout = layout
	m.combo.SetOrigin(layout.Left, layout.TeamView.Top)

	switch {
	case m.modalOpen:
		out, m.modalLayout = m.renderer.RenderModal(out, m.modalState(), m.width, m.height)
	case m.showHelp:
		out = m.renderer.RenderHelpPopup(out, m.helpRenderer.renderHelpContent(m.height, m.helpScroll), m.width, m.height)
	}
	return out
}

func (m *Model) fieldView(i int, name string) views.FieldView {
	field := m.form.Field(name)
	return views.FieldView{
		Label:   field.Label,
		Input:   m.inputs[i].View(),
		Error:   field.Error,
		Focused: int(m.focus) == i,
	}
}

func (m *Model) footer() string {
	if m.focus == inputtypes.FocusTeam {
		return m.help.View(m.combo.Keys())
	}
	return m.help.View(m.keys)
}

func (m *Model) modalState() views.ModalState {
	state := views.ModalState{
		Resolving: m.resolving,
		Spinner:   m.spinner.View(),
	}
	if m.trainer == nil {
		return state
	}

	state.TrainerName = strings.TrimSpace(m.trainer.FirstName + " " + m.trainer.LastName)
	state.Requested = m.requested
	for _, c := range m.trainer.Team {
		state.Cards = append(state.Cards, views.TeamCard{
			Name:  c.Name,
			Types: c.Types,
			Image: c.Image,
		})
	}
	return state
}
