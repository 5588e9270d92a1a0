package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"battletower/internal/domain"
)

// Block indices into Layout.Blocks, in focus order
const (
	BlockFirstName = iota
	BlockLastName
	BlockTeam
	BlockSubmit
	blockCount
)

// FieldView is a rendered text field
type FieldView struct {
	Label   string
	Input   string // rendered textinput
	Error   string
	Focused bool
}

// FormState contains all the state needed for rendering the form
type FormState struct {
	Width         int
	Height        int
	Title         string
	Subtitle      string
	FirstName     FieldView
	LastName      FieldView
	TeamLabel     string
	Team          string // rendered combo-box
	TeamError     string
	TeamFocused   bool
	SubmitLabel   string
	SubmitFocused bool
	Footer        string
}

// Block is the vertical extent of one focusable control on screen
type Block struct {
	Top    int
	Height int
}

// Contains reports whether screen row y falls inside the block
func (b Block) Contains(y int) bool {
	return y >= b.Top && y < b.Top+b.Height
}

// Layout records where the form controls were drawn
type Layout struct {
	Left     int
	Blocks   [blockCount]Block
	TeamView Block // the combo-box itself, without label and error
}

// BlockAt returns the block index at screen row y, or -1
func (l Layout) BlockAt(y int) int {
	for i, b := range l.Blocks {
		if b.Contains(y) {
			return i
		}
	}
	return -1
}

// TeamCard is the data for one card in the team summary
type TeamCard struct {
	Name  string
	Types []string
	Image string
}

// ModalState contains what the team summary shows
type ModalState struct {
	TrainerName string
	Cards       []TeamCard
	Requested   int
	Resolving   bool
	Spinner     string
}

// ModalLayout records where the modal was drawn
type ModalLayout struct {
	X, Y          int
	Width, Height int
	ButtonY       int
}

// Contains reports whether the screen cell lies inside the modal
func (l ModalLayout) Contains(x, y int) bool {
	return x >= l.X && x < l.X+l.Width && y >= l.Y && y < l.Y+l.Height
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// RenderForm produces the registration form and the layout of its controls
func (r *Renderer) RenderForm(state FormState) (string, Layout) {
	var layout Layout
	left, top := 2, 1 // Main padding
	layout.Left = left

	var lines []string
	add := func(s string) int {
		start := len(lines)
		lines = append(lines, strings.Split(s, "\n")...)
		return start
	}

	add(r.styles.Title.Render(state.Title))
	add(r.styles.Subtitle.Render(state.Subtitle))
	add("")

	for i, field := range []FieldView{state.FirstName, state.LastName} {
		start := add(r.renderLabel(field.Label, field.Focused))
		box := r.styles.Input
		if field.Focused {
			box = r.styles.InputFocused
		}
		if state.Width > 0 {
			box = box.Width(min(state.Width-8, 40))
		}
		add(box.Render(field.Input))
		add(r.renderError(field.Error))
		layout.Blocks[i] = Block{Top: top + start, Height: len(lines) - start}
	}

	start := add(r.renderLabel(state.TeamLabel, state.TeamFocused))
	teamStart := add(state.Team)
	layout.TeamView = Block{Top: top + teamStart, Height: len(lines) - teamStart}
	add(r.renderError(state.TeamError))
	layout.Blocks[BlockTeam] = Block{Top: top + start, Height: len(lines) - start}

	button := r.styles.Button
	if state.SubmitFocused {
		button = r.styles.ButtonFocused
	}
	start = add(button.Render(state.SubmitLabel))
	layout.Blocks[BlockSubmit] = Block{Top: top + start, Height: len(lines) - start}

	if state.Footer != "" {
		add("")
		add(r.styles.Help.Render(state.Footer))
	}

	return r.styles.Main.Render(strings.Join(lines, "\n")), layout
}

func (r *Renderer) renderLabel(label string, focused bool) string {
	if focused {
		return r.styles.LabelFocused.Render("› " + label)
	}
	return r.styles.Label.Render("  " + label)
}

// renderError always yields one line so the layout does not jump
func (r *Renderer) renderError(msg string) string {
	if msg == "" {
		return " "
	}
	return r.styles.Error.Render("  " + msg)
}

// RenderModal draws the team summary over base
func (r *Renderer) RenderModal(base string, state ModalState, width, height int) (string, ModalLayout) {
	content := r.renderModalContent(state, width)
	out := r.popupRender.RenderPopupOverlay(base, content, width, height, r.styles.Modal)

	styled := r.styles.Modal.Render(content)
	w, h := lipgloss.Width(styled), lipgloss.Height(styled)
	x, y := Center(styled, width, height)
	return out, ModalLayout{
		X:       x,
		Y:       y,
		Width:   w,
		Height:  h,
		ButtonY: y + h - 3, // last content line inside border and padding
	}
}

func (r *Renderer) renderModalContent(state ModalState, width int) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.UnsetMarginBottom().Render(fmt.Sprintf("Trainer %s's Team", state.TrainerName)))
	b.WriteString("\n")
	b.WriteString(r.styles.Subtitle.Render("Ready for the Battle Tower!"))
	b.WriteString("\n\n")

	if state.Resolving {
		b.WriteString(r.styles.Loading.Render(state.Spinner + " Fetching team details..."))
	} else {
		b.WriteString(r.renderCards(state.Cards, width))
		if missing := state.Requested - len(state.Cards); missing > 0 {
			b.WriteString("\n")
			b.WriteString(r.styles.Dim.Render(fmt.Sprintf("%d of %d could not be loaded", missing, state.Requested)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(r.styles.ButtonFocused.Render("Close"))
	return b.String()
}

func (r *Renderer) renderCards(cards []TeamCard, width int) string {
	if len(cards) == 0 {
		return r.styles.Empty.Render("No Pokémon found")
	}

	perRow := 4
	cardWidth := lipgloss.Width(r.styles.Card.Render(""))
	if width > 0 {
		// Modal border and padding take 6 columns, plus a small margin
		perRow = max(1, min(4, (width-10)/(cardWidth+1)))
	}

	rendered := make([]string, len(cards))
	for i, card := range cards {
		rendered[i] = r.renderCard(card)
	}

	var rows []string
	for i := 0; i < len(rendered); i += perRow {
		end := min(i+perRow, len(rendered))
		row := make([]string, 0, 2*(end-i))
		for j, c := range rendered[i:end] {
			if j > 0 {
				row = append(row, " ")
			}
			row = append(row, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *Renderer) renderCard(card TeamCard) string {
	inner := r.styles.Card.GetWidth() - r.styles.Card.GetHorizontalFrameSize()

	badges := make([]string, len(card.Types))
	for i, t := range card.Types {
		badges[i] = r.styles.TypeBadge.Foreground(lipgloss.Color(TypeColor(t))).Render(t)
	}

	image := card.Image
	if image == "" {
		image = "no sprite"
	} else if w := ansi.StringWidth(image); w > inner {
		image = "…" + ansi.TruncateLeft(image, w-inner+1, "")
	}

	return r.styles.Card.Render(strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render(domain.DisplayName(card.Name)),
		strings.Join(badges, " "),
		r.styles.Dim.Render(image),
	}, "\n"))
}

// RenderHelpPopup draws the help text over base
func (r *Renderer) RenderHelpPopup(base, content string, width, height int) string {
	return r.popupRender.RenderPopupOverlay(base, content, width, height, r.styles.HelpBox)
}
