package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Label         lipgloss.Style
	LabelFocused  lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Error         lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Placeholder   lipgloss.Style
	Chip          lipgloss.Style
	Counter       lipgloss.Style
	CounterFull   lipgloss.Style
	Row           lipgloss.Style
	RowCursor     lipgloss.Style
	Check         lipgloss.Style
	Highlight     lipgloss.Style
	Loading       lipgloss.Style
	Empty         lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Modal         lipgloss.Style
	HelpBox       lipgloss.Style
	Card          lipgloss.Style
	TypeBadge     lipgloss.Style
	Success       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Subtitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		LabelFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Dim:         lipgloss.NewStyle().Faint(true),
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1).
			MarginRight(1),
		Counter:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		CounterFull: lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Row:         lipgloss.NewStyle(),
		RowCursor:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Check:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Empty:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("99")).
			Bold(true).
			Padding(0, 2),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			Width(24),
		TypeBadge: lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
	}
}

// TypeColor returns the badge color for a creature type
func TypeColor(typeName string) string {
	switch typeName {
	case "fire":
		return "203" // red
	case "water", "ice":
		return "39" // blue
	case "grass", "bug":
		return "78" // green
	case "electric":
		return "226" // yellow
	case "poison", "ghost", "psychic":
		return "135" // purple
	case "ground", "rock", "fighting":
		return "173" // brown
	default:
		return "252"
	}
}
