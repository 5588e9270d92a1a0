package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Form", []helpEntry{
		{"Tab/Shift+Tab", "Next/previous field"},
		{"↑/↓, Enter", "Move between fields"},
		{"Ctrl+S", "Submit from anywhere"},
		{"Enter/Space", "Submit (on the button)"},
	}},
	{"Team list", []helpEntry{
		{"Enter/Space/↓", "Open the list"},
		{"Type", "Filter loaded Pokémon"},
		{"↑/↓, Ctrl+P/N", "Move the highlight"},
		{"PgUp/PgDn", "Page up/down"},
		{"Home/End", "First/last loaded"},
		{"Space/Enter", "Toggle selection"},
		{"Backspace", "Remove last pick (empty filter)"},
		{"Esc, Tab, click", "Close the list"},
		{"Mouse wheel", "Scroll, loads more near the end"},
	}},
	{"Team summary", []helpEntry{
		{"Esc/q, click outside", "Close"},
		{"Enter/Space", "Close once loaded"},
	}},
	{"Other", []helpEntry{
		{"?, F1", "Toggle this help"},
		{"H", "Open help in pager (from help)"},
		{"q", "Quit (on the button)"},
		{"Ctrl+C", "Quit"},
	}},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

func (r *HelpRenderer) build() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(18)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("Battle Tower Help"))
	help.WriteString("\n")

	for i, section := range helpSections {
		if i > 0 {
			help.WriteString("\n")
		}
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(e.keys), descStyle.Render(e.desc)))
		}
	}
	return strings.TrimRight(help.String(), "\n")
}

// renderHelpContent renders the help window for the popup, scrolled
func (r *HelpRenderer) renderHelpContent(height int, scrollOffset int) string {
	content := r.build()
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	// Account for popup border and padding
	visibleHeight := height - 6
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	if totalLines <= visibleHeight {
		return content
	}

	maxOffset := totalLines - visibleHeight
	scrollOffset = max(0, min(scrollOffset, maxOffset))
	visibleLines := append([]string(nil), lines[scrollOffset:scrollOffset+visibleHeight]...)

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if scrollOffset > 0 {
		visibleLines[0] = dim.Render("↑ (more above)")
	}
	if scrollOffset < maxOffset {
		visibleLines[len(visibleLines)-1] = dim.Render("↓ (more below)")
	}
	return strings.Join(visibleLines, "\n")
}

// RenderHelpContentPlain generates the full help text for the pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	return r.build() + "\n"
}

// HelpOps shows help in the ov pager, handing the terminal over while it runs
type HelpOps struct {
	program *tea.Program
}

// NewHelpOps creates a new HelpOps instance
func NewHelpOps() *HelpOps {
	return &HelpOps{}
}

// SetProgram sets the program reference for terminal management
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager runs ov over helpContent until the user quits it
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Do not write the document back to the screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
