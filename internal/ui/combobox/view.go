package combobox

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the control
func (m *Model) View() string {
	lines := []string{m.headerView(), m.counterView()}
	if m.state == Closed {
		return strings.Join(lines, "\n")
	}

	lines = append(lines, m.input.View())
	lines = append(lines, m.rowsView()...)
	if sprite := m.spriteView(); sprite != "" {
		lines = append(lines, sprite)
	}
	if footer := m.footerView(); footer != "" {
		lines = append(lines, footer)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) headerView() string {
	indicator := "▸ "
	if m.state == Open {
		indicator = "▾ "
	}

	selected := m.selection.Selected()
	if len(selected) == 0 {
		return indicator + m.styles.Placeholder.Render(m.placeholder)
	}

	chips := make([]string, 0, len(selected))
	for _, opt := range selected {
		chips = append(chips, m.styles.Chip.Render(opt.Label))
	}
	return indicator + lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m *Model) counterView() string {
	text := fmt.Sprintf("  %d/%d selected", m.selection.Count(), m.selection.Max())
	if m.selection.Full() {
		return m.styles.CounterFull.Render(text)
	}
	return m.styles.Counter.Render(text)
}

func (m *Model) rowsView() []string {
	visible := m.search.Visible()
	offset := m.nav.ViewportOffset()
	end := offset + m.nav.ViewportHeight()
	if end > len(visible) {
		end = len(visible)
	}

	rows := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		opt := visible[i]
		check := "[ ]"
		if m.selection.IsSelected(opt.Identity) {
			check = m.styles.Check.Render("[x]")
		}

		label := opt.Label
		if m.search.ShouldHighlight(label) {
			label = highlightMatch(label, m.search.Query(), m.styles.Highlight)
		}

		style := m.styles.Row
		if i == m.nav.Cursor() {
			style = m.styles.RowCursor
		}
		if m.width > 0 {
			style = style.Width(m.width)
		}
		rows = append(rows, style.Render(fmt.Sprintf("  %s %s", check, label)))
	}
	return rows
}

// spriteView shows the image reference of the option under the cursor
func (m *Model) spriteView() string {
	visible := m.search.Visible()
	i := m.nav.Cursor()
	if i >= len(visible) || visible[i].ImageRef == "" {
		return ""
	}
	text := "  sprite " + visible[i].ImageRef
	if m.width > 0 {
		text = ansi.Truncate(text, m.width, "…")
	}
	return m.styles.Dim.Render(text)
}

func (m *Model) footerView() string {
	if m.Loading() {
		return m.styles.Loading.Render(fmt.Sprintf("  %s Loading...", m.spinner.View()))
	}

	if len(m.search.Visible()) == 0 {
		text := "  No Pokémon found"
		if suggestions := m.search.Suggestions(3); len(suggestions) > 0 {
			text += m.styles.Dim.Render(" (did you mean " + strings.Join(suggestions, ", ") + "?)")
		}
		return m.styles.Empty.Render(text)
	}

	if remaining := m.nav.Remaining(); remaining > 0 {
		return m.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", remaining))
	}
	if m.source.HasMore() {
		return m.styles.Scroll.Render("  ↓ scroll for more")
	}
	return ""
}

// highlightMatch styles the first case-insensitive occurrence of query in
// label. Windows are measured in runes of label, since case folding can
// change byte lengths.
func highlightMatch(label, query string, style lipgloss.Style) string {
	n := utf8.RuneCountInString(query)
	if n == 0 {
		return label
	}
	for i := range label {
		j, count := i, 0
		for j < len(label) && count < n {
			_, size := utf8.DecodeRuneInString(label[j:])
			j += size
			count++
		}
		if count < n {
			break
		}
		if strings.EqualFold(label[i:j], query) {
			return label[:i] + style.Render(label[i:j]) + label[j:]
		}
	}
	return label
}
