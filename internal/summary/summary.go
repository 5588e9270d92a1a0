// Package summary prints a registered trainer and team as markdown.
package summary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"battletower/internal/domain"
)

// Markdown returns the team summary as a markdown document
func Markdown(t domain.Trainer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Trainer %s's Team\n\n", strings.TrimSpace(t.FirstName+" "+t.LastName))
	b.WriteString("Ready for the Battle Tower!\n\n")

	if len(t.Team) == 0 {
		b.WriteString("_No Pokémon found_\n")
		return b.String()
	}

	b.WriteString("| # | Pokémon | Types | Sprite |\n")
	b.WriteString("|---|---------|-------|--------|\n")
	for i, c := range t.Team {
		types := "-"
		if len(c.Types) > 0 {
			types = strings.Join(c.Types, ", ")
		}
		image := "-"
		if c.Image != "" {
			image = c.Image
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", i+1, domain.DisplayName(c.Name), types, image)
	}
	return b.String()
}

// Render renders the summary for the terminal. An empty style picks one
// from the terminal background.
func Render(t domain.Trainer, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(Markdown(t))
	if err != nil {
		return "", fmt.Errorf("render summary: %w", err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
