package combobox

import (
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"battletower/internal/pokeapi"
	"battletower/internal/pokeapi/pokeapitest"
	"battletower/internal/ui/services/selection"
	"battletower/internal/ui/services/source"
)

func TestHighlightMatch(t *testing.T) {
	mark := lipgloss.NewStyle().Transform(func(s string) string { return "[" + s + "]" })

	tests := []struct {
		name  string
		label string
		query string
		want  string
	}{
		{"case insensitive", "Pikachu", "KACH", "Pi[kach]u"},
		{"first occurrence", "Abra Kadabra", "abra", "[Abra] Kadabra"},
		{"no match", "Onix", "zz", "Onix"},
		{"empty query", "Onix", "", "Onix"},
		{"query longer than label", "Mew", "Mewtwo", "Mew"},
		{"folding shrinks bytes", "Ek", "K", "E[k]"},
		{"folding grows bytes", "EK", "k", "E[K]"},
		{"multibyte label", "Flabébé", "BÉ", "Fla[bé]bé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, highlightMatch(tt.label, tt.query, mark))
			})
		})
	}
}

func TestCursorRowShowsSprite(t *testing.T) {
	srv := pokeapitest.NewServer("bulbasaur", "ivysaur")
	client := pokeapi.New(srv.URL, 2*time.Second)
	t.Cleanup(func() {
		client.Close()
		srv.Close()
	})
	src := source.NewService(client, nil, 10, "https://sprites.test")
	m := New(context.Background(), src, selection.NewService(nil, 4), nil, Options{Height: 4, Width: 60})
	m.input.Cursor.SetMode(cursor.CursorStatic)
	m.Focus()

	run(t, m, m.Open())
	assert.Contains(t, m.View(), "sprite https://sprites.test/1.png")

	send(t, m, down)
	assert.Contains(t, m.View(), "sprite https://sprites.test/2.png")
	assert.NotContains(t, m.View(), "1.png")

	send(t, m, esc)
	assert.NotContains(t, m.View(), "sprite")
}
