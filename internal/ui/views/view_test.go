package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplice(t *testing.T) {
	assert.Equal(t, "helXX world", splice("hello world", "XX", 3))
	assert.Equal(t, "ab  XX", splice("ab", "XX", 4))
	assert.Equal(t, "XXllo", splice("hello", "XX", 0))
}

func TestRenderFormLayout(t *testing.T) {
	r := NewRenderer()
	out, layout := r.RenderForm(FormState{
		Width:       80,
		Title:       "Pokémon Trainer Registration",
		Subtitle:    "Register yourself",
		FirstName:   FieldView{Label: "First Name", Input: "Ash", Focused: true},
		LastName:    FieldView{Label: "Last Name", Error: "Last name is required"},
		TeamLabel:   "Select your Pokémon team",
		Team:        "team-line-one\nteam-line-two",
		SubmitLabel: "View My Team",
	})

	lines := strings.Split(out, "\n")
	require.Contains(t, lines[layout.TeamView.Top], "team-line-one")
	require.Contains(t, lines[layout.TeamView.Top+1], "team-line-two")
	require.Equal(t, 2, layout.TeamView.Height)
	require.Contains(t, lines[layout.Blocks[BlockSubmit].Top], "View My Team")
	require.Contains(t, out, "Last name is required")

	assert.Equal(t, BlockTeam, layout.BlockAt(layout.TeamView.Top))
	assert.Equal(t, BlockFirstName, layout.BlockAt(layout.Blocks[BlockFirstName].Top))
	assert.Equal(t, -1, layout.BlockAt(0))

	// Blocks follow each other without gaps
	for i := 1; i < len(layout.Blocks); i++ {
		prev := layout.Blocks[i-1]
		assert.Equal(t, prev.Top+prev.Height, layout.Blocks[i].Top)
	}
}

func TestRenderModal(t *testing.T) {
	r := NewRenderer()
	base := strings.Repeat("form content\n", 10)

	out, layout := r.RenderModal(base, ModalState{
		TrainerName: "Ash",
		Requested:   3,
		Cards: []TeamCard{
			{Name: "pikachu", Types: []string{"electric"}, Image: "https://img.test/sprites/pokemon/25.png"},
			{Name: "bulbasaur", Types: []string{"grass", "poison"}},
		},
	}, 120, 40)

	require.Contains(t, out, "Trainer Ash's Team")
	require.Contains(t, out, "Ready for the Battle Tower!")
	require.Contains(t, out, "Pikachu")
	require.Contains(t, out, "grass poison")
	require.Contains(t, out, "1 of 3 could not be loaded")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 40)
	require.Contains(t, lines[layout.ButtonY], "Close")
	require.True(t, layout.Contains(60, 20))
	require.False(t, layout.Contains(0, 0))
}

func TestRenderModalWhileResolving(t *testing.T) {
	r := NewRenderer()
	out, _ := r.RenderModal("", ModalState{TrainerName: "Misty", Resolving: true, Spinner: "*"}, 100, 30)

	assert.Contains(t, out, "Trainer Misty's Team")
	assert.Contains(t, out, "Fetching team details...")
	assert.NotContains(t, out, "No Pokémon found")
}
