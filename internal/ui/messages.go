package ui

import (
	"battletower/internal/domain"
)

// teamResolvedMsg carries the detail records for a submitted team
type teamResolvedMsg struct {
	submission int
	team       []domain.Creature
	err        error
}

// quitMsg signals that the application should quit
type quitMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
