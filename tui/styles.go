package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	scoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

func startPrompt() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("snake game: press any key to start"),
		hintStyle.Render("arrows / wasd / hjkl to steer, esc or q to quit"),
	)
}

// FinalScore formats the end-of-game message.
func FinalScore(score uint32) string {
	return fmt.Sprintf("Your final score was %s", scoreStyle.Render(fmt.Sprint(score)))
}
