package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorgate/internal/core"
)

const gameTitle = "COLOR GATE"

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(string(core.ColorGray))).
			Padding(1, 4).
			Align(lipgloss.Center)

	textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(string(core.ColorWhite)))
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(string(core.ColorGray))).Italic(true)
)

// rainbowTitle paints each letter of the title with the next palette color.
func rainbowTitle(palette []core.Color) string {
	if len(palette) == 0 {
		return lipgloss.NewStyle().Bold(true).Render(gameTitle)
	}
	var sb strings.Builder
	i := 0
	for _, r := range gameTitle {
		if r == ' ' {
			sb.WriteRune(r)
			continue
		}
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(string(palette[i%len(palette)])))
		sb.WriteString(style.Render(string(r)))
		i++
	}
	return sb.String()
}

// renderWelcome draws the page shown before the first session.
func renderWelcome(width, height int, palette []core.Color) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		rainbowTitle(palette),
		"",
		textStyle.Render("Steer the disc with ←/→ or A/D"),
		textStyle.Render("Space or click switches its color"),
		textStyle.Render("Slip through the gap, or through a barrier of your color"),
		"",
		hintStyle.Render("Press Enter to play"),
	)
	return place(width, height, boxStyle.Render(body))
}

// renderPopup draws the credit popup shown between the welcome page and play.
func renderPopup(width, height int, text string) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		textStyle.Bold(true).Render(text),
		"",
		hintStyle.Render("any key to skip"),
	)
	return place(width, height, boxStyle.Render(body))
}

func place(width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
