package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/cofre/internal/config"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Key:", "Value:"
	ValueStyle    lipgloss.Style // For field values

	// Status styles
	SuccessStyle lipgloss.Style
	InfoStyle    lipgloss.Style
	DangerStyle  lipgloss.Style
	WarningStyle lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme.
// Until it is called every style renders plain text.
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Success))

	InfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.InfoFg))

	DangerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Danger))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)
}
