package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jamesainslie/gamescan/pkg/gamescan/types"
)

// Color constants using ANSI 256-color palette.
const (
	ColorPrimary = lipgloss.Color("39")
	ColorSuccess = lipgloss.Color("42")
	ColorWarning = lipgloss.Color("214")
	ColorDanger  = lipgloss.Color("196")
	ColorMuted   = lipgloss.Color("245")
)

// Box styles for grouped content.
var (
	// HeaderBox holds the hardware summary.
	HeaderBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1).
			MarginBottom(1)

	// FooterBox holds the run metadata.
	FooterBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1).
			MarginTop(1)
)

// Text styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	FPSStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorMuted)
)

// tierStyles colors each tier from red (Low) to green (Ultra).
var tierStyles = map[types.Tier]lipgloss.Style{
	types.TierLow:    lipgloss.NewStyle().Foreground(ColorDanger),
	types.TierMedium: lipgloss.NewStyle().Foreground(ColorWarning),
	types.TierHigh:   lipgloss.NewStyle().Foreground(ColorPrimary),
	types.TierUltra:  lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
}

// TierStyle returns the style for t.
func TierStyle(t types.Tier) lipgloss.Style {
	if s, ok := tierStyles[t]; ok {
		return s
	}
	return ValueStyle
}
