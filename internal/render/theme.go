// Package render draws palettes, scales and contrast reports for the terminal.
package render

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent    = lipgloss.Color("#A855F7")
	White     = lipgloss.Color("#FFFFFF")
	LightGray = lipgloss.Color("#9CA3AF")
	DimGray   = lipgloss.Color("#6B7280")
	DarkGray  = lipgloss.Color("#374151")
)

// Styles contains the shared terminal styles.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Card     lipgloss.Style
}

var (
	defaultStyles *Styles
	once          sync.Once
)

// Default returns the singleton default Styles instance
func Default() *Styles {
	once.Do(func() {
		defaultStyles = newStyles()
	})
	return defaultStyles
}

func newStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(White),

		Subtitle: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(LightGray),

		Muted: lipgloss.NewStyle().
			Foreground(DimGray),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DarkGray).
			Padding(0, 1),
	}
}
