// Package theme holds the shared color palette and styles. The palette
// switches between a light and a dark variant; Apply rebuilds every style
// var in place so screens always render with the active palette.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Mode selects the palette variant.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Color palette. Defaults to the dark variant; Apply overwrites these.
var (
	Primary   = lipgloss.Color("#2DD4BF") // Teal
	Secondary = lipgloss.Color("#38BDF8") // Sky
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#F87171") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Bg        = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Good       lipgloss.Style
	Bad        lipgloss.Style
)

// Components
var (
	GaugeGood    lipgloss.Style
	GaugeBad     lipgloss.Style
	GaugeEmpty   lipgloss.Style
	ButtonActive lipgloss.Style
	ButtonIdle   lipgloss.Style
)

// current is the active mode, readable via Current.
var current = ModeDark

func init() {
	Apply(ModeDark)
}

// Current returns the active mode.
func Current() Mode { return current }

// Apply switches the palette and rebuilds all style vars.
func Apply(mode Mode) {
	current = mode

	switch mode {
	case ModeLight:
		Primary = lipgloss.Color("#0D9488")
		Secondary = lipgloss.Color("#0284C7")
		Accent = lipgloss.Color("#D97706")
		Success = lipgloss.Color("#16A34A")
		Error = lipgloss.Color("#DC2626")
		Text = lipgloss.Color("#0F172A")
		TextDim = lipgloss.Color("#64748B")
		Bg = lipgloss.Color("#F8FAFC")
		BgCard = lipgloss.Color("#E2E8F0")
		Border = lipgloss.Color("#CBD5E1")
	default:
		Primary = lipgloss.Color("#2DD4BF")
		Secondary = lipgloss.Color("#38BDF8")
		Accent = lipgloss.Color("#FBBF24")
		Success = lipgloss.Color("#4ADE80")
		Error = lipgloss.Color("#F87171")
		Text = lipgloss.Color("#F8FAFC")
		TextDim = lipgloss.Color("#94A3B8")
		Bg = lipgloss.Color("#0F172A")
		BgCard = lipgloss.Color("#1E293B")
		Border = lipgloss.Color("#334155")
	}

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Good = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Bad = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	GaugeGood = lipgloss.NewStyle().
		Background(Success)

	GaugeBad = lipgloss.NewStyle().
		Background(Error)

	GaugeEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Bg).
		Bold(true).
		Padding(0, 2)

	ButtonIdle = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}
