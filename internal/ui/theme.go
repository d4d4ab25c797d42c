package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pulseboard/internal/counter"
	"github.com/five82/pulseboard/internal/state"
)

// Theme defines colors for the dashboard.
type Theme struct {
	Name string

	// Base colors
	Background string
	Surface    string
	Border     string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Counter tone colors
	Positive string
	Negative string
	Neutral  string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header lipgloss.Style
	Logo   lipgloss.Style
	Key    lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
	}
}

// WithAccent returns a copy of the theme whose accent is replaced by color.
// An empty color keeps the theme's own accent.
func (t Theme) WithAccent(color string) Theme {
	if color != "" {
		t.Accent = color
	}
	return t
}

// ToneColor returns the counter color for tone.
func (t Theme) ToneColor(tone counter.Tone) string {
	switch tone {
	case counter.Positive:
		return t.Positive
	case counter.Negative:
		return t.Negative
	default:
		return t.Neutral
	}
}

// KindColor returns the message color for kind.
func (t Theme) KindColor(kind state.Kind) string {
	switch kind {
	case state.Success:
		return t.Success
	case state.Warning:
		return t.Warning
	case state.Error:
		return t.Danger
	default:
		return t.Info
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Neon":     neonTheme(),
	"Nightfox": nightfoxTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Neon", "Nightfox", "Slate"}

// GetTheme returns a theme by name, falling back to Neon.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return neonTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func neonTheme() Theme {
	return Theme{
		Name: "Neon",

		Background: "#0a0e27",
		Surface:    "#141a3a",
		Border:     "#2a3366",

		Text:    "#e6f1ff",
		Muted:   "#8892b0",
		Faint:   "#5a6385",
		Accent:  "#00d4ff",
		Success: "#00ff88",
		Warning: "#ffd60a",
		Danger:  "#ff006e",
		Info:    "#00d4ff",

		Positive: "#00ff88",
		Negative: "#ff006e",
		Neutral:  "#00d4ff",
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		Border:     "#39506d", // bg4

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan

		Positive: "#81b29a",
		Negative: "#c94f6d",
		Neutral:  "#63cdcf",
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		Border:     "#334155", // slate-700

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		Positive: "#22c55e",
		Negative: "#ef4444",
		Neutral:  "#38bdf8",
	}
}
