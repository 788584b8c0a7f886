package viz

import "github.com/charmbracelet/lipgloss"

// Theme is a named palette for the live view.
type Theme struct {
	Name   string
	Canvas lipgloss.Color // trajectory ink
	Title  lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Good   lipgloss.Color
	Warn   lipgloss.Color
	Bad    lipgloss.Color
}

var themes = []Theme{
	{
		Name:   "dark",
		Canvas: lipgloss.Color("#00ffff"),
		Title:  lipgloss.Color("#ff00ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#ffff00"),
		Good:   lipgloss.Color("#00ff00"),
		Warn:   lipgloss.Color("#ff8800"),
		Bad:    lipgloss.Color("#ff0000"),
	},
	{
		Name:   "light",
		Canvas: lipgloss.Color("#005577"),
		Title:  lipgloss.Color("#aa00aa"),
		Text:   lipgloss.Color("#222222"),
		Muted:  lipgloss.Color("#999999"),
		Accent: lipgloss.Color("#0066cc"),
		Good:   lipgloss.Color("#007700"),
		Warn:   lipgloss.Color("#aa6600"),
		Bad:    lipgloss.Color("#cc0000"),
	},
	{
		Name:   "matrix",
		Canvas: lipgloss.Color("#00ff00"),
		Title:  lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#88ff88"),
		Good:   lipgloss.Color("#88ff88"),
		Warn:   lipgloss.Color("#ffff00"),
		Bad:    lipgloss.Color("#ff0000"),
	},
	{
		Name:   "sunset",
		Canvas: lipgloss.Color("#feca57"),
		Title:  lipgloss.Color("#ff6b6b"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Accent: lipgloss.Color("#ff9ff3"),
		Good:   lipgloss.Color("#5fd068"),
		Warn:   lipgloss.Color("#ffc048"),
		Bad:    lipgloss.Color("#ff4757"),
	},
}

// ThemeByName returns the named theme, or the default when the name is
// unknown.
func ThemeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme cycles to the theme after the named one.
func NextTheme(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

// ThemeNames lists the available palettes.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
