package gamedata

import "github.com/gdamore/tcell/v2"

// ThemeDef holds the hex colors used to draw a round, loaded from theme.json.
type ThemeDef struct {
	Placeholder string `json:"placeholder"` // Unrevealed positions of the mask
	Revealed    string `json:"revealed"`    // Uncovered letters of the mask
	Lives       string `json:"lives"`       // Lives counter
	Prompt      string `json:"prompt"`      // Questions asked of the player
	Input       string `json:"input"`       // Text the player is typing
	Good        string `json:"good"`        // Hits and wins
	Bad         string `json:"bad"`         // Misses, losses and errors
	Title       string `json:"title"`       // Title line
}

// Theme is a ThemeDef resolved to tcell colors.
type Theme struct {
	Placeholder tcell.Color
	Revealed    tcell.Color
	Lives       tcell.Color
	Prompt      tcell.Color
	Input       tcell.Color
	Good        tcell.Color
	Bad         tcell.Color
	Title       tcell.Color
}

// DefaultTheme is used when theme.json cannot be read.
var DefaultTheme = Theme{
	Placeholder: tcell.ColorGray,
	Revealed:    tcell.ColorYellow,
	Lives:       tcell.ColorRed,
	Prompt:      tcell.ColorWhite,
	Input:       tcell.ColorLightBlue,
	Good:        tcell.ColorGreen,
	Bad:         tcell.ColorRed,
	Title:       tcell.ColorPurple,
}

// Resolve converts every hex color. Entries that fail to parse fall back to
// the matching DefaultTheme color.
func (d ThemeDef) Resolve() Theme {
	return Theme{
		Placeholder: colorOr(d.Placeholder, DefaultTheme.Placeholder),
		Revealed:    colorOr(d.Revealed, DefaultTheme.Revealed),
		Lives:       colorOr(d.Lives, DefaultTheme.Lives),
		Prompt:      colorOr(d.Prompt, DefaultTheme.Prompt),
		Input:       colorOr(d.Input, DefaultTheme.Input),
		Good:        colorOr(d.Good, DefaultTheme.Good),
		Bad:         colorOr(d.Bad, DefaultTheme.Bad),
		Title:       colorOr(d.Title, DefaultTheme.Title),
	}
}

// LoadTheme loads the embedded theme.json.
func LoadTheme() (Theme, error) {
	def, err := Load[ThemeDef]("theme.json")
	if err != nil {
		return DefaultTheme, err
	}
	return def.Resolve(), nil
}

func colorOr(hex string, fallback tcell.Color) tcell.Color {
	c, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return c
}
