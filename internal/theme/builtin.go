package theme

// BuiltinTerminalThemes returns the bundled terminal schemes, available
// when no theme library exists yet. Keyed by theme name.
func BuiltinTerminalThemes() map[string]TerminalTheme {
	return map[string]TerminalTheme{
		"Default Dark":  DefaultDarkTheme(),
		"Default Light": DefaultLightTheme(),
	}
}

// DefaultDarkTheme is the stock dark scheme seeded for new themes.
func DefaultDarkTheme() TerminalTheme {
	return TerminalTheme{
		Name:         "Default Dark",
		Background:   "#000000",
		Foreground:   "#FFFFFF",
		Cursor:       "#FFFFFF",
		Selection:    "#FFFFFF",
		Black:        "#000000",
		Red:          "#FF0000",
		Green:        "#00FF00",
		Yellow:       "#FFFF00",
		Blue:         "#0000FF",
		Purple:       "#FF00FF",
		Cyan:         "#00FFFF",
		White:        "#FFFFFF",
		BrightBlack:  "#808080",
		BrightRed:    "#FF8080",
		BrightGreen:  "#80FF80",
		BrightYellow: "#FFFF80",
		BrightBlue:   "#8080FF",
		BrightPurple: "#FF80FF",
		BrightCyan:   "#80FFFF",
		BrightWhite:  "#FFFFFF",
	}
}

// DefaultLightTheme is the light counterpart of DefaultDarkTheme.
func DefaultLightTheme() TerminalTheme {
	return TerminalTheme{
		Name:         "Default Light",
		Background:   "#FFFFFF",
		Foreground:   "#000000",
		Cursor:       "#000000",
		Selection:    "#B5D5FF",
		Black:        "#000000",
		Red:          "#C91B00",
		Green:        "#00A600",
		Yellow:       "#C7C400",
		Blue:         "#0225C7",
		Purple:       "#CA30C7",
		Cyan:         "#00A2B2",
		White:        "#BFBFBF",
		BrightBlack:  "#686868",
		BrightRed:    "#FF6E67",
		BrightGreen:  "#5FFA68",
		BrightYellow: "#FFFC67",
		BrightBlue:   "#6871FF",
		BrightPurple: "#FF77FF",
		BrightCyan:   "#60FDFF",
		BrightWhite:  "#FFFFFF",
	}
}
