package theme

// DefaultName is the theme used when the configured one is unknown.
const DefaultName = "tokyonight"

func init() {
	RegisterTheme(DefaultName, Palette{
		primary:            pair("#82aaff", "#2e7de9"),
		secondary:          pair("#c099ff", "#9854f1"),
		accent:             pair("#ff966c", "#b15c00"),
		errorC:             pair("#ff757f", "#f52a65"),
		warning:            pair("#ffc777", "#8c6c3e"),
		success:            pair("#c3e88d", "#587539"),
		text:               pair("#c8d3f5", "#3760bf"),
		textMuted:          pair("#636da6", "#848cb5"),
		background:         pair("#222436", "#e1e2e7"),
		backgroundSelected: pair("#2f334d", "#c8c9ce"),
		borderNormal:       pair("#3b4261", "#a8aecb"),
		borderFocused:      pair("#82aaff", "#2e7de9"),
	})

	// https://draculatheme.com/contribute
	RegisterTheme("dracula", Palette{
		primary:            pair("#bd93f9", "#7c3aed"),
		secondary:          pair("#ff79c6", "#c026d3"),
		accent:             pair("#8be9fd", "#0e7490"),
		errorC:             pair("#ff5555", "#dc2626"),
		warning:            pair("#ffb86c", "#c2410c"),
		success:            pair("#50fa7b", "#15803d"),
		text:               pair("#f8f8f2", "#282a36"),
		textMuted:          pair("#6272a4", "#6272a4"),
		background:         pair("#282a36", "#f8f8f2"),
		backgroundSelected: pair("#44475a", "#e5e5e5"),
		borderNormal:       pair("#44475a", "#c4c4c4"),
		borderFocused:      pair("#bd93f9", "#7c3aed"),
	})

	// https://www.nordtheme.com/docs/colors-and-palettes
	RegisterTheme("nord", Palette{
		primary:            pair("#88C0D0", "#5E81AC"),
		secondary:          pair("#81A1C1", "#5E81AC"),
		accent:             pair("#EBCB8B", "#D08770"),
		errorC:             pair("#BF616A", "#BF616A"),
		warning:            pair("#D08770", "#D08770"),
		success:            pair("#A3BE8C", "#A3BE8C"),
		text:               pair("#ECEFF4", "#2E3440"),
		textMuted:          pair("#4C566A", "#4C566A"),
		background:         pair("#2E3440", "#ECEFF4"),
		backgroundSelected: pair("#3B4252", "#E5E9F0"),
		borderNormal:       pair("#434C5E", "#D8DEE9"),
		borderFocused:      pair("#88C0D0", "#5E81AC"),
	})

	RegisterTheme("gruvbox", Palette{
		primary:            pair("#83a598", "#076678"),
		secondary:          pair("#d3869b", "#8f3f71"),
		accent:             pair("#fabd2f", "#b57614"),
		errorC:             pair("#fb4934", "#9d0006"),
		warning:            pair("#fe8019", "#af3a03"),
		success:            pair("#b8bb26", "#79740e"),
		text:               pair("#ebdbb2", "#3c3836"),
		textMuted:          pair("#a89984", "#7c6f64"),
		background:         pair("#282828", "#fbf1c7"),
		backgroundSelected: pair("#504945", "#ebdbb2"),
		borderNormal:       pair("#504945", "#bdae93"),
		borderFocused:      pair("#83a598", "#076678"),
	})

	RegisterTheme("catppuccin", Palette{
		primary:            pair("#89b4fa", "#1e66f5"),
		secondary:          pair("#cba6f7", "#8839ef"),
		accent:             pair("#fab387", "#fe640b"),
		errorC:             pair("#f38ba8", "#d20f39"),
		warning:            pair("#f9e2af", "#df8e1d"),
		success:            pair("#a6e3a1", "#40a02b"),
		text:               pair("#cdd6f4", "#4c4f69"),
		textMuted:          pair("#6c7086", "#9ca0b0"),
		background:         pair("#1e1e2e", "#eff1f5"),
		backgroundSelected: pair("#313244", "#e6e9ef"),
		borderNormal:       pair("#6c7086", "#9ca0b0"),
		borderFocused:      pair("#89b4fa", "#1e66f5"),
	})
}
