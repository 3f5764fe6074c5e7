package tui

import "github.com/charmbracelet/lipgloss"

// Palette is one color theme
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Selected   lipgloss.Color
}

var (
	DarkPalette = Palette{
		Primary:    lipgloss.Color("#38BDF8"), // Sky
		Secondary:  lipgloss.Color("#A78BFA"), // Violet
		Success:    lipgloss.Color("#34D399"), // Emerald
		Warning:    lipgloss.Color("#FBBF24"), // Amber
		Error:      lipgloss.Color("#F87171"), // Red
		Muted:      lipgloss.Color("#94A3B8"), // Slate
		Foreground: lipgloss.Color("#F1F5F9"),
		Border:     lipgloss.Color("#334155"),
		Selected:   lipgloss.Color("#1E293B"),
	}

	LightPalette = Palette{
		Primary:    lipgloss.Color("#0284C7"),
		Secondary:  lipgloss.Color("#7C3AED"),
		Success:    lipgloss.Color("#059669"),
		Warning:    lipgloss.Color("#D97706"),
		Error:      lipgloss.Color("#DC2626"),
		Muted:      lipgloss.Color("#64748B"),
		Foreground: lipgloss.Color("#0F172A"),
		Border:     lipgloss.Color("#CBD5E1"),
		Selected:   lipgloss.Color("#E2E8F0"),
	}
)

// Styles holds the rendered styles for one palette
type Styles struct {
	App          lipgloss.Style
	Header       lipgloss.Style
	Hero         lipgloss.Style
	Filters      lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Title        lipgloss.Style
	Description  lipgloss.Style
	Tag          lipgloss.Style
	Stars        lipgloss.Style
	Muted        lipgloss.Style
	Empty        lipgloss.Style
	Status       lipgloss.Style
	Error        lipgloss.Style
	Dialog       lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Checkbox     string
	CheckboxOff  string
}

func NewStyles(dark bool) Styles {
	p := LightPalette
	if dark {
		p = DarkPalette
	}

	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Hero: lipgloss.NewStyle().
			Foreground(p.Secondary),
		Filters: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginBottom(1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Foreground).
			Background(p.Primary).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Foreground),
		Description: lipgloss.NewStyle().
			Foreground(p.Muted),
		Tag: lipgloss.NewStyle().
			Foreground(p.Secondary),
		Stars: lipgloss.NewStyle().
			Foreground(p.Warning),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		Empty: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true).
			Padding(1, 0),
		Status: lipgloss.NewStyle().
			Foreground(p.Success),
		Error: lipgloss.NewStyle().
			Foreground(p.Error),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Secondary).
			Padding(1, 2),
		Label: lipgloss.NewStyle().
			Foreground(p.Muted),
		FocusedLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Checkbox:    lipgloss.NewStyle().Foreground(p.Success).Render("[✓]"),
		CheckboxOff: lipgloss.NewStyle().Foreground(p.Muted).Render("[ ]"),
	}
}
