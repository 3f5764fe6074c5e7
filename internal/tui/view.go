package tui

import (
	"fmt"
	"strings"

	"botscope/internal/catalog"
	"botscope/internal/listing"

	"github.com/charmbracelet/lipgloss"
)

const nothingFound = "Nothing found. Try changing the query or filters."

var tabLabels = map[listing.Tab]string{
	listing.TabPopular: "Popular",
	listing.TabNew:     "New",
	listing.TabAI:      "AI",
}

func stars(rating int) string {
	rating = catalog.ClampRating(rating)
	return strings.Repeat("★", rating) + strings.Repeat("☆", catalog.MaxRating-rating)
}

func (m *Model) View() string {
	s := m.styles
	state := m.vm.State()

	sections := []string{m.renderHeader()}
	if m.form != nil {
		sections = append(sections, m.form.View(s), m.help.View(formKeys{m.keys}))
		return s.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	}

	sections = append(sections,
		m.search.View(),
		s.Filters.Render(m.renderFilters(state)),
		m.renderTabs(state.ActiveTab),
		m.renderList(state.CompactLayout),
	)
	if m.status != "" {
		sections = append(sections, s.Status.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))
	return s.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) renderHeader() string {
	s := m.styles
	plane := "✈"
	if m.frame.Plane.RotZ < 0 {
		plane = "➤"
	}
	lift := int((m.frame.Plane.Position.Y - 0.05) / 0.1)
	if lift < 0 {
		lift = 0
	}
	art := s.Hero.Render(m.frame.Strip(m.scene) + " " + strings.Repeat(" ", lift) + plane)
	return s.Header.Render("BotScope") + s.Muted.Render(" · chat-bot reviews  ") + art
}

func (m *Model) renderFilters(state listing.FilterState) string {
	compact := "off"
	if state.CompactLayout {
		compact = "on"
	}
	theme := "light"
	if state.DarkTheme {
		theme = "dark"
	}
	return fmt.Sprintf("min rating %d+  ·  language %s  ·  compact %s  ·  theme %s",
		state.MinRating, state.LanguageFilter, compact, theme)
}

func (m *Model) renderTabs(active listing.Tab) string {
	tabs := make([]string, 0, len(listing.Tabs))
	for _, t := range listing.Tabs {
		label := tabLabels[t]
		if t == active {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderList(compact bool) string {
	if len(m.items) == 0 {
		return m.styles.Empty.Render(nothingFound)
	}

	rows := make([]string, 0, len(m.items))
	for i, e := range m.items {
		if compact {
			rows = append(rows, m.renderCompactRow(e, i == m.cursor))
		} else {
			rows = append(rows, m.renderCard(e, i == m.cursor))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderCompactRow(e catalog.BotEntry, selected bool) string {
	s := m.styles
	cursor := "  "
	if selected {
		cursor = s.FocusedLabel.Render("▸ ")
	}
	return cursor + s.Title.Render(e.Title) + "  " + s.Stars.Render(stars(e.Rating)) +
		s.Muted.Render(fmt.Sprintf(" (%d)", e.Votes))
}

func (m *Model) renderCard(e catalog.BotEntry, selected bool) string {
	s := m.styles

	tags := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		tags = append(tags, "#"+t)
	}

	lines := []string{
		s.Title.Render(e.Title) + "  " + s.Stars.Render(stars(e.Rating)) +
			s.Muted.Render(fmt.Sprintf(" %d votes", e.Votes)),
		s.Description.Render(e.Description),
		s.Tag.Render(strings.Join(tags, " ")) + s.Muted.Render("  "+strings.Join(e.Languages, " · ")),
	}

	card := s.Card
	if selected {
		card = s.CardSelected
	}
	width := m.width - 4
	if width > 20 {
		card = card.Width(width)
	}
	return card.Render(strings.Join(lines, "\n"))
}
