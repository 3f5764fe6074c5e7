// Package tui is the terminal front end of the directory. It forwards key
// presses to a listing.ViewModel and renders whatever the view-model derives.
package tui

import (
	"context"
	"log/slog"
	"time"

	"botscope/internal/catalog"
	"botscope/internal/hero"
	"botscope/internal/listing"
	"botscope/internal/reviews"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	frameInterval = time.Second / 15
	submitTimeout = 10 * time.Second
)

type frameMsg time.Time

type reviewSubmittedMsg struct {
	review reviews.Review
	err    error
}

// Model is the Bubble Tea model of the listing screen
type Model struct {
	vm          *listing.ViewModel
	unsubscribe func()
	languages   []string
	reviews     *reviews.Service
	log         *slog.Logger

	keys   KeyMap
	help   help.Model
	search textinput.Model
	form   *reviewForm
	styles Styles

	scene hero.Scene
	frame hero.Frame
	start time.Time

	items  []catalog.BotEntry
	cursor int
	status string

	width  int
	height int
}

// New builds the model around vm. languages feeds the language cycle; ALL is
// always the first option.
func New(vm *listing.ViewModel, languages []string, svc *reviews.Service, log *slog.Logger) *Model {
	if svc == nil {
		svc = reviews.NewService(nil, nil)
	}
	if log == nil {
		log = slog.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "Search bots by name or description... (press /)"
	ti.CharLimit = 200
	ti.Width = 60
	ti.Prompt = "⌕ "

	m := &Model{
		vm:        vm,
		languages: languageCycle(languages),
		reviews:   svc,
		log:       log,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		search:    ti,
		scene:     hero.DefaultScene(),
		start:     time.Now(),
		width:     80,
		height:    24,
	}
	m.frame = m.scene.Frame(0)
	m.refresh(vm.State())
	m.unsubscribe = vm.Subscribe(m.refresh)
	return m
}

func languageCycle(languages []string) []string {
	out := []string{catalog.LanguageAll}
	for _, l := range languages {
		if l == "" || l == catalog.LanguageAll {
			continue
		}
		out = append(out, l)
	}
	return out
}

// refresh is the view-model observer: it re-derives the visible entries.
func (m *Model) refresh(state listing.FilterState) {
	m.items = m.vm.Derive()
	m.styles = NewStyles(state.DarkTheme)
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Close detaches the model from the view-model.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.frame = m.scene.Frame(time.Time(msg).Sub(m.start))
		return m, tick()

	case reviewSubmittedMsg:
		return m.handleSubmitted(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.form != nil {
		return m.handleFormKeys(msg)
	}
	if m.search.Focused() {
		return m.handleSearchKeys(msg)
	}
	return m.handleListKeys(msg)
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) || msg.String() == "enter" {
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.vm.SetQueryText(m.search.Value())
	return m, cmd
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.vm.State()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Escape):
		m.status = ""
		m.search.SetValue("")
		m.vm.SetQueryText("")

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Theme):
		m.vm.ToggleDarkTheme()

	case key.Matches(msg, m.keys.RatingUp):
		m.vm.SetMinRating(state.MinRating + 1)

	case key.Matches(msg, m.keys.RatingDn):
		m.vm.SetMinRating(state.MinRating - 1)

	case key.Matches(msg, m.keys.Language):
		m.vm.SetLanguageFilter(m.nextLanguage(state.LanguageFilter))

	case key.Matches(msg, m.keys.Compact):
		m.vm.ToggleCompactLayout()

	case key.Matches(msg, m.keys.NextTab):
		m.setTab(shiftTab(state.ActiveTab, 1))

	case key.Matches(msg, m.keys.PrevTab):
		m.setTab(shiftTab(state.ActiveTab, -1))

	case key.Matches(msg, m.keys.Popular):
		m.setTab(listing.TabPopular)

	case key.Matches(msg, m.keys.New):
		m.setTab(listing.TabNew)

	case key.Matches(msg, m.keys.AI):
		m.setTab(listing.TabAI)

	case key.Matches(msg, m.keys.AddReview):
		m.form = newReviewForm()
		m.status = ""
		return m, m.form.setFocus(fieldName)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) {
		m.form = nil
		return m, nil
	}

	submit, cmd := m.form.update(msg, m.keys)
	if submit {
		return m, m.submitReview(m.form.Form())
	}
	return m, cmd
}

func (m *Model) submitReview(form reviews.Form) tea.Cmd {
	svc := m.reviews
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		review, err := svc.Submit(ctx, form)
		return reviewSubmittedMsg{review: review, err: err}
	}
}

func (m *Model) handleSubmitted(msg reviewSubmittedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Error("tui review: submit failed", slog.String("error", msg.err.Error()))
		if m.form != nil {
			m.form.busy = false
			m.form.err = "Could not send the review, try again later."
		}
		return m, nil
	}

	m.log.Info("tui review: submitted", slog.String("review_id", msg.review.ID))
	m.form = nil
	m.status = "Thanks! Your review was sent for moderation."
	return m, nil
}

func (m *Model) setTab(tab listing.Tab) {
	if err := m.vm.SetActiveTab(tab); err != nil {
		m.log.Warn("tui tabs: rejected", slog.String("tab", tab.String()))
	}
}

func shiftTab(current listing.Tab, delta int) listing.Tab {
	idx := 0
	for i, t := range listing.Tabs {
		if t == current {
			idx = i
			break
		}
	}
	n := len(listing.Tabs)
	return listing.Tabs[((idx+delta)%n+n)%n]
}

func (m *Model) nextLanguage(current string) string {
	for i, l := range m.languages {
		if l == current {
			return m.languages[(i+1)%len(m.languages)]
		}
	}
	return catalog.LanguageAll
}
