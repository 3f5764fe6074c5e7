// Package listing holds the directory view-model: the filter state and the
// derivation of the visible entries from the catalog.
package listing

import (
	"errors"
	"fmt"
	"strings"

	"botscope/internal/catalog"

	"golang.org/x/text/cases"
)

var ErrUnknownTab = errors.New("unknown tab")

type Tab string

const (
	TabPopular Tab = "popular"
	TabNew     Tab = "new"
	TabAI      Tab = "ai"
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabPopular, TabNew, TabAI}

func (t Tab) Valid() bool {
	switch t {
	case TabPopular, TabNew, TabAI:
		return true
	}
	return false
}

func (t Tab) String() string { return string(t) }

// ParseTab converts user input into a Tab. Empty input means TabPopular.
func ParseTab(s string) (Tab, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TabPopular, nil
	}
	tab := Tab(s)
	if !tab.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
	}
	return tab, nil
}

// FilterState is comparable so it can key the derivation memo.
type FilterState struct {
	QueryText      string `json:"query"`
	MinRating      int    `json:"min_rating"`
	LanguageFilter string `json:"language"`
	CompactLayout  bool   `json:"compact"`
	ActiveTab      Tab    `json:"tab"`
	DarkTheme      bool   `json:"dark"`
}

func DefaultFilterState() FilterState {
	return FilterState{
		QueryText:      "",
		MinRating:      catalog.MinRating,
		LanguageFilter: catalog.LanguageAll,
		CompactLayout:  false,
		ActiveTab:      TabPopular,
		DarkTheme:      true,
	}
}

// derivationKey drops the display-only fields.
func (s FilterState) derivationKey() FilterState {
	s.CompactLayout = false
	s.DarkTheme = false
	return s
}

// Derive returns the qualifying entries of the catalog after the tab transform.
// The result is never nil.
func Derive(entries []catalog.BotEntry, state FilterState) []catalog.BotEntry {
	fold := cases.Fold()
	query := fold.String(state.QueryText)

	out := make([]catalog.BotEntry, 0, len(entries))
	for _, e := range entries {
		if !qualifies(fold, e, query, state) {
			continue
		}
		if state.ActiveTab == TabAI && !e.HasTag(catalog.TagAI) {
			continue
		}
		out = append(out, e.Clone())
	}

	if state.ActiveTab == TabNew {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func qualifies(fold cases.Caser, e catalog.BotEntry, foldedQuery string, state FilterState) bool {
	if foldedQuery != "" &&
		!strings.Contains(fold.String(e.Title), foldedQuery) &&
		!strings.Contains(fold.String(e.Description), foldedQuery) {
		return false
	}
	if state.MinRating > catalog.MinRating && e.Rating < state.MinRating {
		return false
	}
	if state.LanguageFilter != catalog.LanguageAll && !e.HasLanguage(state.LanguageFilter) {
		return false
	}
	return true
}

func normalizeLanguage(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return catalog.LanguageAll
	}
	return code
}
