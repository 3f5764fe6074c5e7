package listing

import (
	"errors"
	"strings"
	"testing"

	"botscope/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeBots is the catalog of the first release of the page. None of the
// entries declare a language.
func threeBots() []catalog.BotEntry {
	return []catalog.BotEntry{
		{ID: "1", Title: "Tarot Whisper | Шёпот карт", Description: "Карта дня и расклады.", Rating: 4, Votes: 128, Tags: []string{"AI", "Lifestyle"}},
		{ID: "2", Title: "SongGift", Description: "Персональные песни по заявке.", Rating: 5, Votes: 312, Tags: []string{"Music"}},
		{ID: "3", Title: "TravelDeal Hunter", Description: "Авиабилеты и отели.", Rating: 4, Votes: 98, Tags: []string{"Travel"}},
	}
}

func titles(entries []catalog.BotEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Title)
	}
	return out
}

func ids(entries []catalog.BotEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestDefaultsReturnWholeCatalog(t *testing.T) {
	vm := New(catalog.BuiltIn(), "")
	assert.Equal(t, DefaultFilterState(), vm.State())
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(vm.Derive()))
}

func TestScenarioQuerySong(t *testing.T) {
	vm := New(threeBots(), "")
	vm.SetQueryText("song")
	assert.Equal(t, []string{"SongGift"}, titles(vm.Derive()))
}

func TestScenarioMinRatingFive(t *testing.T) {
	vm := New(threeBots(), "")
	vm.SetMinRating(5)
	assert.Equal(t, []string{"SongGift"}, titles(vm.Derive()))
}

func TestScenarioAITab(t *testing.T) {
	vm := New(threeBots(), "")
	require.NoError(t, vm.SetActiveTab(TabAI))
	assert.Equal(t, []string{"Tarot Whisper | Шёпот карт"}, titles(vm.Derive()))
}

func TestScenarioUnknownLanguageIsEmpty(t *testing.T) {
	vm := New(threeBots(), "")
	vm.SetLanguageFilter("EN")
	got := vm.Derive()
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestQueryMatchesAnySubstringCaseInsensitive(t *testing.T) {
	entries := catalog.BuiltIn()
	for _, e := range entries {
		for _, text := range []string{e.Title, e.Description} {
			runes := []rune(text)
			for i := 0; i < len(runes); i += 3 {
				end := i + 4
				if end > len(runes) {
					end = len(runes)
				}
				q := string(runes[i:end])
				for _, variant := range []string{q, strings.ToUpper(q), strings.ToLower(q)} {
					got := Derive(entries, FilterState{QueryText: variant, LanguageFilter: catalog.LanguageAll, ActiveTab: TabPopular})
					assert.Contains(t, ids(got), e.ID, "query %q should match %q", variant, text)
				}
			}
		}
	}
}

func TestQueryMatchesCyrillicRegardlessOfCase(t *testing.T) {
	vm := New(threeBots(), "")
	vm.SetQueryText("ШЁПОТ")
	assert.Equal(t, []string{"1"}, ids(vm.Derive()))

	vm.SetQueryText("карта ДНЯ")
	assert.Equal(t, []string{"1"}, ids(vm.Derive()))
}

func TestMinRatingIsMonotonic(t *testing.T) {
	entries := catalog.BuiltIn()
	prev := Derive(entries, FilterState{LanguageFilter: catalog.LanguageAll, ActiveTab: TabPopular})
	for r := 1; r <= 5; r++ {
		cur := Derive(entries, FilterState{MinRating: r, LanguageFilter: catalog.LanguageAll, ActiveTab: TabPopular})
		assert.Subset(t, ids(prev), ids(cur), "rating %d", r)
		for _, e := range cur {
			assert.GreaterOrEqual(t, e.Rating, r)
		}
		prev = cur
	}
}

func TestSetMinRatingClamps(t *testing.T) {
	vm := New(catalog.BuiltIn(), "")
	vm.SetMinRating(-4)
	assert.Equal(t, 0, vm.State().MinRating)
	vm.SetMinRating(42)
	assert.Equal(t, 5, vm.State().MinRating)
}

func TestNewTabReverses(t *testing.T) {
	entries := catalog.BuiltIn()
	popular := Derive(entries, FilterState{MinRating: 4, LanguageFilter: catalog.LanguageAll, ActiveTab: TabPopular})
	fresh := Derive(entries, FilterState{MinRating: 4, LanguageFilter: catalog.LanguageAll, ActiveTab: TabNew})
	require.Len(t, fresh, len(popular))
	for i := range popular {
		assert.Equal(t, popular[i].ID, fresh[len(fresh)-1-i].ID)
	}

	twice := Derive(fresh, FilterState{MinRating: 4, LanguageFilter: catalog.LanguageAll, ActiveTab: TabNew})
	assert.Equal(t, ids(popular), ids(twice))
}

func TestAITabIsSubsetWithAITag(t *testing.T) {
	entries := catalog.BuiltIn()
	all := Derive(entries, FilterState{LanguageFilter: catalog.LanguageAll, ActiveTab: TabPopular})
	ai := Derive(entries, FilterState{LanguageFilter: catalog.LanguageAll, ActiveTab: TabAI})
	assert.Subset(t, ids(all), ids(ai))
	for _, e := range all {
		if e.HasTag(catalog.TagAI) {
			assert.Contains(t, ids(ai), e.ID)
		} else {
			assert.NotContains(t, ids(ai), e.ID)
		}
	}
}

func TestLanguageFilter(t *testing.T) {
	vm := New(catalog.BuiltIn(), "")
	vm.SetLanguageFilter("en")
	assert.Equal(t, "EN", vm.State().LanguageFilter)
	assert.Equal(t, []string{"1", "3", "4"}, ids(vm.Derive()))

	vm.SetLanguageFilter("DE")
	assert.Empty(t, vm.Derive())

	vm.SetLanguageFilter("")
	assert.Equal(t, catalog.LanguageAll, vm.State().LanguageFilter)
	assert.Len(t, vm.Derive(), 4)
}

func TestSetActiveTabRejectsUnknown(t *testing.T) {
	vm := New(catalog.BuiltIn(), "")
	err := vm.SetActiveTab(Tab("trending"))
	assert.ErrorIs(t, err, ErrUnknownTab)
	assert.Equal(t, TabPopular, vm.State().ActiveTab)
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab(" NEW ")
	require.NoError(t, err)
	assert.Equal(t, TabNew, tab)

	tab, err = ParseTab("")
	require.NoError(t, err)
	assert.Equal(t, TabPopular, tab)

	_, err = ParseTab("oldest")
	assert.True(t, errors.Is(err, ErrUnknownTab))
}

func TestDisplayFlagsDoNotAffectDerivation(t *testing.T) {
	vm := New(catalog.BuiltIn(), "")
	before := ids(vm.Derive())
	vm.SetCompactLayout(true)
	vm.ToggleDarkTheme()
	assert.Equal(t, before, ids(vm.Derive()))
	assert.True(t, vm.State().CompactLayout)
	assert.False(t, vm.State().DarkTheme)
}

func TestDeriveIsPureAndRepeatable(t *testing.T) {
	vm := New(catalog.BuiltIn(), "v1")
	vm.SetQueryText("о")
	vm.SetMinRating(3)
	first := vm.Derive()
	second := vm.Derive()
	assert.Equal(t, first, second)

	first[0].Tags[0] = "mutated"
	assert.NotEqual(t, "mutated", vm.Derive()[0].Tags[0])
}

func TestNewCopiesCatalog(t *testing.T) {
	entries := catalog.BuiltIn()
	vm := New(entries, "")
	entries[0].Title = "changed"
	entries[0].Languages[0] = "XX"
	got := vm.Derive()
	assert.Equal(t, "Tarot Whisper | Шёпот карт", got[0].Title)
	assert.Equal(t, "RU", got[0].Languages[0])
}

func TestSubscribersRunInOrder(t *testing.T) {
	vm := New(catalog.BuiltIn(), "")
	var order []string
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		vm.Subscribe(func(FilterState) { order = append(order, name) })
	}
	dropX := vm.Subscribe(func(FilterState) { order = append(order, "x") })
	dropX()

	for i := 1; i <= 10; i++ {
		order = order[:0]
		vm.SetMinRating(i % 2)
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, order)
	}
}

func TestUnsubscribeInsideNotification(t *testing.T) {
	vm := New(catalog.BuiltIn(), "")
	calls := 0
	var drop func()
	drop = vm.Subscribe(func(FilterState) {
		calls++
		drop()
	})
	seen := 0
	vm.Subscribe(func(FilterState) { seen++ })

	vm.SetQueryText("a")
	vm.SetQueryText("b")
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, seen)
}

func TestSubscribeNotifiesOnChange(t *testing.T) {
	vm := New(catalog.BuiltIn(), "")
	var seen []FilterState
	unsubscribe := vm.Subscribe(func(st FilterState) { seen = append(seen, st) })

	vm.SetQueryText("gift")
	vm.SetQueryText("gift")
	vm.SetMinRating(9)
	require.Len(t, seen, 2)
	assert.Equal(t, "gift", seen[0].QueryText)
	assert.Equal(t, 5, seen[1].MinRating)

	unsubscribe()
	vm.Reset()
	assert.Len(t, seen, 2)
	assert.Equal(t, DefaultFilterState(), vm.State())
}
