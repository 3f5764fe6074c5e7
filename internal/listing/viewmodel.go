package listing

import (
	"botscope/internal/catalog"
)

// Observer is called after a setter changed the state.
type Observer func(FilterState)

type subscription struct {
	id int
	fn Observer
}

// ViewModel owns a FilterState over a fixed catalog. It is not safe for
// concurrent use; one surface drives it from a single goroutine.
type ViewModel struct {
	entries []catalog.BotEntry
	version string
	state   FilterState

	observers []subscription
	nextObs   int

	memoKey   FilterState
	memoValue []catalog.BotEntry
	memoOK    bool
}

// New copies entries; version identifies the catalog snapshot and may be empty.
func New(entries []catalog.BotEntry, version string) *ViewModel {
	copied := make([]catalog.BotEntry, 0, len(entries))
	for _, e := range entries {
		copied = append(copied, e.Clone())
	}
	return &ViewModel{
		entries:   copied,
		version:   version,
		state:     DefaultFilterState(),
	}
}

func (vm *ViewModel) State() FilterState { return vm.state }

func (vm *ViewModel) Version() string { return vm.version }

func (vm *ViewModel) Len() int { return len(vm.entries) }

func (vm *ViewModel) SetQueryText(s string) {
	vm.update(func(st *FilterState) { st.QueryText = s })
}

// SetMinRating clamps n into [0,5].
func (vm *ViewModel) SetMinRating(n int) {
	n = catalog.ClampRating(n)
	vm.update(func(st *FilterState) { st.MinRating = n })
}

// SetLanguageFilter accepts ALL or any code. Codes absent from the catalog
// produce an empty listing.
func (vm *ViewModel) SetLanguageFilter(code string) {
	code = normalizeLanguage(code)
	vm.update(func(st *FilterState) { st.LanguageFilter = code })
}

func (vm *ViewModel) SetActiveTab(tab Tab) error {
	if !tab.Valid() {
		return ErrUnknownTab
	}
	vm.update(func(st *FilterState) { st.ActiveTab = tab })
	return nil
}

func (vm *ViewModel) SetCompactLayout(on bool) {
	vm.update(func(st *FilterState) { st.CompactLayout = on })
}

func (vm *ViewModel) ToggleCompactLayout() {
	vm.update(func(st *FilterState) { st.CompactLayout = !st.CompactLayout })
}

func (vm *ViewModel) ToggleDarkTheme() {
	vm.update(func(st *FilterState) { st.DarkTheme = !st.DarkTheme })
}

func (vm *ViewModel) Reset() {
	vm.update(func(st *FilterState) { *st = DefaultFilterState() })
}

// Derive returns the visible entries for the current state. Results are
// memoized on the filter fields that affect them.
func (vm *ViewModel) Derive() []catalog.BotEntry {
	key := vm.state.derivationKey()
	if !vm.memoOK || vm.memoKey != key {
		vm.memoValue = Derive(vm.entries, vm.state)
		vm.memoKey = key
		vm.memoOK = true
	}
	out := make([]catalog.BotEntry, 0, len(vm.memoValue))
	for _, e := range vm.memoValue {
		out = append(out, e.Clone())
	}
	return out
}

// Subscribe registers fn and returns a func that removes it. Observers are
// notified in subscription order.
func (vm *ViewModel) Subscribe(fn Observer) func() {
	id := vm.nextObs
	vm.nextObs++
	vm.observers = append(vm.observers, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range vm.observers {
			if sub.id == id {
				vm.observers = append(vm.observers[:i:i], vm.observers[i+1:]...)
				return
			}
		}
	}
}

func (vm *ViewModel) update(mutate func(*FilterState)) {
	next := vm.state
	mutate(&next)
	if next == vm.state {
		return
	}
	vm.state = next
	for _, sub := range vm.observers {
		sub.fn(next)
	}
}
