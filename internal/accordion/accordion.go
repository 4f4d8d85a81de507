// Package accordion implements the FAQ list shared by every skin: an ordered
// set of question/answer entries of which at most one is expanded.
package accordion

// Entry is one question/answer pair. Entries are supplied by the page content
// and never mutated by the widget.
type Entry struct {
	Question string `yaml:"q" json:"q"`
	Answer   string `yaml:"a" json:"a"`
}

// State records which entry, if any, is expanded. The zero value has every
// entry collapsed.
type State struct {
	open  int
	valid bool
}

// Opened returns a State with entry i expanded.
func Opened(i int) State {
	return State{open: i, valid: true}
}

// Open returns the expanded index. ok is false when everything is collapsed.
func (s State) Open() (index int, ok bool) {
	return s.open, s.valid
}

// IsOpen reports whether entry i is the expanded one.
func (s State) IsOpen(i int) bool {
	return s.valid && s.open == i
}

// Toggle collapses entry i if it is expanded, otherwise expands it and
// collapses whichever entry was open before.
func (s *State) Toggle(i int) {
	*s = s.Toggled(i)
}

// Toggled is the pure form of Toggle: the state that toggling i would produce.
func (s State) Toggled(i int) State {
	if s.IsOpen(i) {
		return State{}
	}
	return Opened(i)
}

// Clamp returns s with any expanded index outside [0, n) collapsed.
func (s State) Clamp(n int) State {
	if s.valid && (s.open < 0 || s.open >= n) {
		return State{}
	}
	return s
}

// Accordion is one widget instance: the entries it presents plus the state
// it owns.
type Accordion struct {
	entries []Entry
	state   State
}

// New returns an Accordion over entries with everything collapsed.
func New(entries []Entry) *Accordion {
	return &Accordion{entries: entries}
}

// Len returns the number of entries.
func (a *Accordion) Len() int { return len(a.entries) }

// Entries returns the entries in render order.
func (a *Accordion) Entries() []Entry { return a.entries }

// State returns the current state.
func (a *Accordion) State() State { return a.state }

// SetState replaces the state, collapsing out-of-range indices.
func (a *Accordion) SetState(s State) {
	a.state = s.Clamp(len(a.entries))
}

// Toggle flips entry i. Indices outside the entry list are ignored.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= len(a.entries) {
		return
	}
	a.state.Toggle(i)
}

// Item is the view of one entry under a given state.
type Item struct {
	Index    int
	Entry    Entry
	Expanded bool
	// Next is the state clicking this entry's header leads to.
	Next State
}

// Items returns the render model for the accordion's current state.
func (a *Accordion) Items() []Item {
	return Items(a.entries, a.state)
}

// Items pairs every entry with its expanded flag under state.
func Items(entries []Entry, state State) []Item {
	state = state.Clamp(len(entries))
	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = Item{
			Index:    i,
			Entry:    e,
			Expanded: state.IsOpen(i),
			Next:     state.Toggled(i),
		}
	}
	return items
}
