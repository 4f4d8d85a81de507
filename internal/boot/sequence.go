package boot

import (
	"sync"
	"time"

	"github.com/ziadkadry99/synthesis/internal/scheduler"
)

// LineView is what a renderer needs to draw one started line.
type LineView struct {
	Prompt  string   `json:"prompt"`
	Text    string   `json:"text"`
	Output  []string `json:"output,omitempty"`
	Phase   Phase    `json:"phase"`
	Cursor  bool     `json:"cursor"`
	Visible bool     `json:"visible"`
}

// Snapshot is the full render state of a sequence after a mutation.
type Snapshot struct {
	Current  int        `json:"current"`
	Complete bool       `json:"complete"`
	Lines    []LineView `json:"lines"`
}

// Option configures a Sequence.
type Option func(*Sequence)

// WithTiming overrides DefaultTiming.
func WithTiming(t Timing) Option {
	return func(s *Sequence) { s.timing = t }
}

// WithPrompt sets the prompt drawn before each command; "$" by default.
func WithPrompt(p string) Option {
	return func(s *Sequence) { s.prompt = p }
}

// OnFrame registers a callback invoked with a snapshot after every state
// change. It runs on the scheduler's goroutine without the sequence lock held.
func OnFrame(f func(Snapshot)) Option {
	return func(s *Sequence) { s.onFrame = f }
}

// OnComplete registers the callback invoked once when the script finishes.
func OnComplete(f func()) Option {
	return func(s *Sequence) { s.onComplete = f }
}

// Sequence plays a script strictly in order. At most one timer is pending at
// any moment and every transition goes through advance, so Dispose only has
// one timer to stop.
type Sequence struct {
	script     []Line
	timing     Timing
	prompt     string
	sched      scheduler.Scheduler
	onFrame    func(Snapshot)
	onComplete func()

	mu        sync.Mutex
	lines     []LineState
	current   int
	complete  bool
	started   bool
	disposed  bool
	pending   scheduler.Timer
	mutations int
}

// New returns a sequence over script that schedules on sched. Nothing happens
// until Start.
func New(script []Line, sched scheduler.Scheduler, opts ...Option) *Sequence {
	s := &Sequence{
		script: script,
		timing: DefaultTiming(),
		prompt: "$",
		sched:  sched,
		lines:  make([]LineState, len(script)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start activates the first line. Calling it again, or after Dispose, does
// nothing.
func (s *Sequence) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.disposed {
		return
	}
	s.started = true
	if len(s.script) == 0 {
		s.scheduleLocked(s.timing.FinalDelay)
		return
	}
	s.scheduleLocked(s.script[0].Delay)
}

// Dispose cancels the pending timer. After it returns the sequence never
// changes again and no further callbacks are started.
func (s *Sequence) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	s.disposed = true
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

// Disposed reports whether Dispose has been called.
func (s *Sequence) Disposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// Complete reports whether the whole script has finished.
func (s *Sequence) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.complete
}

// Current returns the index of the active line. After the last line
// finishes it stays on that line.
func (s *Sequence) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

// LineState returns the typewriter state of line i.
func (s *Sequence) LineState(i int) LineState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.lines) {
		return LineState{}
	}
	return s.lines[i]
}

// Mutations counts state changes so far.
func (s *Sequence) Mutations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutations
}

// Snapshot returns the current render state.
func (s *Sequence) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Sequence) currentLocked() int {
	if s.current >= len(s.script) && len(s.script) > 0 {
		return len(s.script) - 1
	}
	return s.current
}

func (s *Sequence) snapshotLocked() Snapshot {
	snap := Snapshot{Current: s.currentLocked(), Complete: s.complete}
	if len(s.script) == 0 {
		return snap
	}
	last := s.currentLocked()
	snap.Lines = make([]LineView, 0, last+1)
	for i := 0; i <= last; i++ {
		line, st := s.script[i], s.lines[i]
		view := LineView{
			Prompt:  s.prompt,
			Text:    line.Prefix(st.Revealed),
			Phase:   st.Phase,
			Cursor:  st.Phase == PhaseTyping,
			Visible: st.Phase != PhasePending,
		}
		if st.OutputVisible {
			view.Output = append([]string(nil), line.Output...)
		}
		snap.Lines = append(snap.Lines, view)
	}
	return snap
}

func (s *Sequence) scheduleLocked(d time.Duration) {
	s.pending = s.sched.AfterFunc(d, s.advance)
}

// advance performs exactly one transition and schedules the next one.
func (s *Sequence) advance() {
	s.mu.Lock()
	if s.disposed || s.complete {
		s.mu.Unlock()
		return
	}
	s.pending = nil
	s.mutations++

	finished := s.stepLocked()
	snap := s.snapshotLocked()
	onFrame, onComplete := s.onFrame, s.onComplete
	s.mu.Unlock()

	if onFrame != nil {
		onFrame(snap)
	}
	if finished && onComplete != nil {
		onComplete()
	}
}

// stepLocked applies one transition and reports whether the script just
// finished.
func (s *Sequence) stepLocked() bool {
	if s.current >= len(s.script) {
		s.complete = true
		return true
	}

	line := s.script[s.current]
	st := &s.lines[s.current]

	switch st.Phase {
	case PhasePending:
		st.Phase = PhaseTyping
		if line.Len() == 0 {
			s.typedLocked(line, st)
			return false
		}
		s.scheduleLocked(line.Speed)

	case PhaseTyping:
		st.Revealed++
		if st.Revealed >= line.Len() {
			s.typedLocked(line, st)
			return false
		}
		s.scheduleLocked(line.Speed)

	case PhaseTyped:
		if line.HasOutput() {
			st.Phase = PhaseOutputVisible
			st.OutputVisible = true
			s.scheduleLocked(s.timing.CompleteAfterOutput)
			return false
		}
		s.finishLineLocked(st)

	case PhaseOutputVisible:
		s.finishLineLocked(st)
	}
	return false
}

func (s *Sequence) typedLocked(line Line, st *LineState) {
	st.Revealed = line.Len()
	st.Typed = true
	st.Phase = PhaseTyped
	if line.HasOutput() {
		s.scheduleLocked(s.timing.OutputSettle)
	} else {
		s.scheduleLocked(s.timing.CompleteWithoutOutput)
	}
}

func (s *Sequence) finishLineLocked(st *LineState) {
	st.Phase = PhaseComplete
	s.current++
	if s.current < len(s.script) {
		s.scheduleLocked(s.script[s.current].Delay)
		return
	}
	s.scheduleLocked(s.timing.FinalDelay)
}
