package boot

import (
	"bytes"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/synthesis/internal/scheduler"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func twoLineScript() []Line {
	return []Line{
		{Command: "ab", Speed: ms(10), Delay: ms(100)},
		{Command: "c", Output: []string{"x", "y"}, Speed: ms(5), Delay: ms(50)},
	}
}

type recorder struct {
	clock  *scheduler.Fake
	frames []TimedFrame
}

func (r *recorder) option() Option {
	return OnFrame(func(s Snapshot) {
		r.frames = append(r.frames, TimedFrame{At: r.clock.Now(), Snapshot: s})
	})
}

func TestNothingHappensBeforeStart(t *testing.T) {
	clock := scheduler.NewFake()
	seq := New(twoLineScript(), clock)
	clock.Advance(time.Hour)
	assert.Zero(t, seq.Mutations())
	assert.False(t, seq.Complete())
}

func TestTypewriterRevealsEveryPrefixInOrder(t *testing.T) {
	clock := scheduler.NewFake()
	rec := &recorder{clock: clock}
	seq := New([]Line{{Command: "abc", Speed: ms(30)}}, clock, rec.option())
	seq.Start()
	clock.RunUntilIdle(100)

	var texts []string
	for _, f := range rec.frames {
		l := f.Lines[0]
		if l.Phase == PhaseTyping || (l.Phase == PhaseTyped && len(texts) > 0 && texts[len(texts)-1] != l.Text) {
			texts = append(texts, l.Text)
		}
	}
	assert.Equal(t, []string{"", "a", "ab", "abc"}, texts)
}

func TestRevealedNeverExceedsCommand(t *testing.T) {
	clock := scheduler.NewFake()
	script := twoLineScript()
	var violations int
	var seq *Sequence
	seq = New(script, clock, OnFrame(func(Snapshot) {
		for i, l := range script {
			st := seq.LineState(i)
			if st.Revealed < 0 || st.Revealed > l.Len() {
				violations++
			}
			if st.Revealed == l.Len() && st.Phase >= PhaseTyped && !st.Typed {
				violations++
			}
		}
	}))
	seq.Start()
	clock.RunUntilIdle(100)
	assert.Zero(t, violations)
	assert.True(t, seq.LineState(0).Typed)
	assert.True(t, seq.LineState(1).Typed)
}

func TestOutputNeverVisibleBeforeTyped(t *testing.T) {
	clock := scheduler.NewFake()
	rec := &recorder{clock: clock}
	script := []Line{{Command: "echo $STATUS", Output: []string{"CLEARANCE: GRANTED"}, Speed: ms(7)}}
	seq := New(script, clock, rec.option())
	seq.Start()
	clock.RunUntilIdle(100)

	require.NotEmpty(t, rec.frames)
	sawOutput := false
	for _, f := range rec.frames {
		l := f.Lines[0]
		if len(l.Output) > 0 {
			sawOutput = true
			assert.Equal(t, script[0].Command, l.Text, "output visible at %v before typing finished", f.At)
		}
	}
	assert.True(t, sawOutput)
}

func TestTimingAndFrameSchedule(t *testing.T) {
	clock := scheduler.NewFake()
	rec := &recorder{clock: clock}
	seq := New(twoLineScript(), clock, rec.option())
	seq.Start()
	clock.RunUntilIdle(100)

	type step struct {
		at    time.Duration
		line  int
		phase Phase
		text  string
	}
	want := []step{
		{ms(100), 0, PhaseTyping, ""},
		{ms(110), 0, PhaseTyping, "a"},
		{ms(120), 0, PhaseTyped, "ab"},
		{ms(520), 0, PhaseComplete, "ab"},
		{ms(570), 1, PhaseTyping, ""},
		{ms(575), 1, PhaseTyped, "c"},
		{ms(875), 1, PhaseOutputVisible, "c"},
		{ms(1075), 1, PhaseComplete, "c"},
		{ms(1875), 1, PhaseComplete, "c"},
	}
	require.Len(t, rec.frames, len(want))
	for i, w := range want {
		f := rec.frames[i]
		assert.Equal(t, w.at, f.At, "frame %d time", i)
		l := f.Lines[w.line]
		assert.Equal(t, w.phase, l.Phase, "frame %d phase", i)
		assert.Equal(t, w.text, l.Text, "frame %d text", i)
	}
	assert.False(t, rec.frames[len(want)-2].Complete)
	assert.True(t, rec.frames[len(want)-1].Complete)
}

func TestCompletionFiresOnceAfterAllLines(t *testing.T) {
	clock := scheduler.NewFake()
	script := []Line{
		{Command: "ssh synthesis@mainframe.eth", Speed: ms(50), Delay: ms(700)},
		{Command: "cat /etc/motd", Output: []string{"THE SYNTHESIS"}, Speed: ms(30), Delay: ms(200)},
		{Command: "echo $STATUS", Output: []string{"CLEARANCE: GRANTED"}, Speed: ms(30), Delay: ms(200)},
		{Command: "./load-briefing.sh --full", Output: []string{"Ready."}, Speed: ms(25), Delay: ms(200)},
	}

	var completions int
	var seq *Sequence
	seq = New(script, clock, OnComplete(func() {
		completions++
		for i := range script {
			assert.Equal(t, PhaseComplete, seq.LineState(i).Phase, "line %d not complete at signal", i)
		}
	}))
	seq.Start()

	for i := 0; i < 10000 && !seq.Complete(); i++ {
		clock.Advance(ms(1))
		if !seq.Complete() {
			assert.Zero(t, completions)
		}
	}
	require.True(t, seq.Complete())
	clock.Advance(time.Hour)
	assert.Equal(t, 1, completions)
	assert.Equal(t, 3, seq.Current())
}

func TestCompleteIsTerminal(t *testing.T) {
	clock := scheduler.NewFake()
	seq := New(twoLineScript(), clock)
	seq.Start()
	clock.RunUntilIdle(100)
	require.True(t, seq.Complete())

	n := seq.Mutations()
	seq.Start()
	clock.Advance(time.Hour)
	assert.True(t, seq.Complete())
	assert.Equal(t, n, seq.Mutations())
	assert.Zero(t, clock.Pending())
}

func TestDisposeMidSequenceStopsAllMutation(t *testing.T) {
	clock := scheduler.NewFake()
	scope := scheduler.NewScope(clock)
	script := make([]Line, 5)
	for i := range script {
		script[i] = Line{Command: "run", Output: []string{"ok"}, Speed: ms(10), Delay: ms(100)}
	}

	var frames, completions int
	var seq *Sequence
	seq = New(script, scope,
		OnFrame(func(Snapshot) { frames++ }),
		OnComplete(func() { completions++ }),
	)
	seq.Start()

	for seq.Current() < 2 {
		clock.Advance(ms(1))
	}
	require.Equal(t, PhaseComplete, seq.LineState(1).Phase)

	seq.Dispose()
	scope.Close()
	mutations, framesAtDispose, fired := seq.Mutations(), frames, clock.Fired()
	before := seq.Snapshot()

	clock.Advance(24 * time.Hour)

	assert.True(t, seq.Disposed())
	assert.Equal(t, mutations, seq.Mutations())
	assert.Equal(t, framesAtDispose, frames)
	assert.Equal(t, fired, clock.Fired(), "no callback may fire after disposal")
	assert.Equal(t, before, seq.Snapshot())
	assert.Zero(t, completions)
	assert.Zero(t, clock.Pending())
}

func TestDisposeWithoutScopeStopsPendingTimer(t *testing.T) {
	clock := scheduler.NewFake()
	seq := New(twoLineScript(), clock)
	seq.Start()
	clock.Advance(ms(115))
	seq.Dispose()
	seq.Dispose()
	assert.Zero(t, clock.Pending())
	assert.Equal(t, "a", seq.Snapshot().Lines[0].Text)
}

func TestStartAfterDisposeDoesNothing(t *testing.T) {
	clock := scheduler.NewFake()
	seq := New(twoLineScript(), clock)
	seq.Dispose()
	seq.Start()
	assert.Zero(t, clock.Pending())
}

func TestEmptyScriptCompletesAfterFinalDelay(t *testing.T) {
	clock := scheduler.NewFake()
	var done bool
	seq := New(nil, clock, OnComplete(func() { done = true }))
	seq.Start()
	clock.Advance(ms(799))
	assert.False(t, done)
	clock.Advance(ms(1))
	assert.True(t, done)
	assert.Empty(t, seq.Snapshot().Lines)
}

func TestEmptyCommandGoesStraightToTyped(t *testing.T) {
	clock := scheduler.NewFake()
	seq := New([]Line{{Command: "", Speed: ms(10)}}, clock)
	seq.Start()
	clock.Advance(0)
	st := seq.LineState(0)
	assert.True(t, st.Typed)
	assert.Equal(t, PhaseTyped, st.Phase)
}

func TestEmptyOutputTakesOutputPath(t *testing.T) {
	timing := DefaultTiming()
	with := Record([]Line{{Command: "x", Output: []string{}}}, WithTiming(timing))
	without := Record([]Line{{Command: "x"}}, WithTiming(timing))
	assert.Equal(t, timing.OutputSettle+timing.CompleteAfterOutput+timing.FinalDelay, with.Duration)
	assert.Equal(t, timing.CompleteWithoutOutput+timing.FinalDelay, without.Duration)
}

func TestPrefixCountsCharacters(t *testing.T) {
	l := Line{Command: "╔═╗ok"}
	assert.Equal(t, 5, l.Len())
	assert.Equal(t, "", l.Prefix(0))
	assert.Equal(t, "╔═", l.Prefix(2))
	assert.Equal(t, "╔═╗ok", l.Prefix(5))
	assert.Equal(t, "╔═╗ok", l.Prefix(9))
}

func TestPhaseText(t *testing.T) {
	for p := PhasePending; p <= PhaseComplete; p++ {
		b, err := p.MarshalText()
		require.NoError(t, err)
		var back Phase
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, p, back)
	}
	var p Phase
	assert.Error(t, p.UnmarshalText([]byte("bogus")))
	assert.Equal(t, "phase(9)", Phase(9).String())
}

func TestRecordTimeline(t *testing.T) {
	tl := Record(twoLineScript(), WithPrompt(">"))
	require.NotEmpty(t, tl.Frames)
	assert.Equal(t, ms(1875), tl.Duration)
	assert.Equal(t, int64(1875), tl.TotalMS)

	last := tl.Frames[len(tl.Frames)-1]
	assert.True(t, last.Complete)
	assert.Equal(t, ">", last.Lines[0].Prompt)
	assert.Equal(t, []string{"x", "y"}, last.Lines[1].Output)

	var buf bytes.Buffer
	require.NoError(t, tl.WriteJSON(&buf))
	var decoded struct {
		Frames []struct {
			AtMS     int64 `json:"at_ms"`
			Complete bool  `json:"complete"`
			Lines    []struct {
				Text  string `json:"text"`
				Phase string `json:"phase"`
			} `json:"lines"`
		} `json:"frames"`
		TotalMS int64 `json:"total_ms"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, int64(1875), decoded.TotalMS)
	assert.Equal(t, int64(100), decoded.Frames[0].AtMS)
	assert.Equal(t, "typing", decoded.Frames[0].Lines[0].Phase)
}

func TestRecordKeepsCallerCallbacks(t *testing.T) {
	var seen []Snapshot
	completions := 0
	tl := Record(twoLineScript(),
		OnFrame(func(s Snapshot) { seen = append(seen, s) }),
		OnComplete(func() { completions++ }),
	)

	require.Len(t, seen, len(tl.Frames))
	for i, f := range tl.Frames {
		assert.Equal(t, f.Snapshot, seen[i])
	}
	assert.Equal(t, 1, completions)
}

func TestRunsOnRealClock(t *testing.T) {
	done := make(chan struct{})
	var frames atomic.Int32
	timing := Timing{OutputSettle: ms(1), CompleteAfterOutput: ms(1), CompleteWithoutOutput: ms(1), FinalDelay: ms(1)}
	scope := scheduler.NewScope(scheduler.Real{})
	defer scope.Close()

	seq := New([]Line{{Command: "ok", Output: []string{"done"}, Speed: ms(1)}}, scope,
		WithTiming(timing),
		OnFrame(func(Snapshot) { frames.Add(1) }),
		OnComplete(func() { close(done) }),
	)
	seq.Start()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sequence did not complete")
	}
	assert.True(t, seq.Complete())
	assert.Equal(t, int32(6), frames.Load())
}
