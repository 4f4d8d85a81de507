package boot

import (
	"encoding/json"
	"io"
	"time"

	"github.com/ziadkadry99/synthesis/internal/scheduler"
)

// TimedFrame is a snapshot stamped with the time it was produced, measured
// from Start.
type TimedFrame struct {
	At       time.Duration `json:"-"`
	AtMillis int64         `json:"at_ms"`
	Snapshot
}

// Timeline is a complete recorded run of a script.
type Timeline struct {
	Frames   []TimedFrame  `json:"frames"`
	Duration time.Duration `json:"-"`
	TotalMS  int64         `json:"total_ms"`
}

// Record plays script to completion on a virtual clock and returns every
// frame it produced. Static pages replay the result instead of running the
// state machine in the browser. An OnFrame among opts still sees every frame,
// after it has been recorded.
func Record(script []Line, opts ...Option) Timeline {
	clock := scheduler.NewFake()
	var tl Timeline

	seq := New(script, clock, opts...)
	observer := seq.onFrame
	seq.onFrame = func(s Snapshot) {
		at := clock.Now()
		tl.Frames = append(tl.Frames, TimedFrame{At: at, AtMillis: at.Milliseconds(), Snapshot: s})
		if observer != nil {
			observer(s)
		}
	}
	seq.Start()

	// Every character is one step; each line adds at most four more, plus the
	// final completion.
	limit := 1
	for _, l := range script {
		limit += l.Len() + 4
	}
	tl.Duration = clock.RunUntilIdle(limit + 1)
	tl.TotalMS = tl.Duration.Milliseconds()
	return tl
}

// WriteJSON encodes the timeline.
func (tl Timeline) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tl)
}
