// Package boot drives the terminal login that gates the terminal skin: a
// script of commands typed one character at a time, each optionally followed
// by a block of output, then a single completion signal.
package boot

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Line is one scripted command.
type Line struct {
	Command string `yaml:"cmd" json:"cmd"`
	// Output is shown as a block once the command is typed. nil means the
	// line has no output; an empty non-nil slice still takes the output path.
	Output []string `yaml:"output,omitempty" json:"output,omitempty"`
	// Speed is the interval between revealed characters.
	Speed time.Duration `yaml:"speed" json:"speed_ns"`
	// Delay is the pause between the line becoming active and typing.
	Delay time.Duration `yaml:"delay" json:"delay_ns"`
}

// HasOutput reports whether the line declares an output block.
func (l Line) HasOutput() bool { return l.Output != nil }

// Len is the command length in characters.
func (l Line) Len() int { return utf8.RuneCountInString(l.Command) }

// Prefix returns the first n characters of the command.
func (l Line) Prefix(n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range l.Command {
		if i == n {
			return l.Command[:pos]
		}
		i++
	}
	return l.Command
}

// Phase is where a line is in its lifecycle.
type Phase int

const (
	PhasePending Phase = iota
	PhaseTyping
	PhaseTyped
	PhaseOutputVisible
	PhaseComplete
)

var phaseNames = [...]string{"pending", "typing", "typed", "output", "complete"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a phase name.
func (p *Phase) UnmarshalText(b []byte) error {
	for i, name := range phaseNames {
		if name == string(b) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", b)
}

// LineState is the typewriter state of a single line.
type LineState struct {
	Phase         Phase
	Revealed      int
	Typed         bool
	OutputVisible bool
}

// Timing holds the fixed pauses between phases. Per-line pacing lives on Line.
type Timing struct {
	OutputSettle          time.Duration `yaml:"output_settle"`
	CompleteAfterOutput   time.Duration `yaml:"complete_after_output"`
	CompleteWithoutOutput time.Duration `yaml:"complete_without_output"`
	FinalDelay            time.Duration `yaml:"final_delay"`
}

// DefaultTiming matches the pacing of the terminal skin.
func DefaultTiming() Timing {
	return Timing{
		OutputSettle:          300 * time.Millisecond,
		CompleteAfterOutput:   200 * time.Millisecond,
		CompleteWithoutOutput: 400 * time.Millisecond,
		FinalDelay:            800 * time.Millisecond,
	}
}
