// Package tui plays the boot sequence in a terminal and then shows the
// briefing with a keyboard driven FAQ.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ziadkadry99/synthesis/internal/accordion"
	"github.com/ziadkadry99/synthesis/internal/boot"
	"github.com/ziadkadry99/synthesis/internal/content"
	"github.com/ziadkadry99/synthesis/internal/scheduler"
)

type stage int

const (
	stageBoot stage = iota
	stageBriefing
)

// frameMsg carries a boot snapshot from the sequence's timer goroutine.
type frameMsg boot.Snapshot

// relay forwards sequence frames to whatever program is attached. Frames
// produced before Attach are dropped; the first frame only comes after the
// first line's delay.
type relay struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (r *relay) Send(msg tea.Msg) {
	r.mu.Lock()
	f := r.send
	r.mu.Unlock()
	if f != nil {
		f(msg)
	}
}

// Options configures a Model.
type Options struct {
	Scheduler scheduler.Scheduler // defaults to the wall clock
	Timing    boot.Timing         // defaults to boot.DefaultTiming
	SkipBoot  bool
	Width     int // markdown wrap width, 80 if unset
}

// Model is the bubbletea model of the terminal player.
type Model struct {
	content *content.Content
	theme   Theme
	relay   *relay

	scope *scheduler.Scope
	seq   *boot.Sequence
	snap  boot.Snapshot
	stage stage

	faq    *accordion.Accordion
	cursor int

	render   func(string) (string, error)
	briefing string
	width    int
	height   int
	offset   int
}

// NewModel builds a player for c. The boot sequence starts when the program
// calls Init.
func NewModel(c *content.Content, opts Options) Model {
	if opts.Scheduler == nil {
		opts.Scheduler = scheduler.Real{}
	}
	if opts.Timing == (boot.Timing{}) {
		opts.Timing = boot.DefaultTiming()
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}

	r := &relay{}
	scope := scheduler.NewScope(opts.Scheduler)
	m := Model{
		content: c,
		theme:   DefaultTheme(),
		relay:   r,
		scope:   scope,
		seq: boot.New(c.BootScript, scope,
			boot.WithTiming(opts.Timing),
			boot.OnFrame(func(s boot.Snapshot) { r.Send(frameMsg(s)) }),
		),
		faq:    accordion.New(c.FAQ.Items),
		render: NewRenderer(opts.Width),
		width:  opts.Width,
	}
	if opts.SkipBoot {
		m = m.enterBriefing()
	}
	return m
}

// Attach routes sequence frames to send, normally a tea.Program's Send.
func (m Model) Attach(send func(tea.Msg)) {
	m.relay.mu.Lock()
	m.relay.send = send
	m.relay.mu.Unlock()
}

// Init starts the boot sequence unless it was skipped.
func (m Model) Init() tea.Cmd {
	if m.stage != stageBoot {
		return nil
	}
	seq := m.seq
	return func() tea.Msg {
		seq.Start()
		return nil
	}
}

// Update handles frames, window size and keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if m.stage != stageBoot {
			return m, nil
		}
		m.snap = boot.Snapshot(msg)
		if m.snap.Complete {
			m = m.enterBriefing()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.stop()
			return m, tea.Quit
		}
		if m.stage == stageBoot {
			switch msg.String() {
			case "s", "enter", " ":
				m = m.enterBriefing()
			}
			return m, nil
		}
		return m.handleBriefingKeys(msg), nil
	}
	return m, nil
}

func (m Model) handleBriefingKeys(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "j", "down":
		if m.cursor < m.faq.Len()-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter", " ":
		m.faq.Toggle(m.cursor)
	case "pgdown", "ctrl+d":
		m.offset += m.page()
	case "pgup", "ctrl+u":
		m.offset -= m.page()
		if m.offset < 0 {
			m.offset = 0
		}
	case "g", "home":
		m.offset = 0
	}
	return m
}

func (m Model) page() int {
	if m.height > 4 {
		return m.height / 2
	}
	return 10
}

// enterBriefing ends the boot stage. A sequence still running is disposed so
// no further frames arrive.
func (m Model) enterBriefing() Model {
	m.seq.Dispose()
	m.stage = stageBriefing
	if m.briefing == "" {
		out, err := m.render(m.content.Briefing())
		if err != nil {
			out = m.content.Briefing()
		}
		m.briefing = out
	}
	return m
}

func (m Model) stop() {
	m.seq.Dispose()
	m.scope.Close()
}

// View renders the current stage.
func (m Model) View() string {
	if m.stage == stageBoot {
		return renderScreen(m.snap, m.theme) + "\n" + m.theme.Help.Render("s skip • q quit")
	}

	var b strings.Builder
	b.WriteString(m.briefing)
	b.WriteString("\n")
	b.WriteString(m.theme.Title.Render(m.content.FAQ.Title))
	b.WriteString("\n\n")
	b.WriteString(m.renderFAQ())
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("↑/↓ select • enter toggle • pgup/pgdn scroll • q quit"))

	lines := strings.Split(b.String(), "\n")
	if m.height <= 0 {
		return b.String()
	}
	// Keep the FAQ and help visible when scrolled to the bottom.
	maxOffset := len(lines) - m.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	offset := m.offset
	if offset > maxOffset {
		offset = maxOffset
	}
	end := offset + m.height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}

func (m Model) renderFAQ() string {
	text := accordion.RenderText(m.faq.Items(), m.cursor)
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "> "):
			b.WriteString(m.theme.Selected.Render(line))
		case strings.HasPrefix(strings.TrimSpace(line), "│"):
			b.WriteString(m.theme.Answer.Render(line))
		default:
			b.WriteString(m.theme.Command.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Booting reports whether the player is still on the boot screen.
func (m Model) Booting() bool { return m.stage == stageBoot }

// Cursor returns the focused FAQ row.
func (m Model) Cursor() int { return m.cursor }

// FAQ returns the accordion state.
func (m Model) FAQ() accordion.State { return m.faq.State() }

// Sequence returns the boot sequence the model drives.
func (m Model) Sequence() *boot.Sequence { return m.seq }

// Run plays c on the terminal until the user quits or ctx is cancelled.
func Run(ctx context.Context, c *content.Content, opts Options) error {
	m := NewModel(c, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	m.Attach(p.Send)
	defer m.stop()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal player: %w", err)
	}
	return nil
}
