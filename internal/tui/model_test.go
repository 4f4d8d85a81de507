package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/synthesis/internal/boot"
	"github.com/ziadkadry99/synthesis/internal/content"
	"github.com/ziadkadry99/synthesis/internal/scheduler"
)

func testContent() *content.Content {
	c := content.Default()
	c.BootScript = []boot.Line{
		{Command: "ls", Output: []string{"briefing.md"}, Speed: 10 * time.Millisecond, Delay: 10 * time.Millisecond},
		{Command: "cat briefing.md", Speed: 10 * time.Millisecond, Delay: 10 * time.Millisecond},
	}
	return c
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return nm, cmd
}

func TestBootFramesLeadToBriefing(t *testing.T) {
	clock := scheduler.NewFake()
	m := NewModel(testContent(), Options{Scheduler: clock})

	var msgs []tea.Msg
	m.Attach(func(msg tea.Msg) { msgs = append(msgs, msg) })

	require.True(t, m.Booting())
	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	assert.Equal(t, 1, clock.Pending())

	clock.RunUntilIdle(1000)
	require.NotEmpty(t, msgs)

	sawCursor := false
	for _, msg := range msgs {
		m, _ = update(t, m, msg)
		if m.Booting() && strings.Contains(m.View(), cursorGlyph) {
			sawCursor = true
		}
	}
	assert.True(t, sawCursor, "typing frames should show the cursor")
	assert.False(t, m.Booting(), "complete frame should open the briefing")
	assert.Contains(t, m.View(), "Can humans and agents team up?")
}

func TestBootViewShowsTypedPrefix(t *testing.T) {
	clock := scheduler.NewFake()
	m := NewModel(testContent(), Options{Scheduler: clock})

	var last tea.Msg
	m.Attach(func(msg tea.Msg) { last = msg })
	m.Init()()

	// Typing starts after the 10ms delay and reveals one rune per 10ms.
	clock.Advance(30 * time.Millisecond)
	require.NotNil(t, last)
	m, _ = update(t, m, last)
	view := m.View()
	assert.Contains(t, view, "ls")
	assert.NotContains(t, view, "briefing.md", "output waits for the settle delay")

	clock.Advance(boot.DefaultTiming().OutputSettle)
	m, _ = update(t, m, last)
	view = m.View()
	assert.Contains(t, view, "briefing.md")
	assert.NotContains(t, view, "cat ", "next line has not started")
}

func TestSkipBoot(t *testing.T) {
	clock := scheduler.NewFake()
	m := NewModel(testContent(), Options{Scheduler: clock, SkipBoot: true})

	assert.False(t, m.Booting())
	assert.Nil(t, m.Init())
	assert.True(t, m.Sequence().Disposed())
	assert.Zero(t, clock.Pending())
}

func TestSkipKeyDisposesSequence(t *testing.T) {
	clock := scheduler.NewFake()
	m := NewModel(testContent(), Options{Scheduler: clock})
	var msgs []tea.Msg
	m.Attach(func(msg tea.Msg) { msgs = append(msgs, msg) })
	m.Init()()
	clock.Advance(15 * time.Millisecond)

	m, _ = update(t, m, key("s"))
	assert.False(t, m.Booting())
	assert.True(t, m.Sequence().Disposed())
	assert.Zero(t, clock.Pending())

	seen := len(msgs)
	clock.Advance(time.Minute)
	assert.Len(t, msgs, seen, "no frames after skipping")
}

func TestAccordionKeys(t *testing.T) {
	m := NewModel(testContent(), Options{Scheduler: scheduler.NewFake(), SkipBoot: true})

	_, ok := m.FAQ().Open()
	assert.False(t, ok, "starts collapsed")

	m, _ = update(t, m, key("enter"))
	i, ok := m.FAQ().Open()
	require.True(t, ok)
	assert.Equal(t, 0, i)

	m, _ = update(t, m, key("down"))
	m, _ = update(t, m, key("down"))
	assert.Equal(t, 2, m.Cursor())
	m, _ = update(t, m, key("enter"))
	i, _ = m.FAQ().Open()
	assert.Equal(t, 2, i, "opening another entry closes the first")

	m, _ = update(t, m, key("enter"))
	_, ok = m.FAQ().Open()
	assert.False(t, ok, "toggling the open entry collapses it")

	m, _ = update(t, m, key("up"))
	m, _ = update(t, m, key("up"))
	m, _ = update(t, m, key("up"))
	assert.Equal(t, 0, m.Cursor(), "cursor stops at the top")

	for range 20 {
		m, _ = update(t, m, key("down"))
	}
	assert.Equal(t, len(testContent().FAQ.Items)-1, m.Cursor(), "cursor stops at the bottom")
}

func TestFAQViewMarkers(t *testing.T) {
	m := NewModel(testContent(), Options{Scheduler: scheduler.NewFake(), SkipBoot: true})
	m, _ = update(t, m, key("enter"))

	view := m.View()
	assert.Equal(t, 1, strings.Count(view, "[-]"))
	assert.Contains(t, view, "[+]")
	assert.Contains(t, view, "No. You need to ship something")
}

func TestQuitDisposes(t *testing.T) {
	clock := scheduler.NewFake()
	m := NewModel(testContent(), Options{Scheduler: clock})
	m.Attach(func(tea.Msg) {})
	m.Init()()
	require.Equal(t, 1, clock.Pending())

	m, cmd := update(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Sequence().Disposed())
	assert.Zero(t, clock.Pending())

	fired := clock.Fired()
	clock.Advance(time.Minute)
	assert.Equal(t, fired, clock.Fired())
}

func TestScrolledViewFitsHeight(t *testing.T) {
	m := NewModel(testContent(), Options{Scheduler: scheduler.NewFake(), SkipBoot: true})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 10})

	assert.Len(t, strings.Split(m.View(), "\n"), 10)
	for range 50 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	}
	view := m.View()
	assert.Len(t, strings.Split(view, "\n"), 10)
	assert.Contains(t, view, "q quit", "help line stays visible at the bottom")
}

func TestPadBlock(t *testing.T) {
	out := padBlock([]string{"ab", "漢", ""})
	for _, l := range out {
		assert.Equal(t, 2, runewidth.StringWidth(l))
	}
	assert.Empty(t, padBlock(nil))
}

func TestMotdBoxAligned(t *testing.T) {
	for _, l := range padBlock(content.MotdBox) {
		assert.Equal(t, runewidth.StringWidth(content.MotdBox[0]), runewidth.StringWidth(l))
	}
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")
	assert.Contains(t, buf.String(), "version 1.2.3")
	assert.Contains(t, buf.String(), "|___/")
}
