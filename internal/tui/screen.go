package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ziadkadry99/synthesis/internal/boot"
)

const cursorGlyph = "█"

// renderScreen draws a boot snapshot: each started line as prompt and typed
// text, the cursor on the line being typed, and any visible output block.
func renderScreen(snap boot.Snapshot, th Theme) string {
	var b strings.Builder
	for _, l := range snap.Lines {
		if !l.Visible {
			continue
		}
		b.WriteString(th.Prompt.Render(l.Prompt))
		b.WriteString(" ")
		b.WriteString(th.Command.Render(l.Text))
		if l.Cursor {
			b.WriteString(th.Cursor.Render(cursorGlyph))
		}
		b.WriteString("\n")
		for _, out := range padBlock(l.Output) {
			b.WriteString(th.Output.Render(out))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// padBlock right-pads every line to the display width of the widest one so
// boxed output keeps a straight right edge under wide runes.
func padBlock(lines []string) []string {
	width := 0
	for _, l := range lines {
		if w := runewidth.StringWidth(l); w > width {
			width = w
		}
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = runewidth.FillRight(l, width)
	}
	return out
}
