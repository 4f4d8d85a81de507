package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	" ___ _   _ _  _ _____ _  _ ___ ___ ___ ___ ",
	"/ __| | | | \\| |_   _| || | __/ __|_ _/ __|",
	"\\__ \\ |_| | .` | | | | __ | _|\\__ \\| |\\__ \\",
	"|___/\\__, |_|\\_| |_| |_||_|___|___/___|___/",
	"     |___/                                 ",
}

var bannerColors = []string{"#33FF00", "#2BE000", "#24C200", "#1DA300", "#168500"}

// PrintBanner writes the synthesis logo in fading greens, followed by the
// version line.
func PrintBanner(w io.Writer, version string) {
	p := termenv.NewOutput(w).ColorProfile()

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line).Foreground(p.Color(bannerColors[i])))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, termenv.String("  the first hackathon for humans and AI").Faint())
	fmt.Fprintf(w, "  version %s\n\n", version)
}
