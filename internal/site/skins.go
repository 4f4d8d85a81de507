package site

import (
	"github.com/ziadkadry99/synthesis/internal/accordion"
)

// Palette holds the colour tokens a skin's stylesheet is built from.
type Palette struct {
	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
	Accent2    string
	Border     string
	Font       string
	Heading    string
}

// Features toggles the page regions only some skins have.
type Features struct {
	BootGate   bool // content stays hidden until the boot sequence completes
	Marquee    bool // scrolling catchphrase band
	Split      bool // hero split into a human half and an agent half
	SectionNav bool // fixed navigation listing every section
}

// Skin is one visual direction of the site.
type Skin struct {
	ID          string
	Name        string
	Description string
	Palette     Palette
	Features    Features
	FAQ         accordion.Style
}

// NavItem is an entry of the section navigation.
type NavItem struct {
	ID    string
	Label string
}

// Sections lists the page sections in order, labelled the way the terminal
// skin's navigation shows them.
var Sections = []NavItem{
	{ID: "hero", Label: "OVERVIEW"},
	{ID: "what", Label: "WHAT_THIS_IS"},
	{ID: "tracks", Label: "TRACKS"},
	{ID: "trojan", Label: "REQUIREMENTS"},
	{ID: "judging", Label: "JUDGING"},
	{ID: "prizes", Label: "PRIZE_POOL"},
	{ID: "who", Label: "WHO_SHOULD_APPLY"},
	{ID: "timeline", Label: "TIMELINE"},
	{ID: "faq", Label: "FAQ"},
}

// DefaultSkin is used for unknown ids.
const DefaultSkin = "v1"

var skins = []Skin{
	{
		ID:          "v1",
		Name:        "Monochrome Minimal",
		Description: "Black background, white text, very stark. Thin lines, lots of whitespace. Apple-meets-Terminal aesthetic.",
		Palette: Palette{
			Background: "#000000", Surface: "#0a0a0a", Text: "#ffffff", Muted: "rgba(255,255,255,0.5)",
			Accent: "#ffffff", Accent2: "#ffffff", Border: "rgba(255,255,255,0.2)",
			Font: `"Inter", "Helvetica Neue", Arial, sans-serif`, Heading: `"Inter", "Helvetica Neue", Arial, sans-serif`,
		},
		FAQ: accordion.Style{List: "faq-minimal", Header: "faq-q", Marker: "faq-rotate", Body: "faq-a"},
	},
	{
		ID:          "v2",
		Name:        "Ethereal Glow",
		Description: "Dark background with cyan/purple gradient accents. Glowing text, particle constellation animation. Sci-fi feeling.",
		Palette: Palette{
			Background: "#050510", Surface: "rgba(34,211,238,0.05)", Text: "#e0f7ff", Muted: "rgba(224,247,255,0.55)",
			Accent: "#22d3ee", Accent2: "#a855f7", Border: "rgba(34,211,238,0.2)",
			Font: `"Inter", system-ui, sans-serif`, Heading: `"Space Grotesk", system-ui, sans-serif`,
		},
		FAQ: accordion.Style{List: "faq-glow", Header: "faq-q glow-text", Marker: "faq-rotate", Body: "faq-a"},
	},
	{
		ID:          "v3",
		Name:        "Split Identity",
		Description: "Page split: left represents humans (warm tones), right represents agents (cool tones), meeting in the middle.",
		Palette: Palette{
			Background: "#0a0a0a", Surface: "#111111", Text: "#f5f5f4", Muted: "rgba(245,245,244,0.55)",
			Accent: "#fcd34d", Accent2: "#67e8f9", Border: "rgba(251,191,36,0.2)",
			Font: `"Inter", system-ui, sans-serif`, Heading: `"Inter", system-ui, sans-serif`,
		},
		Features: Features{Split: true},
		FAQ:      accordion.Style{List: "faq-split", Header: "faq-q", Marker: "faq-rotate", Body: "faq-a"},
	},
	{
		ID:          "v4",
		Name:        "Terminal",
		Description: "Green-on-black mainframe. A login sequence types itself out before the briefing unlocks.",
		Palette: Palette{
			Background: "#000000", Surface: "#020a02", Text: "#86efac", Muted: "#22c55e",
			Accent: "#4ade80", Accent2: "#eab308", Border: "#22c55e",
			Font: `"JetBrains Mono", "Fira Code", ui-monospace, monospace`, Heading: `"JetBrains Mono", ui-monospace, monospace`,
		},
		Features: Features{BootGate: true, SectionNav: true},
		FAQ:      accordion.Style{List: "faq-term", Header: "faq-q", Marker: "faq-bracket", Body: "faq-a", Collapse: "[+]", Expand: "[-]"},
	},
	{
		ID:          "v5",
		Name:        "Editorial",
		Description: "Warm paper, serif headlines and generous margins. Reads like a long-form magazine feature.",
		Palette: Palette{
			Background: "#FAFAF7", Surface: "#ffffff", Text: "#292524", Muted: "#78716c",
			Accent: "#292524", Accent2: "#a8a29e", Border: "#e7e5e4",
			Font: `Georgia, "Times New Roman", serif`, Heading: `"Playfair Display", Georgia, serif`,
		},
		FAQ: accordion.Style{List: "faq-editorial", Header: "faq-q", Marker: "faq-rotate", Body: "faq-a"},
	},
	{
		ID:          "v6",
		Name:        "Brutalist",
		Description: "Acid yellow, heavy black rules, oversized type and a marquee that never stops.",
		Palette: Palette{
			Background: "#EBFF00", Surface: "#111111", Text: "#000000", Muted: "#111111",
			Accent: "#000000", Accent2: "#EBFF00", Border: "#000000",
			Font: `"Space Mono", ui-monospace, monospace`, Heading: `"Archivo Black", Impact, sans-serif`,
		},
		Features: Features{Marquee: true},
		FAQ:      accordion.Style{List: "faq-brutal", Header: "faq-q", Marker: "faq-rotate", Body: "faq-a", Collapse: "+", Expand: "×"},
	},
}

// Skins returns every skin in display order.
func Skins() []Skin {
	return append([]Skin(nil), skins...)
}

// Get returns the skin with the given id.
func Get(id string) (Skin, bool) {
	for _, s := range skins {
		if s.ID == id {
			return s, true
		}
	}
	return Skin{}, false
}

// Lookup is Get with the default skin as fallback.
func Lookup(id string) Skin {
	if s, ok := Get(id); ok {
		return s
	}
	s, _ := Get(DefaultSkin)
	return s
}
