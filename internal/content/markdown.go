package content

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// md renders copy strings. Raw HTML in content files is dropped rather than
// passed through.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// Markdown renders a markdown document to HTML.
func Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Inline renders a single line of copy, so that emphasis and links work
// inside headings and list items. The wrapping paragraph is removed.
func Inline(src string) template.HTML {
	out, err := Markdown(src)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	s := strings.TrimSpace(string(out))
	if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") && strings.Count(s, "<p>") == 1 {
		s = s[len("<p>") : len(s)-len("</p>")]
	}
	return template.HTML(s)
}

// Briefing renders the whole content as one markdown document, used by the
// terminal player and the agent tools.
func (c *Content) Briefing() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.Hero.Title)
	fmt.Fprintf(&b, "**%s**\n\n", c.Hero.Subtitle)
	fmt.Fprintf(&b, "%s\n\n", c.Hero.Description)
	fmt.Fprintf(&b, "> %s\n>\n> %s\n\n", c.Hero.Catchphrase, c.Hero.Ethos)
	fmt.Fprintf(&b, "%s\n\n", c.Hero.Microcopy)

	writeSection(&b, c.WhatThisIs)

	fmt.Fprintf(&b, "## %s\n\n", c.Tracks.Title)
	for _, t := range c.Tracks.Items {
		b.WriteString(TrackMarkdown(t))
	}

	writeSection(&b, c.TrojanHorse)

	fmt.Fprintf(&b, "## %s\n\n### %s\n\n", c.Judging.Title, c.Judging.Subtitle)
	for _, j := range c.Judging.Juries {
		fmt.Fprintf(&b, "- **%s**: %s\n", j.Name, j.Criteria)
	}
	fmt.Fprintf(&b, "\n### %s\n\n", c.Judging.WinsTitle)
	writeList(&b, c.Judging.Wins)

	fmt.Fprintf(&b, "## %s\n\n**%s** %s\n\n", c.Prizes.Title, c.Prizes.Total, c.Prizes.Note)
	writeList(&b, c.Prizes.Categories)
	fmt.Fprintf(&b, "%s\n\n", c.Prizes.SponsorCallout)

	fmt.Fprintf(&b, "## %s\n\n", c.WhoShouldApply.Title)
	for _, g := range c.WhoShouldApply.Groups {
		fmt.Fprintf(&b, "- **%s**: %s\n", g.Name, g.Description)
	}
	b.WriteString("\n")

	b.WriteString(c.TimelineMarkdown())

	fmt.Fprintf(&b, "---\n\n%s\n", c.Footer)
	return b.String()
}

// TrackMarkdown renders one track as a markdown subsection.
func TrackMarkdown(t Track) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n%s\n\n", t.Name, t.Tagline)
	writeList(&b, t.Examples)
	writeList(&b, t.Details)
	if t.Note != "" {
		fmt.Fprintf(&b, "_%s_\n\n", t.Note)
	}
	if len(t.Wants) > 0 {
		b.WriteString("We want:\n\n")
		writeList(&b, t.Wants)
	}
	return b.String()
}

// TimelineMarkdown renders the timeline as a table.
func (c *Content) TimelineMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n| Milestone | Date |\n|---|---|\n", c.Timeline.Title)
	for _, e := range c.Timeline.Events {
		fmt.Fprintf(&b, "| %s | %s |\n", e.Label, e.Date)
	}
	b.WriteString("\n")
	return b.String()
}

func writeSection(b *strings.Builder, s Section) {
	fmt.Fprintf(b, "## %s\n\n", s.Title)
	for _, p := range s.Body {
		fmt.Fprintf(b, "%s\n\n", p)
	}
}

func writeList(b *strings.Builder, items []string) {
	if len(items) == 0 {
		return
	}
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}
