package mcp

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/synthesis/internal/accordion"
	"github.com/ziadkadry99/synthesis/internal/boot"
	"github.com/ziadkadry99/synthesis/internal/content"
)

// handleGetOverview returns the hero and "what this is" sections, or the
// whole briefing when full is set.
func (s *Server) handleGetOverview(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c := s.content
	if request.GetBool("full", false) {
		return mcp.NewToolResultText(c.Briefing()), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n%s\n\n%s\n\n", c.Hero.Title, c.Hero.Subtitle, c.Hero.Description))
	sb.WriteString(fmt.Sprintf("> %s %s\n\n", c.Hero.Catchphrase, c.Hero.Ethos))
	sb.WriteString(fmt.Sprintf("## %s\n\n", c.WhatThisIs.Title))
	for _, p := range c.WhatThisIs.Body {
		sb.WriteString(p)
		sb.WriteString("\n\n")
	}
	sb.WriteString(fmt.Sprintf("## %s\n\n", c.WhoShouldApply.Title))
	for _, g := range c.WhoShouldApply.Groups {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", g.Name, g.Description))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleListTracks lists every track, or describes the one named by track.
func (s *Server) handleListTracks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c := s.content
	if id := request.GetString("track", ""); id != "" {
		t, ok := c.Track(id)
		if !ok {
			ids := make([]string, 0, len(c.Tracks.Items))
			for _, t := range c.Tracks.Items {
				ids = append(ids, t.ID)
			}
			return mcp.NewToolResultError(fmt.Sprintf(
				"unknown track %q; available tracks: %s", id, strings.Join(ids, ", "),
			)), nil
		}
		return mcp.NewToolResultText(content.TrackMarkdown(t)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d track(s):\n", len(c.Tracks.Items)))
	for _, t := range c.Tracks.Items {
		sb.WriteString(fmt.Sprintf("\n- %s (id: %s): %s\n", t.Name, t.ID, t.Tagline))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetFAQ renders the accordion with the requested entry expanded.
func (s *Server) handleGetFAQ(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries := s.content.FAQ.Items
	var state accordion.State
	if idx := request.GetInt("index", -1); idx >= 0 {
		if idx >= len(entries) {
			return mcp.NewToolResultError(fmt.Sprintf(
				"index %d out of range; the FAQ has %d questions (0-%d)", idx, len(entries), len(entries)-1,
			)), nil
		}
		state.Toggle(idx)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n\n", s.content.FAQ.Title))
	sb.WriteString(accordion.RenderText(accordion.Items(entries, state), -1))
	if _, ok := state.Open(); !ok {
		sb.WriteString("\nCall get_faq with an index to expand an answer.\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetTimeline returns the milestone table.
func (s *Server) handleGetTimeline(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(s.content.TimelineMarkdown()), nil
}

// handleGetBootScript returns the boot transcript, or the recorded frames as
// JSON.
func (s *Server) handleGetBootScript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	script := s.content.BootScript
	tl := boot.Record(script, boot.WithTiming(s.timing))

	switch format := request.GetString("format", "transcript"); format {
	case "timeline":
		var buf bytes.Buffer
		if err := tl.WriteJSON(&buf); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encoding timeline: %v", err)), nil
		}
		return mcp.NewToolResultText(buf.String()), nil
	case "transcript":
		return mcp.NewToolResultText(formatTranscript(script, tl)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q", format)), nil
	}
}

// formatTranscript prints the script as it reads once fully played.
func formatTranscript(script []boot.Line, tl boot.Timeline) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Boot sequence: %d line(s), %d frame(s), plays in %s\n\n",
		len(script), len(tl.Frames), tl.Duration))
	for _, l := range script {
		sb.WriteString(fmt.Sprintf("$ %s\n", l.Command))
		for _, out := range l.Output {
			sb.WriteString(out)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
