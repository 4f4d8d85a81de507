package mcp

import "github.com/mark3labs/mcp-go/mcp"

// getOverviewTool defines the get_overview MCP tool.
var getOverviewTool = mcp.NewTool("get_overview",
	mcp.WithDescription("Get the hackathon overview: what The Synthesis is, who it is for and how it works. Set full to receive the entire briefing."),
	mcp.WithBoolean("full",
		mcp.Description("Return the whole briefing instead of the overview (default false)"),
	),
)

// listTracksTool defines the list_tracks MCP tool.
var listTracksTool = mcp.NewTool("list_tracks",
	mcp.WithDescription("List the competition tracks, or describe one track in full."),
	mcp.WithString("track",
		mcp.Description("Track id to describe in full"),
	),
)

// getFAQTool defines the get_faq MCP tool.
var getFAQTool = mcp.NewTool("get_faq",
	mcp.WithDescription("Read the FAQ accordion. Without an index every answer is collapsed; with one, that entry is expanded."),
	mcp.WithNumber("index",
		mcp.Description("Zero-based question to expand"),
	),
)

// getTimelineTool defines the get_timeline MCP tool.
var getTimelineTool = mcp.NewTool("get_timeline",
	mcp.WithDescription("Get the hackathon milestones and dates."),
)

// getBootScriptTool defines the get_boot_script MCP tool.
var getBootScriptTool = mcp.NewTool("get_boot_script",
	mcp.WithDescription("Get the terminal login transcript played before the briefing, or its recorded frame timeline."),
	mcp.WithString("format",
		mcp.Description("Output format (default transcript)"),
		mcp.Enum("transcript", "timeline"),
	),
)
