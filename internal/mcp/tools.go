package mcp

import "github.com/mark3labs/mcp-go/mcp"

// generateScriptTool defines the generate_script MCP tool.
var generateScriptTool = mcp.NewTool("generate_script",
	mcp.WithDescription("Generate an educational history video script for a topic. Returns the full script text."),
	mcp.WithString("topic",
		mcp.Required(),
		mcp.Description("Historical topic to cover, e.g. \"Ancient Egypt\""),
	),
	mcp.WithString("age_range",
		mcp.Description("Target age range (default 6-10)"),
		mcp.Enum("6-10", "11-14", "Mixed"),
	),
	mcp.WithString("video_length",
		mcp.Description("Target video length (default 10 min)"),
		mcp.Enum("5 min", "10 min", "15 min"),
	),
	mcp.WithString("style_tags",
		mcp.Description("Comma-separated style preferences, e.g. \"Story-driven, Fun Facts\""),
	),
	mcp.WithString("focus",
		mcp.Description("Optional specific focus within the topic"),
	),
	mcp.WithBoolean("save",
		mcp.Description("Save the generated script to the library (default false)"),
	),
)

// listScriptsTool defines the list_scripts MCP tool.
var listScriptsTool = mcp.NewTool("list_scripts",
	mcp.WithDescription("List saved scripts, optionally filtered by a search query and target age range."),
	mcp.WithString("query",
		mcp.Description("Case-insensitive search over script titles and topics"),
	),
	mcp.WithString("age_range",
		mcp.Description("Only return scripts for this age range"),
		mcp.Enum("6-10", "11-14", "Mixed"),
	),
)

// getScriptTool defines the get_script MCP tool.
var getScriptTool = mcp.NewTool("get_script",
	mcp.WithDescription("Get the full text of a saved script by its id."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Script id as returned by list_scripts"),
	),
)

// deleteScriptTool defines the delete_script MCP tool.
var deleteScriptTool = mcp.NewTool("delete_script",
	mcp.WithDescription("Delete a saved script by its id. Bundled sample scripts cannot be deleted."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Script id as returned by list_scripts"),
	),
)
