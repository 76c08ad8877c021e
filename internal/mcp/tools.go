package mcp

import "github.com/mark3labs/mcp-go/mcp"

// askAssistantTool defines the ask_assistant MCP tool.
var askAssistantTool = mcp.NewTool("ask_assistant",
	mcp.WithDescription("Ask the store assistant a shopping question. Runs the full rule-based pipeline: greetings, price filters, product search, knowledge base and fuzzy matching."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Natural language question, e.g. 'products under 500' or 'what is ashwagandha'"),
	),
	mcp.WithString("session_id",
		mcp.Description("Conversation session identifier; reuse it for follow-ups like 'show me another'"),
	),
)

// searchProductsTool defines the search_products MCP tool.
var searchProductsTool = mcp.NewTool("search_products",
	mcp.WithDescription("Search the product catalog directly by name, description or category."),
	mcp.WithString("term",
		mcp.Required(),
		mcp.Description("Search term matched against product name, description and category"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of products to return (default 5)"),
	),
)

// logProductClickTool defines the log_product_click MCP tool.
var logProductClickTool = mcp.NewTool("log_product_click",
	mcp.WithDescription("Record that a product surfaced by the assistant was selected."),
	mcp.WithString("product_id",
		mcp.Required(),
		mcp.Description("Identifier of the clicked product"),
	),
	mcp.WithString("product_name",
		mcp.Description("Display name of the clicked product"),
	),
	mcp.WithString("session_id",
		mcp.Description("Conversation session the click belongs to"),
	),
)
