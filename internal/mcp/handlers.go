package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mediveda/healthbot/internal/catalog"
	"github.com/mediveda/healthbot/internal/chatlog"
)

// handleAskAssistant runs a query through the assistant pipeline.
func (s *Server) handleAskAssistant(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}
	sessionID := request.GetString("session_id", "mcp")

	resp := s.assistant.ProcessQuery(ctx, query, sessionID)

	var sb strings.Builder
	sb.WriteString(resp.Answer)
	sb.WriteString(fmt.Sprintf("\n\nintent: %s (confidence %.2f)", resp.Intent, resp.Confidence))
	if resp.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("\nsuggestion: %s", resp.Suggestion))
	}
	if len(resp.Products) > 0 {
		sb.WriteString("\n\nproducts:")
		for _, p := range resp.Products {
			sb.WriteString("\n" + formatProduct(p))
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleSearchProducts performs a direct catalog search.
func (s *Server) handleSearchProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term, err := request.RequireString("term")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: term"), nil
	}

	limit := request.GetInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}

	products, err := s.catalog.Search(ctx, term, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	if len(products) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No products found matching %q.", term)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d product(s):\n", len(products)))
	for _, p := range products {
		sb.WriteString(formatProduct(p) + "\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleLogProductClick records a click through the background dispatcher.
func (s *Server) handleLogProductClick(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	productID, err := request.RequireString("product_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: product_id"), nil
	}

	s.logs.LogClick(chatlog.Click{
		ProductID:   productID,
		ProductName: request.GetString("product_name", ""),
		SessionID:   request.GetString("session_id", "mcp"),
	})
	return mcp.NewToolResultText(fmt.Sprintf("Recorded click on %s.", productID)), nil
}

// formatProduct renders one product line for tool output.
func formatProduct(p catalog.Product) string {
	stock := "in stock"
	if !p.InStock {
		stock = "out of stock"
	}
	line := fmt.Sprintf("- %s (%s) | id %s, ₹%.0f, %s", p.Name, p.Category, p.ID, p.Price, stock)
	if p.Rating > 0 {
		line += fmt.Sprintf(", rated %.1f", p.Rating)
	}
	return line
}
