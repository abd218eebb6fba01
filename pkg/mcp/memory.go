package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/papercomputeco/mem/pkg/store"
)

var (
	insertToolName    = "memory_insert"
	insertDescription = "Store a memory. The memory text is saved verbatim; the description is embedded and used later for semantic retrieval, so describe what the memory is about rather than repeating it."

	getToolName    = "memory_get"
	getDescription = "Retrieve the single stored memory whose description is most semantically similar to the query description. Returns nothing when the store is empty."

	listToolName    = "memory_list"
	listDescription = "List stored memories ranked by semantic similarity to the query description, best first. Returns at most count results (default 10)."
)

// InsertInput represents the input arguments for the MCP memory_insert tool.
type InsertInput struct {
	Memory      string `json:"memory" jsonschema:"the memory text to store verbatim"`
	Description string `json:"description" jsonschema:"a description of the memory used for semantic retrieval"`
}

// InsertOutput represents the structured output of a memory insert.
type InsertOutput struct {
	Stored bool `json:"stored"`
}

// GetInput represents the input arguments for the MCP memory_get tool.
type GetInput struct {
	Description string `json:"description" jsonschema:"a description of the memory you are looking for"`
}

// GetOutput represents the structured output of a memory get.
type GetOutput struct {
	Found  bool                `json:"found"`
	Memory *store.ScoredMemory `json:"memory,omitempty"`
}

// ListInput represents the input arguments for the MCP memory_list tool.
type ListInput struct {
	Description string `json:"description" jsonschema:"a description of the memories you are looking for"`
	Count       int    `json:"count,omitempty" jsonschema:"the maximum number of memories to list (default 10)"`
}

// ListOutput represents the structured output of a memory list.
type ListOutput struct {
	Memories []store.ScoredMemory `json:"memories"`
}

// handleInsert processes a memory insert request via MCP.
func (s *Server) handleInsert(ctx context.Context, _ *mcp.CallToolRequest, input InsertInput) (*mcp.CallToolResult, InsertOutput, error) {
	if input.Memory == "" {
		return errorResult("memory is required"), InsertOutput{}, nil
	}
	if input.Description == "" {
		return errorResult("description is required"), InsertOutput{}, nil
	}

	if err := s.config.Store.Insert(ctx, input.Memory, input.Description); err != nil {
		s.config.Logger.Error("memory insert failed", "error", err)
		return errorResult(fmt.Sprintf("Memory insert failed: %v", err)), InsertOutput{}, nil
	}

	return jsonResult(InsertOutput{Stored: true})
}

// handleGet processes a memory get request via MCP.
func (s *Server) handleGet(ctx context.Context, _ *mcp.CallToolRequest, input GetInput) (*mcp.CallToolResult, GetOutput, error) {
	if input.Description == "" {
		return errorResult("description is required"), GetOutput{}, nil
	}

	memory, err := s.config.Store.Get(ctx, input.Description)
	if err != nil {
		s.config.Logger.Error("memory get failed", "error", err)
		return errorResult(fmt.Sprintf("Memory get failed: %v", err)), GetOutput{}, nil
	}

	return jsonResult(GetOutput{Found: memory != nil, Memory: memory})
}

// handleList processes a memory list request via MCP.
func (s *Server) handleList(ctx context.Context, _ *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	if input.Description == "" {
		return errorResult("description is required"), ListOutput{}, nil
	}

	count := input.Count
	if count <= 0 {
		count = 10
	}

	memories, err := s.config.Store.List(ctx, input.Description, count)
	if err != nil {
		s.config.Logger.Error("memory list failed", "error", err)
		return errorResult(fmt.Sprintf("Memory list failed: %v", err)), ListOutput{}, nil
	}

	if memories == nil {
		memories = []store.ScoredMemory{}
	}

	return jsonResult(ListOutput{Memories: memories})
}

// errorResult builds a tool error result with a plain text message.
func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
	}
}

// jsonResult serializes output into a text content result alongside the
// structured output.
func jsonResult[T any](output T) (*mcp.CallToolResult, T, error) {
	jsonBytes, err := json.Marshal(output)
	if err != nil {
		return errorResult(fmt.Sprintf("Failed to serialize results: %v", err)), output, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(jsonBytes)},
		},
	}, output, nil
}
