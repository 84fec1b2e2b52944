// Package mcp exposes the glossary as Model Context Protocol tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/choplin/acronym/internal/prompt"
	"github.com/choplin/acronym/internal/usecase"
)

// Server wraps the MCP server with glossary tools
type Server struct {
	server *mcp.Server
	store  usecase.Store
	logger *zap.Logger
}

// NewServer creates a new MCP server instance backed by store
func NewServer(store usecase.Store, logger *zap.Logger, version string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "acronym",
		Version: version,
	}, nil)

	s := &Server{
		server: mcpServer,
		store:  store,
		logger: logger.Named("mcp"),
	}

	s.registerTools()

	return s
}

// Run starts the MCP server with stdio transport
func (s *Server) Run(ctx context.Context) error {
	s.logger.Debug("serving MCP on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "acronym_lookup",
		Description: "Look up the full name and description of an acronym",
	}, s.handleLookup)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "acronym_list",
		Description: "List all acronyms sorted by key",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "acronym_add",
		Description: "Add an acronym definition",
	}, s.handleAdd)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "acronym_delete",
		Description: "Delete an acronym definition",
	}, s.handleDelete)
}

// glossary returns a use case whose confirmations are answered by confirm.
// Tools never read from stdin, which carries the MCP transport.
func (s *Server) glossary(confirm bool) *usecase.Glossary {
	return usecase.NewGlossary(s.store, prompt.Always(confirm), s.logger)
}

type LookupInput struct {
	Acronym string `json:"acronym" jsonschema:"The acronym to look up (case-insensitive)"`
}

type Definition struct {
	Acronym     string `json:"acronym"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
}

type ListInput struct{}

type ListOutput struct {
	Acronyms []Definition `json:"acronyms"`
}

type AddInput struct {
	Acronym     string `json:"acronym" jsonschema:"The acronym to define"`
	FullName    string `json:"full_name" jsonschema:"What the acronym stands for"`
	Description string `json:"description" jsonschema:"A short description"`
	Overwrite   bool   `json:"overwrite,omitempty" jsonschema:"Replace an existing definition"`
}

type StatusOutput struct {
	Acronym string `json:"acronym"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type DeleteInput struct {
	Acronym string `json:"acronym" jsonschema:"The acronym to delete"`
}

func (s *Server) handleLookup(ctx context.Context, req *mcp.CallToolRequest, input LookupInput) (*mcp.CallToolResult, Definition, error) {
	item, ok, err := s.glossary(false).Lookup(input.Acronym)
	if err != nil {
		return nil, Definition{}, fmt.Errorf("failed to look up acronym: %w", err)
	}
	if !ok {
		return nil, Definition{}, fmt.Errorf("no entry found for %s", item.Key)
	}

	return nil, toDefinition(item), nil
}

func (s *Server) handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	items, err := s.glossary(false).List()
	if err != nil {
		return nil, ListOutput{}, fmt.Errorf("failed to list acronyms: %w", err)
	}

	defs := make([]Definition, 0, len(items))
	for _, item := range items {
		defs = append(defs, toDefinition(item))
	}
	return nil, ListOutput{Acronyms: defs}, nil
}

func (s *Server) handleAdd(ctx context.Context, req *mcp.CallToolRequest, input AddInput) (*mcp.CallToolResult, StatusOutput, error) {
	if strings.TrimSpace(input.FullName) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, StatusOutput{}, errors.New("full_name and description are required")
	}

	result, err := s.glossary(input.Overwrite).Add(usecase.AddInput{
		Acronym:     input.Acronym,
		FullName:    input.FullName,
		Description: input.Description,
	})
	if err != nil {
		return nil, StatusOutput{}, fmt.Errorf("failed to add acronym: %w", err)
	}

	message := "Added " + result.Key
	switch result.Status {
	case usecase.StatusCancelled:
		message = result.Key + " exists; set overwrite to replace it"
	case usecase.StatusReplaced:
		message = "Replaced " + result.Key
	}

	return nil, StatusOutput{
		Acronym: result.Key,
		Status:  string(result.Status),
		Message: message,
	}, nil
}

func (s *Server) handleDelete(ctx context.Context, req *mcp.CallToolRequest, input DeleteInput) (*mcp.CallToolResult, StatusOutput, error) {
	result, err := s.glossary(true).Delete(input.Acronym)
	if err != nil {
		return nil, StatusOutput{}, fmt.Errorf("failed to delete acronym: %w", err)
	}

	message := "Deleted " + result.Key
	if result.Status == usecase.StatusNotFound {
		message = "No entry found for " + result.Key
	}

	return nil, StatusOutput{
		Acronym: result.Key,
		Status:  string(result.Status),
		Message: message,
	}, nil
}

func toDefinition(item usecase.Item) Definition {
	return Definition{
		Acronym:     item.Key,
		FullName:    item.Entry.FullName,
		Description: item.Entry.Description,
	}
}
