package mcp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/choplin/acronym/internal/glossary"
	"github.com/choplin/acronym/internal/store"
)

func setupSession(t *testing.T) (*mcp.ClientSession, *store.FileStore) {
	t.Helper()
	ctx := context.Background()

	s := store.New(filepath.Join(t.TempDir(), "acronyms.yaml"), nil)
	server := NewServer(s, nil, "test")

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session, s
}

func callTool(t *testing.T, session *mcp.ClientSession, name string, args map[string]any, out any) *mcp.CallToolResult {
	t.Helper()
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)

	if out != nil && !res.IsError {
		textContent, ok := res.Content[0].(*mcp.TextContent)
		require.True(t, ok, "expected text content, got %T", res.Content[0])
		require.NoError(t, json.Unmarshal([]byte(textContent.Text), out))
	}
	return res
}

func TestAddAndLookup(t *testing.T) {
	session, _ := setupSession(t)

	var added StatusOutput
	callTool(t, session, "acronym_add", map[string]any{
		"acronym":     "api",
		"full_name":   "Application Programming Interface",
		"description": "A set of protocols",
	}, &added)
	assert.Equal(t, StatusOutput{Acronym: "API", Status: "added", Message: "Added API"}, added)

	var def Definition
	callTool(t, session, "acronym_lookup", map[string]any{"acronym": "Api"}, &def)
	assert.Equal(t, Definition{
		Acronym:     "API",
		FullName:    "Application Programming Interface",
		Description: "A set of protocols",
	}, def)
}

func TestAddExistingRequiresOverwrite(t *testing.T) {
	session, s := setupSession(t)
	require.NoError(t, s.Save(glossary.Glossary{"API": {FullName: "old", Description: "old"}}))

	args := map[string]any{"acronym": "API", "full_name": "new", "description": "new"}

	var out StatusOutput
	callTool(t, session, "acronym_add", args, &out)
	assert.Equal(t, "cancelled", out.Status)

	args["overwrite"] = true
	callTool(t, session, "acronym_add", args, &out)
	assert.Equal(t, "replaced", out.Status)

	g, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, glossary.Entry{FullName: "new", Description: "new"}, g["API"])
}

func TestListAndDelete(t *testing.T) {
	session, s := setupSession(t)
	require.NoError(t, s.Save(glossary.Glossary{
		"ZEBRA": {FullName: "z", Description: "zz"},
		"ALPHA": {FullName: "a", Description: "aa"},
	}))

	var list ListOutput
	callTool(t, session, "acronym_list", map[string]any{}, &list)
	require.Len(t, list.Acronyms, 2)
	assert.Equal(t, "ALPHA", list.Acronyms[0].Acronym)
	assert.Equal(t, "ZEBRA", list.Acronyms[1].Acronym)

	var out StatusOutput
	callTool(t, session, "acronym_delete", map[string]any{"acronym": "zebra"}, &out)
	assert.Equal(t, "deleted", out.Status)

	callTool(t, session, "acronym_delete", map[string]any{"acronym": "zebra"}, &out)
	assert.Equal(t, "not_found", out.Status)
}

func TestLookupMissingIsToolError(t *testing.T) {
	session, _ := setupSession(t)

	res := callTool(t, session, "acronym_lookup", map[string]any{"acronym": "xyz"}, nil)
	assert.True(t, res.IsError)
}
