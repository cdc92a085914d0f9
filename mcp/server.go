// Package mcp exposes the pipeline as Model Context Protocol tools over
// stdio so agent hosts can analyze and speak text.
package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/udayjinna/Voice/engine"
	"github.com/udayjinna/Voice/voice"
)

type Server struct {
	engine    *engine.Engine
	catalog   []voice.Option
	mcpServer *sdk.Server
}

func NewServer(eng *engine.Engine, catalog []voice.Option, version string) *Server {
	s := &Server{engine: eng, catalog: catalog}

	s.mcpServer = sdk.NewServer(&sdk.Implementation{
		Name:    "empathy-engine",
		Version: version,
	}, nil)

	s.registerTools()
	return s
}

// Run serves MCP requests over stdio until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &sdk.StdioTransport{})
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcpServer, &sdk.Tool{
		Name:        "analyze_emotion",
		Description: "Detect the dominant emotion of a text with its intensity and canonical score breakdown",
	}, s.handleAnalyzeEmotion)

	sdk.AddTool(s.mcpServer, &sdk.Tool{
		Name:        "synthesize_speech",
		Description: "Convert text into expressive speech whose prosody reflects its detected emotion",
	}, s.handleSynthesizeSpeech)

	sdk.AddTool(s.mcpServer, &sdk.Tool{
		Name:        "list_voices",
		Description: "List the available synthesizer voices",
	}, s.handleListVoices)
}
