package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/udayjinna/Voice/engine"
)

type AnalyzeArgs struct {
	Text  string `json:"text" jsonschema:"Text to analyze"`
	Model string `json:"model,omitempty" jsonschema:"Classifier model identifier (defaults to the configured model)"`
}

type SynthesizeArgs struct {
	Text  string `json:"text" jsonschema:"Text to transform into expressive speech"`
	Voice string `json:"voice,omitempty" jsonschema:"Synthesizer voice identifier (defaults to the configured voice)"`
}

type ListVoicesArgs struct{}

func (s *Server) handleAnalyzeEmotion(ctx context.Context, req *sdk.CallToolRequest, args AnalyzeArgs) (*sdk.CallToolResult, any, error) {
	profile, err := s.engine.Analyze(ctx, args.Text, args.Model)
	if err != nil {
		return nil, nil, fmt.Errorf("analyze failed: %w", err)
	}

	body, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encode profile: %w", err)
	}

	return &sdk.CallToolResult{
		Content: []sdk.Content{
			&sdk.TextContent{Text: string(body)},
		},
	}, nil, nil
}

func (s *Server) handleSynthesizeSpeech(ctx context.Context, req *sdk.CallToolRequest, args SynthesizeArgs) (*sdk.CallToolResult, any, error) {
	res, err := s.engine.Process(ctx, engine.Request{Text: args.Text, Voice: args.Voice})
	if err != nil {
		return nil, nil, fmt.Errorf("synthesis failed: %w", err)
	}

	content := []sdk.Content{
		&sdk.TextContent{Text: fmt.Sprintf("Detected %s at %.0f%% intensity (rate %s, pitch %s, volume %s)",
			res.Emotion.Label, res.Emotion.Intensity*100, res.Voice.Rate, res.Voice.Pitch, res.Voice.Volume)},
	}
	if res.AudioFile != "" {
		content = append(content, &sdk.TextContent{Text: fmt.Sprintf("Audio saved as %s", res.AudioFile)})
	}

	return &sdk.CallToolResult{Content: content}, nil, nil
}

func (s *Server) handleListVoices(ctx context.Context, req *sdk.CallToolRequest, args ListVoicesArgs) (*sdk.CallToolResult, any, error) {
	content := []sdk.Content{
		&sdk.TextContent{Text: fmt.Sprintf("Available voices (%d):", len(s.catalog))},
	}
	for _, v := range s.catalog {
		content = append(content, &sdk.TextContent{
			Text: fmt.Sprintf("- %s (%s, %s, %s)", v.ID, v.Name, v.Language, v.Gender),
		})
	}
	return &sdk.CallToolResult{Content: content}, nil, nil
}
