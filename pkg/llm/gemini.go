package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// Gemini implements Generator using the Google GenAI SDK.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates the client. apiKey is required; model defaults are the
// caller's responsibility (config supplies one).
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key missing; set GEMINI_API_KEY")
	}
	if model == "" {
		return nil, errors.New("gemini model is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("model returned empty response")
	}
	return text, nil
}
