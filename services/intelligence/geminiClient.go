package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "models/gemini-1.5-pro"

// ErrUnavailable is returned when no model client is configured.
var ErrUnavailable = errors.New("generative model not configured")

// GeminiClient wraps one generative model handle.
type GeminiClient struct {
	model *genai.GenerativeModel
}

// NewGeminiClient connects to the Gemini API. An empty key yields a nil
// client; callers degrade gracefully.
func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrUnavailable
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{model: client.GenerativeModel(geminiModel)}, nil
}

// GenerateContent sends a prompt and concatenates the text parts of the
// first candidate.
func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.model == nil {
		return "", ErrUnavailable
	}
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}
