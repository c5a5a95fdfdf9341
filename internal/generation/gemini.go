package generation

import (
	"context"
	"errors"
	"strings"

	"github.com/thenoetrevino/folio/internal/config"
	"google.golang.org/genai"
)

// GeminiProvider generates descriptions with the Gemini API.
// A client is built per call so a key changed in config takes effect immediately.
type GeminiProvider struct {
	cfg config.GenerationConfig
}

// NewGeminiProvider returns a provider using cfg's model and sampling settings
func NewGeminiProvider(cfg config.GenerationConfig) *GeminiProvider {
	return &GeminiProvider{cfg: cfg}
}

// Generate sends one request and returns the trimmed text
func (p *GeminiProvider) Generate(ctx context.Context, req Request) (string, error) {
	if p.cfg.APIKey == "" {
		return "", &ProviderError{
			Message: "API_KEY is not set. Please ensure it's configured in your environment.",
		}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", classify(err)
	}

	resp, err := client.Models.GenerateContent(ctx, p.cfg.Model, genai.Text(BuildPrompt(req)), p.contentConfig())
	if err != nil {
		return "", classify(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &ProviderError{Message: "empty response", Err: errors.New("no text candidates")}
	}
	return text, nil
}

func (p *GeminiProvider) contentConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     p.cfg.Temperature,
		TopP:            p.cfg.TopP,
		TopK:            p.cfg.TopK,
		MaxOutputTokens: p.cfg.MaxOutputTokens,
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: p.cfg.ThinkingBudget,
		},
	}
}
