package advisor

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/fundflow/pkg/domain"
	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiConfig configures the Gemini generator.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// Gemini generates text through the Gemini API.
// The client is created on first use since construction needs a context.
type Gemini struct {
	apiKey string

	mu     sync.Mutex
	client *genai.Client
}

// NewGemini creates a Gemini generator.
func NewGemini(cfg GeminiConfig) *Gemini {
	return &Gemini{apiKey: cfg.APIKey}
}

func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) connect(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		return g.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	g.client = client
	return client, nil
}

func (g *Gemini) Generate(ctx context.Context, req Request) (string, error) {
	client, err := g.connect(ctx)
	if err != nil {
		return "", &domain.TransportError{Provider: g.Name(), Err: err}
	}

	model := req.Model
	if model == "" {
		model = DefaultGeminiModel
	}
	temperature := float32(req.Params.Temperature)
	topP := float32(req.Params.TopP)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		MaxOutputTokens: int32(req.Params.MaxLength),
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", &domain.TransportError{Provider: g.Name(), Err: err}
	}
	return result.Text(), nil
}
