package advisor

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/ollama/ollama/api"
)

// Local Ollama defaults.
const (
	DefaultOllamaURL   = "http://localhost:11434"
	DefaultOllamaModel = "llama3.2"
)

// OllamaConfig configures the Ollama generator.
type OllamaConfig struct {
	Host   string `mapstructure:"host"`
	Client *http.Client
}

// Ollama generates text with a locally served model.
type Ollama struct {
	client *api.Client
}

// NewOllama creates an Ollama generator.
func NewOllama(cfg OllamaConfig) (*Ollama, error) {
	host := cfg.Host
	if host == "" {
		host = DefaultOllamaURL
	}
	parsed, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}
	httpClient := cfg.Client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Ollama{client: api.NewClient(parsed, httpClient)}, nil
}

func (o *Ollama) Name() string { return "ollama" }

func (o *Ollama) Generate(ctx context.Context, req Request) (string, error) {
	model := req.Model
	if model == "" {
		model = DefaultOllamaModel
	}

	stream := false
	chat := &api.ChatRequest{
		Model:    model,
		Messages: []api.Message{{Role: "user", Content: req.Prompt}},
		Stream:   &stream,
		Options: map[string]any{
			"temperature": req.Params.Temperature,
			"top_p":       req.Params.TopP,
			"num_predict": req.Params.MaxLength,
		},
	}

	var response api.ChatResponse
	err := o.client.Chat(ctx, chat, func(resp api.ChatResponse) error {
		response = resp
		return nil
	})
	if err != nil {
		return "", &domain.TransportError{Provider: o.Name(), Err: err}
	}
	return response.Message.Content, nil
}
