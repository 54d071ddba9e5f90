package advisor

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/aretw0/fundflow/pkg/domain"
)

// DefaultAnthropicModel is used when no model is configured.
const DefaultAnthropicModel = "claude-3-5-haiku-latest"

// AnthropicConfig configures the Anthropic generator.
type AnthropicConfig struct {
	APIKey string `mapstructure:"api_key"`
	// System is an optional system prompt framing every request.
	System string `mapstructure:"system"`
}

// Anthropic generates text through the Messages API.
type Anthropic struct {
	client anthropic.Client
	system string
}

// NewAnthropic creates an Anthropic generator.
func NewAnthropic(cfg AnthropicConfig) *Anthropic {
	return &Anthropic{
		client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		system: cfg.System,
	}
}

func (a *Anthropic) Name() string { return "anthropic" }

func (a *Anthropic) Generate(ctx context.Context, req Request) (string, error) {
	model := req.Model
	if model == "" {
		model = DefaultAnthropicModel
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   int64(req.Params.MaxLength),
		Temperature: anthropic.Float(req.Params.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if a.system != "" {
		params.System = []anthropic.TextBlockParam{{Text: a.system, Type: "text"}}
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &domain.TransportError{Provider: a.Name(), Status: apiErr.StatusCode, Err: err}
		}
		return "", &domain.TransportError{Provider: a.Name(), Err: err}
	}
	if resp == nil || len(resp.Content) == 0 {
		return "", &domain.TransportError{Provider: a.Name(), Err: ErrEmptyReply}
	}

	var b strings.Builder
	for i := range resp.Content {
		block := &resp.Content[i]
		if block.Type == "text" {
			b.WriteString(block.AsText().Text)
		}
	}
	return b.String(), nil
}
