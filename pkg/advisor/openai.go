package advisor

import (
	"context"
	"errors"

	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIConfig configures the OpenAI generator.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// OpenAI generates text through the Responses API.
type OpenAI struct {
	client openai.Client
}

// NewOpenAI creates an OpenAI generator.
func NewOpenAI(cfg OpenAIConfig) *OpenAI {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAI{client: openai.NewClient(opts...)}
}

func (o *OpenAI) Name() string { return "openai" }

func (o *OpenAI) Generate(ctx context.Context, req Request) (string, error) {
	model := req.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	params := responses.ResponseNewParams{
		Model:           model,
		MaxOutputTokens: openai.Int(int64(req.Params.MaxLength)),
		Temperature:     openai.Float(req.Params.Temperature),
		TopP:            openai.Float(req.Params.TopP),
		Input:           responses.ResponseNewParamsInputUnion{OfString: openai.String(req.Prompt)},
	}

	resp, err := o.client.Responses.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &domain.TransportError{Provider: o.Name(), Status: apiErr.StatusCode, Err: err}
		}
		return "", &domain.TransportError{Provider: o.Name(), Err: err}
	}
	if resp == nil {
		return "", &domain.TransportError{Provider: o.Name(), Err: ErrEmptyReply}
	}
	return resp.OutputText(), nil
}
