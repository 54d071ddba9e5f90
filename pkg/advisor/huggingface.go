package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aretw0/fundflow/pkg/domain"
)

// Hosted inference endpoint and models used by default.
const (
	DefaultHuggingFaceURL = "https://api-inference.huggingface.co/models/"
	DefaultChatModel      = "microsoft/DialoGPT-large"
	DefaultPlanModel      = "facebook/blenderbot-400M-distill"
)

const maxResponseBytes = 1 << 20

// HuggingFaceConfig configures the inference client.
type HuggingFaceConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// APIKey is optional; the free tier accepts anonymous requests.
	APIKey string `mapstructure:"api_key"`
	Client *http.Client
}

// HuggingFace calls the hosted text-generation inference API.
type HuggingFace struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHuggingFace creates an inference client.
func NewHuggingFace(cfg HuggingFaceConfig) *HuggingFace {
	h := &HuggingFace{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  cfg.Client,
	}
	if h.baseURL == "" {
		h.baseURL = DefaultHuggingFaceURL
	}
	if !strings.HasSuffix(h.baseURL, "/") {
		h.baseURL += "/"
	}
	if h.client == nil {
		h.client = http.DefaultClient
	}
	return h
}

func (h *HuggingFace) Name() string { return "huggingface" }

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
	DoSample    bool    `json:"do_sample"`
	TopP        float64 `json:"top_p"`
}

// Generate posts the prompt to the model endpoint.
func (h *HuggingFace) Generate(ctx context.Context, req Request) (string, error) {
	model := req.Model
	if model == "" {
		model = DefaultChatModel
	}

	body, err := json.Marshal(hfRequest{
		Inputs: req.Prompt,
		Parameters: hfParameters{
			MaxLength:   req.Params.MaxLength,
			Temperature: req.Params.Temperature,
			DoSample:    req.Params.DoSample,
			TopP:        req.Params.TopP,
		},
	})
	if err != nil {
		return "", h.fail(0, fmt.Errorf("encode request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+model, bytes.NewReader(body))
	if err != nil {
		return "", h.fail(0, fmt.Errorf("build request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return "", h.fail(0, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", h.fail(resp.StatusCode, fmt.Errorf("read response: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", h.fail(resp.StatusCode, fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(payload))))
	}

	text, err := parseGenerated(payload, req.Prompt)
	if err != nil {
		return "", h.fail(resp.StatusCode, err)
	}
	return text, nil
}

func (h *HuggingFace) fail(status int, err error) error {
	return &domain.TransportError{Provider: h.Name(), Status: status, Err: err}
}

type hfGenerated struct {
	GeneratedText *string `json:"generated_text"`
	Error         string  `json:"error"`
}

// parseGenerated accepts a list of generations, a single generation or a bare
// string, and strips the echoed prompt.
func parseGenerated(payload []byte, prompt string) (string, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return "", ErrEmptyReply
	}

	var text string
	switch trimmed[0] {
	case '[':
		var list []hfGenerated
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return "", fmt.Errorf("malformed payload: %w", err)
		}
		if len(list) == 0 || list[0].GeneratedText == nil {
			return "", ErrEmptyReply
		}
		text = *list[0].GeneratedText
	case '{':
		var one hfGenerated
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return "", fmt.Errorf("malformed payload: %w", err)
		}
		if one.Error != "" {
			return "", errors.New(one.Error)
		}
		if one.GeneratedText == nil {
			return "", fmt.Errorf("malformed payload: no generated_text")
		}
		text = *one.GeneratedText
	case '"':
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return "", fmt.Errorf("malformed payload: %w", err)
		}
	default:
		return "", fmt.Errorf("malformed payload: unexpected %q", trimmed[0])
	}

	text = strings.TrimSpace(strings.Replace(text, prompt, "", 1))
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}
