package registry

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/aretw0/fundflow/pkg/advisor"
	"github.com/mitchellh/mapstructure"
)

// Settings carries the connection settings of a provider.
type Settings struct {
	BaseURL string
	APIKey  string
	// Options holds provider specific keys, decoded by each factory.
	Options map[string]any
}

// Decode copies Options into target using its mapstructure tags.
func (s Settings) Decode(target any) error {
	if len(s.Options) == 0 {
		return nil
	}
	if err := mapstructure.Decode(s.Options, target); err != nil {
		return fmt.Errorf("invalid provider options: %w", err)
	}
	return nil
}

type anthropicOptions struct {
	System string `mapstructure:"system"`
}

// Factory builds a generator from settings.
type Factory func(s Settings) (advisor.Generator, error)

// Registry manages the available advisor providers.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Default returns a registry holding every built-in provider.
func Default() *Registry {
	r := NewRegistry()
	r.Register("huggingface", func(s Settings) (advisor.Generator, error) {
		return advisor.NewHuggingFace(advisor.HuggingFaceConfig{BaseURL: s.BaseURL, APIKey: s.APIKey}), nil
	})
	r.Register("openai", func(s Settings) (advisor.Generator, error) {
		return advisor.NewOpenAI(advisor.OpenAIConfig{BaseURL: s.BaseURL, APIKey: s.APIKey}), nil
	})
	r.Register("anthropic", func(s Settings) (advisor.Generator, error) {
		var opts anthropicOptions
		if err := s.Decode(&opts); err != nil {
			return nil, err
		}
		return advisor.NewAnthropic(advisor.AnthropicConfig{APIKey: s.APIKey, System: opts.System}), nil
	})
	r.Register("ollama", func(s Settings) (advisor.Generator, error) {
		return advisor.NewOllama(advisor.OllamaConfig{Host: s.BaseURL})
	})
	r.Register("gemini", func(s Settings) (advisor.Generator, error) {
		return advisor.NewGemini(advisor.GeminiConfig{APIKey: s.APIKey}), nil
	})
	r.Register("offline", func(Settings) (advisor.Generator, error) {
		return advisor.Offline{}, nil
	})
	return r
}

// Register adds a provider to the registry.
// If a provider with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = fn
}

// Build looks up a provider by name and constructs it.
// Returns an error if the provider is not found.
func (r *Registry) Build(name string, s Settings) (advisor.Generator, error) {
	r.mu.RLock()
	fn, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("provider not found: %s (available: %v)", name, r.Names())
	}
	return fn(s)
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	return slices.Contains(r.Names(), name)
}

// Names returns the registered provider names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
