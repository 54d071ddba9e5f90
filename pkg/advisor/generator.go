package advisor

import (
	"context"
	"errors"
)

// ErrEmptyReply is returned by generators when the payload holds no usable text.
var ErrEmptyReply = errors.New("empty reply")

// ErrOffline is returned by the Offline generator.
var ErrOffline = errors.New("advisor is offline")

// Params are the generation parameters sent with every request.
// They shape the reply but never change the interview logic.
type Params struct {
	MaxLength   int     `yaml:"max_length" mapstructure:"max_length"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
	TopP        float64 `yaml:"top_p" mapstructure:"top_p"`
	DoSample    bool    `yaml:"do_sample" mapstructure:"do_sample"`
}

// DefaultParams mirror the hosted inference defaults the interview was tuned for.
var DefaultParams = Params{
	MaxLength:   500,
	Temperature: 0.7,
	TopP:        0.9,
	DoSample:    true,
}

// Request is a single generation call.
type Request struct {
	Model  string
	Prompt string
	Params Params
}

// Generator is a remote text generation backend: prompt in, text out, may fail.
type Generator interface {
	Name() string
	Generate(ctx context.Context, req Request) (string, error)
}

// Offline is a Generator that always fails, so every reply is fallback text.
type Offline struct{}

func (Offline) Name() string { return "offline" }

func (Offline) Generate(context.Context, Request) (string, error) {
	return "", ErrOffline
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

func (f GeneratorFunc) Name() string { return "func" }

func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
