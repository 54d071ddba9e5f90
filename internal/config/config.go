// Package config loads fundflow settings from fundflow.yaml, .env and
// FUNDFLOW_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/aretw0/fundflow/pkg/advisor"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no explicit path is given and it exists.
const DefaultFile = "fundflow.yaml"

// Cache drivers.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

type Config struct {
	Log     LogConfig     `yaml:"log"`
	Advisor AdvisorConfig `yaml:"advisor"`
	Server  ServerConfig  `yaml:"server"`
	// Strict makes undefined transition targets fail instead of being logged.
	Strict bool `yaml:"strict"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type AdvisorConfig struct {
	Provider        string         `yaml:"provider"`
	Model           string         `yaml:"model"`
	PlanModel       string         `yaml:"plan_model"`
	BaseURL         string         `yaml:"base_url"`
	APIKey          string         `yaml:"api_key"`
	Timeout         time.Duration  `yaml:"timeout"`
	MaxLength       int            `yaml:"max_length"`
	Temperature     float64        `yaml:"temperature"`
	TopP            float64        `yaml:"top_p"`
	DoSample        bool           `yaml:"do_sample"`
	MaxPromptTokens int            `yaml:"max_prompt_tokens"`
	Cache           CacheConfig    `yaml:"cache"`
	Options         map[string]any `yaml:"options"`
}

type CacheConfig struct {
	Driver    string        `yaml:"driver"`
	TTL       time.Duration `yaml:"ttl"`
	RedisAddr string        `yaml:"redis_addr"`
	Prefix    string        `yaml:"prefix"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Advisor: AdvisorConfig{
			Provider:        "huggingface",
			Timeout:         advisor.DefaultTimeout,
			MaxLength:       advisor.DefaultParams.MaxLength,
			Temperature:     advisor.DefaultParams.Temperature,
			TopP:            advisor.DefaultParams.TopP,
			DoSample:        advisor.DefaultParams.DoSample,
			MaxPromptTokens: 1024,
			Cache: CacheConfig{
				Driver:    CacheMemory,
				TTL:       10 * time.Minute,
				RedisAddr: "localhost:6379",
				Prefix:    "fundflow:",
			},
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Params returns the generation parameters.
func (a AdvisorConfig) Params() advisor.Params {
	return advisor.Params{
		MaxLength:   a.MaxLength,
		Temperature: a.Temperature,
		TopP:        a.TopP,
		DoSample:    a.DoSample,
	}
}

// Models returns the configured models. The hosted inference provider gets
// its tuned chat and plan models when none are set; other providers fall
// back to their own defaults.
func (a AdvisorConfig) Models() advisor.Models {
	m := advisor.Models{Chat: a.Model, Plan: a.PlanModel}
	if a.Provider == "huggingface" {
		if m.Chat == "" {
			m.Chat = advisor.DefaultChatModel
		}
		if m.Plan == "" {
			m.Plan = advisor.DefaultPlanModel
		}
	}
	return m
}

// Load builds the configuration. path may be empty, in which case
// DefaultFile is used if present. A .env file in the working directory is
// loaded first; a missing one is ignored.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks values that cannot be checked by the type system.
func (c Config) Validate() error {
	var errs []error
	switch c.Advisor.Cache.Driver {
	case CacheMemory, CacheRedis, CacheNone:
	default:
		errs = append(errs, fmt.Errorf("unknown cache driver %q", c.Advisor.Cache.Driver))
	}
	if c.Advisor.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("advisor timeout must be positive, got %s", c.Advisor.Timeout))
	}
	if c.Advisor.MaxPromptTokens < 0 {
		errs = append(errs, fmt.Errorf("max_prompt_tokens must not be negative"))
	}
	return errors.Join(errs...)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	var errs []error
	parse := func(key string, fn func(string) error) {
		if v, ok := lookup(key); ok && v != "" {
			if err := fn(v); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
			}
		}
	}

	str("FUNDFLOW_LOG_LEVEL", &cfg.Log.Level)
	str("FUNDFLOW_ADVISOR_PROVIDER", &cfg.Advisor.Provider)
	str("FUNDFLOW_ADVISOR_MODEL", &cfg.Advisor.Model)
	str("FUNDFLOW_ADVISOR_PLAN_MODEL", &cfg.Advisor.PlanModel)
	str("FUNDFLOW_ADVISOR_BASE_URL", &cfg.Advisor.BaseURL)
	str("FUNDFLOW_ADVISOR_API_KEY", &cfg.Advisor.APIKey)
	str("FUNDFLOW_CACHE_DRIVER", &cfg.Advisor.Cache.Driver)
	str("FUNDFLOW_REDIS_ADDR", &cfg.Advisor.Cache.RedisAddr)
	str("FUNDFLOW_SERVER_ADDR", &cfg.Server.Addr)

	parse("FUNDFLOW_ADVISOR_TIMEOUT", func(v string) (err error) {
		cfg.Advisor.Timeout, err = time.ParseDuration(v)
		return err
	})
	parse("FUNDFLOW_CACHE_TTL", func(v string) (err error) {
		cfg.Advisor.Cache.TTL, err = time.ParseDuration(v)
		return err
	})
	parse("FUNDFLOW_MAX_PROMPT_TOKENS", func(v string) (err error) {
		cfg.Advisor.MaxPromptTokens, err = strconv.Atoi(v)
		return err
	})
	parse("FUNDFLOW_STRICT", func(v string) (err error) {
		cfg.Strict, err = strconv.ParseBool(v)
		return err
	})
	return errors.Join(errs...)
}
