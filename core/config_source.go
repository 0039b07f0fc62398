package core

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-config/cfgx"
	opts "github.com/goliatone/go-options"
)

type ConfigProvider interface {
	Load(ctx context.Context, defaults Config) (Config, error)
}

type RawConfigLoader interface {
	LoadRaw(ctx context.Context) (map[string]any, error)
}

// OptionsResolver merges the three configuration layers. Later layers win:
// runtime over loaded over defaults.
type OptionsResolver interface {
	Resolve(defaults Config, loaded Config, runtime Config) (Config, error)
}

// configKeys lists the decoded keys in the order they are documented.
var configKeys = []string{"api_key", "api_secret", "callback", "scope", "auth_scheme", "signature_type"}

const DefaultEnvPrefix = "OAUTH_"

type staticRawConfigLoader struct {
	values map[string]any
}

// NewStaticConfigLoader serves a fixed raw map, typically decoded from a
// file by the caller. Keys are matched case-insensitively.
func NewStaticConfigLoader(values map[string]any) RawConfigLoader {
	return staticRawConfigLoader{values: values}
}

func (l staticRawConfigLoader) LoadRaw(context.Context) (map[string]any, error) {
	out := make(map[string]any, len(l.values))
	for key, value := range l.values {
		out[strings.ToLower(strings.TrimSpace(key))] = value
	}
	return out, nil
}

// EnvConfigLoader reads OAUTH_API_KEY, OAUTH_API_SECRET, OAUTH_CALLBACK,
// OAUTH_SCOPE, OAUTH_AUTH_SCHEME and OAUTH_SIGNATURE_TYPE (or the same names
// under Prefix). Unset variables are left out of the layer.
type EnvConfigLoader struct {
	Prefix string
	Lookup func(key string) (string, bool)
}

func NewEnvConfigLoader(prefix string) *EnvConfigLoader {
	return &EnvConfigLoader{Prefix: prefix, Lookup: os.LookupEnv}
}

func (l *EnvConfigLoader) LoadRaw(context.Context) (map[string]any, error) {
	out := map[string]any{}
	if l == nil {
		return out, nil
	}
	lookup := l.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	prefix := l.Prefix
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	for _, key := range configKeys {
		if value, ok := lookup(prefix + strings.ToUpper(key)); ok {
			out[key] = value
		}
	}
	return out, nil
}

type CfgxConfigProvider struct {
	Loader RawConfigLoader
}

func NewCfgxConfigProvider(loader RawConfigLoader) *CfgxConfigProvider {
	return &CfgxConfigProvider{Loader: loader}
}

// Load decodes the raw values over defaults. Credentials usually arrive in the
// runtime layer, so validation waits for the resolver.
func (p *CfgxConfigProvider) Load(ctx context.Context, defaults Config) (Config, error) {
	if p == nil || p.Loader == nil {
		return defaults, nil
	}
	raw, err := p.Loader.LoadRaw(ctx)
	if err != nil {
		return Config{}, fmt.Errorf("core: load raw oauth config: %w", err)
	}
	return cfgx.Build[Config](raw, cfgx.WithDefaults(defaults))
}

type GoOptionsResolver struct{}

func (GoOptionsResolver) Resolve(defaults Config, loaded Config, runtime Config) (Config, error) {
	stack, err := opts.NewStack(
		opts.NewLayer(opts.NewScope("defaults", 0), configLayer(defaults, true),
			opts.WithSnapshotID[map[string]any]("defaults")),
		opts.NewLayer(opts.NewScope("config", 10), configLayer(loaded, false),
			opts.WithSnapshotID[map[string]any]("config")),
		opts.NewLayer(opts.NewScope("runtime", 20), configLayer(runtime, false),
			opts.WithSnapshotID[map[string]any]("runtime")),
	)
	if err != nil {
		return Config{}, fmt.Errorf("core: build oauth options stack: %w", err)
	}
	merged, err := stack.Merge()
	if err != nil {
		return Config{}, fmt.Errorf("core: merge oauth options: %w", err)
	}
	return cfgx.Build[Config](merged.Value,
		cfgx.WithDefaults(defaults),
		cfgx.WithValidator[Config]((*Config).Validate),
	)
}

// configLayer keeps blank values only for the defaults layer, so an unset
// runtime field never clears a loaded one.
func configLayer(cfg Config, keepBlank bool) map[string]any {
	values := map[string]string{
		"api_key":        cfg.APIKey,
		"api_secret":     cfg.APISecret,
		"callback":       cfg.Callback,
		"scope":          cfg.Scope,
		"auth_scheme":    string(cfg.AuthScheme),
		"signature_type": string(cfg.SignatureType),
	}
	layer := make(map[string]any, len(configKeys))
	for _, key := range configKeys {
		if keepBlank || strings.TrimSpace(values[key]) != "" {
			layer[key] = values[key]
		}
	}
	return layer
}
