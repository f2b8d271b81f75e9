package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	platformservice "github.com/redjax/platinfo/internal/services/platformService"
	"github.com/redjax/platinfo/internal/utils/path"
)

// EnvPrefix is stripped from environment variables before they are mapped
// to config keys, e.g. PLATINFO_OUTPUT_FORMAT -> output.format.
const EnvPrefix = "PLATINFO_"

type Config struct {
	Debug  bool         `koanf:"debug"`
	Output OutputConfig `koanf:"output"`
	Log    LogConfig    `koanf:"log"`
}

type OutputConfig struct {
	// text, table, json or yaml
	Format string `koanf:"format"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

var defaults = map[string]interface{}{
	"debug":         false,
	"output.format": "text",
	"log.level":     "info",
}

// flagKeys maps CLI flag names to config keys. Flags not listed here are
// not config.
var flagKeys = map[string]string{
	"debug":     "debug",
	"format":    "output.format",
	"log-level": "log.level",
}

// LoadConfig layers defaults, the config file (if any), PLATINFO_* env vars
// and finally explicitly set flags, in increasing precedence.
func LoadConfig(flagSet *pflag.FlagSet, configFile string) (Config, error) {
	var cfg Config
	k := koanf.New(".")

	for key, val := range defaults {
		if err := k.Set(key, val); err != nil {
			return cfg, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	// Load from config file if provided
	if configFile != "" {
		expanded, err := path.ExpandPath(configFile)
		if err != nil {
			return cfg, err
		}
		configFile = expanded

		parser, err := parserForFile(configFile)
		if err != nil {
			return cfg, fmt.Errorf("unsupported config file format: %w", err)
		}
		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return cfg, fmt.Errorf("loading config file %s: %w", configFile, err)
		}
	}

	// PLATINFO_OUTPUT_FORMAT -> output.format
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", ".", -1)
	}), nil); err != nil {
		return cfg, fmt.Errorf("loading environment: %w", err)
	}

	// Load from command-line flags (highest precedence)
	if flagSet != nil {
		if err := k.Load(posflag.ProviderWithFlag(flagSet, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flagSet, f)
		}), nil); err != nil {
			return cfg, fmt.Errorf("loading flags: %w", err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}

	format, err := platformservice.ParseFormat(cfg.Output.Format)
	if err != nil {
		return cfg, fmt.Errorf("output.format: %w", err)
	}
	cfg.Output.Format = string(format)

	return cfg, nil
}

func parserForFile(name string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}

type ctxKey struct{}

// WithConfig stores cfg on ctx for subcommands.
func WithConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the Config stored by WithConfig, or the defaults.
func FromContext(ctx context.Context) Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(ctxKey{}).(Config); ok {
			return cfg
		}
	}

	return Config{
		Output: OutputConfig{Format: defaults["output.format"].(string)},
		Log:    LogConfig{Level: defaults["log.level"].(string)},
	}
}
