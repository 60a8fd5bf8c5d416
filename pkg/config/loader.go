package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks environment variables read as configuration.
	EnvPrefix = "DOTLINK_"

	// EnvConfigFile names an explicit config file.
	EnvConfigFile = "DOTLINK_CONFIG"

	appDirName = "dotlink"
)

// configFileNames are searched, in order, in the XDG config directory.
var configFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// LoadOptions tunes Load.
type LoadOptions struct {
	// ConfigFile overrides $DOTLINK_CONFIG and the XDG lookup. It must exist.
	ConfigFile string

	// Overrides is applied last, keyed by dotted config keys.
	Overrides map[string]interface{}
}

// Load builds the effective configuration.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path, err := findConfigFile(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail(errors.DetailPath, path)
		}
		logger.Debug().Str("file", path).Msg("Loaded config file")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.File = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps DOTLINK_WALK__INCLUDE_HIDDEN to walk.include_hidden. The
// config file variable itself is not a key.
func envKey(s string) string {
	if s == EnvConfigFile {
		return ""
	}
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// findConfigFile returns the user config file to load, or "" when there is
// none. Explicitly named files must exist.
func findConfigFile(explicit string) (string, error) {
	if explicit == "" {
		explicit = os.Getenv(EnvConfigFile)
	}
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", explicit).
				WithDetail(errors.DetailPath, explicit)
		}
		return explicit, nil
	}

	dir := DefaultConfigDir()
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// DefaultConfigDir is $XDG_CONFIG_HOME/dotlink.
func DefaultConfigDir() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, appDirName)
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config file type %s (want .toml, .yaml or .yml)", path).
		WithDetail(errors.DetailPath, path)
}
