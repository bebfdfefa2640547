package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	cgrcerrors "github.com/arthur-debert/cgrc/pkg/errors"
	"github.com/arthur-debert/cgrc/pkg/logging"
	"github.com/arthur-debert/cgrc/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment variables read as settings
const EnvPrefix = "CGRC_"

// Color modes for output.color
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// Settings is the decoded application configuration
type Settings struct {
	Output    OutputSettings   `koanf:"output"`
	Regex     RegexSettings    `koanf:"regex"`
	Locations LocationSettings `koanf:"locations"`
	Logging   LoggingSettings  `koanf:"logging"`
}

// OutputSettings controls how lines are written
type OutputSettings struct {
	Color string `koanf:"color"`
}

// RegexSettings tunes rule evaluation
type RegexSettings struct {
	MatchTimeout time.Duration `koanf:"match_timeout"`
}

// LocationSettings overrides where rule files are looked up
type LocationSettings struct {
	User   string   `koanf:"user"`
	System string   `koanf:"system"`
	Extra  []string `koanf:"extra"`
}

// LoggingSettings controls the log file
type LoggingSettings struct {
	File bool `koanf:"file"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// DefaultContent returns the embedded defaults file
func DefaultContent() string {
	return string(defaultConfig)
}

// Default returns the built-in settings only
func Default() (*Settings, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, cgrcerrors.Wrap(err, cgrcerrors.ErrConfigLoad, "failed to load defaults")
	}
	return decode(k)
}

// Load reads settings from the user settings file
func Load() (*Settings, error) {
	return LoadFrom(paths.New().SettingsFile(), nil)
}

// LoadFrom layers defaults, the settings file at path (skipped when it does
// not exist), CGRC_* environment variables and overrides. Override keys use
// dotted paths such as "output.color".
func LoadFrom(path string, overrides map[string]interface{}) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, cgrcerrors.Wrap(err, cgrcerrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User settings file
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
				return nil, cgrcerrors.Wrapf(err, cgrcerrors.ErrConfigLoad,
					"failed to load settings from %s", path).WithDetail("path", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded settings file")
		} else if !os.IsNotExist(err) {
			return nil, cgrcerrors.Wrapf(err, cgrcerrors.ErrFileAccess,
				"cannot access settings file %s", path).WithDetail("path", path)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, cgrcerrors.Wrap(err, cgrcerrors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Caller overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, cgrcerrors.Wrap(err, cgrcerrors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	return decode(k)
}

// envKey maps CGRC_REGEX_MATCH_TIMEOUT to regex.match_timeout: the first
// underscore separates the section from the key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, found := strings.Cut(s, "_")
	if !found {
		return s
	}
	return section + "." + key
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func decode(k *koanf.Koanf) (*Settings, error) {
	var cfg Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, cgrcerrors.Wrap(err, cgrcerrors.ErrConfigLoad, "failed to decode settings")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that decoding cannot
func (s *Settings) Validate() error {
	switch s.Output.Color {
	case ColorAlways, ColorAuto, ColorNever:
	default:
		return cgrcerrors.Newf(cgrcerrors.ErrConfigLoad,
			"invalid output.color %q (want always, auto or never)", s.Output.Color).
			WithDetail("key", "output.color")
	}

	if s.Regex.MatchTimeout < 0 {
		return cgrcerrors.Newf(cgrcerrors.ErrConfigLoad,
			"invalid regex.match_timeout %s", s.Regex.MatchTimeout).
			WithDetail("key", "regex.match_timeout")
	}

	return nil
}
