package engine

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/lessons"
)

// EnvPrefix prefixes every environment variable that overrides a config key,
// e.g. SADHGURU_LOG_LEVEL for log.level.
const EnvPrefix = "SADHGURU"

// Config is the top-level engine configuration.
type Config struct {
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Lessons LessonsConfig `yaml:"lessons" mapstructure:"lessons"`
	Form    FormConfig    `yaml:"form" mapstructure:"form"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
}

// LogConfig controls the engine logger.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"` // debug, info, warn or error.
	File  string `yaml:"file" mapstructure:"file"`   // Empty means the frontend's default sink.
}

// LessonsConfig selects the lesson catalog and the topic sessions start on.
type LessonsConfig struct {
	File         string `yaml:"file" mapstructure:"file"` // Empty uses the embedded catalog.
	InitialTopic string `yaml:"initial_topic" mapstructure:"initial_topic"`
}

// FormConfig pre-fills the graphical add-device form.
type FormConfig struct {
	Address         string `yaml:"address" mapstructure:"address"`
	RegistrationKey string `yaml:"registration_key" mapstructure:"registration_key"` //nolint:gosec // practice value, not a secret
}

// ServerConfig holds the websocket server settings.
type ServerConfig struct {
	Addr        string `yaml:"addr" mapstructure:"addr"`
	MaxSessions int    `yaml:"max_sessions" mapstructure:"max_sessions"` // 0 = unlimited.
}

// DefaultConfig returns the configuration used when no file, environment or
// flag overrides a key.
func DefaultConfig() Config {
	return Config{
		Log:     LogConfig{Level: "info"},
		Lessons: LessonsConfig{InitialTopic: string(lessons.TopicOnboard)},
		Form:    FormConfig{Address: "192.168.1.10", RegistrationKey: "REGKEY123"},
		Server:  ServerConfig{Addr: "127.0.0.1:8080", MaxSessions: 64},
	}
}

// flagKeys maps command-line flag names to the config keys they override.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"log-file":  "log.file",
	"lessons":   "lessons.file",
	"topic":     "lessons.initial_topic",
	"addr":      "server.addr",
}

// LoadConfig resolves the configuration from, in increasing precedence:
// defaults, the YAML file at path (skipped when path is empty), SADHGURU_*
// environment variables, and any of flags that were set explicitly.
// Environment variables referenced as ${VAR} or $VAR in the YAML are expanded
// before parsing.
func LoadConfig(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	def := DefaultConfig()
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("lessons.file", def.Lessons.File)
	v.SetDefault("lessons.initial_topic", def.Lessons.InitialTopic)
	v.SetDefault("form.address", def.Form.Address)
	v.SetDefault("form.registration_key", def.Form.RegistrationKey)
	v.SetDefault("server.addr", def.Server.Addr)
	v.SetDefault("server.max_sessions", def.Server.MaxSessions)

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
		if err != nil {
			return Config{}, fmt.Errorf("engine: load config: %w", err)
		}
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(strings.NewReader(expanded)); err != nil {
			return Config{}, fmt.Errorf("engine: parse config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("engine: bind flag %q: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("engine: decode config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("engine: config: %w", err)
	}
	if c.Server.MaxSessions < 0 {
		return fmt.Errorf("engine: config: server.max_sessions must not be negative")
	}
	if strings.TrimSpace(c.Form.Address) == "" {
		return fmt.Errorf("engine: config: form.address is required")
	}
	if strings.TrimSpace(c.Form.RegistrationKey) == "" {
		return fmt.Errorf("engine: config: form.registration_key is required")
	}
	return nil
}

// ParseLevel maps a config level name to its slog level. The empty string
// means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
