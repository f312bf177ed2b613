package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"file-shredder/internal/domain"
	"file-shredder/internal/errors"
	"file-shredder/internal/logging"
)

// Keys shared by flags, environment variables and viper.
const (
	KeyLogLevel    = "log-level"
	KeyLogFormat   = "log-format"
	KeyPauseOnExit = "pause-on-exit"

	// EnvPrefix prefixes environment overrides, e.g. SHREDDER_LOG_LEVEL.
	EnvPrefix = "SHREDDER"
)

// Settings holds the ambient configuration of a shredding run. None of it
// changes how files are zero-filled or deleted.
type Settings struct {
	LogLevel    string `yaml:"logLevel"`
	LogFormat   string `yaml:"logFormat"`
	PauseOnExit bool   `yaml:"pauseOnExit"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{
		LogLevel:    string(logging.LevelWarn),
		LogFormat:   logging.FormatText,
		PauseOnExit: true,
	}
}

// Validate checks that every setting holds a supported value.
func (s *Settings) Validate() error {
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return errors.NewValidationError("logLevel", s.LogLevel, "must be one of debug, info, warn, error")
	}

	switch s.LogFormat {
	case logging.FormatText, logging.FormatJSON:
	default:
		return errors.NewValidationError("logFormat", s.LogFormat, "must be one of text, json")
	}

	return nil
}

// LoggingConfig converts the settings into a logger configuration.
func (s *Settings) LoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if level, err := logging.ParseLevel(s.LogLevel); err == nil {
		cfg.Level = level
	}
	cfg.Format = s.LogFormat
	return cfg
}

// Manager handles configuration file operations.
type Manager struct {
	fs         domain.FileSystemAdapter
	configPath string
}

// NewManager creates a new configuration manager.
func NewManager(fs domain.FileSystemAdapter, configPath string) *Manager {
	return &Manager{
		fs:         fs,
		configPath: configPath,
	}
}

// Path returns the configuration file path.
func (cm *Manager) Path() string {
	return cm.configPath
}

// Load reads the settings file. A missing or empty file yields the defaults;
// keys absent from the file keep their default values.
func (cm *Manager) Load() (*Settings, error) {
	settings := DefaultSettings()

	if cm.configPath == "" {
		return settings, nil
	}

	data, err := cm.fs.ReadFile(cm.configPath)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, errors.NewConfigurationError("config_path", cm.configPath, "failed to read config file", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return settings, nil
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, errors.NewConfigurationError("config_format", "yaml", "failed to unmarshal config", err)
	}

	return settings, nil
}

// ApplyOverrides copies every key explicitly set in v (environment variable
// or changed flag) onto the settings.
func ApplyOverrides(settings *Settings, v *viper.Viper) {
	if v.IsSet(KeyLogLevel) {
		settings.LogLevel = v.GetString(KeyLogLevel)
	}
	if v.IsSet(KeyLogFormat) {
		settings.LogFormat = v.GetString(KeyLogFormat)
	}
	if v.IsSet(KeyPauseOnExit) {
		settings.PauseOnExit = v.GetBool(KeyPauseOnExit)
	}
}

// NewViper returns a viper instance reading SHREDDER_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Resolve loads the settings file, applies overrides and validates the result.
func Resolve(cm *Manager, v *viper.Viper) (*Settings, error) {
	settings, err := cm.Load()
	if err != nil {
		return nil, err
	}

	ApplyOverrides(settings, v)

	if err := settings.Validate(); err != nil {
		return nil, errors.NewConfigurationError("", "", fmt.Sprintf("invalid settings in %s: %v", describe(cm.configPath), err), err)
	}
	return settings, nil
}

func describe(path string) string {
	if path == "" {
		return "environment or flags"
	}
	return path
}
