package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"file-shredder/internal/config"
	"file-shredder/internal/domain"
)

// App contains all application dependencies.
type App struct {
	// File operations
	FileSystem domain.FileSystemAdapter
	ZeroFiller domain.ZeroFiller

	// I/O dependencies
	Confirmer domain.Confirmer
	Console   domain.Console

	// Logging
	Logger *slog.Logger
	RunID  string

	// Configuration
	Settings *config.Settings
	Config   *Config
}

// Config holds application configuration.
type Config struct {
	Settings *config.Settings
	Verbose  bool

	Fs     afero.Fs
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithSettings sets the resolved settings.
func WithSettings(settings *config.Settings) Option {
	return func(cfg *Config) {
		cfg.Settings = settings
	}
}

// WithVerbose enables debug logging regardless of the configured level.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
	}
}

// WithFs sets the filesystem the application operates on.
func WithFs(fs afero.Fs) Option {
	return func(cfg *Config) {
		cfg.Fs = fs
	}
}

// WithIO sets the standard streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(cfg *Config) {
		cfg.Stdin = stdin
		cfg.Stdout = stdout
		cfg.Stderr = stderr
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		Settings: config.DefaultSettings(),
		Fs:       afero.NewOsFs(),
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}
