package app

import (
	"context"

	"github.com/google/uuid"

	"file-shredder/internal/adapters/console"
	"file-shredder/internal/adapters/filesystem"
	"file-shredder/internal/adapters/terminal"
	"file-shredder/internal/commands"
	"file-shredder/internal/logging"
	"file-shredder/internal/services/zerofill"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}

	// Create logger.
	logCfg := cfg.Settings.LoggingConfig()
	logCfg.Output = cfg.Stderr
	if cfg.Verbose {
		logCfg.Level = logging.LevelDebug
	}
	runID := uuid.NewString()
	logger := logging.WithFields(logging.NewLogger(logCfg), map[string]any{"run_id": runID})

	// Create filesystem adapter.
	fs := filesystem.NewWithFs(cfg.Fs)

	// Create terminal and console adapters.
	confirmer := terminal.NewAdapter(cfg.Stdin, cfg.Stdout, logger)
	out := console.NewAdapter(cfg.Stdout, cfg.Stderr)

	logger.DebugContext(ctx, "Initializing file-shredder",
		"logLevel", logCfg.Level,
		"logFormat", logCfg.Format,
		"pauseOnExit", cfg.Settings.PauseOnExit,
		"interactive", confirmer.IsInteractive())

	return &App{
		FileSystem: fs,
		ZeroFiller: zerofill.NewFiller(fs, logger),
		Confirmer:  confirmer,
		Console:    out,
		Logger:     logger,
		RunID:      runID,
		Settings:   cfg.Settings,
		Config:     cfg,
	}, nil
}

// ShredCommand builds the shred command from the application's dependencies.
func (a *App) ShredCommand() *commands.ShredCommand {
	return commands.NewShredCommand(
		a.FileSystem,
		a.ZeroFiller,
		a.Confirmer,
		a.Console,
		logging.WithOperation(a.Logger, "shred"),
	)
}

// ShouldPause reports whether the process should wait for Enter before
// exiting. Only an interactive terminal is paused.
func (a *App) ShouldPause() bool {
	return a.Settings.PauseOnExit && a.Confirmer.IsInteractive()
}
