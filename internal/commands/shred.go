package commands

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"file-shredder/internal/domain"
	shrederrors "file-shredder/internal/errors"
	"file-shredder/internal/logging"
)

// Prompts shown for every regular file.
const (
	FillPrompt   = "Do you want to fill this file with zeros? (y/n): "
	DeletePrompt = "Do you want to delete this file after filling it with zeros? (y/n): "
)

// ShredCommand zero-fills and optionally deletes files, asking before each step.
type ShredCommand struct {
	fs        domain.FileSystemAdapter
	filler    domain.ZeroFiller
	confirmer domain.Confirmer
	console   domain.Console
	logger    *slog.Logger
}

// NewShredCommand creates a new shred command.
func NewShredCommand(
	fs domain.FileSystemAdapter,
	filler domain.ZeroFiller,
	confirmer domain.Confirmer,
	console domain.Console,
	logger *slog.Logger,
) *ShredCommand {
	return &ShredCommand{
		fs:        fs,
		filler:    filler,
		confirmer: confirmer,
		console:   console,
		logger:    logger,
	}
}

// ShredRequest contains the parameters for the shred command.
type ShredRequest struct {
	Paths []string
}

// Execute processes every path in order. A failure on one path never stops
// the paths after it; failures and skips are reported and collected in the report.
func (c *ShredCommand) Execute(ctx context.Context, req ShredRequest) *domain.ShredReport {
	report := &domain.ShredReport{
		Results: make([]domain.FileResult, 0, len(req.Paths)),
	}

	total := len(req.Paths)
	for i, path := range req.Paths {
		c.console.Info("Processing file %d of %d: %s", i+1, total, path)

		logger := logging.WithFile(c.logger, i+1, total, path)
		result := c.processFile(ctx, logger, path)

		logger.DebugContext(ctx, "File processed", "outcome", result.Outcome, "error", result.Err)
		report.Results = append(report.Results, result)
	}

	c.logger.InfoContext(ctx, "Shred run finished",
		"files", total,
		"deleted", report.Count(domain.OutcomeDeleted),
		"filled", report.Count(domain.OutcomeFilled),
		"declined", report.Count(domain.OutcomeDeclined),
		"skipped", report.Count(domain.OutcomeMissing)+report.Count(domain.OutcomeDirectory),
		"failed", report.Count(domain.OutcomeStatFailed)+
			report.Count(domain.OutcomeFillFailed)+
			report.Count(domain.OutcomeDeleteFailed))

	if err := shrederrors.Join(report.Errors()...); err != nil {
		c.logger.WarnContext(ctx, "Some files could not be processed", "error", err)
	}

	return report
}

func (c *ShredCommand) processFile(ctx context.Context, logger *slog.Logger, path string) domain.FileResult {
	target := domain.TargetFile{Path: path}

	info, err := c.fs.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		c.console.Error("File not found: %s", path)
		return domain.FileResult{
			Target:  target,
			Outcome: domain.OutcomeMissing,
			Err:     &shrederrors.NotFoundError{Path: path},
		}
	case err != nil:
		c.console.Error("Cannot access file: %s: %v", path, err)
		return domain.FileResult{
			Target:  target,
			Outcome: domain.OutcomeStatFailed,
			Err:     shrederrors.NewFileError(shrederrors.OpStat, path, err),
		}
	case info.IsDir():
		c.console.Warn("Skipping directory: %s", path)
		return domain.FileResult{
			Target:  target,
			Outcome: domain.OutcomeDirectory,
			Err:     &shrederrors.DirectoryError{Path: path},
		}
	}

	target.Size = info.Size()
	logger.DebugContext(ctx, "Target validated", "size", target.Size)

	fill, err := c.confirmer.Confirm(ctx, FillPrompt)
	if err != nil {
		logger.WarnContext(ctx, "Fill confirmation failed, treating as declined", "error", err)
	}
	if !fill {
		c.console.Warn("The file has not been destroyed: %s", path)
		return domain.FileResult{Target: target, Outcome: domain.OutcomeDeclined}
	}

	result := domain.FileResult{Target: target, Outcome: domain.OutcomeFilled}
	if _, err := c.filler.ZeroFill(ctx, path); err != nil {
		logger.ErrorContext(ctx, "Zero-fill failed", "error", err)
		c.reportFillError(path, err)
		result.Outcome = domain.OutcomeFillFailed
		result.Err = err
	} else {
		c.console.Success("The file has been successfully filled with zeros: %s", path)
	}

	// Deletion is offered even when the overwrite failed.
	remove, err := c.confirmer.Confirm(ctx, DeletePrompt)
	if err != nil {
		logger.WarnContext(ctx, "Delete confirmation failed, treating as declined", "error", err)
	}
	if !remove {
		return result
	}

	if err := c.fs.Remove(path); err != nil {
		logger.ErrorContext(ctx, "Delete failed", "error", err)
		c.console.Error("Error deleting file: %v", err)
		return domain.FileResult{
			Target:  target,
			Outcome: domain.OutcomeDeleteFailed,
			Err:     shrederrors.Join(result.Err, shrederrors.NewFileError(shrederrors.OpDelete, path, err)),
		}
	}

	c.console.Success("File successfully deleted.")
	return domain.FileResult{Target: target, Outcome: domain.OutcomeDeleted, Err: result.Err}
}

func (c *ShredCommand) reportFillError(path string, err error) {
	switch {
	case shrederrors.IsOpen(err):
		c.console.Error("Cannot open file: %s", path)
	case shrederrors.IsWrite(err):
		c.console.Error("Failed to write to file: %s", path)
	default:
		c.console.Error("I/O error: %v", err)
	}
}
