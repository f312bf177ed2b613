package domain

import "context"

// Confirmer asks the user strict yes/no questions.
type Confirmer interface {
	// Confirm re-prompts until the answer is one of y, Y, n or N.
	Confirm(ctx context.Context, message string) (bool, error)

	// WaitForEnter blocks until the user presses Enter or input ends.
	WaitForEnter(ctx context.Context) error

	IsInteractive() bool
}

// ZeroFiller overwrites a file's existing bytes with zeros.
type ZeroFiller interface {
	ZeroFill(ctx context.Context, path string) (int64, error)
}

// Console writes user-facing progress and result lines.
type Console interface {
	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
