package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// InvalidChoiceMessage is printed when an answer is not one of y, Y, n or N.
const InvalidChoiceMessage = "Invalid choice. Please enter 'y' or 'n'."

// ExitPrompt is printed before waiting for Enter.
const ExitPrompt = "Press Enter to exit..."

// Adapter handles yes/no confirmation prompts on the terminal.
type Adapter struct {
	stdin  io.Reader
	reader *bufio.Reader
	stdout io.Writer
	logger *slog.Logger
}

// NewAdapter creates a new terminal adapter.
func NewAdapter(stdin io.Reader, stdout io.Writer, logger *slog.Logger) *Adapter {
	return &Adapter{
		stdin:  stdin,
		reader: bufio.NewReader(stdin),
		stdout: stdout,
		logger: logger,
	}
}

// Confirm writes message and reads answers until one of y, Y, n or N is
// entered. Empty input is rejected like any other invalid answer. If input
// ends first, the returned error wraps io.EOF.
func (a *Adapter) Confirm(ctx context.Context, message string) (bool, error) {
	for {
		fmt.Fprint(a.stdout, message)

		line, err := a.readLine()
		if err != nil && line == "" {
			// Keep the next output off the prompt line.
			fmt.Fprintln(a.stdout)
			return false, fmt.Errorf("failed to read answer: %w", err)
		}

		switch strings.TrimSpace(line) {
		case "y", "Y":
			a.logger.DebugContext(ctx, "User confirmed", "prompt", message)
			return true, nil
		case "n", "N":
			a.logger.DebugContext(ctx, "User declined", "prompt", message)
			return false, nil
		}

		a.logger.DebugContext(ctx, "Rejected confirmation input", "input", line)
		fmt.Fprintln(a.stdout, InvalidChoiceMessage)

		if err != nil {
			return false, fmt.Errorf("failed to read answer: %w", err)
		}
	}
}

// WaitForEnter prints the exit prompt and consumes one line of input.
// End of input also ends the wait.
func (a *Adapter) WaitForEnter(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	fmt.Fprint(a.stdout, ExitPrompt)

	if _, err := a.readLine(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// IsInteractive returns true if stdin is a terminal.
func (a *Adapter) IsInteractive() bool {
	if file, ok := a.stdin.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned together with io.EOF.
func (a *Adapter) readLine() (string, error) {
	line, err := a.reader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	return line, err
}
